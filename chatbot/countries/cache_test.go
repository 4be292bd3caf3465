package countries

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrFetchCachesNonEmptyResult(t *testing.T) {
	dir := NewMockDirectory("India", "Norway")
	cache := NewCache(dir)

	first := cache.GetOrFetch(context.Background())
	assert.True(t, Contains(first, "India"))

	cache.GetOrFetch(context.Background())
	assert.Equal(t, int32(1), dir.FetchCount.Load(), "second call must hit the cache")
}

func TestGetOrFetchRetriesAfterEmptyResult(t *testing.T) {
	dir := NewMockDirectory()
	dir.Err = errors.New("connection refused")
	cache := NewCache(dir)

	assert.Empty(t, cache.GetOrFetch(context.Background()))

	// The failure must not be cached: once the directory recovers, the next
	// call fetches the real set.
	dir.Err = nil
	dir.Names = map[string]struct{}{"India": {}}
	assert.True(t, Contains(cache.GetOrFetch(context.Background()), "India"))
	assert.Equal(t, int32(2), dir.FetchCount.Load())
}

func TestGetOrFetchDeduplicatesConcurrentFetches(t *testing.T) {
	dir := &blockingDirectory{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		names:   map[string]struct{}{"India": {}},
	}
	cache := NewCache(dir)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cache.GetOrFetch(context.Background())
	}()
	<-dir.entered

	// The first fetch is now blocked inside the directory; every caller
	// arriving here must join that flight instead of starting another.
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.GetOrFetch(context.Background())
		}()
	}
	close(dir.release)
	wg.Wait()

	assert.Equal(t, int32(1), dir.count.Load(), "concurrent callers must share one fetch")
}

type blockingDirectory struct {
	entered chan struct{}
	release chan struct{}
	names   map[string]struct{}
	count   atomic.Int32
}

func (d *blockingDirectory) FetchAllCountryNames(_ context.Context) (map[string]struct{}, error) {
	if d.count.Add(1) == 1 {
		close(d.entered)
	}
	<-d.release
	return d.names, nil
}

func TestHTTPDirectoryFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"name": map[string]string{"common": "India"}},
			{"name": map[string]string{"common": "Norway"}},
			{"name": map[string]string{}},
		})
	}))
	defer srv.Close()

	dir := NewHTTPDirectory(srv.URL)
	names, err := dir.FetchAllCountryNames(context.Background())
	require.NoError(t, err)
	assert.Len(t, names, 2)
	assert.True(t, Contains(names, "Norway"))
}

func TestHTTPDirectoryFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	dir := NewHTTPDirectory(srv.URL)
	_, err := dir.FetchAllCountryNames(context.Background())
	assert.Error(t, err)
}
