package countries

import (
	"context"
	"sync/atomic"
)

// MockDirectory is a test double for Directory.
type MockDirectory struct {
	Names      map[string]struct{}
	Err        error
	FetchCount atomic.Int32
}

// NewMockDirectory builds a mock returning the given names.
func NewMockDirectory(names ...string) *MockDirectory {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &MockDirectory{Names: set}
}

// FetchAllCountryNames returns the configured names or error, counting calls.
func (m *MockDirectory) FetchAllCountryNames(_ context.Context) (map[string]struct{}, error) {
	m.FetchCount.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Names, nil
}

var _ Directory = (*MockDirectory)(nil)
