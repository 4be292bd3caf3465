// Package countries validates visa-query input against an external country
// directory, caching the fetched name set for the process lifetime.
package countries

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// DefaultDirectoryURL is the REST Countries endpoint listing all countries.
const DefaultDirectoryURL = "https://restcountries.com/v3.1/all?fields=name"

const defaultFetchTimeout = 10 * time.Second

// Directory returns the set of valid country names.
type Directory interface {
	FetchAllCountryNames(ctx context.Context) (map[string]struct{}, error)
}

// HTTPDirectory fetches country names from a REST Countries compatible
// endpoint.
type HTTPDirectory struct {
	client *http.Client
	url    string
}

// NewHTTPDirectory creates a directory client for the given URL. An empty URL
// uses DefaultDirectoryURL.
func NewHTTPDirectory(url string) *HTTPDirectory {
	if url == "" {
		url = DefaultDirectoryURL
	}
	return &HTTPDirectory{
		client: &http.Client{Timeout: defaultFetchTimeout},
		url:    url,
	}
}

// FetchAllCountryNames retrieves the directory and extracts the common name
// of every entry.
func (d *HTTPDirectory) FetchAllCountryNames(ctx context.Context) (map[string]struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build country directory request")
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch country directory")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("country directory returned status %d", resp.StatusCode)
	}

	var entries []struct {
		Name struct {
			Common string `json:"common"`
		} `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "decode country directory response")
	}

	names := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Name.Common != "" {
			names[entry.Name.Common] = struct{}{}
		}
	}
	return names, nil
}
