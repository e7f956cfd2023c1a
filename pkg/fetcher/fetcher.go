// Package fetcher retrieves recipe pages over HTTP.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// userAgent is a browser-ish UA string; several large recipe sites return
// 403 to Go's default agent.
const userAgent = "Mozilla/5.0 (compatible; cookparse/1.0; +https://github.com/cookparse/cookparse)"

type Fetcher struct {
	client *http.Client
}

func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetHTML fetches a URL and returns the raw response body. Non-200
// statuses are errors; redirects are followed by the underlying client.
func (f *Fetcher) GetHTML(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch HTML, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
