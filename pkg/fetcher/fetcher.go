// Package fetcher retrieves page content over HTTP. The extraction
// pipeline never touches the network directly; it consumes the RawPayload
// this package produces.
package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/test01203/hebrew-cookbook-extractor/models"
)

const userAgent = "hebrew-cookbook-extractor/1.0"

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchPage retrieves one URL and wraps it in a RawPayload. Network and
// status failures surface as errors; they are the only failure kind the
// caller is expected to report to the user.
func (f *Fetcher) FetchPage(url string) (*models.RawPayload, error) {
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
		return nil, fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &models.RawPayload{
		SourceURL: url,
		HTML:      string(bodyBytes),
		Status:    models.FetchOK,
	}, nil
}
