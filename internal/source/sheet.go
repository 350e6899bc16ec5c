package source

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"masterlist/internal/catalog"
)

// Sheet fetches a published Google Sheet CSV export over HTTP. One request,
// bounded by Timeout, no retries.
type Sheet struct {
	URL     string
	Timeout time.Duration

	// Client overrides the HTTP client; the zero value builds one from
	// Timeout.
	Client *http.Client
}

// Rows downloads and decodes the export.
func (s *Sheet) Rows(ctx context.Context) ([]catalog.Row, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: s.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet: unexpected status %s", resp.Status)
	}

	rows, err := decodeRows(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode sheet CSV: %w", err)
	}
	return rows, nil
}

// File reads rows from a local CSV export, which is handy for checking a
// sheet before publishing it.
type File struct {
	Path string
}

// Rows opens and decodes the export file.
func (f *File) Rows(_ context.Context) ([]catalog.Row, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open sheet export: %w", err)
	}
	defer fh.Close()

	rows, err := decodeRows(fh)
	if err != nil {
		return nil, fmt.Errorf("decode sheet CSV: %w", err)
	}
	return rows, nil
}
