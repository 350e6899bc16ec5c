// Package source fetches the raw masterlist rows from wherever the sheet
// lives: a published CSV URL or a local export file.
package source

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"masterlist/internal/catalog"
)

// Source yields the sheet's rows in order. Implementations make a single
// attempt; any failure aborts the build.
type Source interface {
	Rows(ctx context.Context) ([]catalog.Row, error)
}

// New is a factory that picks a source for the configured location:
// http(s) URLs fetch a published sheet export, anything else is read as a
// local CSV file.
func New(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &Sheet{URL: location, Timeout: timeout}
	}
	return &File{Path: location}
}

// decodeRows maps each CSV record onto the header's column names, the way a
// spreadsheet export is meant to be read. Records shorter than the header
// leave their trailing columns absent.
func decodeRows(r io.Reader) ([]catalog.Row, error) {
	reader := csv.NewReader(r)
	// Published exports pad short rows inconsistently.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []catalog.Row{}, nil
	}

	header := records[0]
	rows := make([]catalog.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(catalog.Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
