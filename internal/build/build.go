// Package build runs the fetch, normalize and aggregate pass over the sheet.
package build

import (
	"context"
	"log/slog"
	"strings"

	"masterlist/internal/catalog"
	"masterlist/internal/normalize"
	"masterlist/internal/source"
)

// Result is the outcome of one build pass.
type Result struct {
	Catalog *catalog.Catalog
	Rows    int
	Skipped int
}

// Runner owns a single pass: one source, one catalog out.
type Runner struct {
	Source source.Source

	// Logger receives per-row diagnostics; nil uses slog.Default.
	Logger *slog.Logger
}

// Run fetches every row once and normalizes them in sheet order. Row skips
// are logged and counted, never fatal; a source failure aborts with no
// partial catalog.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rows, err := r.Source.Rows(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("fetched sheet", "rows", len(rows))

	cat := catalog.New()
	skipped := 0
	for i, row := range rows {
		entry, reason := normalize.RowToEntry(row)
		switch reason {
		case normalize.SkipNone:
			cat.Audios = append(cat.Audios, entry)
		case normalize.SkipBadID:
			skipped++
			// Sheet line number: header occupies line 1.
			logger.Warn("skipping row with non-numeric ID",
				"line", i+2, "id", strings.TrimSpace(row[catalog.ColID]))
		case normalize.SkipBlankRow:
			skipped++
			logger.Debug("skipping blank row", "line", i+2)
		}
	}

	logger.Info("built catalog", "entries", len(cat.Audios), "skipped", skipped)
	return &Result{Catalog: cat, Rows: len(rows), Skipped: skipped}, nil
}
