// Package report renders the post-build console summary.
package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"masterlist/internal/catalog"
)

// Summary renders the per-type breakdown as a table, busiest categories
// first, with a totals footer.
func Summary(stats catalog.Stats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Type", "Entries"})
	for _, tc := range stats.Types {
		tw.AppendRow(table.Row{tc.Type, tc.Count})
	}
	tw.AppendFooter(table.Row{"total", strconv.Itoa(stats.Entries)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
