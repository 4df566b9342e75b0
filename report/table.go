package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/andareed/siftly-bikeshare/stats"
)

// newCountsTable creates a borderless, left aligned table for frequency
// breakdowns.
func newCountsTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
		}),
	)
}

// writeCounts renders a value -> count breakdown under a header naming the
// column.
func writeCounts(w io.Writer, column string, counts []stats.Count[string]) error {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, strconv.Itoa(c.N)})
	}

	t := newCountsTable(w)
	t.Header([]string{column, "Count"})
	if err := t.Bulk(rows); err != nil {
		return fmt.Errorf("%s counts: %w", column, err)
	}
	if err := t.Render(); err != nil {
		return fmt.Errorf("%s counts: %w", column, err)
	}
	return nil
}
