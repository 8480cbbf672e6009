package stats

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteEntries writes one line per entry to w, in order.
func WriteEntries(w io.Writer, s Stats, entries []Entry) error {
	for _, e := range entries {
		var err error

		switch e.Kind {
		case EntryMetric:
			_, err = fmt.Fprintln(w, s.Value(e.Metric))
		case EntryText:
			_, err = fmt.Fprintln(w, e.Text)
		case EntryEOL:
			_, err = fmt.Fprintln(w)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// SummaryTable writes every metric as a table to w.
func SummaryTable(w io.Writer, s Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Program Statistics")
	t.AppendHeader(table.Row{"Metric", "Value"})

	for _, m := range Metrics() {
		t.AppendRow(table.Row{m.String(), s.Value(m)})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{"resolved jumps", s.FwJumps + s.BackJumps + s.BadJumps})
	t.Render()
}
