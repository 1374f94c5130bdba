package table

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/seatgeek/nomad-alloc-table/tooltip"
)

// cellReplacer flattens characters that would split a cell into extra
// columns or lines.
var cellReplacer = strings.NewReplacer("\r\n", " ", "\t", " ", "\n", " ", "\r", " ")

func cell(s string) string {
	return cellReplacer.Replace(s)
}

// WriteText renders the table in aligned columns. Desired status descriptions
// are printed as numbered footnotes below the table.
func WriteText(w io.Writer, t *Table) error {
	notes := &tooltip.Footnotes{}

	tw := tabwriter.NewWriter(w, 20, 1, 3, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t"))

	for _, row := range t.Rows {
		desired := cell(row.DesiredStatus.Text)
		if tip := row.DesiredStatus.Tooltip; tip != nil {
			desired = string(notes.Attach(cell(tip.Key), cell(tip.Content), template.HTML(desired)))
		}

		cells := []string{
			cell(row.ID.Label),
			cell(row.Job.Label),
			cell(row.TaskGroup.Label),
			cell(row.Task),
			cell(row.ClientStatus.Text),
			desired,
			cell(row.Node.Label),
			cell(row.Eval.Label),
			cell(row.Time),
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if notes.Len() == 0 {
		return nil
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	_, err := notes.WriteTo(w)
	return err
}
