package table

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/seatgeek/nomad-alloc-table/tooltip"
)

const (
	FormatHTML = "html"
	FormatText = "text"
	FormatJSON = "json"
)

// Formats lists the accepted output formats
var Formats = []string{FormatHTML, FormatText, FormatJSON}

// WriteJSON writes the structured table
func WriteJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Write renders the table in the named format
func Write(w io.Writer, format string, t *Table) error {
	switch format {
	case FormatHTML:
		return WriteHTML(w, t, tooltip.HTML{})
	case FormatText:
		return WriteText(w, t)
	case FormatJSON:
		return WriteJSON(w, t)
	default:
		return fmt.Errorf("Unknown format '%s', must be one of %v", format, Formats)
	}
}
