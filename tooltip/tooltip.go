// Package tooltip attaches on-demand help text to an anchor.
package tooltip

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Presenter renders an anchor tied to a popup showing content
type Presenter interface {
	Attach(key, content string, anchor template.HTML) template.HTML
}

var htmlTemplate = template.Must(template.New("tooltip").Parse(
	`<div class="tooltip" id="{{.Key}}" role="tooltip" hidden>{{.Content}}</div>` +
		`<span data-tip data-for="{{.Key}}" class="dotted">{{.Anchor}}</span>`))

// HTML emits react-tooltip compatible markup
type HTML struct{}

// Attach ...
func (HTML) Attach(key, content string, anchor template.HTML) template.HTML {
	var buf bytes.Buffer

	err := htmlTemplate.Execute(&buf, struct {
		Key     string
		Content string
		Anchor  template.HTML
	}{key, content, anchor})
	if err != nil {
		return anchor
	}

	return template.HTML(buf.String())
}

type footnote struct {
	key     string
	content string
}

// Footnotes numbers each tooltip and collects the content for printing
// below a plain text table. Not safe for concurrent use.
type Footnotes struct {
	notes []footnote
}

// Attach returns the anchor followed by its footnote marker
func (f *Footnotes) Attach(key, content string, anchor template.HTML) template.HTML {
	f.notes = append(f.notes, footnote{key: key, content: content})
	return template.HTML(fmt.Sprintf("%s [%d]", anchor, len(f.notes)))
}

// Len is the number of collected footnotes
func (f *Footnotes) Len() int {
	return len(f.notes)
}

// WriteTo prints the collected footnotes, one per line
func (f *Footnotes) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for i, note := range f.notes {
		fmt.Fprintf(&b, "[%d] %s: %s\n", i+1, note.key, note.content)
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
