package tooltip

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestHTMLAttach(t *testing.T) {
	out := HTML{}.Attach("tooltip-a1", "rescheduled <due> to node drain", template.HTML("run"))

	doc, err := html.Parse(strings.NewReader(string(out)))
	require.NoError(t, err)

	var popup, anchor *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "div":
				popup = n
			case "span":
				anchor = n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	require.NotNil(t, popup)
	require.NotNil(t, anchor)
	assert.Equal(t, "tooltip-a1", attr(popup, "id"))
	assert.Equal(t, "rescheduled <due> to node drain", popup.FirstChild.Data)
	assert.Equal(t, "tooltip-a1", attr(anchor, "data-for"))
	assert.Equal(t, "dotted", attr(anchor, "class"))
	assert.Equal(t, "run", anchor.FirstChild.Data)

	assert.Contains(t, string(out), "&lt;due&gt;")
	assert.Contains(t, string(out), `<div class="tooltip" id="tooltip-a1" role="tooltip" hidden>`)
}

func TestFootnotes(t *testing.T) {
	f := &Footnotes{}
	assert.Equal(t, template.HTML("run [1]"), f.Attach("tooltip-a1", "first", "run"))
	assert.Equal(t, template.HTML("stop [2]"), f.Attach("tooltip-a2", "second", "stop"))
	assert.Equal(t, 2, f.Len())

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "[1] tooltip-a1: first\n[2] tooltip-a2: second\n", buf.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
