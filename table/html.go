package table

import (
	"html/template"
	"io"

	"github.com/seatgeek/nomad-alloc-table/displaytime"
	"github.com/seatgeek/nomad-alloc-table/tooltip"
)

const htmlTableTemplate = `
{{- define "link"}}{{if .Empty}}{{.Label}}{{else}}<a href="{{.Href}}">{{.Label}}</a>{{end}}{{end}}
{{- define "clientStatus"}}<span{{with .Color}} class="{{.}}"{{end}}>{{with .Icon}}<span class="glyphicon glyphicon-{{.}}"></span>{{end}} {{.Text}}</span>{{end}}
{{- define "desiredStatus"}}<div>{{if .Tooltip}}{{tooltip .Tooltip .Text}}{{else}}{{.Text}}{{end}}</div>{{end -}}
<table class="table table-hover table-striped">
<thead>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
</thead>
<tbody>
{{- range .Rows}}
<tr data-key="{{.Key}}">
<td>{{template "link" .ID}}</td>
<td>{{template "link" .Job}}</td>
<td>{{template "link" .TaskGroup}}</td>
<td>{{.Task}}</td>
<td>{{template "clientStatus" .ClientStatus}}</td>
<td>{{template "desiredStatus" .DesiredStatus}}</td>
<td>{{template "link" .Node}}</td>
<td>{{template "link" .Eval}}</td>
<td><span title="{{absolute .CreateTime}}">{{.Time}}</span></td>
</tr>
{{- end}}
</tbody>
</table>
`

var htmlTable = template.Must(template.New("allocations").Funcs(template.FuncMap{
	"tooltip":  func(*Tooltip, string) template.HTML { return "" },
	"absolute": displaytime.New().Absolute,
}).Parse(htmlTableTemplate))

// WriteHTML renders the table as bootstrap markup.
// Desired status descriptions are attached with tips; nil uses tooltip.HTML.
func WriteHTML(w io.Writer, t *Table, tips tooltip.Presenter) error {
	if tips == nil {
		tips = tooltip.HTML{}
	}

	tmpl, err := htmlTable.Clone()
	if err != nil {
		return err
	}

	tmpl.Funcs(template.FuncMap{
		"tooltip": func(tip *Tooltip, text string) template.HTML {
			return tips.Attach(tip.Key, tip.Content, template.HTML(template.HTMLEscapeString(text)))
		},
	})

	return tmpl.Execute(w, t)
}
