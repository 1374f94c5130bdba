// Package table renders Nomad allocations as a table of display cells.
package table

import (
	"github.com/seatgeek/nomad-alloc-table/displaytime"
	"github.com/seatgeek/nomad-alloc-table/link"
	"github.com/seatgeek/nomad-alloc-table/structs"
)

// Header holds the fixed column titles, in display order
var Header = []string{
	"ID",
	"Job",
	"Task Group",
	"Task",
	"Client Status",
	"Desired Status",
	"Node",
	"Evaluation",
	"Time",
}

// Color and icon are looked up independently; a status may have one without the other.
var clientStatusColor = map[string]string{
	"complete": "text-success",
	"running":  "text-info",
	"lost":     "text-danger",
}

var clientStatusIcon = map[string]string{
	"complete": "ok",
	"running":  "cog",
	"lost":     "remove",
}

// LinkResolver turns an entity id into a renderable reference
type LinkResolver interface {
	Resolve(kind link.Kind, id string, opts link.Options) link.Link
}

// TimeFormatter turns a Nomad timestamp into a display string
type TimeFormatter interface {
	Format(nanos int64) string
}

// Formatter maps allocations to table rows
type Formatter struct {
	links LinkResolver
	times TimeFormatter
}

// New returns a Formatter; nil collaborators fall back to the package defaults
func New(links LinkResolver, times TimeFormatter) *Formatter {
	if links == nil {
		links = link.NewResolver("")
	}
	if times == nil {
		times = displaytime.New()
	}

	return &Formatter{links: links, times: times}
}

// Render produces one row per allocation, in input order.
// Every allocation must have an ID; see structs.ValidateAllocations.
func (f *Formatter) Render(allocations []structs.Allocation, nodes structs.NodeList) *Table {
	t := &Table{
		Header: append([]string(nil), Header...),
		Rows:   make([]Row, 0, len(allocations)),
	}

	for _, allocation := range allocations {
		t.Rows = append(t.Rows, f.row(allocation, nodes))
	}

	return t
}

func (f *Formatter) row(a structs.Allocation, nodes structs.NodeList) Row {
	return Row{
		Key:           a.ID,
		ID:            f.links.Resolve(link.Alloc, a.ID, link.Options{Short: true}),
		Job:           f.links.Resolve(link.Job, a.JobID, link.Options{Short: true}),
		TaskGroup:     f.links.Resolve(link.TaskGroup, a.TaskGroupId, link.Options{JobID: a.JobID, Label: a.TaskGroup}),
		Task:          a.Name,
		ClientStatus:  clientStatus(a.ClientStatus),
		DesiredStatus: desiredStatus(a),
		Node:          f.links.Resolve(link.Node, a.NodeID, link.Options{Short: true, Nodes: nodes}),
		Eval:          f.links.Resolve(link.Eval, a.EvalID, link.Options{Short: true}),
		Time:          f.times.Format(a.CreateTime),
		CreateTime:    a.CreateTime,
	}
}

func clientStatus(status string) ClientStatusCell {
	return ClientStatusCell{
		Text:  status,
		Color: clientStatusColor[status],
		Icon:  clientStatusIcon[status],
	}
}

func desiredStatus(a structs.Allocation) DesiredStatusCell {
	if a.DesiredDescription == "" {
		return DesiredStatusCell{Variant: DesiredPlain, Text: a.DesiredStatus}
	}

	return DesiredStatusCell{
		Variant: DesiredTooltip,
		Text:    a.DesiredStatus,
		Tooltip: &Tooltip{
			Key:     TooltipKey(a.ID),
			Content: a.DesiredDescription,
		},
	}
}

// TooltipKey is unique per allocation within one table
func TooltipKey(allocationID string) string {
	return "tooltip-" + allocationID
}
