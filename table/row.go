package table

import (
	"github.com/seatgeek/nomad-alloc-table/link"
)

// Table is a rendered allocation table
type Table struct {
	Header []string `json:"header"`
	Rows   []Row    `json:"rows"`
}

// Row holds the display cells of one allocation
type Row struct {
	Key           string            `json:"key"`
	ID            link.Link         `json:"id"`
	Job           link.Link         `json:"job"`
	TaskGroup     link.Link         `json:"task_group"`
	Task          string            `json:"task"`
	ClientStatus  ClientStatusCell  `json:"client_status"`
	DesiredStatus DesiredStatusCell `json:"desired_status"`
	Node          link.Link         `json:"node"`
	Eval          link.Link         `json:"evaluation"`
	Time          string            `json:"time"`
	CreateTime    int64             `json:"create_time"`
}

// ClientStatusCell is the client status with its optional color class and icon glyph
type ClientStatusCell struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// DesiredVariant selects how the desired status is shown
type DesiredVariant string

const (
	DesiredPlain   DesiredVariant = "plain"
	DesiredTooltip DesiredVariant = "tooltip"
)

// DesiredStatusCell is the desired status; Tooltip is set only for DesiredTooltip
type DesiredStatusCell struct {
	Variant DesiredVariant `json:"variant"`
	Text    string         `json:"text"`
	Tooltip *Tooltip       `json:"tooltip,omitempty"`
}

// Tooltip is the popup attached to a desired status
type Tooltip struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}
