// Package link builds cross references between Nomad entities shown in a table.
package link

import (
	"net/url"
	"strings"

	"github.com/seatgeek/nomad-alloc-table/structs"
)

// Kind is the type of entity a link points to
type Kind string

const (
	Alloc     Kind = "alloc"
	Job       Kind = "job"
	TaskGroup Kind = "taskGroup"
	Node      Kind = "node"
	Eval      Kind = "eval"
)

// DefaultPrefix is used when a resolver is created without a prefix
const DefaultPrefix = "/nomad/global"

// Placeholder is the label of a link to an absent entity
const Placeholder = "-"

const shortLen = 8

// uuidKinds are identified by Nomad generated UUIDs. Job ids are user chosen
// names and are always shown in full.
var uuidKinds = map[Kind]bool{
	Alloc: true,
	Node:  true,
	Eval:  true,
}

// Options tune how a single link is resolved
type Options struct {
	// Short displays the abbreviated form of UUID ids (allocations, nodes, evaluations)
	Short bool
	// Label overrides the displayed text
	Label string
	// JobID is the owning job, required for task group links
	JobID string
	// Nodes is consulted to show node names instead of ids
	Nodes structs.NodeList
}

// Link is a renderable reference to an entity
type Link struct {
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// Empty reports whether the link has no target
func (l Link) Empty() bool {
	return l.Href == ""
}

// Resolver turns entity ids into links below a path prefix
type Resolver struct {
	prefix string
}

// NewResolver ...
func NewResolver(prefix string) *Resolver {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Resolver{prefix: prefix}
}

// Resolve never fails: unknown kinds and empty ids give a placeholder link
func (r *Resolver) Resolve(kind Kind, id string, opts Options) Link {
	l := Link{Kind: kind, ID: id, Label: Placeholder}
	if id == "" {
		return l
	}

	path := r.path(kind, id, opts)
	if path == "" {
		return l
	}
	l.Href = r.prefix + path

	switch {
	case opts.Label != "":
		l.Label = opts.Label
	case kind == Node:
		l.Label = nodeLabel(id, opts)
	case opts.Short && uuidKinds[kind]:
		l.Label = Short(id)
	default:
		l.Label = id
	}

	return l
}

func (r *Resolver) path(kind Kind, id string, opts Options) string {
	escaped := url.PathEscape(id)

	switch kind {
	case Alloc:
		return "/allocations/" + escaped
	case Job:
		return "/jobs/" + escaped
	case TaskGroup:
		if opts.JobID == "" {
			return ""
		}
		return "/jobs/" + url.PathEscape(opts.JobID) + "/taskgroups/" + escaped
	case Node:
		return "/clients/" + escaped
	case Eval:
		return "/evaluations/" + escaped
	default:
		return ""
	}
}

func nodeLabel(id string, opts Options) string {
	if node, ok := opts.Nodes.Find(id); ok && node.Name != "" {
		return node.Name
	}

	if opts.Short {
		return Short(id)
	}

	return id
}

// Short returns the abbreviated display form of a Nomad UUID
func Short(id string) string {
	if i := strings.IndexRune(id, '-'); i > 0 {
		id = id[:i]
	}
	if len(id) > shortLen {
		id = id[:shortLen]
	}
	return id
}
