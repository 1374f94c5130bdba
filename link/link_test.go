package link

import (
	"testing"

	"github.com/seatgeek/nomad-alloc-table/structs"
	"github.com/stretchr/testify/assert"
)

const allocID = "5456bd7a-9fc0-c0dd-6131-cbee77f57577"

func TestShort(t *testing.T) {
	assert.Equal(t, "5456bd7a", Short(allocID))
	assert.Equal(t, "a1", Short("a1"))
	assert.Equal(t, "abcdefgh", Short("abcdefghijkl"))
	assert.Equal(t, "", Short(""))
	assert.Equal(t, "-abc", Short("-abc"))
}

func TestResolve(t *testing.T) {
	r := NewResolver("")

	cases := []struct {
		name  string
		kind  Kind
		id    string
		opts  Options
		label string
		href  string
	}{
		{"alloc short", Alloc, allocID, Options{Short: true}, "5456bd7a", "/nomad/global/allocations/" + allocID},
		{"alloc full", Alloc, allocID, Options{}, allocID, "/nomad/global/allocations/" + allocID},
		{"job", Job, "my job", Options{Short: true}, "my job", "/nomad/global/jobs/my%20job"},
		{"dashed job", Job, "web-frontend", Options{Short: true}, "web-frontend", "/nomad/global/jobs/web-frontend"},
		{"long job", Job, "billing-reconciliation-batch", Options{Short: true}, "billing-reconciliation-batch", "/nomad/global/jobs/billing-reconciliation-batch"},
		{"eval uuid", Eval, "a1e3ab67-2c9b-4b5f-3e55-8a9ac39d9b4a", Options{Short: true}, "a1e3ab67", "/nomad/global/evaluations/a1e3ab67-2c9b-4b5f-3e55-8a9ac39d9b4a"},
		{"task group", TaskGroup, "123", Options{JobID: "j1", Label: "web"}, "web", "/nomad/global/jobs/j1/taskgroups/123"},
		{"eval", Eval, "e1", Options{Short: true}, "e1", "/nomad/global/evaluations/e1"},
		{"node", Node, "n1", Options{Short: true}, "n1", "/nomad/global/clients/n1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := r.Resolve(c.kind, c.id, c.opts)
			assert.Equal(t, c.kind, l.Kind)
			assert.Equal(t, c.id, l.ID)
			assert.Equal(t, c.label, l.Label)
			assert.Equal(t, c.href, l.Href)
			assert.False(t, l.Empty())
		})
	}
}

func TestResolveKeepsJobNamesDistinct(t *testing.T) {
	r := NewResolver("")

	frontend := r.Resolve(Job, "web-frontend", Options{Short: true})
	backend := r.Resolve(Job, "web-backend", Options{Short: true})
	assert.Equal(t, "web-frontend", frontend.Label)
	assert.Equal(t, "web-backend", backend.Label)
	assert.NotEqual(t, frontend.Label, backend.Label)
}

func TestResolvePlaceholders(t *testing.T) {
	r := NewResolver("/ui/")

	l := r.Resolve(Node, "", Options{Short: true})
	assert.True(t, l.Empty())
	assert.Equal(t, Placeholder, l.Label)

	l = r.Resolve(TaskGroup, "123", Options{Label: "web"})
	assert.True(t, l.Empty(), "task group without job cannot be linked")

	l = r.Resolve(Kind("deployment"), "d1", Options{})
	assert.True(t, l.Empty())
	assert.Equal(t, Placeholder, l.Label)

	l = r.Resolve(Alloc, "a1", Options{})
	assert.Equal(t, "/ui/allocations/a1", l.Href)
}

func TestResolveNodeFromList(t *testing.T) {
	r := NewResolver("")
	nodes := structs.NodeList{
		{ID: "0f3b8d3c-1111-2222-3333-444455556666", Name: "worker-1"},
		{ID: "n2"},
	}

	l := r.Resolve(Node, "0f3b8d3c-1111-2222-3333-444455556666", Options{Short: true, Nodes: nodes})
	assert.Equal(t, "worker-1", l.Label)
	assert.Equal(t, "/nomad/global/clients/0f3b8d3c-1111-2222-3333-444455556666", l.Href)

	// known node without a name, and unknown node, fall back to the id
	assert.Equal(t, "n2", r.Resolve(Node, "n2", Options{Short: true, Nodes: nodes}).Label)
	assert.Equal(t, "deadbeef", r.Resolve(Node, "deadbeef-0000", Options{Short: true, Nodes: nodes}).Label)
}
