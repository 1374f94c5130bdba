package structs

import (
	"testing"

	multierror "github.com/hashicorp/go-multierror"
	nomad "github.com/hashicorp/nomad/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllocation(t *testing.T) {
	stub := &nomad.AllocationListStub{
		ID:                 "a1",
		EvalID:             "e1",
		Name:               "web.web[0]",
		NodeID:             "n1",
		JobID:              "j1",
		TaskGroup:          "web",
		DesiredStatus:      "run",
		DesiredDescription: "rescheduled due to node drain",
		ClientStatus:       "running",
		CreateTime:         1000,
	}

	alloc := NewAllocation(stub)
	assert.Equal(t, "a1", alloc.ID)
	assert.Equal(t, "j1", alloc.JobID)
	assert.Equal(t, "web", alloc.TaskGroup)
	assert.Equal(t, "web.web[0]", alloc.Name)
	assert.Equal(t, "running", alloc.ClientStatus)
	assert.Equal(t, "run", alloc.DesiredStatus)
	assert.Equal(t, "rescheduled due to node drain", alloc.DesiredDescription)
	assert.Equal(t, "n1", alloc.NodeID)
	assert.Equal(t, "e1", alloc.EvalID)
	assert.Equal(t, int64(1000), alloc.CreateTime)
	assert.Equal(t, TaskGroupID("j1", "web"), alloc.TaskGroupId)
}

func TestNewAllocationsKeepsOrder(t *testing.T) {
	stubs := []*nomad.AllocationListStub{{ID: "c"}, nil, {ID: "a"}, {ID: "b"}}

	allocs := NewAllocations(stubs)
	require.Len(t, allocs, 3)
	assert.Equal(t, "c", allocs[0].ID)
	assert.Equal(t, "a", allocs[1].ID)
	assert.Equal(t, "b", allocs[2].ID)
}

func TestTaskGroupID(t *testing.T) {
	assert.Equal(t, TaskGroupID("job", "web"), TaskGroupID("job", "web"))
	assert.NotEqual(t, TaskGroupID("job", "web"), TaskGroupID("job", "db"))
	assert.NotEqual(t, TaskGroupID("job", "web"), TaskGroupID("other", "web"))
	assert.NotEmpty(t, TaskGroupID("", ""))
}

func TestValidateAllocations(t *testing.T) {
	assert.NoError(t, ValidateAllocations(nil))
	assert.NoError(t, ValidateAllocations([]Allocation{{ID: "a1"}}))

	err := ValidateAllocations([]Allocation{{ID: "a1"}, {JobID: "j2"}, {ID: "a3"}, {Name: "x"}})
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	assert.Contains(t, merr.Errors[0].Error(), "#1")
	assert.Contains(t, merr.Errors[0].Error(), `"j2"`)
	assert.Contains(t, merr.Errors[1].Error(), "#3")
}
