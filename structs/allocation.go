package structs

import (
	"fmt"
	"strconv"

	multierror "github.com/hashicorp/go-multierror"
	nomad "github.com/hashicorp/nomad/api"
	"github.com/mitchellh/hashstructure"
)

// Allocation is the subset of a Nomad allocation shown in an allocation table
type Allocation struct {
	ID                 string
	JobID              string
	TaskGroupId        string
	TaskGroup          string
	Name               string
	ClientStatus       string
	DesiredStatus      string
	DesiredDescription string
	NodeID             string
	EvalID             string
	CreateTime         int64
}

// NewAllocation converts a Nomad allocation list stub
func NewAllocation(stub *nomad.AllocationListStub) Allocation {
	return Allocation{
		ID:                 stub.ID,
		JobID:              stub.JobID,
		TaskGroupId:        TaskGroupID(stub.JobID, stub.TaskGroup),
		TaskGroup:          stub.TaskGroup,
		Name:               stub.Name,
		ClientStatus:       stub.ClientStatus,
		DesiredStatus:      stub.DesiredStatus,
		DesiredDescription: stub.DesiredDescription,
		NodeID:             stub.NodeID,
		EvalID:             stub.EvalID,
		CreateTime:         stub.CreateTime,
	}
}

// NewAllocations converts a list of stubs, preserving order and skipping nil entries
func NewAllocations(stubs []*nomad.AllocationListStub) []Allocation {
	allocations := make([]Allocation, 0, len(stubs))
	for _, stub := range stubs {
		if stub == nil {
			continue
		}
		allocations = append(allocations, NewAllocation(stub))
	}

	return allocations
}

type taskGroupKey struct {
	JobID     string
	TaskGroup string
}

// TaskGroupID derives a stable identifier for a task group within a job.
// Nomad does not assign task groups an id of their own.
func TaskGroupID(jobID, taskGroup string) string {
	hash, err := hashstructure.Hash(taskGroupKey{JobID: jobID, TaskGroup: taskGroup}, nil)
	if err != nil {
		return jobID + "." + taskGroup
	}

	return strconv.FormatUint(hash, 10)
}

// ValidateAllocations reports every allocation without an ID.
// Rows are keyed by ID, so callers must check this before rendering.
func ValidateAllocations(allocations []Allocation) error {
	var result *multierror.Error

	for i, allocation := range allocations {
		if allocation.ID == "" {
			result = multierror.Append(result, fmt.Errorf("allocation #%d (job %q, name %q) has no ID", i, allocation.JobID, allocation.Name))
		}
	}

	return result.ErrorOrNil()
}
