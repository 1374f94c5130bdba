package structs

import (
	nomad "github.com/hashicorp/nomad/api"
)

// Node is a Nomad client node, used to give node links a readable name
type Node struct {
	ID         string
	Name       string
	Datacenter string
	Status     string
}

// NodeList is a read-only list of known nodes
type NodeList []Node

// NewNodeList converts Nomad node list stubs
func NewNodeList(stubs []*nomad.NodeListStub) NodeList {
	nodes := make(NodeList, 0, len(stubs))
	for _, stub := range stubs {
		if stub == nil {
			continue
		}

		nodes = append(nodes, Node{
			ID:         stub.ID,
			Name:       stub.Name,
			Datacenter: stub.Datacenter,
			Status:     stub.Status,
		})
	}

	return nodes
}

// Find looks up a node by its full ID
func (l NodeList) Find(id string) (Node, bool) {
	if id == "" {
		return Node{}, false
	}

	for _, node := range l {
		if node.ID == id {
			return node, true
		}
	}

	return Node{}, false
}
