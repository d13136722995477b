package network

import (
	"fmt"
	"slices"
)

// Role is the part a node plays in a layered logistics network.
// Roles are never stored per node; they follow from set membership.
type Role int

const (
	// RoleNone marks a node outside every role set.
	RoleNone Role = iota
	// RoleSource is the super-source.
	RoleSource
	// RoleSink is the super-sink.
	RoleSink
	// RoleTerminal marks a supply terminal fed by the super-source.
	RoleTerminal
	// RoleWarehouse marks an intermediate warehouse.
	RoleWarehouse
	// RoleStore marks a store drained by the super-sink.
	RoleStore
)

func (r Role) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleSink:
		return "sink"
	case RoleTerminal:
		return "terminal"
	case RoleWarehouse:
		return "warehouse"
	case RoleStore:
		return "store"
	}
	return "none"
}

// Roles assigns nodes to the three disjoint layers used for reporting.
// The max-flow computation itself never looks at Roles.
type Roles struct {
	Terminals  []int
	Warehouses []int
	Stores     []int

	// Labels optionally maps nodes to display names. Nodes without a label
	// fall back to "Terminal k", "Warehouse k", "Store k" (1-based position
	// in the role set) or "node i".
	Labels map[int]string
}

// Validate checks that every member is a node of nw, that the sets are
// disjoint and that neither the source nor the sink is a member.
func (r Roles) Validate(nw *Network) error {
	seen := make(map[int]bool)
	for _, set := range [][]int{r.Terminals, r.Warehouses, r.Stores} {
		for _, u := range set {
			if !nw.contains(u) {
				return nodeErr(u, ErrNodeOutOfRange)
			}
			if u == nw.source || u == nw.sink {
				return nodeErr(u, ErrRoleContainsEndpoint)
			}
			if seen[u] {
				return nodeErr(u, ErrRoleOverlap)
			}
			seen[u] = true
		}
	}
	return nil
}

// RoleOf returns the role of node u in nw.
func (r Roles) RoleOf(nw *Network, u int) Role {
	switch {
	case u == nw.source:
		return RoleSource
	case u == nw.sink:
		return RoleSink
	case slices.Contains(r.Terminals, u):
		return RoleTerminal
	case slices.Contains(r.Warehouses, u):
		return RoleWarehouse
	case slices.Contains(r.Stores, u):
		return RoleStore
	}
	return RoleNone
}

// Label returns the display name of node u.
func (r Roles) Label(u int) string {
	if l, ok := r.Labels[u]; ok {
		return l
	}
	if i := slices.Index(r.Terminals, u); i >= 0 {
		return fmt.Sprintf("Terminal %d", i+1)
	}
	if i := slices.Index(r.Warehouses, u); i >= 0 {
		return fmt.Sprintf("Warehouse %d", i+1)
	}
	if i := slices.Index(r.Stores, u); i >= 0 {
		return fmt.Sprintf("Store %d", i+1)
	}
	return fmt.Sprintf("node %d", u)
}
