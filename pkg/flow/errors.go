package flow

import (
	"errors"
	"fmt"

	"github.com/matzehuels/flowtower/pkg/network"
)

var (
	// ErrNilNetwork is returned when a nil *network.Network is passed in.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrStateMismatch is returned when a State does not have the same size
	// as the network it is used with.
	ErrStateMismatch = errors.New("flow: state size does not match network")
)

// InvariantError reports the first flow invariant that [Verify] found broken.
type InvariantError struct {
	Property string // "antisymmetry", "capacity" or "conservation"
	U, V     int    // Offending pair; V is -1 for node-level properties
	Detail   string
}

func (e *InvariantError) Error() string {
	if e.V < 0 {
		return fmt.Sprintf("flow: %s violated at node %d: %s", e.Property, e.U, e.Detail)
	}
	return fmt.Sprintf("flow: %s violated on %d->%d: %s", e.Property, e.U, e.V, e.Detail)
}

// checkEndpoints rejects malformed solve requests before any work starts.
// Range and equality problems reuse the network construction errors so
// callers handle them in one place.
func checkEndpoints(nw *network.Network, st *State, source, sink int) error {
	if nw == nil {
		return ErrNilNetwork
	}
	n := nw.NodeCount()
	if st != nil && st.Size() != n {
		return ErrStateMismatch
	}
	if source < 0 || source >= n {
		return &network.ConstructionError{From: source, To: -1, Err: network.ErrNodeOutOfRange}
	}
	if sink < 0 || sink >= n {
		return &network.ConstructionError{From: sink, To: -1, Err: network.ErrNodeOutOfRange}
	}
	if source == sink {
		return &network.ConstructionError{From: source, To: -1, Err: network.ErrSourceIsSink}
	}
	return nil
}
