package network

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeCount is returned by [New] when the node count is not positive.
	ErrInvalidNodeCount = errors.New("node count must be positive")

	// ErrNodeOutOfRange is returned when a source, sink, edge endpoint or role
	// member lies outside [0, N).
	ErrNodeOutOfRange = errors.New("node index out of range")

	// ErrSourceIsSink is returned when the source and sink are the same node.
	ErrSourceIsSink = errors.New("source and sink must differ")

	// ErrNonPositiveCapacity is returned for a declared edge whose finite
	// capacity is zero or negative.
	ErrNonPositiveCapacity = errors.New("capacity must be positive")

	// ErrSelfLoop is returned for an edge whose endpoints are equal.
	ErrSelfLoop = errors.New("self-loops are not allowed")

	// ErrDuplicateEdge is returned when the same ordered pair is declared twice.
	// Callers must merge parallel edges before construction.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrSourceHasIncoming is returned for an edge that enters the source.
	ErrSourceHasIncoming = errors.New("source must only have outgoing edges")

	// ErrSinkHasOutgoing is returned for an edge that leaves the sink.
	ErrSinkHasOutgoing = errors.New("sink must only have incoming edges")

	// ErrUnboundedPath is returned when the sink can be reached from the source
	// using unbounded edges only. Such a network has no finite maximum flow.
	ErrUnboundedPath = errors.New("source reaches sink through unbounded edges only")

	// ErrCapacityOverflow is returned when the finite capacities sum past the
	// int64 range, so flow totals could wrap.
	ErrCapacityOverflow = errors.New("total finite capacity overflows int64")

	// ErrRoleOverlap is returned by [Roles.Validate] when a node belongs to more
	// than one of the terminal, warehouse and store sets.
	ErrRoleOverlap = errors.New("role sets must be disjoint")

	// ErrRoleContainsEndpoint is returned by [Roles.Validate] when the
	// source or sink appears in a role set.
	ErrRoleContainsEndpoint = errors.New("role sets must not contain the source or sink")
)

// ConstructionError reports why a network or role assignment was rejected.
// Err is always one of the sentinel errors of this package, so callers can
// match with errors.Is and recover the offending edge with errors.As.
type ConstructionError struct {
	// From and To identify the offending edge, or are -1 when the problem
	// is not tied to an edge. For node-level problems From holds the node.
	From, To int
	Err      error
}

func (e *ConstructionError) Error() string {
	switch {
	case e.From >= 0 && e.To >= 0:
		return fmt.Sprintf("network: edge %d->%d: %v", e.From, e.To, e.Err)
	case e.From >= 0:
		return fmt.Sprintf("network: node %d: %v", e.From, e.Err)
	}
	return "network: " + e.Err.Error()
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func graphErr(err error) error              { return &ConstructionError{From: -1, To: -1, Err: err} }
func nodeErr(node int, err error) error     { return &ConstructionError{From: node, To: -1, Err: err} }
func edgeErr(from, to int, err error) error { return &ConstructionError{From: from, To: to, Err: err} }
