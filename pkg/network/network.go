package network

import (
	"math"
	"slices"
)

// Edge is a directed, capacitated connection between two nodes.
type Edge struct {
	From     int      // Tail node index
	To       int      // Head node index
	Capacity Capacity // Positive finite or unbounded
}

// Network is an immutable directed graph with per-edge capacities over the
// dense node indices [0, N), with one designated source and one designated sink.
//
// Capacities are stored in an N×N row-major matrix where a zero capacity means
// "no edge". capacity[u][v] and capacity[v][u] are independent directed edges.
// A Network never changes after [New] returns, so it is safe to share between
// goroutines and to solve repeatedly.
type Network struct {
	n        int
	source   int
	sink     int
	capacity []Capacity
	edges    []Edge
	// residual[u] lists, in ascending order, every v that can ever have
	// positive residual capacity from u: heads of u's edges and tails of
	// edges entering u.
	residual [][]int
}

// New validates the description and builds a Network.
//
// The checks run in a fixed order and the first failure is returned as a
// *[ConstructionError]: node count, source and sink range, source != sink,
// then every edge in input order (range, self-loop, capacity, duplicates,
// edges entering the source or leaving the sink), then the total finite
// capacity and finally the unbounded-path check. No partial network is ever
// returned.
func New(n int, edges []Edge, source, sink int) (*Network, error) {
	if n <= 0 {
		return nil, graphErr(ErrInvalidNodeCount)
	}
	if source < 0 || source >= n {
		return nil, nodeErr(source, ErrNodeOutOfRange)
	}
	if sink < 0 || sink >= n {
		return nil, nodeErr(sink, ErrNodeOutOfRange)
	}
	if source == sink {
		return nil, nodeErr(source, ErrSourceIsSink)
	}

	nw := &Network{
		n:        n,
		source:   source,
		sink:     sink,
		capacity: make([]Capacity, n*n),
		edges:    make([]Edge, 0, len(edges)),
		residual: make([][]int, n),
	}

	var total int64
	for _, e := range edges {
		if err := nw.checkEdge(e); err != nil {
			return nil, err
		}
		if !e.Capacity.IsUnbounded() {
			if total > math.MaxInt64-e.Capacity.units {
				return nil, edgeErr(e.From, e.To, ErrCapacityOverflow)
			}
			total += e.Capacity.units
		}
		nw.capacity[e.From*n+e.To] = e.Capacity
		nw.edges = append(nw.edges, e)
		nw.residual[e.From] = append(nw.residual[e.From], e.To)
		nw.residual[e.To] = append(nw.residual[e.To], e.From)
	}

	for u := range nw.residual {
		slices.Sort(nw.residual[u])
		nw.residual[u] = slices.Compact(nw.residual[u])
	}
	slices.SortFunc(nw.edges, func(a, b Edge) int {
		if a.From != b.From {
			return a.From - b.From
		}
		return a.To - b.To
	})

	if nw.UnboundedReachable(source, sink) {
		return nil, graphErr(ErrUnboundedPath)
	}
	return nw, nil
}

func (nw *Network) checkEdge(e Edge) error {
	n := nw.n
	if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
		return edgeErr(e.From, e.To, ErrNodeOutOfRange)
	}
	if e.From == e.To {
		return edgeErr(e.From, e.To, ErrSelfLoop)
	}
	if !e.Capacity.Positive() {
		return edgeErr(e.From, e.To, ErrNonPositiveCapacity)
	}
	if nw.capacity[e.From*n+e.To].Positive() {
		return edgeErr(e.From, e.To, ErrDuplicateEdge)
	}
	if e.To == nw.source {
		return edgeErr(e.From, e.To, ErrSourceHasIncoming)
	}
	if e.From == nw.sink {
		return edgeErr(e.From, e.To, ErrSinkHasOutgoing)
	}
	return nil
}

// NodeCount returns N, the number of nodes.
func (nw *Network) NodeCount() int { return nw.n }

// EdgeCount returns the number of declared edges.
func (nw *Network) EdgeCount() int { return len(nw.edges) }

// Source returns the designated source node.
func (nw *Network) Source() int { return nw.source }

// Sink returns the designated sink node.
func (nw *Network) Sink() int { return nw.sink }

// Capacity returns the capacity of u→v, or a zero capacity when there is no
// such edge or either index is out of range.
func (nw *Network) Capacity(u, v int) Capacity {
	if !nw.contains(u) || !nw.contains(v) {
		return Capacity{}
	}
	return nw.capacity[u*nw.n+v]
}

// HasEdge reports whether u→v was declared.
func (nw *Network) HasEdge(u, v int) bool { return nw.Capacity(u, v).Positive() }

// Edges returns a copy of the declared edges ordered by tail, then head.
func (nw *Network) Edges() []Edge { return slices.Clone(nw.edges) }

// ResidualNeighbors returns, in ascending index order, the nodes that may be
// reachable from u in some residual graph of this network. The returned slice
// is shared and must not be modified.
//
// Visiting these nodes in order is equivalent to scanning every index
// 0..N-1 and testing the residual capacity, because a pair without an edge in
// either direction can never carry flow.
func (nw *Network) ResidualNeighbors(u int) []int {
	if !nw.contains(u) {
		return nil
	}
	return nw.residual[u]
}

// CapacityMatrix returns a fresh N×N copy of the capacity matrix for
// renderers and exporters.
func (nw *Network) CapacityMatrix() [][]Capacity {
	out := make([][]Capacity, nw.n)
	for u := range out {
		out[u] = slices.Clone(nw.capacity[u*nw.n : (u+1)*nw.n])
	}
	return out
}

// UnboundedReachable reports whether to is reachable from from using
// unbounded edges only.
func (nw *Network) UnboundedReachable(from, to int) bool {
	if !nw.contains(from) || !nw.contains(to) {
		return false
	}
	seen := make([]bool, nw.n)
	seen[from] = true
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == to {
			return true
		}
		for _, v := range nw.residual[u] {
			if !seen[v] && nw.capacity[u*nw.n+v].IsUnbounded() {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

func (nw *Network) contains(u int) bool { return u >= 0 && u < nw.n }
