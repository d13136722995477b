package flow

import (
	"slices"

	"github.com/matzehuels/flowtower/pkg/network"
)

// AugmentingPath is a parent-pointer chain from the sink back to the source
// in which every edge has positive residual capacity. It is only meaningful
// for the State it was found in; any push invalidates it.
type AugmentingPath struct {
	parent []int
	source int
	sink   int
}

// Parent returns the node from which v was discovered, or -1 for the source
// and for nodes the search never reached.
func (p AugmentingPath) Parent(v int) int {
	if v < 0 || v >= len(p.parent) {
		return -1
	}
	return p.parent[v]
}

// Nodes returns the path from source to sink.
func (p AugmentingPath) Nodes() []int {
	var nodes []int
	p.walk(func(prev, cur int) { nodes = append(nodes, cur) })
	nodes = append(nodes, p.source)
	slices.Reverse(nodes)
	return nodes
}

// walk calls fn for every edge prev→cur, from the sink back to the source.
// The chain always terminates because BFS assigns each parent once and the
// source has none.
func (p AugmentingPath) walk(fn func(prev, cur int)) {
	for cur := p.sink; cur != p.source; {
		prev := p.parent[cur]
		fn(prev, cur)
		cur = prev
	}
}

// search holds the BFS buffers reused across augmentations of one solve.
type search struct {
	parent  []int
	visited []bool
	queue   []int
}

func newSearch(n int) *search {
	return &search{
		parent:  make([]int, n),
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
	}
}

// run performs a breadth-first search over edges with positive residual
// capacity, visiting neighbors in ascending index order. It stops as soon as
// sink is first discovered, which yields a fewest-edge augmenting path. When
// it returns false, visited holds the source side of a minimum cut.
func (sr *search) run(nw *network.Network, st *State, source, sink int) bool {
	for i := range sr.parent {
		sr.parent[i] = -1
		sr.visited[i] = false
	}
	sr.queue = append(sr.queue[:0], source)
	sr.visited[source] = true

	for head := 0; head < len(sr.queue); head++ {
		u := sr.queue[head]
		for _, v := range nw.ResidualNeighbors(u) {
			if sr.visited[v] || !st.Residual(nw, u, v).Positive() {
				continue
			}
			sr.parent[v] = u
			sr.visited[v] = true
			if v == sink {
				return true
			}
			sr.queue = append(sr.queue, v)
		}
	}
	return false
}

// FindAugmentingPath searches the residual graph of st for a shortest
// source→sink path. It returns false when no augmenting path exists, which
// means st already carries a maximum flow. Neither nw nor st is modified.
//
// Invalid input is an error, never a missing path: a nil network or state,
// a state of the wrong size, or out-of-range or equal endpoints.
func FindAugmentingPath(nw *network.Network, st *State, source, sink int) (AugmentingPath, bool, error) {
	if st == nil {
		return AugmentingPath{}, false, ErrStateMismatch
	}
	if err := checkEndpoints(nw, st, source, sink); err != nil {
		return AugmentingPath{}, false, err
	}
	sr := newSearch(nw.NodeCount())
	if !sr.run(nw, st, source, sink) {
		return AugmentingPath{}, false, nil
	}
	return AugmentingPath{parent: slices.Clone(sr.parent), source: source, sink: sink}, true, nil
}
