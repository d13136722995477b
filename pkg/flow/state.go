package flow

import (
	"slices"

	"github.com/matzehuels/flowtower/pkg/network"
)

// State is an N×N matrix of signed flow values.
//
// A State starts at all zeros and is mutated only while solving. After every
// augmentation it is antisymmetric (flow[u][v] == -flow[v][u]) and respects
// capacities (flow[u][v] <= capacity[u][v]); see [Verify].
type State struct {
	n    int
	flow []int64
}

// NewState returns an all-zero state for n nodes.
func NewState(n int) *State {
	if n < 0 {
		n = 0
	}
	return &State{n: n, flow: make([]int64, n*n)}
}

// Size returns N.
func (s *State) Size() int { return s.n }

// Flow returns flow[u][v]. Out-of-range indices read as zero.
func (s *State) Flow(u, v int) int64 {
	if u < 0 || v < 0 || u >= s.n || v >= s.n {
		return 0
	}
	return s.flow[u*s.n+v]
}

// Residual returns the capacity left on u→v given the current flow.
// A pair without an edge in either direction has zero residual capacity; a
// reverse pair carrying flow f has residual f.
func (s *State) Residual(nw *network.Network, u, v int) network.Capacity {
	return nw.Capacity(u, v).Residual(s.Flow(u, v))
}

// NetOutflow returns the sum over v of flow[u][v]: outgoing minus incoming flow.
// It is zero for every node except the source and sink of a feasible flow.
func (s *State) NetOutflow(u int) int64 {
	if u < 0 || u >= s.n {
		return 0
	}
	var sum int64
	for _, f := range s.flow[u*s.n : (u+1)*s.n] {
		sum += f
	}
	return sum
}

// Matrix returns a fresh N×N copy of the flow values.
func (s *State) Matrix() [][]int64 {
	out := make([][]int64, s.n)
	for u := range out {
		out[u] = slices.Clone(s.flow[u*s.n : (u+1)*s.n])
	}
	return out
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	return &State{n: s.n, flow: slices.Clone(s.flow)}
}

// push moves amount units along u→v, keeping the matrix antisymmetric.
func (s *State) push(u, v int, amount int64) {
	s.flow[u*s.n+v] += amount
	s.flow[v*s.n+u] -= amount
}
