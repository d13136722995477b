package flow

import "github.com/matzehuels/flowtower/pkg/network"

// Cut is a minimum source/sink cut certifying a maximum flow.
type Cut struct {
	// SourceSide lists, in ascending order, the nodes reachable from the
	// source in the final residual graph.
	SourceSide []int

	// Edges are the declared edges leaving SourceSide, ordered by tail then
	// head. Each one is saturated.
	Edges []network.Edge

	// Capacity is the summed capacity of Edges. It equals the max flow.
	Capacity int64
}

// MinCut returns the cut found by the last, failed augmenting-path search.
func (r *Result) MinCut() Cut {
	var cut Cut
	for u, in := range r.reachable {
		if in {
			cut.SourceSide = append(cut.SourceSide, u)
		}
	}
	for _, e := range r.nw.Edges() {
		if r.reachable[e.From] && !r.reachable[e.To] {
			cut.Edges = append(cut.Edges, e)
			cut.Capacity += e.Capacity.Units()
		}
	}
	return cut
}

// Flow returns the flow on u→v in the final state.
func (r *Result) Flow(u, v int) int64 { return r.State.Flow(u, v) }

// InSourceSide reports whether u lies on the source side of the min cut.
func (r *Result) InSourceSide(u int) bool {
	return u >= 0 && u < len(r.reachable) && r.reachable[u]
}
