package flow

import (
	"fmt"

	"github.com/matzehuels/flowtower/pkg/network"
)

// Verify checks that st is a feasible flow on nw from source to sink:
//
//   - antisymmetry: flow[u][v] == -flow[v][u] for every pair
//   - capacity: flow[u][v] <= capacity[u][v], and pairs without an edge in
//     either direction carry nothing
//   - conservation: every node other than source and sink has zero net outflow
//
// The first violation is returned as an *[InvariantError]. Verify is used by
// tests and by the CLI's validate command; [Solve] never produces a state
// that fails it.
func Verify(nw *network.Network, st *State, source, sink int) error {
	if err := checkEndpoints(nw, st, source, sink); err != nil {
		return err
	}
	if st == nil {
		return ErrStateMismatch
	}
	n := nw.NodeCount()
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			f, r := st.Flow(u, v), st.Flow(v, u)
			if f != -r {
				return &InvariantError{Property: "antisymmetry", U: u, V: v,
					Detail: fmt.Sprintf("flow %d, reverse %d", f, r)}
			}
			if err := checkCapacity(nw, u, v, f); err != nil {
				return err
			}
			if err := checkCapacity(nw, v, u, r); err != nil {
				return err
			}
		}
	}
	for u := 0; u < n; u++ {
		if u == source || u == sink {
			continue
		}
		if net := st.NetOutflow(u); net != 0 {
			return &InvariantError{Property: "conservation", U: u, V: -1,
				Detail: fmt.Sprintf("net outflow %d", net)}
		}
	}
	return nil
}

func checkCapacity(nw *network.Network, u, v int, f int64) error {
	c := nw.Capacity(u, v)
	if !c.Positive() && !nw.Capacity(v, u).Positive() && f != 0 {
		return &InvariantError{Property: "capacity", U: u, V: v,
			Detail: fmt.Sprintf("flow %d on a pair without edges", f)}
	}
	if !c.IsUnbounded() && f > c.Units() {
		return &InvariantError{Property: "capacity", U: u, V: v,
			Detail: fmt.Sprintf("flow %d exceeds capacity %s", f, c)}
	}
	return nil
}
