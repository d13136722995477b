package flow

import (
	"slices"

	"github.com/matzehuels/flowtower/pkg/network"
)

// FlowPath is one source→sink path of a path decomposition together with the
// units it carries.
type FlowPath struct {
	Nodes []int `json:"nodes"`
	Units int64 `json:"units"`
}

// DecomposePaths splits the flow in st into source→sink paths.
//
// It repeatedly finds a fewest-edge path over pairs carrying positive flow,
// records it with its bottleneck and removes that amount from a private copy
// of the state. The summed units equal the net outflow of source. Flow on
// cycles that do not touch a source→sink path is left out. st is not
// modified.
func DecomposePaths(st *State, source, sink int) []FlowPath {
	if st == nil || source < 0 || sink < 0 || source >= st.n || sink >= st.n || source == sink {
		return nil
	}
	work := st.Clone()
	parent := make([]int, work.n)
	var paths []FlowPath

	for positivePath(work, source, sink, parent) {
		var nodes []int
		units := int64(-1)
		for cur := sink; cur != source; cur = parent[cur] {
			nodes = append(nodes, cur)
			if f := work.Flow(parent[cur], cur); units < 0 || f < units {
				units = f
			}
		}
		nodes = append(nodes, source)
		slices.Reverse(nodes)

		for i := 1; i < len(nodes); i++ {
			work.push(nodes[i-1], nodes[i], -units)
		}
		paths = append(paths, FlowPath{Nodes: nodes, Units: units})
	}
	return paths
}

// positivePath is a BFS over pairs with positive flow, in ascending index
// order. It fills parent and reports whether sink was reached.
func positivePath(st *State, source, sink int, parent []int) bool {
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, st.n)
	visited[source] = true
	queue := []int{source}
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		row := st.flow[u*st.n : (u+1)*st.n]
		for v, f := range row {
			if f <= 0 || visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return true
			}
			queue = append(queue, v)
		}
	}
	return false
}

// Attribute turns a path decomposition into report rows. Each path is
// credited to the first terminal and the last store it visits; paths that
// miss either are skipped. Rows are aggregated and ordered like [Decompose].
func Attribute(paths []FlowPath, roles network.Roles) []ReportRow {
	units := make(map[[2]int]int64)
	for _, p := range paths {
		t := slices.IndexFunc(p.Nodes, func(u int) bool { return slices.Contains(roles.Terminals, u) })
		s := -1
		for i := len(p.Nodes) - 1; i >= 0; i-- {
			if slices.Contains(roles.Stores, p.Nodes[i]) {
				s = i
				break
			}
		}
		if t < 0 || s < 0 {
			continue
		}
		units[[2]int{p.Nodes[t], p.Nodes[s]}] += p.Units
	}
	return sortedRows(units)
}
