package flow

import (
	"cmp"
	"slices"

	"github.com/matzehuels/flowtower/pkg/network"
)

// ReportRow attributes a number of units to a terminal→store pair.
type ReportRow struct {
	Terminal int   `json:"terminal"`
	Store    int   `json:"store"`
	Units    int64 `json:"units"`
}

// Ambiguity flags a warehouse whose heuristic attribution does not add up to
// the flow actually passing through it.
type Ambiguity struct {
	Warehouse  int   `json:"warehouse"`
	Attributed int64 `json:"attributed"`
	Throughput int64 `json:"throughput"`
}

// Decompose attributes flow to terminal→store pairs with the min-pairing
// heuristic: every terminal t, warehouse w and store s with positive
// flow[t][w] and flow[w][s] contribute min(flow[t][w], flow[w][s]) to (t, s).
//
// Contributions through different warehouses are summed into one row per
// pair. Rows are sorted by terminal, then store, and never carry zero or
// negative units. The heuristic over-attributes when a warehouse fans in from
// several terminals and out to several stores; every such warehouse is
// returned as an Ambiguity. For an exact split use [DecomposePaths].
func Decompose(st *State, roles network.Roles) ([]ReportRow, []Ambiguity) {
	if st == nil {
		return nil, nil
	}
	units := make(map[[2]int]int64)
	var ambiguities []Ambiguity

	for _, w := range roles.Warehouses {
		var attributed, throughput int64
		for _, s := range roles.Stores {
			if out := st.Flow(w, s); out > 0 {
				throughput += out
			}
		}
		for _, t := range roles.Terminals {
			in := st.Flow(t, w)
			if in <= 0 {
				continue
			}
			for _, s := range roles.Stores {
				out := st.Flow(w, s)
				if out <= 0 {
					continue
				}
				u := min(in, out)
				units[[2]int{t, s}] += u
				attributed += u
			}
		}
		if attributed != throughput {
			ambiguities = append(ambiguities, Ambiguity{Warehouse: w, Attributed: attributed, Throughput: throughput})
		}
	}

	return sortedRows(units), ambiguities
}

func sortedRows(units map[[2]int]int64) []ReportRow {
	rows := make([]ReportRow, 0, len(units))
	for k, u := range units {
		if u > 0 {
			rows = append(rows, ReportRow{Terminal: k[0], Store: k[1], Units: u})
		}
	}
	slices.SortFunc(rows, func(a, b ReportRow) int {
		if c := cmp.Compare(a.Terminal, b.Terminal); c != 0 {
			return c
		}
		return cmp.Compare(a.Store, b.Store)
	})
	return rows
}
