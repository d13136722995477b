// Package flow computes maximum flows on a [network.Network] and attributes
// the result to terminal→store pairs.
//
// # Solving
//
// [Solve] runs the Edmonds–Karp method: breadth-first augmenting paths over
// the residual graph, neighbors visited in ascending index order, until no
// path remains. The outcome is a [Result] holding the max-flow value, the
// final [State] and a minimum cut certificate:
//
//	res, err := flow.Solve(nw, nil)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.MaxFlow, res.MinCut().Capacity) // always equal
//
// A State is an antisymmetric N×N matrix of signed flow values. [Verify]
// checks antisymmetry, capacity and conservation on any State, which makes it
// handy for tests and for flows loaded from disk.
//
// # Reporting
//
// [Decompose] implements the min-pairing heuristic used by the logistics
// report: for every terminal t, warehouse w and store s it credits
// min(flow[t][w], flow[w][s]) to the pair (t, s). This is cheap but can
// over-attribute at warehouses fed by several terminals; those warehouses are
// returned as [Ambiguity] values.
//
// [DecomposePaths] and [Attribute] give an exact alternative: the flow is
// split into source→sink paths whose units add up to the max flow, and each
// path is credited to the terminal and store it passes through.
//
// # Observability
//
// Per-augmentation events go to [Options.Logger] at debug level and to the
// solver hooks registered in package observability.
package flow
