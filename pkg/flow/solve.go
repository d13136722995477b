package flow

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowtower/pkg/network"
	"github.com/matzehuels/flowtower/pkg/observability"
)

// Options configures a solve. The zero value (or nil) is valid.
type Options struct {
	// Logger receives one Debug record per augmentation. Nil disables
	// per-augmentation logging.
	Logger *log.Logger

	// Hooks receives solver events. Nil uses the globally registered
	// hooks from observability.Solver().
	Hooks observability.SolverHooks
}

func (o *Options) hooks() observability.SolverHooks {
	if o != nil && o.Hooks != nil {
		return o.Hooks
	}
	return observability.Solver()
}

func (o *Options) logger() *log.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

// Result is the outcome of a max-flow computation.
type Result struct {
	// MaxFlow is the total flow leaving the source.
	MaxFlow int64

	// State is the final flow matrix. It is owned by the caller once
	// Solve returns.
	State *State

	// Augmentations is the number of augmenting paths pushed.
	Augmentations int

	Source int
	Sink   int

	nw        *network.Network
	reachable []bool
}

// Network returns the network that was solved.
func (r *Result) Network() *network.Network { return r.nw }

// Solve computes a maximum flow from nw.Source() to nw.Sink() with the
// Edmonds–Karp method.
//
// Each iteration finds a fewest-edge augmenting path with breadth-first
// search, pushes its bottleneck residual capacity along every edge of the
// path (adding to the forward pair and subtracting from the reverse pair) and
// adds it to the total. The loop ends on the first failed search; at that
// point the set of nodes the search reached is the source side of a minimum
// cut. Runs are deterministic: the same network always yields the same flow
// matrix.
//
// Complexity: O(V · E²) augmentations bound, O(V²) memory for the flow matrix.
func Solve(nw *network.Network, opts *Options) (*Result, error) {
	if nw == nil {
		return nil, ErrNilNetwork
	}
	return solve(nw, nw.Source(), nw.Sink(), opts)
}

// SolveBetween is like [Solve] but uses the given source and sink instead of
// the network's designated pair. It returns network.ErrUnboundedPath when the
// sink is reachable from source through unbounded edges only.
func SolveBetween(nw *network.Network, source, sink int, opts *Options) (*Result, error) {
	if err := checkEndpoints(nw, nil, source, sink); err != nil {
		return nil, err
	}
	if nw.UnboundedReachable(source, sink) {
		return nil, &network.ConstructionError{From: -1, To: -1, Err: network.ErrUnboundedPath}
	}
	return solve(nw, source, sink, opts)
}

func solve(nw *network.Network, source, sink int, opts *Options) (*Result, error) {
	if err := checkEndpoints(nw, nil, source, sink); err != nil {
		return nil, err
	}
	hooks := opts.hooks()
	logger := opts.logger()
	start := time.Now()
	hooks.OnSolveStart(nw.NodeCount(), nw.EdgeCount())

	st := NewState(nw.NodeCount())
	sr := newSearch(nw.NodeCount())
	res := &Result{State: st, Source: source, Sink: sink, nw: nw}

	for sr.run(nw, st, source, sink) {
		path := AugmentingPath{parent: sr.parent, source: source, sink: sink}

		bottleneck := network.Unbounded()
		path.walk(func(prev, cur int) {
			bottleneck = bottleneck.Min(st.Residual(nw, prev, cur))
		})
		if bottleneck.IsUnbounded() {
			// New and SolveBetween rule this out; keep the loop finite anyway.
			return nil, &network.ConstructionError{From: -1, To: -1, Err: network.ErrUnboundedPath}
		}

		amount := bottleneck.Units()
		path.walk(func(prev, cur int) { st.push(prev, cur, amount) })
		res.MaxFlow += amount
		res.Augmentations++

		nodes := path.Nodes()
		hooks.OnAugment(nodes, amount, res.MaxFlow)
		if logger != nil {
			logger.Debug("augmented", "path", nodes, "bottleneck", amount, "total", res.MaxFlow)
		}
	}

	res.reachable = append([]bool(nil), sr.visited...)
	hooks.OnSolveComplete(res.MaxFlow, res.Augmentations, time.Since(start))
	return res, nil
}
