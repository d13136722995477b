package logistics

import (
	"errors"
	"fmt"

	"github.com/matzehuels/flowtower/pkg/network"
)

var (
	// ErrEmptyName is returned when a site has an empty name.
	ErrEmptyName = errors.New("logistics: site name is empty")

	// ErrDuplicateSite is returned when two sites share a name.
	ErrDuplicateSite = errors.New("logistics: duplicate site name")

	// ErrUnknownSite is returned when a route references a site that was
	// not declared.
	ErrUnknownSite = errors.New("logistics: unknown site")

	// ErrInvalidRoute is returned when a route does not connect a terminal
	// to a warehouse or a warehouse to a store.
	ErrInvalidRoute = errors.New("logistics: route must go terminal->warehouse or warehouse->store")
)

// Plan is a layered logistics network described by site names.
type Plan struct {
	Name       string
	Terminals  []string
	Warehouses []string
	Stores     []string
	Routes     []Route
}

// Route is a directed shipping lane with a positive capacity.
type Route struct {
	From     string
	To       string
	Capacity int64
}

// NodeCount returns the number of nodes Build creates for p, including the
// super-source and super-sink.
func (p Plan) NodeCount() int {
	return len(p.Terminals) + len(p.Warehouses) + len(p.Stores) + 2
}

// Layout is a Plan compiled into an indexed flow network.
//
// Nodes are numbered terminals first, then warehouses, then stores, in plan
// order. The super-source and super-sink take the last two indices.
type Layout struct {
	Plan    Plan
	Network *network.Network
	Roles   network.Roles

	index map[string]int
}

// Build compiles p into a flow network.
//
// The super-source feeds every terminal and every store drains into the
// super-sink, all through unbounded edges, so the max flow is limited by the
// routes alone. Route capacity problems are reported as the underlying
// *network.ConstructionError wrapped with the route's site names.
func Build(p Plan) (*Layout, error) {
	l := &Layout{Plan: p, index: make(map[string]int, p.NodeCount())}
	labels := make(map[int]string, p.NodeCount())

	add := func(names []string, role *[]int) error {
		for _, name := range names {
			if name == "" {
				return ErrEmptyName
			}
			if _, dup := l.index[name]; dup {
				return fmt.Errorf("%w: %q", ErrDuplicateSite, name)
			}
			u := len(l.index)
			l.index[name] = u
			labels[u] = name
			*role = append(*role, u)
		}
		return nil
	}
	if err := add(p.Terminals, &l.Roles.Terminals); err != nil {
		return nil, err
	}
	if err := add(p.Warehouses, &l.Roles.Warehouses); err != nil {
		return nil, err
	}
	if err := add(p.Stores, &l.Roles.Stores); err != nil {
		return nil, err
	}
	l.Roles.Labels = labels

	source, sink := len(l.index), len(l.index)+1
	edges := make([]network.Edge, 0, len(p.Routes)+len(p.Terminals)+len(p.Stores))
	for _, t := range l.Roles.Terminals {
		edges = append(edges, network.Edge{From: source, To: t, Capacity: network.Unbounded()})
	}
	for _, r := range p.Routes {
		from, ok := l.index[r.From]
		if !ok {
			return nil, fmt.Errorf("route %s->%s: %w: %q", r.From, r.To, ErrUnknownSite, r.From)
		}
		to, ok := l.index[r.To]
		if !ok {
			return nil, fmt.Errorf("route %s->%s: %w: %q", r.From, r.To, ErrUnknownSite, r.To)
		}
		if !l.layered(from, to) {
			return nil, fmt.Errorf("route %s->%s: %w", r.From, r.To, ErrInvalidRoute)
		}
		edges = append(edges, network.Edge{From: from, To: to, Capacity: network.Finite(r.Capacity)})
	}
	for _, s := range l.Roles.Stores {
		edges = append(edges, network.Edge{From: s, To: sink, Capacity: network.Unbounded()})
	}

	nw, err := network.New(p.NodeCount(), edges, source, sink)
	if err != nil {
		var ce *network.ConstructionError
		if errors.As(err, &ce) && ce.From >= 0 && ce.To >= 0 {
			return nil, fmt.Errorf("route %s->%s: %w", l.Roles.Label(ce.From), l.Roles.Label(ce.To), err)
		}
		return nil, err
	}
	l.Network = nw
	return l, nil
}

func (l *Layout) layered(from, to int) bool {
	nt, nw := len(l.Plan.Terminals), len(l.Plan.Warehouses)
	switch {
	case from < nt:
		return to >= nt && to < nt+nw
	case from < nt+nw:
		return to >= nt+nw
	}
	return false
}

// Index returns the node index of the named site.
func (l *Layout) Index(name string) (int, bool) {
	u, ok := l.index[name]
	return u, ok
}

// Label returns the display name of node u. The super-source and super-sink
// are labeled "Source" and "Sink".
func (l *Layout) Label(u int) string {
	switch u {
	case l.Network.Source():
		return "Source"
	case l.Network.Sink():
		return "Sink"
	}
	return l.Roles.Label(u)
}
