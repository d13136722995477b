package network

import "strconv"

// Capacity is the capacity of a directed edge: either a finite, non-negative
// number of units or unbounded.
//
// Unbounded capacities model the synthetic edges that connect a super-source
// to terminals and stores to a super-sink. They are never the bottleneck of an
// augmenting path and are never used in arithmetic, so no sentinel value can
// overflow or be mistaken for a real bound.
//
// The zero value is a finite capacity of 0, which means "no edge".
type Capacity struct {
	units     int64
	unbounded bool
}

// Finite returns a capacity of exactly units.
func Finite(units int64) Capacity { return Capacity{units: units} }

// Unbounded returns a capacity that is larger than any achievable flow.
func Unbounded() Capacity { return Capacity{unbounded: true} }

// IsUnbounded reports whether c is the unbounded capacity.
func (c Capacity) IsUnbounded() bool { return c.unbounded }

// Units returns the finite number of units. It returns 0 for unbounded
// capacities; check [Capacity.IsUnbounded] first when the distinction matters.
func (c Capacity) Units() int64 {
	if c.unbounded {
		return 0
	}
	return c.units
}

// Positive reports whether c admits at least one unit of flow.
func (c Capacity) Positive() bool { return c.unbounded || c.units > 0 }

// Residual returns the capacity left after carrying flow units.
// An unbounded capacity stays unbounded.
func (c Capacity) Residual(flow int64) Capacity {
	if c.unbounded {
		return c
	}
	return Capacity{units: c.units - flow}
}

// Min returns the smaller of c and o. Unbounded is larger than every finite capacity.
func (c Capacity) Min(o Capacity) Capacity {
	switch {
	case c.unbounded:
		return o
	case o.unbounded:
		return c
	case o.units < c.units:
		return o
	}
	return c
}

// AtMost reports whether c is finite and no larger than limit.
// Renderers use it to flag bottleneck edges.
func (c Capacity) AtMost(limit int64) bool { return !c.unbounded && c.units <= limit }

// String returns the decimal units, or "∞" for unbounded capacities.
func (c Capacity) String() string {
	if c.unbounded {
		return "∞"
	}
	return strconv.FormatInt(c.units, 10)
}
