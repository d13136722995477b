package network

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamond() []Edge {
	return []Edge{
		{From: 0, To: 1, Capacity: Finite(10)},
		{From: 0, To: 2, Capacity: Finite(5)},
		{From: 1, To: 3, Capacity: Finite(5)},
		{From: 2, To: 3, Capacity: Finite(10)},
	}
}

func TestNew(t *testing.T) {
	nw, err := New(4, diamond(), 0, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, nw.NodeCount())
	assert.Equal(t, 4, nw.EdgeCount())
	assert.Equal(t, 0, nw.Source())
	assert.Equal(t, 3, nw.Sink())
	assert.Equal(t, Finite(10), nw.Capacity(0, 1))
	assert.Equal(t, Capacity{}, nw.Capacity(1, 0), "reverse direction is not an edge")
	assert.Equal(t, Capacity{}, nw.Capacity(-1, 7), "out of range reads as no edge")
	assert.True(t, nw.HasEdge(2, 3))
	assert.False(t, nw.HasEdge(3, 2))
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		edges    []Edge
		src, dst int
		want     error
		from, to int
	}{
		{"zero nodes", 0, nil, 0, 0, ErrInvalidNodeCount, -1, -1},
		{"negative nodes", -3, nil, 0, 1, ErrInvalidNodeCount, -1, -1},
		{"source out of range", 2, nil, 2, 1, ErrNodeOutOfRange, 2, -1},
		{"sink out of range", 2, nil, 0, -1, ErrNodeOutOfRange, -1, -1},
		{"source is sink", 2, nil, 1, 1, ErrSourceIsSink, 1, -1},
		{"edge out of range", 2, []Edge{{From: 0, To: 5, Capacity: Finite(1)}}, 0, 1, ErrNodeOutOfRange, 0, 5},
		{"self loop", 3, []Edge{{From: 2, To: 2, Capacity: Finite(1)}}, 0, 1, ErrSelfLoop, 2, 2},
		{"zero capacity", 2, []Edge{{From: 0, To: 1, Capacity: Finite(0)}}, 0, 1, ErrNonPositiveCapacity, 0, 1},
		{"negative capacity", 2, []Edge{{From: 0, To: 1, Capacity: Finite(-4)}}, 0, 1, ErrNonPositiveCapacity, 0, 1},
		{"duplicate", 2, []Edge{
			{From: 0, To: 1, Capacity: Finite(1)},
			{From: 0, To: 1, Capacity: Finite(2)},
		}, 0, 1, ErrDuplicateEdge, 0, 1},
		{"into source", 3, []Edge{{From: 2, To: 0, Capacity: Finite(1)}}, 0, 1, ErrSourceHasIncoming, 2, 0},
		{"out of sink", 3, []Edge{{From: 1, To: 2, Capacity: Finite(1)}}, 0, 1, ErrSinkHasOutgoing, 1, 2},
		{"unbounded path", 3, []Edge{
			{From: 0, To: 2, Capacity: Unbounded()},
			{From: 2, To: 1, Capacity: Unbounded()},
		}, 0, 1, ErrUnboundedPath, -1, -1},
		{"overflow", 3, []Edge{
			{From: 0, To: 2, Capacity: Finite(math.MaxInt64)},
			{From: 2, To: 1, Capacity: Finite(1)},
		}, 0, 1, ErrCapacityOverflow, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nw, err := New(tt.n, tt.edges, tt.src, tt.dst)
			require.Error(t, err)
			assert.Nil(t, nw, "no partial network on failure")
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)

			var ce *ConstructionError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.from, ce.From)
			assert.Equal(t, tt.to, ce.To)
		})
	}
}

func TestNewAllowsOppositeEdges(t *testing.T) {
	nw, err := New(4, []Edge{
		{From: 0, To: 1, Capacity: Finite(3)},
		{From: 1, To: 2, Capacity: Finite(4)},
		{From: 2, To: 1, Capacity: Finite(6)},
		{From: 2, To: 3, Capacity: Finite(3)},
	}, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, Finite(4), nw.Capacity(1, 2))
	assert.Equal(t, Finite(6), nw.Capacity(2, 1))
}

func TestUnboundedEdgesWithFiniteCut(t *testing.T) {
	nw, err := New(4, []Edge{
		{From: 0, To: 1, Capacity: Unbounded()},
		{From: 1, To: 2, Capacity: Finite(7)},
		{From: 2, To: 3, Capacity: Unbounded()},
	}, 0, 3)
	require.NoError(t, err)
	assert.True(t, nw.UnboundedReachable(0, 1))
	assert.False(t, nw.UnboundedReachable(0, 3))
}

func TestEdgesSorted(t *testing.T) {
	nw, err := New(4, []Edge{
		{From: 2, To: 3, Capacity: Finite(1)},
		{From: 0, To: 2, Capacity: Finite(1)},
		{From: 0, To: 1, Capacity: Finite(1)},
		{From: 1, To: 3, Capacity: Finite(1)},
	}, 0, 3)
	require.NoError(t, err)

	var got [][2]int
	for _, e := range nw.Edges() {
		got = append(got, [2]int{e.From, e.To})
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, got)
}

func TestResidualNeighbors(t *testing.T) {
	nw, err := New(4, diamond(), 0, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, nw.ResidualNeighbors(0))
	assert.Equal(t, []int{0, 3}, nw.ResidualNeighbors(1))
	assert.Equal(t, []int{1, 2}, nw.ResidualNeighbors(3))
	assert.Nil(t, nw.ResidualNeighbors(9))
}

func TestCapacityMatrixIsCopy(t *testing.T) {
	nw, err := New(2, []Edge{{From: 0, To: 1, Capacity: Finite(4)}}, 0, 1)
	require.NoError(t, err)

	m := nw.CapacityMatrix()
	require.Len(t, m, 2)
	m[0][1] = Finite(99)
	assert.Equal(t, Finite(4), nw.Capacity(0, 1))
}

func TestCapacity(t *testing.T) {
	inf := Unbounded()
	five := Finite(5)

	assert.True(t, inf.IsUnbounded())
	assert.True(t, inf.Positive())
	assert.Equal(t, int64(0), inf.Units())
	assert.Equal(t, "∞", inf.String())
	assert.Equal(t, "5", five.String())

	assert.Equal(t, five, inf.Min(five))
	assert.Equal(t, five, five.Min(inf))
	assert.Equal(t, Finite(2), five.Min(Finite(2)))
	assert.Equal(t, inf, inf.Min(inf))

	assert.Equal(t, Finite(3), five.Residual(2))
	assert.Equal(t, Finite(7), Finite(0).Residual(-7), "reverse residual of carried flow")
	assert.Equal(t, inf, inf.Residual(1000))

	assert.False(t, Finite(0).Positive())
	assert.True(t, five.AtMost(5))
	assert.False(t, five.AtMost(4))
	assert.False(t, inf.AtMost(math.MaxInt64))
}

func TestRoles(t *testing.T) {
	nw, err := New(6, []Edge{
		{From: 4, To: 0, Capacity: Unbounded()},
		{From: 0, To: 1, Capacity: Finite(3)},
		{From: 1, To: 2, Capacity: Finite(3)},
		{From: 2, To: 5, Capacity: Unbounded()},
		{From: 1, To: 3, Capacity: Finite(3)},
		{From: 3, To: 5, Capacity: Unbounded()},
	}, 4, 5)
	require.NoError(t, err)

	r := Roles{
		Terminals:  []int{0},
		Warehouses: []int{1},
		Stores:     []int{2, 3},
		Labels:     map[int]string{3: "Downtown"},
	}
	require.NoError(t, r.Validate(nw))

	assert.Equal(t, RoleSource, r.RoleOf(nw, 4))
	assert.Equal(t, RoleSink, r.RoleOf(nw, 5))
	assert.Equal(t, RoleTerminal, r.RoleOf(nw, 0))
	assert.Equal(t, RoleWarehouse, r.RoleOf(nw, 1))
	assert.Equal(t, RoleStore, r.RoleOf(nw, 2))
	assert.Equal(t, "store", RoleStore.String())

	assert.Equal(t, "Terminal 1", r.Label(0))
	assert.Equal(t, "Warehouse 1", r.Label(1))
	assert.Equal(t, "Store 1", r.Label(2))
	assert.Equal(t, "Downtown", r.Label(3))
	assert.Equal(t, "node 4", r.Label(4))
}

func TestRolesValidate(t *testing.T) {
	nw, err := New(4, diamond(), 0, 3)
	require.NoError(t, err)

	tests := []struct {
		name  string
		roles Roles
		want  error
	}{
		{"overlap", Roles{Terminals: []int{1}, Stores: []int{1}}, ErrRoleOverlap},
		{"contains source", Roles{Terminals: []int{0}}, ErrRoleContainsEndpoint},
		{"contains sink", Roles{Stores: []int{3}}, ErrRoleContainsEndpoint},
		{"out of range", Roles{Warehouses: []int{8}}, ErrNodeOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.roles.Validate(nw), tt.want)
		})
	}
}
