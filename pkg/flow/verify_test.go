package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/flowtower/pkg/network"
)

func chain(t *testing.T) *network.Network {
	t.Helper()
	nw, err := network.New(3, []network.Edge{
		{From: 0, To: 1, Capacity: network.Finite(5)},
		{From: 1, To: 2, Capacity: network.Finite(5)},
	}, 0, 2)
	require.NoError(t, err)
	return nw
}

func TestVerify(t *testing.T) {
	nw := chain(t)

	tests := []struct {
		name     string
		setup    func(*State)
		property string
		u, v     int
	}{
		{"zero flow", func(*State) {}, "", 0, 0},
		{"feasible", func(s *State) { s.push(0, 1, 5); s.push(1, 2, 5) }, "", 0, 0},
		{"over capacity", func(s *State) { s.push(0, 1, 6); s.push(1, 2, 6) }, "capacity", 0, 1},
		{"not conserved", func(s *State) { s.push(0, 1, 3) }, "conservation", 1, -1},
		{"asymmetric", func(s *State) { s.flow[0*3+1] = 2 }, "antisymmetry", 0, 1},
		{"no edge", func(s *State) { s.push(0, 2, 1) }, "capacity", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState(3)
			tt.setup(st)
			err := Verify(nw, st, 0, 2)
			if tt.property == "" {
				require.NoError(t, err)
				return
			}
			var ie *InvariantError
			require.True(t, errors.As(err, &ie), "got %v", err)
			assert.Equal(t, tt.property, ie.Property)
			assert.Equal(t, tt.u, ie.U)
			assert.Equal(t, tt.v, ie.V)
		})
	}
}

func TestVerifyMismatch(t *testing.T) {
	nw := chain(t)
	assert.ErrorIs(t, Verify(nw, NewState(4), 0, 2), ErrStateMismatch)
	assert.ErrorIs(t, Verify(nw, nil, 0, 2), ErrStateMismatch)
	assert.ErrorIs(t, Verify(nil, NewState(3), 0, 2), ErrNilNetwork)
	assert.ErrorIs(t, Verify(nw, NewState(3), 2, 2), network.ErrSourceIsSink)
}

func TestInvariantErrorMessage(t *testing.T) {
	e := &InvariantError{Property: "conservation", U: 3, V: -1, Detail: "net outflow 2"}
	assert.Equal(t, "flow: conservation violated at node 3: net outflow 2", e.Error())

	e = &InvariantError{Property: "capacity", U: 0, V: 1, Detail: "flow 6 exceeds capacity 5"}
	assert.Equal(t, "flow: capacity violated on 0->1: flow 6 exceeds capacity 5", e.Error())
}

func TestFindAugmentingPath(t *testing.T) {
	nw := chain(t)
	st := NewState(3)

	p, ok, err := FindAugmentingPath(nw, st, 0, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, p.Nodes())
	assert.Equal(t, 1, p.Parent(2))
	assert.Equal(t, -1, p.Parent(0))
	assert.Equal(t, -1, p.Parent(7))

	st.push(0, 1, 5)
	st.push(1, 2, 5)
	_, ok, err = FindAugmentingPath(nw, st, 0, 2)
	require.NoError(t, err)
	assert.False(t, ok, "saturated chain has no augmenting path")
}

func TestFindAugmentingPathInvalidInput(t *testing.T) {
	nw := chain(t)

	tests := []struct {
		name   string
		nw     *network.Network
		st     *State
		source int
		sink   int
		want   error
	}{
		{"nil network", nil, NewState(3), 0, 2, ErrNilNetwork},
		{"nil state", nw, nil, 0, 2, ErrStateMismatch},
		{"state size mismatch", nw, NewState(2), 0, 2, ErrStateMismatch},
		{"source out of range", nw, NewState(3), -1, 2, network.ErrNodeOutOfRange},
		{"sink out of range", nw, NewState(3), 0, 3, network.ErrNodeOutOfRange},
		{"source is sink", nw, NewState(3), 1, 1, network.ErrSourceIsSink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := FindAugmentingPath(tt.nw, tt.st, tt.source, tt.sink)
			require.ErrorIs(t, err, tt.want)
			assert.False(t, ok)
		})
	}
}

// A reverse pair carrying flow has residual capacity equal to that flow.
func TestResidualReverse(t *testing.T) {
	nw := chain(t)
	st := NewState(3)
	st.push(0, 1, 4)

	assert.Equal(t, network.Finite(1), st.Residual(nw, 0, 1))
	assert.Equal(t, network.Finite(4), st.Residual(nw, 1, 0))
	assert.Equal(t, network.Finite(0), st.Residual(nw, 0, 2))
	assert.Equal(t, int64(4), st.NetOutflow(0))
	assert.Equal(t, int64(-4), st.NetOutflow(1))
	assert.Zero(t, st.NetOutflow(9))
}

func TestStateCloneIsIndependent(t *testing.T) {
	st := NewState(2)
	st.push(0, 1, 1)
	c := st.Clone()
	c.push(0, 1, 1)
	assert.Equal(t, int64(1), st.Flow(0, 1))
	assert.Equal(t, int64(2), c.Flow(0, 1))
	assert.Zero(t, st.Flow(-1, 0))
	assert.Zero(t, NewState(-3).Size())
}
