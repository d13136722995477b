package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/flowtower/pkg/flow"
	"github.com/matzehuels/flowtower/pkg/logistics"
)

func exampleModel(t *testing.T) EdgeListModel {
	t.Helper()
	l, err := logistics.Build(logistics.Example())
	require.NoError(t, err)
	res, err := flow.Solve(l.Network, nil)
	require.NoError(t, err)
	return NewEdgeListModel(l, res, 15, "∞")
}

func press(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEdgeListView(t *testing.T) {
	m := exampleModel(t)
	view := m.View()

	assert.Contains(t, view, "example · max flow 115")
	assert.Contains(t, view, "Terminal 1")
	assert.Contains(t, view, "25/25")
	assert.Contains(t, view, "[1/36] all edges")
	assert.Contains(t, view, "residual 0")
	assert.Contains(t, view, "crosses min cut")

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, sel.Edge.From)
	assert.Equal(t, 2, sel.Edge.To)
}

func TestEdgeListNavigation(t *testing.T) {
	var m tea.Model = exampleModel(t)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	em := m.(EdgeListModel)
	assert.Equal(t, 5, em.Height)

	down := tea.KeyMsg{Type: tea.KeyDown}
	em = press(em, down, down, down, down, down, down).(EdgeListModel)
	assert.Equal(t, 6, em.Cursor)
	assert.Equal(t, 2, em.Offset)

	em = press(em, runes("k"), runes("k"), runes("k"), runes("k"), runes("k")).(EdgeListModel)
	assert.Equal(t, 1, em.Cursor)
	assert.Equal(t, 1, em.Offset)

	// Cursor does not move past the first row.
	em = press(em, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}).(EdgeListModel)
	assert.Equal(t, 0, em.Cursor)
}

func TestEdgeListFilters(t *testing.T) {
	m := exampleModel(t)

	bottlenecks := press(m, runes("b")).(EdgeListModel)
	assert.Len(t, bottlenecks.visible, 13)
	for _, r := range bottlenecks.visible {
		assert.True(t, r.Bottleneck)
	}
	assert.Contains(t, bottlenecks.View(), "[1/13] bottlenecks")

	saturated := press(bottlenecks, runes("s")).(EdgeListModel)
	assert.NotEmpty(t, saturated.visible)
	for _, r := range saturated.visible {
		assert.True(t, r.Saturated)
		assert.Equal(t, r.Edge.Capacity.Units(), r.Flow)
	}

	all := press(saturated, runes("j"), runes("a")).(EdgeListModel)
	assert.Len(t, all.visible, 36)
	assert.Equal(t, 0, all.Cursor)
}

func TestEdgeListEmptyFilter(t *testing.T) {
	l, err := logistics.Build(logistics.Example())
	require.NoError(t, err)
	res, err := flow.Solve(l.Network, nil)
	require.NoError(t, err)

	m := press(NewEdgeListModel(l, res, 0, "∞"), runes("b")).(EdgeListModel)
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "no bottlenecks")
}

func TestEdgeListQuit(t *testing.T) {
	m := exampleModel(t)
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, k.String())
	}
	assert.Nil(t, m.Init())
}
