package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowtower/pkg/flow"
	"github.com/matzehuels/flowtower/pkg/logistics"
	"github.com/matzehuels/flowtower/pkg/pipeline"
	"github.com/matzehuels/flowtower/pkg/report"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var threshold int64

	cmd := &cobra.Command{
		Use:   "inspect [network-file]",
		Short: "Browse edges of the solved network interactively",
		Long: `Solve a network and browse its edges with flow, capacity and residual.

Keys: ↑/↓ (or j/k) move, b shows bottlenecks only, s shows saturated edges
only, a shows all edges, q quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold = flagOr(cmd, "threshold", threshold, c.config.Threshold)
			return c.runInspect(cmd.Context(), sourceArg(args), threshold)
		},
	}

	cmd.Flags().Int64Var(&threshold, "threshold", 0, "mark edges with capacity at or below this value (default 15)")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, source string, threshold int64) error {
	result, err := c.newRunner().Execute(ctx, pipeline.Options{Source: source, Logger: c.Logger})
	if err != nil {
		return err
	}
	model := NewEdgeListModel(result.Layout, result.Flow, threshold, c.config.UnboundedLabel)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// EdgeListModel - Interactive edge browser
// =============================================================================

// edgeFilter selects which edges the browser lists.
type edgeFilter int

const (
	filterAll edgeFilter = iota
	filterBottlenecks
	filterSaturated
)

func (f edgeFilter) String() string {
	switch f {
	case filterBottlenecks:
		return "bottlenecks"
	case filterSaturated:
		return "saturated"
	}
	return "all edges"
}

// EdgeListModel is the bubbletea model for browsing the edges of a solved
// network.
type EdgeListModel struct {
	Layout    *logistics.Layout
	Result    *flow.Result
	Threshold int64
	Unbounded string

	all     []report.EdgeRow
	visible []report.EdgeRow
	filter  edgeFilter

	Cursor int
	Height int
	Offset int
}

// NewEdgeListModel creates an edge browser over every edge of res.
func NewEdgeListModel(l *logistics.Layout, res *flow.Result, threshold int64, unbounded string) EdgeListModel {
	rows := report.EdgeRows(res, threshold)
	return EdgeListModel{
		Layout:    l,
		Result:    res,
		Threshold: threshold,
		Unbounded: unbounded,
		all:       rows,
		visible:   rows,
		Height:    15,
	}
}

func (m EdgeListModel) Init() tea.Cmd {
	return nil
}

func (m EdgeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "a":
			m = m.withFilter(filterAll)
		case "b":
			m = m.withFilter(filterBottlenecks)
		case "s":
			m = m.withFilter(filterSaturated)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 9
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// withFilter switches the listing and resets the cursor.
func (m EdgeListModel) withFilter(f edgeFilter) EdgeListModel {
	m.filter = f
	m.Cursor, m.Offset = 0, 0
	if f == filterAll {
		m.visible = m.all
		return m
	}
	m.visible = nil
	for _, r := range m.all {
		if (f == filterBottlenecks && r.Bottleneck) || (f == filterSaturated && r.Saturated) {
			m.visible = append(m.visible, r)
		}
	}
	return m
}

// Selected returns the edge under the cursor.
func (m EdgeListModel) Selected() (report.EdgeRow, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.visible) {
		return report.EdgeRow{}, false
	}
	return m.visible[m.Cursor], true
}

func (m EdgeListModel) capacity(r report.EdgeRow) string {
	if r.Edge.Capacity.IsUnbounded() {
		return m.Unbounded
	}
	return r.Edge.Capacity.String()
}

func (m EdgeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s · max flow %d", m.Layout.Plan.Name, m.Result.MaxFlow)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  a all  b bottlenecks  s saturated  q quit"))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  no %s", m.filter)))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.visible))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			m.Layout.Label(r.Edge.From),
			m.Layout.Label(r.Edge.To),
			fmt.Sprintf("%d/%s", r.Flow, m.capacity(r)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "From", "To", "Flow").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := m.Offset + row
			if idx >= len(m.visible) {
				return lipgloss.NewStyle()
			}
			r := m.visible[idx]
			base := lipgloss.NewStyle()
			switch {
			case r.Bottleneck:
				base = base.Foreground(colorRed)
			case r.Saturated:
				base = base.Foreground(colorYellow)
			case r.Flow == 0:
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	if sel, ok := m.Selected(); ok {
		b.WriteString(m.detail(sel))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.Cursor+1, len(m.visible), m.filter)))

	return b.String()
}

// detail describes the selected edge: residual capacity and whether it
// crosses the minimum cut.
func (m EdgeListModel) detail(r report.EdgeRow) string {
	e := r.Edge
	residual := m.Unbounded
	if !e.Capacity.IsUnbounded() {
		residual = fmt.Sprint(e.Capacity.Units() - r.Flow)
	}
	parts := []string{"residual " + residual}
	if m.Result.InSourceSide(e.From) && !m.Result.InSourceSide(e.To) {
		parts = append(parts, StyleBottleneck.Render("crosses min cut"))
	}
	if r.Bottleneck {
		parts = append(parts, fmt.Sprintf("capacity ≤ %d", m.Threshold))
	}
	return "  " + strings.Join(parts, listDimStyle.Render(" · "))
}
