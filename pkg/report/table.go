// Package report formats solved logistics networks as terminal tables.
//
// Tables are built with lipgloss/table. Styling is optional so the same
// output can be written to files or compared in tests.
package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/flowtower/pkg/flow"
	"github.com/matzehuels/flowtower/pkg/logistics"
	"github.com/matzehuels/flowtower/pkg/network"
)

// Options controls table output.
type Options struct {
	// Styled enables colors and bold headers.
	Styled bool

	// Threshold marks finite edges with capacity <= Threshold in edge tables.
	Threshold int64

	// UnboundedLabel is printed for unbounded capacities. Defaults to "∞".
	UnboundedLabel string
}

func (o Options) unbounded() string {
	if o.UnboundedLabel == "" {
		return "∞"
	}
	return o.UnboundedLabel
}

var (
	colorHeader    = lipgloss.Color("245") // Gray
	colorBorder    = lipgloss.Color("240") // Dim gray
	colorBottle    = lipgloss.Color("167") // Soft red
	colorSaturated = lipgloss.Color("220") // Amber
	colorNumber    = lipgloss.Color("36")  // Teal
)

func newTable(opts Options, headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...)
	if opts.Styled {
		t = t.BorderStyle(lipgloss.NewStyle().Foreground(colorBorder))
	}
	return t
}

// FlowTable renders the terminal→store attribution rows.
func FlowTable(l *logistics.Layout, rows []flow.ReportRow, opts Options) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{l.Label(r.Terminal), l.Label(r.Store), strconv.FormatInt(r.Units, 10)}
	}

	t := newTable(opts, "Terminal", "Store", "Actual Flow (units)").Rows(data...)
	if opts.Styled {
		headerStyle := lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 2:
				return lipgloss.NewStyle().Foreground(colorNumber).Align(lipgloss.Right)
			}
			return lipgloss.NewStyle()
		})
	}
	return t.Render()
}

// EdgeRow is one line of an edge listing.
type EdgeRow struct {
	Edge       network.Edge
	Flow       int64
	Bottleneck bool // finite capacity <= threshold
	Saturated  bool // flow == capacity
}

// EdgeRows lists every declared edge with its flow, ordered by tail then head.
func EdgeRows(res *flow.Result, threshold int64) []EdgeRow {
	edges := res.Network().Edges()
	rows := make([]EdgeRow, len(edges))
	for i, e := range edges {
		f := res.Flow(e.From, e.To)
		rows[i] = EdgeRow{
			Edge:       e,
			Flow:       f,
			Bottleneck: e.Capacity.AtMost(threshold),
			Saturated:  !e.Capacity.IsUnbounded() && f == e.Capacity.Units(),
		}
	}
	return rows
}

// EdgeTable renders every edge as "from, to, flow/capacity". Bottleneck
// edges are flagged with "!" and, when styled, drawn in red; saturated edges
// are flagged with "•".
func EdgeTable(l *logistics.Layout, res *flow.Result, opts Options) string {
	rows := EdgeRows(res, opts.Threshold)
	data := make([][]string, len(rows))
	for i, r := range rows {
		c := opts.unbounded()
		if !r.Edge.Capacity.IsUnbounded() {
			c = r.Edge.Capacity.String()
		}
		mark := ""
		switch {
		case r.Bottleneck && r.Saturated:
			mark = "!•"
		case r.Bottleneck:
			mark = "!"
		case r.Saturated:
			mark = "•"
		}
		data[i] = []string{l.Label(r.Edge.From), l.Label(r.Edge.To), fmt.Sprintf("%d/%s", r.Flow, c), mark}
	}

	t := newTable(opts, "From", "To", "Flow", "").Rows(data...)
	if opts.Styled {
		headerStyle := lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row < 0 || row >= len(rows) {
				return lipgloss.NewStyle()
			}
			switch r := rows[row]; {
			case r.Bottleneck:
				return lipgloss.NewStyle().Foreground(colorBottle)
			case r.Saturated:
				return lipgloss.NewStyle().Foreground(colorSaturated)
			}
			return lipgloss.NewStyle()
		})
	}
	return t.Render()
}

// AmbiguityTable renders warehouses whose heuristic attribution does not
// match their throughput.
func AmbiguityTable(l *logistics.Layout, amb []flow.Ambiguity, opts Options) string {
	data := make([][]string, len(amb))
	for i, a := range amb {
		data[i] = []string{
			l.Label(a.Warehouse),
			strconv.FormatInt(a.Attributed, 10),
			strconv.FormatInt(a.Throughput, 10),
		}
	}
	t := newTable(opts, "Warehouse", "Attributed", "Throughput").Rows(data...)
	if opts.Styled {
		headerStyle := lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorSaturated)
		})
	}
	return t.Render()
}

// CutTable renders the saturated edges of the minimum cut.
func CutTable(l *logistics.Layout, cut flow.Cut, opts Options) string {
	data := make([][]string, len(cut.Edges))
	for i, e := range cut.Edges {
		data[i] = []string{l.Label(e.From), l.Label(e.To), e.Capacity.String()}
	}
	data = append(data, []string{"", "Total", strconv.FormatInt(cut.Capacity, 10)})
	return newTable(opts, "From", "To", "Capacity").Rows(data...).Render()
}
