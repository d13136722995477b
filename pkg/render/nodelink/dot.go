package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flowtower/pkg/flow"
	"github.com/matzehuels/flowtower/pkg/logistics"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Threshold draws finite edges with capacity <= Threshold in red.
	// Capacities are positive, so zero or a negative value disables it.
	Threshold int64

	// UnboundedLabel is shown as the capacity of unbounded edges.
	// Defaults to "∞".
	UnboundedLabel string
}

func (o Options) unbounded() string {
	if o.UnboundedLabel == "" {
		return "∞"
	}
	return o.UnboundedLabel
}

// ToDOT converts a solved logistics network to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Nodes are laid out left to right in five ranks: super-source, terminals,
// warehouses, stores and super-sink. Every edge is labeled "flow/capacity".
// Edges whose finite capacity is at or below the threshold are drawn in red.
// The graph is titled with the max-flow value.
func ToDOT(l *logistics.Layout, res *flow.Result, opts Options) string {
	nw := l.Network
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("Max flow: %d", res.MaxFlow))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  fontsize=20;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=lightblue, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10, fontcolor=darkgreen];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeRank(&buf, l, []int{nw.Source()}, "shape=ellipse, fillcolor=white")
	writeRank(&buf, l, l.Roles.Terminals, "")
	writeRank(&buf, l, l.Roles.Warehouses, "")
	writeRank(&buf, l, l.Roles.Stores, "")
	writeRank(&buf, l, []int{nw.Sink()}, "shape=ellipse, fillcolor=white")

	buf.WriteString("\n")
	for _, e := range nw.Edges() {
		c := opts.unbounded()
		if !e.Capacity.IsUnbounded() {
			c = e.Capacity.String()
		}
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%d/%s", res.Flow(e.From, e.To), c))}
		if e.Capacity.AtMost(opts.Threshold) {
			attrs = append(attrs, "color=red", "penwidth=2")
		}
		if e.Capacity.IsUnbounded() {
			attrs = append(attrs, "style=dashed", "color=gray")
		}
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", nodeID(e.From), nodeID(e.To), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeRank(buf *bytes.Buffer, l *logistics.Layout, nodes []int, attrs string) {
	if len(nodes) == 0 {
		return
	}
	buf.WriteString("  { rank=same;\n")
	for _, u := range nodes {
		a := fmt.Sprintf("label=%q", l.Label(u))
		if attrs != "" {
			a += ", " + attrs
		}
		fmt.Fprintf(buf, "    %s [%s];\n", nodeID(u), a)
	}
	buf.WriteString("  }\n")
}

func nodeID(u int) string { return "n" + strconv.Itoa(u) }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
