// Package nodelink renders solved logistics networks as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz. Nodes
// are boxes arranged in layers from the super-source on the left to the
// super-sink on the right; edges carry "flow/capacity" labels.
//
// # Usage
//
// Convert a solved network to DOT format, then render to SVG or PNG:
//
//	dot := nodelink.ToDOT(layout, res, nodelink.Options{Threshold: 15})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Bottlenecks
//
// Edges whose finite capacity is at or below [Options.Threshold] are drawn
// red and thicker, making narrow lanes easy to spot. Unbounded super-source
// and super-sink edges are drawn dashed and gray, labeled with
// [Options.UnboundedLabel].
//
// Rendering uses go-graphviz, which embeds Graphviz as WebAssembly, so no
// system installation is required.
package nodelink
