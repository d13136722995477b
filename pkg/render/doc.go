// Package render groups the visual outputs for solved flow networks.
//
// The [nodelink] subpackage draws the network as a layered Graphviz diagram:
// super-source, terminals, warehouses, stores and super-sink each get their
// own rank. Edges are labeled "flow/capacity" and routes whose finite
// capacity is at or below the bottleneck threshold are drawn in red.
//
//	dot := nodelink.ToDOT(layout, result, nodelink.Options{Threshold: 15})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// Rendering runs Graphviz compiled to WebAssembly, so no external binaries
// are required.
//
// [nodelink]: https://pkg.go.dev/github.com/matzehuels/flowtower/pkg/render/nodelink
package render
