// Package nodelink renders galaxies through Graphviz.
//
// # Overview
//
// [ToDOT] emits an undirected graph in which every star is a node pinned at
// its generated position (pos="x,y!"), so Graphviz's neato engine draws the
// galaxy as generated instead of laying it out again. This makes the DOT
// usable in any Graphviz toolchain:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// Node IDs have the form "c<constellation>s<star>". Constellation edges are
// white (cyan for repair edges), links between constellations red and dashed.
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly; no system installation is required.
package nodelink
