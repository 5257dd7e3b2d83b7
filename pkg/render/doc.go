// Package render turns generated galaxies into pictures.
//
// # Overview
//
// Three renderers share the same input, a [galaxy.Galaxy]:
//
//   - [sink]: hand-written SVG, the default output
//   - [nodelink]: Graphviz DOT with pinned star positions, rendered to SVG or
//     PNG through go-graphviz
//   - [term]: a character raster for terminals, used by the interactive viewer
//
// The SVG renderer takes a [styles.Style] that decides how stars and edges
// look:
//
//	svg := sink.RenderSVG(g, sink.WithStyle(styles.Glow{}))
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// Coordinates are used as is: one galaxy unit is one SVG user unit, with y
// growing downwards like the screen the galaxy was designed for.
//
// [galaxy.Galaxy]: github.com/matzehuels/starmap/pkg/galaxy.Galaxy
// [sink]: github.com/matzehuels/starmap/pkg/render/sink
// [nodelink]: github.com/matzehuels/starmap/pkg/render/nodelink
// [term]: github.com/matzehuels/starmap/pkg/render/term
// [styles.Style]: github.com/matzehuels/starmap/pkg/render/styles.Style
package render
