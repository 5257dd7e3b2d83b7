// Package sink writes galaxies as SVG documents.
package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/render/styles"
)

// Defaults for RenderSVG.
const (
	DefaultMargin     = 20.0
	DefaultStarRadius = 3.0
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	margin     float64
	starRadius float64
	background string
	disks      bool
}

func WithStyle(s styles.Style) SVGOption  { return func(r *svgRenderer) { r.style = s } }
func WithMargin(m float64) SVGOption      { return func(r *svgRenderer) { r.margin = m } }
func WithStarRadius(rr float64) SVGOption { return func(r *svgRenderer) { r.starRadius = rr } }

// WithBackground sets the fill color; an empty string leaves it transparent.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithDisks outlines each constellation's bounding disk.
func WithDisks() SVGOption { return func(r *svgRenderer) { r.disks = true } }

// RenderSVG draws g: edges first, then stars on top. The view box is the
// galaxy's star bounds grown by the margin.
func RenderSVG(g *galaxy.Galaxy, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	box := viewBox(g, r.margin)
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		box.Min.X, box.Min.Y, box.Width(), box.Height(), box.Width(), box.Height())

	r.style.RenderDefs(&buf)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			box.Min.X, box.Min.Y, box.Width(), box.Height(), r.background)
	}
	if r.disks {
		renderDisks(&buf, g)
	}
	for _, s := range g.Segments() {
		r.style.RenderSegment(&buf, styles.Segment{
			Kind: s.Kind,
			X1:   s.A.X, Y1: s.A.Y,
			X2: s.B.X, Y2: s.B.Y,
		})
	}
	for ci, c := range g.Constellations {
		for si, p := range c.Stars {
			r.style.RenderStar(&buf, styles.Star{
				Constellation: ci,
				Index:         si,
				X:             p.X, Y: p.Y,
				R: r.starRadius,
			})
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style:      styles.Simple{},
		margin:     DefaultMargin,
		starRadius: DefaultStarRadius,
		background: styles.ColorBackground,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func viewBox(g *galaxy.Galaxy, margin float64) geom.Rect {
	b := g.Bounds()
	if b.IsEmpty() {
		b = geom.Rect{}
	}
	return b.Inset(margin)
}

func renderDisks(buf *bytes.Buffer, g *galaxy.Galaxy) {
	for _, c := range g.Constellations {
		fmt.Fprintf(buf, `  <circle class="disk" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="#333333" stroke-dasharray="4 4"/>`+"\n",
			c.Center.X, c.Center.Y, c.Radius)
	}
}
