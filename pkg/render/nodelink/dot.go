package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/render/styles"
	"github.com/matzehuels/starmap/pkg/starfield"
)

// Options configures DOT generation.
type Options struct {
	// Scale multiplies galaxy coordinates into Graphviz points. Zero means 1.
	Scale float64

	// Labels prints node IDs next to the stars.
	Labels bool
}

// ToDOT converts a galaxy to Graphviz DOT with pinned node positions.
// Graphviz's y axis points up, so y is negated to keep the screen layout.
func ToDOT(g *galaxy.Galaxy, opts Options) string {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", styles.ColorBackground)
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	if opts.Labels {
		fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, color=%q, width=0.06, fixedsize=true, fontcolor=%q, fontsize=8, xlabel=\"\\N\", label=\"\"];\n",
			styles.ColorStar, styles.ColorStar, styles.ColorStar)
	} else {
		fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, color=%q, width=0.06, fixedsize=true, label=\"\"];\n",
			styles.ColorStar, styles.ColorStar)
	}
	buf.WriteString("\n")

	for ci, c := range g.Constellations {
		for si, p := range c.Stars {
			fmt.Fprintf(&buf, "  %s [pos=\"%.2f,%.2f!\"];\n", nodeID(ci, si), p.X*scale, -p.Y*scale)
		}
	}

	buf.WriteString("\n")
	for ci, c := range g.Constellations {
		for _, e := range c.Edges {
			kind := galaxy.SegmentNearest
			if e.Kind == starfield.GroupMerge {
				kind = galaxy.SegmentGroupMerge
			}
			fmt.Fprintf(&buf, "  %s -- %s [color=%q];\n", nodeID(ci, e.A), nodeID(ci, e.B), styles.SegmentColor(kind))
		}
	}
	for _, l := range g.Links {
		fmt.Fprintf(&buf, "  %s -- %s [color=%q, style=dashed];\n",
			nodeID(l.From, l.FromStar), nodeID(l.To, l.ToStar), styles.ColorLink+"80")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(constellation, star int) string {
	return "c" + strconv.Itoa(constellation) + "s" + strconv.Itoa(star)
}

// RenderSVG renders DOT to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders DOT to PNG with the neato engine.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// one whose width and height match the view box.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
