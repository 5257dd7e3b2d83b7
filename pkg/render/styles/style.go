// Package styles defines how the SVG renderer draws stars and edges.
package styles

import (
	"bytes"

	"github.com/matzehuels/starmap/pkg/galaxy"
)

// Style defines the visual appearance of a rendered galaxy.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderSegment writes the SVG for one edge.
	RenderSegment(buf *bytes.Buffer, s Segment)
	// RenderStar writes the SVG for one star.
	RenderStar(buf *bytes.Buffer, s Star)
}

// Star contains the data needed to draw one star.
type Star struct {
	Constellation int     // Index of the owning constellation
	Index         int     // Index within the constellation
	X, Y, R       float64 // Center and radius
}

// Segment contains the data needed to draw one edge.
type Segment struct {
	Kind           galaxy.SegmentKind
	X1, Y1, X2, Y2 float64
}

// Colors of the classic palette.
const (
	ColorBackground = "#000000"
	ColorStar       = "#ffffff"
	ColorNearest    = "#ffffff"
	ColorGroupMerge = "#00ffff"
	ColorLink       = "#ff0000"
)

// SegmentColor returns the classic color for a segment kind.
func SegmentColor(k galaxy.SegmentKind) string {
	switch k {
	case galaxy.SegmentGroupMerge:
		return ColorGroupMerge
	case galaxy.SegmentLink:
		return ColorLink
	default:
		return ColorNearest
	}
}

// ByName returns the style registered under name: "simple" or "glow".
func ByName(name string) (Style, bool) {
	switch name {
	case "", "simple":
		return Simple{}, true
	case "glow":
		return Glow{}, true
	}
	return nil, false
}
