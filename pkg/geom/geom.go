package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a position in the plane.
type Point = r2.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 { return a.Sub(b).Norm() }

// Polar returns the point at the given radius and angle (radians) from center.
func Polar(center Point, radius, angle float64) Point {
	return center.Add(Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// EmptyRect returns a rect that any Extend call will replace.
func EmptyRect() Rect {
	inf := math.Inf(1)
	return Rect{Min: Pt(inf, inf), Max: Pt(-inf, -inf)}
}

// Extend grows r to include p.
func (r Rect) Extend(p Point) Rect {
	return Rect{
		Min: Pt(min(r.Min.X, p.X), min(r.Min.Y, p.Y)),
		Max: Pt(max(r.Max.X, p.X), max(r.Max.Y, p.Y)),
	}
}

// IsEmpty reports whether no point was ever added.
func (r Rect) IsEmpty() bool { return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y }

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Inset grows the rect by m on every side.
func (r Rect) Inset(m float64) Rect {
	return Rect{Min: Pt(r.Min.X-m, r.Min.Y-m), Max: Pt(r.Max.X+m, r.Max.Y+m)}
}
