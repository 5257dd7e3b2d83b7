package geom

import "math"

// Turn is the orientation of an ordered point triplet.
type Turn int

const (
	Colinear Turn = iota
	Clockwise
	CounterClockwise
)

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "colinear"
	}
}

// Orientation returns the turn direction of (p, q, r). The cross product is
// rounded to the nearest integer before its sign is taken.
func Orientation(p, q, r Point) Turn {
	val := math.Round((q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y))
	switch {
	case val == 0:
		return Colinear
	case val > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// OnSegment reports whether q lies inside the bounding box of p and r.
// Callers use it only for points already known to be colinear.
func OnSegment(p, q, r Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// SegmentsIntersect reports whether segment p1-q1 touches or crosses p2-q2.
// Shared endpoints count as an intersection.
func SegmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := Orientation(p1, q1, p2)
	o2 := Orientation(p1, q1, q2)
	o3 := Orientation(p2, q2, p1)
	o4 := Orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	switch {
	case o1 == Colinear && OnSegment(p1, p2, q1):
		return true
	case o2 == Colinear && OnSegment(p1, q2, q1):
		return true
	case o3 == Colinear && OnSegment(p2, p1, q2):
		return true
	case o4 == Colinear && OnSegment(p2, q1, q2):
		return true
	}
	return false
}
