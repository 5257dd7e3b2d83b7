// Package geom provides the 2D primitives used by the generators.
//
// Points are [r2.Point] values from github.com/golang/geo, so the usual vector
// arithmetic (Add, Sub, Mul, Norm, Cross) is available on them directly.
//
// # Segment Intersection
//
// [SegmentsIntersect] is the planarity guard used when repairing disconnected
// star groups. It is the classic orientation test:
//
//	geom.SegmentsIntersect(
//	    geom.Pt(0, 0), geom.Pt(2, 2),
//	    geom.Pt(0, 2), geom.Pt(2, 0),
//	) // true
//
// Orientations are computed on the cross product rounded to the nearest
// integer, so segments that are colinear within half a unit are treated as
// colinear. Coordinates are expected to be on a pixel-like scale.
package geom
