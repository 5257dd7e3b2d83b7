package starfield

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/starmap/pkg/geom"
)

// EdgeKind records how an edge was created. Renderers use it for styling.
type EdgeKind int

const (
	// Nearest edges link a star to its nearest neighbor.
	Nearest EdgeKind = iota
	// GroupMerge edges bridge two previously separate groups.
	GroupMerge
)

func (k EdgeKind) String() string {
	if k == GroupMerge {
		return "group_merge"
	}
	return "nearest"
}

// ParseEdgeKind is the inverse of EdgeKind.String. Unknown names map to Nearest.
func ParseEdgeKind(s string) EdgeKind {
	if s == "group_merge" {
		return GroupMerge
	}
	return Nearest
}

// Edge connects stars A and B by their index in the owning star slice.
type Edge struct {
	A, B     int
	Distance float64
	Kind     EdgeKind
}

// NearestNeighborPairs links stars to their nearest neighbors.
//
// Stars are visited in index order. A star already used by an earlier edge
// is skipped as a source, but any star may be chosen as a target, including
// one that is already used. The result is usually a set of small groups that
// [GroupConnected] and [RepairComponents] stitch together.
func NearestNeighborPairs(stars []geom.Point) []Edge {
	var edges []Edge
	used := make([]bool, len(stars))

	for i := range stars {
		if used[i] {
			continue
		}
		nearest, best := -1, math.Inf(1)
		for j := range stars {
			if i == j {
				continue
			}
			if d := geom.Dist(stars[i], stars[j]); d < best {
				nearest, best = j, d
			}
		}
		if nearest < 0 {
			break // fewer than two stars
		}
		used[i], used[nearest] = true, true
		edges = append(edges, Edge{A: i, B: nearest, Distance: best, Kind: Nearest})
	}
	return edges
}

// Crosses reports whether candidate would cross any edge that shares no
// endpoint with it. Edges sharing an endpoint always touch and are ignored.
func Crosses(stars []geom.Point, edges []Edge, candidate Edge) bool {
	p, q := stars[candidate.A], stars[candidate.B]
	for _, e := range edges {
		if e.A == candidate.A || e.A == candidate.B || e.B == candidate.A || e.B == candidate.B {
			continue
		}
		if geom.SegmentsIntersect(stars[e.A], stars[e.B], p, q) {
			return true
		}
	}
	return false
}

// sortByDistance orders candidates shortest first, keeping enumeration order
// among equal distances.
func sortByDistance(edges []Edge) {
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}
