package starfield

import (
	"slices"

	"github.com/matzehuels/starmap/pkg/geom"
)

// Component is a group of star indices in insertion order.
type Component []int

// Contains reports whether star i belongs to the component.
func (c Component) Contains(i int) bool { return slices.Contains(c, i) }

// GroupConnected groups star indices by the edges that join them.
//
// This is a single pass rather than a union-find. An edge whose endpoints
// are both new starts a new component. Otherwise the edge joins the first
// component, in creation order, that holds either endpoint. Two components
// bridged by a later edge are not fused.
func GroupConnected(edges []Edge) []Component {
	var groups []Component
	seen := make(map[int]bool)

	for _, e := range edges {
		if !seen[e.A] && !seen[e.B] {
			groups = append(groups, Component{e.A, e.B})
		} else {
			for gi, g := range groups {
				if g.Contains(e.A) {
					if !g.Contains(e.B) {
						groups[gi] = append(g, e.B)
					}
					break
				}
				if g.Contains(e.B) {
					groups[gi] = append(g, e.A)
					break
				}
			}
		}
		seen[e.A], seen[e.B] = true, true
	}
	return groups
}

// RepairComponents tries once to bridge every pair of components and returns
// the extended edge list.
//
// Pairs are visited as (i, j) with i < j. A pair is skipped only when both
// sides have already been merged with something. The pass is not repeated
// until the graph is connected.
func RepairComponents(stars []geom.Point, edges []Edge, components []Component) []Edge {
	merged := make([]bool, len(components))
	for i := range components {
		for j := i + 1; j < len(components); j++ {
			if merged[i] && merged[j] {
				continue
			}
			var ok bool
			if edges, ok = MergeComponents(stars, edges, components[i], components[j]); ok {
				merged[i], merged[j] = true, true
			}
		}
	}
	return edges
}

// MergeComponents appends the shortest crossing-free edge between a and b.
// It reports false and returns edges unchanged when every candidate crosses
// an existing edge.
func MergeComponents(stars []geom.Point, edges []Edge, a, b Component) ([]Edge, bool) {
	candidates := make([]Edge, 0, len(a)*len(b))
	for _, i := range a {
		for _, j := range b {
			candidates = append(candidates, Edge{A: i, B: j, Distance: geom.Dist(stars[i], stars[j]), Kind: GroupMerge})
		}
	}
	sortByDistance(candidates)

	for _, c := range candidates {
		if !Crosses(stars, edges, c) {
			return append(edges, c), true
		}
	}
	return edges, false
}
