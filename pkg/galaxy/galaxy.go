package galaxy

import (
	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/starfield"
)

// Galaxy is the result of a generation run.
type Galaxy struct {
	Constellations []Constellation
	Links          []Link
}

// SegmentKind classifies a drawable segment.
type SegmentKind int

const (
	// SegmentNearest is a nearest-neighbor edge inside a constellation.
	SegmentNearest SegmentKind = iota
	// SegmentGroupMerge is a repair edge inside a constellation.
	SegmentGroupMerge
	// SegmentLink is an edge between two constellations.
	SegmentLink
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentGroupMerge:
		return "group_merge"
	case SegmentLink:
		return "link"
	default:
		return "nearest"
	}
}

// Segment is an edge resolved to its end points.
type Segment struct {
	A, B geom.Point
	Kind SegmentKind
}

// Stats summarizes a galaxy.
type Stats struct {
	Constellations int `json:"constellations" bson:"constellations"`
	Stars          int `json:"stars" bson:"stars"`
	Edges          int `json:"edges" bson:"edges"`
	GroupMerges    int `json:"group_merges" bson:"group_merges"`
	Links          int `json:"links" bson:"links"`
}

// StarCount returns the number of stars across all constellations.
func (g *Galaxy) StarCount() int {
	n := 0
	for _, c := range g.Constellations {
		n += len(c.Stars)
	}
	return n
}

// EdgeCount returns the number of internal edges plus links.
func (g *Galaxy) EdgeCount() int {
	n := len(g.Links)
	for _, c := range g.Constellations {
		n += len(c.Edges)
	}
	return n
}

// Stats returns summary counts.
func (g *Galaxy) Stats() Stats {
	s := Stats{
		Constellations: len(g.Constellations),
		Stars:          g.StarCount(),
		Links:          len(g.Links),
	}
	for _, c := range g.Constellations {
		s.Edges += len(c.Edges)
		for _, e := range c.Edges {
			if e.Kind == starfield.GroupMerge {
				s.GroupMerges++
			}
		}
	}
	return s
}

// Segments resolves every internal edge and every link to point pairs,
// constellation by constellation, links last.
func (g *Galaxy) Segments() []Segment {
	segs := make([]Segment, 0, g.EdgeCount())
	for _, c := range g.Constellations {
		for _, e := range c.Edges {
			kind := SegmentNearest
			if e.Kind == starfield.GroupMerge {
				kind = SegmentGroupMerge
			}
			segs = append(segs, Segment{A: c.Stars[e.A], B: c.Stars[e.B], Kind: kind})
		}
	}
	for _, l := range g.Links {
		a, b := g.Endpoints(l)
		segs = append(segs, Segment{A: a, B: b, Kind: SegmentLink})
	}
	return segs
}

// Endpoints returns the star positions joined by l.
func (g *Galaxy) Endpoints(l Link) (geom.Point, geom.Point) {
	return g.Constellations[l.From].Stars[l.FromStar], g.Constellations[l.To].Stars[l.ToStar]
}

// Connected reports whether the links reach every constellation.
func (g *Galaxy) Connected() bool {
	n := len(g.Constellations)
	if n == 0 {
		return true
	}
	adj := make([][]int, n)
	for _, l := range g.Links {
		adj[l.From] = append(adj[l.From], l.To)
		adj[l.To] = append(adj[l.To], l.From)
	}

	seen := make([]bool, n)
	seen[0] = true
	queue := []int{0}
	reached := 1
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range adj[i] {
			if !seen[j] {
				seen[j] = true
				reached++
				queue = append(queue, j)
			}
		}
	}
	return reached == n
}

// Bounds returns the smallest rectangle containing every star. It is empty
// for a galaxy without stars.
func (g *Galaxy) Bounds() geom.Rect {
	r := geom.EmptyRect()
	for _, c := range g.Constellations {
		for _, p := range c.Stars {
			r = r.Extend(p)
		}
	}
	return r
}

// Check verifies that every edge and link references existing stars and
// constellations. Galaxies built by Generate always pass; decoded ones may not.
func (g *Galaxy) Check() error {
	for ci, c := range g.Constellations {
		for _, e := range c.Edges {
			if e.A == e.B || e.A < 0 || e.B < 0 || e.A >= len(c.Stars) || e.B >= len(c.Stars) {
				return errors.New(errors.ErrCodeInvalidInput,
					"constellation %d: edge %d-%d out of range (%d stars)", ci, e.A, e.B, len(c.Stars))
			}
		}
	}
	n := len(g.Constellations)
	for li, l := range g.Links {
		if l.From == l.To || l.From < 0 || l.To < 0 || l.From >= n || l.To >= n {
			return errors.New(errors.ErrCodeInvalidInput,
				"link %d: constellations %d-%d out of range (%d constellations)", li, l.From, l.To, n)
		}
		from, to := g.Constellations[l.From], g.Constellations[l.To]
		if l.FromStar < 0 || l.FromStar >= len(from.Stars) || l.ToStar < 0 || l.ToStar >= len(to.Stars) {
			return errors.New(errors.ErrCodeInvalidInput,
				"link %d: stars %d-%d out of range", li, l.FromStar, l.ToStar)
		}
	}
	return nil
}
