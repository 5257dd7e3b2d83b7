package galaxy

import (
	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/rng"
	"github.com/matzehuels/starmap/pkg/starfield"
)

// Constellation is a cluster of stars around Center.
//
// Radius is the distance from Center to the farthest star, not the radius the
// stars were sampled from. It is what placement uses for overlap checks.
type Constellation struct {
	Stars  []geom.Point
	Edges  []starfield.Edge
	Center geom.Point
	Radius float64
}

// BuildConstellation samples a constellation around center.
func BuildConstellation(center geom.Point, cfg Config, src rng.Source) Constellation {
	maxRadius := src.Float64Range(cfg.MinConstellationRadius, cfg.MaxConstellationRadius)
	stars, radius := starfield.PlaceStars(center,
		cfg.MinStarsInConstellation, cfg.MaxStarsInConstellation,
		maxRadius, cfg.MinStarDistance, src)

	edges := starfield.NearestNeighborPairs(stars)
	edges = starfield.RepairComponents(stars, edges, starfield.GroupConnected(edges))

	return Constellation{
		Stars:  stars,
		Edges:  edges,
		Center: center,
		Radius: radius,
	}
}

// Components returns the connected groups of stars after repair. A fully
// repaired constellation has exactly one.
func (c Constellation) Components() int {
	parent := make([]int, len(c.Stars))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	n := len(c.Stars)
	for _, e := range c.Edges {
		if a, b := find(e.A), find(e.B); a != b {
			parent[a] = b
			n--
		}
	}
	return n
}
