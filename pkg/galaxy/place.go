package galaxy

import (
	"math"

	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/rng"
	"github.com/matzehuels/starmap/pkg/starfield"
)

// PlaceConstellations places non-overlapping constellations inside a disk of
// cfg.GalaxyRadius around the origin.
//
// The target count is drawn once. Each attempt samples a center; a center
// inside an already placed constellation is rejected outright, otherwise a
// full constellation is built and kept if its disk stays clear of every
// placed one. After starfield.MaxIterations attempts whatever was placed is
// returned.
func PlaceConstellations(cfg Config, src rng.Source) []Constellation {
	target := src.IntRange(cfg.MinConstellationsInGalaxy, cfg.MaxConstellationsInGalaxy)
	placed := make([]Constellation, 0, min(max(target, 0), starfield.MaxIterations))
	origin := geom.Pt(0, 0)

	for attempt := 0; len(placed) < target && attempt < starfield.MaxIterations; attempt++ {
		r := src.Float64Range(0, cfg.GalaxyRadius)
		angle := src.Float64Range(0, 2*math.Pi)
		center := geom.Polar(origin, r, angle)

		if insideAny(center, placed) {
			continue
		}
		c := BuildConstellation(center, cfg, src)
		if clearOfAll(c, placed) {
			placed = append(placed, c)
		}
	}
	return placed
}

func insideAny(p geom.Point, placed []Constellation) bool {
	for _, c := range placed {
		if geom.Dist(p, c.Center) <= c.Radius {
			return true
		}
	}
	return false
}

func clearOfAll(c Constellation, placed []Constellation) bool {
	for _, other := range placed {
		if geom.Dist(c.Center, other.Center) <= c.Radius+other.Radius {
			return false
		}
	}
	return true
}
