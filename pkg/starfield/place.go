package starfield

import (
	"math"

	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/rng"
)

// MaxIterations bounds every rejection-sampling loop.
const MaxIterations = 1000

// PlaceStars samples between minCount and maxCount stars inside the disk of
// maxRadius around center, keeping every pair at least minDistance apart.
//
// The second result is the largest accepted sampling radius. Sampling stops
// after MaxIterations attempts, so fewer stars than requested may come back.
func PlaceStars(center geom.Point, minCount, maxCount int, maxRadius, minDistance float64, src rng.Source) ([]geom.Point, float64) {
	target := src.IntRange(minCount, maxCount)
	stars := make([]geom.Point, 0, min(max(target, 0), MaxIterations))
	actualRadius := 0.0

	for attempt := 0; len(stars) < target && attempt < MaxIterations; attempt++ {
		radius := src.Float64Range(0, maxRadius)
		angle := src.Float64Range(0, 2*math.Pi)
		candidate := geom.Polar(center, radius, angle)

		if farFromAll(candidate, stars, minDistance) {
			actualRadius = max(actualRadius, radius)
			stars = append(stars, candidate)
		}
	}
	return stars, actualRadius
}

func farFromAll(p geom.Point, stars []geom.Point, minDistance float64) bool {
	for _, s := range stars {
		if geom.Dist(p, s) < minDistance {
			return false
		}
	}
	return true
}
