// Package galaxy generates galaxies: sets of non-overlapping constellations
// joined into one connected graph.
//
// # Overview
//
// [Generate] is the single entry point. It validates a [Config], places
// constellations by rejection sampling, links them with a minimum spanning
// tree over their centers and finally sprinkles in extra links whose
// probability decays with distance:
//
//	g, err := galaxy.Generate(galaxy.DefaultConfig(), rng.New(42))
//	if err != nil {
//	    return err
//	}
//	for _, s := range g.Segments() {
//	    // draw s.A -> s.B
//	}
//
// Every call builds a fresh [Galaxy]; nothing is shared between calls. The
// only state consumed is the [rng.Source], so two calls with sources that
// yield the same draws produce identical galaxies.
//
// # Best Effort
//
// Placement is bounded by [starfield.MaxIterations] attempts per loop. A
// crowded configuration silently yields fewer constellations or stars than
// requested. Constellation internals are only best-effort connected, see
// package starfield. The galaxy-level graph is always connected.
//
// # Configuration
//
// [Config] carries toml tags and can be loaded with [LoadConfig]:
//
//	min_star_distance = 20.0
//	min_stars = 5
//	max_stars = 10
//	galaxy_radius = 300.0
//
// Missing keys keep their [DefaultConfig] values.
package galaxy
