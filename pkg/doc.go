// Package pkg holds the libraries behind starmap, a procedural star map
// generator.
//
// # Overview
//
// A galaxy is a set of constellations scattered over a disk. Each
// constellation is a cluster of stars joined into a connected tree, and
// constellations are linked to their neighbours so the whole map forms one
// connected network. Generation is deterministic: the same [galaxy.Config]
// and seed always produce the same galaxy.
//
// The directory is organized in layers:
//
//  1. [rng], [geom] - seeded randomness and plane geometry
//  2. [starfield] - star sampling and the edges inside one constellation
//  3. [galaxy] - placement, linking and the [galaxy.Galaxy] result
//  4. [graph] - the JSON document a galaxy is stored and served as
//  5. [render] - SVG, Graphviz and terminal output
//  6. [pipeline] - generate then render, with caching and hooks
//
// Supporting packages: [cache] (file and Redis caches), [store] (galaxy
// archive in memory, on disk or in MongoDB), [observability] (hooks),
// [errors] (coded errors) and [buildinfo].
//
// # Quick Start
//
//	g, err := galaxy.Generate(galaxy.DefaultConfig(), rng.New(42))
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(g)
//
// Or through the pipeline, which adds caching and multiple formats:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Seed:    42,
//	    Formats: []string{"svg", "json"},
//	})
//
// [rng]: github.com/matzehuels/starmap/pkg/rng
// [geom]: github.com/matzehuels/starmap/pkg/geom
// [starfield]: github.com/matzehuels/starmap/pkg/starfield
// [galaxy]: github.com/matzehuels/starmap/pkg/galaxy
// [galaxy.Config]: github.com/matzehuels/starmap/pkg/galaxy.Config
// [galaxy.Galaxy]: github.com/matzehuels/starmap/pkg/galaxy.Galaxy
// [graph]: github.com/matzehuels/starmap/pkg/graph
// [render]: github.com/matzehuels/starmap/pkg/render
// [pipeline]: github.com/matzehuels/starmap/pkg/pipeline
// [cache]: github.com/matzehuels/starmap/pkg/cache
// [store]: github.com/matzehuels/starmap/pkg/store
// [observability]: github.com/matzehuels/starmap/pkg/observability
// [errors]: github.com/matzehuels/starmap/pkg/errors
// [buildinfo]: github.com/matzehuels/starmap/pkg/buildinfo
package pkg
