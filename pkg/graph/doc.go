// Package graph provides the serialization format for generated galaxies.
//
// This package defines the canonical wire format for starmap's galaxy data,
// used for JSON files, API responses, caching and the MongoDB archive.
//
// # Architecture
//
// The package sits at the serialization boundary between the generator's
// in-memory types and external formats:
//
//   - [Document]: Serialization type (this package)
//   - pkg/galaxy.Galaxy: In-memory galaxy
//
// Use [FromGalaxy] and [Document.Galaxy] to convert between them.
//
// # Format
//
// A document records how the galaxy was produced next to its contents:
//
//	{
//	  "id": "2f0c...",
//	  "seed": 42,
//	  "config": {"min_star_distance": 20, ...},
//	  "constellations": [
//	    {
//	      "center": {"x": 12.5, "y": -80.1},
//	      "radius": 97.3,
//	      "stars": [{"x": 30.2, "y": -41.7}, ...],
//	      "edges": [{"a": 0, "b": 3, "distance": 41.2, "kind": "nearest"}, ...]
//	    }
//	  ],
//	  "links": [{"from": 0, "to": 2, "from_star": 1, "to_star": 4}],
//	  "stats": {"constellations": 7, "stars": 52, ...}
//	}
//
// Common operations:
//
//	doc := graph.FromGalaxy(g, cfg, seed)     // Galaxy → Document
//	graph.WriteFile(doc, "galaxy.json")       // Document → File
//	doc, _ := graph.ReadFile("galaxy.json")   // File → Document
//	g, _ := doc.Galaxy()                      // Document → Galaxy
//
// # Identity
//
// Document IDs are name-based UUIDs derived from the config and seed, so the
// same inputs always produce the same ID and the same bytes.
package graph
