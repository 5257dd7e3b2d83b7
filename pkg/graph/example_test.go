package graph_test

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/graph"
	"github.com/matzehuels/starmap/pkg/starfield"
)

func ExampleRead() {
	data := `{
		"seed": 1,
		"constellations": [
			{"center": {"x": 0, "y": 0}, "radius": 5,
			 "stars": [{"x": -5, "y": 0}, {"x": 5, "y": 0}],
			 "edges": [{"a": 0, "b": 1, "distance": 10, "kind": "nearest"}]}
		]
	}`

	doc, err := graph.Read(bytes.NewReader([]byte(data)))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	g, err := doc.Galaxy()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("stars:", g.StarCount())
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// stars: 2
	// edges: 1
}

func ExampleFromGalaxy() {
	g := &galaxy.Galaxy{
		Constellations: []galaxy.Constellation{{
			Stars:  []geom.Point{geom.Pt(0, 0), geom.Pt(3, 4)},
			Edges:  []starfield.Edge{{A: 0, B: 1, Distance: 5}},
			Center: geom.Pt(0, 0),
			Radius: 5,
		}},
	}
	doc := graph.FromGalaxy(g, galaxy.DefaultConfig(), 1)
	fmt.Println(doc.Constellations[0].Edges[0].Kind, doc.Stats.Stars)
	// Output: nearest 2
}
