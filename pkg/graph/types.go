package graph

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/starfield"
)

// Namespace is the UUID namespace document IDs are derived in.
var Namespace = uuid.MustParse("9a4f1d52-6c1e-4b7a-8f3e-2d5b0c9e7a11")

// Document is the canonical serialization of a generated galaxy.
type Document struct {
	ID             string          `json:"id" bson:"_id"`
	Seed           int64           `json:"seed" bson:"seed"`
	Config         galaxy.Config   `json:"config" bson:"config"`
	Constellations []Constellation `json:"constellations" bson:"constellations"`
	Links          []galaxy.Link   `json:"links" bson:"links"`
	Stats          galaxy.Stats    `json:"stats" bson:"stats"`
}

// Point is a serialized position.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Constellation is a serialized constellation.
type Constellation struct {
	Center Point   `json:"center" bson:"center"`
	Radius float64 `json:"radius" bson:"radius"`
	Stars  []Point `json:"stars" bson:"stars"`
	Edges  []Edge  `json:"edges" bson:"edges"`
}

// Edge is a serialized constellation edge.
type Edge struct {
	A        int     `json:"a" bson:"a"`
	B        int     `json:"b" bson:"b"`
	Distance float64 `json:"distance" bson:"distance"`
	Kind     string  `json:"kind" bson:"kind"` // "nearest" or "group_merge"
}

// DocumentID returns the ID a document generated from cfg and seed gets.
func DocumentID(cfg galaxy.Config, seed int64) string {
	data, _ := json.Marshal(struct {
		Config galaxy.Config `json:"config"`
		Seed   int64         `json:"seed"`
	}{cfg, seed})
	return uuid.NewSHA1(Namespace, data).String()
}

// FromGalaxy converts a galaxy to its serialization format.
func FromGalaxy(g *galaxy.Galaxy, cfg galaxy.Config, seed int64) Document {
	doc := Document{
		ID:             DocumentID(cfg, seed),
		Seed:           seed,
		Config:         cfg,
		Constellations: make([]Constellation, len(g.Constellations)),
		Links:          append([]galaxy.Link{}, g.Links...),
		Stats:          g.Stats(),
	}
	for i, c := range g.Constellations {
		out := Constellation{
			Center: fromPoint(c.Center),
			Radius: c.Radius,
			Stars:  make([]Point, len(c.Stars)),
			Edges:  make([]Edge, len(c.Edges)),
		}
		for j, p := range c.Stars {
			out.Stars[j] = fromPoint(p)
		}
		for j, e := range c.Edges {
			out.Edges[j] = Edge{A: e.A, B: e.B, Distance: e.Distance, Kind: e.Kind.String()}
		}
		doc.Constellations[i] = out
	}
	return doc
}

// Galaxy rebuilds the in-memory galaxy. It fails with INVALID_INPUT when an
// edge or link references a star or constellation that does not exist.
func (d Document) Galaxy() (*galaxy.Galaxy, error) {
	g := &galaxy.Galaxy{
		Constellations: make([]galaxy.Constellation, len(d.Constellations)),
		Links:          append([]galaxy.Link{}, d.Links...),
	}
	for i, c := range d.Constellations {
		out := galaxy.Constellation{
			Center: c.Center.toPoint(),
			Radius: c.Radius,
			Stars:  make([]geom.Point, len(c.Stars)),
			Edges:  make([]starfield.Edge, len(c.Edges)),
		}
		for j, p := range c.Stars {
			out.Stars[j] = p.toPoint()
		}
		for j, e := range c.Edges {
			out.Edges[j] = starfield.Edge{A: e.A, B: e.B, Distance: e.Distance, Kind: starfield.ParseEdgeKind(e.Kind)}
		}
		g.Constellations[i] = out
	}
	if err := g.Check(); err != nil {
		return nil, err
	}
	return g, nil
}

func fromPoint(p geom.Point) Point { return Point{X: p.X, Y: p.Y} }

func (p Point) toPoint() geom.Point { return geom.Pt(p.X, p.Y) }
