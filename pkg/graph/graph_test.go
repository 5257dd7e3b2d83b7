package graph

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/geom"
	"github.com/matzehuels/starmap/pkg/rng"
	"github.com/matzehuels/starmap/pkg/starfield"
)

func generate(t *testing.T, seed int64) (*galaxy.Galaxy, galaxy.Config) {
	t.Helper()
	cfg := galaxy.DefaultConfig()
	g, err := galaxy.Generate(cfg, rng.New(uint64(seed)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return g, cfg
}

func TestRoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		g, cfg := generate(t, seed)
		doc := FromGalaxy(g, cfg, seed)

		data, err := Marshal(doc)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		parsed, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		back, err := parsed.Galaxy()
		if err != nil {
			t.Fatalf("Galaxy: %v", err)
		}
		if !reflect.DeepEqual(FromGalaxy(back, cfg, seed), doc) {
			t.Errorf("seed %d: round trip changed the galaxy", seed)
		}
		if !reflect.DeepEqual(back.Segments(), g.Segments()) {
			t.Errorf("seed %d: round trip moved stars or edges", seed)
		}
		if parsed.Stats != g.Stats() {
			t.Errorf("seed %d: stats = %+v, want %+v", seed, parsed.Stats, g.Stats())
		}
	}
}

func TestFromGalaxy(t *testing.T) {
	g := &galaxy.Galaxy{
		Constellations: []galaxy.Constellation{{
			Stars:  []geom.Point{geom.Pt(0, 0), geom.Pt(3, 4)},
			Edges:  []starfield.Edge{{A: 0, B: 1, Distance: 5, Kind: starfield.GroupMerge}},
			Center: geom.Pt(1, 1),
			Radius: 4.5,
		}},
	}
	doc := FromGalaxy(g, galaxy.DefaultConfig(), 7)

	if doc.Seed != 7 {
		t.Errorf("Seed = %d, want 7", doc.Seed)
	}
	c := doc.Constellations[0]
	if c.Center != (Point{X: 1, Y: 1}) || c.Radius != 4.5 {
		t.Errorf("constellation = %+v", c)
	}
	if want := (Edge{A: 0, B: 1, Distance: 5, Kind: "group_merge"}); c.Edges[0] != want {
		t.Errorf("edge = %+v, want %+v", c.Edges[0], want)
	}
	if doc.Stats.GroupMerges != 1 || doc.Stats.Stars != 2 {
		t.Errorf("stats = %+v", doc.Stats)
	}
	if doc.Links == nil {
		t.Error("Links should encode as [] not null")
	}
}

func TestDocumentID(t *testing.T) {
	cfg := galaxy.DefaultConfig()
	a := DocumentID(cfg, 1)
	if a != DocumentID(cfg, 1) {
		t.Error("DocumentID should be deterministic")
	}
	if a == DocumentID(cfg, 2) {
		t.Error("different seeds should produce different IDs")
	}
	cfg.GalaxyRadius++
	if a == DocumentID(cfg, 1) {
		t.Error("different configs should produce different IDs")
	}
	if len(a) != 36 {
		t.Errorf("ID %q is not a UUID", a)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	g, cfg := generate(t, 9)
	a, _ := Marshal(FromGalaxy(g, cfg, 9))
	g2, _ := generate(t, 9)
	b, _ := Marshal(FromGalaxy(g2, cfg, 9))
	if string(a) != string(b) {
		t.Error("same seed produced different bytes")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Unmarshal() error = %v, want INVALID_FORMAT", err)
	}
}

func TestGalaxyInvalidIndices(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "EdgeOutOfRange",
			json: `{"constellations":[{"stars":[{"x":0,"y":0}],"edges":[{"a":0,"b":4}]}]}`,
		},
		{
			name: "LinkOutOfRange",
			json: `{"constellations":[{"stars":[{"x":0,"y":0}]}],"links":[{"from":0,"to":3}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Unmarshal([]byte(tt.json))
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if _, err := doc.Galaxy(); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Galaxy() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestFiles(t *testing.T) {
	g, cfg := generate(t, 3)
	doc := FromGalaxy(g, cfg, 3)
	path := filepath.Join(t.TempDir(), "galaxy.json")

	if err := WriteFile(doc, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"min_star_distance": 20`) {
		t.Errorf("file missing config:\n%s", raw)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Error("ReadFile returned a different document")
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile on missing file should fail")
	}
}
