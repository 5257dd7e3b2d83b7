package galaxy

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/starmap/pkg/errors"
)

// Config controls the shape of a generated galaxy.
type Config struct {
	// MinStarDistance is the minimum spacing between stars of a constellation.
	MinStarDistance float64 `toml:"min_star_distance" json:"min_star_distance" bson:"min_star_distance"`

	// MinStarsInConstellation and MaxStarsInConstellation bound the star
	// count of each constellation (inclusive).
	MinStarsInConstellation int `toml:"min_stars" json:"min_stars" bson:"min_stars"`
	MaxStarsInConstellation int `toml:"max_stars" json:"max_stars" bson:"max_stars"`

	// MinConstellationRadius and MaxConstellationRadius bound the disk each
	// constellation samples its stars from, as [min, max).
	MinConstellationRadius float64 `toml:"min_constellation_radius" json:"min_constellation_radius" bson:"min_constellation_radius"`
	MaxConstellationRadius float64 `toml:"max_constellation_radius" json:"max_constellation_radius" bson:"max_constellation_radius"`

	// MinConstellationsInGalaxy and MaxConstellationsInGalaxy bound the
	// number of constellations (inclusive).
	MinConstellationsInGalaxy int `toml:"min_constellations" json:"min_constellations" bson:"min_constellations"`
	MaxConstellationsInGalaxy int `toml:"max_constellations" json:"max_constellations" bson:"max_constellations"`

	// GalaxyRadius is the radius of the disk constellation centers are drawn from.
	GalaxyRadius float64 `toml:"galaxy_radius" json:"galaxy_radius" bson:"galaxy_radius"`

	// ConnectionThreshold is the center distance at which the chance of an
	// extra link between two constellations drops to zero.
	ConnectionThreshold float64 `toml:"connection_threshold" json:"connection_threshold" bson:"connection_threshold"`
}

// Upper bounds on the count options. Generation cost grows with the square
// of the star count and the cube of the constellation count.
const (
	MaxStarsLimit          = 100
	MaxConstellationsLimit = 100
)

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MinStarDistance:           20,
		MinStarsInConstellation:   5,
		MaxStarsInConstellation:   10,
		MinConstellationRadius:    80,
		MaxConstellationRadius:    160,
		MinConstellationsInGalaxy: 5,
		MaxConstellationsInGalaxy: 10,
		GalaxyRadius:              300,
		ConnectionThreshold:       300,
	}
}

// Validate reports the first problem with c as an INVALID_CONFIG error.
func (c Config) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"min_star_distance", c.MinStarDistance},
		{"min_constellation_radius", c.MinConstellationRadius},
		{"max_constellation_radius", c.MaxConstellationRadius},
		{"galaxy_radius", c.GalaxyRadius},
		{"connection_threshold", c.ConnectionThreshold},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid("%s must be finite, got %v", f.name, f.v)
		}
	}

	switch {
	case c.MinStarDistance < 0:
		return invalid("min_star_distance must not be negative, got %v", c.MinStarDistance)
	case c.MinStarsInConstellation < 1:
		return invalid("min_stars must be at least 1, got %d", c.MinStarsInConstellation)
	case c.MaxStarsInConstellation < c.MinStarsInConstellation:
		return invalid("max_stars (%d) is less than min_stars (%d)", c.MaxStarsInConstellation, c.MinStarsInConstellation)
	case c.MaxStarsInConstellation > MaxStarsLimit:
		return invalid("max_stars must be at most %d, got %d", MaxStarsLimit, c.MaxStarsInConstellation)
	case c.MinConstellationRadius <= 0:
		return invalid("min_constellation_radius must be positive, got %v", c.MinConstellationRadius)
	case c.MaxConstellationRadius < c.MinConstellationRadius:
		return invalid("max_constellation_radius (%v) is less than min_constellation_radius (%v)", c.MaxConstellationRadius, c.MinConstellationRadius)
	case c.MinConstellationsInGalaxy < 1:
		return invalid("min_constellations must be at least 1, got %d", c.MinConstellationsInGalaxy)
	case c.MaxConstellationsInGalaxy < c.MinConstellationsInGalaxy:
		return invalid("max_constellations (%d) is less than min_constellations (%d)", c.MaxConstellationsInGalaxy, c.MinConstellationsInGalaxy)
	case c.MaxConstellationsInGalaxy > MaxConstellationsLimit:
		return invalid("max_constellations must be at most %d, got %d", MaxConstellationsLimit, c.MaxConstellationsInGalaxy)
	case c.GalaxyRadius <= 0:
		return invalid("galaxy_radius must be positive, got %v", c.GalaxyRadius)
	case c.ConnectionThreshold <= 0:
		return invalid("connection_threshold must be positive, got %v", c.ConnectionThreshold)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates the
// result. Unknown keys are rejected so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return Config{}, invalid("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteConfig encodes c as TOML.
func WriteConfig(w io.Writer, c Config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
