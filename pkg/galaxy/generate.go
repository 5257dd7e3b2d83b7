package galaxy

import (
	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/rng"
)

// Generate builds a galaxy from cfg, drawing all randomness from src.
//
// It fails with INVALID_CONFIG when cfg does not validate and with
// EMPTY_GALAXY when no constellation could be placed. Shortfalls in star or
// constellation counts are not errors.
func Generate(cfg Config, src rng.Source) (*Galaxy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil random source")
	}

	constellations := PlaceConstellations(cfg, src)
	if len(constellations) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyGalaxy, "no constellation could be placed")
	}

	links := ConnectNearest(constellations)
	links = AddSupplemental(constellations, links, cfg.ConnectionThreshold, src)

	return &Galaxy{Constellations: constellations, Links: links}, nil
}
