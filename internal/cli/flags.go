package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/starmap/pkg/galaxy"
)

// configFlags exposes every galaxy.Config field as a flag. Flags the user
// sets override values from the --config file.
type configFlags struct {
	path   string
	values galaxy.Config
}

func (f *configFlags) register(cmd *cobra.Command) {
	f.values = galaxy.DefaultConfig()
	fs := cmd.Flags()
	fs.StringVarP(&f.path, "config", "c", "", "TOML config file (see 'starmap config init')")
	fs.Float64Var(&f.values.MinStarDistance, "min-star-distance", f.values.MinStarDistance, "minimum distance between stars")
	fs.IntVar(&f.values.MinStarsInConstellation, "min-stars", f.values.MinStarsInConstellation, "minimum stars per constellation")
	fs.IntVar(&f.values.MaxStarsInConstellation, "max-stars", f.values.MaxStarsInConstellation, "maximum stars per constellation")
	fs.Float64Var(&f.values.MinConstellationRadius, "min-radius", f.values.MinConstellationRadius, "minimum constellation radius")
	fs.Float64Var(&f.values.MaxConstellationRadius, "max-radius", f.values.MaxConstellationRadius, "maximum constellation radius")
	fs.IntVar(&f.values.MinConstellationsInGalaxy, "min-constellations", f.values.MinConstellationsInGalaxy, "minimum constellations")
	fs.IntVar(&f.values.MaxConstellationsInGalaxy, "max-constellations", f.values.MaxConstellationsInGalaxy, "maximum constellations")
	fs.Float64Var(&f.values.GalaxyRadius, "galaxy-radius", f.values.GalaxyRadius, "radius of the disk constellation centers are drawn from")
	fs.Float64Var(&f.values.ConnectionThreshold, "connection-threshold", f.values.ConnectionThreshold, "distance at which extra links stop appearing")
}

// resolve loads the config file, if any, and applies the flags that were set.
func (f *configFlags) resolve(cmd *cobra.Command) (galaxy.Config, error) {
	cfg := galaxy.DefaultConfig()
	if f.path != "" {
		loaded, err := galaxy.LoadConfig(f.path)
		if err != nil {
			return galaxy.Config{}, err
		}
		cfg = loaded
	}
	f.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return galaxy.Config{}, err
	}
	return cfg, nil
}

func (f *configFlags) apply(cmd *cobra.Command, cfg *galaxy.Config) {
	v := f.values
	override(cmd, "min-star-distance", &cfg.MinStarDistance, v.MinStarDistance)
	override(cmd, "min-stars", &cfg.MinStarsInConstellation, v.MinStarsInConstellation)
	override(cmd, "max-stars", &cfg.MaxStarsInConstellation, v.MaxStarsInConstellation)
	override(cmd, "min-radius", &cfg.MinConstellationRadius, v.MinConstellationRadius)
	override(cmd, "max-radius", &cfg.MaxConstellationRadius, v.MaxConstellationRadius)
	override(cmd, "min-constellations", &cfg.MinConstellationsInGalaxy, v.MinConstellationsInGalaxy)
	override(cmd, "max-constellations", &cfg.MaxConstellationsInGalaxy, v.MaxConstellationsInGalaxy)
	override(cmd, "galaxy-radius", &cfg.GalaxyRadius, v.GalaxyRadius)
	override(cmd, "connection-threshold", &cfg.ConnectionThreshold, v.ConnectionThreshold)
}

func override[T any](cmd *cobra.Command, name string, dst *T, v T) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}
