package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/starmap/pkg/galaxy"
)

// defaultConfigFile is written by "config init" when no path is given.
const defaultConfigFile = "starmap.toml"

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or inspect generation config files",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config to a TOML file",
		Long: `Write the default config to a TOML file (starmap.toml by default).

Use - as the path to print it instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			return writeDefaultConfig(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func writeDefaultConfig(path string, force bool) error {
	if path == stdoutPath {
		return galaxy.WriteConfig(os.Stdout, galaxy.DefaultConfig())
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}
	if err := galaxy.WriteConfig(f, galaxy.DefaultConfig()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	printSuccess("Wrote default config")
	printFile(path)
	printNextStep("Use it", fmt.Sprintf("%s generate --config %s", appName, path))
	return nil
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var (
		cfgFlags configFlags
		asTOML   bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Long: `Print the config generate would use: defaults, overlaid with --config,
overlaid with any config flags. The result is validated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cfgFlags.resolve(cmd)
			if err != nil {
				return err
			}
			if asTOML {
				return galaxy.WriteConfig(os.Stdout, cfg)
			}
			printConfig(cfg)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "print as TOML")
	cfgFlags.register(cmd)
	return cmd
}

func printConfig(cfg galaxy.Config) {
	fmt.Println(StyleTitle.Render("Galaxy config"))
	printKeyValue("min_star_distance", fmt.Sprint(cfg.MinStarDistance))
	printKeyValue("min_stars", fmt.Sprint(cfg.MinStarsInConstellation))
	printKeyValue("max_stars", fmt.Sprint(cfg.MaxStarsInConstellation))
	printKeyValue("min_constellation_radius", fmt.Sprint(cfg.MinConstellationRadius))
	printKeyValue("max_constellation_radius", fmt.Sprint(cfg.MaxConstellationRadius))
	printKeyValue("min_constellations", fmt.Sprint(cfg.MinConstellationsInGalaxy))
	printKeyValue("max_constellations", fmt.Sprint(cfg.MaxConstellationsInGalaxy))
	printKeyValue("galaxy_radius", fmt.Sprint(cfg.GalaxyRadius))
	printKeyValue("connection_threshold", fmt.Sprint(cfg.ConnectionThreshold))
}
