package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/starmap/pkg/pipeline"
)

// randomSeed picks a seed when --seed is not given.
var randomSeed = func() int64 { return rand.Int64N(1 << 53) }

// renderFlags are the render options shared by generate and render.
type renderFlags struct {
	formats string
	output  string
	style   string
	disks   bool
	width   int
	height  int
	noCache bool
}

func (f *renderFlags) register(cmd *cobra.Command, defaultFormat string) {
	fs := cmd.Flags()
	fs.StringVarP(&f.formats, "format", "f", defaultFormat, "output format(s): json, svg, dot, png, txt (comma-separated)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (single format), base path (several), or - for stdout")
	fs.StringVar(&f.style, "style", pipeline.DefaultStyle, "SVG style: simple, glow")
	fs.BoolVar(&f.disks, "disks", false, "outline constellation disks (svg)")
	fs.IntVar(&f.width, "width", pipeline.DefaultTextWidth, "text canvas columns (txt)")
	fs.IntVar(&f.height, "height", pipeline.DefaultTextHeight, "text canvas rows (txt)")
	fs.BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

func (f *renderFlags) options() pipeline.Options {
	return pipeline.Options{
		Formats: parseFormats(f.formats),
		Style:   f.style,
		Disks:   f.disks,
		Width:   f.width,
		Height:  f.height,
	}
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		cfgFlags configFlags
		render   renderFlags
		seed     int64
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a galaxy",
		Long: `Generate a galaxy from a config and a seed.

The same config and seed always produce the same galaxy. Without --seed a
random seed is picked and printed so the result can be reproduced.

Config values come from --config (TOML) and can be overridden per flag.
Results are cached locally for faster subsequent runs.`,
		Example: `  starmap generate --seed 42
  starmap generate --seed 42 -f json,svg -o galaxy
  starmap generate -c starmap.toml --max-stars 6 -f txt -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cfgFlags.resolve(cmd)
			if err != nil {
				return err
			}
			opts := render.options()
			opts.Config = cfg
			opts.Refresh = refresh
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			} else {
				opts.Seed = randomSeed()
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, render)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "random seed (default: random)")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "regenerate even if cached")
	render.register(cmd, pipeline.FormatJSON)
	cfgFlags.register(cmd)

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, flags renderFlags) error {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var spinner *Spinner
	if slices.Contains(opts.Formats, pipeline.FormatPNG) {
		spinner = newSpinner(ctx, os.Stderr, "Rendering png...")
		spinner.Start()
	}

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated galaxy with seed %d", opts.Seed))

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      fmt.Sprintf("galaxy-%d", opts.Seed),
		output:    flags.output,
	})
	if err != nil {
		return err
	}
	if flags.output == stdoutPath {
		return nil
	}

	printSuccess("Galaxy %s", StyleNumber.Render(fmt.Sprint(opts.Seed)))
	printStats(result.Document.Stats, result.CacheInfo.GenerateHit)
	for _, p := range paths {
		printFile(p)
	}
	printNextStep("Explore it", fmt.Sprintf("%s view --seed %d", appName, opts.Seed))
	return nil
}
