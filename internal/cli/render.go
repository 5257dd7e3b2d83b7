package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/starmap/pkg/graph"
	"github.com/matzehuels/starmap/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [galaxy.json]",
		Short: "Render a saved galaxy",
		Long: `Render a galaxy document written by 'generate -f json'.

Rendering reads the stored star positions, so the output matches the
original galaxy exactly even if the generator changes.`,
		Example: `  starmap render galaxy-42.json -f svg,png
  starmap render galaxy-42.json -f svg --style glow -o poster.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options()
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, flags)
		},
	}

	flags.register(cmd, pipeline.FormatSVG)
	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, flags renderFlags) error {
	doc, err := graph.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load galaxy %s: %w", input, err)
	}
	opts.Config = doc.Config
	opts.Seed = doc.Seed

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
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, doc, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.Formats, ", ")))

	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      strings.TrimSuffix(input, filepath.Ext(input)),
		output:    flags.output,
		input:     input,
	})
	if err != nil {
		return err
	}
	if flags.output == stdoutPath {
		return nil
	}

	printSuccess("Rendered galaxy %s", StyleNumber.Render(fmt.Sprint(doc.Seed)))
	printStats(doc.Stats, hit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}
