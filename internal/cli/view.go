package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/pipeline"
	"github.com/matzehuels/starmap/pkg/render/term"
)

// viewChrome is the number of rows used by the header and footer.
const viewChrome = 3

var (
	viewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	viewErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// viewCommand creates the interactive view command.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		cfgFlags configFlags
		seed     int64
		watch    bool
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore galaxies in the terminal",
		Long: `Explore galaxies in the terminal.

Keys:
  space, n     new random galaxy
  ←/→, h/l     previous / next seed
  q, esc       quit

With --watch the galaxy is regenerated whenever the --config file changes.
Logs go to --log-file, since the terminal is taken by the view.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cfgFlags.resolve(cmd)
			if err != nil {
				return err
			}
			if watch && cfgFlags.path == "" {
				return fmt.Errorf("--watch needs --config")
			}
			if !cmd.Flags().Changed("seed") {
				seed = randomSeed()
			}
			return c.runView(cmd.Context(), cfg, seed, cfgFlags.path, watch, logFile)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "initial seed (default: random)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate when the config file changes")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while viewing")
	cfgFlags.register(cmd)

	return cmd
}

func (c *CLI) runView(ctx context.Context, cfg galaxy.Config, seed int64, configPath string, watch bool, logFile string) error {
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		c.Logger.SetOutput(f)
	} else {
		c.Logger.SetOutput(io.Discard)
	}
	defer c.Logger.SetOutput(os.Stderr)

	// The view regenerates constantly; caching every seed would only fill
	// the disk.
	runner, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	m := newViewModel(ctx, runner, c.Logger, cfg, seed)

	if watch {
		w, err := newConfigWatcher(configPath)
		if err != nil {
			return fmt.Errorf("watch %s: %w", configPath, err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("watch %s: %w", configPath, err)
		}
		defer w.Stop()
		m.reloads = w.Reloads
		c.Logger.Info("watching config", "path", w.Path)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// generatedMsg carries a finished generation back to the model.
type generatedMsg struct {
	seed    int64
	g       *galaxy.Galaxy
	stats   galaxy.Stats
	elapsed time.Duration
	err     error
}

// viewModel is the bubbletea model for the view command.
type viewModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	logger *log.Logger

	cfg     galaxy.Config
	seed    int64
	reloads <-chan configReload

	canvas  *term.Canvas
	g       *galaxy.Galaxy
	stats   galaxy.Stats
	elapsed time.Duration
	err     error
}

func newViewModel(ctx context.Context, runner *pipeline.Runner, logger *log.Logger, cfg galaxy.Config, seed int64) viewModel {
	return viewModel{
		ctx:    ctx,
		runner: runner,
		logger: logger,
		cfg:    cfg,
		seed:   seed,
		canvas: term.NewCanvas(80, 24-viewChrome),
	}
}

func (m viewModel) Init() tea.Cmd {
	return tea.Batch(m.generate(), m.waitForReload())
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			m.seed = randomSeed()
			return m, m.generate()
		case "left", "h":
			m.seed--
			return m, m.generate()
		case "right", "l":
			m.seed++
			return m, m.generate()
		}

	case tea.WindowSizeMsg:
		m.canvas = term.NewCanvas(msg.Width, max(msg.Height-viewChrome, 1))
		if m.g != nil {
			m.canvas.Draw(m.g)
		}

	case generatedMsg:
		if msg.seed != m.seed {
			return m, nil // superseded by a newer request
		}
		m.err = msg.err
		if msg.err != nil {
			m.logger.Error("generation failed", "seed", msg.seed, "error", msg.err)
			return m, nil
		}
		m.g, m.stats, m.elapsed = msg.g, msg.stats, msg.elapsed
		m.canvas.Draw(m.g)
		m.logger.Infof("Regeneration took %d ms", msg.elapsed.Milliseconds())

	case configReload:
		if msg.Err != nil {
			m.err = msg.Err
			m.logger.Warn("config reload failed", "error", msg.Err)
			return m, m.waitForReload()
		}
		m.cfg = msg.Config
		m.logger.Info("config reloaded")
		return m, tea.Batch(m.generate(), m.waitForReload())
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(StyleDim.Render(" · seed "))
	b.WriteString(StyleNumber.Render(fmt.Sprint(m.seed)))
	if m.elapsed > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf(" · %d ms", m.elapsed.Milliseconds())))
	}
	b.WriteString("\n")

	b.WriteString(m.canvas.Render())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(viewErrorStyle.Render(iconError + " " + m.err.Error()))
	} else {
		b.WriteString(statsLine(m.stats, false))
	}
	b.WriteString("\n")
	b.WriteString(viewHelpStyle.Render("space new · ←/→ seed · q quit"))
	return b.String()
}

// generate builds the galaxy for the current seed off the update loop.
func (m viewModel) generate() tea.Cmd {
	ctx, runner, cfg, seed := m.ctx, m.runner, m.cfg, m.seed
	return func() tea.Msg {
		start := time.Now()
		doc, err := runner.Generate(ctx, cfg, seed)
		if err != nil {
			return generatedMsg{seed: seed, err: err}
		}
		g, err := doc.Galaxy()
		return generatedMsg{seed: seed, g: g, stats: doc.Stats, elapsed: time.Since(start), err: err}
	}
}

// waitForReload delivers the next config reload, if watching.
func (m viewModel) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return r
	}
}
