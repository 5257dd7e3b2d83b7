package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/graph"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "sky")

	err := execute(t, "generate", "--seed", "7", "-f", "json,txt", "-o", base, "--min-stars", "3", "--max-stars", "4")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	doc, err := graph.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	if doc.Seed != 7 {
		t.Errorf("seed = %d, want 7", doc.Seed)
	}
	if doc.Config.MinStarsInConstellation != 3 || doc.Config.MaxStarsInConstellation != 4 {
		t.Errorf("flag overrides not applied: %+v", doc.Config)
	}
	if _, err := os.Stat(base + ".txt"); err != nil {
		t.Errorf("txt artifact missing: %v", err)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"invalid config", []string{"generate", "--min-stars", "9", "--max-stars", "2", "-o", "-"}, errors.ErrCodeInvalidConfig},
		{"invalid format", []string{"generate", "-f", "pdf", "-o", "-"}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "sky.json")
	if err := execute(t, "generate", "--seed", "3", "-o", doc); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := execute(t, "render", doc, "-f", "svg,dot"); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, ext := range []string{".svg", ".dot"} {
		if _, err := os.Stat(filepath.Join(dir, "sky"+ext)); err != nil {
			t.Errorf("missing %s: %v", ext, err)
		}
	}

	if err := execute(t, "render", doc, "-f", "json"); err == nil {
		t.Error("rendering json next to the input should refuse to overwrite it")
	}
}

func TestConfigInitAndUse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "starmap.toml")

	if err := execute(t, "config", "init", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if err := execute(t, "config", "init", path); err == nil {
		t.Error("second init should refuse to overwrite")
	}
	if err := execute(t, "config", "init", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}

	cfg, err := galaxy.LoadConfig(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg != galaxy.DefaultConfig() {
		t.Errorf("written config = %+v, want defaults", cfg)
	}

	out := filepath.Join(dir, "g.json")
	if err := execute(t, "generate", "-c", path, "--seed", "1", "-o", out); err != nil {
		t.Errorf("generate with config: %v", err)
	}
}

func TestConfigShowValidates(t *testing.T) {
	if err := execute(t, "config", "show", "--toml"); err != nil {
		t.Errorf("config show: %v", err)
	}
	err := execute(t, "config", "show", "--galaxy-radius", "-5")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestCacheCommands(t *testing.T) {
	if err := execute(t, "cache", "path"); err != nil {
		t.Errorf("cache path: %v", err)
	}
	if err := execute(t, "cache", "clear"); err != nil {
		t.Errorf("cache clear: %v", err)
	}
}

func TestConfigFlagsResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.toml")
	if err := os.WriteFile(path, []byte("max_stars = 8\ngalaxy_radius = 400\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var (
		flags configFlags
		got   galaxy.Config
	)
	cmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			got, err = flags.resolve(cmd)
			return err
		},
	}
	flags.register(cmd)
	cmd.SetArgs([]string{"-c", path, "--galaxy-radius", "250"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if got.MaxStarsInConstellation != 8 {
		t.Errorf("max_stars = %d, want 8 from file", got.MaxStarsInConstellation)
	}
	if got.GalaxyRadius != 250 {
		t.Errorf("galaxy_radius = %v, want 250 from flag", got.GalaxyRadius)
	}
	if got.MinStarsInConstellation != 5 {
		t.Errorf("min_stars = %d, want default 5", got.MinStarsInConstellation)
	}
}
