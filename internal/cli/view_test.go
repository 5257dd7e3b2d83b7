package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/pipeline"
	"github.com/matzehuels/starmap/pkg/render/term"
)

func testViewModel(t *testing.T, seed int64) viewModel {
	t.Helper()
	logger := log.New(io.Discard)
	return newViewModel(context.Background(), pipeline.NewRunner(nil, nil, logger), logger, galaxy.DefaultConfig(), seed)
}

func stubRandomSeed(t *testing.T, seed int64) {
	t.Helper()
	orig := randomSeed
	randomSeed = func() int64 { return seed }
	t.Cleanup(func() { randomSeed = orig })
}

func update(t *testing.T, m viewModel, msg tea.Msg) (viewModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(viewModel), cmd
}

func TestViewGenerates(t *testing.T) {
	m := testViewModel(t, 42)

	msg, ok := m.generate()().(generatedMsg)
	if !ok {
		t.Fatal("generate should produce a generatedMsg")
	}
	if msg.err != nil {
		t.Fatal(msg.err)
	}
	m, _ = update(t, m, msg)

	if m.g == nil || m.stats.Stars == 0 {
		t.Fatal("model should hold the generated galaxy")
	}
	stars := 0
	for y := range m.canvas.Height() {
		for x := range m.canvas.Width() {
			if m.canvas.At(x, y) == term.Star {
				stars++
			}
		}
	}
	if stars == 0 {
		t.Error("canvas should show stars")
	}
	if !strings.Contains(m.View(), "42") {
		t.Error("view should show the seed")
	}
}

func TestViewKeys(t *testing.T) {
	stubRandomSeed(t, 99)

	tests := []struct {
		key  tea.KeyMsg
		want int64
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, 99},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, 99},
		{tea.KeyMsg{Type: tea.KeyLeft}, 9},
		{tea.KeyMsg{Type: tea.KeyRight}, 11},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, 11},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m, cmd := update(t, testViewModel(t, 10), tt.key)
			if m.seed != tt.want {
				t.Errorf("seed = %d, want %d", m.seed, tt.want)
			}
			if cmd == nil {
				t.Error("seed change should trigger generation")
			}
		})
	}
}

func TestViewQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := update(t, testViewModel(t, 1), key)
		if cmd == nil {
			t.Fatalf("%s should quit", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s should quit", key)
		}
	}
}

func TestViewIgnoresStaleResults(t *testing.T) {
	m := testViewModel(t, 5)
	stale := testViewModel(t, 4).generate()()

	m, _ = update(t, m, stale)
	if m.g != nil {
		t.Error("result for an old seed should be dropped")
	}
}

func TestViewResize(t *testing.T) {
	m, _ := update(t, testViewModel(t, 1), tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.canvas.Width() != 120 || m.canvas.Height() != 40-viewChrome {
		t.Errorf("canvas = %dx%d, want 120x%d", m.canvas.Width(), m.canvas.Height(), 40-viewChrome)
	}
}

func TestViewConfigReload(t *testing.T) {
	m := testViewModel(t, 1)

	bad := errors.New(errors.ErrCodeInvalidConfig, "max_stars must be >= min_stars")
	m, _ = update(t, m, configReload{Err: bad})
	if m.err == nil || !strings.Contains(m.View(), "max_stars") {
		t.Error("reload error should be shown")
	}

	cfg := galaxy.DefaultConfig()
	cfg.MaxStarsInConstellation = 6
	m, cmd := update(t, m, configReload{Config: cfg})
	if m.cfg.MaxStarsInConstellation != 6 {
		t.Error("reloaded config should be applied")
	}
	if cmd == nil {
		t.Error("reload should trigger generation")
	}
}
