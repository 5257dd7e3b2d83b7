package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArtifactPaths(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		output  string
		want    map[string]string
	}{
		{"default base", []string{"json", "svg"}, "", map[string]string{"json": "galaxy-1.json", "svg": "galaxy-1.svg"}},
		{"single explicit", []string{"svg"}, "poster.svg", map[string]string{"svg": "poster.svg"}},
		{"single without ext", []string{"png"}, "poster", map[string]string{"png": "poster"}},
		{"several with base", []string{"json", "svg"}, "out/sky", map[string]string{"json": "out/sky.json", "svg": "out/sky.svg"}},
		{"several strips ext", []string{"json", "svg"}, "sky.svg", map[string]string{"json": "sky.json", "svg": "sky.svg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := artifactPaths(artifactWriteParams{formats: tt.formats, output: tt.output, base: "galaxy-1"})
			if err != nil {
				t.Fatal(err)
			}
			for f, want := range tt.want {
				if got[f] != want {
					t.Errorf("%s -> %q, want %q", f, got[f], want)
				}
			}
		})
	}
}

func TestArtifactPathsProtectsInput(t *testing.T) {
	_, err := artifactPaths(artifactWriteParams{
		formats: []string{"json", "svg"},
		base:    "galaxy",
		input:   "galaxy.json",
	})
	if err == nil {
		t.Error("expected an error when output would overwrite the input")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	paths, err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"json": []byte("{}"), "txt": []byte("✦")},
		formats:   []string{"json", "txt"},
		output:    filepath.Join(dir, "nested", "sky"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}
	data, err := os.ReadFile(filepath.Join(dir, "nested", "sky.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "✦" {
		t.Errorf("txt = %q", data)
	}
}

func TestWriteArtifactsStdoutNeedsOneFormat(t *testing.T) {
	_, err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"json": nil, "svg": nil},
		formats:   []string{"json", "svg"},
		output:    stdoutPath,
	})
	if err == nil {
		t.Error("expected an error for several formats on stdout")
	}
}
