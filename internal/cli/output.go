package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// stdoutPath as --output writes a single artifact to standard output.
const stdoutPath = "-"

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // default base path, used when output is empty
	output    string // file (single format), base path (several), or "-"
	input     string // source document, never overwritten
}

// artifactPaths maps formats to destination files.
//
// With one format and an explicit output, output is the file. Otherwise
// each format goes to "<base>.<format>", where base is output with any
// format extension removed, or p.base.
func artifactPaths(p artifactWriteParams) (map[string]string, error) {
	paths := make(map[string]string, len(p.formats))
	if len(p.formats) == 1 && p.output != "" {
		paths[p.formats[0]] = p.output
	} else {
		base := p.base
		if p.output != "" {
			base = trimFormatExt(p.output, p.formats)
		}
		for _, f := range p.formats {
			paths[f] = base + "." + f
		}
	}

	if p.input != "" {
		in, _ := filepath.Abs(p.input)
		for f, path := range paths {
			if abs, _ := filepath.Abs(path); abs == in {
				return nil, fmt.Errorf("%s output would overwrite input %s (use --output)", f, p.input)
			}
		}
	}
	return paths, nil
}

// writeArtifacts writes the artifacts and returns the paths written.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	if p.output == stdoutPath {
		if len(p.formats) != 1 {
			return nil, fmt.Errorf("--output - needs exactly one format, got %d", len(p.formats))
		}
		_, err := os.Stdout.Write(p.artifacts[p.formats[0]])
		return nil, err
	}

	paths, err := artifactPaths(p)
	if err != nil {
		return nil, err
	}
	var written []string
	for _, f := range p.formats {
		path := paths[f]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, err
			}
		}
		if err := os.WriteFile(path, p.artifacts[f], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func trimFormatExt(path string, formats []string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, f := range formats {
		if ext == f {
			return strings.TrimSuffix(path, "."+ext)
		}
	}
	return path
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for "" and "-", otherwise creates path.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
