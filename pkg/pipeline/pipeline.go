// Package pipeline provides the generate → render pipeline for starmap.
//
// The CLI and the HTTP service both go through a [Runner], so caching,
// logging and observability hooks behave the same for every entry point.
//
// # Stages
//
//  1. Generate: build a galaxy from a config and a seed, serialized as a
//     [graph.Document]
//  2. Render: produce artifacts (JSON, SVG, DOT, PNG, text) from a document
//
// Both stages are cached. A galaxy is a pure function of its config and
// seed, and an artifact a pure function of the document bytes and the
// render options.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Config:  galaxy.DefaultConfig(),
//	    Seed:    42,
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatJSON},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/graph"
	"github.com/matzehuels/starmap/pkg/render/styles"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatPNG  = "png"
	FormatText = "txt"
)

// Defaults for render options.
const (
	DefaultStyle      = "simple"
	DefaultTextWidth  = 100
	DefaultTextHeight = 40
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatPNG:  true,
	FormatText: true,
}

// FormatNames lists the supported formats in display order.
var FormatNames = []string{FormatJSON, FormatSVG, FormatDOT, FormatPNG, FormatText}

// ContentTypes maps formats to MIME types.
var ContentTypes = map[string]string{
	FormatJSON: "application/json",
	FormatSVG:  "image/svg+xml",
	FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	FormatPNG:  "image/png",
	FormatText: "text/plain; charset=utf-8",
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Generate options
	Config  galaxy.Config `json:"config"`
	Seed    int64         `json:"seed"`
	Refresh bool          `json:"refresh,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Disks   bool     `json:"disks,omitempty"`  // Outline constellation disks in SVG
	Width   int      `json:"width,omitempty"`  // Text canvas columns
	Height  int      `json:"height,omitempty"` // Text canvas rows
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Document  graph.Document
	Galaxy    *galaxy.Galaxy
	DocHash   string
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline timings.
type Stats struct {
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	GenerateHit bool // Document came from cache
	RenderHit   bool // Every artifact came from cache
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style exists.
func ValidateStyle(style string) error {
	if _, ok := styles.ByName(style); !ok {
		return errors.New(errors.ErrCodeInvalidInput, "invalid style: %q (must be one of: simple, glow)", style)
	}
	return nil
}

// SetDefaults fills unset fields. A zero Config becomes galaxy.DefaultConfig.
func (o *Options) SetDefaults() {
	if o.Config == (galaxy.Config{}) {
		o.Config = galaxy.DefaultConfig()
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Width <= 0 {
		o.Width = DefaultTextWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultTextHeight
	}
}

// Validate checks the config and render options.
func (o *Options) Validate() error {
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// ValidateAndSetDefaults applies defaults, then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// variant is the cache identity of a format under these options. Options
// that do not affect a format are left out so they do not split the cache.
func (o *Options) variant(format string) string {
	switch format {
	case FormatSVG:
		return fmt.Sprintf("%s:%s:%t", format, o.Style, o.Disks)
	case FormatText:
		return fmt.Sprintf("%s:%dx%d", format, o.Width, o.Height)
	default:
		return format
	}
}

// dedupe drops repeated formats, keeping the first occurrence.
func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
