package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/graph"
	"github.com/matzehuels/starmap/pkg/render/nodelink"
	"github.com/matzehuels/starmap/pkg/render/sink"
	"github.com/matzehuels/starmap/pkg/render/styles"
	"github.com/matzehuels/starmap/pkg/render/term"
)

// Render produces every requested format concurrently. The first failure
// cancels the remaining renders.
func Render(ctx context.Context, doc graph.Document, g *galaxy.Galaxy, formats []string, opts Options) (map[string][]byte, error) {
	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(formats))
	)

	eg, ctx := errgroup.WithContext(ctx)
	for _, format := range formats {
		eg.Go(func() error {
			data, err := RenderFormat(ctx, doc, g, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// RenderFormat produces a single format.
func RenderFormat(ctx context.Context, doc graph.Document, g *galaxy.Galaxy, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return graph.Marshal(doc)
	case FormatSVG:
		style, _ := styles.ByName(opts.Style)
		svgOpts := []sink.SVGOption{sink.WithStyle(style)}
		if opts.Disks {
			svgOpts = append(svgOpts, sink.WithDisks())
		}
		return sink.RenderSVG(g, svgOpts...), nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(g, nodelink.Options{})), nil
	case FormatPNG:
		return nodelink.RenderPNG(ctx, nodelink.ToDOT(g, nodelink.Options{}))
	default:
		c := term.NewCanvas(opts.Width, opts.Height)
		c.Draw(g)
		return []byte(c.String() + "\n"), nil
	}
}
