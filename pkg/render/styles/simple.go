package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/starmap/pkg/galaxy"
)

// Simple draws flat white stars, white and cyan constellation edges and
// translucent red links.
type Simple struct{}

func (Simple) RenderDefs(*bytes.Buffer) {}

func (Simple) RenderSegment(buf *bytes.Buffer, s Segment) {
	fmt.Fprintf(buf, `  <line class="edge %s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"%s/>`+"\n",
		s.Kind, s.X1, s.Y1, s.X2, s.Y2, SegmentColor(s.Kind), linkOpacity(s))
}

func (Simple) RenderStar(buf *bytes.Buffer, s Star) {
	fmt.Fprintf(buf, `  <circle class="star" id="star-%d-%d" cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
		s.Constellation, s.Index, s.X, s.Y, s.R, ColorStar)
}

func linkOpacity(s Segment) string {
	if s.Kind == galaxy.SegmentLink {
		return ` stroke-opacity="0.5"`
	}
	return ""
}
