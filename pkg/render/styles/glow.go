package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/starmap/pkg/galaxy"
)

// Glow is Simple with a blur halo around stars and softer edges.
type Glow struct{}

func (Glow) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="glow" x="-200%" y="-200%" width="500%" height="500%">
      <feGaussianBlur stdDeviation="2.5" result="blur"/>
      <feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>
    </filter>
  </defs>
`)
}

func (Glow) RenderSegment(buf *bytes.Buffer, s Segment) {
	fmt.Fprintf(buf, `  <line class="edge %s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1.5" stroke-linecap="round" stroke-opacity="%s"/>`+"\n",
		s.Kind, s.X1, s.Y1, s.X2, s.Y2, SegmentColor(s.Kind), glowOpacity(s))
}

func (Glow) RenderStar(buf *bytes.Buffer, s Star) {
	fmt.Fprintf(buf, `  <circle class="star" id="star-%d-%d" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" filter="url(#glow)"/>`+"\n",
		s.Constellation, s.Index, s.X, s.Y, s.R*1.2, ColorStar)
}

func glowOpacity(s Segment) string {
	if s.Kind == galaxy.SegmentLink {
		return "0.4"
	}
	return "0.8"
}
