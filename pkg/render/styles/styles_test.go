package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/starmap/pkg/galaxy"
)

func TestSegmentColor(t *testing.T) {
	tests := map[galaxy.SegmentKind]string{
		galaxy.SegmentNearest:    ColorNearest,
		galaxy.SegmentGroupMerge: ColorGroupMerge,
		galaxy.SegmentLink:       ColorLink,
	}
	for kind, want := range tests {
		if got := SegmentColor(kind); got != want {
			t.Errorf("SegmentColor(%v) = %s, want %s", kind, got, want)
		}
	}
}

func TestSimpleLinkOpacity(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderSegment(&buf, Segment{Kind: galaxy.SegmentLink, X2: 1})
	if !strings.Contains(buf.String(), `stroke-opacity="0.5"`) {
		t.Errorf("link should be half transparent: %s", buf.String())
	}

	buf.Reset()
	Simple{}.RenderSegment(&buf, Segment{Kind: galaxy.SegmentNearest, X2: 1})
	if strings.Contains(buf.String(), "stroke-opacity") {
		t.Errorf("nearest edge should be opaque: %s", buf.String())
	}
}

func TestGlowDefs(t *testing.T) {
	var buf bytes.Buffer
	g := Glow{}
	g.RenderDefs(&buf)
	g.RenderStar(&buf, Star{X: 1, Y: 2, R: 3})
	out := buf.String()
	if !strings.Contains(out, `<filter id="glow"`) || !strings.Contains(out, `filter="url(#glow)"`) {
		t.Errorf("glow output missing filter:\n%s", out)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "simple", "glow"} {
		if _, ok := ByName(name); !ok {
			t.Errorf("ByName(%q) not found", name)
		}
	}
	if _, ok := ByName("handdrawn"); ok {
		t.Error("ByName(handdrawn) should fail")
	}
}
