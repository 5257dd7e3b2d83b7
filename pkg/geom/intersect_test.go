package geom

import (
	"math"
	"testing"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		p1, q1, p2, q2 Point
		want           bool
	}{
		{"Crossing", Pt(0, 0), Pt(2, 2), Pt(0, 2), Pt(2, 0), true},
		{"ParallelApart", Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1), false},
		{"ColinearOverlap", Pt(0, 0), Pt(2, 0), Pt(1, 0), Pt(3, 0), true},
		{"SharedEndpoint", Pt(0, 0), Pt(1, 1), Pt(1, 1), Pt(2, 0), true},
		{"Disjoint", Pt(0, 0), Pt(1, 0), Pt(5, 5), Pt(6, 6), false},
		{"ColinearApart", Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), false},
		{"TEndpointOnSegment", Pt(0, 0), Pt(4, 0), Pt(2, 0), Pt(2, 3), true},
		{"NearMissLong", Pt(0, 0), Pt(100, 0), Pt(50, 10), Pt(50, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.p1, tt.q1, tt.p2, tt.q2); got != tt.want {
				t.Errorf("SegmentsIntersect() = %v, want %v", got, tt.want)
			}
			// The predicate is symmetric in the two segments.
			if got := SegmentsIntersect(tt.p2, tt.q2, tt.p1, tt.q1); got != tt.want {
				t.Errorf("SegmentsIntersect(swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		name    string
		p, q, r Point
		want    Turn
	}{
		{"Colinear", Pt(0, 0), Pt(1, 1), Pt(2, 2), Colinear},
		{"Clockwise", Pt(0, 0), Pt(0, 1), Pt(1, 1), Clockwise},
		{"CounterClockwise", Pt(0, 0), Pt(1, 0), Pt(1, 1), CounterClockwise},
		// Cross product of 0.4 rounds to zero.
		{"NearColinearRounds", Pt(0, 0), Pt(1, 0), Pt(2, 0.4), Colinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orientation(tt.p, tt.q, tt.r); got != tt.want {
				t.Errorf("Orientation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistAndPolar(t *testing.T) {
	if d := Dist(Pt(0, 0), Pt(3, 4)); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}

	center := Pt(10, -5)
	p := Polar(center, 7, math.Pi/3)
	if d := Dist(center, p); math.Abs(d-7) > 1e-9 {
		t.Errorf("Polar distance = %v, want 7", d)
	}
}

func TestRect(t *testing.T) {
	r := EmptyRect()
	if !r.IsEmpty() {
		t.Fatal("EmptyRect should be empty")
	}
	r = r.Extend(Pt(1, 2)).Extend(Pt(-3, 5))
	if r.IsEmpty() {
		t.Fatal("rect should not be empty after Extend")
	}
	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("size = %vx%v, want 4x3", r.Width(), r.Height())
	}
	in := r.Inset(1)
	if in.Min != Pt(-4, 1) || in.Max != Pt(2, 6) {
		t.Errorf("Inset = %+v", in)
	}
}
