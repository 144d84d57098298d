package geom

import (
	"math"
	"testing"
)

func TestSegmentBounds(t *testing.T) {
	tests := []struct {
		name     string
		seg      Segment
		min, max Point
	}{
		{"line", LineSegment(Pt(3, -1), Pt(-2, 4)), Pt(-2, -1), Pt(3, 4)},
		{"circle", CircleSegment(Pt(1, 1), 2), Pt(-1, -1), Pt(3, 3)},
		{"upper half", ArcSegment(Pt(0, 0), 1, 0, math.Pi), Pt(-1, 0), Pt(1, 1)},
		{"quarter cw", ArcSegment(Pt(0, 0), 1, 0, -math.Pi/2), Pt(0, -1), Pt(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.seg.Bounds()
			diff(t, tt.min, min, approx)
			diff(t, tt.max, max, approx)
		})
	}
}

func TestSegmentLength(t *testing.T) {
	diff(t, 5.0, LineSegment(Pt(0, 0), Pt(3, 4)).Length(), approx)
	diff(t, 2*math.Pi*3, CircleSegment(Pt(0, 0), 3).Length(), approx)
	diff(t, math.Pi/2, ArcSegment(Pt(0, 0), 1, 1, -math.Pi/2).Length(), approx)
}

func TestSegmentDegenerate(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want bool
	}{
		{"line", LineSegment(Pt(0, 0), Pt(1, 0)), false},
		{"zero length", LineSegment(Pt(1, 1), Pt(1, 1)), true},
		{"infinite", LineSegment(Pt(0, 0), Pt(math.Inf(1), 0)), true},
		{"arc", ArcSegment(Pt(0, 0), 1, 0, 1), false},
		{"zero radius arc", ArcSegment(Pt(0, 0), 0, 0, 1), true},
		{"zero sweep arc", ArcSegment(Pt(0, 0), 1, 0, 0), true},
		{"NaN center", ArcSegment(Pt(math.NaN(), 0), 1, 0, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.Degenerate(); got != tt.want {
				t.Errorf("Degenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}
