package geom

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func mustSegments(t *testing.T, vertices []Vertex, closed bool) []Segment {
	t.Helper()
	segs, err := BuildSegments(vertices, closed)
	if err != nil {
		t.Fatalf("BuildSegments: %v", err)
	}
	return segs
}

func TestIntersectSingleCross(t *testing.T) {
	got := Intersect(
		[]Segment{LineSegment(Pt(0, 0), Pt(10, 0))},
		[]Segment{LineSegment(Pt(5, -5), Pt(5, 5))},
	)
	want := []IntersectResult{{Point: Pt(5, 0), SegIndexA: 0, ParamA: 0.5, SegIndexB: 0, ParamB: 0.5}}
	diff(t, want, got, approx)
}

func TestIntersectParallel(t *testing.T) {
	got := Intersect(
		[]Segment{LineSegment(Pt(0, 0), Pt(10, 0))},
		[]Segment{LineSegment(Pt(0, 1), Pt(10, 1))},
	)
	if len(got) != 0 {
		t.Errorf("expected no intersections, got %v", got)
	}
}

func TestIntersectSquareWithLine(t *testing.T) {
	square := mustSegments(t, []Vertex{
		{Pos: Pt(0, 0)},
		{Pos: Pt(10, 0)},
		{Pos: Pt(10, 10)},
		{Pos: Pt(0, 10)},
	}, true)
	line := mustSegments(t, []Vertex{{Pos: Pt(-5, 5)}, {Pos: Pt(15, 5)}}, false)

	got := Intersect(square, line)
	want := []IntersectResult{
		{Point: Pt(10, 5), SegIndexA: 1, ParamA: 0.5, SegIndexB: 0, ParamB: 0.75},
		{Point: Pt(0, 5), SegIndexA: 3, ParamA: 0.5, SegIndexB: 0, ParamB: 0.25},
	}
	diff(t, want, got, approx)
}

func TestIntersectFullCircleWithDiameter(t *testing.T) {
	circle := []Segment{CircleSegment(Pt(0, 0), 5)}
	line := []Segment{LineSegment(Pt(-10, 0), Pt(10, 0))}

	got := Intersect(circle, line)
	want := []IntersectResult{
		{Point: Pt(5, 0), SegIndexA: 0, ParamA: 0, SegIndexB: 0, ParamB: 0.75},
		{Point: Pt(-5, 0), SegIndexA: 0, ParamA: 0.5, SegIndexB: 0, ParamB: 0.25},
	}
	diff(t, want, got, approx)
}

func TestIntersectRemapsLineArcRoles(t *testing.T) {
	line := []Segment{LineSegment(Pt(-10, 0), Pt(10, 0))}
	circle := []Segment{CircleSegment(Pt(0, 0), 5)}

	got := Intersect(line, circle)
	want := []IntersectResult{
		{Point: Pt(-5, 0), SegIndexA: 0, ParamA: 0.25, SegIndexB: 0, ParamB: 0.5},
		{Point: Pt(5, 0), SegIndexA: 0, ParamA: 0.75, SegIndexB: 0, ParamB: 0},
	}
	diff(t, want, got, approx)
}

func TestIntersectBulgeCircleWithLine(t *testing.T) {
	// two semicircles with bulge 1 make a circle of radius 5 at the origin
	circle := mustSegments(t, []Vertex{
		{Pos: Pt(0, -5), Bulge: 1},
		{Pos: Pt(0, 5), Bulge: 1},
	}, true)
	line := []Segment{LineSegment(Pt(-10, 1), Pt(10, 1))}

	got := Intersect(circle, line)
	x := math.Sqrt(24)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %v", len(got), got)
	}
	diff(t, Pt(x, 1), got[0].Point, approx)
	diff(t, Pt(-x, 1), got[1].Point, approx)
	if got[0].SegIndexA != 0 || got[1].SegIndexA != 1 {
		t.Errorf("unexpected segment indices: %v", got)
	}
}

func TestIntersectTwoCircles(t *testing.T) {
	a := []Segment{CircleSegment(Pt(0, 0), 1)}
	tests := []struct {
		name string
		b    Segment
		want int
	}{
		{"overlapping", CircleSegment(Pt(1, 0), 1), 2},
		{"coincident centers", CircleSegment(Pt(0, 0), 1), 0},
		{"too far", CircleSegment(Pt(2.5, 0), 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(a, []Segment{tt.b})
			if len(got) != tt.want {
				t.Fatalf("got %d results, want %d: %v", len(got), tt.want, got)
			}
			for _, r := range got {
				if math.Abs(r.Point.X-0.5) > 1e-9 {
					t.Errorf("point %v not on x=0.5", r.Point)
				}
			}
		})
	}
}

func TestIntersectStableTies(t *testing.T) {
	a := []Segment{LineSegment(Pt(0, 0), Pt(10, 0))}
	// both segments of b touch a at (5,0)
	b := mustSegments(t, []Vertex{{Pos: Pt(5, -5)}, {Pos: Pt(5, 0)}, {Pos: Pt(5, 5)}}, false)

	got := Intersect(a, b)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %v", len(got), got)
	}
	if got[0].SegIndexB != 0 || got[1].SegIndexB != 1 {
		t.Errorf("tied results reordered: %v", got)
	}
}

func TestIntersectOrdering(t *testing.T) {
	// zig-zag crossing the x axis several times, scanned against the axis in reverse
	zigzag := mustSegments(t, []Vertex{
		{Pos: Pt(0, -1)}, {Pos: Pt(2, 1)}, {Pos: Pt(4, -1)}, {Pos: Pt(6, 1)},
	}, false)
	axis := []Segment{LineSegment(Pt(10, 0), Pt(-10, 0))}

	got := Intersect(axis, zigzag)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3: %v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].ParamA < got[i-1].ParamA {
			t.Errorf("results not ordered by ParamA: %v", got)
		}
	}
	diff(t, Pt(5, 0), got[0].Point, approx)
	diff(t, Pt(1, 0), got[2].Point, approx)
}

func TestIntersectSkipsDegenerate(t *testing.T) {
	a := []Segment{
		LineSegment(Pt(5, 0), Pt(5, 0)),
		LineSegment(Pt(0, 0), Pt(10, 0)),
		LineSegment(Pt(math.NaN(), 0), Pt(10, 0)),
	}
	b := []Segment{LineSegment(Pt(5, -5), Pt(5, 5))}

	got := Intersect(a, b)
	if len(got) != 1 || got[0].SegIndexA != 1 {
		t.Errorf("expected one result on segment 1, got %v", got)
	}
}

func TestIntersectParamsInUnitRange(t *testing.T) {
	a := mustSegments(t, []Vertex{
		{Pos: Pt(0, 0), Bulge: 0.4},
		{Pos: Pt(10, 0), Bulge: -0.7},
		{Pos: Pt(10, 10), Bulge: 1.5},
		{Pos: Pt(0, 10)},
	}, true)
	b := mustSegments(t, []Vertex{
		{Pos: Pt(-3, 5), Bulge: 0.2},
		{Pos: Pt(5, -4), Bulge: -2},
		{Pos: Pt(13, 6)},
		{Pos: Pt(4, 14), Bulge: 0.9},
	}, true)

	got := Intersect(a, b)
	if len(got) == 0 {
		t.Fatal("expected intersections")
	}
	for _, r := range got {
		if r.ParamA < 0 || r.ParamA > 1 || r.ParamB < 0 || r.ParamB > 1 {
			t.Errorf("parameter out of range: %+v", r)
		}
		// the reported point lies on both segments
		diff(t, r.Point, a[r.SegIndexA].PointAt(r.ParamA), approxLoose)
		diff(t, r.Point, b[r.SegIndexB].PointAt(r.ParamB), approxLoose)
	}
}

func TestIntersectLines(t *testing.T) {
	got, err := IntersectLines([]float64{0, 0, 10, 0}, false, []float64{5, -5, 5, 5}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []IntersectResult{{Point: Pt(5, 0), ParamA: 0.5, ParamB: 0.5}}
	diff(t, want, got, approx)
}

func TestIntersectLinesMatchesIntersect(t *testing.T) {
	flatA := []float64{0, 0, 10, 0, 10, 10, 0, 10}
	flatB := []float64{-5, 5, 15, 5, 5, -5}

	got, err := IntersectLines(flatA, true, flatB, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Intersect(
		mustSegments(t, []Vertex{{Pos: Pt(0, 0)}, {Pos: Pt(10, 0)}, {Pos: Pt(10, 10)}, {Pos: Pt(0, 10)}}, true),
		mustSegments(t, []Vertex{{Pos: Pt(-5, 5)}, {Pos: Pt(15, 5)}, {Pos: Pt(5, -5)}}, false),
	)
	diff(t, want, got)
}

func TestIntersectLinesInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
	}{
		{"odd coordinates", []float64{0, 0, 1}, []float64{0, 0, 1, 1}},
		{"single point", []float64{0, 0, 1, 1}, []float64{3, 4}},
		{"empty", nil, []float64{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IntersectLines(tt.a, false, tt.b, false)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
