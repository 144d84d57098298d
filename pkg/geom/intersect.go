package geom

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// IntersectResult is one intersection point between polyline A and polyline
// B, with the segment index and parametric position on each side.
type IntersectResult struct {
	Point     Point   `json:"point"`
	SegIndexA int     `json:"seg_index_a"`
	ParamA    float64 `json:"param_a"`
	SegIndexB int     `json:"seg_index_b"`
	ParamB    float64 `json:"param_b"`
}

// Intersect tests every segment of a against every segment of b and returns
// all intersection points ordered by SegIndexA, then ParamA. The sort is
// stable: results tied on both keys keep their scan order.
func Intersect(a, b []Segment) []IntersectResult {
	return DefaultTolerance.Intersect(a, b)
}

// Intersect is Intersect under an explicit tolerance.
func (tol Tolerance) Intersect(a, b []Segment) []IntersectResult {
	var results []IntersectResult

	for i, segA := range a {
		if segA.degenerate(tol) {
			continue
		}
		for j, segB := range b {
			if segB.degenerate(tol) {
				continue
			}

			var hits [2]Hit
			var n int
			swapped := false
			switch {
			case !segA.IsArc && !segB.IsArc:
				hits, n = tol.LineLine(segA, segB)
			case !segA.IsArc && segB.IsArc:
				hits, n = tol.LineArc(segA, segB)
			case segA.IsArc && !segB.IsArc:
				hits, n = tol.LineArc(segB, segA)
				swapped = true
			default:
				hits, n = tol.ArcArc(segA, segB)
			}

			for _, h := range hits[:n] {
				tA, tB := h.TA, h.TB
				if swapped {
					tA, tB = tB, tA
				}
				results = append(results, IntersectResult{
					Point:     h.Point,
					SegIndexA: i,
					ParamA:    tA,
					SegIndexB: j,
					ParamB:    tB,
				})
			}
		}
	}

	slices.SortStableFunc(results, func(x, y IntersectResult) int {
		if c := cmp.Compare(x.SegIndexA, y.SegIndexA); c != 0 {
			return c
		}
		return cmp.Compare(x.ParamA, y.ParamA)
	})
	return results
}

// IntersectLines intersects two polylines given as flat x0,y0,x1,y1,...
// coordinate lists with no bulge information. It is Intersect over the
// all-straight segments of both inputs.
func IntersectLines(pointsA []float64, closedA bool, pointsB []float64, closedB bool) ([]IntersectResult, error) {
	return DefaultTolerance.IntersectLines(pointsA, closedA, pointsB, closedB)
}

// IntersectLines is IntersectLines under an explicit tolerance.
func (tol Tolerance) IntersectLines(pointsA []float64, closedA bool, pointsB []float64, closedB bool) ([]IntersectResult, error) {
	segsA, err := tol.flatSegments(pointsA, closedA)
	if err != nil {
		return nil, errors.WithMessage(err, "polyline A")
	}
	segsB, err := tol.flatSegments(pointsB, closedB)
	if err != nil {
		return nil, errors.WithMessage(err, "polyline B")
	}
	return tol.Intersect(segsA, segsB), nil
}

func (tol Tolerance) flatSegments(coords []float64, closed bool) ([]Segment, error) {
	if len(coords)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "odd coordinate count %d", len(coords))
	}
	vertices := make([]Vertex, len(coords)/2)
	for i := range vertices {
		vertices[i] = Vertex{Pos: Pt(coords[2*i], coords[2*i+1])}
	}
	return tol.BuildSegments(vertices, closed)
}
