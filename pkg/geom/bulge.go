package geom

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidInput is returned when a vertex sequence is too short to form a
// segment, or a flat coordinate list is malformed.
var ErrInvalidInput = errors.New("geom: invalid input")

// ArcFromBulge converts the edge p1→p2 with the given bulge into an arc
// segment. It returns false when the edge is straight (|bulge| below the
// tolerance) or the chord has zero length.
func ArcFromBulge(p1, p2 Point, bulge float64) (Segment, bool) {
	return DefaultTolerance.ArcFromBulge(p1, p2, bulge)
}

// ArcFromBulge is ArcFromBulge under an explicit tolerance.
func (tol Tolerance) ArcFromBulge(p1, p2 Point, bulge float64) (Segment, bool) {
	if tol.IsZero(bulge) || !isFinite(bulge) {
		return Segment{}, false
	}
	chord := p2.Sub(p1)
	chordLen := chord.Length()
	if tol.IsZero(chordLen) || !isFinite(chordLen) {
		return Segment{}, false
	}

	// Signed distance from the chord midpoint to the center along the left
	// normal: L/(2·tan(θ/2)) with tan(θ/2) = 2b/(1-b²).
	h := chordLen * (1 - bulge*bulge) / (4 * bulge)
	mid := p1.Add(p2).MulScalar(0.5)
	perp := Pt(-chord.Y/chordLen, chord.X/chordLen)
	center := mid.Add(perp.MulScalar(h))

	startAngle := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	endAngle := math.Atan2(p2.Y-center.Y, p2.X-center.X)
	if bulge > 0 && endAngle < startAngle {
		endAngle += 2 * math.Pi
	} else if bulge < 0 && endAngle > startAngle {
		endAngle -= 2 * math.Pi
	}

	return Segment{
		IsArc:      true,
		Start:      p1,
		End:        p2,
		Center:     center,
		Radius:     p1.Sub(center).Length(),
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}, true
}

// BuildSegments turns a vertex sequence into its segments. A closed sequence
// of n vertices yields n segments, an open one n-1; segment i joins vertex i
// to vertex (i+1) mod n and is classified by the bulge on vertex i.
//
// Zero-length and non-finite edges are kept so that segment indices always
// match vertex indices; they report Degenerate and never intersect anything.
func BuildSegments(vertices []Vertex, closed bool) ([]Segment, error) {
	return DefaultTolerance.BuildSegments(vertices, closed)
}

// BuildSegments is BuildSegments under an explicit tolerance.
func (tol Tolerance) BuildSegments(vertices []Vertex, closed bool) ([]Segment, error) {
	n := len(vertices)
	if n < 2 {
		return nil, errors.Wrapf(ErrInvalidInput, "need at least 2 vertices, got %d", n)
	}

	count := n - 1
	if closed {
		count = n
	}

	segs := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		v1 := vertices[i]
		v2 := vertices[(i+1)%n]
		if arc, ok := tol.ArcFromBulge(v1.Pos, v2.Pos, v1.Bulge); ok {
			segs = append(segs, arc)
			continue
		}
		segs = append(segs, LineSegment(v1.Pos, v2.Pos))
	}
	return segs, nil
}
