package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Point is a 2D position.
type Point = v2.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Vertex is a polyline vertex. Bulge describes the edge to the next vertex:
// zero is a straight edge, otherwise bulge = tan(θ/4) where θ is the included
// angle of the arc, positive meaning counter-clockwise.
type Vertex struct {
	Pos   Point   `json:"pos"`
	Bulge float64 `json:"bulge"`
}

// Segment is the straight or circular piece of a polyline between two
// consecutive vertices. Arc fields are only meaningful when IsArc is set;
// EndAngle-StartAngle is the signed sweep.
type Segment struct {
	IsArc      bool    `json:"is_arc"`
	Start      Point   `json:"start"`
	End        Point   `json:"end"`
	Center     Point   `json:"center"`
	Radius     float64 `json:"radius,omitempty"`
	StartAngle float64 `json:"start_angle,omitempty"`
	EndAngle   float64 `json:"end_angle,omitempty"`
}

// LineSegment returns a straight segment from p0 to p1.
func LineSegment(p0, p1 Point) Segment {
	return Segment{Start: p0, End: p1}
}

// ArcSegment returns the arc of the circle (center, radius) that starts at
// startAngle and sweeps by sweep radians (positive is counter-clockwise).
func ArcSegment(center Point, radius, startAngle, sweep float64) Segment {
	endAngle := startAngle + sweep
	return Segment{
		IsArc:      true,
		Start:      polar(center, radius, startAngle),
		End:        polar(center, radius, endAngle),
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

// CircleSegment returns a full counter-clockwise circle starting at angle 0.
func CircleSegment(center Point, radius float64) Segment {
	return ArcSegment(center, radius, 0, 2*math.Pi)
}

// Sweep returns the signed angular span of an arc, or 0 for a line.
func (s Segment) Sweep() float64 {
	if !s.IsArc {
		return 0
	}
	return s.EndAngle - s.StartAngle
}

// Length returns the length of the segment: chord length for lines and arc
// length for arcs.
func (s Segment) Length() float64 {
	if s.IsArc {
		return math.Abs(s.Sweep()) * s.Radius
	}
	return s.End.Sub(s.Start).Length()
}

// PointAt returns the point at parametric position t: a linear fraction for a
// line, an angular fraction of the sweep for an arc.
func (s Segment) PointAt(t float64) Point {
	if s.IsArc {
		return polar(s.Center, s.Radius, s.StartAngle+t*s.Sweep())
	}
	return s.Start.Add(s.End.Sub(s.Start).MulScalar(t))
}

// Degenerate reports whether the segment must be excluded from intersection
// tests: zero length under the default tolerance, or any non-finite field.
func (s Segment) Degenerate() bool {
	return s.degenerate(DefaultTolerance)
}

func (s Segment) degenerate(tol Tolerance) bool {
	if !finite(s.Start) || !finite(s.End) {
		return true
	}
	if s.IsArc {
		if !finite(s.Center) || !isFinite(s.Radius) || !isFinite(s.StartAngle) || !isFinite(s.EndAngle) {
			return true
		}
		return s.Radius <= float64(tol) || tol.IsZero(s.Sweep())
	}
	return tol.IsZero(s.End.Sub(s.Start).Length())
}

// Bounds returns the axis-aligned bounding box of the segment. Arc boxes are
// exact: every axis extreme the sweep passes through is included.
func (s Segment) Bounds() (min, max Point) {
	min = Pt(math.Min(s.Start.X, s.End.X), math.Min(s.Start.Y, s.End.Y))
	max = Pt(math.Max(s.Start.X, s.End.X), math.Max(s.Start.Y, s.End.Y))
	if !s.IsArc {
		return min, max
	}
	for _, angle := range [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if _, ok := DefaultTolerance.ArcParam(angle, s.StartAngle, s.Sweep()); !ok {
			continue
		}
		p := polar(s.Center, s.Radius, angle)
		min = Pt(math.Min(min.X, p.X), math.Min(min.Y, p.Y))
		max = Pt(math.Max(max.X, p.X), math.Max(max.Y, p.Y))
	}
	return min, max
}

func polar(center Point, radius, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Pt(center.X+radius*cos, center.Y+radius*sin)
}

// cross is the 2D cross product (determinant) of a and b.
func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finite(p Point) bool {
	return isFinite(p.X) && isFinite(p.Y)
}
