package geom

import "math"

// Hit is a single intersection candidate between two primitives: the point
// and the parametric position on the first (TA) and second (TB) primitive.
type Hit struct {
	Point Point
	TA    float64
	TB    float64
}

// LineLine intersects two straight segments. Parallel and collinear segments
// produce no hits.
func LineLine(a, b Segment) ([2]Hit, int) {
	return DefaultTolerance.LineLine(a, b)
}

// LineLine is LineLine under an explicit tolerance.
func (tol Tolerance) LineLine(a, b Segment) ([2]Hit, int) {
	var hits [2]Hit

	dA := a.End.Sub(a.Start)
	dB := b.End.Sub(b.Start)
	det := cross(dA, dB)
	if tol.IsZero(det) {
		return hits, 0
	}

	// a.Start + tA·dA = b.Start + tB·dB
	diff := b.Start.Sub(a.Start)
	tA := cross(diff, dB) / det
	tB := cross(diff, dA) / det
	if !tol.InUnit(tA) || !tol.InUnit(tB) {
		return hits, 0
	}
	tA = clamp01(tA)
	tB = clamp01(tB)

	hits[0] = Hit{Point: a.Start.Add(dA.MulScalar(tA)), TA: tA, TB: tB}
	return hits, 1
}

// LineArc intersects a straight segment with an arc. TA is the position on
// the line, TB the position on the arc.
func LineArc(line, arc Segment) ([2]Hit, int) {
	return DefaultTolerance.LineArc(line, arc)
}

// LineArc is LineArc under an explicit tolerance.
func (tol Tolerance) LineArc(line, arc Segment) ([2]Hit, int) {
	var hits [2]Hit
	n := 0

	// |start + t·dir - center|² = radius²
	dir := line.End.Sub(line.Start)
	e := line.Start.Sub(arc.Center)
	a := dir.Dot(dir)
	if tol.IsZero(a) {
		return hits, 0
	}
	b := 2 * e.Dot(dir)
	c := e.Dot(e) - arc.Radius*arc.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return hits, 0
	}
	sq := math.Sqrt(disc)
	roots := [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
	nroots := 2
	if tol.IsZero(roots[1] - roots[0]) {
		nroots = 1
	}

	sweep := arc.Sweep()
	for _, t := range roots[:nroots] {
		if !tol.InUnit(t) {
			continue
		}
		t = clamp01(t)
		p := line.Start.Add(dir.MulScalar(t))
		angle := math.Atan2(p.Y-arc.Center.Y, p.X-arc.Center.X)
		s, ok := tol.ArcParam(angle, arc.StartAngle, sweep)
		if !ok {
			continue
		}
		hits[n] = Hit{Point: p, TA: t, TB: s}
		n++
	}
	return hits, n
}

// ArcArc intersects two arcs. Concentric circles, circles too far apart and
// circles nested inside one another produce no hits; tangent circles produce
// at most one.
func ArcArc(a, b Segment) ([2]Hit, int) {
	return DefaultTolerance.ArcArc(a, b)
}

// ArcArc is ArcArc under an explicit tolerance.
func (tol Tolerance) ArcArc(a, b Segment) ([2]Hit, int) {
	var hits [2]Hit
	eps := float64(tol)

	between := b.Center.Sub(a.Center)
	d := between.Length()
	rA, rB := a.Radius, b.Radius
	if d < eps || d > rA+rB+eps || d < math.Abs(rA-rB)-eps {
		return hits, 0
	}

	// radical line construction
	dist := (rA*rA - rB*rB + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, rA*rA-dist*dist))
	mid := a.Center.Add(between.MulScalar(dist / d))
	perp := Pt(-between.Y/d, between.X/d)

	candidates := [2]Point{mid.Add(perp.MulScalar(h)), mid.Sub(perp.MulScalar(h))}
	ncand := 2
	if h < eps {
		ncand = 1
	}

	n := 0
	sweepA, sweepB := a.Sweep(), b.Sweep()
	for _, p := range candidates[:ncand] {
		tA, ok := tol.ArcParam(math.Atan2(p.Y-a.Center.Y, p.X-a.Center.X), a.StartAngle, sweepA)
		if !ok {
			continue
		}
		tB, ok := tol.ArcParam(math.Atan2(p.Y-b.Center.Y, p.X-b.Center.X), b.StartAngle, sweepB)
		if !ok {
			continue
		}
		hits[n] = Hit{Point: p, TA: tA, TB: tB}
		n++
	}
	return hits, n
}
