// Package tessellate samples drawing entities into polyline outlines for
// display. Sampling only reads arc parameters from kernel segments; nothing
// here feeds back into intersection math.
package tessellate

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/chazu/arcsect/pkg/drawing"
	"github.com/chazu/arcsect/pkg/geom"
	"github.com/chazu/arcsect/pkg/kernel"
)

// Options controls sampling density.
type Options struct {
	BulgeArcSegments int            // per bulge edge of a polyline
	ArcSegments      int            // per ARC entity
	CircleSegments   int            // per CIRCLE entity
	Tolerance        geom.Tolerance // for building polyline segments
}

// DefaultOptions returns the sampling densities used by the viewer.
func DefaultOptions() Options {
	return Options{
		BulgeArcSegments: 16,
		ArcSegments:      64,
		CircleSegments:   64,
		Tolerance:        geom.DefaultTolerance,
	}
}

// Tessellate samples every entity in insertion order and returns one outline
// per entity. The tessellator is read-only and never mutates the drawing.
func Tessellate(d *drawing.Drawing, opts Options) ([]*kernel.Outline, error) {
	if d == nil {
		return nil, nil
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = geom.DefaultTolerance
	}

	outlines := make([]*kernel.Outline, 0, d.Count())
	for _, e := range d.All() {
		o, err := Entity(e, opts)
		if err != nil {
			return nil, fmt.Errorf("tessellate: entity %s: %w", e.ID.Short(), err)
		}
		outlines = append(outlines, o)
	}
	return outlines, nil
}

// Entity samples a single entity.
func Entity(e *drawing.Entity, opts Options) (*kernel.Outline, error) {
	segs, err := e.SegmentsTol(opts.Tolerance)
	if err != nil {
		return nil, err
	}

	var pts []geom.Point
	switch e.Kind {
	case drawing.KindArc:
		pts = sample(segs[0], opts.ArcSegments, true)
	case drawing.KindCircle:
		pts = sample(segs[0], opts.CircleSegments, false)
	default:
		pts = lo.FlatMap(segs, func(s geom.Segment, _ int) []geom.Point {
			return sample(s, opts.BulgeArcSegments, false)
		})
		if !e.Closed() && len(segs) > 0 {
			pts = append(pts, segs[len(segs)-1].End)
		}
	}

	name := e.Name
	if name == "" {
		name = e.ID.Short()
	}
	return &kernel.Outline{
		Name:     name,
		Kind:     e.Kind.String(),
		Vertices: flatten(pts),
		Closed:   e.Closed(),
	}, nil
}

// sample returns points along s starting at its start point. Arcs are cut
// into n equal-angle pieces; lines contribute only their start. The end point
// is included only when withEnd is set.
func sample(s geom.Segment, n int, withEnd bool) []geom.Point {
	if !s.IsArc {
		if withEnd {
			return []geom.Point{s.Start, s.End}
		}
		return []geom.Point{s.Start}
	}
	n = max(n, 2)
	count := n
	if withEnd {
		count = n + 1
	}
	return lo.Times(count, func(i int) geom.Point {
		return s.PointAt(float64(i) / float64(n))
	})
}

func flatten(pts []geom.Point) []float32 {
	return lo.FlatMap(pts, func(p geom.Point, _ int) []float32 {
		return []float32{float32(p.X), float32(p.Y)}
	})
}
