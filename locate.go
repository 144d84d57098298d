package main

import (
	"fmt"

	"github.com/chazu/arcsect/pkg/drawing"
	"github.com/chazu/arcsect/pkg/geom"
	"github.com/chazu/arcsect/pkg/kernel"
	"github.com/chazu/arcsect/pkg/spatial"
	"github.com/chazu/arcsect/pkg/tessellate"
)

// Locate evaluates source and returns, in drawing order, the names of the
// closed entities whose material contains (x, y). The material of an
// entity is its region minus every closed entity nested inside it, so a
// point in a bolt hole reports the hole and not the plate around it.
// Points within tolerance of a boundary count as inside.
func (a *App) Locate(source string, x, y float64) ([]string, error) {
	d, err := a.mustLoad(source)
	if err != nil {
		return nil, err
	}
	l, err := a.newLocator(d)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, i := range l.ix.QueryPoint(geom.Pt(x, y)) {
		r, err := l.material(i)
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", l.closed[i].Name, err)
		}
		if kernel.Contains(r, x, y, float64(a.cfg.Tol())) {
			names = append(names, l.closed[i].Name)
		}
	}
	return names, nil
}

type box struct {
	min, max geom.Point
}

func (b box) within(o box) bool {
	return b.min.X >= o.min.X && b.min.Y >= o.min.Y && b.max.X <= o.max.X && b.max.Y <= o.max.Y
}

func (b box) area() float64 {
	return (b.max.X - b.min.X) * (b.max.Y - b.min.Y)
}

// locator holds the closed entities of one drawing with their boxes and
// lazily built regions.
type locator struct {
	app     *App
	closed  []*drawing.Entity
	boxes   []box
	ix      *spatial.Index
	regions map[int]kernel.Region
}

func (a *App) newLocator(d *drawing.Drawing) (*locator, error) {
	tol := a.cfg.Tol()
	l := &locator{
		app:     a,
		closed:  d.Closed(),
		ix:      spatial.New(float64(tol)),
		regions: make(map[int]kernel.Region),
	}
	l.boxes = make([]box, len(l.closed))
	for i, e := range l.closed {
		segs, err := e.SegmentsTol(tol)
		if err != nil {
			return nil, err
		}
		l.boxes[i].min, l.boxes[i].max, _ = spatial.Bounds(segs)
		l.ix.Insert(i, segs)
	}
	return l, nil
}

// region returns the region bounded by closed entity i. Circles are exact
// discs placed at their center; polylines use their sampled outline.
func (l *locator) region(i int) (kernel.Region, error) {
	if r, ok := l.regions[i]; ok {
		return r, nil
	}
	k := l.app.kernel
	var r kernel.Region
	switch data := l.closed[i].Data.(type) {
	case drawing.CircleData:
		disc, err := k.Circle(data.Radius)
		if err != nil {
			return nil, err
		}
		r = k.Translate(disc, data.Center.X, data.Center.Y)
	default:
		o, err := tessellate.Entity(l.closed[i], l.app.cfg.TessellateOptions())
		if err != nil {
			return nil, err
		}
		if r, err = k.Polygon(o); err != nil {
			return nil, err
		}
	}
	l.regions[i] = r
	return r, nil
}

// nested reports whether closed entity j lies inside closed entity i:
// its box is strictly smaller and every sampled boundary point of j is
// inside i. Identical entities are never nested in each other.
func (l *locator) nested(i, j int) (bool, error) {
	if i == j || !l.boxes[j].within(l.boxes[i]) || l.boxes[j].area() >= l.boxes[i].area() {
		return false, nil
	}
	outer, err := l.region(i)
	if err != nil {
		return false, err
	}
	o, err := tessellate.Entity(l.closed[j], l.app.cfg.TessellateOptions())
	if err != nil {
		return false, err
	}
	tol := float64(l.app.cfg.Tol())
	for _, p := range o.Points() {
		if !kernel.Contains(outer, p.X, p.Y, tol) {
			return false, nil
		}
	}
	return true, nil
}

// material returns the region of closed entity i with the union of its
// nested entities removed.
func (l *locator) material(i int) (kernel.Region, error) {
	r, err := l.region(i)
	if err != nil {
		return nil, err
	}
	var holes kernel.Region
	for _, j := range l.ix.Query(l.boxes[i].min, l.boxes[i].max) {
		ok, err := l.nested(i, j)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		h, err := l.region(j)
		if err != nil {
			return nil, err
		}
		if holes == nil {
			holes = h
		} else {
			holes = l.app.kernel.Union(holes, h)
		}
	}
	if holes == nil {
		return r, nil
	}
	return l.app.kernel.Difference(r, holes), nil
}
