// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/arcsect/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// sdfxRegion wraps an sdf.SDF2 to implement kernel.Region.
type sdfxRegion struct {
	s sdf.SDF2
}

// BoundingBox returns the axis-aligned bounding box.
func (r *sdfxRegion) BoundingBox() (min, max [2]float64) {
	bb := r.s.BoundingBox()
	return [2]float64{bb.Min.X, bb.Min.Y}, [2]float64{bb.Max.X, bb.Max.Y}
}

// Distance evaluates the signed distance field at (x, y).
func (r *sdfxRegion) Distance(x, y float64) float64 {
	return r.s.Evaluate(v2.Vec{X: x, Y: y})
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct{}

// New returns a new SdfxKernel.
func New() *SdfxKernel {
	return &SdfxKernel{}
}

func unwrap(r kernel.Region) sdf.SDF2 {
	return r.(*sdfxRegion).s
}

func wrap(s sdf.SDF2) kernel.Region {
	return &sdfxRegion{s: s}
}

// Polygon builds the region enclosed by a closed outline. Winding order
// does not matter.
func (k *SdfxKernel) Polygon(o *kernel.Outline) (kernel.Region, error) {
	if !o.Closed {
		return nil, fmt.Errorf("sdfx: outline %q is open", o.Name)
	}
	if o.VertexCount() < 3 {
		return nil, fmt.Errorf("sdfx: outline %q has %d vertices, need at least 3", o.Name, o.VertexCount())
	}
	s, err := sdf.Polygon2D(o.Points())
	if err != nil {
		return nil, fmt.Errorf("sdfx.Polygon2D: %w", err)
	}
	return wrap(s), nil
}

// Circle builds a disc of the given radius centered at the origin.
func (k *SdfxKernel) Circle(radius float64) (kernel.Region, error) {
	s, err := sdf.Circle2D(radius)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Circle2D: %w", err)
	}
	return wrap(s), nil
}

// Union returns the union of two regions.
func (k *SdfxKernel) Union(a, b kernel.Region) kernel.Region {
	return wrap(sdf.Union2D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *SdfxKernel) Difference(a, b kernel.Region) kernel.Region {
	return wrap(sdf.Difference2D(unwrap(a), unwrap(b)))
}

// Translate moves a region by (dx, dy).
func (k *SdfxKernel) Translate(r kernel.Region, dx, dy float64) kernel.Region {
	m := sdf.Translate2d(v2.Vec{X: dx, Y: dy})
	return wrap(sdf.Transform2D(unwrap(r), m))
}
