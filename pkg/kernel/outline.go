package kernel

import "github.com/chazu/arcsect/pkg/geom"

// Outline is a sampled entity boundary suitable for drawing.
// Vertices is flat with 2 floats per vertex (x,y). A closed outline does not
// repeat its first vertex.
type Outline struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Vertices []float32 `json:"vertices"` // [x0,y0, x1,y1, ...]
	Closed   bool      `json:"closed"`
}

// VertexCount returns the number of vertices.
func (o *Outline) VertexCount() int {
	return len(o.Vertices) / 2
}

// IsEmpty returns true if the outline has no geometry.
func (o *Outline) IsEmpty() bool {
	return len(o.Vertices) == 0
}

// Points returns the vertices as kernel points.
func (o *Outline) Points() []geom.Point {
	pts := make([]geom.Point, o.VertexCount())
	for i := range pts {
		pts[i] = geom.Pt(float64(o.Vertices[2*i]), float64(o.Vertices[2*i+1]))
	}
	return pts
}
