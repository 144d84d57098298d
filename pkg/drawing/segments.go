package drawing

import (
	"github.com/pkg/errors"

	"github.com/chazu/arcsect/pkg/geom"
)

// Closed reports whether the entity bounds a region.
func (e *Entity) Closed() bool {
	switch data := e.Data.(type) {
	case CircleData:
		return true
	case PolylineData:
		return data.Closed
	}
	return false
}

// Segments converts the entity to kernel segments.
func (e *Entity) Segments() ([]geom.Segment, error) {
	return e.SegmentsTol(geom.DefaultTolerance)
}

// SegmentsTol is Segments with an explicit tolerance.
func (e *Entity) SegmentsTol(tol geom.Tolerance) ([]geom.Segment, error) {
	switch data := e.Data.(type) {
	case LineData:
		return []geom.Segment{geom.LineSegment(data.Start, data.End)}, nil
	case ArcData:
		return []geom.Segment{geom.ArcSegment(data.Center, data.Radius, data.StartAngle, data.Sweep())}, nil
	case CircleData:
		return []geom.Segment{geom.CircleSegment(data.Center, data.Radius)}, nil
	case PolylineData:
		segs, err := tol.BuildSegments(data.Vertices, data.Closed)
		if err != nil {
			return nil, errors.WithMessagef(err, "polyline %q", e.Name)
		}
		return segs, nil
	}
	return nil, errors.Errorf("drawing: entity %s has no geometry", e.ID.Short())
}
