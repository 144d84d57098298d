package drawing

import (
	"math"

	"github.com/chazu/arcsect/pkg/geom"
)

// Kind enumerates the entity types a drawing can hold.
type Kind int

const (
	KindLine     Kind = iota // straight segment between two points
	KindArc                  // counter-clockwise circular arc
	KindCircle               // full circle
	KindPolyline             // bulge-encoded polyline
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	case KindCircle:
		return "circle"
	case KindPolyline:
		return "polyline"
	default:
		return "unknown"
	}
}

// Entity is one drawable element.
type Entity struct {
	ID   EntityID   `json:"id"`
	Kind Kind       `json:"kind"`
	Name string     `json:"name,omitempty"`
	Data EntityData `json:"data"`
}

// EntityData is the interface for kind-specific payloads.
type EntityData interface {
	entityData()
}

// LineData is a straight line from Start to End.
type LineData struct {
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
}

func (LineData) entityData() {}

// ArcData is a counter-clockwise arc. Angles are in radians; an EndAngle
// below StartAngle wraps around through 2π.
type ArcData struct {
	Center     geom.Point `json:"center"`
	Radius     float64    `json:"radius"`
	StartAngle float64    `json:"start_angle"`
	EndAngle   float64    `json:"end_angle"`
}

func (ArcData) entityData() {}

// Sweep returns the positive included angle, at most one full turn.
func (a ArcData) Sweep() float64 {
	return math.Min(a.span(), 2*math.Pi)
}

// span is the raw angular distance from StartAngle to EndAngle.
func (a ArcData) span() float64 {
	end := a.EndAngle
	if end < a.StartAngle {
		end += 2 * math.Pi
	}
	return end - a.StartAngle
}

// CircleData is a full circle.
type CircleData struct {
	Center geom.Point `json:"center"`
	Radius float64    `json:"radius"`
}

func (CircleData) entityData() {}

// PolylineData is a sequence of bulge vertices, optionally closed back to
// the first vertex.
type PolylineData struct {
	Vertices []geom.Vertex `json:"vertices"`
	Closed   bool          `json:"closed"`
}

func (PolylineData) entityData() {}
