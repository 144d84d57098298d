// Package kernel defines the abstract 2D region kernel interface.
// Implementations build closed regions from tessellated outlines and circles
// and answer point-membership and distance queries. The interface lets the
// application swap backends without touching the rest of the system.
package kernel

// Region is an opaque handle to a closed 2D area.
type Region interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [2]float64)

	// Distance returns the signed distance from (x, y) to the boundary,
	// negative inside.
	Distance(x, y float64) float64
}

// Kernel is the abstract region kernel interface.
type Kernel interface {
	// Primitives
	Polygon(o *Outline) (Region, error)
	Circle(radius float64) (Region, error) // centered at the origin

	// Boolean operations
	Union(a, b Region) Region
	Difference(a, b Region) Region

	// Transforms
	Translate(r Region, dx, dy float64) Region
}

// Contains reports whether (x, y) lies inside r or within tol of its
// boundary.
func Contains(r Region, x, y, tol float64) bool {
	min, max := r.BoundingBox()
	if x < min[0]-tol || x > max[0]+tol || y < min[1]-tol || y > max[1]+tol {
		return false
	}
	return r.Distance(x, y) <= tol
}
