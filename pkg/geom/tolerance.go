package geom

// Epsilon is the default numeric tolerance used by every comparison in the kernel.
const Epsilon = 1e-6

// Tolerance is the single tolerance policy shared by the segment builder, the
// primitive solvers and the angle normalization helper.
type Tolerance float64

// DefaultTolerance is the policy used by the package-level functions.
const DefaultTolerance = Tolerance(Epsilon)

// IsZero reports whether |x| is below the tolerance.
func (tol Tolerance) IsZero(x float64) bool {
	return x < float64(tol) && x > -float64(tol)
}

// InUnit reports whether t lies in [-tol, 1+tol].
func (tol Tolerance) InUnit(t float64) bool {
	return t >= -float64(tol) && t <= 1+float64(tol)
}

// clamp01 removes floating-point overshoot from an accepted parameter.
func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
