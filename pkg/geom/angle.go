package geom

import "math"

const twoPi = 2 * math.Pi

// ArcParam converts a polar angle around an arc's center into the arc's own
// parametric position t = delta/sweep, where delta is the rotation from
// startAngle to angle taken in the direction of sweep. It returns false when
// the angle is outside the arc's span or the sweep is below the tolerance.
func ArcParam(angle, startAngle, sweep float64) (float64, bool) {
	return DefaultTolerance.ArcParam(angle, startAngle, sweep)
}

// ArcParam is ArcParam under an explicit tolerance. It is the only arc
// membership test in the package.
func (tol Tolerance) ArcParam(angle, startAngle, sweep float64) (float64, bool) {
	eps := float64(tol)
	if tol.IsZero(sweep) || !isFinite(angle) || !isFinite(startAngle) || !isFinite(sweep) {
		return 0, false
	}

	// delta in [0, 2π)
	delta := math.Mod(angle-startAngle, twoPi)
	if delta < 0 {
		delta += twoPi
	}

	if sweep > 0 {
		// just before the start is the start
		if delta > twoPi-eps {
			delta -= twoPi
		}
		if delta < -eps || delta > sweep+eps {
			return 0, false
		}
	} else {
		if delta > 0 {
			delta -= twoPi
		}
		if delta < -twoPi+eps {
			delta += twoPi
		}
		if delta > eps || delta < sweep-eps {
			return 0, false
		}
	}
	return clamp01(delta / sweep), true
}
