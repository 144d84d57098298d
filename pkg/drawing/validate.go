package drawing

import (
	"fmt"
	"math"

	"github.com/chazu/arcsect/pkg/geom"
)

// ValidationSeverity indicates whether a validation finding blocks
// intersection queries or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks evaluation
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	EntityID EntityID           // zero if drawing-level
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.EntityID.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] entity %s: %s", e.Severity, e.EntityID.Short(), e.Message)
}

// Validate checks every entity with the default tolerance. An empty result
// means the drawing is valid. Validate never mutates the drawing.
func Validate(d *Drawing) []ValidationError {
	return ValidateTol(d, geom.DefaultTolerance)
}

// ValidateTol is Validate with an explicit tolerance for the
// zero-length and tiny-sweep warnings.
func ValidateTol(d *Drawing, tol geom.Tolerance) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateNames(d)...)
	for _, e := range d.All() {
		errs = append(errs, validateEntity(e, tol)...)
	}
	return errs
}

// Errors returns only the error-severity findings.
func Errors(findings []ValidationError) []ValidationError {
	var errs []ValidationError
	for _, f := range findings {
		if f.Severity == SeverityError {
			errs = append(errs, f)
		}
	}
	return errs
}

// validateNames checks that every entity is named and that no two entities
// share a name.
func validateNames(d *Drawing) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]int)
	for _, e := range d.All() {
		if e.Name == "" {
			errs = append(errs, ValidationError{
				EntityID: e.ID,
				Message:  fmt.Sprintf("%s has an empty name", e.Kind),
				Severity: SeverityError,
			})
			continue
		}
		seen[e.Name]++
		if seen[e.Name] == 2 {
			errs = append(errs, ValidationError{
				EntityID: e.ID,
				Message:  fmt.Sprintf("duplicate name %q", e.Name),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

func validateEntity(e *Entity, tol geom.Tolerance) []ValidationError {
	var errs []ValidationError
	fail := func(severity ValidationSeverity, format string, args ...any) {
		errs = append(errs, ValidationError{
			EntityID: e.ID,
			Message:  fmt.Sprintf(format, args...),
			Severity: severity,
		})
	}

	switch data := e.Data.(type) {
	case LineData:
		if !finitePoint(data.Start) || !finitePoint(data.End) {
			fail(SeverityError, "line %q has a non-finite endpoint", e.Name)
		} else if tol.IsZero(data.End.Sub(data.Start).Length()) {
			fail(SeverityWarning, "line %q has zero length", e.Name)
		}

	case ArcData:
		if !finitePoint(data.Center) || !finite(data.Radius) || !finite(data.StartAngle) || !finite(data.EndAngle) {
			fail(SeverityError, "arc %q has a non-finite parameter", e.Name)
			break
		}
		if data.Radius <= 0 {
			fail(SeverityError, "arc %q radius is %.4f, must be positive", e.Name, data.Radius)
		}
		if tol.IsZero(data.Sweep()) {
			fail(SeverityWarning, "arc %q sweep is below tolerance", e.Name)
		} else if span := data.span(); span > 2*math.Pi+float64(tol) {
			fail(SeverityWarning, "arc %q spans %.1f degrees, more than a full turn; clamped to 360", e.Name, span*180/math.Pi)
		}

	case CircleData:
		if !finitePoint(data.Center) || !finite(data.Radius) {
			fail(SeverityError, "circle %q has a non-finite parameter", e.Name)
		} else if data.Radius <= 0 {
			fail(SeverityError, "circle %q radius is %.4f, must be positive", e.Name, data.Radius)
		}

	case PolylineData:
		n := len(data.Vertices)
		if n < 2 {
			fail(SeverityError, "polyline %q has %d vertices, need at least 2", e.Name, n)
			break
		}
		for i, v := range data.Vertices {
			if !finitePoint(v.Pos) || !finite(v.Bulge) {
				fail(SeverityError, "polyline %q vertex %d is not finite", e.Name, i)
			}
		}
		edges := n - 1
		if data.Closed {
			edges = n
		}
		for i := 0; i < edges; i++ {
			p, q := data.Vertices[i].Pos, data.Vertices[(i+1)%n].Pos
			if finitePoint(p) && finitePoint(q) && tol.IsZero(q.Sub(p).Length()) {
				fail(SeverityWarning, "polyline %q edge %d has zero length", e.Name, i)
			}
		}

	default:
		fail(SeverityError, "%s entity has no geometry", e.Kind)
	}
	return errs
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finitePoint(p geom.Point) bool {
	return finite(p.X) && finite(p.Y)
}
