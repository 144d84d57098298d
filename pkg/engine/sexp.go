package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/arcsect/pkg/drawing"
	"github.com/chazu/arcsect/pkg/geom"
)

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec2 wraps a point built by (vec2 x y).
type sexpVec2 struct {
	p geom.Point
}

func (v *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %g %g)", v.p.X, v.p.Y)
}
func (v *sexpVec2) Type() *zygo.RegisteredType { return nil }

// sexpVertex wraps a polyline vertex built by (vertex x y :bulge b).
type sexpVertex struct {
	v geom.Vertex
}

func (v *sexpVertex) SexpString(ps *zygo.PrintState) string {
	if v.v.Bulge == 0 {
		return fmt.Sprintf("(vertex %g %g)", v.v.Pos.X, v.v.Pos.Y)
	}
	return fmt.Sprintf("(vertex %g %g :bulge %g)", v.v.Pos.X, v.v.Pos.Y, v.v.Bulge)
}
func (v *sexpVertex) Type() *zygo.RegisteredType { return nil }

// sexpEntityRef is returned by every entity builtin.
type sexpEntityRef struct {
	id   drawing.EntityID
	kind drawing.Kind
	name string
}

func (r *sexpEntityRef) SexpString(ps *zygo.PrintState) string {
	if r.name != "" {
		return fmt.Sprintf("(%s %q)", r.kind, r.name)
	}
	return fmt.Sprintf("(%s %s)", r.kind, r.id.Short())
}
func (r *sexpEntityRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string and returns the
// keyword name without its prefix.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// A trailing keyword with no value is recorded as SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// float reads the numeric keyword name into dst when present.
func (a kwArgs) float(name string, dst *float64) error {
	v, ok := a.kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = f
	return nil
}

// require reports an error when the keyword name is missing.
func (a kwArgs) require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := a.kw[n]; !ok {
			missing = append(missing, ":"+n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a boolean. nil and the empty list read as false.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return false, nil
		}
	}
	return false, fmt.Errorf("expected boolean, got %T (%s)", s, s.SexpString(nil))
}

// toVec2 extracts a point from a sexpVec2.
func toVec2(s zygo.Sexp) (geom.Point, error) {
	if v, ok := s.(*sexpVec2); ok {
		return v.p, nil
	}
	return geom.Point{}, fmt.Errorf("expected vec2, got %T (%s)", s, s.SexpString(nil))
}

// toVertices flattens vertex arguments; lists and arrays of vertices are
// accepted so scripts can build outlines with map.
func toVertices(items []zygo.Sexp) ([]geom.Vertex, error) {
	var out []geom.Vertex
	for i, item := range items {
		switch v := item.(type) {
		case *sexpVertex:
			out = append(out, v.v)
		case *zygo.SexpPair, *zygo.SexpArray:
			inner, err := sexpListToSlice(v)
			if err != nil {
				return nil, err
			}
			vs, err := toVertices(inner)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, vs...)
		default:
			return nil, fmt.Errorf("item %d: expected vertex, got %T (%s)", i, item, item.SexpString(nil))
		}
	}
	return out, nil
}

// toEntity resolves an entity reference or a name string against d.
func toEntity(d *drawing.Drawing, s zygo.Sexp) (*drawing.Entity, error) {
	switch v := s.(type) {
	case *sexpEntityRef:
		if e := d.Get(v.id); e != nil {
			return e, nil
		}
		return nil, fmt.Errorf("stale entity reference %s", v.id.Short())
	case *zygo.SexpStr:
		if e := d.Lookup(v.S); e != nil {
			return e, nil
		}
		return nil, fmt.Errorf("no entity named %q", v.S)
	}
	return nil, fmt.Errorf("expected entity reference or name, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}
