package engine

import (
	"fmt"
	"math"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/arcsect/pkg/drawing"
	"github.com/chazu/arcsect/pkg/geom"
)

// registerBuiltins installs the drawing DSL into a zygomys environment.
// Entity builtins append to d as the script runs, so later forms can refer
// to earlier entities by name.
//
// Source must go through preprocessSource first so that :keyword tokens
// arrive as recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, d *drawing.Drawing, tol geom.Tolerance) {
	b := &builder{d: d, tol: tol}

	env.AddFunction("vec2", b.vec2)
	env.AddFunction("vertex", b.vertex)
	env.AddFunction("line", b.line)
	env.AddFunction("arc", b.arc)
	env.AddFunction("circle", b.circle)
	env.AddFunction("polyline", b.polyline)
	env.AddFunction("entity", b.entity)
	env.AddFunction("intersections", b.intersections)
}

// builder holds the drawing under construction for one evaluation.
type builder struct {
	d   *drawing.Drawing
	tol geom.Tolerance
}

// add records a new entity. IDs are derived from kind and name; a repeated
// name gets an ordinal suffix so both entities survive for validation.
func (b *builder) add(kind drawing.Kind, name string, data drawing.EntityData) zygo.Sexp {
	path := fmt.Sprintf("%s/%s", kind, name)
	id := drawing.NewEntityID(path)
	if name == "" || b.d.Get(id) != nil {
		id = drawing.NewEntityID(fmt.Sprintf("%s#%d", path, b.d.Count()))
	}
	b.d.Add(&drawing.Entity{ID: id, Kind: kind, Name: name, Data: data})
	return &sexpEntityRef{id: id, kind: kind, name: name}
}

// entityName reads the leading positional name argument of an entity form.
func entityName(form string, pa kwArgs) (string, []zygo.Sexp, error) {
	if len(pa.positional) < 1 {
		return "", nil, fmt.Errorf("%s requires a name argument", form)
	}
	name, err := toString(pa.positional[0])
	if err != nil {
		return "", nil, fmt.Errorf("%s: name: %w", form, err)
	}
	return name, pa.positional[1:], nil
}

// (vec2 x y)
func (b *builder) vec2(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
	}
	x, err := toFloat64(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
	}
	y, err := toFloat64(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
	}
	return &sexpVec2{p: geom.Pt(x, y)}, nil
}

// (vertex x y :bulge b)
func (b *builder) vertex(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if len(pa.positional) != 2 {
		return zygo.SexpNull, fmt.Errorf("vertex requires x and y, got %d positional arguments", len(pa.positional))
	}
	x, err := toFloat64(pa.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vertex: x: %w", err)
	}
	y, err := toFloat64(pa.positional[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("vertex: y: %w", err)
	}
	v := geom.Vertex{Pos: geom.Pt(x, y)}
	if err := pa.float("bulge", &v.Bulge); err != nil {
		return zygo.SexpNull, fmt.Errorf("vertex: %w", err)
	}
	return &sexpVertex{v: v}, nil
}

// (line "name" (vec2 x0 y0) (vec2 x1 y1))
func (b *builder) line(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	entName, rest, err := entityName("line", pa)
	if err != nil {
		return zygo.SexpNull, err
	}
	if len(rest) != 2 {
		return zygo.SexpNull, fmt.Errorf("line %q requires two endpoints, got %d", entName, len(rest))
	}
	start, err := toVec2(rest[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("line %q: start: %w", entName, err)
	}
	end, err := toVec2(rest[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("line %q: end: %w", entName, err)
	}
	return b.add(drawing.KindLine, entName, drawing.LineData{Start: start, End: end}), nil
}

// (arc "name" :center (vec2 x y) :radius r :start deg :end deg)
//
// Angles are in degrees and the arc always runs counter-clockwise from
// :start to :end.
func (b *builder) arc(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	entName, _, err := entityName("arc", pa)
	if err != nil {
		return zygo.SexpNull, err
	}
	if err := pa.require("center", "radius", "start", "end"); err != nil {
		return zygo.SexpNull, fmt.Errorf("arc %q: %w", entName, err)
	}
	center, err := toVec2(pa.kw["center"])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("arc %q: center: %w", entName, err)
	}
	data := drawing.ArcData{Center: center}
	var startDeg, endDeg float64
	for _, f := range []struct {
		name string
		dst  *float64
	}{{"radius", &data.Radius}, {"start", &startDeg}, {"end", &endDeg}} {
		if err := pa.float(f.name, f.dst); err != nil {
			return zygo.SexpNull, fmt.Errorf("arc %q: %w", entName, err)
		}
	}
	data.StartAngle = startDeg * math.Pi / 180
	data.EndAngle = endDeg * math.Pi / 180
	return b.add(drawing.KindArc, entName, data), nil
}

// (circle "name" :center (vec2 x y) :radius r)
func (b *builder) circle(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	entName, _, err := entityName("circle", pa)
	if err != nil {
		return zygo.SexpNull, err
	}
	if err := pa.require("center", "radius"); err != nil {
		return zygo.SexpNull, fmt.Errorf("circle %q: %w", entName, err)
	}
	center, err := toVec2(pa.kw["center"])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("circle %q: center: %w", entName, err)
	}
	data := drawing.CircleData{Center: center}
	if err := pa.float("radius", &data.Radius); err != nil {
		return zygo.SexpNull, fmt.Errorf("circle %q: %w", entName, err)
	}
	return b.add(drawing.KindCircle, entName, data), nil
}

// (polyline "name" :closed true (vertex ...) (vertex ...) ...)
func (b *builder) polyline(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	entName, rest, err := entityName("polyline", pa)
	if err != nil {
		return zygo.SexpNull, err
	}
	var data drawing.PolylineData
	if v, ok := pa.kw["closed"]; ok {
		if data.Closed, err = toBool(v); err != nil {
			return zygo.SexpNull, fmt.Errorf("polyline %q: closed: %w", entName, err)
		}
	}
	if data.Vertices, err = toVertices(rest); err != nil {
		return zygo.SexpNull, fmt.Errorf("polyline %q: %w", entName, err)
	}
	return b.add(drawing.KindPolyline, entName, data), nil
}

// (entity "name")
func (b *builder) entity(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 1 {
		return zygo.SexpNull, fmt.Errorf("entity requires a name argument")
	}
	e, err := toEntity(b.d, args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("entity: %w", err)
	}
	return &sexpEntityRef{id: e.ID, kind: e.Kind, name: e.Name}, nil
}

// (intersections a b) returns the number of intersection points between two
// entities, given as references or names.
func (b *builder) intersections(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("intersections requires 2 entities, got %d", len(args))
	}
	var segs [2][]geom.Segment
	for i, arg := range args {
		e, err := toEntity(b.d, arg)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("intersections: %w", err)
		}
		if segs[i], err = e.SegmentsTol(b.tol); err != nil {
			return zygo.SexpNull, fmt.Errorf("intersections: %w", err)
		}
	}
	hits := b.tol.Intersect(segs[0], segs[1])
	return &zygo.SexpInt{Val: int64(len(hits))}, nil
}
