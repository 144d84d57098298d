package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/arcsect/pkg/drawing"
	"github.com/chazu/arcsect/pkg/geom"
)

// mustEval evaluates source and fails the test on any error.
func mustEval(t *testing.T, source string) *drawing.Drawing {
	t.Helper()
	d, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if d == nil {
		t.Fatal("expected non-nil drawing")
	}
	return d
}

// lookup returns the named entity or fails the test.
func lookup(t *testing.T, d *drawing.Drawing, name string) *drawing.Entity {
	t.Helper()
	e := d.Lookup(name)
	if e == nil {
		t.Fatalf("no entity named %q", name)
	}
	return e
}

// evalErr evaluates source and returns the joined eval error messages.
func evalErr(t *testing.T, source string) string {
	t.Helper()
	d, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if d != nil {
		t.Fatal("expected nil drawing on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
	var msgs []string
	for _, e := range evalErrs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func TestLine(t *testing.T) {
	d := mustEval(t, `(line "base" (vec2 0 0) (vec2 10 -2.5))`)

	if d.Count() != 1 {
		t.Fatalf("expected 1 entity, got %d", d.Count())
	}
	base := d.Lookup("base")
	if base == nil {
		t.Fatal("expected entity named 'base'")
	}
	if base.Kind != drawing.KindLine {
		t.Errorf("expected line, got %s", base.Kind)
	}
	ld, ok := base.Data.(drawing.LineData)
	if !ok {
		t.Fatalf("expected LineData, got %T", base.Data)
	}
	if ld.Start != geom.Pt(0, 0) || ld.End != geom.Pt(10, -2.5) {
		t.Errorf("line = %v -> %v", ld.Start, ld.End)
	}
	if base.ID != drawing.NewEntityID("line/base") {
		t.Errorf("ID = %s, want content-addressed line/base", base.ID)
	}
}

func TestArcDegrees(t *testing.T) {
	d := mustEval(t, `(arc "a" :center (vec2 1 2) :radius 3 :start 90 :end 180)`)

	ad, ok := lookup(t, d, "a").Data.(drawing.ArcData)
	if !ok {
		t.Fatalf("expected ArcData, got %T", lookup(t, d, "a").Data)
	}
	if ad.Center != geom.Pt(1, 2) || ad.Radius != 3 {
		t.Errorf("arc center/radius = %v/%v", ad.Center, ad.Radius)
	}
	if math.Abs(ad.StartAngle-math.Pi/2) > 1e-12 || math.Abs(ad.EndAngle-math.Pi) > 1e-12 {
		t.Errorf("angles = %v..%v, want π/2..π", ad.StartAngle, ad.EndAngle)
	}
}

func TestArcMissingKeyword(t *testing.T) {
	msg := evalErr(t, `(arc "a" :center (vec2 0 0) :radius 3 :start 0)`)
	if !strings.Contains(msg, ":end") {
		t.Errorf("expected missing :end, got %q", msg)
	}
}

func TestCircle(t *testing.T) {
	d := mustEval(t, `(def r 4) (circle "hole" :center (vec2 0 0) :radius r)`)

	cd, ok := lookup(t, d, "hole").Data.(drawing.CircleData)
	if !ok {
		t.Fatalf("expected CircleData, got %T", lookup(t, d, "hole").Data)
	}
	if cd.Radius != 4 {
		t.Errorf("expected radius=4 (from variable), got %v", cd.Radius)
	}
}

func TestPolyline(t *testing.T) {
	source := `
; a 4x2 slot with rounded ends
(polyline "slot" :closed true
  (vertex 0 0)
  (vertex 4 0 :bulge 1)
  (vertex 4 2)
  (vertex 0 2 :bulge 1))
`
	d := mustEval(t, source)
	slot := lookup(t, d, "slot")
	pd, ok := slot.Data.(drawing.PolylineData)
	if !ok {
		t.Fatalf("expected PolylineData, got %T", slot.Data)
	}
	if !pd.Closed {
		t.Error("expected closed polyline")
	}
	if len(pd.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(pd.Vertices))
	}
	if pd.Vertices[1].Bulge != 1 || pd.Vertices[0].Bulge != 0 {
		t.Errorf("bulges = %v, %v", pd.Vertices[0].Bulge, pd.Vertices[1].Bulge)
	}
}

func TestPolylineOpenByDefault(t *testing.T) {
	d := mustEval(t, `(polyline "p" (vertex 0 0) (vertex 1 0))`)
	if pd := lookup(t, d, "p").Data.(drawing.PolylineData); pd.Closed {
		t.Error("expected open polyline")
	}
}

func TestPolylineVertexList(t *testing.T) {
	d := mustEval(t, `(def pts (list (vertex 0 0) (vertex 1 0))) (polyline "p" pts (vertex 1 1))`)
	if n := len(lookup(t, d, "p").Data.(drawing.PolylineData).Vertices); n != 3 {
		t.Errorf("expected 3 vertices, got %d", n)
	}
}

func TestPolylineRejectsNonVertex(t *testing.T) {
	msg := evalErr(t, `(polyline "p" (vertex 0 0) (vec2 1 0))`)
	if !strings.Contains(msg, "expected vertex") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestEntityLookupError(t *testing.T) {
	msg := evalErr(t, `(entity "missing")`)
	if !strings.Contains(msg, `no entity named "missing"`) {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestDuplicateNamesKeepBothEntities(t *testing.T) {
	d := mustEval(t, `(line "x" (vec2 0 0) (vec2 1 0)) (line "x" (vec2 0 1) (vec2 1 1))`)
	if d.Count() != 2 {
		t.Fatalf("expected 2 entities, got %d", d.Count())
	}
	errs := drawing.Validate(d)
	if len(drawing.Errors(errs)) != 1 {
		t.Errorf("expected one duplicate-name error, got %v", errs)
	}
}

func TestIntersectionsBuiltin(t *testing.T) {
	source := `
(def sq (polyline "square" :closed true
  (vertex 0 0) (vertex 10 0) (vertex 10 10) (vertex 0 10)))
(line "cut" (vec2 -5 5) (vec2 15 5))
(circle "ring" :center (vec2 5 5) :radius 3)
(def n1 (intersections sq "cut"))
(def n2 (intersections "ring" (entity "cut")))
(def n3 (intersections "ring" "square"))
(line "n1" (vec2 0 0) (vec2 n1 0))
(line "n2" (vec2 0 0) (vec2 n2 0))
(line "n3" (vec2 0 0) (vec2 n3 0))
`
	d := mustEval(t, source)
	for name, want := range map[string]float64{"n1": 2, "n2": 2, "n3": 0} {
		got := lookup(t, d, name).Data.(drawing.LineData).End.X
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestVec2Arity(t *testing.T) {
	msg := evalErr(t, `(vec2 1 2 3)`)
	if !strings.Contains(msg, "exactly 2") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestArithmeticStillWorks(t *testing.T) {
	d := mustEval(t, `(circle "c" :center (vec2 (* 2 3) (- 10 4)) :radius (/ 10.0 4))`)
	cd := lookup(t, d, "c").Data.(drawing.CircleData)
	if cd.Center != geom.Pt(6, 6) || cd.Radius != 2.5 {
		t.Errorf("circle = %v r=%v", cd.Center, cd.Radius)
	}
}
