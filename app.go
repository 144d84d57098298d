package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/chazu/arcsect/pkg/config"
	"github.com/chazu/arcsect/pkg/drawing"
	"github.com/chazu/arcsect/pkg/engine"
	"github.com/chazu/arcsect/pkg/geom"
	"github.com/chazu/arcsect/pkg/kernel"
	"github.com/chazu/arcsect/pkg/kernel/sdfx"
	"github.com/chazu/arcsect/pkg/spatial"
	"github.com/chazu/arcsect/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to outlines.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// ErrScript is returned by the query methods when the script does not
// evaluate to a valid drawing.
var ErrScript = errors.New("script failed")

// App is the application backend shared by the CLI commands.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
	cfg    config.Config
}

// OutlineData is a sampled entity plus its display color.
type OutlineData struct {
	*kernel.Outline
	Color string `json:"color"`
}

// EvalErrorData is a JSON-serializable error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Entity  string `json:"entity,omitempty"`
	Message string `json:"message"`
}

// PairResult holds the intersections between two named entities.
type PairResult struct {
	A      string                 `json:"a"`
	B      string                 `json:"b"`
	Points []geom.IntersectResult `json:"points"`
}

// EvalResult is the full result of evaluating a script.
type EvalResult struct {
	Outlines      []OutlineData   `json:"outlines"`
	Intersections []PairResult    `json:"intersections"`
	Errors        []EvalErrorData `json:"errors"`
	Warnings      []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with the default configuration.
func NewApp() *App {
	return NewAppWithConfig(config.Default())
}

// NewAppWithConfig creates an App using cfg, which must already be valid.
func NewAppWithConfig(cfg config.Config) *App {
	return &App{
		engine: engine.NewEngine(engine.WithTimeout(cfg.EvalTimeout()), engine.WithTolerance(cfg.Tol())),
		kernel: sdfx.New(),
		cfg:    cfg,
	}
}

// Evaluate runs source and returns outlines, every pairwise intersection
// between entities, and any errors or warnings. Intersections are only
// computed for drawings that pass validation.
func (a *App) Evaluate(source string) EvalResult {
	return a.EvaluateContext(context.Background(), source)
}

// EvaluateContext is Evaluate with cancellation of the intersection phase.
func (a *App) EvaluateContext(ctx context.Context, source string) EvalResult {
	result := EvalResult{
		Outlines:      []OutlineData{},
		Intersections: []PairResult{},
		Errors:        []EvalErrorData{},
		Warnings:      []EvalErrorData{},
	}

	d, errs, warnings := a.load(source)
	result.Errors = append(result.Errors, errs...)
	result.Warnings = append(result.Warnings, warnings...)
	if d == nil || len(errs) > 0 {
		return result
	}

	outlines, err := tessellate.Tessellate(d, a.cfg.TessellateOptions())
	if err != nil {
		logger().Error("tessellate failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "tessellation failed: " + err.Error()})
		return result
	}
	for i, o := range outlines {
		result.Outlines = append(result.Outlines, OutlineData{
			Outline: o,
			Color:   colorPalette[i%len(colorPalette)],
		})
	}

	pairs, err := a.intersectAll(ctx, d)
	if err != nil {
		logger().Error("intersection failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: "intersection failed: " + err.Error()})
		return result
	}
	result.Intersections = pairs

	logger().Debug("evaluated",
		"version", d.Version,
		"entities", d.Count(),
		"pairs", len(pairs),
		"points", lo.SumBy(pairs, func(p PairResult) int { return len(p.Points) }),
	)
	return result
}

// IntersectEntities evaluates source and intersects the entities named a
// and b. Results are ordered along a.
func (a *App) IntersectEntities(source, nameA, nameB string) ([]geom.IntersectResult, error) {
	d, err := a.mustLoad(source)
	if err != nil {
		return nil, err
	}
	var segs [2][]geom.Segment
	for i, name := range []string{nameA, nameB} {
		e := d.Lookup(name)
		if e == nil {
			return nil, fmt.Errorf("no entity named %q", name)
		}
		if segs[i], err = e.SegmentsTol(a.cfg.Tol()); err != nil {
			return nil, err
		}
	}
	return a.cfg.Tol().Intersect(segs[0], segs[1]), nil
}

// intersectAll intersects every pair of entities whose bounding boxes
// overlap. Pairs are computed concurrently and returned in drawing order.
func (a *App) intersectAll(ctx context.Context, d *drawing.Drawing) ([]PairResult, error) {
	tol := a.cfg.Tol()
	entities := d.All()
	segs := make([][]geom.Segment, len(entities))
	ix := spatial.New(float64(tol))
	for i, e := range entities {
		s, err := e.SegmentsTol(tol)
		if err != nil {
			return nil, err
		}
		segs[i] = s
		ix.Insert(i, s)
	}

	candidates := ix.Pairs()
	results := make([]PairResult, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = PairResult{
				A:      entities[p.A].Name,
				B:      entities[p.B].Name,
				Points: tol.Intersect(segs[p.A], segs[p.B]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lo.Filter(results, func(r PairResult, _ int) bool {
		return len(r.Points) > 0
	}), nil
}

// load evaluates and validates source. It returns a nil drawing when the
// script itself failed.
func (a *App) load(source string) (*drawing.Drawing, []EvalErrorData, []EvalErrorData) {
	var errs, warnings []EvalErrorData

	d, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		logger().Error("evaluate fatal error", "err", err)
		return nil, []EvalErrorData{{Message: err.Error()}}, nil
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			errs = append(errs, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
		}
		return nil, errs, nil
	}

	for _, f := range drawing.ValidateTol(d, a.cfg.Tol()) {
		item := EvalErrorData{Message: f.Message}
		if e := d.Get(f.EntityID); e != nil {
			item.Entity = e.Name
		}
		if f.Severity == drawing.SeverityWarning {
			warnings = append(warnings, item)
		} else {
			errs = append(errs, item)
		}
	}
	if len(errs) > 0 {
		logger().Warn("drawing failed validation", "errors", len(errs))
	}
	return d, errs, warnings
}

// mustLoad is load for the query methods: any error fails the query.
func (a *App) mustLoad(source string) (*drawing.Drawing, error) {
	d, errs, _ := a.load(source)
	if len(errs) > 0 {
		msgs := lo.Map(errs, func(e EvalErrorData, _ int) string {
			if e.Line > 0 {
				return engine.EvalError{Line: e.Line, Message: e.Message}.Error()
			}
			return e.Message
		})
		return nil, fmt.Errorf("%w: %s", ErrScript, strings.Join(msgs, "; "))
	}
	return d, nil
}
