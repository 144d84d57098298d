// Package spatial provides the broad phase for whole-drawing queries: an
// R-tree over per-entity bounding boxes that yields the entity pairs worth
// handing to the exact intersection kernel.
package spatial

import (
	"cmp"
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/chazu/arcsect/pkg/geom"
)

const (
	minChildren = 2
	maxChildren = 8
)

// Pair is a candidate pair of item keys with A < B.
type Pair struct {
	A, B int
}

// item is one indexed entity.
type item struct {
	key  int
	rect rtreego.Rect
}

func (it *item) Bounds() rtreego.Rect { return it.rect }

// Index is an R-tree of padded bounding boxes keyed by caller-chosen ints.
// It is not safe for concurrent mutation; concurrent queries after the last
// Insert are fine.
type Index struct {
	tree  *rtreego.Rtree
	items []*item
	pad   float64
}

// New returns an empty index that grows every box by pad on each side.
// Padding keeps boxes that merely touch overlapping and gives zero-area
// boxes a positive extent.
func New(pad float64) *Index {
	if !(pad > 0) {
		pad = float64(geom.DefaultTolerance)
	}
	return &Index{
		tree: rtreego.NewTree(2, minChildren, maxChildren),
		pad:  pad,
	}
}

// Len returns the number of indexed items.
func (ix *Index) Len() int {
	return ix.tree.Size()
}

// Insert indexes the union of the segment bounds under key. Segments with
// non-finite bounds are ignored; Insert reports false when nothing finite
// was left to index.
func (ix *Index) Insert(key int, segs []geom.Segment) bool {
	min, max, ok := Bounds(segs)
	if !ok {
		return false
	}
	rect, err := ix.rect(min, max)
	if err != nil {
		return false
	}
	it := &item{key: key, rect: rect}
	ix.items = append(ix.items, it)
	ix.tree.Insert(it)
	return true
}

// Query returns the keys whose boxes overlap the box (min, max), in
// ascending order.
func (ix *Index) Query(min, max geom.Point) []int {
	rect, err := ix.rect(min, max)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(rect)
	keys := make([]int, 0, len(hits))
	for _, h := range hits {
		keys = append(keys, h.(*item).key)
	}
	slices.Sort(keys)
	return keys
}

// QueryPoint returns the keys whose boxes contain p.
func (ix *Index) QueryPoint(p geom.Point) []int {
	return ix.Query(p, p)
}

// Pairs returns every pair of items whose boxes overlap, ordered by A then B.
func (ix *Index) Pairs() []Pair {
	var pairs []Pair
	for _, it := range ix.items {
		for _, h := range ix.tree.SearchIntersect(it.rect) {
			other := h.(*item).key
			if other > it.key {
				pairs = append(pairs, Pair{A: it.key, B: other})
			}
		}
	}
	slices.SortFunc(pairs, func(x, y Pair) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})
	return slices.Compact(pairs)
}

func (ix *Index) rect(min, max geom.Point) (rtreego.Rect, error) {
	return rtreego.NewRectFromPoints(
		rtreego.Point{min.X - ix.pad, min.Y - ix.pad},
		rtreego.Point{max.X + ix.pad, max.Y + ix.pad},
	)
}

// Bounds returns the union of the finite segment bounds.
func Bounds(segs []geom.Segment) (min, max geom.Point, ok bool) {
	min = geom.Pt(math.Inf(1), math.Inf(1))
	max = geom.Pt(math.Inf(-1), math.Inf(-1))
	for _, s := range segs {
		lo, hi := s.Bounds()
		if !finite(lo) || !finite(hi) {
			continue
		}
		min = geom.Pt(math.Min(min.X, lo.X), math.Min(min.Y, lo.Y))
		max = geom.Pt(math.Max(max.X, hi.X), math.Max(max.Y, hi.Y))
		ok = true
	}
	return min, max, ok
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
