// Package geom is the exact 2D intersection kernel for arcsect.
// It turns vertex+bulge sequences into straight and circular segments and
// computes every intersection point between two such segment lists, tagged
// with the segment index and parametric position on each side.
//
// All functions are pure and safe for concurrent use.
package geom
