// Package drawing defines the 2D drawing model produced by script evaluation:
// named line, arc, circle and polyline entities, their conversion to kernel
// segments, and structural validation.
package drawing
