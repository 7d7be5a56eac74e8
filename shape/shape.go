/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package shape

import "fmt"

// Shape is any geometric region that can be related to other shapes.
// Implementations are immutable after construction and safe for concurrent
// use. Relate performs a bounded number of arithmetic comparisons; it never
// blocks, allocates or performs I/O.
type Shape interface {
	fmt.Stringer

	// Relate classifies other against this shape: Contains means this shape
	// contains other. ctx must be the context the shape was built under.
	Relate(other Shape, ctx *Context) Relation

	// BoundingBox returns the smallest axis-aligned rectangle enclosing the
	// shape.
	BoundingBox() Rect

	// HasArea reports whether the shape covers a non-zero area.
	HasArea() bool

	// Area returns the shape's area under the context's metric. A nil ctx
	// yields the simple euclidean area.
	Area(ctx *Context) float64
}

// DistanceCalculator supplies the metric primitives the relation engine needs.
// Cartesian and spherical implementations live in the dist package; the engine
// is written against this contract only. Inputs are assumed pre-validated by
// shape constructors; implementations do not guard against NaN or negative
// distances.
type DistanceCalculator interface {
	// Distance returns the distance between two points under this metric.
	Distance(a, b Point) float64

	// DistanceXY is Distance against the point (x, y). It must agree exactly
	// with constructing the point and calling Distance.
	DistanceXY(a Point, x, y float64) float64

	// BoxForDistance returns the smallest axis-aligned rectangle enclosing
	// every point within d of center. Spherical implementations own the
	// pole and hemisphere handling, which may widen the box to the full
	// longitude range.
	BoxForDistance(center Point, d float64, ctx *Context) Rect

	// Area returns the exact area of the circle on the target surface.
	Area(c *Circle) float64
}

// Context binds the distance calculator and world bounds shared by every shape
// built through it. A context is created once, never mutated, and may be
// shared by any number of concurrent callers. Shapes hold it by reference; a
// shape must only ever be related under the context it was built with.
type Context struct {
	calc   DistanceCalculator
	bounds Rect
	geo    bool
}

// NewContext returns a context over the given calculator. geo marks the
// context as geodetic (degree coordinates on a sphere); the world bounds are
// ±180 x ±90 for geodetic contexts and unbounded otherwise.
func NewContext(calc DistanceCalculator, geo bool) *Context {
	b := Rect{minX: negInf, maxX: posInf, minY: negInf, maxY: posInf}
	if geo {
		b = Rect{minX: -180, maxX: 180, minY: -90, maxY: 90}
	}
	return &Context{calc: calc, bounds: b, geo: geo}
}

// DistCalc returns the calculator bound to this context.
func (c *Context) DistCalc() DistanceCalculator { return c.calc }

// IsGeo reports whether the context uses geodetic (spherical) coordinates.
func (c *Context) IsGeo() bool { return c.geo }

// WorldBounds returns the rectangle of valid coordinates for this context.
func (c *Context) WorldBounds() Rect { return c.bounds }
