/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package shape

import (
	"fmt"
	"math"

	"github.com/hypermodeinc/spatial/x"
)

// Circle is a point-radius shape. The enclosing bounding box is computed once
// at construction from the context's distance calculator and cached; under a
// spherical metric it can be much wider than the naive square. The circle
// holds its center and context as shared read-only references and never
// mutates either.
type Circle struct {
	center Point
	radius float64
	ctx    *Context
	bbox   Rect
}

// NewCircle returns the circle around center with the given radius, built
// under ctx. The radius must be non-negative and is in the units of the
// context's metric (degrees for geodetic contexts).
func NewCircle(center Point, radius float64, ctx *Context) *Circle {
	x.AssertTruef(ctx != nil, "NewCircle: ctx must not be nil")
	x.AssertTruef(radius >= 0, "NewCircle: negative radius %v", radius)
	return &Circle{
		center: center,
		radius: radius,
		ctx:    ctx,
		bbox:   ctx.DistCalc().BoxForDistance(center, radius, ctx),
	}
}

// Center returns the circle's center point.
func (c *Circle) Center() Point { return c.center }

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 { return c.radius }

// BoundingBox returns the cached enclosing rectangle.
func (c *Circle) BoundingBox() Rect { return c.bbox }

// HasArea reports whether the radius is non-zero.
func (c *Circle) HasArea() bool { return c.radius > 0 }

// Area returns the circle's area. With a nil ctx this is the euclidean
// pi*r^2; otherwise the context's metric decides (a spherical cap for
// geodetic contexts).
func (c *Circle) Area(ctx *Context) float64 {
	if ctx == nil {
		return math.Pi * c.radius * c.radius
	}
	return ctx.DistCalc().Area(c)
}

// Contains reports whether (px, py) lies on or inside the circle. This is the
// single definition of point membership; every relate algorithm routes
// through it.
func (c *Circle) Contains(px, py float64) bool {
	return c.ctx.DistCalc().DistanceXY(c.center, px, py) <= c.radius
}

// Relate classifies other against this circle. Points, rectangles and circles
// are handled directly; any other shape kind is asked to relate itself to the
// circle and the result transposed. ctx must be the context the circle was
// built with; a mismatch is a caller bug.
func (c *Circle) Relate(other Shape, ctx *Context) Relation {
	x.AssertTruef(ctx == c.ctx, "circle related under a foreign context")
	switch o := other.(type) {
	case Point:
		return c.relatePoint(o)
	case Rect:
		return c.relateRect(o)
	case *Circle:
		return c.relateCircle(o)
	default:
		return other.Relate(c, ctx).Transpose()
	}
}

// relatePoint: a point has no area, so it is either inside the circle
// (boundary included) or disjoint from it.
func (c *Circle) relatePoint(p Point) Relation {
	if c.Contains(p.x, p.y) {
		return Contains
	}
	return Disjoint
}

// relateRect classifies a rectangle in two phases. Phase 1 relates the cached
// bounding box to the rectangle, which settles the cheap cases exactly: a
// disjoint or contained bbox carries over to the circle, and a bbox equal to
// the rectangle means the circle (curved, strictly inside its box) is within.
// Everything else falls through to the closest-point test.
//
// Not correct when the rectangle wraps the dateline in geodetic mode; the
// algorithm assumes a non-wrapping rectangle.
func (c *Circle) relateRect(r Rect) Relation {
	bboxSect := c.bbox.relateRect(r)
	if bboxSect == Disjoint || bboxSect == Within {
		return bboxSect
	}
	if bboxSect == Contains && c.bbox == r {
		return Within
	}
	// bboxSect is Intersecting, or Contains without exact equality. The only
	// certainty left is that the circle is not within the rectangle.
	return c.relateRectPhase2(r, bboxSect)
}

func (c *Circle) relateRectPhase2(r Rect, bboxSect Relation) Relation {
	// The nearest point of the rectangle to the center, by euclidean clamping.
	closestX := clamp(c.center.x, r.minX, r.maxX)
	closestY := clamp(c.center.y, r.minY, r.maxY)

	// Unclamped axes are tested against the bbox extent on that axis, which
	// already encodes the metric's reach at this radius. Only the corner case
	// needs an exact distance.
	if closestX == c.center.x {
		var distYCirc float64
		if closestY < c.center.y {
			distYCirc = c.center.y - c.bbox.minY
		} else {
			distYCirc = c.bbox.maxY - c.center.y
		}
		if math.Abs(c.center.y-closestY) > distYCirc {
			return Disjoint
		}
	} else if closestY == c.center.y {
		var distXCirc float64
		if closestX < c.center.x {
			distXCirc = c.center.x - c.bbox.minX
		} else {
			distXCirc = c.bbox.maxX - c.center.x
		}
		if math.Abs(c.center.x-closestX) > distXCirc {
			return Disjoint
		}
	} else if !c.Contains(closestX, closestY) {
		return Disjoint
	}

	// The shapes overlap at least partially. If the bbox does not even
	// contain the rectangle the circle cannot either.
	if bboxSect != Contains {
		return Intersecting
	}

	// Full containment holds iff the farthest corner is still inside.
	farthestX := r.maxX
	if r.maxX-c.center.x <= c.center.x-r.minX {
		farthestX = r.minX
	}
	farthestY := r.maxY
	if r.maxY-c.center.y <= c.center.y-r.minY {
		farthestY = r.minY
	}
	if c.Contains(farthestX, farthestY) {
		return Contains
	}
	return Intersecting
}

// relateCircle compares center distance with the two radii. The comparison
// structure (strict < with <=) fixes how exact tangency classifies; do not
// rearrange it.
func (c *Circle) relateCircle(o *Circle) Relation {
	d := c.ctx.DistCalc().Distance(c.center, o.center)
	if d > c.radius+o.radius {
		return Disjoint
	}
	if d < c.radius && d+o.radius <= c.radius {
		return Contains
	}
	if d < o.radius && d+c.radius <= o.radius {
		return Within
	}
	return Intersecting
}

// Equal reports whether other is a circle with the same center and radius.
func (c *Circle) Equal(other Shape) bool {
	return EqualCircles(c, other)
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(%v,d=%v)", c.center, c.radius)
}

// EqualCircles is the canonical circle equality: equal centers and equal
// radii, independent of the contexts the circles were built under. Any circle
// implementation should delegate here so that equality stays a value contract.
func EqualCircles(c *Circle, other Shape) bool {
	x.AssertTruef(c != nil, "EqualCircles: c must not be nil")
	o, ok := other.(*Circle)
	if !ok || o == nil {
		return false
	}
	return c.center == o.center && c.radius == o.radius
}

// HashCircle combines the center hash with a bit-reinterpretation of the
// radius as 31*centerHash + radiusTerm. Both zero radii fold to the same
// term, so equal circles always hash identically.
func HashCircle(c *Circle) uint32 {
	x.AssertTruef(c != nil, "HashCircle: c must not be nil")
	return 31*HashPoint(c.center) + foldFloat64(c.radius)
}

// Hash returns a stable hash for any of the built-in shape kinds. Unknown
// kinds hash by their bounding box.
func Hash(s Shape) uint32 {
	x.AssertTruef(s != nil, "Hash: s must not be nil")
	switch v := s.(type) {
	case Point:
		return HashPoint(v)
	case Rect:
		return HashRect(v)
	case *Circle:
		return HashCircle(v)
	}
	return HashRect(s.BoundingBox())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
