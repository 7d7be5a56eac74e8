/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package shape

import (
	"fmt"
	"math"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Point is a zero-dimensional shape. The zero value is the origin.
type Point struct {
	x, y float64
}

// NewPoint returns the point at (x, y). In geodetic contexts x is longitude
// and y is latitude, in degrees.
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x ordinate (longitude for geodetic contexts).
func (p Point) X() float64 { return p.x }

// Y returns the y ordinate (latitude for geodetic contexts).
func (p Point) Y() float64 { return p.y }

// Relate classifies other against this point. Two points either coincide
// (Intersecting) or not (Disjoint); anything else is delegated to the other
// shape and transposed.
func (p Point) Relate(other Shape, ctx *Context) Relation {
	if q, ok := other.(Point); ok {
		if p == q {
			return Intersecting
		}
		return Disjoint
	}
	return other.Relate(p, ctx).Transpose()
}

// BoundingBox returns the degenerate rectangle covering just this point.
func (p Point) BoundingBox() Rect {
	return Rect{minX: p.x, maxX: p.x, minY: p.y, maxY: p.y}
}

// HasArea returns false; a point has no extent.
func (p Point) HasArea() bool { return false }

// Area returns 0.
func (p Point) Area(ctx *Context) float64 { return 0 }

func (p Point) String() string {
	return fmt.Sprintf("Pt(x=%v,y=%v)", p.x, p.y)
}

// HashPoint returns a hash over the point's coordinates. Equal points hash
// identically regardless of how they were constructed, so points (and shapes
// built from them) can back map and set keys. Each float64 is folded by its
// bit pattern, with both zeroes mapping to the same term.
func HashPoint(p Point) uint32 {
	h := foldFloat64(p.x)
	return 31*h + foldFloat64(p.y)
}

// foldFloat64 reduces a float64 to a 32-bit hash term via its bit pattern.
// Positive and negative zero fold identically.
func foldFloat64(f float64) uint32 {
	var bits uint64
	if f != 0 {
		bits = math.Float64bits(f)
	}
	return uint32(bits ^ (bits >> 32))
}
