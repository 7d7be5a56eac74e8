/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package shape

import (
	"fmt"

	"github.com/hypermodeinc/spatial/x"
)

// Rect is an axis-aligned rectangle. Degenerate rectangles (zero width or
// height, down to a single point) are valid shapes and are handled by every
// relate algorithm without special cases.
type Rect struct {
	minX, maxX, minY, maxY float64
}

// NewRect returns the rectangle [minX, maxX] x [minY, maxY]. The bounds must
// be ordered; unordered bounds are a caller bug.
func NewRect(minX, maxX, minY, maxY float64) Rect {
	x.AssertTruef(minX <= maxX, "rect bounds out of order: minX %v > maxX %v", minX, maxX)
	x.AssertTruef(minY <= maxY, "rect bounds out of order: minY %v > maxY %v", minY, maxY)
	return Rect{minX: minX, maxX: maxX, minY: minY, maxY: maxY}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.minX }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.maxX }

// MinY returns the bottom edge.
func (r Rect) MinY() float64 { return r.minY }

// MaxY returns the top edge.
func (r Rect) MaxY() float64 { return r.maxY }

// Width returns maxX - minX.
func (r Rect) Width() float64 { return r.maxX - r.minX }

// Height returns maxY - minY.
func (r Rect) Height() float64 { return r.maxY - r.minY }

// ContainsXY reports whether (px, py) lies on or inside the rectangle.
func (r Rect) ContainsXY(px, py float64) bool {
	return px >= r.minX && px <= r.maxX && py >= r.minY && py <= r.maxY
}

// Relate classifies other against this rectangle. Points and rectangles are
// handled directly; any other shape kind is delegated and transposed.
func (r Rect) Relate(other Shape, ctx *Context) Relation {
	switch o := other.(type) {
	case Point:
		if r.ContainsXY(o.x, o.y) {
			return Contains
		}
		return Disjoint
	case Rect:
		return r.relateRect(o)
	default:
		return other.Relate(r, ctx).Transpose()
	}
}

// relateRect combines the per-axis range relations. Disjoint on either axis
// makes the rectangles disjoint; agreement on both axes is the answer; a
// shared axis span breaks the within/contains tie; everything else is a
// partial overlap.
func (r Rect) relateRect(o Rect) Relation {
	ry := relateRange(r.minY, r.maxY, o.minY, o.maxY)
	if ry == Disjoint {
		return Disjoint
	}
	rx := relateRange(r.minX, r.maxX, o.minX, o.maxX)
	if rx == Disjoint {
		return Disjoint
	}
	if rx == ry {
		return rx
	}
	if r.minX == o.minX && r.maxX == o.maxX {
		return ry
	}
	if r.minY == o.minY && r.maxY == o.maxY {
		return rx
	}
	return Intersecting
}

// relateRange relates the external range [extMin, extMax] to the internal
// range [intMin, intMax]. Equal ranges classify as Contains: the external
// range is contained, which relateRect's tie rules rely on.
func relateRange(intMin, intMax, extMin, extMax float64) Relation {
	if extMin > intMax || extMax < intMin {
		return Disjoint
	}
	if extMin >= intMin && extMax <= intMax {
		return Contains
	}
	if extMin <= intMin && extMax >= intMax {
		return Within
	}
	return Intersecting
}

// BoundingBox returns the rectangle itself.
func (r Rect) BoundingBox() Rect { return r }

// HasArea reports whether both width and height are non-zero.
func (r Rect) HasArea() bool {
	return r.Width() > 0 && r.Height() > 0
}

// Area returns width times height. The metric is not consulted; rectangles
// are axis-aligned in coordinate space under either geometry.
func (r Rect) Area(ctx *Context) float64 {
	return r.Width() * r.Height()
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(minX=%v,maxX=%v,minY=%v,maxY=%v)", r.minX, r.maxX, r.minY, r.maxY)
}

// HashRect returns a hash over the rectangle's bounds, folding each bound the
// same way HashPoint folds coordinates.
func HashRect(r Rect) uint32 {
	h := foldFloat64(r.minX)
	h = 31*h + foldFloat64(r.maxX)
	h = 31*h + foldFloat64(r.minY)
	return 31*h + foldFloat64(r.maxY)
}
