/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package shape implements the core shape types and the relation engine used by
// the spatial index: points, axis-aligned rectangles and point-radius circles,
// related to each other under a pluggable distance calculator.
package shape

// Relation classifies how two shapes relate topologically. A relation is
// directional: a.Relate(b) == Within means a is inside b.
type Relation int

const (
	// Disjoint means the shapes share no point.
	Disjoint Relation = iota
	// Intersecting means the shapes overlap without either containing the other.
	Intersecting
	// Within means the first shape is entirely inside the second.
	Within
	// Contains means the first shape entirely contains the second.
	Contains
)

// Intersects returns true unless the shapes are disjoint. Contains and Within
// both imply intersection.
func (r Relation) Intersects() bool {
	return r != Disjoint
}

// Transpose flips a relation computed in reverse argument order: Within and
// Contains swap, Disjoint and Intersecting are their own transpose. Transpose
// is its own inverse. It must be applied exactly once when a shape answers a
// relate query by delegating to the other shape.
func (r Relation) Transpose() Relation {
	switch r {
	case Within:
		return Contains
	case Contains:
		return Within
	default:
		return r
	}
}

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "DISJOINT"
	case Intersecting:
		return "INTERSECTS"
	case Within:
		return "WITHIN"
	case Contains:
		return "CONTAINS"
	}
	return "UNKNOWN"
}
