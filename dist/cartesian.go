/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package dist implements the distance calculators the shape engine is
// parameterized over: euclidean for flat coordinate systems and a haversine
// sphere for geodetic ones.
package dist

import (
	"math"

	"github.com/hypermodeinc/spatial/shape"
)

// Cartesian is the euclidean metric on a flat plane.
type Cartesian struct{}

var _ shape.DistanceCalculator = Cartesian{}

// NewCartesianContext returns a flat-plane context, the usual choice for
// projected or abstract coordinates.
func NewCartesianContext() *shape.Context {
	return shape.NewContext(Cartesian{}, false)
}

// Distance returns the straight-line distance between a and b.
func (Cartesian) Distance(a, b shape.Point) float64 {
	return math.Hypot(b.X()-a.X(), b.Y()-a.Y())
}

// DistanceXY returns the straight-line distance from a to (x, y).
func (Cartesian) DistanceXY(a shape.Point, x, y float64) float64 {
	return math.Hypot(x-a.X(), y-a.Y())
}

// BoxForDistance returns the square of side 2d around center.
func (Cartesian) BoxForDistance(center shape.Point, d float64, ctx *shape.Context) shape.Rect {
	return shape.NewRect(center.X()-d, center.X()+d, center.Y()-d, center.Y()+d)
}

// Area returns pi*r^2.
func (Cartesian) Area(c *shape.Circle) float64 {
	return math.Pi * c.Radius() * c.Radius()
}
