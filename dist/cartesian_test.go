/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/spatial/shape"
)

func TestCartesianDistance(t *testing.T) {
	c := Cartesian{}
	require.Equal(t, 5.0, c.Distance(shape.NewPoint(0, 0), shape.NewPoint(3, 4)))
	require.Equal(t, 0.0, c.Distance(shape.NewPoint(2, 2), shape.NewPoint(2, 2)))
	require.Equal(t, 5.0, c.DistanceXY(shape.NewPoint(0, 0), 3, 4))
}

func TestCartesianDistanceXYAgrees(t *testing.T) {
	c := Cartesian{}
	pts := []shape.Point{
		shape.NewPoint(0, 0),
		shape.NewPoint(-3.5, 7.25),
		shape.NewPoint(1e6, -1e6),
	}
	for _, a := range pts {
		for _, b := range pts {
			require.Equal(t, c.Distance(a, b), c.DistanceXY(a, b.X(), b.Y()))
		}
	}
}

func TestCartesianBoxForDistance(t *testing.T) {
	ctx := NewCartesianContext()
	box := Cartesian{}.BoxForDistance(shape.NewPoint(1, 2), 3, ctx)
	require.Equal(t, shape.NewRect(-2, 4, -1, 5), box)

	// Zero distance collapses to the point.
	box = Cartesian{}.BoxForDistance(shape.NewPoint(1, 2), 0, ctx)
	require.Equal(t, shape.NewRect(1, 1, 2, 2), box)
}

func TestCartesianArea(t *testing.T) {
	ctx := NewCartesianContext()
	c := shape.NewCircle(shape.NewPoint(0, 0), 2, ctx)
	require.InDelta(t, 4*math.Pi, Cartesian{}.Area(c), 1e-9)
}

func TestCartesianContext(t *testing.T) {
	ctx := NewCartesianContext()
	require.False(t, ctx.IsGeo())
	require.True(t, math.IsInf(ctx.WorldBounds().MaxX(), 1))
}
