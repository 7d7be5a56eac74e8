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

func TestHaversineDistance(t *testing.T) {
	h := Haversine{}

	// A quarter of a meridian.
	require.InDelta(t, 90, h.Distance(shape.NewPoint(0, 0), shape.NewPoint(0, 90)), 1e-9)
	// Quarter of the equator.
	require.InDelta(t, 90, h.Distance(shape.NewPoint(0, 0), shape.NewPoint(90, 0)), 1e-9)
	// Antipodal points.
	require.InDelta(t, 180, h.Distance(shape.NewPoint(0, 0), shape.NewPoint(180, 0)), 1e-9)
	require.Equal(t, 0.0, h.Distance(shape.NewPoint(10, 20), shape.NewPoint(10, 20)))

	// One degree of longitude shrinks with latitude.
	atEquator := h.Distance(shape.NewPoint(0, 0), shape.NewPoint(1, 0))
	at60 := h.Distance(shape.NewPoint(0, 60), shape.NewPoint(1, 60))
	require.InDelta(t, 1, atEquator, 1e-9)
	require.Less(t, at60, 0.51)
	require.Greater(t, at60, 0.49)
}

func TestHaversineDistanceXYAgrees(t *testing.T) {
	h := Haversine{}
	a := shape.NewPoint(-122.082506, 37.4249518)
	b := shape.NewPoint(2.349014, 48.864716)
	require.Equal(t, h.Distance(a, b), h.DistanceXY(a, b.X(), b.Y()))
}

func TestHaversineBoxForDistance(t *testing.T) {
	h := Haversine{}
	ctx := NewGeoContext()

	// At the equator the box is the simple square.
	box := h.BoxForDistance(shape.NewPoint(0, 0), 10, ctx)
	require.InDelta(t, -10, box.MinX(), 1e-9)
	require.InDelta(t, 10, box.MaxX(), 1e-9)
	require.InDelta(t, -10, box.MinY(), 1e-9)
	require.InDelta(t, 10, box.MaxY(), 1e-9)

	// At higher latitudes the box widens in longitude.
	box = h.BoxForDistance(shape.NewPoint(0, 60), 10, ctx)
	wantDelta := 180 / math.Pi * math.Asin(math.Sin(rad(10))/math.Cos(rad(60)))
	require.InDelta(t, -wantDelta, box.MinX(), 1e-9)
	require.InDelta(t, wantDelta, box.MaxX(), 1e-9)
	require.InDelta(t, 50, box.MinY(), 1e-9)
	require.InDelta(t, 70, box.MaxY(), 1e-9)
	require.Greater(t, wantDelta, 10.0)

	// A box reaching a pole spans all longitudes.
	box = h.BoxForDistance(shape.NewPoint(0, 80), 15, ctx)
	require.Equal(t, shape.NewRect(-180, 180, 65, 90), box)

	// A hemisphere or more covers the world.
	box = h.BoxForDistance(shape.NewPoint(45, 45), 180, ctx)
	require.Equal(t, shape.NewRect(-180, 180, -90, 90), box)

	// Zero distance collapses to the point.
	box = h.BoxForDistance(shape.NewPoint(5, 6), 0, ctx)
	require.Equal(t, shape.NewRect(5, 5, 6, 6), box)
}

func TestHaversineCircleBBox(t *testing.T) {
	ctx := NewGeoContext()
	c := shape.NewCircle(shape.NewPoint(0, 60), 10, ctx)
	// The cached box is the metric's box, wider than the naive square.
	require.Greater(t, c.BoundingBox().MaxX(), 10.0)
	require.InDelta(t, 70, c.BoundingBox().MaxY(), 1e-9)
}

func TestHaversineArea(t *testing.T) {
	h := Haversine{}
	ctx := NewGeoContext()

	// A hemisphere is half the sphere's surface, in square degrees.
	hemi := shape.NewCircle(shape.NewPoint(0, 0), 90, ctx)
	sphere := 4 * math.Pi * (180 / math.Pi) * (180 / math.Pi)
	require.InDelta(t, sphere/2, h.Area(hemi), 1e-6)

	// Small caps approach the flat pi*r^2.
	small := shape.NewCircle(shape.NewPoint(0, 0), 0.01, ctx)
	require.InDelta(t, math.Pi*0.0001, h.Area(small), 1e-7)
}

func TestEarthConversions(t *testing.T) {
	require.InDelta(t, 111194.9, MetersFromDegrees(1), 1)
	require.InDelta(t, 1, DegreesFromMeters(MetersFromDegrees(1)), 1e-12)
	require.InDelta(t, float64(EarthDistance(EarthAngle(5000))), 5000, 1e-9)
	require.Equal(t, "1.500 km", Length(1500).String())
	require.Equal(t, "2.000 m", Length(2).String())
	require.Equal(t, "50.000 cm", Length(0.5).String())

	// Half the sphere in steradians is 2*pi.
	hemi := EarthArea(2 * math.Pi)
	require.InDelta(t, 2*math.Pi*EarthRadiusMeters*EarthRadiusMeters, float64(hemi), 1)
	require.Equal(t, "2.000 m²", Area(2).String())
}

func TestGeoContext(t *testing.T) {
	ctx := NewGeoContext()
	require.True(t, ctx.IsGeo())
	require.Equal(t, shape.NewRect(-180, 180, -90, 90), ctx.WorldBounds())
}
