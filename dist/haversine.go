/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package dist

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/hypermodeinc/spatial/shape"
)

// Haversine is the great-circle metric on a spherical earth model. Points are
// (longitude, latitude) in degrees and all distances and radii are central
// angles in degrees; use EarthDistance/EarthAngle to convert to and from
// meters.
type Haversine struct{}

var _ shape.DistanceCalculator = Haversine{}

// NewGeoContext returns a geodetic context over the haversine sphere.
func NewGeoContext() *shape.Context {
	return shape.NewContext(Haversine{}, true)
}

// Distance returns the central angle between a and b, in degrees.
func (Haversine) Distance(a, b shape.Point) float64 {
	la := s2.LatLngFromDegrees(a.Y(), a.X())
	lb := s2.LatLngFromDegrees(b.Y(), b.X())
	return la.Distance(lb).Degrees()
}

// DistanceXY returns the central angle between a and (x, y), in degrees.
func (h Haversine) DistanceXY(a shape.Point, x, y float64) float64 {
	return h.Distance(a, shape.NewPoint(x, y))
}

// BoxForDistance returns the smallest latitude/longitude rectangle enclosing
// every point within d degrees of center. A box that reaches a pole spans the
// full longitude range, as does any radius of a hemisphere or more; otherwise
// the longitude delta follows from asin(sin d / cos lat), which accounts for
// meridian convergence. Longitudes are not wrapped at the antimeridian, so a
// center close to +-180 can produce bounds outside the world range; callers
// that index such boxes inherit that limitation.
func (Haversine) BoxForDistance(center shape.Point, d float64, ctx *shape.Context) shape.Rect {
	lon, lat := center.X(), center.Y()
	if d == 0 {
		return shape.NewRect(lon, lon, lat, lat)
	}
	if d >= 180 {
		return shape.NewRect(-180, 180, -90, 90)
	}
	latS, latN := lat-d, lat+d
	if latN >= 90 || latS <= -90 {
		return shape.NewRect(-180, 180, math.Max(latS, -90), math.Min(latN, 90))
	}
	lonDelta := deg(math.Asin(math.Sin(rad(d)) / math.Cos(rad(lat))))
	return shape.NewRect(lon-lonDelta, lon+lonDelta, latS, latN)
}

// Area returns the spherical cap area of the circle in square degrees.
func (Haversine) Area(c *shape.Circle) float64 {
	steradians := 2 * math.Pi * (1 - math.Cos(rad(c.Radius())))
	k := 180 / math.Pi
	return steradians * k * k
}

func rad(d float64) float64 { return d * math.Pi / 180 }

func deg(r float64) float64 { return r * 180 / math.Pi }
