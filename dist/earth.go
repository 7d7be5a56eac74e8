/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package dist

import (
	"fmt"

	"github.com/golang/geo/s1"
)

// Helper functions for earth distances.

// EarthRadiusMeters is the radius of the earth in meters (in a spherical
// earth model).
const EarthRadiusMeters = 1000 * 6371

// Length denotes a length on Earth.
type Length float64

// Area denotes an area on Earth.
type Area float64

// EarthDistance converts an angle to a distance on earth in meters.
func EarthDistance(angle s1.Angle) Length {
	return Length(angle.Radians() * EarthRadiusMeters)
}

// EarthAngle converts a distance on earth in meters to an angle.
func EarthAngle(meters float64) s1.Angle {
	return s1.Angle(meters / EarthRadiusMeters)
}

// DegreesFromMeters converts a distance on earth in meters to the central
// angle in degrees used as circle radii by geodetic contexts.
func DegreesFromMeters(meters float64) float64 {
	return EarthAngle(meters).Degrees()
}

// MetersFromDegrees converts a central angle in degrees to a distance on
// earth in meters.
func MetersFromDegrees(degrees float64) float64 {
	return float64(EarthDistance(s1.Angle(rad(degrees))))
}

// EarthArea converts an area on the unit sphere in steradians to an area on
// earth in square meters.
func EarthArea(steradians float64) Area {
	return Area(steradians * EarthRadiusMeters * EarthRadiusMeters)
}

// String converts the length to human readable units.
func (l Length) String() string {
	if l > 1000 {
		return fmt.Sprintf("%.3f km", l/1000)
	} else if l < 1 {
		return fmt.Sprintf("%.3f cm", l*100)
	}
	return fmt.Sprintf("%.3f m", l)
}

// String converts the area to human readable units.
func (a Area) String() string {
	if a > 1e6 {
		return fmt.Sprintf("%.3f km²", a/1e6)
	} else if a < 1 {
		return fmt.Sprintf("%.3f cm²", a*1e4)
	}
	return fmt.Sprintf("%.3f m²", a)
}
