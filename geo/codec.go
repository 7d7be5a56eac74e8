/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"encoding/binary"

	gj "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/hypermodeinc/spatial/shape"
)

// radiusProperty is the feature property carrying a circle radius in degrees.
// GeoJSON has no circle geometry; a circle travels as a point feature with
// this property attached.
const radiusProperty = "radius"

// FromGeom converts a go-geom geometry into a shape. Points map to points and
// axis-aligned rectangular polygons map to rects; everything else is
// unsupported by the relation engine.
func FromGeom(g geom.T) (shape.Shape, error) {
	switch v := g.(type) {
	case *geom.Point:
		return shape.NewPoint(v.X(), v.Y()), nil
	case *geom.Polygon:
		return rectFromPolygon(v)
	default:
		return nil, errors.Errorf("cannot convert geometry of type %T", v)
	}
}

// rectFromPolygon accepts a single closed ring of four axis-parallel edges.
func rectFromPolygon(p *geom.Polygon) (shape.Shape, error) {
	if p.NumLinearRings() != 1 {
		return nil, errors.Errorf("expected a single ring, got %d", p.NumLinearRings())
	}
	r := p.LinearRing(0)
	n := r.NumCoords()
	if n != 5 {
		return nil, errors.Errorf("expected a closed rectangular ring of 5 coords, got %d", n)
	}
	first, last := r.Coord(0), r.Coord(n-1)
	if first.X() != last.X() || first.Y() != last.Y() {
		return nil, errors.Errorf("ring is not closed")
	}
	minX, maxX := first.X(), first.X()
	minY, maxY := first.Y(), first.Y()
	for i := 1; i < n; i++ {
		prev, cur := r.Coord(i-1), r.Coord(i)
		if prev.X() != cur.X() && prev.Y() != cur.Y() {
			return nil, errors.Errorf("ring edge %d is not axis-parallel", i)
		}
		minX, maxX = min(minX, cur.X()), max(maxX, cur.X())
		minY, maxY = min(minY, cur.Y()), max(maxY, cur.Y())
	}
	return shape.NewRect(minX, maxX, minY, maxY), nil
}

// ToGeom converts a point or rect back into a go-geom geometry. Circles have
// no geometry representation; use ToFeature for those.
func ToGeom(s shape.Shape) (geom.T, error) {
	switch v := s.(type) {
	case shape.Point:
		return geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{v.X(), v.Y()}), nil
	case shape.Rect:
		ring := []geom.Coord{
			{v.MinX(), v.MinY()},
			{v.MaxX(), v.MinY()},
			{v.MaxX(), v.MaxY()},
			{v.MinX(), v.MaxY()},
			{v.MinX(), v.MinY()},
		}
		return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring}), nil
	default:
		return nil, errors.Errorf("cannot convert shape of type %T to a geometry", v)
	}
}

// ParseGeoJSON decodes a GeoJSON geometry or feature into a shape. Point
// features carrying a radius property decode as circles under ctx; ctx is
// otherwise unused.
func ParseGeoJSON(data []byte, ctx *shape.Context) (shape.Shape, error) {
	if f, err := gj.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		if f.Geometry.IsPoint() {
			if radius, err := f.PropertyFloat64(radiusProperty); err == nil {
				center := shape.NewPoint(f.Geometry.Point[0], f.Geometry.Point[1])
				return shape.NewCircle(center, radius, ctx), nil
			}
		}
		data, err = f.Geometry.MarshalJSON()
		if err != nil {
			return nil, err
		}
	}
	var g geom.T
	if err := geojson.Unmarshal(data, &g); err != nil {
		return nil, errors.Wrapf(err, "cannot parse geojson shape")
	}
	return FromGeom(g)
}

// MarshalGeoJSON encodes a point or rect as a GeoJSON geometry.
func MarshalGeoJSON(s shape.Shape) ([]byte, error) {
	g, err := ToGeom(s)
	if err != nil {
		return nil, err
	}
	return geojson.Marshal(g)
}

// ParseWKB decodes a little-endian WKB geometry into a shape.
func ParseWKB(data []byte) (shape.Shape, error) {
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse wkb shape")
	}
	return FromGeom(g)
}

// MarshalWKB encodes a point or rect as little-endian WKB.
func MarshalWKB(s shape.Shape) ([]byte, error) {
	g, err := ToGeom(s)
	if err != nil {
		return nil, err
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// ToFeature renders any shape as a GeoJSON feature. Circles become point
// features with the radius property set, matching what ParseGeoJSON accepts.
func ToFeature(s shape.Shape) (*gj.Feature, error) {
	switch v := s.(type) {
	case shape.Point:
		return gj.NewPointFeature([]float64{v.X(), v.Y()}), nil
	case shape.Rect:
		ring := [][]float64{
			{v.MinX(), v.MinY()},
			{v.MaxX(), v.MinY()},
			{v.MaxX(), v.MaxY()},
			{v.MinX(), v.MaxY()},
			{v.MinX(), v.MinY()},
		}
		return gj.NewPolygonFeature([][][]float64{ring}), nil
	case *shape.Circle:
		f := gj.NewPointFeature([]float64{v.Center().X(), v.Center().Y()})
		f.SetProperty(radiusProperty, v.Radius())
		return f, nil
	default:
		return nil, errors.Errorf("cannot render shape of type %T", v)
	}
}
