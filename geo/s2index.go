/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package geo turns shapes into S2 cell covers and index tokens, and matches
// indexed shapes against query filters. It is the bridge between the shape
// relation engine and a token-based search index.
package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/shape"
)

const (
	// MinCellLevel is the smallest cell level (largest cell size) used by indexing.
	MinCellLevel = 5 // Approx 250km x 380km
	// MaxCellLevel is the largest cell level (smallest cell size) used by indexing.
	MaxCellLevel = 16 // Approx 120m x 180m
	// MaxCells is the maximum number of cells to use when covering regions.
	MaxCells = 18

	parentPrefix = "p/"
	coverPrefix  = "c/"
)

// IndexKeys returns the index tokens for a shape: one parent-prefixed token
// per ancestor cell and one cover-prefixed token per cover cell. Indexing
// parents and cover under different prefixes lets query time look up only the
// side it needs depending on the query type.
func IndexKeys(s shape.Shape) ([][]byte, error) {
	parents, cover, err := IndexCells(s)
	if err != nil {
		return nil, err
	}
	toks := toTokens(parents, parentPrefix)
	return append(toks, toTokens(cover, coverPrefix)...), nil
}

// IndexCells returns two cell unions for a shape. The first is the parents,
// which are all the cells up to the min level that contain the shape's cover.
// The second is the cover, the smallest set of cells required to cover the
// shape. Coordinates are taken as (longitude, latitude) degrees; only shapes
// built under a geodetic context index meaningfully.
func IndexCells(s shape.Shape) (parents, cover s2.CellUnion, err error) {
	switch v := s.(type) {
	case shape.Point:
		parents, cover = indexCellsForPoint(v, MinCellLevel, MaxCellLevel)
		return parents, cover, nil
	case shape.Rect:
		cover = coverRegion(rectRegion(v))
		return getParentCells(cover, MinCellLevel), cover, nil
	case *shape.Circle:
		cover = coverRegion(capFromCircle(v))
		return getParentCells(cover, MinCellLevel), cover, nil
	default:
		return nil, nil, errors.Errorf("cannot index shape of type %T", v)
	}
}

// capFromCircle converts a circle with a degree radius into an s2 cap.
func capFromCircle(c *shape.Circle) s2.Cap {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(c.Center().Y(), c.Center().X()))
	return s2.CapFromCenterAngle(center, s1.Angle(c.Radius())*s1.Degree)
}

// rectRegion converts an axis-aligned rectangle into an s2 lat/lng rect.
func rectRegion(r shape.Rect) s2.Rect {
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(r.MinY(), r.MinX()))
	return rect.AddPoint(s2.LatLngFromDegrees(r.MaxY(), r.MaxX()))
}

func coverRegion(r s2.Region) s2.CellUnion {
	rc := &s2.RegionCoverer{
		MinLevel: MinCellLevel,
		MaxLevel: MaxCellLevel,
		LevelMod: 0,
		MaxCells: MaxCells,
	}
	return rc.Covering(r)
}

// indexCellsForPoint creates one cell per level from minLevel to maxLevel,
// both inclusive, as the parents, with the maxLevel cell as the cover.
func indexCellsForPoint(p shape.Point, minLevel, maxLevel int) (s2.CellUnion, s2.CellUnion) {
	ll := s2.LatLngFromDegrees(p.Y(), p.X())
	c := s2.CellIDFromLatLng(ll)
	cells := make([]s2.CellID, maxLevel-minLevel+1)
	for l := minLevel; l <= maxLevel; l++ {
		cells[l-minLevel] = c.Parent(l)
	}
	return cells, []s2.CellID{c.Parent(maxLevel)}
}

func getParentCells(cu s2.CellUnion, minLevel int) s2.CellUnion {
	parents := make(map[s2.CellID]bool)
	for _, c := range cu {
		for l := c.Level(); l >= minLevel; l-- {
			parents[c.Parent(l)] = true
		}
	}
	cells := make([]s2.CellID, 0, len(parents))
	for k := range parents {
		cells = append(cells, k)
	}
	return cells
}

func toTokens(cu s2.CellUnion, prefix string) [][]byte {
	toks := make([][]byte, len(cu))
	for i, c := range cu {
		toks[i] = []byte(prefix + c.ToToken())
	}
	return toks
}
