/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/spatial/dist"
	"github.com/hypermodeinc/spatial/shape"
)

func TestIndexCellsPoint(t *testing.T) {
	p := shape.NewPoint(-122.082506, 37.4249518)
	parents, cover, err := IndexCells(p)
	require.NoError(t, err)

	require.Len(t, parents, MaxCellLevel-MinCellLevel+1)
	require.Len(t, cover, 1)
	require.Equal(t, MinCellLevel, parents[0].Level())
	require.Equal(t, MaxCellLevel, parents[len(parents)-1].Level())
	require.Equal(t, "808c", parents[0].ToToken())
	require.Equal(t, "808fb9f81", parents[len(parents)-1].ToToken())

	// All levels are distinct and increasing.
	for i := 1; i < len(parents); i++ {
		require.Greater(t, parents[i].Level(), parents[i-1].Level())
	}
}

func TestIndexCellsCircle(t *testing.T) {
	ctx := dist.NewGeoContext()
	c := shape.NewCircle(shape.NewPoint(-122.082506, 37.4249518), dist.DegreesFromMeters(1000), ctx)

	parents, cover, err := IndexCells(c)
	require.NoError(t, err)
	require.NotEmpty(t, cover)
	require.LessOrEqual(t, len(cover), MaxCells)
	for _, cell := range cover {
		require.GreaterOrEqual(t, cell.Level(), MinCellLevel)
		require.LessOrEqual(t, cell.Level(), MaxCellLevel)
	}
	// Parents include every cover cell and their ancestors.
	require.GreaterOrEqual(t, len(parents), len(cover))
}

func TestIndexCellsRect(t *testing.T) {
	r := shape.NewRect(-122.1, -122.0, 37.4, 37.5)
	parents, cover, err := IndexCells(r)
	require.NoError(t, err)
	require.NotEmpty(t, cover)
	require.LessOrEqual(t, len(cover), MaxCells)
	require.GreaterOrEqual(t, len(parents), len(cover))
}

func TestIndexKeysPoint(t *testing.T) {
	p := shape.NewPoint(-122.082506, 37.4249518)
	keys, err := IndexKeys(p)
	require.NoError(t, err)

	// One parent key per level plus a single cover key.
	require.Len(t, keys, MaxCellLevel-MinCellLevel+2)
	var nparent, ncover int
	for _, k := range keys {
		switch {
		case strings.HasPrefix(string(k), parentPrefix):
			nparent++
		case strings.HasPrefix(string(k), coverPrefix):
			ncover++
		default:
			t.Fatalf("unexpected key prefix: %s", k)
		}
	}
	require.Equal(t, MaxCellLevel-MinCellLevel+1, nparent)
	require.Equal(t, 1, ncover)
}

func TestIndexKeysUnsupportedShape(t *testing.T) {
	_, err := IndexKeys(fakeShape{})
	require.Error(t, err)
}

// fakeShape is an unknown shape kind, as a future extension would add.
type fakeShape struct{}

func (fakeShape) Relate(other shape.Shape, ctx *shape.Context) shape.Relation {
	return other.Relate(fakeShape{}, ctx).Transpose()
}
func (fakeShape) BoundingBox() shape.Rect { return shape.NewRect(0, 0, 0, 0) }

func (fakeShape) HasArea() bool { return false }

func (fakeShape) Area(ctx *shape.Context) float64 { return 0 }

func (fakeShape) String() string { return "fake" }
