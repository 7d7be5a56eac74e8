/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/golang/geo/s2"

	"github.com/hypermodeinc/spatial/shape"
	"github.com/hypermodeinc/spatial/x"
)

// Covering a region is by far the most expensive step of token generation,
// and query shapes repeat, so covers are cached. Keys are the value hash of
// the shape; since equal shapes hash identically a re-built query shape still
// hits. The canonical string is kept in the entry to reject hash collisions.
type coverEntry struct {
	str     string
	parents s2.CellUnion
	cover   s2.CellUnion
}

var coverCache *ristretto.Cache[uint32, coverEntry]

func init() {
	var err error
	coverCache, err = ristretto.NewCache[uint32, coverEntry](&ristretto.Config[uint32, coverEntry]{
		// Covers are tiny; size the cache by entry count.
		NumCounters: 1e5,
		MaxCost:     1e4,
		BufferItems: 64,
		Cost: func(e coverEntry) int64 {
			return 1
		},
	})
	x.Check(err)
}

// cells returns the parent and cover cell unions for a shape, consulting the
// cover cache first.
func cells(s shape.Shape) (s2.CellUnion, s2.CellUnion, error) {
	key := shape.Hash(s)
	if e, ok := coverCache.Get(key); ok && e.str == s.String() {
		return e.parents, e.cover, nil
	}
	parents, cover, err := IndexCells(s)
	if err != nil {
		return nil, nil, err
	}
	coverCache.Set(key, coverEntry{str: s.String(), parents: parents, cover: cover}, 1)
	return parents, cover, nil
}
