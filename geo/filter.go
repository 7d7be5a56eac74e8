/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/dist"
	"github.com/hypermodeinc/spatial/shape"
)

// QueryType selects how candidate shapes are matched against a query shape.
type QueryType byte

const (
	// QueryTypeWithin matches candidates lying entirely inside the query shape.
	QueryTypeWithin QueryType = iota
	// QueryTypeContains matches candidates that entirely contain the query shape.
	QueryTypeContains
	// QueryTypeIntersects matches candidates sharing any point with the query shape.
	QueryTypeIntersects
	// QueryTypeNear matches candidates within a distance of a query point.
	QueryTypeNear
)

// Filter describes a spatial query: a query shape, the match semantics, and
// for near queries the maximum distance in meters.
type Filter struct {
	Type              QueryType
	Shape             shape.Shape
	MaxDistanceMeters float64
}

// QueryData is the prepared form of a filter, applied to each candidate shape
// the index lookup produced.
type QueryData struct {
	qshape shape.Shape
	qtype  QueryType
	ctx    *shape.Context
}

// QueryTokens returns the index tokens to look up for a filter, and the
// prepared query to apply to the candidates behind those tokens. Within and
// near queries probe the parent side of the index with the query's cover;
// contains queries probe the cover side with the query's parents; intersects
// queries probe both.
func QueryTokens(f *Filter, ctx *shape.Context) ([][]byte, *QueryData, error) {
	q := f.Shape
	if f.Type == QueryTypeNear {
		if f.MaxDistanceMeters <= 0 {
			return nil, nil, errors.Errorf("invalid max distance %v for a near query", f.MaxDistanceMeters)
		}
		pt, ok := q.(shape.Point)
		if !ok {
			return nil, nil, errors.Errorf("near query needs a point, got %T", q)
		}
		q = shape.NewCircle(pt, dist.DegreesFromMeters(f.MaxDistanceMeters), ctx)
	}

	parents, cover, err := cells(q)
	if err != nil {
		return nil, nil, err
	}

	qd := &QueryData{qshape: q, qtype: f.Type, ctx: ctx}
	switch f.Type {
	case QueryTypeWithin, QueryTypeNear:
		return toTokens(cover, parentPrefix), qd, nil
	case QueryTypeContains:
		return toTokens(parents, coverPrefix), qd, nil
	case QueryTypeIntersects:
		toks := toTokens(cover, parentPrefix)
		return append(toks, toTokens(parents, coverPrefix)...), qd, nil
	default:
		return nil, nil, errors.Errorf("unknown query type %d", f.Type)
	}
}

// Matches reports whether a candidate shape satisfies the query. The index
// lookup over-approximates; this is the exact test, driven by the relation
// engine.
func (q *QueryData) Matches(s shape.Shape) bool {
	rel := s.Relate(q.qshape, q.ctx)
	switch q.qtype {
	case QueryTypeWithin, QueryTypeNear:
		return rel == shape.Within || q.coincident(rel, s)
	case QueryTypeContains:
		return rel == shape.Contains || q.coincident(rel, s)
	case QueryTypeIntersects:
		return rel.Intersects()
	}
	return false
}

// coincident handles the zero-area corner: two equal points relate as
// Intersecting, yet each is within (and contains) the other.
func (q *QueryData) coincident(rel shape.Relation, s shape.Shape) bool {
	return rel == shape.Intersecting && !s.HasArea() && !q.qshape.HasArea()
}
