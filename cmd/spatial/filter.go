/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/x"
)

// Filter applies a spatial query to candidate shapes and prints the matches.
var Filter x.SubCommand

func init() {
	Filter.Cmd = &cobra.Command{
		Use:   "filter <query> <candidate>...",
		Short: "Print the candidate shapes matching a spatial query",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(args)
		},
	}
	Filter.Cmd.Flags().String("type", "intersects",
		"Query type: within, contains, intersects or near.")
	Filter.Cmd.Flags().Float64("distance", 0,
		"Maximum distance in meters for near queries.")
	Filter.EnvPrefix = "SPATIAL_FILTER"
}

func queryType(name string) (geo.QueryType, error) {
	switch name {
	case "within":
		return geo.QueryTypeWithin, nil
	case "contains":
		return geo.QueryTypeContains, nil
	case "intersects":
		return geo.QueryTypeIntersects, nil
	case "near":
		return geo.QueryTypeNear, nil
	}
	return 0, errors.Errorf("unknown query type %q", name)
}

func runFilter(args []string) error {
	ctx := newContext(Filter.Conf)
	qt, err := queryType(Filter.Conf.GetString("type"))
	if err != nil {
		return err
	}
	q, err := readShape(args[0], ctx)
	if err != nil {
		return err
	}

	toks, qd, err := geo.QueryTokens(&geo.Filter{
		Type:              qt,
		Shape:             q,
		MaxDistanceMeters: Filter.Conf.GetFloat64("distance"),
	}, ctx)
	if err != nil {
		return err
	}
	glog.V(2).Infof("Query %v produced %d index tokens", q, len(toks))

	for _, arg := range args[1:] {
		s, err := readShape(arg, ctx)
		if err != nil {
			return err
		}
		if !qd.Matches(s) {
			continue
		}
		f, err := geo.ToFeature(s)
		if err != nil {
			return err
		}
		out, err := f.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}
