/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hypermodeinc/spatial/x"
)

// Relate classifies the relation between two shapes.
var Relate x.SubCommand

func init() {
	Relate.Cmd = &cobra.Command{
		Use:   "relate <shapeA> <shapeB>",
		Short: "Classify how shape A relates to shape B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelate(args)
		},
	}
	Relate.EnvPrefix = "SPATIAL_RELATE"
}

func runRelate(args []string) error {
	ctx := newContext(Relate.Conf)
	a, err := readShape(args[0], ctx)
	if err != nil {
		return err
	}
	b, err := readShape(args[1], ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", a.Relate(b, ctx))
	return nil
}
