/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/x"
)

// Cover prints the S2 index tokens for a shape.
var Cover x.SubCommand

func init() {
	Cover.Cmd = &cobra.Command{
		Use:   "cover <shape>",
		Short: "Print the S2 index tokens covering a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCover(args)
		},
	}
	Cover.EnvPrefix = "SPATIAL_COVER"
}

func runCover(args []string) error {
	ctx := newContext(Cover.Conf)
	s, err := readShape(args[0], ctx)
	if err != nil {
		return err
	}
	toks, err := geo.IndexKeys(s)
	if err != nil {
		return err
	}
	glog.V(2).Infof("Generated %d tokens for %v", len(toks), s)
	for _, tok := range toks {
		fmt.Println(string(tok))
	}
	return nil
}
