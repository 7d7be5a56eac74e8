/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Command spatial relates, covers and filters shapes from the command line.
// Shapes are given as GeoJSON geometries or features, inline or as @file
// arguments; circles are point features with a radius property.
package main

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/dist"
	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/shape"
	"github.com/hypermodeinc/spatial/x"
)

var rootCmd = &cobra.Command{
	Use:   "spatial",
	Short: "spatial: relate shapes and generate index tokens",
	Long: `
spatial classifies how GeoJSON shapes relate to each other (disjoint,
intersects, within, contains) and produces the S2 index tokens a search
system would store or query for them.
`,
}

var rootConf = viper.New()

func main() {
	goflag.Parse()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("geo", true,
		"Treat coordinates as degrees on a spherical earth. Disable for flat cartesian coordinates.")
	rootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	x.Check(rootConf.BindPFlags(rootCmd.PersistentFlags()))

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	subcommands := []*x.SubCommand{&Relate, &Cover, &Filter}
	for _, sc := range subcommands {
		rootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Check(sc.Conf.BindPFlags(sc.Cmd.Flags()))
		x.Check(sc.Conf.BindPFlags(rootCmd.PersistentFlags()))
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Checkf(sc.Conf.ReadInConfig(), "reading config")
		}
	})
}

// newContext builds the spatial context a subcommand operates under.
func newContext(conf *viper.Viper) *shape.Context {
	if conf.GetBool("geo") {
		return dist.NewGeoContext()
	}
	return dist.NewCartesianContext()
}

// readShape parses a GeoJSON shape argument, reading it from a file when the
// argument starts with @.
func readShape(arg string, ctx *shape.Context) (shape.Shape, error) {
	data := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		var err error
		data, err = os.ReadFile(arg[1:])
		if err != nil {
			return nil, err
		}
	}
	return geo.ParseGeoJSON(data, ctx)
}
