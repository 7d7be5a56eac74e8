/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SubCommand ties a cobra command to the viper instance holding its
// configuration, so flag, environment and config-file values resolve through
// one place.
type SubCommand struct {
	Cmd       *cobra.Command
	Conf      *viper.Viper
	EnvPrefix string
}
