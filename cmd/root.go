/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for vsspr.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/vsspr/cmd/export"
	"bennypowers.dev/vsspr/cmd/inspect"
	"bennypowers.dev/vsspr/cmd/validate"
	"bennypowers.dev/vsspr/cmd/version"
	"bennypowers.dev/vsspr/internal/logger"
)

// EnvPrefix prefixes environment variables that override persistent flags,
// e.g. VSSPR_ASSET_ROOT.
const EnvPrefix = "VSSPR"

var rootCmd = &cobra.Command{
	Use:   "vsspr",
	Short: "Load and check Vega Strike sprite files",
	Long: `vsspr loads legacy Vega Strike sprite descriptions (.spr static sprites and
.ani animations), resolves their frame images, and reports what it found.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringP("asset-root", "r", "", "Directory image paths are resolved against")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: .config/vsspr.{yaml,yml,json})")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, silent)")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"asset-root", "config", "log-level"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(inspect.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func setup(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)
	return nil
}
