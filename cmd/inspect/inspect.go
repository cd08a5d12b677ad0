/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package inspect provides the inspect command for vsspr.
package inspect

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/vsspr/cmd/flags"
	"bennypowers.dev/vsspr/cmd/render"
	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/fs"
	"bennypowers.dev/vsspr/load"
)

// Cmd is the inspect cobra command.
var Cmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show what a sprite file loads as",
	Long: `Load a sprite file and print its kind, frame delay, frames and any
problems found while loading.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	return inspect(cmd.Context(), cmd.OutOrStdout(), fs.NewOSFileSystem(), ".", args[0], format)
}

func inspect(ctx context.Context, w io.Writer, filesystem fs.FileSystem, root, file, format string) error {
	cfg, err := flags.Config(filesystem, root)
	if err != nil {
		return err
	}

	diags := &diagnostic.List{}
	desc, err := load.Load(ctx, file, flags.LoadOptions(filesystem, root, cfg, diags))
	if err != nil {
		return err
	}

	return render.Format(w, format, render.Summarize(file, desc, diags.All()))
}
