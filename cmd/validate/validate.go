/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for vsspr.
package validate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/vsspr/cmd/flags"
	"bennypowers.dev/vsspr/config"
	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/fs"
	"bennypowers.dev/vsspr/load"
)

// ErrValidationFailed is returned when any file fails to load, or has
// warnings in strict mode.
var ErrValidationFailed = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate sprite files",
	Long: `Load sprite files and report problems. Arguments may be paths or globs
(including **); without arguments the files listed in the config are used.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

type options struct {
	strict bool
	quiet  bool
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	return validate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
		fs.NewOSFileSystem(), ".", args, options{strict: strict, quiet: quiet})
}

func validate(ctx context.Context, out, errOut io.Writer, filesystem fs.FileSystem, root string, args []string, opts options) error {
	cfg, err := flags.Config(filesystem, root)
	if err != nil {
		return err
	}
	opts.strict = opts.strict || cfg.Strict

	// Use config files if no args provided
	var files []string
	if len(args) > 0 {
		files, err = config.ExpandPatterns(filesystem, root, args)
	} else {
		files, err = cfg.ExpandFiles(filesystem, root)
	}
	if err != nil {
		return fmt.Errorf("error expanding files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	var failed int
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !opts.quiet {
			fmt.Fprintf(out, "Validating %s...\n", file)
		}

		diags := &diagnostic.List{}
		desc, err := load.Load(ctx, file, flags.LoadOptions(filesystem, root, cfg, diags))
		if err != nil {
			fmt.Fprintf(errOut, "Error in %s: %v\n", file, err)
			failed++
			continue
		}

		for _, d := range diags.All() {
			if d.Severity == diagnostic.SeverityWarning || !opts.quiet {
				fmt.Fprintf(errOut, "  %s: %s\n", d.Severity, d)
			}
		}
		if opts.strict && diags.HasWarnings() {
			failed++
			continue
		}

		if !opts.quiet {
			fmt.Fprintf(out, "  %s, %d frames, %d missing\n", desc.Kind, len(desc.Frames), desc.MissingCount())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrValidationFailed, failed, len(files))
	}

	if !opts.quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return nil
}
