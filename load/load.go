/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading sprites.
package load

import (
	"context"
	"fmt"
	"path/filepath"

	"bennypowers.dev/vsspr/config"
	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/fs"
	"bennypowers.dev/vsspr/imagery"
	"bennypowers.dev/vsspr/parser"
	"bennypowers.dev/vsspr/resolver"
	"bennypowers.dev/vsspr/sprite"
)

// Options configures how sprites are loaded.
type Options struct {
	// Root is the project directory: relative sprite paths and the config
	// file are looked up from here. Defaults to the working directory.
	Root string

	// AssetRoot is the directory image paths are resolved against.
	// Takes precedence over config file if set. Relative values are
	// relative to Root.
	AssetRoot string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Provider loads images. Defaults to decoding from FS.
	Provider imagery.Provider

	// Config overrides config file discovery when set.
	Config *config.Config

	// AllowFractionalDelay accepts fractional frame delays.
	// Either this or the config file setting enables it.
	AllowFractionalDelay bool

	// LoadAlphaMask loads static alpha masks.
	// Either this or the config file setting enables it.
	LoadAlphaMask bool

	// EmptyAnimation overrides the config file policy when set.
	EmptyAnimation sprite.EmptyAnimationPolicy

	// Diagnostics receives non-fatal problems. May be nil.
	Diagnostics *diagnostic.List
}

// Load loads a sprite description file and materializes its frames.
//
// The loading process:
//  1. Optionally loads config from .config/vsspr.yaml under Root
//  2. Applies Options values (they take precedence over config)
//  3. Parses the sprite file, resolving image paths against the asset root
//  4. Loads (and crops) every frame image
//  5. Returns the assembled *sprite.Descriptor
//
// Fatal problems are returned as errors; anything else is recorded in
// Options.Diagnostics and the best-effort descriptor is returned.
func Load(ctx context.Context, path string, opts Options) (*sprite.Descriptor, error) {
	// Set up filesystem
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	// Ensure root is absolute
	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	// Load config file (optional - not an error if missing, but an error if broken)
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.LoadWithDefault(filesystem, root)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Build effective configuration (Options take precedence)
	var assetRoot string
	var err error
	if opts.AssetRoot != "" {
		assetRoot, err = resolver.AbsRoot(opts.AssetRoot, root)
	} else {
		assetRoot, err = cfg.AssetRootFor(path, root)
	}
	if err != nil {
		return nil, err
	}

	emptyPolicy := opts.EmptyAnimation
	if emptyPolicy == "" {
		emptyPolicy = cfg.EmptyAnimationPolicy()
	}

	provider := opts.Provider
	if provider == nil {
		provider = imagery.NewFSProvider(filesystem)
	}

	spritePath := resolver.Resolve(path, root)

	popts := cfg.ParserOptions(assetRoot)
	popts.AllowFractionalDelay = popts.AllowFractionalDelay || opts.AllowFractionalDelay
	popts.Diagnostics = opts.Diagnostics

	doc, err := parser.NewSPRParser().ParseFile(filesystem, spritePath, popts)
	if err != nil {
		return nil, err
	}

	return sprite.Materialize(ctx, doc, sprite.Options{
		Provider:       provider,
		Diagnostics:    opts.Diagnostics,
		LoadAlphaMask:  opts.LoadAlphaMask || cfg.LoadAlphaMask,
		EmptyAnimation: emptyPolicy,
	})
}

// Parse loads the sprite at path from the OS filesystem, resolving image
// paths against assetRoot. Non-fatal problems are appended to diags.
func Parse(ctx context.Context, path, assetRoot string, diags *diagnostic.List) (*sprite.Descriptor, error) {
	return Load(ctx, path, Options{
		AssetRoot:   assetRoot,
		Config:      config.Default(),
		Diagnostics: diags,
	})
}
