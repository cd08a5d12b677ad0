/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver resolves image paths named in sprite files against an asset root.
package resolver

import (
	"fmt"
	"path/filepath"
)

// Resolve returns path unchanged when it is absolute, and otherwise joins it
// onto root.
func Resolve(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// Resolver resolves paths against a fixed asset root.
type Resolver struct {
	root string
}

// New creates a resolver for the given asset root. An empty root resolves
// relative paths against the working directory.
func New(root string) *Resolver {
	return &Resolver{root: root}
}

// Root returns the asset root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve resolves path against the asset root.
func (r *Resolver) Resolve(path string) string {
	return Resolve(path, r.root)
}

// AbsRoot makes a configured asset root absolute. Relative roots are taken
// relative to base; an empty root means base itself.
func AbsRoot(root, base string) (string, error) {
	if root == "" {
		root = base
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(base, root)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve asset root %q: %w", root, err)
	}
	return abs, nil
}
