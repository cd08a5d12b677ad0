/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for sprite loading.
package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/vsspr/parser"
	"bennypowers.dev/vsspr/resolver"
	"bennypowers.dev/vsspr/sprite"
)

// Config represents the sprite tooling configuration.
type Config struct {
	// AssetRoot is the directory image paths are resolved against.
	// Relative roots are relative to the project root.
	AssetRoot string `yaml:"assetRoot" json:"assetRoot"`

	// Files specifies sprite files to validate (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Strict treats warnings as failures in validate.
	Strict bool `yaml:"strict" json:"strict"`

	// AllowFractionalDelay accepts "16.6" style delays on the frame count line.
	AllowFractionalDelay bool `yaml:"allowFractionalDelay" json:"allowFractionalDelay"`

	// LoadAlphaMask loads static alpha masks alongside their images.
	LoadAlphaMask bool `yaml:"loadAlphaMask" json:"loadAlphaMask"`

	// EmptyAnimation is "allow" (default) or "error".
	EmptyAnimation string `yaml:"emptyAnimation" json:"emptyAnimation"`
}

// FileSpec represents a sprite file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports ** globs).
	Path string `yaml:"path" json:"path"`

	// AssetRoot overrides the global asset root for this file.
	AssetRoot string `yaml:"assetRoot" json:"assetRoot"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		AssetRoot:      "",
		Files:          nil,
		EmptyAnimation: string(sprite.EmptyAnimationAllow),
	}
}

// EmptyAnimationPolicy returns the parsed policy, falling back to allow
// when the field is empty or invalid.
func (c *Config) EmptyAnimationPolicy() sprite.EmptyAnimationPolicy {
	p, err := sprite.ParseEmptyAnimationPolicy(c.EmptyAnimation)
	if err != nil {
		return sprite.EmptyAnimationAllow
	}
	return p
}

// AssetRootFor returns the absolute asset root for a sprite file.
// File-level overrides take precedence over the global root. A FileSpec
// matches when its path, or glob, names the same file relative to rootDir.
func (c *Config) AssetRootFor(path, rootDir string) (string, error) {
	root := c.AssetRoot
	target := resolver.Resolve(path, rootDir)
	for _, spec := range c.Files {
		if spec.AssetRoot == "" {
			continue
		}
		pattern := resolver.Resolve(spec.Path, rootDir)
		if pattern == target {
			root = spec.AssetRoot
			break
		}
		if matched, _ := doublestar.Match(filepath.ToSlash(pattern), filepath.ToSlash(target)); matched {
			root = spec.AssetRoot
			break
		}
	}
	return resolver.AbsRoot(root, rootDir)
}

// ParserOptions returns parser.Options with configuration applied.
func (c *Config) ParserOptions(assetRoot string) parser.Options {
	return parser.Options{
		AssetRoot:            assetRoot,
		AllowFractionalDelay: c.AllowFractionalDelay,
	}
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
