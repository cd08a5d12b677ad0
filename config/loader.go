/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	vfs "bennypowers.dev/vsspr/fs"
	"bennypowers.dev/vsspr/sprite"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "vsspr"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/vsspr.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem vfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}
		return LoadFile(filesystem, configPath)
	}

	return nil, nil
}

// LoadFile reads a config file, choosing the decoder by extension.
// JSON files may contain comments and trailing commas.
func LoadFile(filesystem vfs.FileSystem, configPath string) (*Config, error) {
	data, err := filesystem.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch ext := filepath.Ext(configPath); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
		}
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if _, err := sprite.ParseEmptyAnimationPolicy(cfg.EmptyAnimation); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cfg, nil
}

// LoadOrDefault returns config or defaults if not found or invalid.
// Callers that must report a broken config use LoadWithDefault.
func LoadOrDefault(filesystem vfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// LoadWithDefault returns the config under rootDir, defaults when there is
// none, or the error of a config that exists but cannot be loaded.
func LoadWithDefault(filesystem vfs.FileSystem, rootDir string) (*Config, error) {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return Default(), nil
	}
	return cfg, nil
}

// ExpandFiles expands glob patterns in Files and returns absolute paths.
func (c *Config) ExpandFiles(filesystem vfs.FileSystem, rootDir string) ([]string, error) {
	return ExpandPatterns(filesystem, rootDir, c.FilePaths())
}

// ExpandPatterns expands each pattern relative to rootDir. Patterns without
// glob characters are returned as-is, even if the file does not exist.
func ExpandPatterns(filesystem vfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}

	return result, nil
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem vfs.FileSystem, rootDir, pattern string) ([]string, error) {
	// Make pattern absolute if relative
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	// Not a glob, return the path directly (errors handled when file is read)
	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem vfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	// Get the relative pattern from baseDir
	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		// doublestar handles both simple and ** globs, plus {spr,ani} alternation
		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return matches, nil
}
