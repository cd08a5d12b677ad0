/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flags reads the persistent CLI settings shared by all commands.
package flags

import (
	"github.com/spf13/viper"

	"bennypowers.dev/vsspr/config"
	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/fs"
	"bennypowers.dev/vsspr/load"
)

// AssetRoot returns --asset-root, or VSSPR_ASSET_ROOT.
func AssetRoot() string {
	return viper.GetString("asset-root")
}

// Config loads the file named by --config, or discovers one under root.
// A missing discovered config yields defaults; a missing named one, or any
// config that fails to load, is an error.
func Config(filesystem fs.FileSystem, root string) (*config.Config, error) {
	if path := viper.GetString("config"); path != "" {
		return config.LoadFile(filesystem, path)
	}
	return config.LoadWithDefault(filesystem, root)
}

// LoadOptions builds load.Options for a command run from root.
func LoadOptions(filesystem fs.FileSystem, root string, cfg *config.Config, diags *diagnostic.List) load.Options {
	return load.Options{
		Root:        root,
		AssetRoot:   AssetRoot(),
		FS:          filesystem,
		Config:      cfg,
		Diagnostics: diags,
	}
}
