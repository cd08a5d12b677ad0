/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version reports the vsspr build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X bennypowers.dev/vsspr/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion,omitempty"`
}

// Get returns the version string. Linker-provided values win over module
// build info; a plain "go build" from a checkout reports "dev".
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}

// Full returns the version with the commit, when known.
func Full() string {
	if GitCommit == "unknown" || GitCommit == "" {
		return Get()
	}
	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (commit: %s)", Get(), commit)
}

// Info returns detailed build information.
func Info() BuildInfo {
	bi := BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		bi.GoVersion = info.GoVersion
	}
	return bi
}
