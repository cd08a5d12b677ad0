/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser parses Vega Strike sprite description files (.spr and .ani).
//
// Parsing is purely textual: the result is a Document naming the images a
// sprite needs, with paths resolved against the asset root. Loading those
// images is the job of package sprite.
package parser

import (
	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/fs"
	"bennypowers.dev/vsspr/parser/common"
	"bennypowers.dev/vsspr/variant"
)

// DefaultFrameDelayMS is the frame delay used when a file does not declare one.
const DefaultFrameDelayMS = 100

// Options configures sprite parsing.
type Options struct {
	// AssetRoot is the directory relative image paths are resolved against.
	AssetRoot string

	// AllowFractionalDelay accepts a floating-point delay on the frame count
	// line. By default the delay must be an integer literal, as the legacy
	// game loader requires, and "16.6" makes the line malformed.
	AllowFractionalDelay bool

	// Diagnostics receives non-fatal problems. May be nil.
	Diagnostics *diagnostic.List
}

// FrameDescriptor describes one animation frame before its image is loaded.
type FrameDescriptor struct {
	// Path is the resolved image path.
	Path string
	// HasAlphaMask is set when the frame line carries the "true" keyword.
	HasAlphaMask bool
	// Crop is the frame's own crop, or the overall crop it fell back to. Nil for no crop.
	Crop *common.CropRect
	// Line is the 1-based line number the frame was read from.
	Line int
}

// Document is the parsed, not yet materialized, content of a sprite file.
type Document struct {
	// File is the sprite file name used in diagnostics.
	File string

	Kind variant.Kind

	// StaticImagePath and AlphaMaskPath are resolved paths from a static header.
	StaticImagePath    string
	AlphaMaskPath      string
	HasStaticAlphaMask bool

	// DeclaredFrames is the frame count from the frame count line, zero if absent or malformed.
	DeclaredFrames int
	FrameDelayMS   float64

	// OverallCrop is the fallback crop declared on the frame count line.
	OverallCrop *common.CropRect

	// Frames lists animation frames in file order. Empty for static sprites.
	Frames []FrameDescriptor
}

// Parser parses sprite description files.
type Parser interface {
	// Parse parses sprite data. name identifies the file in diagnostics.
	Parse(data []byte, name string, opts Options) (*Document, error)

	// ParseFile reads and parses a sprite file.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Document, error)
}
