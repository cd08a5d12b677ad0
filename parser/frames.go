/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/parser/common"
	"bennypowers.dev/vsspr/resolver"
)

// alphaKeyword flags a frame that carries its own alpha mask.
const alphaKeyword = "true"

// buildFrames reads one frame descriptor per remaining line.
func buildFrames(doc *Document, lines *lineReader, res *resolver.Resolver, opts Options) []FrameDescriptor {
	var frames []FrameDescriptor

	for {
		line, ok := lines.next()
		if !ok {
			break
		}
		frame, ok := parseFrameLine(line, res)
		if !ok {
			continue
		}
		if frame.Crop == nil && doc.OverallCrop != nil {
			crop := *doc.OverallCrop
			frame.Crop = &crop
		}
		frames = append(frames, frame)
	}

	if doc.DeclaredFrames > 0 && len(frames) != doc.DeclaredFrames {
		opts.Diagnostics.Warnf(diagnostic.FrameCountMismatch, doc.File, 0, "",
			"declared %d frames but read %d", doc.DeclaredFrames, len(frames))
	}

	return frames
}

// parseFrameLine parses "<image> [true] [crop]". It reports false for
// lines without an image token.
func parseFrameLine(line numberedLine, res *resolver.Resolver) (FrameDescriptor, bool) {
	pathTok, rest := common.NextField(line.text)
	if pathTok == "" {
		return FrameDescriptor{}, false
	}

	frame := FrameDescriptor{
		Path: res.Resolve(pathTok),
		Line: line.num,
	}

	next, after := common.NextField(rest)
	if next == alphaKeyword {
		frame.HasAlphaMask = true
		frame.Crop = common.ParseCrop(after)
	} else {
		// Crop parameters may start right after the image path, so the
		// peeked token is part of the fragment.
		frame.Crop = common.ParseCrop(next + after)
	}

	return frame, true
}
