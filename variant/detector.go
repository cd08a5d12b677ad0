/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package variant

import "bennypowers.dev/vsspr/parser/common"

// AnimationSuffix marks a first token that names an animation.
const AnimationSuffix = ".ani"

// NoMask is the second header token of a static sprite without an alpha mask.
const NoMask = "0"

// Header is the result of classifying the first line of a sprite file.
// ImageToken and MaskToken are raw, unresolved paths and are only
// meaningful for Static headers.
type Header struct {
	Kind       Kind
	ImageToken string
	MaskToken  string
	HasMask    bool
}

// Detect classifies a sprite file from its first line.
// Priority order:
// 1. first token ending in .ani
// 2. two floating-point tokens
// 3. otherwise static: image path plus "0" or an alpha-mask path
func Detect(line string) Header {
	t1, rest := common.NextField(line)
	t2, _ := common.NextField(rest)

	if common.EndsWith(t1, AnimationSuffix) {
		return Header{Kind: Animation}
	}

	if common.IsDouble(t1) && common.IsDouble(t2) {
		return Header{Kind: Animation}
	}

	h := Header{Kind: Static, ImageToken: t1}
	if t2 != NoMask {
		h.MaskToken = t2
		h.HasMask = true
	}
	return h
}
