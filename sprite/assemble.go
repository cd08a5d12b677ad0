/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sprite

import (
	"fmt"

	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/parser"
	"bennypowers.dev/vsspr/variant"
)

// Assemble builds the final descriptor from a parsed document and its
// materialized frames.
//
// A static sprite never carries more than one frame: if it does, it is
// reclassified as an animation. A static sprite without frames is a failed
// load. An animation without frames follows opts.EmptyAnimation.
func Assemble(doc *parser.Document, frames []Frame, opts Options) (*Descriptor, error) {
	kind := doc.Kind

	switch {
	case kind != variant.Animation && len(frames) > 1:
		opts.Diagnostics.Infof(diagnostic.ReclassifiedAnimation, doc.File, 0, "",
			"identified as static but %d frames were loaded, forcing to animation", len(frames))
		kind = variant.Animation

	case kind != variant.Animation && len(frames) == 0:
		return nil, fmt.Errorf("%w: %s: no frames loaded", ErrStaticImageLoadFailed, doc.File)

	case kind == variant.Animation && len(frames) == 0:
		if opts.EmptyAnimation == EmptyAnimationError {
			return nil, fmt.Errorf("%w: %s", ErrEmptyAnimation, doc.File)
		}
		opts.Diagnostics.Warnf(diagnostic.EmptyAnimation, doc.File, 0, "",
			"animation declares no frame lines")
	}

	return &Descriptor{
		Kind:               kind,
		Frames:             frames,
		FrameDelayMS:       doc.FrameDelayMS,
		StaticImagePath:    doc.StaticImagePath,
		AlphaMaskPath:      doc.AlphaMaskPath,
		HasStaticAlphaMask: doc.HasStaticAlphaMask,
	}, nil
}
