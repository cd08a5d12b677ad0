/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sprite

import (
	"context"
	"fmt"
	"image"
	"strings"

	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/imagery"
	"bennypowers.dev/vsspr/internal/logger"
	"bennypowers.dev/vsspr/parser"
	"bennypowers.dev/vsspr/variant"
)

// EmptyAnimationPolicy decides what an animation without frames turns into.
type EmptyAnimationPolicy string

const (
	// EmptyAnimationAllow returns a descriptor with no frames and a warning.
	EmptyAnimationAllow EmptyAnimationPolicy = "allow"

	// EmptyAnimationError fails with ErrEmptyAnimation.
	EmptyAnimationError EmptyAnimationPolicy = "error"
)

// ParseEmptyAnimationPolicy parses a policy name. Empty means allow.
func ParseEmptyAnimationPolicy(s string) (EmptyAnimationPolicy, error) {
	switch EmptyAnimationPolicy(strings.ToLower(s)) {
	case "", EmptyAnimationAllow:
		return EmptyAnimationAllow, nil
	case EmptyAnimationError:
		return EmptyAnimationError, nil
	default:
		return "", fmt.Errorf("unknown empty animation policy %q (want allow or error)", s)
	}
}

// Options configures materialization.
type Options struct {
	// Provider loads and crops images. Required.
	Provider imagery.Provider

	// Diagnostics receives non-fatal problems. May be nil.
	Diagnostics *diagnostic.List

	// LoadAlphaMask also loads the alpha mask named by a static sprite.
	LoadAlphaMask bool

	// EmptyAnimation selects the handling of animations without frames.
	// Defaults to EmptyAnimationAllow.
	EmptyAnimation EmptyAnimationPolicy
}

// Materialize loads the images of doc and assembles the descriptor.
//
// A static sprite whose image fails to load is a fatal error. Animation
// frames that fail to load become Missing frames in place, and crops that
// cannot be applied leave the frame uncropped; both are reported as
// diagnostics. ctx is checked between frame loads.
func Materialize(ctx context.Context, doc *parser.Document, opts Options) (*Descriptor, error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}

	var frames []Frame
	var mask image.Image

	if doc.Kind == variant.Animation {
		for _, fd := range doc.Frames {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			frames = append(frames, loadFrame(doc, fd, opts))
		}
	} else {
		img, err := opts.Provider.Load(doc.StaticImagePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrStaticImageLoadFailed, doc.StaticImagePath, err)
		}
		logger.Debug("%s: loaded static image %s", doc.File, doc.StaticImagePath)
		frames = append(frames, Frame{Image: img, Path: doc.StaticImagePath})

		if opts.LoadAlphaMask && doc.HasStaticAlphaMask {
			mask = loadMask(doc, opts)
		}
	}

	d, err := Assemble(doc, frames, opts)
	if err != nil {
		return nil, err
	}
	d.AlphaMask = mask
	return d, nil
}

// loadFrame loads and crops one animation frame. Failures never abort the load.
func loadFrame(doc *parser.Document, fd parser.FrameDescriptor, opts Options) Frame {
	frame := Frame{Path: fd.Path, HasAlphaMask: fd.HasAlphaMask}

	img, err := opts.Provider.Load(fd.Path)
	if err != nil {
		opts.Diagnostics.Warnf(diagnostic.FrameLoadFailed, doc.File, fd.Line, fd.Path,
			"cannot load animation frame %s: %v", fd.Path, err)
		return frame
	}
	frame.Image = img

	if fd.Crop == nil {
		return frame
	}

	bounds := img.Bounds()
	r := fd.Crop.PixelRect(bounds.Dx(), bounds.Dy())
	if r.Dx() <= 0 || r.Dy() <= 0 {
		opts.Diagnostics.Warnf(diagnostic.InvalidCropDimensions, doc.File, fd.Line, fd.Path,
			"invalid crop %s for %dx%d frame %s, not cropping", fd.Crop, bounds.Dx(), bounds.Dy(), fd.Path)
		return frame
	}

	cropped, err := opts.Provider.Crop(img, r.Add(bounds.Min))
	if err != nil {
		opts.Diagnostics.Warnf(diagnostic.CropFailed, doc.File, fd.Line, fd.Path,
			"cannot crop frame %s to %v: %v", fd.Path, r, err)
		return frame
	}
	crop := *fd.Crop
	frame.Image = cropped
	frame.Crop = &crop
	return frame
}

// loadMask loads the static alpha mask. A mask that fails to load is
// reported and left nil.
func loadMask(doc *parser.Document, opts Options) image.Image {
	img, err := opts.Provider.Load(doc.AlphaMaskPath)
	if err != nil {
		opts.Diagnostics.Warnf(diagnostic.AlphaMaskLoadFailed, doc.File, 1, doc.AlphaMaskPath,
			"cannot load alpha mask %s: %v", doc.AlphaMaskPath, err)
		return nil
	}
	return img
}
