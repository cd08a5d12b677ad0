/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sprite materializes parsed sprite documents into frame images.
package sprite

import (
	"image"
	"time"

	"bennypowers.dev/vsspr/parser/common"
	"bennypowers.dev/vsspr/variant"
)

// Frame is one materialized frame. A nil Image marks a frame whose source
// image failed to load; it keeps its position in the sequence.
type Frame struct {
	Image image.Image
	// Path is the resolved source image path.
	Path string
	// HasAlphaMask mirrors the "true" keyword of the frame line.
	HasAlphaMask bool
	// Crop is the crop that was applied, nil if the frame is uncropped.
	Crop *common.CropRect
}

// Missing reports whether the frame's image failed to load.
func (f Frame) Missing() bool {
	return f.Image == nil
}

// Descriptor is the loaded sprite, ready for a renderer.
type Descriptor struct {
	Kind variant.Kind

	// Frames is ordered as in the file. Static sprites have exactly one frame.
	Frames []Frame

	FrameDelayMS float64

	StaticImagePath    string
	AlphaMaskPath      string
	HasStaticAlphaMask bool

	// AlphaMask is the decoded static alpha mask, when requested and loadable.
	AlphaMask image.Image
}

// Frame returns the frame for an ever-increasing frame counter, wrapping
// around the sequence. It returns a Missing frame when there are no frames.
func (d *Descriptor) Frame(index int) Frame {
	n := len(d.Frames)
	if n == 0 {
		return Frame{}
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return d.Frames[i]
}

// FrameDelay returns the delay between frames.
func (d *Descriptor) FrameDelay() time.Duration {
	return time.Duration(d.FrameDelayMS * float64(time.Millisecond))
}

// Duration returns the time one pass through all frames takes.
func (d *Descriptor) Duration() time.Duration {
	return time.Duration(float64(len(d.Frames)) * d.FrameDelayMS * float64(time.Millisecond))
}

// MissingCount returns the number of frames whose image failed to load.
func (d *Descriptor) MissingCount() int {
	n := 0
	for _, f := range d.Frames {
		if f.Missing() {
			n++
		}
	}
	return n
}
