/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strconv"

	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/internal/logger"
	"bennypowers.dev/vsspr/parser/common"
	"bennypowers.dev/vsspr/variant"
)

// applyFrameHeader parses the "<frames> <delay_ms> [crop]" line into doc.
//
// The line is authoritative for classification: a static guess survives
// only when it declares zero frames. A malformed line is fatal for static
// sprites; animations fall back to zero declared frames and the default delay.
func applyFrameHeader(doc *Document, line numberedLine, opts Options) error {
	numTok, rest := common.NextField(line.text)
	delayTok, rest := common.NextField(rest)

	if !common.IsInteger(numTok) || !validDelay(delayTok, opts) {
		return malformedFrameHeader(doc, line, opts,
			fmt.Sprintf("frame count line %q is not in 'int int' format", line.text), nil)
	}

	// Well-formed tokens can still overflow.
	num, err := strconv.Atoi(numTok)
	if err != nil {
		return malformedFrameHeader(doc, line, opts, fmt.Sprintf("frame count %q out of range", numTok), err)
	}
	delay, err := strconv.ParseFloat(delayTok, 64)
	if err != nil {
		return malformedFrameHeader(doc, line, opts, fmt.Sprintf("frame delay %q out of range", delayTok), err)
	}
	doc.DeclaredFrames = num
	doc.FrameDelayMS = delay
	logger.Debug("%s:%d: declared frames=%d, delay=%gms", doc.File, line.num, num, delay)

	if crop := common.ParseCrop(rest); crop != nil {
		doc.OverallCrop = crop
		logger.Debug("%s:%d: overall crop %s", doc.File, line.num, crop)
	}

	if doc.Kind != variant.Animation && num == 0 {
		doc.Kind = variant.Static
		return nil
	}
	doc.Kind = variant.Animation
	return nil
}

func validDelay(tok string, opts Options) bool {
	if opts.AllowFractionalDelay {
		return common.IsDouble(tok)
	}
	return common.IsInteger(tok)
}

// malformedFrameHeader fails a static sprite, or degrades an animation to
// zero declared frames and the default delay.
func malformedFrameHeader(doc *Document, line numberedLine, opts Options, msg string, cause error) error {
	if doc.Kind != variant.Animation {
		if cause != nil {
			return fmt.Errorf("%w: %s:%d: %s: %w", ErrMalformedFrameHeader, doc.File, line.num, msg, cause)
		}
		return fmt.Errorf("%w: %s:%d: %s", ErrMalformedFrameHeader, doc.File, line.num, msg)
	}
	opts.Diagnostics.Warnf(diagnostic.MalformedFrameHeader, doc.File, line.num, "",
		"%s, using %d ms", msg, DefaultFrameDelayMS)
	doc.DeclaredFrames = 0
	doc.FrameDelayMS = DefaultFrameDelayMS
	return nil
}
