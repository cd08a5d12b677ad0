/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strings"

	"bennypowers.dev/vsspr/fs"
	"bennypowers.dev/vsspr/internal/logger"
	"bennypowers.dev/vsspr/resolver"
	"bennypowers.dev/vsspr/variant"
)

// SPRParser parses the line-oriented .spr/.ani sprite grammar.
type SPRParser struct{}

// NewSPRParser creates a new sprite file parser.
func NewSPRParser() *SPRParser {
	return &SPRParser{}
}

// ParseFile reads path from filesystem and parses it.
func (p *SPRParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrIO, path, err)
	}
	return p.Parse(data, path, opts)
}

// Parse parses sprite data.
//
// Line 1 decides between the static and animation grammars. A static file
// must carry line 2, which is consumed and ignored. The next line declares
// the frame count and delay and may flip the classification to animation.
// Animations then read one frame per remaining line.
func (p *SPRParser) Parse(data []byte, name string, opts Options) (*Document, error) {
	lines := newLineReader(string(data))
	res := resolver.New(opts.AssetRoot)

	doc := &Document{
		File:         name,
		FrameDelayMS: DefaultFrameDelayMS,
	}

	// A missing first line parses as an empty one, which classifies as
	// static and then fails on the mandatory second line.
	first, _ := lines.next()
	header := variant.Detect(first.text)
	doc.Kind = header.Kind
	if header.Kind == variant.Static {
		doc.StaticImagePath = res.Resolve(header.ImageToken)
		if header.HasMask {
			doc.HasStaticAlphaMask = true
			doc.AlphaMaskPath = res.Resolve(header.MaskToken)
		}
		logger.Debug("%s: static sprite %s", name, doc.StaticImagePath)

		if _, ok := lines.next(); !ok {
			return nil, fmt.Errorf("%w: %s ended before line 2", ErrUnexpectedEOF, name)
		}
	} else {
		logger.Debug("%s: animation header", name)
	}

	countLine, ok := lines.next()
	if !ok {
		return nil, fmt.Errorf("%w: %s is missing the frame count line", ErrUnexpectedEOF, name)
	}
	if err := applyFrameHeader(doc, countLine, opts); err != nil {
		return nil, err
	}

	if doc.Kind == variant.Animation {
		doc.Frames = buildFrames(doc, lines, res, opts)
	}

	return doc, nil
}

// numberedLine is a line of input with its 1-based line number.
type numberedLine struct {
	text string
	num  int
}

// lineReader yields newline-terminated lines. A final line without a
// terminating newline is still a line; the empty remainder after a
// trailing newline is not.
type lineReader struct {
	lines []string
	pos   int
}

func newLineReader(s string) *lineReader {
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &lineReader{lines: lines}
}

func (r *lineReader) next() (numberedLine, bool) {
	if r.pos >= len(r.lines) {
		return numberedLine{}, false
	}
	l := numberedLine{text: r.lines[r.pos], num: r.pos + 1}
	r.pos++
	return l, true
}
