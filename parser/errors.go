/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import "errors"

// Sentinel errors for fatal parse failures.
var (
	// ErrIO indicates the sprite file could not be read.
	ErrIO = errors.New("cannot read sprite file")

	// ErrUnexpectedEOF indicates the file ended before a mandatory line.
	ErrUnexpectedEOF = errors.New("unexpected end of sprite file")

	// ErrMalformedFrameHeader indicates a static sprite whose frame count line is not "int int".
	ErrMalformedFrameHeader = errors.New("malformed frame count line")
)
