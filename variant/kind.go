/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package variant classifies sprite description files as static sprites or animations.
package variant

import (
	"fmt"
	"strings"
)

// Kind represents which of the two sprite grammars a file follows.
type Kind int

const (
	// Unknown represents an unclassified file.
	Unknown Kind = iota

	// Static names one image plus an optional alpha mask.
	Static

	// Animation declares a list of frame images with shared timing.
	Animation
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Animation:
		return "animation"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// FromString returns the kind for a string representation.
func FromString(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "static", "spr":
		return Static, nil
	case "animation", "ani":
		return Animation, nil
	default:
		return Unknown, fmt.Errorf("unrecognized sprite kind: %s", s)
	}
}
