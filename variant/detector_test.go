/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package variant_test

import (
	"testing"

	"bennypowers.dev/vsspr/variant"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected variant.Header
	}{
		{
			name:     "ani suffix",
			line:     "explosion.ani",
			expected: variant.Header{Kind: variant.Animation},
		},
		{
			name:     "ani suffix with trailing tokens",
			line:     "sprites/boom.ani 12 whatever",
			expected: variant.Header{Kind: variant.Animation},
		},
		{
			name:     "two doubles",
			line:     "0.5 0.25",
			expected: variant.Header{Kind: variant.Animation},
		},
		{
			name:     "two integers count as doubles",
			line:     "1 1",
			expected: variant.Header{Kind: variant.Animation},
		},
		{
			name:     "static without mask",
			line:     "bg.png 0",
			expected: variant.Header{Kind: variant.Static, ImageToken: "bg.png"},
		},
		{
			name: "static with mask",
			line: "ship.png ship_alpha.png",
			expected: variant.Header{
				Kind:       variant.Static,
				ImageToken: "ship.png",
				MaskToken:  "ship_alpha.png",
				HasMask:    true,
			},
		},
		{
			name: "one double is not enough",
			line: "0.5 mask.png",
			expected: variant.Header{
				Kind:       variant.Static,
				ImageToken: "0.5",
				MaskToken:  "mask.png",
				HasMask:    true,
			},
		},
		{
			name:     "uppercase suffix is not an animation",
			line:     "BOOM.ANI 0",
			expected: variant.Header{Kind: variant.Static, ImageToken: "BOOM.ANI"},
		},
		{
			name:     "leading whitespace",
			line:     "   \tbg.png    0   ",
			expected: variant.Header{Kind: variant.Static, ImageToken: "bg.png"},
		},
		{
			name: "single token has a mask flag with empty path",
			line: "bg.png",
			expected: variant.Header{
				Kind:       variant.Static,
				ImageToken: "bg.png",
				HasMask:    true,
			},
		},
		{
			name:     "empty line",
			line:     "",
			expected: variant.Header{Kind: variant.Static, HasMask: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := variant.Detect(tt.line)
			if got != tt.expected {
				t.Errorf("Detect(%q) = %+v, want %+v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     variant.Kind
		expected string
	}{
		{variant.Unknown, "unknown"},
		{variant.Static, "static"},
		{variant.Animation, "animation"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected variant.Kind
		wantErr  bool
	}{
		{"static", variant.Static, false},
		{"spr", variant.Static, false},
		{"Animation", variant.Animation, false},
		{"ani", variant.Animation, false},
		{"movie", variant.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := variant.FromString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("FromString(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
