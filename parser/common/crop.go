/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package common

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
)

// Crop parameter keys recognized in a crop fragment.
const (
	KeyMinS = "mins"
	KeyMinT = "mint"
	KeyMaxS = "maxs"
	KeyMaxT = "maxt"
)

// CropRect is a source rectangle in normalized image coordinates.
// (MinS, MinT) is the top-left corner and (MaxS, MaxT) the bottom-right.
// Values are nominally within 0..1 but are not range checked.
type CropRect struct {
	MinS float64 `json:"mins" yaml:"mins"`
	MinT float64 `json:"mint" yaml:"mint"`
	MaxS float64 `json:"maxs" yaml:"maxs"`
	MaxT float64 `json:"maxt" yaml:"maxt"`
}

// String formats the rect the way it appears in a crop fragment.
func (c CropRect) String() string {
	return fmt.Sprintf("mins=%g,mint=%g,maxs=%g,maxt=%g", c.MinS, c.MinT, c.MaxS, c.MaxT)
}

// PixelRect derives the pixel rectangle for an image of the given size.
// The result is relative to the image origin and may be empty or inverted
// when the normalized bounds are degenerate.
func (c CropRect) PixelRect(width, height int) image.Rectangle {
	w, h := float64(width), float64(height)
	x := int(math.Floor(w * c.MinS))
	y := int(math.Floor(h * c.MinT))
	dx := int(math.Floor(w * (c.MaxS - c.MinS)))
	dy := int(math.Floor(h * (c.MaxT - c.MinT)))
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + dx, Y: y + dy},
	}
}

// ParseCrop parses a comma-separated key=value fragment into a CropRect.
//
// Each segment is split on its first '='; key and value are trimmed of ASCII
// whitespace. A segment counts only when its key is one of mins, mint, maxs,
// maxt and its value satisfies IsDouble. ParseCrop returns nil unless all four
// keys were found; a partial rectangle is never returned. A repeated key
// overwrites the earlier value without counting twice.
func ParseCrop(fragment string) *CropRect {
	var rect CropRect
	fields := map[string]*float64{
		KeyMinS: &rect.MinS,
		KeyMinT: &rect.MinT,
		KeyMaxS: &rect.MaxS,
		KeyMaxT: &rect.MaxT,
	}
	seen := make(map[string]bool, len(fields))

	for segment := range strings.SplitSeq(fragment, ",") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		key = trimSpace(key)
		value = trimSpace(value)

		dst, known := fields[key]
		if !known || !IsDouble(value) {
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			continue
		}
		*dst = v
		seen[key] = true
	}

	if len(seen) != len(fields) {
		return nil
	}
	return &rect
}
