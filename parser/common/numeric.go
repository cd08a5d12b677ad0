/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides token classification and crop parsing shared by
// the sprite format parsers.
package common

import (
	"strconv"
	"strings"
)

// asciiSpace is the set of characters the sprite formats treat as token separators.
const asciiSpace = " \t\n\v\f\r"

// EndsWith reports whether s ends with suffix. The match is exact and case-sensitive.
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// IsInteger reports whether s is a plain decimal integer literal with an
// optional leading sign. Whitespace is not tolerated.
func IsInteger(s string) bool {
	if s == "" {
		return false
	}
	digits := s
	if s[0] == '+' || s[0] == '-' {
		digits = s[1:]
		if digits == "" {
			return false
		}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// IsDouble reports whether the whole of s is a decimal floating-point literal.
// Infinities, NaN, hex floats and out-of-range values are rejected.
func IsDouble(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, "xXnNiI_") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// NextField splits off the first whitespace-delimited field of s.
// rest begins immediately after the field, so it keeps any leading whitespace.
// field is empty when s holds no non-space characters.
func NextField(s string) (field, rest string) {
	start := strings.IndexFunc(s, func(r rune) bool { return !isSpace(r) })
	if start < 0 {
		return "", ""
	}
	s = s[start:]
	end := strings.IndexFunc(s, isSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

func isSpace(r rune) bool {
	return strings.ContainsRune(asciiSpace, r)
}

// trimSpace trims the ASCII whitespace set only, leaving other Unicode spaces intact.
func trimSpace(s string) string {
	return strings.Trim(s, asciiSpace)
}
