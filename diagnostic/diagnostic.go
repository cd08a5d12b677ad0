/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diagnostic collects non-fatal problems found while loading a sprite.
//
// Fatal conditions are returned as errors by the parser and loader. Everything
// that degrades a sprite without aborting the load is recorded here instead,
// so callers can decide how strict to be.
package diagnostic

import (
	"fmt"
	"sync"

	"bennypowers.dev/vsspr/internal/logger"
)

// Kind identifies a class of non-fatal problem.
type Kind string

const (
	// FrameLoadFailed: an animation frame image could not be loaded; a Missing frame took its place.
	FrameLoadFailed Kind = "frame-load-failed"

	// FrameCountMismatch: the declared frame count disagrees with the frame lines read.
	FrameCountMismatch Kind = "frame-count-mismatch"

	// InvalidCropDimensions: the derived crop width or height was not positive.
	InvalidCropDimensions Kind = "invalid-crop-dimensions"

	// CropFailed: the image collaborator rejected a crop request.
	CropFailed Kind = "crop-failed"

	// MalformedFrameHeader: line 3 of an animation was not "int int"; defaults were used.
	MalformedFrameHeader Kind = "malformed-frame-header"

	// AlphaMaskLoadFailed: the static alpha mask image could not be loaded.
	AlphaMaskLoadFailed Kind = "alpha-mask-load-failed"

	// ReclassifiedAnimation: a static sprite produced several frames and became an animation.
	ReclassifiedAnimation Kind = "reclassified-animation"

	// EmptyAnimation: an animation declared no readable frame lines.
	EmptyAnimation Kind = "empty-animation"
)

// Severity ranks diagnostics.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns the severity name.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is one recorded problem.
type Diagnostic struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	Severity Severity `json:"severity" yaml:"severity"`
	// File is the sprite description file being parsed.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// Line is 1-based; zero when the problem is not tied to a line.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Path is the image the problem concerns, if any.
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// String formats the diagnostic as file:line: message.
func (d Diagnostic) String() string {
	loc := d.File
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, d.Line)
	}
	if loc == "" {
		return fmt.Sprintf("%s (%s)", d.Message, d.Kind)
	}
	return fmt.Sprintf("%s: %s (%s)", loc, d.Message, d.Kind)
}

// List accumulates diagnostics. The zero value is ready to use and a nil
// *List discards everything added to it.
type List struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Add records d and logs it at the level matching its severity.
func (l *List) Add(d Diagnostic) {
	if d.Severity == SeverityWarning {
		logger.Warn("%s", d)
	} else {
		logger.Info("%s", d)
	}
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, d)
}

// Warnf records a warning.
func (l *List) Warnf(kind Kind, file string, line int, path, format string, args ...any) {
	l.Add(Diagnostic{
		Kind:     kind,
		Severity: SeverityWarning,
		File:     file,
		Line:     line,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Infof records an informational diagnostic.
func (l *List) Infof(kind Kind, file string, line int, path, format string, args ...any) {
	l.Add(Diagnostic{
		Kind:     kind,
		Severity: SeverityInfo,
		File:     file,
		Line:     line,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// All returns a copy of the recorded diagnostics in the order they were added.
func (l *List) All() []Diagnostic {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Diagnostic(nil), l.items...)
}

// Len returns the number of recorded diagnostics.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Has reports whether a diagnostic of the given kind was recorded.
func (l *List) Has(kind Kind) bool {
	return l.Count(kind) > 0
}

// Count returns how many diagnostics of the given kind were recorded.
func (l *List) Count(kind Kind) int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, d := range l.items {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// HasWarnings reports whether any warning-severity diagnostic was recorded.
func (l *List) HasWarnings() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, d := range l.items {
		if d.Severity == SeverityWarning {
			return true
		}
	}
	return false
}
