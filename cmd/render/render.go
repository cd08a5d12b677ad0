/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/sprite"
)

// FrameRow holds computed display values for a single frame.
type FrameRow struct {
	Index        int    `json:"index" yaml:"index"`
	Path         string `json:"path" yaml:"path"`
	Width        int    `json:"width" yaml:"width"`
	Height       int    `json:"height" yaml:"height"`
	Missing      bool   `json:"missing,omitempty" yaml:"missing,omitempty"`
	HasAlphaMask bool   `json:"alphaMask,omitempty" yaml:"alphaMask,omitempty"`
	Crop         string `json:"crop,omitempty" yaml:"crop,omitempty"`
}

// Summary is the printable form of a loaded sprite.
type Summary struct {
	File            string                  `json:"file" yaml:"file"`
	Kind            string                  `json:"kind" yaml:"kind"`
	FrameDelayMS    float64                 `json:"frameDelayMs" yaml:"frameDelayMs"`
	DurationMS      float64                 `json:"durationMs" yaml:"durationMs"`
	StaticImagePath string                  `json:"staticImage,omitempty" yaml:"staticImage,omitempty"`
	AlphaMaskPath   string                  `json:"alphaMask,omitempty" yaml:"alphaMask,omitempty"`
	Missing         int                     `json:"missing" yaml:"missing"`
	Frames          []FrameRow              `json:"frames" yaml:"frames"`
	Diagnostics     []diagnostic.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Summarize computes the display summary of a descriptor.
func Summarize(file string, d *sprite.Descriptor, diags []diagnostic.Diagnostic) Summary {
	s := Summary{
		File:            file,
		Kind:            d.Kind.String(),
		FrameDelayMS:    d.FrameDelayMS,
		DurationMS:      float64(d.Duration().Microseconds()) / 1000,
		StaticImagePath: d.StaticImagePath,
		Missing:         d.MissingCount(),
		Frames:          make([]FrameRow, 0, len(d.Frames)),
		Diagnostics:     diags,
	}
	if d.HasStaticAlphaMask {
		s.AlphaMaskPath = d.AlphaMaskPath
	}
	for i, f := range d.Frames {
		row := FrameRow{
			Index:        i,
			Path:         f.Path,
			Missing:      f.Missing(),
			HasAlphaMask: f.HasAlphaMask,
		}
		if !f.Missing() {
			size := f.Image.Bounds().Size()
			row.Width, row.Height = size.X, size.Y
		}
		if f.Crop != nil {
			row.Crop = f.Crop.String()
		}
		s.Frames = append(s.Frames, row)
	}
	return s
}

// ColumnWidths calculates the max width needed for the path and size columns.
func ColumnWidths(rows []FrameRow) (path, size int) {
	path, size = 4, 4 // minimums for headers
	for _, r := range rows {
		if len(r.Path) > path {
			path = len(r.Path)
		}
		if n := len(sizeCell(r)); n > size {
			size = n
		}
	}
	return
}

func sizeCell(r FrameRow) string {
	if r.Missing {
		return "missing"
	}
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Text renders a summary as human-readable text.
func Text(w io.Writer, s Summary) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", s.File)
	fmt.Fprintf(&sb, "  Kind:   %s\n", toTitleCase(s.Kind))
	fmt.Fprintf(&sb, "  Delay:  %gms\n", s.FrameDelayMS)
	if s.Missing > 0 {
		fmt.Fprintf(&sb, "  Frames: %d (%d missing)\n", len(s.Frames), s.Missing)
	} else {
		fmt.Fprintf(&sb, "  Frames: %d\n", len(s.Frames))
	}
	if s.AlphaMaskPath != "" {
		fmt.Fprintf(&sb, "  Mask:   %s\n", s.AlphaMaskPath)
	}

	if len(s.Frames) > 0 {
		pathW, sizeW := ColumnWidths(s.Frames)
		fmt.Fprintf(&sb, "\n  %-3s  %-*s  %-*s  %-5s  %s\n", "#", pathW, "Path", sizeW, "Size", "Alpha", "Crop")
		fmt.Fprintf(&sb, "  %s  %s  %s  %s  %s\n",
			strings.Repeat("-", 3), strings.Repeat("-", pathW), strings.Repeat("-", sizeW),
			strings.Repeat("-", 5), strings.Repeat("-", 4))
		for _, r := range s.Frames {
			alpha := "-"
			if r.HasAlphaMask {
				alpha = "yes"
			}
			crop := r.Crop
			if crop == "" {
				crop = "-"
			}
			fmt.Fprintf(&sb, "  %-3d  %-*s  %-*s  %-5s  %s\n", r.Index, pathW, r.Path, sizeW, sizeCell(r), alpha, crop)
		}
	}

	if len(s.Diagnostics) > 0 {
		sb.WriteString("\n")
		for _, d := range s.Diagnostics {
			fmt.Fprintf(&sb, "  %s: %s\n", d.Severity, d)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// JSON renders a summary as indented JSON.
func JSON(w io.Writer, s Summary) error {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// YAML renders a summary as YAML.
func YAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("error marshaling YAML: %w", err)
	}
	return enc.Close()
}

// Format renders s in the named output format.
func Format(w io.Writer, format string, s Summary) error {
	switch format {
	case "json":
		return JSON(w, s)
	case "yaml", "yml":
		return YAML(w, s)
	case "text", "":
		return Text(w, s)
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
