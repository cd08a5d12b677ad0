/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for vsspr.
package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"

	"bennypowers.dev/vsspr/cmd/flags"
	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/fs"
	"bennypowers.dev/vsspr/imagery"
	"bennypowers.dev/vsspr/load"
	"bennypowers.dev/vsspr/sprite"
)

// DefaultMissingColor fills placeholders for frames that failed to load.
const DefaultMissingColor = "magenta"

// checkerSize is the edge length in pixels of a placeholder checker cell.
const checkerSize = 8

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the frames of a sprite as PNG files",
	Long: `Load a sprite and write every frame, cropped as the game would see it,
to frame_NNN.png in the output directory. Frames whose image failed to load
are written as a checkered placeholder.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output directory (required)")
	Cmd.Flags().String("missing-color", DefaultMissingColor, "CSS color for missing-frame placeholders")
	Cmd.Flags().Bool("alpha-mask", false, "Also write the static alpha mask as mask.png")
	_ = Cmd.MarkFlagRequired("output")
}

type options struct {
	outDir       string
	missingColor string
	alphaMask    bool
}

func run(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("output")
	missing, _ := cmd.Flags().GetString("missing-color")
	alphaMask, _ := cmd.Flags().GetBool("alpha-mask")

	return export(cmd.Context(), cmd.OutOrStdout(), fs.NewOSFileSystem(), ".", args[0], options{
		outDir:       outDir,
		missingColor: missing,
		alphaMask:    alphaMask,
	})
}

func export(ctx context.Context, w io.Writer, filesystem fs.FileSystem, root, file string, opts options) error {
	fill, err := parseColor(opts.missingColor)
	if err != nil {
		return err
	}

	cfg, err := flags.Config(filesystem, root)
	if err != nil {
		return err
	}

	diags := &diagnostic.List{}
	lopts := flags.LoadOptions(filesystem, root, cfg, diags)
	lopts.LoadAlphaMask = opts.alphaMask
	desc, err := load.Load(ctx, file, lopts)
	if err != nil {
		return err
	}

	if err := filesystem.MkdirAll(opts.outDir, 0755); err != nil {
		return fmt.Errorf("error creating %s: %w", opts.outDir, err)
	}

	size := placeholderSize(desc)
	for i, f := range desc.Frames {
		img := f.Image
		if f.Missing() {
			img = Placeholder(size, fill)
		}
		out := filepath.Join(opts.outDir, FrameName(i))
		if err := imagery.WritePNG(filesystem, out, img); err != nil {
			return err
		}
		if f.Missing() {
			fmt.Fprintf(w, "%s (placeholder for %s)\n", out, f.Path)
		} else {
			fmt.Fprintln(w, out)
		}
	}

	if desc.AlphaMask != nil {
		out := filepath.Join(opts.outDir, "mask.png")
		if err := imagery.WritePNG(filesystem, out, desc.AlphaMask); err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}

	return nil
}

// FrameName returns the output file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%03d.png", i)
}

func parseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid --missing-color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// placeholderSize is the size of the first loaded frame, or 1x1.
func placeholderSize(desc *sprite.Descriptor) image.Point {
	for _, f := range desc.Frames {
		if !f.Missing() {
			return f.Image.Bounds().Size()
		}
	}
	return image.Pt(1, 1)
}

// Placeholder returns a size image checkered in fill and a shade of fill
// pulled toward its complementary hue.
func Placeholder(size image.Point, fill color.NRGBA) *image.NRGBA {
	alt := checkerShade(fill)
	img := image.NewNRGBA(image.Rectangle{Max: size})
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			if (x/checkerSize+y/checkerSize)%2 == 0 {
				img.SetNRGBA(x, y, fill)
			} else {
				img.SetNRGBA(x, y, alt)
			}
		}
	}
	return img
}

func checkerShade(fill color.NRGBA) color.NRGBA {
	base := colorful.Color{
		R: float64(fill.R) / 255,
		G: float64(fill.G) / 255,
		B: float64(fill.B) / 255,
	}
	h, s, l := base.Hsl()
	complement := colorful.Hsl(math.Mod(h+180, 360), s, l)
	// Achromatic fills have no complement worth blending toward.
	if s < 0.05 {
		complement = colorful.Hsl(h, 0, 1-l)
	}
	r, g, b := base.BlendLab(complement, 0.35).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: fill.A}
}
