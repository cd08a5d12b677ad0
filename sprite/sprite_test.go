/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sprite_test

import (
	"context"
	"errors"
	"image"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/vsspr/diagnostic"
	"bennypowers.dev/vsspr/imagery"
	"bennypowers.dev/vsspr/internal/logger"
	"bennypowers.dev/vsspr/parser"
	"bennypowers.dev/vsspr/parser/common"
	"bennypowers.dev/vsspr/sprite"
	"bennypowers.dev/vsspr/variant"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func rgba(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// parseDoc parses content with image paths under /data. Parser diagnostics
// go to diags, which may be nil.
func parseDoc(t *testing.T, diags *diagnostic.List, content string) *parser.Document {
	t.Helper()
	doc, err := parser.NewSPRParser().Parse([]byte(content), "test.spr", parser.Options{
		AssetRoot:   "/data",
		Diagnostics: diags,
	})
	require.NoError(t, err)
	return doc
}

func TestMaterialize_Static(t *testing.T) {
	p := imagery.NewMemProvider()
	p.Add("/data/bg.png", rgba(640, 480))
	diags := &diagnostic.List{}

	d, err := sprite.Materialize(t.Context(), parseDoc(t, nil, "bg.png 0\n0 0\n0 100\n"), sprite.Options{
		Provider:    p,
		Diagnostics: diags,
	})
	require.NoError(t, err)

	assert.Equal(t, variant.Static, d.Kind)
	require.Len(t, d.Frames, 1)
	assert.False(t, d.Frames[0].Missing())
	assert.Equal(t, "/data/bg.png", d.Frames[0].Path)
	assert.Equal(t, 100.0, d.FrameDelayMS)
	assert.Equal(t, "/data/bg.png", d.StaticImagePath)
	assert.Nil(t, d.AlphaMask)
	assert.Equal(t, 0, diags.Len())
}

func TestMaterialize_StaticLoadFailureIsFatal(t *testing.T) {
	d, err := sprite.Materialize(t.Context(), parseDoc(t, nil, "bg.png 0\n0 0\n0 100\n"), sprite.Options{
		Provider: imagery.NewMemProvider(),
	})
	assert.Nil(t, d)
	assert.ErrorIs(t, err, sprite.ErrStaticImageLoadFailed)
	assert.ErrorIs(t, err, imagery.ErrNotFound)
}

func TestMaterialize_StaticAlphaMask(t *testing.T) {
	doc := parseDoc(t, nil, "ship.png ship_a.png\n0 0\n0 0\n")

	t.Run("loaded when requested", func(t *testing.T) {
		p := imagery.NewMemProvider()
		p.Add("/data/ship.png", rgba(4, 4))
		p.Add("/data/ship_a.png", image.NewAlpha(image.Rect(0, 0, 4, 4)))

		d, err := sprite.Materialize(t.Context(), doc, sprite.Options{Provider: p, LoadAlphaMask: true})
		require.NoError(t, err)
		assert.True(t, d.HasStaticAlphaMask)
		assert.Equal(t, "/data/ship_a.png", d.AlphaMaskPath)
		assert.NotNil(t, d.AlphaMask)
	})

	t.Run("not loaded by default", func(t *testing.T) {
		p := imagery.NewMemProvider()
		p.Add("/data/ship.png", rgba(4, 4))

		d, err := sprite.Materialize(t.Context(), doc, sprite.Options{Provider: p})
		require.NoError(t, err)
		assert.Nil(t, d.AlphaMask)
		assert.Equal(t, []string{"/data/ship.png"}, p.Loads())
	})

	t.Run("missing mask is not fatal", func(t *testing.T) {
		p := imagery.NewMemProvider()
		p.Add("/data/ship.png", rgba(4, 4))
		diags := &diagnostic.List{}

		d, err := sprite.Materialize(t.Context(), doc, sprite.Options{
			Provider:      p,
			Diagnostics:   diags,
			LoadAlphaMask: true,
		})
		require.NoError(t, err)
		assert.Nil(t, d.AlphaMask)
		assert.True(t, diags.Has(diagnostic.AlphaMaskLoadFailed))
	})
}

func TestMaterialize_AnimationWithCrop(t *testing.T) {
	p := imagery.NewMemProvider()
	p.Add("/data/f1.png", rgba(32, 32))
	p.Add("/data/f2.png", rgba(64, 48))
	diags := &diagnostic.List{}

	doc := parseDoc(t, diags, "a.ani\n5 16\nf1.png\nf2.png true mins=0,mint=0,maxs=0.5,maxt=0.5\n")
	d, err := sprite.Materialize(t.Context(), doc, sprite.Options{Provider: p, Diagnostics: diags})
	require.NoError(t, err)

	assert.Equal(t, variant.Animation, d.Kind)
	assert.Equal(t, 16.0, d.FrameDelayMS)
	require.Len(t, d.Frames, 2)

	assert.Equal(t, image.Rect(0, 0, 32, 32), d.Frames[0].Image.Bounds())
	assert.Nil(t, d.Frames[0].Crop)

	assert.Equal(t, image.Rect(0, 0, 32, 24), d.Frames[1].Image.Bounds())
	assert.True(t, d.Frames[1].HasAlphaMask)
	require.NotNil(t, d.Frames[1].Crop)
	assert.Equal(t, common.CropRect{MaxS: 0.5, MaxT: 0.5}, *d.Frames[1].Crop)

	assert.True(t, diags.Has(diagnostic.FrameCountMismatch))
}

func TestMaterialize_MissingFrameKeepsPosition(t *testing.T) {
	p := imagery.NewMemProvider()
	p.Add("/data/f1.png", rgba(8, 8))
	p.Add("/data/f3.png", rgba(16, 16))
	diags := &diagnostic.List{}

	doc := parseDoc(t, nil, "x.ani\n3 50\nf1.png\nf2.png\nf3.png\n")
	d, err := sprite.Materialize(t.Context(), doc, sprite.Options{Provider: p, Diagnostics: diags})
	require.NoError(t, err)

	require.Len(t, d.Frames, 3)
	assert.False(t, d.Frames[0].Missing())
	assert.True(t, d.Frames[1].Missing())
	assert.Equal(t, "/data/f2.png", d.Frames[1].Path)
	assert.False(t, d.Frames[2].Missing())
	assert.Equal(t, image.Rect(0, 0, 16, 16), d.Frames[2].Image.Bounds())
	assert.Equal(t, 1, d.MissingCount())

	all := diags.All()
	require.Len(t, all, 1)
	assert.Equal(t, diagnostic.FrameLoadFailed, all[0].Kind)
	assert.Equal(t, 4, all[0].Line)
	assert.Equal(t, "/data/f2.png", all[0].Path)
}

func TestMaterialize_AllFramesMissing(t *testing.T) {
	doc := parseDoc(t, nil, "x.ani\n2 50\nf1.png\nf2.png\n")
	d, err := sprite.Materialize(t.Context(), doc, sprite.Options{Provider: imagery.NewMemProvider()})
	require.NoError(t, err)
	assert.Len(t, d.Frames, 2)
	assert.Equal(t, 2, d.MissingCount())
}

func TestMaterialize_CropEdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		crop       string
		src        image.Image
		wantBounds image.Rectangle
		wantDiag   diagnostic.Kind
	}{
		{
			name:       "inverted bounds",
			crop:       "mins=0.5,mint=0,maxs=0.25,maxt=1",
			src:        rgba(8, 8),
			wantBounds: image.Rect(0, 0, 8, 8),
			wantDiag:   diagnostic.InvalidCropDimensions,
		},
		{
			name:       "sub-pixel width",
			crop:       "mins=0,mint=0,maxs=0.05,maxt=1",
			src:        rgba(8, 8),
			wantBounds: image.Rect(0, 0, 8, 8),
			wantDiag:   diagnostic.InvalidCropDimensions,
		},
		{
			name:       "beyond the image",
			crop:       "mins=0.5,mint=0,maxs=1.5,maxt=1",
			src:        rgba(8, 8),
			wantBounds: image.Rect(0, 0, 8, 8),
			wantDiag:   diagnostic.CropFailed,
		},
		{
			name:       "offset image origin",
			crop:       "mins=0.5,mint=0.5,maxs=1,maxt=1",
			src:        image.NewRGBA(image.Rect(10, 20, 30, 60)),
			wantBounds: image.Rect(20, 40, 30, 60),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := imagery.NewMemProvider()
			p.Add("/data/f.png", tt.src)
			diags := &diagnostic.List{}

			doc := parseDoc(t, nil, "x.ani\n1 50\nf.png "+tt.crop+"\n")
			d, err := sprite.Materialize(t.Context(), doc, sprite.Options{Provider: p, Diagnostics: diags})
			require.NoError(t, err)

			require.Len(t, d.Frames, 1)
			assert.Equal(t, tt.wantBounds, d.Frames[0].Image.Bounds())
			if tt.wantDiag == "" {
				assert.Equal(t, 0, diags.Len())
				assert.NotNil(t, d.Frames[0].Crop)
				return
			}
			assert.True(t, diags.Has(tt.wantDiag), "diagnostics: %v", diags.All())
			assert.Nil(t, d.Frames[0].Crop)
		})
	}
}

func TestMaterialize_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := sprite.Materialize(ctx, parseDoc(t, nil, "x.ani\n1 50\nf.png\n"), sprite.Options{
		Provider: imagery.NewMemProvider(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaterialize_NoProvider(t *testing.T) {
	_, err := sprite.Materialize(t.Context(), &parser.Document{}, sprite.Options{})
	assert.ErrorIs(t, err, sprite.ErrNoProvider)
}

func TestAssemble(t *testing.T) {
	frame := sprite.Frame{Image: rgba(1, 1), Path: "/data/a.png"}

	t.Run("static with several frames becomes animation", func(t *testing.T) {
		diags := &diagnostic.List{}
		doc := &parser.Document{Kind: variant.Static, FrameDelayMS: 40, StaticImagePath: "/data/a.png"}

		d, err := sprite.Assemble(doc, []sprite.Frame{frame, frame}, sprite.Options{Diagnostics: diags})
		require.NoError(t, err)
		assert.Equal(t, variant.Animation, d.Kind)
		assert.Len(t, d.Frames, 2)
		assert.Equal(t, "/data/a.png", d.StaticImagePath)
		assert.True(t, diags.Has(diagnostic.ReclassifiedAnimation))
		assert.False(t, diags.HasWarnings())
	})

	t.Run("static with one frame stays static", func(t *testing.T) {
		d, err := sprite.Assemble(&parser.Document{Kind: variant.Static}, []sprite.Frame{frame}, sprite.Options{})
		require.NoError(t, err)
		assert.Equal(t, variant.Static, d.Kind)
	})

	t.Run("static without frames fails", func(t *testing.T) {
		_, err := sprite.Assemble(&parser.Document{Kind: variant.Static}, nil, sprite.Options{})
		assert.True(t, errors.Is(err, sprite.ErrStaticImageLoadFailed))
	})

	t.Run("empty animation allowed by default", func(t *testing.T) {
		diags := &diagnostic.List{}
		d, err := sprite.Assemble(&parser.Document{Kind: variant.Animation}, nil, sprite.Options{Diagnostics: diags})
		require.NoError(t, err)
		assert.Empty(t, d.Frames)
		assert.True(t, diags.Has(diagnostic.EmptyAnimation))
	})

	t.Run("empty animation as error", func(t *testing.T) {
		_, err := sprite.Assemble(&parser.Document{Kind: variant.Animation}, nil, sprite.Options{
			EmptyAnimation: sprite.EmptyAnimationError,
		})
		assert.ErrorIs(t, err, sprite.ErrEmptyAnimation)
	})
}

func TestDescriptor_Frame(t *testing.T) {
	d := &sprite.Descriptor{Frames: []sprite.Frame{
		{Path: "a"}, {Path: "b"}, {Path: "c"},
	}}

	tests := []struct {
		index    int
		expected string
	}{
		{0, "a"}, {2, "c"}, {3, "a"}, {7, "b"}, {-1, "c"},
	}
	for _, tt := range tests {
		if got := d.Frame(tt.index).Path; got != tt.expected {
			t.Errorf("Frame(%d) = %q, want %q", tt.index, got, tt.expected)
		}
	}

	empty := &sprite.Descriptor{}
	if !empty.Frame(5).Missing() {
		t.Error("Frame() on an empty descriptor should be missing")
	}
}

func TestDescriptor_Timing(t *testing.T) {
	d := &sprite.Descriptor{FrameDelayMS: 16.5, Frames: make([]sprite.Frame, 4)}
	assert.Equal(t, 16500*time.Microsecond, d.FrameDelay())
	assert.Equal(t, 66*time.Millisecond, d.Duration())
	assert.Equal(t, 4, d.MissingCount())
}

func TestParseEmptyAnimationPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected sprite.EmptyAnimationPolicy
		wantErr  bool
	}{
		{"", sprite.EmptyAnimationAllow, false},
		{"allow", sprite.EmptyAnimationAllow, false},
		{"ERROR", sprite.EmptyAnimationError, false},
		{"panic", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := sprite.ParseEmptyAnimationPolicy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
