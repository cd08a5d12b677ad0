/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package imagery loads and crops the images sprite frames are made of.
package imagery

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"bennypowers.dev/vsspr/fs"
)

// Sentinel errors for image operations.
var (
	// ErrNotFound indicates the image does not exist.
	ErrNotFound = errors.New("image not found")

	// ErrDecode indicates the image data could not be decoded.
	ErrDecode = errors.New("cannot decode image")

	// ErrCropOutOfBounds indicates a crop rectangle outside the image.
	ErrCropOutOfBounds = errors.New("crop rectangle outside image bounds")

	// ErrNotCroppable indicates an image type without SubImage support.
	ErrNotCroppable = errors.New("image does not support cropping")
)

// Provider loads and crops images on behalf of the sprite materializer.
type Provider interface {
	// Load returns the decoded image at path.
	Load(path string) (image.Image, error)

	// Crop returns the part of img inside r. r is in img's coordinate space.
	Crop(img image.Image, r image.Rectangle) (image.Image, error)
}

// FSProvider decodes images read through a FileSystem.
// PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
type FSProvider struct {
	fs fs.FileSystem
}

// NewFSProvider creates a provider reading from filesystem.
func NewFSProvider(filesystem fs.FileSystem) *FSProvider {
	return &FSProvider{fs: filesystem}
}

// Load reads and decodes the image at path.
func (p *FSProvider) Load(path string) (image.Image, error) {
	if !p.fs.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	return img, nil
}

// Crop returns a sub-image view of img.
func (p *FSProvider) Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	return SubImage(img, r)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// SubImage returns the view of img inside r without copying pixels.
// r must be non-empty and lie within img's bounds.
func SubImage(img image.Image, r image.Rectangle) (image.Image, error) {
	if r.Empty() || !r.In(img.Bounds()) {
		return nil, fmt.Errorf("%w: %v not in %v", ErrCropOutOfBounds, r, img.Bounds())
	}
	si, ok := img.(subImager)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotCroppable, img)
	}
	return si.SubImage(r), nil
}

// WritePNG encodes img as PNG and writes it to path.
func WritePNG(filesystem fs.FileSystem, path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := filesystem.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
