/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package imagery

import (
	"fmt"
	"image"
	"sync"
)

// MemProvider serves images from memory. Useful in tests and for callers
// that decode images themselves.
type MemProvider struct {
	mu     sync.RWMutex
	images map[string]image.Image
	loads  []string
}

// NewMemProvider creates an empty in-memory provider.
func NewMemProvider() *MemProvider {
	return &MemProvider{images: make(map[string]image.Image)}
}

// Add registers img under path.
func (p *MemProvider) Add(path string, img image.Image) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.images[path] = img
}

// Load returns the image registered under path.
func (p *MemProvider) Load(path string) (image.Image, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loads = append(p.loads, path)
	img, ok := p.images[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return img, nil
}

// Crop returns a sub-image view of img.
func (p *MemProvider) Crop(img image.Image, r image.Rectangle) (image.Image, error) {
	return SubImage(img, r)
}

// Loads returns the paths passed to Load, in call order.
func (p *MemProvider) Loads() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.loads...)
}
