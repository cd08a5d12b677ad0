/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sprite

import "errors"

// Sentinel errors for fatal materialization failures.
var (
	// ErrStaticImageLoadFailed indicates the image of a static sprite could not be loaded.
	ErrStaticImageLoadFailed = errors.New("static image load failed")

	// ErrEmptyAnimation indicates an animation without frames under EmptyAnimationError.
	ErrEmptyAnimation = errors.New("animation has no frames")

	// ErrNoProvider indicates Options.Provider was not set.
	ErrNoProvider = errors.New("no image provider")
)
