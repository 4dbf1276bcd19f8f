// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

import "errors"

// Sentinel errors for the three hard-failure classes this core can raise.
// Callers should use errors.Is against these, not string matching.
var (
	// ErrOutOfRange is wrapped by any access to a Grid2D, SubWindow, or
	// Block outside its bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidMode is wrapped when B_PRED is passed to a 16x16 or 8x8
	// intra_predict call; the entropy decoder must never produce this.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrZeroDimension is wrapped when a grid or frame geometry is
	// constructed with a non-positive width or height.
	ErrZeroDimension = errors.New("zero dimension")
)
