// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

// Plane is a Grid2D<u8> holding reconstructed samples for one of Y, U, or V
// (§3). Its own dimensions are padded to a whole number of macroblocks;
// DisplayWidth/DisplayHeight record the logical image extent a renderer
// should crop to.
type Plane struct {
	Pixels *Grid2D[uint8]

	DisplayWidth, DisplayHeight int
}

// newPlane allocates a Plane of the given padded size, zero-filled. Pixel
// values only become meaningful once intra (or inter) prediction and the
// inverse transform have run over it.
func newPlane(width, height, displayWidth, displayHeight int) *Plane {
	pixels := NewGrid2D[uint8](width, height, func(Context[uint8]) uint8 { return 0 })
	return &Plane{Pixels: pixels, DisplayWidth: displayWidth, DisplayHeight: displayHeight}
}

// fillWindow sets every sample in w to v.
func fillWindow(w *SubWindow[uint8], v uint8) {
	for row := 0; row < w.Height(); row++ {
		for col := 0; col < w.Width(); col++ {
			*w.At(col, row) = v
		}
	}
}
