// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

import "fmt"

// Geometry holds the frame dimensions the entropy decoder's frame header
// supplies (§6): the macroblock grid size, and the logical display extent
// within it.
type Geometry struct {
	MBWidth, MBHeight           int
	DisplayWidth, DisplayHeight int
}

// NewGeometry validates and constructs a Geometry. This is the boundary
// where a corrupt or adversarial frame header is turned into an error
// instead of a panic deeper in the grid machinery (§7): mbw/mbh must be
// positive, and the display extent must fit within the padded macroblock
// grid.
func NewGeometry(mbWidth, mbHeight, displayWidth, displayHeight int) (Geometry, error) {
	if mbWidth <= 0 || mbHeight <= 0 {
		return Geometry{}, fmt.Errorf("vp8intra: macroblock grid must be positive, got %dx%d: %w", mbWidth, mbHeight, ErrZeroDimension)
	}
	if displayWidth <= 0 || displayHeight <= 0 {
		return Geometry{}, fmt.Errorf("vp8intra: display extent must be positive, got %dx%d: %w", displayWidth, displayHeight, ErrZeroDimension)
	}
	if displayWidth > mbWidth*16 || displayHeight > mbHeight*16 {
		return Geometry{}, fmt.Errorf("vp8intra: display extent %dx%d exceeds macroblock grid %dx%d: %w",
			displayWidth, displayHeight, mbWidth*16, mbHeight*16, ErrOutOfRange)
	}
	return Geometry{MBWidth: mbWidth, MBHeight: mbHeight, DisplayWidth: displayWidth, DisplayHeight: displayHeight}, nil
}
