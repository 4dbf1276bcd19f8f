// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

// Raster owns the three pixel planes of a frame plus the six grids of
// Blocks over them (§4.3). It is allocated once per frame and lives for
// the duration of frame decoding; nothing in it is ever deleted in
// isolation.
type Raster struct {
	Geometry Geometry

	Y, U, V *Plane

	yBig, uBig, vBig *Grid2D[Block] // 16x16 luma, 8x8 chroma macroblocks
	ySub, uSub, vSub *Grid2D[Block] // 4x4 sub-blocks
}

// NewRaster allocates a Raster sized to geom's macroblock grid. geom is
// assumed already validated (NewGeometry is the fallible entry point;
// Raster construction itself is an internal invariant, not a user input
// boundary).
func NewRaster(geom Geometry) *Raster {
	mbw, mbh := geom.MBWidth, geom.MBHeight

	yPlane := newPlane(16*mbw, 16*mbh, geom.DisplayWidth, geom.DisplayHeight)
	uPlane := newPlane(8*mbw, 8*mbh, (geom.DisplayWidth+1)/2, (geom.DisplayHeight+1)/2)
	vPlane := newPlane(8*mbw, 8*mbh, (geom.DisplayWidth+1)/2, (geom.DisplayHeight+1)/2)

	r := &Raster{
		Geometry: geom,
		Y:        yPlane,
		U:        uPlane,
		V:        vPlane,
		yBig:     NewGrid2D(mbw, mbh, newBlockBuilder(yPlane.Pixels, 16)),
		uBig:     NewGrid2D(mbw, mbh, newBlockBuilder(uPlane.Pixels, 8)),
		vBig:     NewGrid2D(mbw, mbh, newBlockBuilder(vPlane.Pixels, 8)),
		ySub:     NewGrid2D(4*mbw, 4*mbh, newBlockBuilder(yPlane.Pixels, 4)),
		uSub:     NewGrid2D(2*mbw, 2*mbh, newBlockBuilder(uPlane.Pixels, 4)),
		vSub:     NewGrid2D(2*mbw, 2*mbh, newBlockBuilder(vPlane.Pixels, 4)),
	}
	return r
}

// Macroblock is the façade of §4.3/§4.6: the 16x16 Y block, 8x8 U and V
// blocks, and the sixteen/four 4x4 sub-blocks of macroblock (col, row),
// bound together so the decoder can invoke prediction at whichever
// granularity the mode calls for. The two luma views (Y and YSub) share
// the same underlying pixel storage through overlapping sub-windows; the
// decoder writes through exactly one of them per macroblock.
type Macroblock struct {
	Y, U, V *Block

	YSub *SubWindow[Block] // 4x4 luma sub-blocks, 4x4 of them
	USub *SubWindow[Block] // 4x4 chroma sub-blocks, 2x2 of them
	VSub *SubWindow[Block]
}

// Macroblock returns the façade for macroblock (col, row).
func (r *Raster) Macroblock(col, row int) *Macroblock {
	mb := &Macroblock{
		Y:    r.yBig.At(col, row),
		U:    r.uBig.At(col, row),
		V:    r.vBig.At(col, row),
		YSub: NewSubWindow(r.ySub, 4*col, 4*row, 4, 4),
		USub: NewSubWindow(r.uSub, 2*col, 2*row, 2, 2),
		VSub: NewSubWindow(r.vSub, 2*col, 2*row, 2, 2),
	}
	mb.fixupRightEdge()
	return mb
}

// fixupRightEdge implements §4.6: a rightmost (column 3) 4x4 luma
// sub-block, on any row but row 0 of its macroblock, has an above-right
// context that would point one macroblock over — already decoded at
// 16x16 granularity, but whose own 4x4 sub-blocks are not yet
// reconstructed in decode order. Those three sub-blocks borrow column 3,
// row 0's above-right-bottom-row instead.
func (mb *Macroblock) fixupRightEdge() {
	top := mb.YSub.At(3, 0)
	for row := 1; row < 4; row++ {
		blk := mb.YSub.At(3, row)
		blk.Predictors.useRow = top.Predictors.useRow
		blk.Predictors.aboveRight = top.Predictors.aboveRight
	}
}

// PredictY16 runs one of DC_PRED/V_PRED/H_PRED/TM_PRED over the whole
// 16x16 luma block. Returns ErrInvalidMode if mode is BPred: the caller
// must instead predict the sixteen 4x4 luma sub-blocks individually.
func (mb *Macroblock) PredictY16(mode PredMode) error {
	return mb.Y.predictShared(mode)
}

// PredictUV runs one of DC_PRED/V_PRED/H_PRED/TM_PRED over both the 8x8 U
// and 8x8 V blocks, per §4.5 (chroma always shares one mode across U/V).
func (mb *Macroblock) PredictUV(mode PredMode) error {
	if err := mb.U.predictShared(mode); err != nil {
		return err
	}
	return mb.V.predictShared(mode)
}

// PredictY4 runs one of the ten 4x4 luma modes over the sub-block at local
// coordinate (col, row) within this macroblock's 4x4 luma grid.
func (mb *Macroblock) PredictY4(col, row int, mode BMode) error {
	return mb.YSub.At(col, row).PredictBMode(mode)
}
