// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

import "fmt"

// Block is Raster::Block<S> of §3/§4: an S x S window into one pixel plane,
// its position (Col, Row) in its grid, and the Predictors snapshot derived
// from the Context that placed it there (the Context itself is not kept). S is a runtime field (4, 8, or 16) rather than
// a Go type parameter — Go has no non-type generic parameters to play the
// role of a C++ size_t template argument, so the size-specialized methods
// of §9's design note are plain methods that branch, where needed, on
// b.Size instead of being separate instantiations per size.
type Block struct {
	Col, Row, Size int

	Contents   *SubWindow[uint8]
	Predictors *Predictors
}

// newBlockBuilder returns the per-element constructor NewGrid2D needs to
// build a Grid2D<Block> of the given block size over plane.
func newBlockBuilder(plane *Grid2D[uint8], size int) func(Context[Block]) Block {
	return func(ctx Context[Block]) Block {
		return Block{
			Col:        ctx.Col,
			Row:        ctx.Row,
			Size:       size,
			Contents:   NewSubWindow(plane, size*ctx.Col, size*ctx.Row, size, size),
			Predictors: newPredictors(size, ctx),
		}
	}
}

// clampU8 clamps a wide intermediate sum into [0, 255].
func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// avg2 is the two-tap rounding average of §4.5.
func avg2(x, y uint8) uint8 {
	return uint8((int(x) + int(y) + 1) >> 1)
}

// avg3 is the three-tap rounding average of §4.5.
func avg3(x, y, z uint8) uint8 {
	return uint8((int(x) + 2*int(y) + int(z) + 2) >> 2)
}

// dcPredict fills b with the DC_PRED value of §4.5, including the
// above/left/neither fallbacks.
func (b *Block) dcPredict() {
	has, p := b.Predictors.HasAbove(), b.Predictors
	hasLeft := p.HasLeft()
	log2 := log2Size(b.Size)

	var value uint8
	switch {
	case has && hasLeft:
		value = uint8((p.sumAboveRow() + p.sumLeftColumn() + (1 << log2)) >> (log2 + 1))
	case has:
		value = uint8((p.sumAboveRow() + (1 << (log2 - 1))) >> log2)
	case hasLeft:
		value = uint8((p.sumLeftColumn() + (1 << (log2 - 1))) >> log2)
	default:
		value = 128
	}
	fillWindow(b.Contents, value)
}

// dcPredictSimple is the "both neighbors present" DC_PRED formula, used
// unconditionally by B_DC_PRED (§4.5: B_PRED is only chosen once both
// neighbors are reconstructed, so the fallback branches never apply).
func (b *Block) dcPredictSimple() {
	log2 := log2Size(b.Size)
	value := uint8((b.Predictors.sumAboveRow() + b.Predictors.sumLeftColumn() + (1 << log2)) >> (log2 + 1))
	fillWindow(b.Contents, value)
}

func log2Size(size int) uint {
	switch size {
	case 4:
		return 2
	case 8:
		return 3
	case 16:
		return 4
	default:
		panic(fmt.Errorf("vp8intra: invalid block size %d", size))
	}
}

// vPredict fills b with V_PRED: column c gets above_row[c], row-invariant.
func (b *Block) vPredict() {
	for col := 0; col < b.Size; col++ {
		v := b.Predictors.AboveRow(col)
		for row := 0; row < b.Size; row++ {
			*b.Contents.At(col, row) = v
		}
	}
}

// hPredict fills b with H_PRED: row r gets left_column[r], column-invariant.
func (b *Block) hPredict() {
	for row := 0; row < b.Size; row++ {
		v := b.Predictors.LeftColumn(row)
		for col := 0; col < b.Size; col++ {
			*b.Contents.At(col, row) = v
		}
	}
}

// tmPredict fills b with TM_PRED: clamp(left[r] + above[c] - above_left).
func (b *Block) tmPredict() {
	al := int(b.Predictors.AboveLeftPixel())
	for row := 0; row < b.Size; row++ {
		left := int(b.Predictors.LeftColumn(row))
		for col := 0; col < b.Size; col++ {
			above := int(b.Predictors.AboveRow(col))
			*b.Contents.At(col, row) = clampU8(left + above - al)
		}
	}
}

// predictShared applies one of the four modes common to every block size.
// B_PRED is a programmer error at this granularity (§4.5): the caller must
// instead iterate the sixteen 4x4 sub-blocks and call PredictBMode per
// sub-block.
func (b *Block) predictShared(mode PredMode) error {
	switch mode {
	case DCPred:
		b.dcPredict()
	case VPred:
		b.vPredict()
	case HPred:
		b.hPredict()
	case TMPred:
		b.tmPredict()
	case BPred:
		return fmt.Errorf("vp8intra: B_PRED is not valid at %dx%d granularity: %w", b.Size, b.Size, ErrInvalidMode)
	default:
		return fmt.Errorf("vp8intra: unrecognized PredMode %v: %w", mode, ErrInvalidMode)
	}
	return nil
}
