// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

import "fmt"

// This file implements the ten 4x4 luma sub-block modes of §4.5, available
// only when a macroblock's Y mode is B_PRED. The position-to-formula
// tables are reproduced bit-for-bit from the VP8 reference decoder (RFC
// 6386 chapter 12), via the alfalfa reference implementation's
// prediction.cc: where several output positions share one computed value,
// that value is broadcast to every listed position, in the order listed.

// predictBVE is B_VE_PRED: vertical smoothed.
func (b *Block) predictBVE() {
	p := b.Predictors
	cols := [4]uint8{
		avg3(p.Above(-1), p.Above(0), p.Above(1)),
		avg3(p.Above(0), p.Above(1), p.Above(2)),
		avg3(p.Above(1), p.Above(2), p.Above(3)),
		avg3(p.Above(2), p.Above(3), p.Above(4)),
	}
	for col, v := range cols {
		for row := 0; row < 4; row++ {
			*b.Contents.At(col, row) = v
		}
	}
}

// predictBHE is B_HE_PRED: horizontal smoothed. The last row uses
// avg3(left(2), left(3), left(3)) because left(4) is not defined.
func (b *Block) predictBHE() {
	p := b.Predictors
	rows := [4]uint8{
		avg3(p.Left(-1), p.Left(0), p.Left(1)),
		avg3(p.Left(0), p.Left(1), p.Left(2)),
		avg3(p.Left(1), p.Left(2), p.Left(3)),
		avg3(p.Left(2), p.Left(3), p.Left(3)),
	}
	for row, v := range rows {
		for col := 0; col < 4; col++ {
			*b.Contents.At(col, row) = v
		}
	}
}

// predictBLD is B_LD_PRED: left-down diagonal. The last anti-diagonal
// duplicates above(7) in place of the undefined above(8).
func (b *Block) predictBLD() {
	p := b.Predictors
	at := func(col, row int, v uint8) { *b.Contents.At(col, row) = v }

	at(0, 0, avg3(p.Above(0), p.Above(1), p.Above(2)))
	v := avg3(p.Above(1), p.Above(2), p.Above(3))
	at(1, 0, v)
	at(0, 1, v)
	v = avg3(p.Above(2), p.Above(3), p.Above(4))
	at(2, 0, v)
	at(1, 1, v)
	at(0, 2, v)
	v = avg3(p.Above(3), p.Above(4), p.Above(5))
	at(3, 0, v)
	at(2, 1, v)
	at(1, 2, v)
	at(0, 3, v)
	v = avg3(p.Above(4), p.Above(5), p.Above(6))
	at(3, 1, v)
	at(2, 2, v)
	at(1, 3, v)
	v = avg3(p.Above(5), p.Above(6), p.Above(7))
	at(3, 2, v)
	at(2, 3, v)
	at(3, 3, avg3(p.Above(6), p.Above(7), p.Above(7)))
}

// predictBRD is B_RD_PRED: right-down diagonal, walked via east().
func (b *Block) predictBRD() {
	p := b.Predictors
	at := func(col, row int, v uint8) { *b.Contents.At(col, row) = v }

	at(0, 3, avg3(p.East(0), p.East(1), p.East(2)))
	v := avg3(p.East(1), p.East(2), p.East(3))
	at(1, 3, v)
	at(0, 2, v)
	v = avg3(p.East(2), p.East(3), p.East(4))
	at(2, 3, v)
	at(1, 2, v)
	at(0, 1, v)
	v = avg3(p.East(3), p.East(4), p.East(5))
	at(3, 3, v)
	at(2, 2, v)
	at(1, 1, v)
	at(0, 0, v)
	v = avg3(p.East(4), p.East(5), p.East(6))
	at(3, 2, v)
	at(2, 1, v)
	at(1, 0, v)
	v = avg3(p.East(5), p.East(6), p.East(7))
	at(3, 1, v)
	at(2, 0, v)
	at(3, 0, avg3(p.East(6), p.East(7), p.East(8)))
}

// predictBVR is B_VR_PRED: vertical-right, walked via east() and above().
func (b *Block) predictBVR() {
	p := b.Predictors
	at := func(col, row int, v uint8) { *b.Contents.At(col, row) = v }

	at(0, 3, avg3(p.East(1), p.East(2), p.East(3)))
	at(0, 2, avg3(p.East(2), p.East(3), p.East(4)))
	v := avg3(p.East(3), p.East(4), p.East(5))
	at(1, 3, v)
	at(0, 1, v)
	v = avg2(p.East(4), p.East(5))
	at(1, 2, v)
	at(0, 0, v)
	v = avg3(p.East(4), p.East(5), p.East(6))
	at(2, 3, v)
	at(1, 1, v)
	v = avg2(p.East(5), p.East(6))
	at(2, 2, v)
	at(1, 0, v)
	v = avg3(p.East(5), p.East(6), p.East(7))
	at(3, 3, v)
	at(2, 1, v)
	v = avg2(p.East(6), p.East(7))
	at(3, 2, v)
	at(2, 0, v)
	at(3, 1, avg3(p.East(6), p.East(7), p.East(8)))
	at(3, 0, avg2(p.East(7), p.East(8)))
}

// predictBVL is B_VL_PRED: vertical-left, walked via above().
func (b *Block) predictBVL() {
	p := b.Predictors
	at := func(col, row int, v uint8) { *b.Contents.At(col, row) = v }

	at(0, 0, avg2(p.Above(0), p.Above(1)))
	at(0, 1, avg3(p.Above(0), p.Above(1), p.Above(2)))
	v := avg2(p.Above(1), p.Above(2))
	at(0, 2, v)
	at(1, 0, v)
	v = avg3(p.Above(1), p.Above(2), p.Above(3))
	at(1, 1, v)
	at(0, 3, v)
	v = avg2(p.Above(2), p.Above(3))
	at(1, 2, v)
	at(2, 0, v)
	v = avg3(p.Above(2), p.Above(3), p.Above(4))
	at(1, 3, v)
	at(2, 1, v)
	v = avg2(p.Above(3), p.Above(4))
	at(2, 2, v)
	at(3, 0, v)
	v = avg3(p.Above(3), p.Above(4), p.Above(5))
	at(2, 3, v)
	at(3, 1, v)
	at(3, 2, avg3(p.Above(4), p.Above(5), p.Above(6)))
	at(3, 3, avg3(p.Above(5), p.Above(6), p.Above(7)))
}

// predictBHD is B_HD_PRED: horizontal-down, walked via east().
func (b *Block) predictBHD() {
	p := b.Predictors
	at := func(col, row int, v uint8) { *b.Contents.At(col, row) = v }

	at(0, 3, avg2(p.East(0), p.East(1)))
	at(1, 3, avg3(p.East(0), p.East(1), p.East(2)))
	v := avg2(p.East(1), p.East(2))
	at(0, 2, v)
	at(2, 3, v)
	v = avg3(p.East(1), p.East(2), p.East(3))
	at(1, 2, v)
	at(3, 3, v)
	v = avg2(p.East(2), p.East(3))
	at(2, 2, v)
	at(0, 1, v)
	v = avg3(p.East(2), p.East(3), p.East(4))
	at(3, 2, v)
	at(1, 1, v)
	v = avg2(p.East(3), p.East(4))
	at(2, 1, v)
	at(0, 0, v)
	v = avg3(p.East(3), p.East(4), p.East(5))
	at(3, 1, v)
	at(1, 0, v)
	at(2, 0, avg3(p.East(4), p.East(5), p.East(6)))
	at(3, 0, avg3(p.East(5), p.East(6), p.East(7)))
}

// predictBHU is B_HU_PRED: horizontal-up, walked via left().
func (b *Block) predictBHU() {
	p := b.Predictors
	at := func(col, row int, v uint8) { *b.Contents.At(col, row) = v }

	at(0, 0, avg2(p.Left(0), p.Left(1)))
	at(1, 0, avg3(p.Left(0), p.Left(1), p.Left(2)))
	v := avg2(p.Left(1), p.Left(2))
	at(2, 0, v)
	at(0, 1, v)
	v = avg3(p.Left(1), p.Left(2), p.Left(3))
	at(3, 0, v)
	at(1, 1, v)
	v = avg2(p.Left(2), p.Left(3))
	at(2, 1, v)
	at(0, 2, v)
	v = avg3(p.Left(2), p.Left(3), p.Left(3))
	at(3, 1, v)
	at(1, 2, v)
	last := p.Left(3)
	at(2, 2, last)
	at(3, 2, last)
	at(0, 3, last)
	at(1, 3, last)
	at(2, 3, last)
	at(3, 3, last)
}

// PredictBMode applies one of the ten 4x4 luma sub-block modes. b must be a
// 4x4 block; this is only ever invoked on Y sub-blocks of a B_PRED
// macroblock, which the caller guarantees.
func (b *Block) PredictBMode(mode BMode) error {
	switch mode {
	case BDCPred:
		b.dcPredictSimple()
	case BTMPred:
		b.tmPredict()
	case BVEPred:
		b.predictBVE()
	case BHEPred:
		b.predictBHE()
	case BLDPred:
		b.predictBLD()
	case BRDPred:
		b.predictBRD()
	case BVRPred:
		b.predictBVR()
	case BVLPred:
		b.predictBVL()
	case BHDPred:
		b.predictBHD()
	case BHUPred:
		b.predictBHU()
	default:
		return fmt.Errorf("vp8intra: unrecognized BMode %v: %w", mode, ErrInvalidMode)
	}
	return nil
}
