// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

import "testing"

func TestPredictBModeNoNeighborsMatchesDCPredictSimple(t *testing.T) {
	// With no neighbors at all, every tap B_DC_PRED reads is a synthetic
	// constant (127 above, 129 left), so the result should be uniform and
	// match dcPredictSimple's own formula exactly.
	a := buildIsolatedBlock()
	b := buildIsolatedBlock()

	a.dcPredictSimple()
	if err := b.PredictBMode(BDCPred); err != nil {
		t.Fatalf("PredictBMode(BDCPred): %v", err)
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if ga, gb := *a.Contents.At(col, row), *b.Contents.At(col, row); ga != gb {
				t.Errorf("(%d,%d): dcPredictSimple=%d PredictBMode(BDCPred)=%d", col, row, ga, gb)
			}
		}
	}
}

func TestPredictBModeVEBroadcastsColumns(t *testing.T) {
	b := buildIsolatedBlock()
	if err := b.PredictBMode(BVEPred); err != nil {
		t.Fatalf("PredictBMode(BVEPred): %v", err)
	}
	// No real neighbors: every above() tap is 127, so every output pixel is
	// avg3(127,127,127) = 127.
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if got := *b.Contents.At(col, row); got != 127 {
				t.Errorf("(%d,%d) = %d, want 127", col, row, got)
			}
		}
	}
}

func TestPredictBModeHULastRowIsFlat(t *testing.T) {
	// left(3) with no left neighbor is the synthetic 129; B_HU_PRED
	// broadcasts that single value to the whole last row and to columns 2
	// and 3 of row 2.
	b := buildIsolatedBlock()
	if err := b.PredictBMode(BHUPred); err != nil {
		t.Fatalf("PredictBMode(BHUPred): %v", err)
	}
	for _, pos := range [][2]int{{2, 2}, {3, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}} {
		if got := *b.Contents.At(pos[0], pos[1]); got != 129 {
			t.Errorf("(%d,%d) = %d, want 129", pos[0], pos[1], got)
		}
	}
}

func TestPredictBModeInvalidModeErrors(t *testing.T) {
	b := buildIsolatedBlock()
	if err := b.PredictBMode(BMode(99)); err == nil {
		t.Fatal("PredictBMode(99) returned nil error, want ErrInvalidMode")
	}
}
