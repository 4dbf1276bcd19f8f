// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

import "testing"

// buildIsolatedBlock constructs a single 4x4 Block with no neighbors at
// all, the simplest way to exercise the 127/129 synthetic boundary values.
func buildIsolatedBlock() *Block {
	g := NewGrid2D(1, 1, newBlockBuilder(NewGrid2D[uint8](4, 4, func(Context[uint8]) uint8 { return 0 }), 4))
	return g.At(0, 0)
}

func TestPredictorsNoNeighborsUsesSyntheticBoundary(t *testing.T) {
	b := buildIsolatedBlock()
	p := b.Predictors

	if p.HasAbove() || p.HasLeft() {
		t.Fatalf("isolated block reports a neighbor: above=%v left=%v", p.HasAbove(), p.HasLeft())
	}
	for i := 0; i < 4; i++ {
		if got := p.AboveRow(i); got != 127 {
			t.Errorf("AboveRow(%d) = %d, want 127", i, got)
		}
		if got := p.LeftColumn(i); got != 129 {
			t.Errorf("LeftColumn(%d) = %d, want 129", i, got)
		}
	}
	if got := p.AboveLeftPixel(); got != 127 {
		t.Errorf("AboveLeftPixel() = %d, want 127 (no above neighbor either)", got)
	}
	// above_right with no above-right and no above neighbor also falls back
	// to 127.
	if got := p.Above(6); got != 127 {
		t.Errorf("Above(6) (above-right region) = %d, want 127", got)
	}
}

func TestPredictorsAboveOnlyAboveLeftIs129(t *testing.T) {
	// A 1x2 grid: row 0 is the "above" neighbor, row 1 is under test and has
	// an above neighbor but no left, above-left, or above-right neighbor.
	plane := NewGrid2D[uint8](4, 8, func(ctx Context[uint8]) uint8 {
		if ctx.Row < 4 {
			return 200 // the "above" macroblock row's pixel values
		}
		return 0
	})
	g := NewGrid2D(1, 2, newBlockBuilder(plane, 4))
	b := g.At(0, 1)
	p := b.Predictors

	if !p.HasAbove() {
		t.Fatal("expected HasAbove() true")
	}
	if p.HasLeft() {
		t.Fatal("expected HasLeft() false")
	}
	for i := 0; i < 4; i++ {
		if got := p.AboveRow(i); got != 200 {
			t.Errorf("AboveRow(%d) = %d, want 200", i, got)
		}
	}
	if got := p.AboveLeftPixel(); got != 129 {
		t.Errorf("AboveLeftPixel() = %d, want 129 (above exists, above-left does not)", got)
	}
}
