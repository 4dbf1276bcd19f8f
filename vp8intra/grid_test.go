// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

import (
	"errors"
	"testing"
)

func TestGrid2DContextNeighbors(t *testing.T) {
	type cell struct{ col, row int }
	var got [3][3]Context[cell]

	g := NewGrid2D(3, 3, func(ctx Context[cell]) cell {
		got[ctx.Row][ctx.Col] = ctx
		return cell{col: ctx.Col, row: ctx.Row}
	})

	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("Width/Height = %d,%d, want 3,3", g.Width(), g.Height())
	}

	// Top-left corner has no neighbors at all.
	c := got[0][0]
	if c.Left != nil || c.AboveLeft != nil || c.Above != nil || c.AboveRight != nil {
		t.Errorf("corner (0,0) context has a non-nil neighbor: %+v", c)
	}

	// (1,1) has all four neighbors, pointing at the expected cells.
	c = got[1][1]
	if c.Left == nil || *c.Left != (cell{0, 1}) {
		t.Errorf("(1,1).Left = %v, want {0,1}", c.Left)
	}
	if c.AboveLeft == nil || *c.AboveLeft != (cell{0, 0}) {
		t.Errorf("(1,1).AboveLeft = %v, want {0,0}", c.AboveLeft)
	}
	if c.Above == nil || *c.Above != (cell{1, 0}) {
		t.Errorf("(1,1).Above = %v, want {1,0}", c.Above)
	}
	if c.AboveRight == nil || *c.AboveRight != (cell{2, 0}) {
		t.Errorf("(1,1).AboveRight = %v, want {2,0}", c.AboveRight)
	}

	// Rightmost column has no above-right neighbor.
	c = got[1][2]
	if c.AboveRight != nil {
		t.Errorf("(2,1).AboveRight = %v, want nil", c.AboveRight)
	}
}

func TestGrid2DAtOutOfRangePanics(t *testing.T) {
	g := NewGrid2D(2, 2, func(Context[int]) int { return 0 })
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("At(5,5) did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Errorf("recovered value %v does not wrap ErrOutOfRange", r)
		}
	}()
	g.At(5, 5)
}

func TestNewGrid2DZeroDimensionPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("NewGrid2D(0, 1, ...) did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrZeroDimension) {
			t.Errorf("recovered value %v does not wrap ErrZeroDimension", r)
		}
	}()
	NewGrid2D(0, 1, func(Context[int]) int { return 0 })
}

func TestSubWindowAddressesParent(t *testing.T) {
	g := NewGrid2D(4, 4, func(ctx Context[int]) int { return ctx.Row*4 + ctx.Col })

	sw := NewSubWindow(g, 1, 1, 2, 2)
	if sw.Width() != 2 || sw.Height() != 2 {
		t.Fatalf("Width/Height = %d,%d, want 2,2", sw.Width(), sw.Height())
	}
	if got, want := *sw.At(0, 0), *g.At(1, 1); got != want {
		t.Errorf("sw.At(0,0) = %d, want %d", got, want)
	}
	if got, want := *sw.At(1, 1), *g.At(2, 2); got != want {
		t.Errorf("sw.At(1,1) = %d, want %d", got, want)
	}

	// Writing through the sub-window is visible through the parent grid:
	// SubWindow never copies storage.
	*sw.At(0, 0) = 99
	if got := *g.At(1, 1); got != 99 {
		t.Errorf("after write through sub-window, g.At(1,1) = %d, want 99", got)
	}
}

func TestNewSubWindowOutOfRangePanics(t *testing.T) {
	g := NewGrid2D(2, 2, func(Context[int]) int { return 0 })
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("NewSubWindow extending past parent did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Errorf("recovered value %v does not wrap ErrOutOfRange", r)
		}
	}()
	NewSubWindow(g, 1, 1, 2, 2)
}

func TestNewNestedSubWindowComposesAgainstRoot(t *testing.T) {
	g := NewGrid2D(4, 4, func(ctx Context[int]) int { return ctx.Row*4 + ctx.Col })
	outer := NewSubWindow(g, 1, 0, 3, 3)
	inner := NewNestedSubWindow(outer, 1, 1, 2, 2)

	if got, want := *inner.At(0, 0), *g.At(2, 1); got != want {
		t.Errorf("inner.At(0,0) = %d, want %d", got, want)
	}
}
