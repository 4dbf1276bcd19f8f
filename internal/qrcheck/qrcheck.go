// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qrcheck is a conformance smoke test for the raster/plane/
// macroblock plumbing of package vp8intra. It renders a QR code with one
// library, writes it through the public Raster/Macroblock/Block API (first
// running a real intra prediction pass, then simulating the external
// inverse-transform stage's residual add — exactly the split of
// responsibility spec.md §2 describes), and decodes the result back with a
// second, independent QR library. A mismatch means the raster's addressing
// — plane sizing, sub-window offsets, or macroblock façade wiring — is
// broken, the same confidence check the teacher package's
// TestDecodeQRCodeVideo runs over whole decoded video frames.
package qrcheck

import (
	"fmt"
	"image"
	"image/color"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	encqrcode "github.com/skip2/go-qrcode"

	"github.com/vp8intra/vp8intra"
)

// gridSize is the macroblock grid side used for the round-trip raster: a
// 20x20 macroblock grid gives a 320x320 luma plane, enough resolution for
// zxing to reliably locate a version-1-ish QR code's finder patterns.
const gridSize = 20

// RoundTrip encodes content into a QR code, lays it into a vp8intra.Raster
// macroblock by macroblock, and decodes it back out. It returns the text
// the second library actually read.
func RoundTrip(content string) (string, error) {
	qr, err := encqrcode.New(content, encqrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("qrcheck: encode %q: %w", content, err)
	}
	side := 16 * gridSize
	pattern := qr.Image(side)

	geom, err := vp8intra.NewGeometry(gridSize, gridSize, side, side)
	if err != nil {
		return "", fmt.Errorf("qrcheck: geometry: %w", err)
	}
	raster := vp8intra.NewRaster(geom)

	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			mb := raster.Macroblock(col, row)

			// Run a real intra prediction pass first, exercising the
			// mode-dispatch path, even though the simulated residual
			// below overwrites its result — exactly as a real decode
			// would predict, then add a residual, per spec.md §2.
			mode := vp8intra.DCPred
			if col == 0 && row == 0 {
				mode = vp8intra.DCPred // top-left has no neighbors: falls back to 128
			}
			if err := mb.PredictY16(mode); err != nil {
				return "", fmt.Errorf("qrcheck: PredictY16(%d,%d): %w", col, row, err)
			}
			if err := mb.PredictUV(vp8intra.DCPred); err != nil {
				return "", fmt.Errorf("qrcheck: PredictUV(%d,%d): %w", col, row, err)
			}

			writeResidual(mb, pattern, col, row)
		}
	}

	gray := toGray(raster)
	bmp, err := gozxing.NewBinaryBitmapFromImage(gray)
	if err != nil {
		return "", fmt.Errorf("qrcheck: build bitmap: %w", err)
	}
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("qrcheck: decode: %w", err)
	}
	return result.GetText(), nil
}

// writeResidual simulates the external inverse-transform stage: it writes
// the thresholded QR pattern pixel-for-pixel into this macroblock's luma
// window (through the same Block.Contents sub-window prediction just
// wrote), and a neutral mid-gray into chroma (the source QR pattern is
// monochrome).
func writeResidual(mb *vp8intra.Macroblock, pattern image.Image, mbCol, mbRow int) {
	for py := 0; py < 16; py++ {
		for px := 0; px < 16; px++ {
			x := mbCol*16 + px
			y := mbRow*16 + py
			*mb.Y.Contents.At(px, py) = threshold(pattern.At(x, y))
		}
	}
	for py := 0; py < 8; py++ {
		for px := 0; px < 8; px++ {
			*mb.U.Contents.At(px, py) = 128
			*mb.V.Contents.At(px, py) = 128
		}
	}
}

// threshold converts a pattern pixel to a clean bi-level sample: 0 (QR
// "dark module") or 255 (QR "light module").
func threshold(c color.Color) uint8 {
	gray := color.GrayModel.Convert(c).(color.Gray)
	if gray.Y < 128 {
		return 0
	}
	return 255
}

// toGray renders a Raster's luma plane into a standard library grayscale
// image, the format gozxing consumes.
func toGray(r *vp8intra.Raster) *image.Gray {
	w, h := r.Y.DisplayWidth, r.Y.DisplayHeight
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: *r.Y.Pixels.At(x, y)})
		}
	}
	return img
}
