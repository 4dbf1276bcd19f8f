// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vp8intra

// PredMode is one of the four intra prediction modes available at every
// block size (4x4, 8x8, 16x16), plus the B_PRED flag meaning "predict the
// sixteen 4x4 luma sub-blocks independently" (§4.5). It is part of this
// package's public contract with the entropy decoder (§6).
type PredMode int

const (
	DCPred PredMode = iota
	VPred
	HPred
	TMPred
	BPred
)

func (m PredMode) String() string {
	switch m {
	case DCPred:
		return "DC_PRED"
	case VPred:
		return "V_PRED"
	case HPred:
		return "H_PRED"
	case TMPred:
		return "TM_PRED"
	case BPred:
		return "B_PRED"
	default:
		return "PredMode(?)"
	}
}

// BMode is one of the ten 4x4 luma sub-block modes available only when a
// macroblock's Y mode is B_PRED (§4.5, GLOSSARY).
type BMode int

const (
	BDCPred BMode = iota
	BTMPred
	BVEPred
	BHEPred
	BLDPred
	BRDPred
	BVRPred
	BVLPred
	BHDPred
	BHUPred
)

func (m BMode) String() string {
	switch m {
	case BDCPred:
		return "B_DC_PRED"
	case BTMPred:
		return "B_TM_PRED"
	case BVEPred:
		return "B_VE_PRED"
	case BHEPred:
		return "B_HE_PRED"
	case BLDPred:
		return "B_LD_PRED"
	case BRDPred:
		return "B_RD_PRED"
	case BVRPred:
		return "B_VR_PRED"
	case BVLPred:
		return "B_VL_PRED"
	case BHDPred:
		return "B_HD_PRED"
	case BHUPred:
		return "B_HU_PRED"
	default:
		return "BMode(?)"
	}
}
