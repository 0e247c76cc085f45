// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

// epsMach is the float64 machine epsilon, used to derive the scaling
// floor "tiny" from spec section 4.3.4.
const epsMach = 2.220446049250313e-16

// pivotBlock returns the dense 4x4 pivot block for block-column bk.
func (f *Factoriser) pivotBlock(bk int) *[16]float64 {
	return (*[16]float64)(f.pivot[bk*16 : bk*16+16])
}

// upperBlock returns the panel slot for the upper block at (block-row bi,
// block-col bk), bi must lie in [top[bk], bk).
func (f *Factoriser) upperBlock(bi, bk int) *[16]float64 {
	off := f.upperOff[bk] + (bi-f.top[bk])*16
	return (*[16]float64)(f.upper[off : off+16])
}

// lowerBlock returns the panel slot for the lower block at (block-row bk,
// block-col bj), bj must lie in [top[bk], bk).
func (f *Factoriser) lowerBlock(bk, bj int) *[16]float64 {
	off := f.lowerOff[bk] + (bj-f.top[bk])*16
	return (*[16]float64)(f.lower[off : off+16])
}
