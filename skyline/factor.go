// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import (
	"math"

	"github.com/jemjive/skyline/internal/block4"
)

// crout performs the blocked Crout elimination described in spec section
// 4.3.5: for each block-column k it updates the stored upper column and
// lower row against already-factored blocks, reduces the pivot block by
// its Schur complement, and factors the pivot block in place.
//
// The pivot block's factors use a unit-lower-triangular diagonal and a
// general upper-triangular diagonal (the glossary's "Crout... unit
// diagonal on L"); updating U(r,k) for r<k therefore requires solving
// against L(r,r) (unit-lower) and updating L(k,r) requires solving
// against U(r,r) (upper) on the right. This is the mathematically
// consistent assignment of triangular solves for A=LU with that diagonal
// convention; see DESIGN.md for the reasoning.
func (f *Factoriser) crout() error {
	for k := 0; k < f.N; k++ {
		top := f.top[k]

		for r := top; r < k; r++ {
			u := f.upperBlock(r, k)
			jlo := top
			if f.top[r] > jlo {
				jlo = f.top[r]
			}
			for j := jlo; j < r; j++ {
				block4.MulSub(u, f.lowerBlock(r, j), f.upperBlock(j, k))
			}
			block4.SolveUnitLowerPanel(f.pivotBlock(r), u)
		}

		for r := top; r < k; r++ {
			l := f.lowerBlock(k, r)
			jlo := top
			if f.top[r] > jlo {
				jlo = f.top[r]
			}
			for j := jlo; j < r; j++ {
				block4.MulSub(l, f.lowerBlock(k, j), f.upperBlock(j, r))
			}
			diag := f.blockDiag[r]
			block4.SolveUpperPanelRight(f.pivotBlock(r), &diag, l)
		}

		p := f.pivotBlock(k)
		for j := top; j < k; j++ {
			block4.MulSub(p, f.lowerBlock(k, j), f.upperBlock(j, k))
		}
		diagVals := block4.FactorInPlace(p)

		if err := f.checkPivots(k, p, &diagVals); err != nil {
			return err
		}
		f.blockDiag[k] = diagVals
		for loc := 0; loc < 4; loc++ {
			i := 4*k + loc
			if i < len(f.diag) {
				f.diag[i] = diagVals[loc]
			}
		}

		if action := f.reportProgress(k + 1); action == Cancel {
			return ErrCancelled
		}
	}
	return nil
}

func (f *Factoriser) checkPivots(k int, p *[16]float64, diagVals *[4]float64) error {
	for loc := 0; loc < 4; loc++ {
		i := 4*k + loc
		if i >= f.n {
			continue
		}
		d := diagVals[loc]
		mag := math.Abs(d)
		threshold := f.zeroThreshold * f.scale[i]
		if mag >= threshold {
			continue
		}
		if f.pivotCB != nil {
			f.pivotCB(i, d)
		}
		if !f.firstZeroSet {
			f.firstZeroIdx, f.firstZeroMag, f.firstZeroSet = i, mag, true
		}
		if f.zeroPivotCount >= f.maxZeroPivots {
			return &SingularError{
				ZeroPivots:     f.zeroPivotCount + 1,
				FirstIndex:     f.firstZeroIdx,
				FirstMagnitude: f.firstZeroMag,
			}
		}
		f.zeroPivotCount++
		sign := 1.0
		if d < 0 {
			sign = -1.0
		}
		substituted := sign * f.zeroThreshold
		diagVals[loc] = substituted
		p[loc*4+loc] = substituted
	}
	return nil
}

func (f *Factoriser) reportProgress(done int) CallbackAction {
	if f.progressCB == nil || f.progressStride <= 0 {
		return Continue
	}
	if done != f.N && done%f.progressStride != 0 {
		return Continue
	}
	for {
		action := f.progressCB(done, f.N)
		if action != Suspend {
			return action
		}
	}
}
