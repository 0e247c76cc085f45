// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import "github.com/jemjive/skyline/sparsemat"

// allocate sizes the three arenas and auxiliary vectors based on f.top,
// which computeProfile must already have filled in.
func (f *Factoriser) allocate() error {
	N := f.N
	if N < 0 {
		return ErrOutOfMemory
	}
	f.pivot = make([]float64, N*16)
	f.upper = make([]float64, f.upperOff[N])
	f.lower = make([]float64, f.lowerOff[N])
	f.blockDiag = make([][4]float64, N)
	f.diag = make([]float64, N*4)

	for i := f.n; i < N*4; i++ {
		bk, loc := i/4, i%4
		f.pivot[bk*16+loc*4+loc] = 1
		f.diag[i] = 1
		f.blockDiag[bk][loc] = 1
	}
	return nil
}

// scaleRows computes scale[i] = max(tiny, max_j |A(perm(i), perm(j))|) for
// every permuted row i.
func (f *Factoriser) scaleRows() {
	normA := sparsemat.InfNorm(f.a)
	tiny := epsMach * normA
	if tiny <= 0 {
		tiny = epsMach
	}
	f.scale = make([]float64, f.n)
	for pi := 0; pi < f.n; pi++ {
		orig := f.perm[pi]
		m := sparsemat.RowInfNorm(f.a, orig)
		if m < tiny {
			m = tiny
		}
		f.scale[pi] = m
	}
}

// assembleValues walks the permuted structure once, scaling each value by
// its row's scale factor and writing it into the correct arena cell.
func (f *Factoriser) assembleValues() {
	for pi := 0; pi < f.n; pi++ {
		orig := f.perm[pi]
		cols := f.a.Columns(orig)
		vals := f.a.Values(orig)
		for idx, j := range cols {
			pj := f.iperm[j]
			f.setAssembled(pi, pj, vals[idx]/f.scale[pi])
		}
	}
}

func (f *Factoriser) setAssembled(i, j int, v float64) {
	bi, bj := i/4, j/4
	li, lj := i%4, j%4
	switch {
	case bi == bj:
		f.pivot[bi*16+li*4+lj] = v
	case bi < bj:
		b := f.upperBlock(bi, bj)
		b[li*4+lj] = v
	default:
		b := f.lowerBlock(bi, bj)
		b[li*4+lj] = v
	}
}
