// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

// computeProfile scans the permuted structure once and fills f.top, the
// per-block-column index of the first stored block-row, then sizes (but
// does not allocate) the upper/lower arena offset tables.
func (f *Factoriser) computeProfile() {
	N := (f.n + 3) / 4
	f.N = N

	top := make([]int, N)
	for k := range top {
		top[k] = k
	}

	for pi := 0; pi < f.n; pi++ {
		orig := f.perm[pi]
		for _, j := range f.a.Columns(orig) {
			pj := f.iperm[j]
			if pi == pj {
				continue
			}
			bi, bj := pi/4, pj/4
			if bi == bj {
				continue
			}
			k, r := bi, bj
			if r > k {
				k, r = r, k
			}
			if r < top[k] {
				top[k] = r
			}
		}
	}
	f.top = top

	f.upperOff = make([]int, N+1)
	f.lowerOff = make([]int, N+1)
	for k := 0; k < N; k++ {
		width := k - f.top[k]
		f.upperOff[k+1] = f.upperOff[k] + width*16
		f.lowerOff[k+1] = f.lowerOff[k] + width*16
	}
}
