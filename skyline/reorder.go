// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import "github.com/jemjive/skyline/internal/rcm"

// computeOrdering returns perm/iperm such that perm[k] is the original
// index placed at permuted position k.
func (f *Factoriser) computeOrdering() {
	n, _ := f.a.Shape()
	f.n = n

	if f.reorderMethod == ReorderNone || n == 0 {
		f.perm = make([]int, n)
		f.iperm = make([]int, n)
		for i := 0; i < n; i++ {
			f.perm[i] = i
			f.iperm[i] = i
		}
		return
	}

	g := rcm.BuildGraph(n, func(i int) []int { return f.a.Columns(i) })
	perm64, iperm64 := rcm.Order(g)

	f.perm = make([]int, n)
	f.iperm = make([]int, n)
	for i, v := range perm64 {
		f.perm[i] = int(v)
	}
	for i, v := range iperm64 {
		f.iperm[i] = int(v)
	}
}
