// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparsemat

import "sort"

// CSR is a concrete, mutable-by-the-owner Compressed Sparse Row matrix.
// Its three-slice layout (row offsets, column indices, values) follows
// the classic CSR representation also used by github.com/james-bowman/sparse's
// compressedSparse type, specialised here to a read-only Matrix view plus
// a small builder surface for assembling a structurally symmetric matrix
// incrementally (e.g. from finite-element assembly) rather than full
// sparse-sparse BLAS arithmetic, which this solver never needs.
type CSR struct {
	n       int
	rowOff  []int
	colIdx  []int
	val     []float64
	structV uint64
	valV    uint64
	traits  map[string]bool
}

// NewCSR wraps already-built CSR slices as a Matrix. The slices become
// owned by the returned *CSR; callers must not mutate them afterwards
// except through the *CSR's own methods.
func NewCSR(n int, rowOff, colIdx []int, val []float64) *CSR {
	if n < 0 || len(rowOff) != n+1 || len(colIdx) != len(val) {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		if rowOff[i] > rowOff[i+1] {
			panic(ErrShape)
		}
		row := colIdx[rowOff[i]:rowOff[i+1]]
		for k := 1; k < len(row); k++ {
			if row[k] <= row[k-1] {
				panic(ErrShape)
			}
		}
	}
	return &CSR{n: n, rowOff: rowOff, colIdx: colIdx, val: val, structV: 1, valV: 1}
}

// NewCSRFromTriplets builds a CSR matrix from unordered (row, col, value)
// triplets, summing duplicates, the way a finite-element assembler would
// hand off element contributions. It does not require the caller to have
// pre-sorted anything.
func NewCSRFromTriplets(n int, rows, cols []int, vals []float64) *CSR {
	if len(rows) != len(cols) || len(rows) != len(vals) {
		panic(ErrShape)
	}
	type entry struct {
		col int
		val float64
	}
	byRow := make([][]entry, n)
	for k := range rows {
		i, j, v := rows[k], cols[k], vals[k]
		if i < 0 || i >= n || j < 0 || j >= n {
			panic(ErrShape)
		}
		byRow[i] = append(byRow[i], entry{j, v})
	}

	rowOff := make([]int, n+1)
	var colIdx []int
	var val []float64
	for i := 0; i < n; i++ {
		row := byRow[i]
		sort.Slice(row, func(a, b int) bool { return row[a].col < row[b].col })
		rowOff[i] = len(colIdx)
		for k := 0; k < len(row); {
			j := row[k].col
			sum := row[k].val
			k++
			for k < len(row) && row[k].col == j {
				sum += row[k].val
				k++
			}
			colIdx = append(colIdx, j)
			val = append(val, sum)
		}
	}
	rowOff[n] = len(colIdx)
	return &CSR{n: n, rowOff: rowOff, colIdx: colIdx, val: val, structV: 1, valV: 1}
}

var _ Matrix = (*CSR)(nil)

// Shape implements Matrix.
func (c *CSR) Shape() (n, m int) { return c.n, c.n }

// RowRange implements Matrix.
func (c *CSR) RowRange(i int) (begin, end int) { return c.rowOff[i], c.rowOff[i+1] }

// Columns implements Matrix.
func (c *CSR) Columns(i int) []int { return c.colIdx[c.rowOff[i]:c.rowOff[i+1]] }

// Values implements Matrix.
func (c *CSR) Values(i int) []float64 { return c.val[c.rowOff[i]:c.rowOff[i+1]] }

// StructureVersion implements Matrix.
func (c *CSR) StructureVersion() uint64 { return c.structV }

// ValuesVersion implements Matrix.
func (c *CSR) ValuesVersion() uint64 { return c.valV }

// HasTrait implements Matrix.
func (c *CSR) HasTrait(name string) bool { return c.traits[name] }

// SetTrait records an advisory trait such as "symmetric".
func (c *CSR) SetTrait(name string, v bool) {
	if c.traits == nil {
		c.traits = make(map[string]bool)
	}
	c.traits[name] = v
}

// SetValue overwrites the value stored at (i,j), which must already be
// present in the structure, and bumps ValuesVersion. It never changes the
// sparsity pattern.
func (c *CSR) SetValue(i, j int, v float64) bool {
	cols := c.colIdx[c.rowOff[i]:c.rowOff[i+1]]
	lo, hi := 0, len(cols)
	for lo < hi {
		mid := (lo + hi) / 2
		if cols[mid] < j {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(cols) || cols[lo] != j {
		return false
	}
	c.val[c.rowOff[i]+lo] = v
	c.valV++
	return true
}

// NNZ returns the number of stored entries.
func (c *CSR) NNZ() int { return len(c.val) }
