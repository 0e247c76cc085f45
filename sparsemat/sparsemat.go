// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparsemat provides a read-only, CSR-like view onto a square
// sparse matrix, the capability the skyline solver's reorder, assembly
// and constraint-elimination stages all read through instead of owning
// storage themselves.
package sparsemat

import (
	"errors"
	"math"

	"github.com/jemjive/skyline/floats"
)

// ErrShape is returned or panicked with when a matrix's dimensions or
// index arrays violate the invariants documented on Matrix.
var ErrShape = errors.New("sparsemat: invalid shape or structure")

// Matrix is a read-only capability set over a square sparse matrix in a
// CSR-like layout: row offsets, column indices and values. Implementations
// must maintain:
//
//   - RowOffsets non-decreasing;
//   - per-row column indices strictly increasing;
//   - structural symmetry: (i,j) present implies (j,i) present.
//
// Matrix has no mutating methods; concurrent readers are safe as long as
// StructureVersion is stable across the calls they make.
type Matrix interface {
	// Shape returns the matrix dimensions; it is always square.
	Shape() (n, m int)

	// RowRange returns the half-open range of indices into the slices
	// returned by Columns and Values that belong to row i.
	RowRange(i int) (begin, end int)

	// Columns returns the sorted column indices of row i.
	Columns(i int) []int

	// Values returns the values of row i, parallel to Columns(i).
	Values(i int) []float64

	// StructureVersion increases every time the sparsity pattern changes.
	StructureVersion() uint64

	// ValuesVersion increases every time any value changes; it is bumped
	// on every structural change too, so ValuesVersion >= StructureVersion
	// in the sense that a caller can always use ValuesVersion alone to
	// detect "anything changed".
	ValuesVersion() uint64

	// HasTrait reports an optional hint about the matrix, such as
	// "symmetric". Traits are advisory: ignoring them never produces a
	// wrong answer, only a missed storage optimisation.
	HasTrait(name string) bool
}

// At returns the value stored at (i,j), or 0 if it is not present in the
// structure. It is a convenience built on the Matrix interface and is
// O(row nnz); callers on a hot path should iterate Columns/Values instead.
func At(a Matrix, i, j int) float64 {
	cols := a.Columns(i)
	vals := a.Values(i)
	lo, hi := 0, len(cols)
	for lo < hi {
		mid := (lo + hi) / 2
		if cols[mid] < j {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(cols) && cols[lo] == j {
		return vals[lo]
	}
	return 0
}

// RowInfNorm returns max_j |a(i,j)| for row i, or 0 for an empty row. The
// row is abs'd into a scratch slice and reduced with floats.Norm(·, +Inf).
func RowInfNorm(a Matrix, i int) float64 {
	vals := a.Values(i)
	if len(vals) == 0 {
		return 0
	}
	abs := make([]float64, len(vals))
	for k, v := range vals {
		abs[k] = math.Abs(v)
	}
	return floats.Norm(abs, math.Inf(1))
}

// InfNorm returns max_i RowInfNorm(a, i), the induced infinity norm.
func InfNorm(a Matrix) float64 {
	n, _ := a.Shape()
	if n == 0 {
		return 0
	}
	rowNorms := make([]float64, n)
	for i := 0; i < n; i++ {
		rowNorms[i] = RowInfNorm(a, i)
	}
	return floats.Norm(rowNorms, math.Inf(1))
}
