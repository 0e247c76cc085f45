// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// Based on the LUDecomposition class from Jama 1.0.3.

package mat64

import (
	"math"

	"github.com/gonum/blas"
	"github.com/gonum/blas/blas64"
	"github.com/gonum/lapack/lapack64"
)

// LU is a type for creating and using the LU factorization of a matrix.
type LU struct {
	lu    *Dense
	pivot []int
}

// Factorize computes the LU factorization of the square matrix a and stores
// the result. The LU decomposition will complete regardless of the
// singularity of a.
//
// The LU factorization is computed with pivoting, and so really the
// decomposition is a PLU decomposition where P is a permutation matrix. The
// permutation can be recovered with Pivot.
func (lu *LU) Factorize(a Matrix) {
	r, c := a.Dims()
	if r != c {
		panic(ErrSquare)
	}
	if lu.lu == nil {
		lu.lu = &Dense{}
	}
	lu.lu.Clone(a)
	if cap(lu.pivot) < r {
		lu.pivot = make([]int, r)
	}
	lu.pivot = lu.pivot[:r]
	lapack64.Getrf(lu.lu.mat, lu.pivot)
}

// Det returns the determinant of the matrix that has been factorized.
func (lu *LU) Det() float64 {
	_, n := lu.lu.Dims()
	det := 1.0
	for i := 0; i < n; i++ {
		det *= lu.lu.at(i, i)
		if lu.pivot[i] != i {
			det = -det
		}
	}
	return det
}

// Pivot returns pivot indices that enable the construction of the
// permutation matrix P. If swaps == nil, new memory is allocated, otherwise
// the length of swaps must equal the size of the factorized matrix.
func (lu *LU) Pivot(swaps []int) []int {
	_, n := lu.lu.Dims()
	if swaps == nil {
		swaps = make([]int, n)
	}
	if len(swaps) != n {
		panic(badSliceLength)
	}
	// Perform the inverse of the row swaps in order to find the final
	// row swap position.
	for i := range swaps {
		swaps[i] = i
	}
	for i := n - 1; i >= 0; i-- {
		v := lu.pivot[i]
		swaps[i], swaps[v] = swaps[v], swaps[i]
	}
	return swaps
}

// SolveLUVec solves a system of linear equations using the LU decomposition
// of a matrix. It computes
//  A * x = b if trans == false
//  A^T * x = b if trans == true
// In both cases A is represented in LU factorized form, and the solution x
// is stored into the receiver.
//
// If A is exactly singular, a Condition error with an infinite condition
// number is returned.
func (v *Vector) SolveLUVec(lu *LU, trans bool, b *Vector) error {
	_, n := lu.lu.Dims()
	bn := b.Len()
	if bn != n {
		panic(ErrShape)
	}
	if lu.Det() == 0 {
		return Condition(math.Inf(1))
	}

	v.reuseAs(n)
	var restore func()
	if v == b {
		v, restore = v.isolatedWorkspace(b)
		defer restore()
	}
	v.CopyVec(b)
	vMat := blas64.General{
		Rows:   n,
		Cols:   1,
		Stride: v.mat.Inc,
		Data:   v.mat.Data,
	}
	t := blas.NoTrans
	if trans {
		t = blas.Trans
	}
	lapack64.Getrs(t, lu.lu.mat, vMat, lu.pivot)
	return nil
}
