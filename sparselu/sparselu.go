// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparselu is the general dense-LU fallback the solver façade
// dispatches to when a matrix's estimated skyline profile is too wide for
// the blocked factoriser to be worthwhile. It densifies the matrix and
// factors it with partial pivoting, trading memory and asymptotic
// complexity for numerical robustness and simplicity on small or poorly
// structured systems.
package sparselu

import (
	"errors"
	"fmt"

	"github.com/jemjive/skyline/mat64"
	"github.com/jemjive/skyline/sparsemat"
)

// ErrSingular is returned by Solve when the densified matrix's LU
// factorization has an exactly zero determinant.
var ErrSingular = errors.New("sparselu: matrix is singular")

// Solver wraps a dense partial-pivoted LU factorization of a densified
// copy of a sparse matrix view.
type Solver struct {
	lu   mat64.LU
	n    int
	done bool
}

// New returns an unfactored Solver.
func New() *Solver { return &Solver{} }

// Factorize densifies a and computes its LU factorization with partial
// pivoting. It returns sparsemat.ErrShape if a is not square.
func (s *Solver) Factorize(a sparsemat.Matrix) error {
	n, m := a.Shape()
	if n != m {
		return sparsemat.ErrShape
	}
	dense := mat64.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		cols, vals := a.Columns(i), a.Values(i)
		for idx, j := range cols {
			dense.Set(i, j, vals[idx])
		}
	}
	s.lu.Factorize(dense)
	s.n = n
	s.done = true
	return nil
}

// Solve writes the solution of A*x = b into x using the factorization
// computed by Factorize.
func (s *Solver) Solve(x, b []float64) error {
	if !s.done {
		return fmt.Errorf("sparselu: Solve called before Factorize")
	}
	if len(x) != s.n || len(b) != s.n {
		return sparsemat.ErrShape
	}
	if s.lu.Det() == 0 {
		return ErrSingular
	}

	bv := mat64.NewVector(s.n, append([]float64(nil), b...))
	xv := mat64.NewVector(s.n, make([]float64, s.n))
	if err := xv.SolveLUVec(&s.lu, false, bv); err != nil {
		return err
	}
	copy(x, xv.RawVector().Data)
	return nil
}

// EstimatedDensity returns nnz/(n*n) for a, the only measure the façade
// compares against its fallback threshold when deciding whether to
// dispatch to this fallback instead of the blocked factoriser; no skyline
// profile estimate is made.
func EstimatedDensity(a sparsemat.Matrix) float64 {
	n, _ := a.Shape()
	if n == 0 {
		return 0
	}
	nnz := 0
	for i := 0; i < n; i++ {
		nnz += len(a.Columns(i))
	}
	return float64(nnz) / float64(n*n)
}
