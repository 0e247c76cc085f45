// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import (
	"math"

	"github.com/jemjive/skyline/blas64"
	"github.com/jemjive/skyline/floats"
	"github.com/jemjive/skyline/internal/block4"
	"github.com/jemjive/skyline/sparsemat"
)

// maxRefineSteps bounds the iterative refinement loop in Solve; when the
// precision target is not met in this many steps, Solve returns the x from
// the last step with a nil error.
const maxRefineSteps = 8

// Solve writes the solution of A*x = b into x, refining it with repeated
// forward/back solves against the stored factorisation until
// ‖A·x−b‖∞ ≤ eps·(‖A‖∞·‖x‖∞ + ‖b‖∞), or maxRefineSteps is exhausted. It
// returns the number of refinement steps taken.
func (f *Factoriser) Solve(x, b []float64, eps float64) (iterCount int, err error) {
	if f.state == StateStale {
		if err := f.Start(); err != nil {
			return 0, err
		}
	}
	if f.state != StateFactored {
		return 0, ErrNotFactored
	}
	if len(x) != f.n || len(b) != f.n {
		return 0, ErrShape
	}

	normA := sparsemat.InfNorm(f.a)

	r := append([]float64(nil), b...)
	for i := range x {
		x[i] = 0
	}
	normB := infNormSlice(b)

	for step := 0; step < maxRefineSteps; step++ {
		d := f.triSolve(r)
		for i := range x {
			x[i] += d[i]
		}
		iterCount++

		resid := f.residual(x, b)
		normX := infNormSlice(x)
		if resid <= eps*(normA*normX+normB) {
			return iterCount, nil
		}
		r = f.correctionRHS(x, b)
	}
	return iterCount, nil
}

// residual returns ‖A·x−b‖∞.
func (f *Factoriser) residual(x, b []float64) float64 {
	r := f.axMinusB(x, b)
	return infNormSlice(r)
}

// axMinusB returns A·x−b, computed from f.a directly (not the
// factorisation), so refinement sees the true residual rather than one
// built from rounded triangular factors.
func (f *Factoriser) axMinusB(x, b []float64) []float64 {
	r := make([]float64, f.n)
	for i := 0; i < f.n; i++ {
		cols := f.a.Columns(i)
		vals := f.a.Values(i)
		sum := 0.0
		for idx, j := range cols {
			sum += vals[idx] * x[j]
		}
		r[i] = sum - b[i]
	}
	return r
}

// correctionRHS returns b−A·x, the right-hand side whose solution is the
// next refinement correction to x.
func (f *Factoriser) correctionRHS(x, b []float64) []float64 {
	r := f.axMinusB(x, b)
	for i := range r {
		r[i] = -r[i]
	}
	return r
}

// infNormSlice returns floats.Norm(v, +Inf), the largest |v[i]|, computed
// over a scratch slice of magnitudes.
func infNormSlice(v []float64) float64 {
	abs := make([]float64, len(v))
	for i, x := range v {
		abs[i] = math.Abs(x)
	}
	return floats.Norm(abs, math.Inf(1))
}

// triSolve applies row scaling and the permutation to rhs, forward- and
// back-solves against the stored L*U factors, and unpermutes the result,
// implementing spec section 4.3.6.
func (f *Factoriser) triSolve(rhs []float64) []float64 {
	padded := make([]float64, f.N*4)
	for pi := 0; pi < f.n; pi++ {
		orig := f.perm[pi]
		padded[pi] = rhs[orig] / f.scale[pi]
	}

	z := f.forwardSolve(padded)
	w := f.backSolve(z)

	out := make([]float64, f.n)
	for pi := 0; pi < f.n; pi++ {
		out[f.perm[pi]] = w[pi]
	}
	return out
}

// forwardSolve solves L*z = y by a block-column sweep: each block-column k
// gathers the contribution of its own stored lower panel (rows top[k]..k-1,
// already solved) before solving the unit-lower pivot block.
func (f *Factoriser) forwardSolve(y []float64) []float64 {
	z := append([]float64(nil), y...)
	for k := 0; k < f.N; k++ {
		var yv [4]float64
		copy(yv[:], z[4*k:4*k+4])
		for r := f.top[k]; r < k; r++ {
			var zr [4]float64
			copy(zr[:], z[4*r:4*r+4])
			block4.MulSubVec(&yv, f.lowerBlock(k, r), &zr)
		}
		zv := block4.ForwardSolveUnit(f.pivotBlock(k), &yv)
		copy(z[4*k:4*k+4], zv[:])
	}
	return z
}

// backSolve solves U*w = z by sweeping block-columns from last to first: at
// column k it solves for w[k] against the upper-triangular pivot block,
// then scatters U(r,k)*w[k] into the still-pending z[r] for r < k, the
// blocks stored in column k's upper panel.
func (f *Factoriser) backSolve(z []float64) []float64 {
	w := make([]float64, f.N*4)
	for k := f.N - 1; k >= 0; k-- {
		var zv [4]float64
		copy(zv[:], z[4*k:4*k+4])
		diag := f.blockDiag[k]
		wv := block4.BackSolveUpper(f.pivotBlock(k), &diag, &zv)
		copy(w[4*k:4*k+4], wv[:])

		for r := f.top[k]; r < k; r++ {
			var zr [4]float64
			copy(zr[:], z[4*r:4*r+4])
			block4.MulSubVec(&zr, f.upperBlock(r, k), &wv)
			copy(z[4*r:4*r+4], zr[:])
		}
	}
	return w
}

// NullSpace returns an n×k row-major dense matrix whose columns span the
// approximate null space found during the last factorisation, one column
// per substituted zero pivot, each normalised to unit 2-norm. It requires
// StateFactored; k is zero (an empty matrix) when the system was not
// singular.
func (f *Factoriser) NullSpace() (blas64.General, error) {
	if f.state != StateFactored {
		return blas64.General{}, ErrNotFactored
	}
	k := f.zeroPivotCount
	v := blas64.General{Rows: f.n, Cols: k, Stride: k, Data: make([]float64, f.n*k)}
	if k == 0 {
		return v, nil
	}

	found := 0
	for pi := 0; pi < f.n && found < k; pi++ {
		// checkPivots stores a substituted pivot as exactly ±zeroThreshold.
		if math.Abs(f.diag[pi]) != f.zeroThreshold {
			continue
		}
		col := f.nullVector(pi)
		for i, val := range col {
			v.Data[i*v.Stride+found] = val
		}
		found++
	}
	return v, nil
}

// nullVector builds one approximate null vector by setting the free
// variable at permuted position pivPos to 1, back-substituting every other
// row of U against it, and normalising to unit 2-norm.
func (f *Factoriser) nullVector(pivPos int) []float64 {
	z := make([]float64, f.N*4)
	z[pivPos] = 1

	w := make([]float64, f.N*4)
	w[pivPos] = 1
	pivBlock, pivLoc := pivPos/4, pivPos%4

	for k := f.N - 1; k >= 0; k-- {
		var zv [4]float64
		copy(zv[:], z[4*k:4*k+4])
		if k == pivBlock {
			zv[pivLoc] = 0
		}
		diag := f.blockDiag[k]
		if k == pivBlock {
			diag[pivLoc] = 1
		}
		wv := block4.BackSolveUpper(f.pivotBlock(k), &diag, &zv)
		if k == pivBlock {
			wv[pivLoc] = 1
		}
		copy(w[4*k:4*k+4], wv[:])

		for r := f.top[k]; r < k; r++ {
			var zr [4]float64
			copy(zr[:], z[4*r:4*r+4])
			block4.MulSubVec(&zr, f.upperBlock(r, k), &wv)
			copy(z[4*r:4*r+4], zr[:])
		}
	}

	out := make([]float64, f.n)
	norm := 0.0
	for pi := 0; pi < f.n; pi++ {
		out[f.perm[pi]] = w[pi]
		norm += w[pi] * w[pi]
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range out {
			out[i] /= norm
		}
	}
	return out
}
