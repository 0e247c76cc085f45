// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block4 provides dense 4x4 kernels used by the blocked skyline
// factoriser. Every block is sixteen contiguous float64s in row-major
// order: element (i,j) lives at index i*4+j. Keeping the block fixed at
// 4x4 lets every loop below be fully unrolled, which is the point of the
// blocking in the first place.
package block4

// Size is the fixed block dimension the skyline factoriser operates on.
const Size = 4

// N is the number of scalars in one dense block.
const N = Size * Size

// MulSub computes c -= a*b for three row-major 4x4 blocks.
func MulSub(c, a, b *[N]float64) {
	for i := 0; i < 4; i++ {
		ai0, ai1, ai2, ai3 := a[i*4+0], a[i*4+1], a[i*4+2], a[i*4+3]
		c[i*4+0] -= ai0*b[0] + ai1*b[4] + ai2*b[8] + ai3*b[12]
		c[i*4+1] -= ai0*b[1] + ai1*b[5] + ai2*b[9] + ai3*b[13]
		c[i*4+2] -= ai0*b[2] + ai1*b[6] + ai2*b[10] + ai3*b[14]
		c[i*4+3] -= ai0*b[3] + ai1*b[7] + ai2*b[11] + ai3*b[15]
	}
}

// MulSubVec computes y -= a*x for a row-major 4x4 block a and 4-vectors x, y.
func MulSubVec(y *[4]float64, a *[N]float64, x *[4]float64) {
	y[0] -= a[0]*x[0] + a[1]*x[1] + a[2]*x[2] + a[3]*x[3]
	y[1] -= a[4]*x[0] + a[5]*x[1] + a[6]*x[2] + a[7]*x[3]
	y[2] -= a[8]*x[0] + a[9]*x[1] + a[10]*x[2] + a[11]*x[3]
	y[3] -= a[12]*x[0] + a[13]*x[1] + a[14]*x[2] + a[15]*x[3]
}

// FactorInPlace factors a 4x4 block a into unit-lower L (strict lower
// triangle of a, diagonal implicitly 1) and upper U (upper triangle of a,
// including the diagonal) in place, using plain Gaussian elimination
// without row/column pivoting: the skyline solver only permutes for fill
// reduction, never for numerical stability (see spec Non-goals).
//
// It returns the four resulting U diagonal entries.
func FactorInPlace(a *[N]float64) (diag [4]float64) {
	for k := 0; k < 4; k++ {
		piv := a[k*4+k]
		for i := k + 1; i < 4; i++ {
			var m float64
			if piv != 0 {
				m = a[i*4+k] / piv
			}
			a[i*4+k] = m
			if m != 0 {
				for j := k + 1; j < 4; j++ {
					a[i*4+j] -= m * a[k*4+j]
				}
			}
		}
	}
	diag[0], diag[1], diag[2], diag[3] = a[0], a[5], a[10], a[15]
	return diag
}

// SolveUnitLowerPanel solves l*x = rhs for each of the four columns packed
// row-major in rhs, where l is a unit-lower-triangular 4x4 block (as
// produced by FactorInPlace: strict lower triangle holds L, diagonal is
// implicitly 1). The result overwrites rhs in place.
func SolveUnitLowerPanel(l *[N]float64, rhs *[N]float64) {
	for col := 0; col < 4; col++ {
		x0 := rhs[0*4+col]
		x1 := rhs[1*4+col] - l[4+0]*x0
		x2 := rhs[2*4+col] - l[8+0]*x0 - l[8+1]*x1
		x3 := rhs[12+col] - l[12+0]*x0 - l[12+1]*x1 - l[12+2]*x2
		rhs[0*4+col], rhs[1*4+col], rhs[2*4+col], rhs[3*4+col] = x0, x1, x2, x3
	}
}

// SolveUpperPanelRight solves x*u = rhs for each of the four rows packed
// row-major in rhs, where u is an upper-triangular 4x4 block (including
// its diagonal, as produced by FactorInPlace). The result overwrites rhs
// in place. diag overrides the four diagonal scalars of u (used when a
// near-zero pivot has been substituted without mutating the stored block).
func SolveUpperPanelRight(u *[N]float64, diag *[4]float64, rhs *[N]float64) {
	for row := 0; row < 4; row++ {
		r0 := rhs[row*4+0]
		r1 := rhs[row*4+1]
		r2 := rhs[row*4+2]
		r3 := rhs[row*4+3]

		x0 := r0 / diag[0]
		r1 -= x0 * u[1]
		r2 -= x0 * u[2]
		r3 -= x0 * u[3]

		x1 := r1 / diag[1]
		r2 -= x1 * u[6]
		r3 -= x1 * u[7]

		x2 := r2 / diag[2]
		r3 -= x2 * u[11]

		x3 := r3 / diag[3]

		rhs[row*4+0], rhs[row*4+1], rhs[row*4+2], rhs[row*4+3] = x0, x1, x2, x3
	}
}

// ForwardSolveUnit solves l*z = y for a single 4-vector y against a
// unit-lower-triangular block l, writing the result into z (which may
// alias y).
func ForwardSolveUnit(l *[N]float64, y *[4]float64) (z [4]float64) {
	z[0] = y[0]
	z[1] = y[1] - l[4]*z[0]
	z[2] = y[2] - l[8]*z[0] - l[9]*z[1]
	z[3] = y[3] - l[12]*z[0] - l[13]*z[1] - l[14]*z[2]
	return z
}

// BackSolveUpper solves u*w = z for a single 4-vector z against an
// upper-triangular block u (diagonal entries overridden by diag), writing
// the result into w (which may alias z).
func BackSolveUpper(u *[N]float64, diag *[4]float64, z *[4]float64) (w [4]float64) {
	w[3] = z[3] / diag[3]
	w[2] = (z[2] - u[11]*w[3]) / diag[2]
	w[1] = (z[1] - u[6]*w[2] - u[7]*w[3]) / diag[1]
	w[0] = (z[0] - u[1]*w[1] - u[2]*w[2] - u[3]*w[3]) / diag[0]
	return w
}
