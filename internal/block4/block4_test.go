// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block4

import (
	"math"
	"math/rand"
	"testing"
)

func randBlock(rnd *rand.Rand) [N]float64 {
	var b [N]float64
	for i := range b {
		b[i] = rnd.NormFloat64()
	}
	// Keep the block diagonally dominant so naive elimination is well posed.
	for i := 0; i < 4; i++ {
		b[i*4+i] += 8
	}
	return b
}

func mul(a, b *[N]float64) (c [N]float64) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += a[i*4+k] * b[k*4+j]
			}
			c[i*4+j] = s
		}
	}
	return c
}

func maxAbsDiff(a, b [N]float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m {
			m = d
		}
	}
	return m
}

func TestFactorInPlaceReproducesBlock(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		orig := randBlock(rnd)
		a := orig
		diag := FactorInPlace(&a)

		var l, u [N]float64
		for i := 0; i < 4; i++ {
			l[i*4+i] = 1
			for j := 0; j < i; j++ {
				l[i*4+j] = a[i*4+j]
			}
			for j := i; j < 4; j++ {
				u[i*4+j] = a[i*4+j]
			}
		}
		for i := 0; i < 4; i++ {
			if u[i*4+i] != diag[i] {
				t.Fatalf("trial %d: diag[%d]=%v want %v", trial, i, diag[i], u[i*4+i])
			}
		}

		got := mul(&l, &u)
		if d := maxAbsDiff(got, orig); d > 1e-9 {
			t.Fatalf("trial %d: L*U != A, maxdiff=%v", trial, d)
		}
	}
}

func TestSolveUnitLowerPanelInvertsMul(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		a := randBlock(rnd)
		diag := FactorInPlace(&a)
		_ = diag

		var l [N]float64
		for i := 0; i < 4; i++ {
			l[i*4+i] = 1
			for j := 0; j < i; j++ {
				l[i*4+j] = a[i*4+j]
			}
		}

		var x [N]float64
		for i := range x {
			x[i] = rnd.NormFloat64()
		}
		rhs := mul(&l, &x)

		got := rhs
		SolveUnitLowerPanel(&l, &got)
		if d := maxAbsDiff(got, x); d > 1e-9 {
			t.Fatalf("trial %d: solve mismatch, maxdiff=%v", trial, d)
		}
	}
}

func TestSolveUpperPanelRightInvertsMul(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		full := randBlock(rnd)
		a := full
		diag := FactorInPlace(&a)

		var u [N]float64
		for i := 0; i < 4; i++ {
			for j := i; j < 4; j++ {
				u[i*4+j] = a[i*4+j]
			}
		}

		var x [N]float64
		for i := range x {
			x[i] = rnd.NormFloat64()
		}
		rhs := mul(&x, &u)

		got := rhs
		SolveUpperPanelRight(&u, &diag, &got)
		if d := maxAbsDiff(got, x); d > 1e-9 {
			t.Fatalf("trial %d: solve mismatch, maxdiff=%v", trial, d)
		}
	}
}

func TestForwardBackSolveVec(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	full := randBlock(rnd)
	a := full
	diag := FactorInPlace(&a)

	var l, u [N]float64
	for i := 0; i < 4; i++ {
		l[i*4+i] = 1
		for j := 0; j < i; j++ {
			l[i*4+j] = a[i*4+j]
		}
		for j := i; j < 4; j++ {
			u[i*4+j] = a[i*4+j]
		}
	}

	x := [4]float64{1, 2, 3, 4}
	var y [4]float64
	for i := 0; i < 4; i++ {
		y[i] = full[i*4+0]*x[0] + full[i*4+1]*x[1] + full[i*4+2]*x[2] + full[i*4+3]*x[3]
	}

	z := ForwardSolveUnit(&l, &y)
	w := BackSolveUpper(&u, &diag, &z)

	for i := range w {
		if math.Abs(w[i]-x[i]) > 1e-9 {
			t.Fatalf("forward/back solve mismatch at %d: got %v want %v", i, w[i], x[i])
		}
	}
}
