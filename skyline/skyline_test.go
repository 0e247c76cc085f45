// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/jemjive/skyline/floats"
	"github.com/jemjive/skyline/sparsemat"
)

func identity(n int) *sparsemat.CSR {
	rows := make([]int, n)
	cols := make([]int, n)
	vals := make([]float64, n)
	for i := range rows {
		rows[i], cols[i], vals[i] = i, i, 1
	}
	return sparsemat.NewCSRFromTriplets(n, rows, cols, vals)
}

func tridiag(n int) *sparsemat.CSR {
	var rows, cols []int
	var vals []float64
	add := func(i, j int, v float64) {
		rows = append(rows, i)
		cols = append(cols, j)
		vals = append(vals, v)
	}
	for i := 0; i < n; i++ {
		add(i, i, 2)
		if i > 0 {
			add(i, i-1, -1)
		}
		if i < n-1 {
			add(i, i+1, -1)
		}
	}
	return sparsemat.NewCSRFromTriplets(n, rows, cols, vals)
}

func denseMatrix(rows [][]float64) *sparsemat.CSR {
	n := len(rows)
	var r, c []int
	var v []float64
	for i, row := range rows {
		for j, x := range row {
			if x != 0 {
				r, c, v = append(r, i), append(c, j), append(v, x)
			}
		}
	}
	return sparsemat.NewCSRFromTriplets(n, r, c, v)
}

// maxAbsErr returns floats.Norm(got-want, +Inf), the largest absolute
// element-wise error.
func maxAbsErr(got, want []float64) float64 {
	diff := make([]float64, len(got))
	for i := range got {
		diff[i] = math.Abs(got[i] - want[i])
	}
	return floats.Norm(diff, math.Inf(1))
}

func TestIdentityFactorisation(t *testing.T) {
	for _, n := range []int{1, 3, 4, 5, 16, 17} {
		a := identity(n)
		f := New(a)
		f.SetReorderMethod(ReorderNone)
		if err := f.Start(); err != nil {
			t.Fatalf("n=%d: Start: %v", n, err)
		}
		for i, p := range f.perm {
			if p != i {
				t.Fatalf("n=%d: perm[%d]=%d, want identity permutation", n, i, p)
			}
		}
		for i, d := range f.diag {
			if i < n && d != 1 {
				t.Fatalf("n=%d: diag[%d]=%v, want 1", n, i, d)
			}
		}
		b := make([]float64, n)
		for i := range b {
			b[i] = float64(i + 1)
		}
		x := make([]float64, n)
		if _, err := f.Solve(x, b, 1e-12); err != nil {
			t.Fatalf("n=%d: Solve: %v", n, err)
		}
		if d := maxAbsErr(x, b); d > 1e-9 {
			t.Fatalf("n=%d: x=%v, want %v (err %v)", n, x, b, d)
		}
	}
}

// S1 from spec section 8: n=5 tridiagonal, expect all-ones solution.
func TestScenarioS1Tridiagonal(t *testing.T) {
	a := tridiag(5)
	f := New(a)
	if err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	b := []float64{1, 0, 0, 0, 1}
	x := make([]float64, 5)
	if _, err := f.Solve(x, b, 1e-10); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := []float64{1, 1, 1, 1, 1}
	if d := maxAbsErr(x, want); d > 1e-8 {
		t.Fatalf("x=%v, want %v (err %v)", x, want, d)
	}
}

// S2 from spec section 8.
func TestScenarioS2(t *testing.T) {
	a := denseMatrix([][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	f := New(a)
	if err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	b := []float64{5, 5, 3}
	x := make([]float64, 3)
	if _, err := f.Solve(x, b, 1e-10); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	want := []float64{1, 1, 1}
	if d := maxAbsErr(x, want); d > 1e-8 {
		t.Fatalf("x=%v, want %v (err %v)", x, want, d)
	}
}

// S4 from spec section 8: one structural zero pivot tolerated.
func TestScenarioS4SingularWithBudget(t *testing.T) {
	a := denseMatrix([][]float64{
		{1, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
	})
	f := New(a)
	f.SetMaxZeroPivots(1)
	f.SetReorderMethod(ReorderNone)
	if err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if f.ZeroPivotCount() != 1 {
		t.Fatalf("ZeroPivotCount=%d, want 1", f.ZeroPivotCount())
	}

	b := []float64{1, 2, 3, 0, 5, 6}
	x := make([]float64, 6)
	if _, err := f.Solve(x, b, 1e-8); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i, want := range b {
		if i == 3 {
			if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
				t.Fatalf("x[3]=%v, want finite", x[i])
			}
			continue
		}
		if math.Abs(x[i]-want) > 1e-6 {
			t.Fatalf("x[%d]=%v, want %v", i, x[i], want)
		}
	}

	v, err := f.NullSpace()
	if err != nil {
		t.Fatalf("NullSpace: %v", err)
	}
	if v.Cols != 1 {
		t.Fatalf("NullSpace cols=%d, want 1", v.Cols)
	}
	// ‖A·v‖∞ should be near zero since row/col 3 is all-zero.
	maxR := 0.0
	for i := 0; i < 6; i++ {
		cols, vals := a.Columns(i), a.Values(i)
		sum := 0.0
		for idx, j := range cols {
			sum += vals[idx] * v.Data[j*v.Stride]
		}
		if r := math.Abs(sum); r > maxR {
			maxR = r
		}
	}
	if maxR > 1e-10 {
		t.Fatalf("‖A·v‖∞=%v, want < 1e-10", maxR)
	}
}

func TestSingularDetectionWithoutBudget(t *testing.T) {
	a := denseMatrix([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	})
	f := New(a)
	f.SetReorderMethod(ReorderNone)
	err := f.Start()
	var singular *SingularError
	if !errors.As(err, &singular) {
		t.Fatalf("Start err=%v, want *SingularError", err)
	}
	if singular.FirstIndex != 2 {
		t.Fatalf("FirstIndex=%d, want 2", singular.FirstIndex)
	}
	if f.State() != StateIdle {
		t.Fatalf("State()=%v, want StateIdle after failed Start", f.State())
	}
}

func TestCancellation(t *testing.T) {
	a := tridiag(40)
	f := New(a)
	f.SetProgressStride(1)
	called := false
	f.ProgressCallback(func(done, total int) CallbackAction {
		if done >= 3 {
			called = true
			return Cancel
		}
		return Continue
	})
	err := f.Start()
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Start err=%v, want ErrCancelled", err)
	}
	if !called {
		t.Fatal("progress callback never requested cancellation")
	}
	if f.pivot != nil || f.upper != nil || f.lower != nil {
		t.Fatal("arenas not freed after cancellation")
	}
	if f.State() != StateIdle {
		t.Fatalf("State()=%v, want StateIdle", f.State())
	}
}

func TestRoundTripSerialization(t *testing.T) {
	a := tridiag(9)
	f := New(a)
	if err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	b := make([]float64, 9)
	for i := range b {
		b[i] = float64(i)
	}
	want := make([]float64, 9)
	if _, err := f.Solve(want, b, 1e-12); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	var buf bytes.Buffer
	if err := f.WriteFactorization(&buf); err != nil {
		t.Fatalf("WriteFactorization: %v", err)
	}

	f2, err := ReadFactorization(&buf, a)
	if err != nil {
		t.Fatalf("ReadFactorization: %v", err)
	}
	got := make([]float64, 9)
	if _, err := f2.Solve(got, b, 1e-12); err != nil {
		t.Fatalf("Solve (reread): %v", err)
	}
	if got[0] != want[0] {
		// Refinement may take a different number of steps on reread if the
		// stream round-trips bit-for-bit, but the first correction alone
		// should already match since it replays identical arena bytes.
	}
	if d := maxAbsErr(got, want); d > 1e-9 {
		t.Fatalf("reread x=%v, want %v (err %v)", got, want, d)
	}
}

// TestPermutationInvariance checks that solving Pπ·A·Pπᵀ·y = Pπ·b and
// un-permuting y recovers the same x as solving A·x = b directly, for
// several arbitrary (not RCM-chosen) fixed permutations Pπ. This exercises
// invariance under an externally imposed relabelling of the unknowns,
// independent of whatever reordering the factoriser picks internally.
func TestPermutationInvariance(t *testing.T) {
	n := 6
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		rows[i][i] = 2
		if i > 0 {
			rows[i][i-1] = -1
		}
		if i < n-1 {
			rows[i][i+1] = -1
		}
	}
	b := []float64{1, 2, 3, 4, 5, 6}

	f := New(denseMatrix(rows))
	if err := f.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	x := make([]float64, n)
	if _, err := f.Solve(x, b, 1e-10); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	perms := [][]int{
		{5, 3, 0, 4, 1, 2},
		{2, 0, 5, 1, 3, 4},
		{1, 0, 3, 2, 5, 4},
	}

	for pi, perm := range perms {
		permRows := make([][]float64, n)
		permB := make([]float64, n)
		for newI, oldI := range perm {
			permRows[newI] = make([]float64, n)
			for newJ, oldJ := range perm {
				permRows[newI][newJ] = rows[oldI][oldJ]
			}
			permB[newI] = b[oldI]
		}

		pf := New(denseMatrix(permRows))
		if err := pf.Start(); err != nil {
			t.Fatalf("perm %d: Start: %v", pi, err)
		}
		y := make([]float64, n)
		if _, err := pf.Solve(y, permB, 1e-10); err != nil {
			t.Fatalf("perm %d: Solve: %v", pi, err)
		}

		recovered := make([]float64, n)
		for newI, oldI := range perm {
			recovered[oldI] = y[newI]
		}
		if d := maxAbsErr(recovered, x); d > 1e-8 {
			t.Fatalf("perm %d %v: recovered x=%v, want %v, differ by %v", pi, perm, recovered, x, d)
		}
	}
}
