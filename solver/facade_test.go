// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jemjive/skyline/constraint"
	"github.com/jemjive/skyline/floats"
	"github.com/jemjive/skyline/sparsemat"
)

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

func dense(rows [][]float64) *sparsemat.CSR {
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

func TestFacadeSolveTridiagonal(t *testing.T) {
	a := tridiag(6)
	f := New(a, nil)
	b := []float64{1, 2, 3, 4, 5, 6}
	x := make([]float64, 6)
	if err := f.Solve(x, b); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	info := f.GetInfo()
	if info.SolverFailed {
		t.Fatal("SolverFailed=true, want false")
	}
	if info.Residual > 1e-8 {
		t.Fatalf("Residual=%v, want near zero", info.Residual)
	}
}

func TestFacadeConfigureRoundTrip(t *testing.T) {
	f := New(tridiag(4), nil)
	if err := f.Configure(map[string]any{
		"zeroThreshold": 1e-10,
		"maxZeroPivots": 3,
		"precision":     1e-8,
		"printInterval": 50,
		"lenient":       true,
		"precon":        false,
		"reorderMethod": "none",
	}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	got := f.GetConfig()
	want := map[string]any{
		"zeroThreshold":            1e-10,
		"maxZeroPivots":            3,
		"precision":                1e-8,
		"printInterval":            50,
		"lenient":                  true,
		"precon":                   false,
		"reorderMethod":            "none",
		"profileFallbackThreshold": 0.35,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestFacadeConfigureRejectsUnknownKey(t *testing.T) {
	f := New(tridiag(4), nil)
	if err := f.Configure(map[string]any{"bogus": 1}); err == nil {
		t.Fatal("Configure with unknown key: want error, got nil")
	}
}

func TestFacadeStaleRecomputesOnValueChange(t *testing.T) {
	a := tridiag(5)
	f := New(a, nil)
	b := []float64{1, 1, 1, 1, 1}
	x := make([]float64, 5)
	if err := f.Solve(x, b); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	first := append([]float64(nil), x...)

	if ok := a.SetValue(2, 2, 20); !ok {
		t.Fatal("SetValue(2,2): diagonal entry should exist")
	}
	x2 := make([]float64, 5)
	if err := f.Solve(x2, b); err != nil {
		t.Fatalf("Solve after mutation: %v", err)
	}
	if maxAbsDiff(first, x2) < 1e-9 {
		t.Fatal("solution unchanged after diagonal perturbation; stale cache not invalidated")
	}
}

func TestFacadeLenientModeFlagsSolverFailed(t *testing.T) {
	a := dense([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	})
	f := New(a, nil)
	if err := f.Configure(map[string]any{"lenient": true, "maxZeroPivots": 0, "reorderMethod": "none"}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	b := []float64{1, 2, 0, 4}
	x := make([]float64, 4)
	if err := f.Solve(x, b); err != nil {
		t.Fatalf("Solve (lenient): want no error, got %v", err)
	}
	info := f.GetInfo()
	if !info.SolverFailed {
		t.Fatal("SolverFailed=false, want true under lenient mode with a zero pivot beyond budget")
	}
	if info.ZeroPivotCount != 1 {
		t.Fatalf("ZeroPivotCount=%d, want 1", info.ZeroPivotCount)
	}
}

func TestFacadeStrictModeReturnsError(t *testing.T) {
	a := dense([][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	})
	f := New(a, nil)
	f.Configure(map[string]any{"reorderMethod": "none"})
	b := []float64{1, 2, 0, 4}
	x := make([]float64, 4)
	if err := f.Solve(x, b); err == nil {
		t.Fatal("Solve (strict): want error for singular matrix, got nil")
	}
}

func TestFacadeDenseFallbackDispatch(t *testing.T) {
	a := dense([][]float64{
		{4, 1, 1},
		{1, 3, 1},
		{1, 1, 2},
	})
	f := New(a, nil)
	if err := f.Configure(map[string]any{"profileFallbackThreshold": 0.0}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	b := []float64{6, 5, 4}
	x := make([]float64, 3)
	if err := f.Solve(x, b); err != nil {
		t.Fatalf("Solve via dense fallback: %v", err)
	}
	if f.sky != nil {
		t.Fatal("skyline engine used; want dense fallback given threshold 0")
	}
	if f.dense == nil {
		t.Fatal("dense engine not set")
	}
}

func TestFacadeImproveSingleStep(t *testing.T) {
	a := tridiag(5)
	f := New(a, nil)
	b := []float64{1, 2, 3, 4, 5}
	x := make([]float64, 5)
	if err := f.Improve(x, b); err != nil {
		t.Fatalf("Improve: %v", err)
	}
	if f.GetInfo().IterCount != 1 {
		t.Fatalf("IterCount=%d, want 1 for a single Improve call", f.GetInfo().IterCount)
	}
}

func TestFacadeWithGeneralConstraints(t *testing.T) {
	a := tridiag(4)
	cons := constraint.NewGeneral([]constraint.LinearConstraint{
		{Slave: 3, Masters: []int{0}, Coeffs: []float64{1}, Offset: 0},
	})
	f := New(a, cons)
	b := []float64{1, 2, 3, 4}
	x := make([]float64, 4)
	if err := f.Solve(x, b); err != nil {
		t.Fatalf("Solve with constraints: %v", err)
	}
	if math.Abs(x[3]-x[0]) > 1e-8 {
		t.Fatalf("x[3]=%v, x[0]=%v, want equal under slave-to-master constraint", x[3], x[0])
	}
}

// maxAbsDiff returns floats.Norm(a-b, +Inf), the largest absolute
// element-wise difference.
func maxAbsDiff(a, b []float64) float64 {
	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = math.Abs(a[i] - b[i])
	}
	return floats.Norm(diff, math.Inf(1))
}
