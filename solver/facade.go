// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the cache-and-dispatch façade in front of the
// skyline factoriser and its general dense-LU fallback: it tracks the
// borrowed matrix's version counters, eliminates constraints, lazily
// re-factors, and reports solve diagnostics.
package solver

import (
	"errors"
	"log"
	"math"
	"os"

	"github.com/jemjive/skyline/constraint"
	"github.com/jemjive/skyline/skyline"
	"github.com/jemjive/skyline/sparselu"
	"github.com/jemjive/skyline/sparsemat"
)

// engine is the subset of behaviour the façade needs from either the
// blocked skyline factoriser or the dense fallback.
type engine interface {
	Start() error
	Finish()
	Solve(x, b []float64, eps float64) (int, error)
}

// Info reports solve diagnostics, per spec section 6.
type Info struct {
	MemoryBytes    int
	ZeroPivotCount int
	Residual       float64
	IterCount      int
	SolverFailed   bool
}

// Facade owns a full-space matrix view, a constraint handler, and whichever
// engine (blocked skyline or dense fallback) the reduced system's nnz
// density selects; no skyline profile is estimated for this choice.
type Facade struct {
	full sparsemat.Matrix
	cons constraint.Handler
	cfg  Config

	sky   *skyline.Factoriser
	dense *sparselu.Solver
	eng   engine

	structAtStart uint64
	valuesAtStart uint64
	started       bool

	lastInfo Info
	logger   *log.Logger
}

// New returns a Facade over a full-space matrix and constraint handler. A
// nil handler defaults to constraint.NewIdentity().
func New(full sparsemat.Matrix, cons constraint.Handler) *Facade {
	if cons == nil {
		cons = constraint.NewIdentity()
	}
	return &Facade{
		full:   full,
		cons:   cons,
		cfg:    DefaultConfig(),
		logger: log.New(os.Stderr, "solver: ", log.LstdFlags),
	}
}

// Configure applies string-keyed options (spec section 6).
func (f *Facade) Configure(props map[string]any) error { return f.cfg.Configure(props) }

// GetConfig returns the current configuration as a flat map.
func (f *Facade) GetConfig() map[string]any { return f.cfg.GetConfig() }

// GetMatrix returns the borrowed full-space matrix view.
func (f *Facade) GetMatrix() sparsemat.Matrix { return f.full }

// GetConstraints returns the constraint handler in use.
func (f *Facade) GetConstraints() constraint.Handler { return f.cons }

// stale reports whether the cached factorisation no longer matches the
// borrowed matrix's version counters.
func (f *Facade) stale() bool {
	return !f.started ||
		f.full.StructureVersion() != f.structAtStart ||
		f.full.ValuesVersion() != f.valuesAtStart
}

// Start builds the reduced system (via the constraint handler) and factors
// it with the dense fallback when sparselu.EstimatedDensity of the reduced
// matrix exceeds Config.ProfileFallbackThreshold, and with the blocked
// skyline engine otherwise. Calling Start
// when already factored and not stale is a no-op.
func (f *Facade) Start() error {
	if f.started && !f.stale() {
		return nil
	}
	f.Finish()

	if err := f.cons.Update(f.full); err != nil {
		f.logFailure("InconsistentConstraints", err)
		return err
	}
	reduced := f.cons.ReducedMatrix()

	if sparselu.EstimatedDensity(reduced) > f.cfg.ProfileFallbackThreshold {
		d := sparselu.New()
		if err := d.Factorize(reduced); err != nil {
			f.logFailure("BadMatrixShape", err)
			return err
		}
		f.dense = d
		f.eng = denseEngine{d}
	} else {
		s := skyline.New(reduced)
		s.SetZeroThreshold(f.cfg.ZeroThreshold)
		maxZeroPivots := f.cfg.MaxZeroPivots
		if f.cfg.Lenient() {
			n, _ := reduced.Shape()
			maxZeroPivots = n // tolerate every pivot; solverFailed flags the result instead
		}
		s.SetMaxZeroPivots(maxZeroPivots)
		s.SetReorderMethod(f.cfg.ReorderMethod)
		s.SetProgressStride(f.cfg.PrintInterval)
		if err := s.Start(); err != nil {
			f.logFailure(errKind(err), err)
			return err
		}
		f.sky = s
		f.eng = s
	}

	f.structAtStart = f.full.StructureVersion()
	f.valuesAtStart = f.full.ValuesVersion()
	f.started = true
	return nil
}

// Finish releases the active engine's resources and returns the façade to
// an unfactored state.
func (f *Facade) Finish() {
	if f.sky != nil {
		f.sky.Finish()
		f.sky = nil
	}
	f.dense = nil
	f.eng = nil
	f.started = false
}

// Improve performs one refinement step against the cached factorisation,
// (re-)factoring first if stale. An infinite target residual makes the
// underlying engine stop after its first correction.
func (f *Facade) Improve(x, bFull []float64) error {
	return f.solveTo(x, bFull, math.Inf(1))
}

// Solve drives refinement to the configured precision, eliminating and
// restoring constraints around the reduced-space solve.
func (f *Facade) Solve(x, bFull []float64) error {
	return f.solveTo(x, bFull, f.cfg.Precision)
}

func (f *Facade) solveTo(x, bFull []float64, eps float64) error {
	if f.stale() {
		if err := f.Start(); err != nil {
			return err
		}
	}
	bRed := f.cons.ReduceRHS(bFull)
	yRed := make([]float64, len(bRed))

	iter, err := f.eng.Solve(yRed, bRed, eps)
	if err != nil {
		f.logFailure(errKind(err), err)
		return err
	}

	yFull := f.cons.ExpandLHS(yRed)
	copy(x, yFull)

	f.lastInfo = Info{
		MemoryBytes:    f.memoryBytes(),
		ZeroPivotCount: f.zeroPivotCount(),
		Residual:       infNormResidual(f.full, x, bFull),
		IterCount:      iter,
		SolverFailed:   f.cfg.Lenient() && f.zeroPivotCount() > f.cfg.MaxZeroPivots,
	}
	return nil
}

// GetInfo returns diagnostics from the most recent successful Solve or
// Improve.
func (f *Facade) GetInfo() Info { return f.lastInfo }

func (f *Facade) memoryBytes() int {
	if f.sky != nil {
		return f.sky.MemoryBytes()
	}
	return 0
}

func (f *Facade) zeroPivotCount() int {
	if f.sky != nil {
		return f.sky.ZeroPivotCount()
	}
	return 0
}

func (f *Facade) logFailure(kind string, err error) {
	n, _ := f.full.Shape()
	zp := f.zeroPivotCount()
	var singular *skyline.SingularError
	if errors.As(err, &singular) {
		f.logger.Printf("solve failed: kind=%s n=%d zeroPivots=%d firstPivotIndex=%d firstPivotMagnitude=%g",
			kind, n, zp, singular.FirstIndex, singular.FirstMagnitude)
		return
	}
	f.logger.Printf("solve failed: kind=%s n=%d zeroPivots=%d err=%v", kind, n, zp, err)
}

func errKind(err error) string {
	switch {
	case errors.Is(err, skyline.ErrSingular):
		return "SingularMatrix"
	case errors.Is(err, skyline.ErrCancelled):
		return "Cancelled"
	case errors.Is(err, skyline.ErrOutOfMemory):
		return "OutOfMemory"
	case errors.Is(err, skyline.ErrShape):
		return "BadMatrixShape"
	case errors.Is(err, constraint.ErrInconsistent):
		return "InconsistentConstraints"
	default:
		return "Unknown"
	}
}

func infNormResidual(full sparsemat.Matrix, x, b []float64) float64 {
	n, _ := full.Shape()
	maxR, normB := 0.0, 0.0
	for i := 0; i < n; i++ {
		cols, vals := full.Columns(i), full.Values(i)
		sum := 0.0
		for idx, j := range cols {
			sum += vals[idx] * x[j]
		}
		r := math.Abs(sum - b[i])
		if r > maxR {
			maxR = r
		}
		if a := math.Abs(b[i]); a > normB {
			normB = a
		}
	}
	if normB == 0 {
		return maxR
	}
	return maxR / normB
}

// denseEngine adapts *sparselu.Solver to the engine interface; it has
// already been factored by the time it is used, so Start/Finish are no-ops.
type denseEngine struct{ s *sparselu.Solver }

func (d denseEngine) Start() error { return nil }
func (d denseEngine) Finish()      {}
func (d denseEngine) Solve(x, b []float64, eps float64) (int, error) {
	if err := d.s.Solve(x, b); err != nil {
		return 0, err
	}
	return 1, nil
}
