// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skyline implements a blocked skyline LU direct solver: it
// reorders a sparse matrix to minimise fill, row-equilibrates it, factors
// it in place with Crout's algorithm over a 4x4-block storage layout, and
// performs the forward/back triangular solves.
package skyline

import "github.com/jemjive/skyline/sparsemat"

// State is the factoriser's lifecycle state.
type State int

const (
	// StateIdle is the initial state and the state after Finish or a
	// failed Start.
	StateIdle State = iota
	// StateStarted is set only transiently while Start runs; observable
	// only to a pivot/progress callback invoked from within Start.
	StateStarted
	// StateFactored is the state in which Solve and GetNullSpace work.
	StateFactored
	// StateStale means the borrowed matrix changed since the last
	// factorisation; the next Solve call re-factors.
	StateStale
)

// ReorderMethod selects the fill-reducing permutation strategy.
type ReorderMethod int

const (
	// ReorderRCM computes a reverse Cuthill-McKee ordering.
	ReorderRCM ReorderMethod = iota
	// ReorderNone uses the identity permutation.
	ReorderNone
)

// CallbackAction is returned by a progress callback to steer the
// factorisation's cooperative cancellation protocol.
type CallbackAction int

const (
	// Continue proceeds with factorisation.
	Continue CallbackAction = iota
	// Suspend asks the factoriser to call back again immediately without
	// making further progress; the core owns no clock, so any actual
	// waiting is the callback's responsibility.
	Suspend
	// Cancel aborts the factorisation at the next block-column boundary.
	Cancel
)

// ProgressFunc reports block-column progress; done counts completed
// block-columns out of total.
type ProgressFunc func(done, total int) CallbackAction

// PivotFunc is invoked whenever a near-zero pivot is encountered, whether
// or not it exhausts the zero-pivot budget.
type PivotFunc func(row int, pivot float64)

// Factoriser owns the permutation, scaling, and the three block arenas for
// one sparse matrix's skyline LU factorisation. It borrows the matrix view
// (it does not copy or own it) and must be re-Start-ed whenever the matrix
// changes.
type Factoriser struct {
	a sparsemat.Matrix

	state State

	structAtStart uint64
	valuesAtStart uint64

	reorderMethod ReorderMethod

	n int // logical dimension
	N int // block count, ceil(n/4)

	perm  []int // perm[k] = original index placed at position k
	iperm []int // iperm[original index] = position

	top []int // per block-column, first stored block-row

	scale []float64 // size n
	diag  []float64 // size N*4, scalar diagonal of U after factorisation

	pivot     []float64   // N*16
	blockDiag [][4]float64 // N entries, possibly-substituted diagonal per block

	upperOff []int // N+1 prefix offsets into upper
	upper    []float64

	lowerOff []int // N+1 prefix offsets into lower
	lower    []float64

	zeroThreshold  float64
	maxZeroPivots  int
	zeroPivotCount int
	firstZeroIdx   int
	firstZeroMag   float64
	firstZeroSet   bool

	progressStride int
	progressCB     ProgressFunc
	pivotCB        PivotFunc
}

// New returns a Factoriser over a (normally already constraint-reduced)
// sparse matrix view, borrowed for the Factoriser's lifetime.
func New(a sparsemat.Matrix) *Factoriser {
	return &Factoriser{
		a:              a,
		zeroThreshold:  1e-15,
		maxZeroPivots:  0,
		progressStride: 1000,
		reorderMethod:  ReorderRCM,
	}
}

// State returns the current lifecycle state.
func (f *Factoriser) State() State { return f.state }

// SetZeroThreshold sets the relative pivot-smallness threshold (default 1e-15).
func (f *Factoriser) SetZeroThreshold(eps float64) { f.zeroThreshold = eps }

// ZeroThreshold returns the current pivot-smallness threshold.
func (f *Factoriser) ZeroThreshold() float64 { return f.zeroThreshold }

// SetMaxZeroPivots sets how many near-zero pivots are tolerated before
// Start fails with a *SingularError (default 0).
func (f *Factoriser) SetMaxZeroPivots(k int) { f.maxZeroPivots = k }

// MaxZeroPivots returns the current zero-pivot budget.
func (f *Factoriser) MaxZeroPivots() int { return f.maxZeroPivots }

// SetReorderMethod chooses the fill-reducing permutation strategy.
func (f *Factoriser) SetReorderMethod(m ReorderMethod) { f.reorderMethod = m }

// SetProgressStride sets how many block-columns elapse between progress
// callbacks; 0 disables progress callbacks entirely.
func (f *Factoriser) SetProgressStride(stride int) { f.progressStride = stride }

// ProgressCallback installs cb, invoked periodically during Start.
func (f *Factoriser) ProgressCallback(cb ProgressFunc) { f.progressCB = cb }

// PivotCallback installs cb, invoked whenever a near-zero pivot is met.
func (f *Factoriser) PivotCallback(cb PivotFunc) { f.pivotCB = cb }

// ZeroPivotCount returns the number of substituted zero pivots from the
// most recent factorisation.
func (f *Factoriser) ZeroPivotCount() int { return f.zeroPivotCount }

// MemoryBytes estimates the bytes held by the three arenas and auxiliary
// vectors, for Facade.GetInfo.
func (f *Factoriser) MemoryBytes() int {
	const f64 = 8
	const iSz = 8
	bytes := len(f.pivot)*f64 + len(f.upper)*f64 + len(f.lower)*f64
	bytes += len(f.perm)*iSz + len(f.iperm)*iSz + len(f.top)*iSz
	bytes += len(f.scale)*f64 + len(f.diag)*f64
	return bytes
}

// Finish releases the arenas and returns the factoriser to StateIdle.
func (f *Factoriser) Finish() {
	f.pivot = nil
	f.upper = nil
	f.lower = nil
	f.blockDiag = nil
	f.perm = nil
	f.iperm = nil
	f.top = nil
	f.scale = nil
	f.diag = nil
	f.upperOff = nil
	f.lowerOff = nil
	f.state = StateIdle
}

// MarkStale transitions the factoriser to StateStale, so the next Solve
// re-factors. Call this after any event that alters the borrowed matrix's
// structure or values.
func (f *Factoriser) MarkStale() {
	if f.state == StateFactored {
		f.state = StateStale
	}
}
