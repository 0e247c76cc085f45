// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constraint abstracts the mapping between a full degree-of-freedom
// space and the reduced space a direct solver actually factors, by
// eliminating linearly-constrained (slave) unknowns ahead of
// factorisation and reconstructing them afterwards.
package constraint

import (
	"errors"
	"fmt"

	"github.com/jemjive/skyline/sparsemat"
)

// ErrInconsistent is returned by Update when the constraint set cannot be
// resolved: a cyclic master graph, or a slave referencing a DOF that does
// not exist in the full matrix.
var ErrInconsistent = errors.New("constraint: inconsistent constraint set")

// InconsistentError carries the offending DOF alongside ErrInconsistent.
type InconsistentError struct {
	DOF    int
	Reason string
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("constraint: dof %d: %s", e.DOF, e.Reason)
}

func (e *InconsistentError) Unwrap() error { return ErrInconsistent }

// Handler abstracts the mapping between the caller's full DOF space
// (dimension n) and the reduced space a direct solver factors (dimension
// m <= n).
type Handler interface {
	// Update reads the full matrix and the handler's constraint set and
	// rebuilds the reduced matrix and transfer operator. It must be
	// called before ReducedMatrix, ReduceRHS or ExpandLHS are used with
	// a new full matrix.
	Update(full sparsemat.Matrix) error

	// ReducedSize returns m, the dimension of the reduced space.
	ReducedSize() int

	// ReduceRHS maps a full-space right-hand side to the reduced space.
	ReduceRHS(bFull []float64) []float64

	// ExpandLHS maps a reduced-space solution back to the full space.
	ExpandLHS(yRed []float64) []float64

	// ReducedMatrix returns a view of the reduced system, suitable for
	// handing to a direct factoriser.
	ReducedMatrix() sparsemat.Matrix
}
