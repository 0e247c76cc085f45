// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/jemjive/skyline/sparsemat"

// Identity is the no-constraints Handler: the reduced space aliases the
// full space exactly.
type Identity struct {
	full sparsemat.Matrix
}

var _ Handler = (*Identity)(nil)

// NewIdentity returns a Handler with no constraints.
func NewIdentity() *Identity { return &Identity{} }

// Update implements Handler.
func (h *Identity) Update(full sparsemat.Matrix) error {
	h.full = full
	return nil
}

// ReducedSize implements Handler.
func (h *Identity) ReducedSize() int {
	n, _ := h.full.Shape()
	return n
}

// ReduceRHS implements Handler.
func (h *Identity) ReduceRHS(bFull []float64) []float64 {
	out := make([]float64, len(bFull))
	copy(out, bFull)
	return out
}

// ExpandLHS implements Handler.
func (h *Identity) ExpandLHS(yRed []float64) []float64 {
	out := make([]float64, len(yRed))
	copy(out, yRed)
	return out
}

// ReducedMatrix implements Handler.
func (h *Identity) ReducedMatrix() sparsemat.Matrix { return h.full }
