// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

// Start builds the permutation, scales and assembles the matrix, and
// computes the L*U factorisation. On any failure the factoriser is left
// in StateIdle with its arenas freed, per spec section 7's propagation
// policy.
func (f *Factoriser) Start() error {
	f.state = StateStarted
	f.zeroPivotCount = 0
	f.firstZeroSet = false

	n, m := f.a.Shape()
	if n != m || n < 0 {
		f.Finish()
		return ErrShape
	}

	f.computeOrdering()
	f.computeProfile()
	if err := f.allocate(); err != nil {
		f.Finish()
		return err
	}
	f.scaleRows()
	f.assembleValues()

	if err := f.crout(); err != nil {
		f.Finish()
		return err
	}

	f.structAtStart = f.a.StructureVersion()
	f.valuesAtStart = f.a.ValuesVersion()
	f.state = StateFactored
	return nil
}

// Stale reports whether the borrowed matrix has changed since the last
// successful Start, by comparing version counters (spec section 4.1/5).
func (f *Factoriser) Stale() bool {
	if f.state != StateFactored {
		return f.state == StateStale
	}
	return f.a.ValuesVersion() != f.valuesAtStart
}
