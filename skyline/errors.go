// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skyline

import (
	"errors"
	"fmt"
)

// ErrShape is returned by Start when the borrowed matrix is not square.
var ErrShape = errors.New("skyline: matrix is not square")

// ErrSingular is the sentinel wrapped by SingularError, returned when the
// zero-pivot budget set by SetMaxZeroPivots is exhausted during Start.
var ErrSingular = errors.New("skyline: matrix is numerically singular")

// ErrCancelled is returned by Start when the progress callback requests
// cancellation. The factoriser is left in StateIdle with its arenas freed.
var ErrCancelled = errors.New("skyline: factorisation cancelled")

// ErrOutOfMemory is returned by Start if arena sizing overflows or a
// requested allocation cannot be satisfied.
var ErrOutOfMemory = errors.New("skyline: could not allocate factorisation storage")

// ErrNotFactored is returned by Solve or GetNullSpace when called outside
// StateFactored.
var ErrNotFactored = errors.New("skyline: factoriser is not in the factored state")

// SingularError reports the first zero pivot encountered once the
// zero-pivot budget is exhausted.
type SingularError struct {
	ZeroPivots     int
	FirstIndex     int
	FirstMagnitude float64
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("skyline: singular matrix: %d zero pivot(s), first at row %d (|pivot|=%g)",
		e.ZeroPivots, e.FirstIndex, e.FirstMagnitude)
}

func (e *SingularError) Unwrap() error { return ErrSingular }
