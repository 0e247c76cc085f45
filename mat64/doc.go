// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat64 provides basic linear algebra operations for float64 matrices.
//
// mat64 provides the concrete types Dense and Vector and an LU factorization
// type. Dense and Vector support element access, row and column access,
// views, copies and binary marshaling; Vector.MulVec computes a
// matrix-vector product and Vector.SolveLUVec solves a linear system with an
// LU factorization. The package also declares interfaces for a wider set of
// operations (Adder, Muler, Transposer and others) that Dense and Vector do
// not implement.
//
// Many operations are performed by calling into the gonum/blas/blas64 and
// gonum/lapack/lapack64 packages which implement BLAS and LAPACK routines
// respectively. By default, blas64 and lapack64 use native Go implementations
// of the routines. Alternatively, it is possible to use c-based libraries for
// the BLAS routines and/or the LAPACK routines with the respective cgo packages
// and Use routines. The Go implementation of LAPACK itself makes calls to blas64,
// so if a cgo BLAS implementation is used, the lapack64 calls will be partially
// executed in Go and partially executed in c.
//
// The Matrix interface represents an arbitrary matrix of float64 values. No
// specific guarantees are made about the performance of any method.
package mat64
