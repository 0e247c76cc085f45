// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat64

import (
	"github.com/gonum/blas"
	"github.com/gonum/blas/blas64"
)

// Vector represents a column vector.
type Vector struct {
	mat blas64.Vector
	n   int
	// A BLAS vector can have a negative increment, but allowing this
	// in the mat64 type complicates a lot of code, and doesn't gain anything.
	// Vector must have positive increment in this package.
}

// NewVector creates a new Vector of length n. If len(data) == n, data is used
// as the backing data slice. If data == nil, a new slice is allocated. If
// neither of these is true, NewVector will panic.
func NewVector(n int, data []float64) *Vector {
	if len(data) != n && data != nil {
		panic(ErrShape)
	}
	if data == nil {
		data = make([]float64, n)
	}
	return &Vector{
		mat: blas64.Vector{
			Inc:  1,
			Data: data,
		},
		n: n,
	}
}

// ViewVec returns a sub-vector view of the receiver starting at element i and
// extending n columns. If i is out of range, or if n is zero or extend beyond the
// bounds of the Vector ViewVec will panic with ErrIndexOutOfRange. The returned
// Vector retains reference to the underlying vector.
func (m *Vector) ViewVec(i, n int) *Vector {
	if i < 0 || n <= 0 || i+n > m.n {
		panic(ErrIndexOutOfRange)
	}
	return &Vector{
		n: n,
		mat: blas64.Vector{
			Inc:  m.mat.Inc,
			Data: m.mat.Data[i*m.mat.Inc:],
		},
	}
}

func (m *Vector) Dims() (r, c int) { return m.n, 1 }

// Len returns the length of the vector.
func (m *Vector) Len() int {
	return m.n
}

func (m *Vector) Reset() {
	m.mat.Data = m.mat.Data[:0]
	m.mat.Inc = 0
	m.n = 0
}

func (m *Vector) RawVector() blas64.Vector {
	return m.mat
}

func (v *Vector) isZero() bool {
	return v.n == 0
}

// At returns the value at index i. It panics if i is out of bounds.
func (v *Vector) At(i, c int) float64 {
	if c != 0 {
		panic(ErrColAccess)
	}
	if i < 0 || i >= v.n {
		panic(ErrRowAccess)
	}
	return v.at(i)
}

func (v *Vector) at(i int) float64 {
	return v.mat.Data[i*v.mat.Inc]
}

// Set alters the value at index i to val. It panics if i is out of bounds.
func (v *Vector) Set(i, c int, val float64) {
	if c != 0 {
		panic(ErrColAccess)
	}
	if i < 0 || i >= v.n {
		panic(ErrRowAccess)
	}
	v.set(i, val)
}

func (v *Vector) set(i int, val float64) {
	v.mat.Data[i*v.mat.Inc] = val
}

// SetVec alters the value at index i to val. It panics if i is out of
// bounds for the vector.
func (v *Vector) SetVec(i int, val float64) {
	if i < 0 || i >= v.n {
		panic(ErrVectorAccess)
	}
	v.set(i, val)
}

// reuseAs resizes an empty vector to length n, or checks that a non-empty
// vector already has that length, panicking with ErrShape otherwise.
func (v *Vector) reuseAs(n int) {
	if v.isZero() {
		v.mat = blas64.Vector{
			Inc:  1,
			Data: use(v.mat.Data, n),
		}
		v.n = n
		return
	}
	if n != v.n {
		panic(ErrShape)
	}
}

// isolatedWorkspace returns a new Vector with the same length as a, and a
// restore function that copies its contents back into v once the caller is
// done using it as scratch space. It is used when the receiver and an
// operand alias the same backing storage.
func (v *Vector) isolatedWorkspace(a *Vector) (w *Vector, restore func()) {
	n := a.Len()
	w = NewVector(n, nil)
	return w, func() {
		v.CopyVec(w)
	}
}

// CopyVec copies the elements of a into the receiver, copying the minimum
// of the two lengths. It returns the number of elements copied.
func (v *Vector) CopyVec(a *Vector) int {
	n := min(v.Len(), a.Len())
	if v != a {
		blas64.Copy(n, a.mat, v.mat)
	}
	return n
}

// MulVec computes a * b if trans == false and a^T * b if trans == true. The
// result is stored into the reciever. MulVec panics if the number of columns in
// a does not equal the number of rows in b.
func (m *Vector) MulVec(a Matrix, trans bool, b *Vector) {
	ar, ac := a.Dims()
	br, _ := b.Dims()
	if trans {
		if ar != br {
			panic(ErrShape)
		}
	} else {
		if ac != br {
			panic(ErrShape)
		}
	}

	var w Vector
	if m != a && m != b {
		w = *m
	}
	if w.n == 0 {
		if trans {
			w.mat.Data = use(w.mat.Data, ac)
		} else {
			w.mat.Data = use(w.mat.Data, ar)
		}

		w.mat.Inc = 1
		w.n = ar
	} else {
		if trans {
			if ac != w.n {
				panic(ErrShape)
			}
		} else {
			if ar != w.n {
				panic(ErrShape)
			}
		}
	}

	if a, ok := a.(RawMatrixer); ok {
		amat := a.RawMatrix()
		t := blas.NoTrans
		if trans {
			t = blas.Trans
		}
		blas64.Gemv(t,
			1, amat, b.mat,
			0, w.mat,
		)
		*m = w
		return
	}

	if a, ok := a.(Vectorer); ok {
		row := make([]float64, ac)
		for r := 0; r < ar; r++ {
			w.mat.Data[r*m.mat.Inc] = blas64.Dot(ac,
				blas64.Vector{Inc: 1, Data: a.Row(row, r)},
				b.mat,
			)
		}
		*m = w
		return
	}

	row := make([]float64, ac)
	for r := 0; r < ar; r++ {
		for i := range row {
			row[i] = a.At(r, i)
		}
		var v float64
		for i, e := range row {
			v += e * b.mat.Data[i*b.mat.Inc]
		}
		w.mat.Data[r*m.mat.Inc] = v
	}
	*m = w
}
