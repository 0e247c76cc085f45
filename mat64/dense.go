// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat64

import "github.com/gonum/blas"

var blasEngine blas.Float64

// Register sets the BLAS engine used by Dense.Col and Dense.SetCol.
func Register(b blas.Float64) { blasEngine = b }

// Registered returns the currently registered BLAS engine, or nil.
func Registered() blas.Float64 { return blasEngine }

// Dense is a dense matrix representation backed by a row-major slice.
type Dense struct {
	mat RawMatrix
}

// NewDense creates a new Dense matrix with r rows and c columns. If mat is
// nil, a new slice is allocated for the backing slice. If mat is not nil, it
// must hold r*c elements and will be used as the backing slice.
func NewDense(r, c int, mat []float64) *Dense {
	if mat != nil && r*c != len(mat) {
		panic(ErrShape)
	}
	if mat == nil {
		mat = make([]float64, r*c)
	}
	return &Dense{RawMatrix{
		Rows:   r,
		Cols:   c,
		Stride: c,
		Data:   mat,
	}}
}

// DenseCopyOf returns a newly allocated copy of the elements of a.
func DenseCopyOf(a Matrix) *Dense {
	d := &Dense{}
	d.Clone(a)
	return d
}

// LoadRawMatrix sets the underlying representation of m to b. There is no
// restriction on the shape of the receiver.
func (m *Dense) LoadRawMatrix(b RawMatrix) { m.mat = b }

// RawMatrix returns the underlying RawMatrix used by m. Changes to the
// returned RawMatrix.Data slice will be reflected in m.
func (m *Dense) RawMatrix() RawMatrix { return m.mat }

func (m *Dense) isZero() bool {
	return m.mat.Cols == 0 || m.mat.Rows == 0
}

// Dims returns the number of rows and columns in the matrix.
func (m *Dense) Dims() (r, c int) { return m.mat.Rows, m.mat.Cols }

// At returns the value of the matrix element at (r, c). It panics if r or c
// are out of bounds for the matrix.
func (m *Dense) At(r, c int) float64 {
	if r < 0 || r >= m.mat.Rows {
		panic(ErrRowAccess)
	}
	if c < 0 || c >= m.mat.Cols {
		panic(ErrColAccess)
	}
	return m.at(r, c)
}

func (m *Dense) at(r, c int) float64 {
	return m.mat.Data[r*m.mat.Stride+c]
}

// Set alters the matrix element at (r, c) to v. It panics if r or c are out
// of bounds for the matrix.
func (m *Dense) Set(r, c int, v float64) {
	if r < 0 || r >= m.mat.Rows {
		panic(ErrRowAccess)
	}
	if c < 0 || c >= m.mat.Cols {
		panic(ErrColAccess)
	}
	m.set(r, c, v)
}

func (m *Dense) set(r, c int, v float64) {
	m.mat.Data[r*m.mat.Stride+c] = v
}

// Col copies the values of the c-th column into col, returning the slice.
// If col is nil, a new slice is allocated.
func (m *Dense) Col(col []float64, c int) []float64 {
	if c < 0 || c >= m.mat.Cols {
		panic(ErrColAccess)
	}
	if col == nil {
		col = make([]float64, m.mat.Rows)
	}
	col = col[:min(len(col), m.mat.Rows)]
	if blasEngine == nil {
		panic(ErrNoEngine)
	}
	blasEngine.Dcopy(len(col), m.mat.Data[c:], m.mat.Stride, col, 1)
	return col
}

// SetCol sets the values of the c-th column to the values held in v,
// returning the number of elements copied.
func (m *Dense) SetCol(c int, v []float64) int {
	if c < 0 || c >= m.mat.Cols {
		panic(ErrColAccess)
	}
	if blasEngine == nil {
		panic(ErrNoEngine)
	}
	n := min(len(v), m.mat.Rows)
	blasEngine.Dcopy(n, v, 1, m.mat.Data[c:], m.mat.Stride)
	return n
}

// Row copies the values of the r-th row into row, returning the slice. If
// row is nil, a new slice is allocated.
func (m *Dense) Row(row []float64, r int) []float64 {
	if r < 0 || r >= m.mat.Rows {
		panic(ErrRowAccess)
	}
	if row == nil {
		row = make([]float64, m.mat.Cols)
	}
	copy(row, m.rowView(r))
	return row
}

// SetRow sets the values of the r-th row to the values held in v, returning
// the number of elements copied.
func (m *Dense) SetRow(r int, v []float64) int {
	if r < 0 || r >= m.mat.Rows {
		panic(ErrRowAccess)
	}
	return copy(m.rowView(r), v)
}

// RowView returns a slice reflecting the r-th row, backed by the matrix
// data.
func (m *Dense) RowView(r int) []float64 {
	if r < 0 || r >= m.mat.Rows {
		panic(ErrRowAccess)
	}
	return m.rowView(r)
}

func (m *Dense) rowView(r int) []float64 {
	return m.mat.Data[r*m.mat.Stride : r*m.mat.Stride+m.mat.Cols]
}

// reuseAs resizes an empty matrix to r×c, or checks that a non-empty matrix
// already has those dimensions, panicking with ErrShape otherwise.
func (m *Dense) reuseAs(r, c int) {
	if m.isZero() {
		m.mat = RawMatrix{
			Rows:   r,
			Cols:   c,
			Stride: c,
			Data:   use(m.mat.Data, r*c),
		}
		return
	}
	if r != m.mat.Rows || c != m.mat.Cols {
		panic(ErrShape)
	}
}

// isolatedWorkspace returns a new Dense matrix with the same dimensions as
// a, and a restore function that copies its contents back into m once the
// caller is done using it as scratch space. It is used when the receiver
// and an operand alias the same backing storage.
func (m *Dense) isolatedWorkspace(a Matrix) (w *Dense, restore func()) {
	r, c := a.Dims()
	w = NewDense(r, c, nil)
	return w, func() {
		m.Copy(w)
	}
}

// View returns a Matrix that shares the backing storage of m, beginning at
// row i, column j and extending r rows and c columns.
func (m *Dense) View(i, j, r, c int) Matrix {
	if i < 0 || j < 0 || r <= 0 || c <= 0 || i+r > m.mat.Rows || j+c > m.mat.Cols {
		panic(ErrIndexOutOfRange)
	}
	v := *m
	v.mat.Data = m.mat.Data[i*m.mat.Stride+j : (i+r-1)*m.mat.Stride+j+c]
	v.mat.Rows = r
	v.mat.Cols = c
	return &v
}

// Clone makes a copy of a into the receiver, replacing any previous value.
func (m *Dense) Clone(a Matrix) {
	r, c := a.Dims()
	mat := RawMatrix{
		Rows:   r,
		Cols:   c,
		Stride: c,
		Data:   make([]float64, r*c),
	}
	if ar, ok := a.(RawMatrixer); ok {
		amat := ar.RawMatrix()
		for i := 0; i < r; i++ {
			copy(mat.Data[i*c:(i+1)*c], amat.Data[i*amat.Stride:i*amat.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				mat.Data[i*c+j] = a.At(i, j)
			}
		}
	}
	m.mat = mat
}

// Copy copies the elements of a into the receiver, filling the overlapping
// submatrix of the two. It returns the number of rows and columns copied.
func (m *Dense) Copy(a Matrix) (r, c int) {
	r, c = a.Dims()
	r = min(r, m.mat.Rows)
	c = min(c, m.mat.Cols)
	if ar, ok := a.(RawMatrixer); ok {
		amat := ar.RawMatrix()
		for i := 0; i < r; i++ {
			copy(m.mat.Data[i*m.mat.Stride:i*m.mat.Stride+c], amat.Data[i*amat.Stride:i*amat.Stride+c])
		}
		return r, c
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.set(i, j, a.At(i, j))
		}
	}
	return r, c
}

func zero(f []float64) {
	for i := range f {
		f[i] = 0
	}
}

// Equal reports whether a and b have the same shape and equal elements.
func Equal(a, b Matrix) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}
	return true
}
