// Copyright ©2026 The Jive Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/jemjive/skyline/sparsemat"

// LinearConstraint ties one slave degree of freedom to an affine
// combination of master degrees of freedom:
//
//	x[Slave] = sum_k Coeffs[k]*x[Masters[k]] + Offset
//
// A master may itself be a slave of another constraint; General resolves
// such chains transitively and reports ErrInconsistent if they cycle.
type LinearConstraint struct {
	Slave   int
	Masters []int
	Coeffs  []float64
	Offset  float64
}

type transferRow struct {
	col []int
	val []float64
}

// General is the master-slave elimination Handler: it eliminates each
// slave row/column by substituting its affine combination of masters,
// tracked as a sparse transfer operator T (x_full = T*y_red + c).
type General struct {
	cons []LinearConstraint

	n, m      int
	redIndex  []int // size n; -1 for a slave dof
	fullOfRed []int // size m; reduced index -> full dof
	offset    []float64

	rows []transferRow // size n, T's rows in sparse (col,val) form
	full sparsemat.Matrix
	red  *sparsemat.CSR
}

var _ Handler = (*General)(nil)

// NewGeneral returns a Handler that eliminates the given constraints.
func NewGeneral(cons []LinearConstraint) *General {
	return &General{cons: cons}
}

// Update implements Handler.
func (h *General) Update(full sparsemat.Matrix) error {
	n, _ := full.Shape()
	h.n = n
	h.full = full

	bySlave := make(map[int]LinearConstraint, len(h.cons))
	for _, c := range h.cons {
		if c.Slave < 0 || c.Slave >= n {
			return &InconsistentError{DOF: c.Slave, Reason: "slave dof does not exist"}
		}
		for _, mdof := range c.Masters {
			if mdof < 0 || mdof >= n {
				return &InconsistentError{DOF: c.Slave, Reason: "constraint references a master dof that does not exist"}
			}
		}
		if _, dup := bySlave[c.Slave]; dup {
			return &InconsistentError{DOF: c.Slave, Reason: "multiple constraints for the same slave dof"}
		}
		bySlave[c.Slave] = c
	}

	h.redIndex = make([]int, n)
	for i := range h.redIndex {
		h.redIndex[i] = -2 // not yet assigned
	}
	h.fullOfRed = nil
	next := 0
	for i := 0; i < n; i++ {
		if _, slave := bySlave[i]; !slave {
			h.redIndex[i] = next
			h.fullOfRed = append(h.fullOfRed, i)
			next++
		}
	}
	h.m = next

	h.offset = make([]float64, n)
	h.rows = make([]transferRow, n)

	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make([]int, n)
	combo := make([]map[int]float64, n)
	off := make([]float64, n)

	var resolve func(dof int) error
	resolve = func(dof int) error {
		if state[dof] == black {
			return nil
		}
		if state[dof] == gray {
			return &InconsistentError{DOF: dof, Reason: "cyclic master/slave graph"}
		}
		c, isSlave := bySlave[dof]
		if !isSlave {
			combo[dof] = map[int]float64{dof: 1}
			off[dof] = 0
			state[dof] = black
			return nil
		}
		state[dof] = gray
		acc := make(map[int]float64)
		var accOff float64
		for k, mdof := range c.Masters {
			if err := resolve(mdof); err != nil {
				return err
			}
			coeff := c.Coeffs[k]
			for fd, w := range combo[mdof] {
				acc[fd] += coeff * w
			}
			accOff += coeff * off[mdof]
		}
		accOff += c.Offset
		combo[dof] = acc
		off[dof] = accOff
		state[dof] = black
		return nil
	}

	for i := 0; i < n; i++ {
		if err := resolve(i); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		row := transferRow{}
		for fd, w := range combo[i] {
			if w == 0 {
				continue
			}
			row.col = append(row.col, h.redIndex[fd])
			row.val = append(row.val, w)
		}
		h.rows[i] = row
		h.offset[i] = off[i]
	}

	h.red = h.assembleReduced()
	return nil
}

func (h *General) assembleReduced() *sparsemat.CSR {
	var rows, cols []int
	var vals []float64
	n, _ := h.full.Shape()
	for i := 0; i < n; i++ {
		ri := h.rows[i]
		if len(ri.col) == 0 {
			continue
		}
		jcols := h.full.Columns(i)
		jvals := h.full.Values(i)
		for k, j := range jcols {
			v := jvals[k]
			if v == 0 {
				continue
			}
			rj := h.rows[j]
			for a := range ri.col {
				for b := range rj.col {
					rows = append(rows, ri.col[a])
					cols = append(cols, rj.col[b])
					vals = append(vals, ri.val[a]*rj.val[b]*v)
				}
			}
		}
	}
	return sparsemat.NewCSRFromTriplets(h.m, rows, cols, vals)
}

// ReducedSize implements Handler.
func (h *General) ReducedSize() int { return h.m }

// ReduceRHS implements Handler: b_red = T^T*(b_full - A_full*c).
func (h *General) ReduceRHS(bFull []float64) []float64 {
	diff := make([]float64, h.n)
	for i := 0; i < h.n; i++ {
		var ac float64
		cols := h.full.Columns(i)
		vals := h.full.Values(i)
		for k, j := range cols {
			ac += vals[k] * h.offset[j]
		}
		diff[i] = bFull[i] - ac
	}
	bRed := make([]float64, h.m)
	for i := 0; i < h.n; i++ {
		row := h.rows[i]
		for a := range row.col {
			bRed[row.col[a]] += row.val[a] * diff[i]
		}
	}
	return bRed
}

// ExpandLHS implements Handler: y_full = T*y_red + c.
func (h *General) ExpandLHS(yRed []float64) []float64 {
	out := make([]float64, h.n)
	for i := 0; i < h.n; i++ {
		row := h.rows[i]
		sum := h.offset[i]
		for a := range row.col {
			sum += row.val[a] * yRed[row.col[a]]
		}
		out[i] = sum
	}
	return out
}

// ReducedMatrix implements Handler.
func (h *General) ReducedMatrix() sparsemat.Matrix { return h.red }
