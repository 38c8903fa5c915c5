// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package modes implements the discrete bending-stiffness operator of a clamped-free rod and its eigenmodes
package modes

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/sayujks0071/life-sub001/grid"
)

// Threshold is the smallest eigenvalue accepted as a vibration mode
const Threshold = 1e-10

// number of clamped degrees of freedom at the base
const nclamped = 2

// Spectrum holds the lowest eigenpairs of K, in ascending order
type Spectrum struct {
	Lambda []float64   // [nmodes] eigenvalues
	Omega  []float64   // [nmodes] angular frequencies √λ
	Modes  [][]float64 // [nmodes][N] mode shapes with unit L2 norm over s
}

// Len returns the number of modes
func (o *Spectrum) Len() int { return len(o.Lambda) }

// Operator assembles K ≈ D2ᵀ⋅diag(B)⋅D2 with clamped base
//
//   D2[r] = [1, -2, 1] / h²   at columns r-1, r, r+1 for r = 1..N-2
//
//  rows and columns 0 and 1 are cleared and their diagonal set to 1. This
//  imposes y(0) = 0 and y'(0) = 0
func Operator(B, s []float64) (K *la.Matrix, err error) {

	// check input
	if err = grid.CheckField("stiffness", s, B); err != nil {
		return
	}
	if err = grid.CheckPositive("stiffness", B); err != nil {
		return
	}
	h, err := grid.Spacing(s)
	if err != nil {
		return
	}

	// assemble
	n := len(s)
	K = la.NewMatrix(n, n)
	h2 := h * h
	c := []float64{1.0 / h2, -2.0 / h2, 1.0 / h2}
	for r := 1; r < n-1; r++ {
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				K.Add(r-1+a, r-1+b, B[r]*c[a]*c[b])
			}
		}
	}

	// clamped base
	dofs := make([]int, 0, nclamped)
	for i := 0; i < nclamped && i < n; i++ {
		dofs = append(dofs, i)
	}
	K.ClearRC(dofs, dofs, 1)
	return
}

// Eigenmodes computes the nmodes lowest eigenpairs of the clamped-free operator
//
//  Input:
//   B      -- [N] bending stiffness; all values must be positive
//   s      -- [N] uniform arc-length grid
//   nmodes -- maximum number of modes
//
//  Output:
//   o -- spectrum with min(nmodes, N-2-nnull) modes where nnull is the number
//        of free-block eigenvalues not above Threshold
//
//  NOTE: the clamped rows hold unit diagonal entries which are constraint
//  directions, not vibration modes; only the free block of K is decomposed.
//  An eigenpair with a non-zero imaginary part gives an error
func Eigenmodes(B, s []float64, nmodes int) (o *Spectrum, err error) {

	// operator
	if nmodes < 0 {
		return nil, chk.Err("modes: number of modes must be non-negative; got %d", nmodes)
	}
	K, err := Operator(B, s)
	if err != nil {
		return
	}
	o = new(Spectrum)
	n := len(s)
	m := n - nclamped
	if m < 1 || nmodes == 0 {
		return
	}

	// free block
	A := la.NewMatrix(m, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			A.Set(i, j, K.Get(i+nclamped, j+nclamped))
		}
	}

	// dense eigen-solve
	w := la.NewVectorC(m)
	v := la.NewMatrixC(m, m)
	la.EigenVecR(v, w, A, false)

	// select and sort
	idx := make([]int, 0, m)
	for k := 0; k < m; k++ {
		if real(w[k]) > Threshold {
			idx = append(idx, k)
		}
	}
	sort.Slice(idx, func(a, b int) bool { return real(w[idx[a]]) < real(w[idx[b]]) })
	if len(idx) > nmodes {
		idx = idx[:nmodes]
	}

	// modes
	o.Lambda = make([]float64, len(idx))
	o.Omega = make([]float64, len(idx))
	o.Modes = make([][]float64, len(idx))
	for p, k := range idx {
		var col []float64
		if col, err = realPair(v, w, k); err != nil {
			return nil, err
		}
		λ := real(w[k])
		o.Lambda[p] = λ
		o.Omega[p] = math.Sqrt(math.Max(λ, 0))
		y := make([]float64, n)
		copy(y[nclamped:], col)
		if err = normalise(y, s); err != nil {
			return nil, err
		}
		o.Modes[p] = y
	}
	return
}

// realPair returns the real eigenvector k; an error is returned if the eigenvalue or the vector is complex
func realPair(v *la.MatrixC, w la.VectorC, k int) (col []float64, err error) {
	if imag(w[k]) != 0 {
		return nil, chk.Err("modes: eigenvalue %d is complex: %v", k, w[k])
	}
	defer func() {
		if r := recover(); r != nil {
			col, err = nil, chk.Err("modes: eigenvector %d is complex: %v", k, r)
		}
	}()
	return v.GetColReal(k, true), nil
}

// normalise scales y such that ∫y² ds = 1 and the tip value (or the largest value) is positive
func normalise(y, s []float64) (err error) {
	nrm := math.Sqrt(grid.Inner(y, y, s))
	if nrm == 0 || math.IsNaN(nrm) {
		return chk.Err("modes: cannot normalise mode with norm %g", nrm)
	}
	ref := y[len(y)-1]
	if math.Abs(ref) < 1e-12*nrm {
		for _, val := range y {
			if math.Abs(val) > math.Abs(ref) {
				ref = val
			}
		}
	}
	if ref < 0 {
		nrm = -nrm
	}
	for i := range y {
		y[i] /= nrm
	}
	return
}
