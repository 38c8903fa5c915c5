// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modes

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/sayujks0071/life-sub001/ana"
	"github.com/sayujks0071/life-sub001/grid"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func uniformB(n int, val float64) []float64 {
	B := make([]float64, n)
	for i := range B {
		B[i] = val
	}
	return B
}

func Test_operator01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("operator01. symmetric operator with clamped base")

	s := grid.Uniform(1, 7)
	K, err := Operator(uniformB(7, 2.0), s)
	if err != nil {
		tst.Errorf("Operator failed:\n%v", err)
		return
	}
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			chk.Float64(tst, io.Sf("K[%d][%d]", i, j), 1e-9, K.Get(i, j), K.Get(j, i))
		}
	}
	for _, i := range []int{0, 1} {
		for j := 0; j < 7; j++ {
			val := 0.0
			if i == j {
				val = 1
			}
			chk.Float64(tst, io.Sf("K[%d][%d]", i, j), 1e-15, K.Get(i, j), val)
		}
	}

	// interior row of D2ᵀ⋅D2 for unit stiffness is [1, -4, 6, -4, 1]/h⁴
	h4 := math.Pow(s[1]-s[0], 4)
	chk.Array(tst, "K[3]", 1e-6, []float64{K.Get(3, 1), K.Get(3, 2), K.Get(3, 3), K.Get(3, 4), K.Get(3, 5)},
		[]float64{2 / h4, -8 / h4, 12 / h4, -8 / h4, 2 / h4})
}

func Test_modes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modes01. ordering, normalisation and analytic eigenvalues")

	n := 101
	s := grid.Uniform(1, n)
	B := uniformB(n, 1.0)
	o, err := Eigenmodes(B, s, 4)
	if err != nil {
		tst.Errorf("Eigenmodes failed:\n%v", err)
		return
	}
	chk.Int(tst, "nmodes", o.Len(), 4)
	io.Pforan("λ = %v\n", o.Lambda)
	io.Pforan("ω = %v\n", o.Omega)
	for i := 0; i < o.Len(); i++ {
		chk.Bool(tst, io.Sf("λ%d > 0", i), o.Lambda[i] > 0, true)
		if i > 0 {
			chk.Bool(tst, io.Sf("λ%d ≥ λ%d", i, i-1), o.Lambda[i] >= o.Lambda[i-1], true)
		}
		chk.Float64(tst, io.Sf("ω%d", i), 1e-12, o.Omega[i], math.Sqrt(o.Lambda[i]))
		y := o.Modes[i]
		chk.Int(tst, "len(mode)", len(y), n)
		chk.Float64(tst, io.Sf("‖V%d‖", i), 1e-10, grid.Inner(y, y, s), 1)
		chk.Float64(tst, "y(0)", 1e-15, y[0], 0)
		chk.Float64(tst, "y(h)", 1e-15, y[1], 0)
		chk.Bool(tst, "tip ≥ 0", y[n-1] >= 0, true)
	}

	for i, tol := range []float64{1e-3, 1e-2} {
		λ, _ := ana.ClampedFreeLambda(i+1, 1, 1)
		io.Pfcyan("λ%d: num = %v  ana = %v\n", i+1, o.Lambda[i], λ)
		chk.Float64(tst, io.Sf("λ%d/λana", i+1), tol, o.Lambda[i]/λ, 1)
	}

	// eigenvalues scale with the stiffness
	o3, err := Eigenmodes(uniformB(n, 3.0), s, 2)
	if err != nil {
		tst.Errorf("Eigenmodes failed:\n%v", err)
		return
	}
	chk.Float64(tst, "λ(3B)/λ(B)", 1e-8, o3.Lambda[0]/o.Lambda[0], 3)
}

func Test_modes02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modes02. mode count and invalid stiffness")

	s := grid.Uniform(1, 6)
	o, err := Eigenmodes(uniformB(6, 1), s, 10)
	if err != nil {
		tst.Errorf("Eigenmodes failed:\n%v", err)
		return
	}
	chk.Int(tst, "available modes", o.Len(), 4)

	o, err = Eigenmodes(uniformB(6, 1), s, 0)
	if err != nil {
		tst.Errorf("Eigenmodes failed:\n%v", err)
		return
	}
	chk.Int(tst, "no modes", o.Len(), 0)

	o, err = Eigenmodes(uniformB(2, 1), grid.Uniform(1, 2), 3)
	if err != nil {
		tst.Errorf("Eigenmodes failed:\n%v", err)
		return
	}
	chk.Int(tst, "clamped only", o.Len(), 0)

	B := uniformB(6, 1)
	B[3] = 0
	_, err = Eigenmodes(B, s, 2)
	chk.Bool(tst, "zero stiffness", errors.Is(err, grid.ErrNonPositive), true)

	_, err = Eigenmodes(uniformB(5, 1), s, 2)
	chk.Bool(tst, "mismatch", errors.Is(err, grid.ErrShapeMismatch), true)

	_, err = Eigenmodes(uniformB(9, 1), grid.Nonuniform(1, 9, 3), 2)
	chk.Bool(tst, "non-uniform", errors.Is(err, grid.ErrNonUniform), true)

	_, err = Eigenmodes(uniformB(6, 1), s, -1)
	chk.Bool(tst, "negative count", err != nil, true)
}

func Test_modes03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modes03. complex eigenpairs are rejected")

	v := la.NewMatrixC(2, 2)
	v.Set(0, 0, 0.6)
	v.Set(1, 0, 0.8)
	v.Set(0, 1, complex(0.6, 0.1))
	v.Set(1, 1, 0.8)
	w := la.VectorC{2, 3, complex(4, 1)}

	col, err := realPair(v, w, 0)
	if err != nil {
		tst.Errorf("realPair failed:\n%v", err)
		return
	}
	chk.Array(tst, "real vector", 1e-15, col, []float64{0.6, 0.8})

	_, err = realPair(v, w, 1)
	chk.Bool(tst, "complex vector", err != nil, true)

	_, err = realPair(v, w, 2)
	chk.Bool(tst, "complex value", err != nil, true)

	o, err := Eigenmodes(uniformB(6, 1), grid.Uniform(1, 6), 10)
	if err != nil {
		tst.Errorf("Eigenmodes failed:\n%v", err)
		return
	}
	chk.Int(tst, "free dofs only", o.Len(), 4)
}
