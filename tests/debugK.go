// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"

	"github.com/sayujks0071/life-sub001/modes"
)

// K helps on checking stiffness operators
type K struct {
	Tst  *testing.T // testing structure
	Tol  float64    // tolerance to compare K's; relative to max |K|
	Step float64    // step for finite differences method
	Verb bool       // verbose: show results
}

// energy returns the bending energy ½ Σ B_r (y_{r-1} - 2 y_r + y_{r+1})² / h⁴
func energy(B, y []float64, h float64) (e float64) {
	for r := 1; r < len(y)-1; r++ {
		d := (y[r-1] - 2*y[r] + y[r+1]) / (h * h)
		e += 0.5 * B[r] * d * d
	}
	return
}

// CheckOperator compares modes.Operator with the numerical Hessian of the bending energy
// for all free degrees of freedom
func (o *K) CheckOperator(B, s []float64) {
	K, err := modes.Operator(B, s)
	if err != nil {
		o.Tst.Errorf("CheckOperator: Operator failed:\n%v", err)
		return
	}
	n := len(s)
	h := s[1] - s[0]
	kmax := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			kmax = utl.Max(kmax, math.Abs(K.Get(i, j)))
		}
	}
	y := make([]float64, n)
	for i := 2; i < n; i++ {
		for j := 2; j < n; j++ {
			dnum := num.DerivCen5(0, o.Step, func(yj float64) float64 {
				y[j] = yj
				defer func() { y[j] = 0 }()
				return num.DerivCen5(0, o.Step, func(yi float64) float64 {
					bkp := y[i]
					y[i] += yi
					defer func() { y[i] = bkp }()
					return energy(B, y, h)
				})
			})
			e := math.Abs(K.Get(i, j)-dnum) / kmax
			if o.Verb && e > o.Tol {
				io.Pfred("K[%d][%d] = %v  num = %v  err = %v\n", i, j, K.Get(i, j), dnum, e)
			}
			if e > o.Tol {
				o.Tst.Errorf("CheckOperator: K[%d][%d] = %g differs from numerical value %g", i, j, K.Get(i, j), dnum)
				return
			}
		}
	}
	chk.PrintOk("K")
}

// CheckModes checks K⋅v = λ⋅v for all free degrees of freedom of all modes
func (o *K) CheckModes(B, s []float64, sp *modes.Spectrum) {
	K, err := modes.Operator(B, s)
	if err != nil {
		o.Tst.Errorf("CheckModes: Operator failed:\n%v", err)
		return
	}
	n := len(s)
	Kv := la.NewVector(n)
	for k := 0; k < sp.Len(); k++ {
		v, λ := sp.Modes[k], sp.Lambda[k]
		la.MatVecMul(Kv, 1, K, v)
		res := 0.0
		for i := 2; i < n; i++ {
			res = utl.Max(res, math.Abs(Kv[i]-λ*v[i]))
		}
		res /= λ * la.Vector(v).Largest(1)
		if o.Verb {
			io.Pf("mode %d: λ = %v  residual = %v\n", k+1, λ, res)
		}
		if res > o.Tol {
			o.Tst.Errorf("CheckModes: mode %d has residual %g > %g", k+1, res, o.Tol)
			return
		}
	}
	chk.PrintOk("K⋅v = λ⋅v")
}
