// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iec

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/sayujks0071/life-sub001/ana"
	"github.com/sayujks0071/life-sub001/grid"
	"github.com/sayujks0071/life-sub001/shape"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func newState(tst *testing.T, withInfo bool) *grid.State {
	s := grid.Uniform(1, 201)
	sol := &ana.Sinusoid{A: 0.01, K: 6 * math.Pi}
	kappa0 := sol.SampleKappa(s)
	var info []float64
	if withInfo {
		info = make([]float64, len(s))
		for i, x := range s {
			info[i] = math.Sin(6 * math.Pi * x)
		}
	}
	st, err := grid.NewState(s, kappa0, info, nil)
	if err != nil {
		tst.Fatalf("NewState failed:\n%v", err)
	}
	return st
}

func Test_iec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iec01. baseline equivalence")

	for _, withInfo := range []bool{false, true} {
		st := newState(tst, withInfo)
		prms := []Params{{ChiK: 0}, {ChiK: 0, ChiE: 0.5}}
		if !withInfo {
			prms = append(prms, Params{ChiK: 0.3})
		}
		for _, prm := range prms {
			kappa, err := TargetCurvature(st, prm)
			if err != nil {
				tst.Errorf("TargetCurvature failed:\n%v", err)
				return
			}
			for i := range kappa {
				if kappa[i] != st.Kappa0[i] {
					tst.Errorf("κ_target[%d] = %v != κ₀[%d] = %v (info=%v, prm=%+v)", i, kappa[i], i, st.Kappa0[i], withInfo, prm)
					return
				}
			}

			// result must not alias the input
			kappa[0] = 123
			chk.Bool(tst, "κ₀ untouched", st.Kappa0[0] != 123, true)
		}
	}
}

func Test_iec02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iec02. gradient coupling")

	st := newState(tst, true)
	prm := Params{ChiK: 0.2}
	kappa, err := TargetCurvature(st, prm)
	if err != nil {
		tst.Errorf("TargetCurvature failed:\n%v", err)
		return
	}
	dk, err := Perturbation(st, prm)
	if err != nil {
		tst.Errorf("Perturbation failed:\n%v", err)
		return
	}
	k := 6 * math.Pi
	for i := 10; i < st.N()-10; i += 20 {
		x := st.S[i]
		ref := prm.ChiK * k * math.Cos(k*x)
		io.Pforan("s = %5.3f  δκ = %10.6f  ref = %10.6f\n", x, dk[i], ref)
		chk.Float64(tst, io.Sf("δκ(%g)", x), 1e-2, dk[i], ref)
		chk.Float64(tst, "κ = κ₀ + δκ", 1e-15, kappa[i], st.Kappa0[i]+dk[i])
	}
}

func Test_iec03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iec03. flat information field round trip")

	st := newState(tst, false)
	flat := make([]float64, st.N())
	for i := range flat {
		flat[i] = 0.7
	}
	stFlat, err := st.WithInfo(flat)
	if err != nil {
		tst.Errorf("WithInfo failed:\n%v", err)
		return
	}
	kappa, err := TargetCurvature(stFlat, Params{ChiK: 0.5})
	if err != nil {
		tst.Errorf("TargetCurvature failed:\n%v", err)
		return
	}
	base, _ := shape.Integrate(st.S, st.Kappa0, shape.ClampedFree)
	coup, _ := shape.Integrate(st.S, kappa, shape.ClampedFree)
	chk.Array(tst, "y", 1e-15, coup.Y, base.Y)
}

func Test_iec04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("iec04. amplitude factor and validation")

	prm := Params{ChiK: 0.1, ChiE: 0.25}
	chk.Float64(tst, "1+χE", 1e-15, AmplitudeFactor(prm), 1.25)
	k := []float64{1, -2, 4}
	r := ApplyAmplitude(k, prm)
	chk.Array(tst, "scaled", 1e-15, r, []float64{1.25, -2.5, 5})
	chk.Array(tst, "input untouched", 1e-15, k, []float64{1, -2, 4})

	st := newState(tst, true)
	_, err := TargetCurvature(st, Params{ChiK: math.NaN()})
	chk.Bool(tst, "NaN χk", errors.Is(err, grid.ErrNonFinite), true)
	_, err = TargetCurvature(nil, Params{})
	chk.Bool(tst, "nil state", err != nil, true)
}
