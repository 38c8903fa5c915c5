// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/sayujks0071/life-sub001/ana"
	"github.com/sayujks0071/life-sub001/grid"
	"github.com/sayujks0071/life-sub001/iec"
	"github.com/sayujks0071/life-sub001/shape"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_wavelength01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wavelength01. dominant wavelength of sinusoids")

	s := grid.Uniform(1, 401)
	for _, nper := range []float64{2, 3, 5} {
		sol := &ana.Sinusoid{A: 0.3, K: 2 * math.Pi * nper, Phi: 0.2}
		λ, err := Wavelength(sol.SampleY(s), s)
		if err != nil {
			tst.Errorf("Wavelength failed:\n%v", err)
			return
		}
		io.Pforan("periods = %g  λ = %v\n", nper, λ)
		chk.Float64(tst, "λ", λ*0.01, λ, 1.0/nper)
	}

	// a constant offset is ignored
	y := (&ana.Sinusoid{A: 1, K: 8 * math.Pi}).SampleY(s)
	for i := range y {
		y[i] += 10
	}
	λ, _ := Wavelength(y, s)
	chk.Float64(tst, "λ with offset", 0.01, λ, 0.25)
}

func Test_wavelength02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wavelength02. undefined wavelength sentinel")

	λ, err := Wavelength([]float64{1}, []float64{0})
	if err != nil {
		tst.Errorf("Wavelength failed:\n%v", err)
		return
	}
	chk.Bool(tst, "one point", math.IsInf(λ, 1), true)

	λ, _ = Wavelength([]float64{2, 2, 2, 2}, grid.Uniform(1, 4))
	chk.Bool(tst, "flat signal", math.IsInf(λ, 1), true)

	_, err = Wavelength([]float64{1, 2}, grid.Uniform(1, 3))
	chk.Bool(tst, "mismatch", errors.Is(err, grid.ErrShapeMismatch), true)

	Δφ, err := PhaseShift([]float64{3, 3, 3}, []float64{1, 2, 3}, grid.Uniform(1, 3))
	if err != nil {
		tst.Errorf("PhaseShift failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Δφ with undefined λ", 1e-15, Δφ, 0)
}

func Test_wavelength03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("wavelength03. round-off floor and graded grids")

	for _, n := range []int{3, 7, 11} {
		y := make([]float64, n)
		for i := range y {
			y[i] = 0.1
		}
		λ, err := Wavelength(y, grid.Uniform(1, n))
		if err != nil {
			tst.Errorf("Wavelength failed:\n%v", err)
			return
		}
		io.Pforan("n=%d: λ = %v\n", n, λ)
		chk.Bool(tst, io.Sf("constant 0.1 with n=%d", n), math.IsInf(λ, 1), true)
	}

	s := grid.Uniform(1, 201)
	y := make([]float64, len(s))
	for i, x := range s {
		y[i] = 1e-9 * math.Sin(6*math.Pi*x)
	}
	λ, err := Wavelength(y, s)
	if err != nil {
		tst.Errorf("Wavelength failed:\n%v", err)
		return
	}
	chk.Float64(tst, "tiny amplitude", 0.02, λ, 1.0/3.0)

	g := grid.Nonuniform(1, 401, 3)
	yg := make([]float64, len(g))
	for i, x := range g {
		yg[i] = 0.01 * math.Sin(6*math.Pi*x)
	}
	_, err = Wavelength(yg, g)
	io.Pforan("graded: %v\n", err)
	chk.Bool(tst, "graded wavelength", errors.Is(err, grid.ErrNonUniform), true)

	_, err = PhaseShift(yg, yg, g)
	chk.Bool(tst, "graded phase shift", errors.Is(err, grid.ErrNonUniform), true)

	_, err = Compare(g, yg, yg)
	chk.Bool(tst, "graded comparison", errors.Is(err, grid.ErrNonUniform), true)
	chk.Bool(tst, "invalid input", grid.IsInvalidInput(err), true)
}

func Test_phase01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phase01. lag of shifted signals")

	a := []float64{0, 0, 1, 0, 0, 0}
	b := []float64{0, 0, 0, 0, 1, 0}
	lag, err := Lag(a, b)
	if err != nil {
		tst.Errorf("Lag failed:\n%v", err)
		return
	}
	chk.Int(tst, "lag", lag, -2)
	lag, _ = Lag(b, a)
	chk.Int(tst, "lag", lag, 2)
	lag, _ = Lag(a, a)
	chk.Int(tst, "lag", lag, 0)

	n := 1001
	s := grid.Uniform(1, n)
	ds := s[1] - s[0]
	sol := &ana.Sinusoid{A: 1, K: 20 * math.Pi}
	y1 := sol.SampleY(s)
	y2 := make([]float64, n)
	for i, x := range s {
		y2[i] = sol.Y(x - 10*ds)
	}
	λ, _ := Wavelength(y1, s)
	Δφ, err := PhaseShift(y1, y2, s)
	if err != nil {
		tst.Errorf("PhaseShift failed:\n%v", err)
		return
	}
	io.Pforan("λ = %v  Δφ = %v\n", λ, Δφ)
	chk.Float64(tst, "Δφ", 2*math.Pi*2*ds/λ, Δφ, -2*math.Pi*10*ds/λ)
}

func Test_amplitude01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("amplitude01. half peak-to-peak")

	chk.Float64(tst, "A", 1e-15, Amplitude([]float64{-1, 3, 0.5}), 2)
	chk.Float64(tst, "empty", 1e-15, Amplitude(nil), 0)

	s := grid.Uniform(1, 3)
	e, err := L2Error([]float64{1, 1, 1}, []float64{0, 0, 0}, s)
	if err != nil {
		tst.Errorf("L2Error failed:\n%v", err)
		return
	}
	chk.Float64(tst, "L2", 1e-15, e, 1)
}

// coupled returns the baseline and coupled centrelines of the reference experiment
func coupled(tst *testing.T, prm iec.Params) (s, ybase, ycoup []float64) {
	n := 401
	k := 6 * math.Pi
	s = grid.Uniform(1, n)
	sol := &ana.Sinusoid{A: 0.01, K: k}
	info := make([]float64, n)
	for i, x := range s {
		info[i] = math.Sin(k * x)
	}
	st, err := grid.NewState(s, sol.SampleKappa(s), info, nil)
	if err != nil {
		tst.Fatalf("NewState failed:\n%v", err)
	}
	kappa, err := iec.TargetCurvature(st, prm)
	if err != nil {
		tst.Fatalf("TargetCurvature failed:\n%v", err)
	}
	kappa = iec.ApplyAmplitude(kappa, prm)
	base, err := shape.Integrate(s, st.Kappa0, shape.ClampedFree)
	if err != nil {
		tst.Fatalf("Integrate failed:\n%v", err)
	}
	coup, err := shape.Integrate(s, kappa, shape.ClampedFree)
	if err != nil {
		tst.Fatalf("Integrate failed:\n%v", err)
	}
	return s, base.Y, coup.Y
}

func Test_compare01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compare01. phase coupling keeps the wavelength")

	s, ybase, ycoup := coupled(tst, iec.Params{ChiK: 0.01 * 6 * math.Pi})
	o, err := Compare(s, ybase, ycoup)
	if err != nil {
		tst.Errorf("Compare failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", o)
	chk.Bool(tst, "phase shift is significant", math.Abs(o.PhaseShift) > 0.1, true)
	chk.Bool(tst, "wavelength preserved", o.WavelengthPreserved(), true)
	chk.Float64(tst, "λ ratio", WavelengthTol, o.WavelengthRatio, 1)

	// uncoupled
	s, ybase, ycoup = coupled(tst, iec.Params{})
	o, _ = Compare(s, ybase, ycoup)
	chk.Float64(tst, "no phase shift", 1e-15, o.PhaseShift, 0)
	chk.Float64(tst, "unit amplitude ratio", 1e-15, o.AmplitudeRatio, 1)
}

func Test_compare02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compare02. amplitude scaling")

	for _, chie := range []float64{-0.5, 0.5, 1} {
		s, ybase, ycoup := coupled(tst, iec.Params{ChiE: chie})
		o, err := Compare(s, ybase, ycoup)
		if err != nil {
			tst.Errorf("Compare failed:\n%v", err)
			return
		}
		io.Pforan("χE = %4.1f  ratio = %v\n", chie, o.AmplitudeRatio)
		chk.Float64(tst, "A ratio", 1e-10, o.AmplitudeRatio, 1+chie)
		chk.Float64(tst, "λ ratio", 1e-15, o.WavelengthRatio, 1)
		chk.Float64(tst, "Δφ", 1e-15, o.PhaseShift, 0)
	}
}
