// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test full rod simulations
package tests

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/sayujks0071/life-sub001/shape"
	"github.com/sayujks0071/life-sub001/sim"
)

func init() {
	io.Verbose = false
}

// Verbose turns on messages of tests and of gosl
func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Results holds reference results of one simulation
//  NOTE: zero Wavelength means "do not check"
type Results struct {
	Desc            string    `json:"desc"`            // description of reference solution
	Wavelength      float64   `json:"wavelength"`      // dominant wavelength of baseline shape
	WavelengthRatio float64   `json:"wavelengthratio"` // coupled / baseline wavelength
	PhaseShift      float64   `json:"phaseshift"`      // phase shift [rad]
	AmplitudeRatio  float64   `json:"amplituderatio"`  // coupled / baseline amplitude
	Lambda          []float64 `json:"lambda"`          // eigenvalues
}

// CompareResults runs a simulation and compares its report with the reference file cmpfname
//  tolλ   -- relative tolerance for wavelengths and eigenvalues
//  tolφ   -- tolerance for the phase shift
//  tolA   -- tolerance for the amplitude ratio
func CompareResults(tst *testing.T, simfilepath, cmpfname string, tolλ, tolφ, tolA float64, verbose bool) (rep *sim.Report) {

	// run simulation
	analysis, err := sim.NewMain(simfilepath, tst.TempDir(), verbose)
	if err != nil {
		tst.Errorf("CompareResults: NewMain failed:\n%v", err)
		return
	}
	rep, err = analysis.Run(context.Background())
	if err != nil {
		tst.Errorf("CompareResults: Run failed:\n%v", err)
		return
	}

	// read file with comparison results
	buf, err := os.ReadFile(cmpfname)
	if err != nil {
		tst.Errorf("CompareResults: ReadFile failed:%v\n", err)
		return
	}
	var cmp Results
	err = json.Unmarshal(buf, &cmp)
	if err != nil {
		tst.Errorf("CompareResults: Unmarshal failed:\n%v", err)
		return
	}
	if verbose {
		io.PfYel("\n%s\n", cmp.Desc)
	}

	// shape metrics
	c := rep.Comparison
	if cmp.Wavelength > 0 {
		chk.AnaNum(tst, "λ base", tolλ*cmp.Wavelength, cmp.Wavelength, c.WavelengthBase, verbose)
	}
	chk.AnaNum(tst, "λ ratio", tolλ, cmp.WavelengthRatio, c.WavelengthRatio, verbose)
	chk.AnaNum(tst, "Δφ", tolφ, cmp.PhaseShift, c.PhaseShift, verbose)
	chk.AnaNum(tst, "A ratio", tolA, cmp.AmplitudeRatio, c.AmplitudeRatio, verbose)

	// eigenvalues
	if len(cmp.Lambda) > 0 {
		if rep.Spectrum == nil || rep.Spectrum.Len() < len(cmp.Lambda) {
			tst.Errorf("CompareResults: %d eigenvalues are required", len(cmp.Lambda))
			return
		}
		for i, λ := range cmp.Lambda {
			chk.AnaNum(tst, io.Sf("λ%d", i+1), tolλ*math.Abs(λ), λ, rep.Spectrum.Lambda[i], verbose)
		}
	}
	return
}

// CheckShape compares the transverse displacement of shp with y(x)
func CheckShape(tst *testing.T, msg string, tol float64, shp *shape.Shape, y fun.Ss) {
	for i, x := range shp.X {
		if math.Abs(shp.Y[i]-y(x)) > tol {
			tst.Errorf("%s: y(%g) = %g differs from %g by %g > %g", msg, x, shp.Y[i], y(x), math.Abs(shp.Y[i]-y(x)), tol)
			return
		}
	}
	chk.PrintOk(msg)
}
