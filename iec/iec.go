// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package iec implements the information-elasticity coupling rule
//
//   κ_target(s) = κ₀(s) + χ_k ⋅ dI/ds(s)
//
// and the external amplitude factor (1 + χ_E)
package iec

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/sayujks0071/life-sub001/grid"
)

// Params holds the coupling coefficients
type Params struct {
	ChiK float64 `json:"chik" yaml:"chik"` // phase-drift strength χ_k
	ChiE float64 `json:"chie" yaml:"chie"` // amplitude-scaling coefficient χ_E
}

// Validate checks that the coefficients are finite
func (o Params) Validate() (err error) {
	if math.IsNaN(o.ChiK) || math.IsInf(o.ChiK, 0) {
		return chk.Err("iec: chik=%g is not finite: %w", o.ChiK, grid.ErrNonFinite)
	}
	if math.IsNaN(o.ChiE) || math.IsInf(o.ChiE, 0) {
		return chk.Err("iec: chie=%g is not finite: %w", o.ChiE, grid.ErrNonFinite)
	}
	return
}

// Uncoupled tells whether the curvature is left untouched
func (o Params) Uncoupled() bool { return o.ChiK == 0 }

// TargetCurvature computes κ₀ + χ_k⋅dI/ds
//
//  NOTE: a copy of κ₀ is returned if the information field is absent or χ_k == 0
func TargetCurvature(st *grid.State, prm Params) (kappa []float64, err error) {
	if err = st.Check(); err != nil {
		return
	}
	if err = prm.Validate(); err != nil {
		return
	}
	kappa = utl.GetCopy(st.Kappa0)
	if !st.HasInfo() || prm.Uncoupled() {
		return
	}
	dIds := grid.Gradient(st.Info, st.S)
	for i := range kappa {
		kappa[i] += prm.ChiK * dIds[i]
	}
	return
}

// Perturbation returns χ_k⋅dI/ds alone; zero if the information field is absent
func Perturbation(st *grid.State, prm Params) (dk []float64, err error) {
	if err = st.Check(); err != nil {
		return
	}
	if err = prm.Validate(); err != nil {
		return
	}
	dk = make([]float64, st.N())
	if !st.HasInfo() || prm.Uncoupled() {
		return
	}
	dIds := grid.Gradient(st.Info, st.S)
	for i := range dk {
		dk[i] = prm.ChiK * dIds[i]
	}
	return
}

// AmplitudeFactor returns 1 + χ_E
func AmplitudeFactor(prm Params) float64 {
	return 1.0 + prm.ChiE
}

// ApplyAmplitude returns a copy of kappa scaled by 1 + χ_E. A plain copy is
// returned when χ_E == 0
func ApplyAmplitude(kappa []float64, prm Params) (res []float64) {
	res = utl.GetCopy(kappa)
	if prm.ChiE == 0 {
		return
	}
	c := AmplitudeFactor(prm)
	for i := range res {
		res[i] *= c
	}
	return
}
