// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// WavelengthTol is the accepted relative change of wavelength under phase coupling
const WavelengthTol = 0.02

// Comparison holds the diagnostics of a coupled shape against its baseline
type Comparison struct {
	WavelengthBase    float64 `json:"wavelength_base"`
	WavelengthCoupled float64 `json:"wavelength_coupled"`
	WavelengthRatio   float64 `json:"wavelength_ratio"` // coupled / base; NaN if undefined
	PhaseShift        float64 `json:"phase_shift"`      // radians
	AmplitudeBase     float64 `json:"amplitude_base"`
	AmplitudeCoupled  float64 `json:"amplitude_coupled"`
	AmplitudeRatio    float64 `json:"amplitude_ratio"` // coupled / base; NaN if undefined
}

// Compare computes all diagnostics of coupled against base
func Compare(s, base, coupled []float64) (o *Comparison, err error) {
	o = new(Comparison)
	if o.WavelengthBase, err = Wavelength(base, s); err != nil {
		return nil, err
	}
	if o.WavelengthCoupled, err = Wavelength(coupled, s); err != nil {
		return nil, err
	}
	if o.PhaseShift, err = PhaseShift(base, coupled, s); err != nil {
		return nil, err
	}
	o.AmplitudeBase = Amplitude(base)
	o.AmplitudeCoupled = Amplitude(coupled)
	o.WavelengthRatio = ratio(o.WavelengthCoupled, o.WavelengthBase)
	o.AmplitudeRatio = ratio(o.AmplitudeCoupled, o.AmplitudeBase)
	return
}

// WavelengthPreserved tells whether |λc/λb - 1| ≤ WavelengthTol
func (o *Comparison) WavelengthPreserved() bool {
	if math.IsNaN(o.WavelengthRatio) {
		return false
	}
	return math.Abs(o.WavelengthRatio-1.0) <= WavelengthTol
}

// String returns a summary of the comparison
func (o *Comparison) String() string {
	l := io.Sf("wavelength: base=%g coupled=%g ratio=%g\n", o.WavelengthBase, o.WavelengthCoupled, o.WavelengthRatio)
	l += io.Sf("phase shift: %g rad\n", o.PhaseShift)
	l += io.Sf("amplitude: base=%g coupled=%g ratio=%g", o.AmplitudeBase, o.AmplitudeCoupled, o.AmplitudeRatio)
	return l
}

func ratio(a, b float64) float64 {
	if b == 0 || math.IsInf(b, 0) || math.IsInf(a, 0) {
		return math.NaN()
	}
	return a / b
}
