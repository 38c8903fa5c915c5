// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions and reference data used to verify the numerical core
package ana

import "math"

// Sinusoid implements the reference shape y(s) = A⋅sin(K⋅s + Phi) and its curvature
//
//   y(s) = A sin(K s + Φ)
//   κ(s) = y''(s) = -A K² sin(K s + Φ)
//
type Sinusoid struct {
	A   float64 // amplitude
	K   float64 // wavenumber
	Phi float64 // phase
}

// Y computes the transverse displacement
func (o *Sinusoid) Y(s float64) float64 {
	return o.A * math.Sin(o.K*s+o.Phi)
}

// Kappa computes the curvature
func (o *Sinusoid) Kappa(s float64) float64 {
	return -o.A * o.K * o.K * math.Sin(o.K*s+o.Phi)
}

// Wavelength returns 2π/K
func (o *Sinusoid) Wavelength() float64 {
	return 2.0 * math.Pi / o.K
}

// SampleY returns y at all grid points
func (o *Sinusoid) SampleY(s []float64) (y []float64) {
	y = make([]float64, len(s))
	for i, x := range s {
		y[i] = o.Y(x)
	}
	return
}

// SampleKappa returns κ at all grid points
func (o *Sinusoid) SampleKappa(s []float64) (kappa []float64) {
	kappa = make([]float64, len(s))
	for i, x := range s {
		kappa[i] = o.Kappa(x)
	}
	return
}
