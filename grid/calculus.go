// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/gosl/num"

// Gradient computes df/ds with second-order accurate finite differences
//
//  interior points: centred three-point formula valid for non-uniform spacing
//  end points:      one-sided three-point formulae (N ≥ 3)
//
//  NOTE: for N == 2 the simple difference is used at both ends; for N < 2 the result is zero
func Gradient(f, s []float64) (g []float64) {
	n := len(s)
	g = make([]float64, n)
	if n < 2 {
		return
	}
	if n == 2 {
		d := (f[1] - f[0]) / (s[1] - s[0])
		g[0], g[1] = d, d
		return
	}

	// interior
	for i := 1; i < n-1; i++ {
		hs := s[i] - s[i-1]
		hd := s[i+1] - s[i]
		g[i] = (hs*hs*f[i+1] + (hd*hd-hs*hs)*f[i] - hd*hd*f[i-1]) / (hs * hd * (hd + hs))
	}

	// first point
	d1, d2 := s[1]-s[0], s[2]-s[1]
	a := -(2.0*d1 + d2) / (d1 * (d1 + d2))
	b := (d1 + d2) / (d1 * d2)
	c := -d1 / (d2 * (d1 + d2))
	g[0] = a*f[0] + b*f[1] + c*f[2]

	// last point
	d1, d2 = s[n-2]-s[n-3], s[n-1]-s[n-2]
	a = d2 / (d1 * (d1 + d2))
	b = -(d2 + d1) / (d1 * d2)
	c = (2.0*d2 + d1) / (d2 * (d1 + d2))
	g[n-1] = a*f[n-3] + b*f[n-2] + c*f[n-1]
	return
}

// CumTrapz computes the cumulative integral of f over s using the trapezoidal rule.
// The first value is zero.
func CumTrapz(f, s []float64) (F []float64) {
	F = make([]float64, len(s))
	for i := 1; i < len(s); i++ {
		F[i] = F[i-1] + 0.5*(f[i]+f[i-1])*(s[i]-s[i-1])
	}
	return
}

// Integral computes the integral of f over s using the trapezoidal rule
func Integral(f, s []float64) float64 {
	if len(s) < 2 {
		return 0
	}
	return num.QuadDiscreteTrapzXY(s, f)
}

// Inner computes the continuous inner product ∫ a⋅b ds using the trapezoidal rule
func Inner(a, b, s []float64) float64 {
	ab := make([]float64, len(s))
	for i := range ab {
		ab[i] = a[i] * b[i]
	}
	return Integral(ab, s)
}
