// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the arc-length discretisation of the rod, the
// fields defined on it and the discrete calculus operators used by the core
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// UniformTol is the relative tolerance used to decide whether a grid is uniform
const UniformTol = 1e-9

// Uniform returns N evenly spaced arc-length coordinates spanning [0, L]
func Uniform(L float64, N int) (s []float64) {
	return utl.LinSpace(0, L, N)
}

// Nonuniform returns N arc-length coordinates spanning [0, L] with geometric spacing
//  R -- ratio between the last and the first spacing; R = 1 gives an uniform grid
func Nonuniform(L float64, N int, R float64) (s []float64) {
	if N < 2 {
		return Uniform(L, N)
	}
	return utl.NonlinSpace(0, L, N, R, false)
}

// Degenerate tells whether the grid has fewer than two points
func Degenerate(s []float64) bool {
	return len(s) < 2
}

// Length returns the arc length spanned by the grid
func Length(s []float64) float64 {
	if len(s) < 2 {
		return 0
	}
	return s[len(s)-1] - s[0]
}

// Check checks that all coordinates are finite and strictly increasing.
// Degenerate grids (fewer than two points) are accepted.
func Check(s []float64) (err error) {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("grid: s[%d] = %v: %w", i, v, ErrNonFinite)
		}
		if i > 0 && !(v > s[i-1]) {
			return chk.Err("grid: s[%d] = %g <= s[%d] = %g: %w", i, v, i-1, s[i-1], ErrNotIncreasing)
		}
	}
	return
}

// CheckField checks that the field f is co-located with s and contains only finite values
func CheckField(name string, s, f []float64) (err error) {
	if len(f) != len(s) {
		return chk.Err("%s: len(%s)=%d != len(s)=%d: %w", name, name, len(f), len(s), ErrShapeMismatch)
	}
	for i, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("%s: %s[%d] = %v: %w", name, name, i, v, ErrNonFinite)
		}
	}
	return
}

// CheckPositive checks that all values of f are strictly positive
func CheckPositive(name string, f []float64) (err error) {
	for i, v := range f {
		if !(v > 0) {
			return chk.Err("%s: %s[%d] = %g must be positive: %w", name, name, i, v, ErrNonPositive)
		}
	}
	return
}

// Spacing returns the step size of an uniform grid
func Spacing(s []float64) (h float64, err error) {
	if len(s) < 2 {
		return 0, chk.Err("grid: spacing requires at least 2 points; got %d: %w", len(s), ErrTooShort)
	}
	if err = Check(s); err != nil {
		return
	}
	h = (s[len(s)-1] - s[0]) / float64(len(s)-1)
	for i := 1; i < len(s); i++ {
		if math.Abs((s[i]-s[i-1])-h) > UniformTol*h {
			return 0, chk.Err("grid: spacing at %d is %g; expected %g: %w", i, s[i]-s[i-1], h, ErrNonUniform)
		}
	}
	return
}
