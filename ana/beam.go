// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// ClampedFreeRoot returns the n-th root (n ≥ 1) of the clamped-free (cantilever) frequency equation
//
//   cos(x) cosh(x) = -1     ⇒   x ∈ {1.8751, 4.6941, 7.8548, ...}
//
//  NOTE: the equivalent form cos(x) + 1/cosh(x) = 0 is solved to avoid overflow
func ClampedFreeRoot(n int) (x float64, err error) {
	if n < 1 {
		return 0, chk.Err("root index must be at least 1; got %d", n)
	}
	f := func(x float64) float64 {
		return math.Cos(x) + 1.0/math.Cosh(x)
	}
	solver := num.NewBrent(f, nil)
	solver.Tol = 1e-14
	xa := float64(n-1) * math.Pi
	xb := float64(n) * math.Pi
	return solver.Root(xa, xb), nil
}

// ClampedFreeLambda returns the n-th eigenvalue of the continuous clamped-free beam operator
//
//   B d⁴y/ds⁴ = λ y    with y(0) = y'(0) = 0 and y''(L) = y'''(L) = 0
//
//   λₙ = B (βₙ L)⁴ / L⁴
//
//  NOTE: the mass per unit length is one
func ClampedFreeLambda(n int, B, L float64) (λ float64, err error) {
	if L <= 0 || B <= 0 {
		return 0, chk.Err("length and stiffness must be positive; got L=%g, B=%g", L, B)
	}
	βL, err := ClampedFreeRoot(n)
	if err != nil {
		return
	}
	λ = B * math.Pow(βL/L, 4)
	return
}
