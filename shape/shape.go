// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shape reconstructs the centreline of a slender rod from its curvature profile
package shape

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/sayujks0071/life-sub001/grid"
)

// Bc defines the boundary conditions enforced when integrating curvature
//
//   ClampedBase: θ(0) = 0 and y(0) = 0 (cantilever); no correction at s = L
//
//   ClampedFree: same forward integration, followed by the subtraction of a
//                linear trend such that y(0) = 0 and y(L) = 0
//
type Bc int

const (
	ClampedBase Bc = iota // clamped base; free tip
	ClampedFree           // Dirichlet ends after linear-trend removal
)

// String returns the key of the boundary conditions mode
func (o Bc) String() string {
	switch o {
	case ClampedBase:
		return "clamped-base"
	case ClampedFree:
		return "clamped-free"
	}
	return "unknown"
}

// ParseBc returns the boundary conditions mode corresponding to key
func ParseBc(key string) (bc Bc, err error) {
	switch key {
	case "clamped-base", "cantilever", "A":
		return ClampedBase, nil
	case "clamped-free", "dirichlet", "B":
		return ClampedFree, nil
	}
	return 0, chk.Err("cannot find boundary conditions mode named %q", key)
}

// Shape holds the centreline of the rod under the small-slope approximation
type Shape struct {
	X     []float64 // [N] longitudinal coordinate
	Y     []float64 // [N] transverse displacement
	Theta []float64 // [N] slope angle dy/ds
}

// NewShape allocates a zero shape with n points
func NewShape(n int) *Shape {
	return &Shape{
		X:     make([]float64, n),
		Y:     make([]float64, n),
		Theta: make([]float64, n),
	}
}

// Len returns the number of points
func (o *Shape) Len() int { return len(o.Y) }

// Clone returns a deep copy
func (o *Shape) Clone() *Shape {
	return &Shape{X: utl.GetCopy(o.X), Y: utl.GetCopy(o.Y), Theta: utl.GetCopy(o.Theta)}
}

// Scaled returns a copy with transverse quantities multiplied by c
func (o *Shape) Scaled(c float64) *Shape {
	r := o.Clone()
	for i := range r.Y {
		r.Y[i] *= c
		r.Theta[i] *= c
	}
	return r
}

// Integrate computes the centreline (x, y) from the curvature κ(s) using y''(s) = κ(s)
//
//  Input:
//   s     -- arc-length grid; strictly increasing
//   kappa -- curvature at each grid point; len(kappa) == len(s)
//   bc    -- boundary conditions mode
//
//  Output:
//   o -- the shape. A zero shape is returned if len(s) < 2
//
//  NOTE: with ClampedFree, Theta is corrected by the same constant as the slope of y
func Integrate(s, kappa []float64, bc Bc) (o *Shape, err error) {

	// check input
	if len(kappa) != len(s) {
		return nil, chk.Err("integrate: len(kappa)=%d != len(s)=%d: %w", len(kappa), len(s), grid.ErrShapeMismatch)
	}
	if bc != ClampedBase && bc != ClampedFree {
		return nil, chk.Err("integrate: invalid boundary conditions mode %d", int(bc))
	}
	if err = grid.Check(s); err != nil {
		return
	}
	if err = grid.CheckField("kappa", s, kappa); err != nil {
		return
	}

	// degenerate grid
	n := len(s)
	o = NewShape(n)
	if n < 2 {
		return
	}

	// θ = ∫κ ds and y = ∫θ ds with θ(0) = 0 and y(0) = 0
	o.Theta = grid.CumTrapz(kappa, s)
	o.Y = grid.CumTrapz(o.Theta, s)
	for i := 0; i < n; i++ {
		o.X[i] = s[i] - s[0]
	}

	// remove linear trend
	if bc == ClampedFree {
		L := o.X[n-1]
		c1 := -o.Y[n-1] / L
		for i := 0; i < n; i++ {
			o.Y[i] += c1 * o.X[i]
			o.Theta[i] += c1
		}
		o.Y[n-1] = 0
	}
	return
}
