// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package metrics implements closed-form diagnostics to compare rod shapes
package metrics

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"

	"github.com/sayujks0071/life-sub001/grid"
)

// FlatTol is the relative round-off floor below which a spectrum is considered flat
const FlatTol = 1e-12

// check validates a signal against its grid
func check(name string, y, s []float64) (err error) {
	if err = grid.Check(s); err != nil {
		return
	}
	return grid.CheckField(name, s, y)
}

// centred returns y minus its mean
func centred(y []float64) (c []float64) {
	c = utl.GetCopy(y)
	if len(c) == 0 {
		return
	}
	mean := utl.Sum(c) / float64(len(c))
	for i := range c {
		c[i] -= mean
	}
	return
}

// maxAbs returns max|y|
func maxAbs(y []float64) float64 {
	mi, ma := utl.MinMax(y)
	return math.Max(math.Abs(mi), math.Abs(ma))
}

// Wavelength returns 1/f_peak where f_peak is the dominant non-zero frequency of y
//
//   s must be uniform with spacing ds; bins k = 1..N/2 are searched with f = k/(N⋅ds)
//
//  NOTE: +Inf is returned if fewer than two frequency bins exist or if the
//        spectrum of the centred signal is below the round-off floor
//        FlatTol⋅N⋅max|y|. A non-uniform grid gives grid.ErrNonUniform
func Wavelength(y, s []float64) (λ float64, err error) {
	if err = check("y", y, s); err != nil {
		return
	}
	n := len(y)
	if n < 2 {
		return math.Inf(1), nil
	}
	ds, err := grid.Spacing(s)
	if err != nil {
		return 0, chk.Err("wavelength: %w", err)
	}
	nbins := n/2 + 1

	// spectrum
	data := make([]complex128, n)
	for i, v := range centred(y) {
		data[i] = complex(v, 0)
	}
	fun.Dft1d(data, false)
	mag := make([]float64, nbins-1)
	for k := 1; k < nbins; k++ {
		mag[k-1] = cmplx.Abs(data[k])
	}

	// peak
	_, imax := utl.ArgMinMax(mag)
	if mag[imax] <= FlatTol*float64(n)*maxAbs(y) {
		return math.Inf(1), nil
	}
	f := float64(imax+1) / (float64(n) * ds)
	if f == 0 {
		return math.Inf(1), nil
	}
	return 1.0 / f, nil
}

// Lag returns the lag (in samples) maximising the full cross-correlation of the centred signals
//
//   c[ℓ] = Σₙ a[n+ℓ]⋅b[n]    ℓ = -(N-1)..(N-1)
//
//  NOTE: the first maximum is selected
func Lag(y1, y2 []float64) (lag int, err error) {
	if len(y1) != len(y2) {
		return 0, chk.Err("lag: len(y1)=%d != len(y2)=%d: %w", len(y1), len(y2), grid.ErrShapeMismatch)
	}
	n := len(y1)
	if n < 1 {
		return
	}
	a, b := centred(y1), centred(y2)
	corr := make([]float64, 2*n-1)
	for k := range corr {
		ℓ := k - (n - 1)
		lo, hi := 0, n
		if ℓ < 0 {
			lo = -ℓ
		} else {
			hi = n - ℓ
		}
		for j := lo; j < hi; j++ {
			corr[k] += a[j+ℓ] * b[j]
		}
	}
	_, imax := utl.ArgMinMax(corr)
	return imax - (n - 1), nil
}

// PhaseShift returns Δφ = 2π⋅(lag⋅ds)/λ(y1) where lag maximises the cross-correlation of y1 and y2
//
//  NOTE: zero is returned if λ(y1) is non-finite or zero. s must be uniform
func PhaseShift(y1, y2, s []float64) (Δφ float64, err error) {
	if err = check("y1", y1, s); err != nil {
		return
	}
	if err = check("y2", y2, s); err != nil {
		return
	}
	λ, err := Wavelength(y1, s)
	if err != nil {
		return
	}
	if math.IsInf(λ, 0) || math.IsNaN(λ) || λ == 0 {
		return 0, nil
	}
	lag, err := Lag(y1, y2)
	if err != nil {
		return
	}
	ds, err := grid.Spacing(s)
	if err != nil {
		return 0, chk.Err("phase shift: %w", err)
	}
	return 2.0 * math.Pi * float64(lag) * ds / λ, nil
}

// Amplitude returns half the peak-to-peak range of y; zero if y is empty
func Amplitude(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	mi, ma := utl.MinMax(y)
	return 0.5 * (ma - mi)
}

// L2Error returns the continuous L2 norm of a - b over s
func L2Error(a, b, s []float64) (e float64, err error) {
	if err = check("a", a, s); err != nil {
		return
	}
	if err = check("b", b, s); err != nil {
		return
	}
	d := make([]float64, len(a))
	for i := range a {
		d[i] = a[i] - b[i]
	}
	return math.Sqrt(grid.Inner(d, d, s)), nil
}
