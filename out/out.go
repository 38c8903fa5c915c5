// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of rod simulations: tables, provenance and figures
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/sayujks0071/life-sub001/metrics"
	"github.com/sayujks0071/life-sub001/modes"
	"github.com/sayujks0071/life-sub001/shape"
)

// catch turns panics raised by gosl writers into errors
func catch(err *error) {
	if r := recover(); r != nil {
		*err = chk.Err("%v", r)
	}
}

// WriteShapes writes <key>-shapes.res with columns s, x_<name>, y_<name> and theta_<name>
func WriteShapes(dirout, key string, s []float64, names []string, shapes ...*shape.Shape) (err error) {
	if len(names) != len(shapes) {
		return chk.Err("WriteShapes: number of names (%d) and shapes (%d) must be equal", len(names), len(shapes))
	}
	headers := []string{"s"}
	columns := [][]float64{s}
	for i, shp := range shapes {
		if shp.Len() != len(s) {
			return chk.Err("WriteShapes: shape %q has %d points but grid has %d", names[i], shp.Len(), len(s))
		}
		headers = append(headers, "x_"+names[i], "y_"+names[i], "theta_"+names[i])
		columns = append(columns, shp.X, shp.Y, shp.Theta)
	}
	defer catch(&err)
	io.WriteTableVD(dirout, key+"-shapes.res", headers, columns...)
	return
}

// WriteFields writes <key>-fields.res with columns s, kappa0, kappa and, if available, info
func WriteFields(dirout, key string, s, kappa0, kappa, info []float64) (err error) {
	headers := []string{"s", "kappa0", "kappa"}
	columns := [][]float64{s, kappa0, kappa}
	if info != nil {
		headers = append(headers, "info")
		columns = append(columns, info)
	}
	defer catch(&err)
	io.WriteTableVD(dirout, key+"-fields.res", headers, columns...)
	return
}

// WriteSpectrum writes <key>-eigenvalues.res (mode, lambda, omega) and <key>-modes.res (s, V1, V2, ...)
func WriteSpectrum(dirout, key string, s []float64, sp *modes.Spectrum) (err error) {
	if sp == nil {
		return chk.Err("WriteSpectrum: spectrum is nil")
	}
	idx := make([]float64, sp.Len())
	headers := []string{"s"}
	columns := [][]float64{s}
	for i := 0; i < sp.Len(); i++ {
		idx[i] = float64(i + 1)
		headers = append(headers, io.Sf("V%d", i+1))
		columns = append(columns, sp.Modes[i])
	}
	defer catch(&err)
	io.WriteTableVD(dirout, key+"-eigenvalues.res", []string{"mode", "lambda", "omega"}, idx, sp.Lambda, sp.Omega)
	io.WriteTableVD(dirout, key+"-modes.res", headers, columns...)
	return
}

// WriteSweep writes <key>-sweep.res with one row per (χ_k, χ_E) point
func WriteSweep(dirout, key string, chik, chie []float64, cmps []*metrics.Comparison) (err error) {
	n := len(cmps)
	if len(chik) != n || len(chie) != n {
		return chk.Err("WriteSweep: inconsistent number of rows: %d, %d, %d", len(chik), len(chie), n)
	}
	lb, lc, lr := make([]float64, n), make([]float64, n), make([]float64, n)
	ph, ab, ac, ar := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i, c := range cmps {
		lb[i], lc[i], lr[i] = c.WavelengthBase, c.WavelengthCoupled, c.WavelengthRatio
		ph[i] = c.PhaseShift
		ab[i], ac[i], ar[i] = c.AmplitudeBase, c.AmplitudeCoupled, c.AmplitudeRatio
	}
	defer catch(&err)
	io.WriteTableVD(dirout, key+"-sweep.res",
		[]string{"chik", "chie", "lambda_base", "lambda_coup", "lambda_ratio", "dphi", "amp_base", "amp_coup", "amp_ratio"},
		chik, chie, lb, lc, lr, ph, ab, ac, ar)
	return
}

// ReadShapes reads a table written by WriteShapes and returns the grid and the named shapes
func ReadShapes(fn string, names ...string) (s []float64, shapes []*shape.Shape, err error) {
	defer catch(&err)
	_, T := io.ReadTable(fn)
	s, ok := T["s"]
	if !ok {
		return nil, nil, chk.Err("ReadShapes: column \"s\" is missing in %q", fn)
	}
	for _, name := range names {
		x, okx := T["x_"+name]
		y, oky := T["y_"+name]
		t, okt := T["theta_"+name]
		if !okx || !oky || !okt {
			return nil, nil, chk.Err("ReadShapes: columns of %q are missing in %q", name, fn)
		}
		shapes = append(shapes, &shape.Shape{X: x, Y: y, Theta: t})
	}
	return
}
