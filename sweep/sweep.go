// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sweep implements the concurrent evaluation of coupling coefficients
package sweep

import (
	"context"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"

	"github.com/sayujks0071/life-sub001/grid"
	"github.com/sayujks0071/life-sub001/iec"
	"github.com/sayujks0071/life-sub001/metrics"
	"github.com/sayujks0071/life-sub001/shape"
)

// Point holds one pair of coupling coefficients
type Point struct {
	ChiK float64 // χ_k
	ChiE float64 // χ_E
}

// Params returns the coupling parameters of this point
func (o Point) Params() iec.Params { return iec.Params{ChiK: o.ChiK, ChiE: o.ChiE} }

// Row holds the results at one point
type Row struct {
	Point      Point               // coefficients
	Comparison *metrics.Comparison // metrics of coupled shape with respect to baseline
	Shape      *shape.Shape        // coupled shape
}

// Grid returns the cartesian product of chik and chie; chie varies fastest
func Grid(chik, chie []float64) (pts []Point) {
	pts = make([]Point, 0, len(chik)*len(chie))
	for _, k := range chik {
		for _, e := range chie {
			pts = append(pts, Point{k, e})
		}
	}
	return
}

// Evaluate computes the coupled shape at one point and compares it with base
func Evaluate(st *grid.State, base *shape.Shape, pt Point, bc shape.Bc) (row *Row, err error) {
	prm := pt.Params()
	if err = prm.Validate(); err != nil {
		return
	}
	kappa, err := iec.TargetCurvature(st, prm)
	if err != nil {
		return
	}
	shp, err := shape.Integrate(st.S, iec.ApplyAmplitude(kappa, prm), bc)
	if err != nil {
		return
	}
	cmp, err := metrics.Compare(st.S, base.Y, shp.Y)
	if err != nil {
		return
	}
	return &Row{Point: pt, Comparison: cmp, Shape: shp}, nil
}

// Run evaluates all points concurrently
//  Input:
//   st      -- fields; read-only
//   base    -- baseline shape; read-only
//   pts     -- points
//   bc      -- boundary conditions mode
//   workers -- maximum number of concurrent evaluations; 0 means number of CPUs
//  Output:
//   rows -- results in the same order as pts
//  NOTE: the first error cancels the remaining points
func Run(ctx context.Context, st *grid.State, base *shape.Shape, pts []Point, bc shape.Bc, workers int) (rows []*Row, err error) {
	if st == nil || base == nil {
		return nil, chk.Err("sweep: state and baseline shape must be given")
	}
	if base.Len() != st.N() {
		return nil, chk.Err("sweep: baseline has %d points but grid has %d: %w", base.Len(), st.N(), grid.ErrShapeMismatch)
	}
	if workers < 0 {
		return nil, chk.Err("sweep: number of workers must be non-negative; got %d", workers)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	rows = make([]*Row, len(pts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, pt := range pts {
		g.Go(func() (e error) {
			if e = gctx.Err(); e != nil {
				return
			}
			rows[i], e = Evaluate(st, base, pt, bc)
			if e != nil {
				return chk.Err("sweep: point (χk=%g, χE=%g):\n%w", pt.ChiK, pt.ChiE, e)
			}
			return
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}

// Columns returns the coefficients and comparisons of rows as separate lists
func Columns(rows []*Row) (chik, chie []float64, cmps []*metrics.Comparison) {
	for _, r := range rows {
		chik = append(chik, r.Point.ChiK)
		chie = append(chie, r.Point.ChiE)
		cmps = append(cmps, r.Comparison)
	}
	return
}
