// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/sayujks0071/life-sub001/grid"
)

// Arclength returns the arc-length grid
func (o *Simulation) Arclength() []float64 {
	if o.Grid.Ratio == 0 || o.Grid.Ratio == 1 {
		return grid.Uniform(o.Grid.L, o.Grid.N)
	}
	return grid.Nonuniform(o.Grid.L, o.Grid.N, o.Grid.Ratio)
}

// Rand returns a new random numbers generator seeded with data.seed
func (o *Simulation) Rand() *rand.Rand {
	return rand.New(rand.NewSource(o.Data.Seed))
}

// Fields samples baseline curvature, information and stiffness onto the grid
//
//  NOTE: stochastic functions draw from a generator seeded with data.seed.
//        Fields are sampled in the order baseline, info, stiffness
func (o *Simulation) Fields() (st *grid.State, err error) {
	s := o.Arclength()
	rng := o.Rand()

	// baseline
	kappa0, err := o.sample("baseline", o.Baseline, s, rng)
	if err != nil {
		return
	}

	// information field
	var info []float64
	if o.Info != "" {
		if info, err = o.sample("info", o.Info, s, rng); err != nil {
			return
		}
	}

	// stiffness
	var stiff []float64
	if o.Stiffness != nil {
		stiff = make([]float64, len(s))
		for i := range stiff {
			stiff[i] = o.Stiffness.EI
		}
		if o.Stiffness.Func != "" {
			var m []float64
			if m, err = o.sample("stiffness", o.Stiffness.Func, s, rng); err != nil {
				return
			}
			for i := range stiff {
				stiff[i] *= m[i]
			}
		}
	}

	// state
	st, err = grid.NewState(s, kappa0, info, stiff)
	if err != nil {
		return nil, chk.Err("fields: %w", err)
	}
	return
}

// sample evaluates function fname at all grid points
func (o *Simulation) sample(field, fname string, s []float64, rng *rand.Rand) (vals []float64, err error) {
	var f fun.Ss
	f, err = o.Functions.Get(fname, o.Dir, rng)
	if err != nil {
		return nil, chk.Err("%s: %v", field, err)
	}
	vals = make([]float64, len(s))
	for i, x := range s {
		vals[i] = f(x)
	}
	return
}
