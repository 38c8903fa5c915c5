// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// State holds the physical state of one experiment configuration.
// All slices are co-located with S and must be treated as read-only.
type State struct {
	S      []float64 // [N] arc-length coordinates
	Kappa0 []float64 // [N] baseline (passive) curvature κ₀(s)
	Info   []float64 // [N] information field I(s); nil if absent
	Stiff  []float64 // [N] bending stiffness B(s); nil if absent
}

// NewState returns a validated State holding copies of the given arrays
//  info  -- may be nil
//  stiff -- may be nil; if given, all values must be positive
func NewState(s, kappa0, info, stiff []float64) (o *State, err error) {
	o = &State{
		S:      utl.GetCopy(s),
		Kappa0: utl.GetCopy(kappa0),
	}
	if info != nil {
		o.Info = utl.GetCopy(info)
	}
	if stiff != nil {
		o.Stiff = utl.GetCopy(stiff)
	}
	if err = o.Check(); err != nil {
		return nil, err
	}
	return
}

// Check validates the grid and all fields
func (o *State) Check() (err error) {
	if o == nil {
		return chk.Err("state: nil state: %w", ErrShapeMismatch)
	}
	if err = Check(o.S); err != nil {
		return
	}
	if err = CheckField("kappa0", o.S, o.Kappa0); err != nil {
		return
	}
	if o.Info != nil {
		if err = CheckField("info", o.S, o.Info); err != nil {
			return
		}
	}
	if o.Stiff != nil {
		if err = CheckField("stiffness", o.S, o.Stiff); err != nil {
			return
		}
		if err = CheckPositive("stiffness", o.Stiff); err != nil {
			return
		}
	}
	return
}

// N returns the number of grid points
func (o *State) N() int { return len(o.S) }

// HasInfo tells whether an information field is present
func (o *State) HasInfo() bool { return o.Info != nil }

// HasStiffness tells whether a stiffness field is present
func (o *State) HasStiffness() bool { return o.Stiff != nil }

// WithKappa0 returns a copy of this state with another baseline curvature
func (o *State) WithKappa0(kappa0 []float64) (*State, error) {
	return NewState(o.S, kappa0, o.Info, o.Stiff)
}

// WithInfo returns a copy of this state with another information field
func (o *State) WithInfo(info []float64) (*State, error) {
	return NewState(o.S, o.Kappa0, info, o.Stiff)
}

// Clone returns a deep copy
func (o *State) Clone() *State {
	c := &State{S: utl.GetCopy(o.S), Kappa0: utl.GetCopy(o.Kappa0)}
	if o.Info != nil {
		c.Info = utl.GetCopy(o.Info)
	}
	if o.Stiff != nil {
		c.Stiff = utl.GetCopy(o.Stiff)
	}
	return c
}
