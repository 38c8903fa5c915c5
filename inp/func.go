// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"math/rand"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// maximum nesting of "sum" functions
const maxFuncDepth = 8

// FuncData holds the definition of a function of arc length f(s)
//
//   type      prms                  f(s)
//   zero      -                     0
//   cte       c                     c
//   lin       a, b                  a + b⋅s
//   sin       a, k, phi, c          a⋅sin(k⋅s + phi) + c
//   cos       a, k, phi, c          a⋅cos(k⋅s + phi) + c
//   gauss     a, mu, sigma, c       a⋅exp(-(s-mu)²/(2⋅sigma²)) + c
//   sinkappa  a, k, phi             -a⋅k²⋅sin(k⋅s + phi)   (curvature of a⋅sin(k⋅s + phi))
//   table     xscale, yscale, c     linear interpolation of columns x and y of file
//   noise     std, mean             mean + std⋅N(0,1) drawn from the seeded generator
//   sum       -                     Σ args
//
type FuncData struct {
	Name string     `json:"name" yaml:"name"` // name of function. ex: kappa0, plddt, etc.
	Type string     `json:"type" yaml:"type"` // type of function. ex: cte, sin, table
	Prms utl.Params `json:"prms" yaml:"prms"` // parameters

	// table
	File string `json:"file" yaml:"file"` // file with tabulated data; relative to the simulation file
	Xkey string `json:"x" yaml:"x"`       // column with abscissae; default = "s"
	Ykey string `json:"y" yaml:"y"`       // column with values; default = "y"

	// sum
	Args []string `json:"args" yaml:"args"` // names of functions to be added
}

// FuncsData holds functions
type FuncsData []*FuncData

// Find returns the function definition by name or nil
func (o FuncsData) Find(name string) *FuncData {
	for _, f := range o {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Get returns function by name
//  dir -- directory used to resolve relative table files
//  rng -- random numbers generator used by stochastic functions; may be nil if none is used
func (o FuncsData) Get(name, dir string, rng *rand.Rand) (fcn fun.Ss, err error) {
	return o.get(name, dir, rng, 0)
}

func (o FuncsData) get(name, dir string, rng *rand.Rand, depth int) (fcn fun.Ss, err error) {
	if name == "zero" || name == "none" {
		return func(float64) float64 { return 0 }, nil
	}
	if depth > maxFuncDepth {
		return nil, chk.Err("function %q: too many nested sums", name)
	}
	f := o.Find(name)
	if f == nil {
		return nil, chk.Err("cannot find function named %q", name)
	}
	if f.Type == "sum" {
		var terms []fun.Ss
		for _, arg := range f.Args {
			t, e := o.get(arg, dir, rng, depth+1)
			if e != nil {
				return nil, chk.Err("function %q:\n%v", name, e)
			}
			terms = append(terms, t)
		}
		return func(s float64) (res float64) {
			for _, t := range terms {
				res += t(s)
			}
			return
		}, nil
	}
	fcn, err = f.New(dir, rng)
	if err != nil {
		err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
	}
	return
}

// New allocates the function
func (o *FuncData) New(dir string, rng *rand.Rand) (fcn fun.Ss, err error) {
	p := &o.Prms
	switch o.Type {

	case "zero":
		return func(float64) float64 { return 0 }, nil

	case "cte":
		c := p.GetValueOrDefault("c", 0)
		return func(float64) float64 { return c }, nil

	case "lin":
		a, b := p.GetValueOrDefault("a", 0), p.GetValueOrDefault("b", 0)
		return func(s float64) float64 { return a + b*s }, nil

	case "sin", "cos":
		a, k := p.GetValueOrDefault("a", 1), p.GetValueOrDefault("k", 1)
		phi, c := p.GetValueOrDefault("phi", 0), p.GetValueOrDefault("c", 0)
		if o.Type == "cos" {
			phi += math.Pi / 2
		}
		return func(s float64) float64 { return a*math.Sin(k*s+phi) + c }, nil

	case "gauss":
		a, mu := p.GetValueOrDefault("a", 1), p.GetValueOrDefault("mu", 0)
		sig, c := p.GetValueOrDefault("sigma", 1), p.GetValueOrDefault("c", 0)
		if sig <= 0 {
			return nil, chk.Err("gauss: sigma must be positive; got %g", sig)
		}
		return func(s float64) float64 {
			d := (s - mu) / sig
			return a*math.Exp(-0.5*d*d) + c
		}, nil

	case "sinkappa":
		a, k := p.GetValueOrDefault("a", 1), p.GetValueOrDefault("k", 1)
		phi := p.GetValueOrDefault("phi", 0)
		return func(s float64) float64 { return -a * k * k * math.Sin(k*s+phi) }, nil

	case "table":
		return o.table(dir)

	case "noise":
		if rng == nil {
			return nil, chk.Err("noise: random numbers generator is not available")
		}
		std, mean := p.GetValueOrDefault("std", 1), p.GetValueOrDefault("mean", 0)
		return func(float64) float64 { return mean + std*rng.NormFloat64() }, nil
	}
	return nil, chk.Err("function type %q is unavailable", o.Type)
}

// table returns the linear interpolation of tabulated data. Beyond the table
// range the value at the nearest end is used
func (o *FuncData) table(dir string) (fcn fun.Ss, err error) {
	if o.File == "" {
		return nil, chk.Err("table: file name is missing")
	}
	fn := o.File
	if !filepath.IsAbs(fn) {
		fn = filepath.Join(dir, fn)
	}
	xkey, ykey := o.Xkey, o.Ykey
	if xkey == "" {
		xkey = "s"
	}
	if ykey == "" {
		ykey = "y"
	}
	_, T, err := readTable(fn)
	if err != nil {
		return
	}
	xx, okx := T[xkey]
	yy, oky := T[ykey]
	if !okx || !oky {
		return nil, chk.Err("table: cannot find columns %q and %q in %q", xkey, ykey, fn)
	}
	if len(xx) < 2 {
		return nil, chk.Err("table: at least 2 rows are required in %q", fn)
	}
	for i := 1; i < len(xx); i++ {
		if xx[i] <= xx[i-1] {
			return nil, chk.Err("table: column %q must be strictly increasing in %q", xkey, fn)
		}
	}

	// scale
	xs, ys := o.Prms.GetValueOrDefault("xscale", 1), o.Prms.GetValueOrDefault("yscale", 1)
	c := o.Prms.GetValueOrDefault("c", 0)
	if xs <= 0 {
		return nil, chk.Err("table: xscale must be positive; got %g", xs)
	}
	X := make([]float64, len(xx))
	Y := make([]float64, len(yy))
	for i := range xx {
		X[i] = xs * xx[i]
		Y[i] = ys*yy[i] + c
	}

	// interpolator
	interp := fun.NewDataInterp("lin", 1, X, Y)
	xmin, xmax := X[0], X[len(X)-1]
	return func(s float64) float64 {
		return interp.P(utl.Max(xmin, utl.Min(xmax, s)))
	}, nil
}

// readTable reads a table with gosl and turns its panics into errors
func readTable(fn string) (keys []string, T map[string][]float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot read table %q:\n%v", fn, r)
		}
	}()
	keys, T = io.ReadTable(fn)
	return
}

// String returns a short description of the functions
func (o FuncsData) String() string {
	l := ""
	for _, f := range o {
		l += io.Sf("%-12s %-9s", f.Name, f.Type)
		for _, p := range f.Prms {
			l += io.Sf(" %s=%g", p.N, p.V)
		}
		if f.File != "" {
			l += io.Sf(" file=%s", f.File)
		}
		if len(f.Args) > 0 {
			l += io.Sf(" args=%v", f.Args)
		}
		l += "\n"
	}
	return l
}
