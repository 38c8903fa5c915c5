// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or (.yaml) YAML file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"

	"github.com/sayujks0071/life-sub001/iec"
	"github.com/sayujks0071/life-sub001/shape"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/rodsim
	Seed    int64  `json:"seed" yaml:"seed"`       // seed of the random numbers generator used by stochastic functions
	Figures bool   `json:"figures" yaml:"figures"` // generate PNG figures
	Bridge  string `json:"bridge" yaml:"bridge"`   // name of rod-dynamics solver to query; empty means none
}

// GridData holds the arc-length discretisation
type GridData struct {
	L     float64 `json:"l" yaml:"l"`         // length of rod
	N     int     `json:"n" yaml:"n"`         // number of points
	Ratio float64 `json:"ratio" yaml:"ratio"` // ratio between last and first spacing; 0 or 1 means uniform
}

// SweepData holds the definition of a parameter sweep
type SweepData struct {
	ChiK    []float64 `json:"chik" yaml:"chik"`       // values of χ_k
	ChiE    []float64 `json:"chie" yaml:"chie"`       // values of χ_E
	Workers int       `json:"workers" yaml:"workers"` // number of concurrent workers; 0 means number of CPUs
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data           `json:"data" yaml:"data"`           // stores global simulation data
	Grid      GridData       `json:"grid" yaml:"grid"`           // arc-length grid
	Functions FuncsData      `json:"functions" yaml:"functions"` // stores all field functions
	Baseline  string         `json:"baseline" yaml:"baseline"`   // name of function giving κ₀(s)
	Info      string         `json:"info" yaml:"info"`           // name of function giving I(s); empty means absent
	Stiffness *StiffnessData `json:"stiffness" yaml:"stiffness"` // bending stiffness; nil means absent
	Coupling  iec.Params     `json:"coupling" yaml:"coupling"`   // coupling coefficients
	Bc        string         `json:"bc" yaml:"bc"`               // boundary conditions mode
	Nmodes    int            `json:"nmodes" yaml:"nmodes"`       // number of eigenmodes
	Sweep     *SweepData     `json:"sweep" yaml:"sweep"`         // parameter sweep; nil means none

	// derived
	SimFile string   `json:"-" yaml:"-"` // path of simulation file
	Dir     string   `json:"-" yaml:"-"` // directory of simulation file
	DirOut  string   `json:"-" yaml:"-"` // directory to save results
	Key     string   `json:"-" yaml:"-"` // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	BcMode  shape.Bc `json:"-" yaml:"-"` // boundary conditions mode
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)
	o.SetDefault()

	// read file
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	o.SimFile = simfilepath
	o.Dir = os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(simfilepath)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = os.ExpandEnv(o.Data.DirOut)
	if o.DirOut == "" {
		o.DirOut = "/tmp/rodsim/" + fnkey
	}

	// check and derived
	if err = o.PostProcess(); err != nil {
		return nil, chk.Err("ReadSim: invalid simulation file %q:\n%v", simfilepath, err)
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// SetDefault sets defaults values
func (o *Simulation) SetDefault() {
	o.Grid.L = 1
	o.Grid.N = 401
	o.Baseline = "zero"
	o.Bc = shape.ClampedFree.String()
	o.Nmodes = 6
}

// PostProcess checks the data just read and computes derived quantities
func (o *Simulation) PostProcess() (err error) {

	// grid
	if !(o.Grid.L > 0) || math.IsInf(o.Grid.L, 0) {
		return chk.Err("grid.l must be positive and finite; got %g", o.Grid.L)
	}
	if o.Grid.N < 2 {
		return chk.Err("grid.n must be at least 2; got %d", o.Grid.N)
	}
	if o.Grid.Ratio < 0 {
		return chk.Err("grid.ratio must be non-negative; got %g", o.Grid.Ratio)
	}
	if o.Grid.Ratio != 0 && o.Grid.Ratio != 1 {
		return chk.Err("grid.ratio = %g gives a non-uniform grid but wavelength and phase shift require uniform spacing; remove ratio or set it to 1", o.Grid.Ratio)
	}

	// boundary conditions
	if o.BcMode, err = shape.ParseBc(o.Bc); err != nil {
		return chk.Err("bc: %v", err)
	}

	// functions
	names := map[string]bool{"zero": true, "none": true}
	for i, f := range o.Functions {
		if f.Name == "" {
			return chk.Err("functions[%d]: name is missing", i)
		}
		if names[f.Name] {
			return chk.Err("functions[%d]: name %q is repeated or reserved", i, f.Name)
		}
		names[f.Name] = true
	}
	check := func(field, name string) error {
		if name != "" && !names[name] {
			return chk.Err("%s: cannot find function named %q", field, name)
		}
		return nil
	}
	if o.Baseline == "" {
		return chk.Err("baseline: function name is missing")
	}
	if err = check("baseline", o.Baseline); err != nil {
		return
	}
	if err = check("info", o.Info); err != nil {
		return
	}
	for _, f := range o.Functions {
		for _, arg := range f.Args {
			if err = check(io.Sf("functions[%s].args", f.Name), arg); err != nil {
				return
			}
		}
	}

	// stiffness
	if o.Stiffness != nil {
		if err = check("stiffness.func", o.Stiffness.Func); err != nil {
			return
		}
		if err = o.Stiffness.PostProcess(); err != nil {
			return
		}
	}

	// coupling
	if err = o.Coupling.Validate(); err != nil {
		return chk.Err("coupling: %v", err)
	}

	// modes
	if o.Nmodes < 0 {
		return chk.Err("nmodes must be non-negative; got %d", o.Nmodes)
	}

	// sweep
	if o.Sweep != nil {
		if len(o.Sweep.ChiK) == 0 {
			o.Sweep.ChiK = []float64{o.Coupling.ChiK}
		}
		if len(o.Sweep.ChiE) == 0 {
			o.Sweep.ChiE = []float64{o.Coupling.ChiE}
		}
		if o.Sweep.Workers < 0 {
			return chk.Err("sweep.workers must be non-negative; got %d", o.Sweep.Workers)
		}
		for _, v := range append(append([]float64{}, o.Sweep.ChiK...), o.Sweep.ChiE...) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return chk.Err("sweep: coefficients must be finite; got %g", v)
			}
		}
	}
	return
}

// Summary returns a table with the main input data
func (o *Simulation) Summary() string {
	info := o.Info
	if info == "" {
		info = "(none)"
	}
	stiff := "(none)"
	if o.Stiffness != nil {
		stiff = io.Sf("%g", o.Stiffness.EI)
		if o.Stiffness.Func != "" {
			stiff += " × " + o.Stiffness.Func
		}
	}
	return io.ArgsTable("INPUT DATA",
		"description", "desc", o.Data.Desc,
		"rod length", "L", o.Grid.L,
		"number of points", "N", o.Grid.N,
		"spacing ratio", "ratio", o.Grid.Ratio,
		"baseline curvature", "baseline", o.Baseline,
		"information field", "info", info,
		"bending stiffness", "B", stiff,
		"phase coupling", "chik", o.Coupling.ChiK,
		"amplitude coupling", "chie", o.Coupling.ChiE,
		"boundary conditions", "bc", o.BcMode.String(),
		"number of modes", "nmodes", o.Nmodes,
		"random seed", "seed", o.Data.Seed,
	)
}
