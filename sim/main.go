// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the driver of rod simulations
package sim

import (
	"context"
	"os"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/sayujks0071/life-sub001/bridge"
	"github.com/sayujks0071/life-sub001/grid"
	"github.com/sayujks0071/life-sub001/iec"
	"github.com/sayujks0071/life-sub001/inp"
	"github.com/sayujks0071/life-sub001/metrics"
	"github.com/sayujks0071/life-sub001/modes"
	"github.com/sayujks0071/life-sub001/out"
	"github.com/sayujks0071/life-sub001/shape"
	"github.com/sayujks0071/life-sub001/sweep"
)

// Main holds all data for a rod simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	State   *grid.State     // fields sampled onto the grid; read-only
	ShowMsg bool            // show messages
}

// Report holds the results of one run
type Report struct {
	Key        string              // simulation key
	S          []float64           // arc-length grid
	Kappa      []float64           // coupled curvature after amplitude scaling
	Base       *shape.Shape        // baseline shape (uncoupled)
	Coupled    *shape.Shape        // shape under information-elasticity coupling
	Comparison *metrics.Comparison // metrics of Coupled with respect to Base
	Spectrum   *modes.Spectrum     // eigenmodes; nil if nmodes == 0
	Bridge     *bridge.Result      // external solver outcome; nil if none was requested
	Manifest   string              // path of manifest file
	Files      []string            // files written
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim or .yaml) filename including full path
//   dirout      -- replaces data.dirout if not empty
//   verbose     -- show messages
func NewMain(simfilepath, dirout string, verbose bool) (o *Main, err error) {

	// read input data
	o = new(Main)
	o.ShowMsg = verbose
	o.Sim, err = inp.ReadSim(simfilepath, "", false, false)
	if err != nil {
		return nil, err
	}
	if dirout != "" {
		o.Sim.DirOut = os.ExpandEnv(dirout)
	}
	if err = os.MkdirAll(o.Sim.DirOut, 0777); err != nil {
		return nil, chk.Err("cannot create directory for output results (%s): %v", o.Sim.DirOut, err)
	}
	io.RemoveAll(io.Sf("%s/%s-*", o.Sim.DirOut, o.Sim.Key))
	if o.ShowMsg {
		io.Pf("> Simulation file <%s> read\n", simfilepath)
		io.Pf("\n%v\n", o.Sim.Summary())
	}

	// sample fields
	o.State, err = o.Sim.Fields()
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Fields sampled onto %d points\n", o.State.N())
	}
	return
}

// Run computes baseline and coupled shapes, compares them, computes eigenmodes,
// queries the external solver and saves all results
func (o *Main) Run(ctx context.Context) (rep *Report, err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// shapes
	rep = &Report{Key: o.Sim.Key, S: o.State.S}
	rep.Base, err = o.Baseline()
	if err != nil {
		return
	}
	rep.Kappa, err = o.Curvature(o.Sim.Coupling)
	if err != nil {
		return
	}
	rep.Coupled, err = shape.Integrate(o.State.S, rep.Kappa, o.Sim.BcMode)
	if err != nil {
		return
	}
	rep.Comparison, err = metrics.Compare(o.State.S, rep.Base.Y, rep.Coupled.Y)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Shapes computed\n")
		io.Pfcyan("%v\n", rep.Comparison)
	}

	// eigenmodes
	if o.Sim.Nmodes > 0 {
		if err = ctx.Err(); err != nil {
			return
		}
		rep.Spectrum, err = o.Spectrum()
		if err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf("> %d eigenmodes computed\n", rep.Spectrum.Len())
			io.Pfcyan("λ = %v\n", rep.Spectrum.Lambda)
		}
	}

	// external solver
	if o.Sim.Data.Bridge != "" {
		rep.Bridge = bridge.Query(ctx, o.Sim.Data.Bridge, o.State.S, rep.Kappa)
		if o.ShowMsg {
			io.Pf("> Bridge: %s\n", rep.Bridge.Message)
		}
	}

	// save results
	if err = ctx.Err(); err != nil {
		return
	}
	err = o.save(rep)
	return
}

// Baseline computes the uncoupled shape
func (o *Main) Baseline() (*shape.Shape, error) {
	return shape.Integrate(o.State.S, o.State.Kappa0, o.Sim.BcMode)
}

// Curvature returns the coupled curvature scaled by the amplitude factor
func (o *Main) Curvature(prm iec.Params) (kappa []float64, err error) {
	kappa, err = iec.TargetCurvature(o.State, prm)
	if err != nil {
		return
	}
	return iec.ApplyAmplitude(kappa, prm), nil
}

// Spectrum computes nmodes eigenmodes of the stiffness operator. A unit
// stiffness is used if none was given
func (o *Main) Spectrum() (*modes.Spectrum, error) {
	B := o.State.Stiff
	if B == nil {
		B = utl.Ones(o.State.N())
	}
	return modes.Eigenmodes(B, o.State.S, o.Sim.Nmodes)
}

// RunSweep evaluates all coupling points of the sweep block concurrently
func (o *Main) RunSweep(ctx context.Context) (rows []*sweep.Row, err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// check
	if o.Sim.Sweep == nil {
		return nil, chk.Err("simulation file has no sweep block")
	}
	sw := o.Sim.Sweep

	// run
	base, err := o.Baseline()
	if err != nil {
		return
	}
	pts := sweep.Grid(sw.ChiK, sw.ChiE)
	if o.ShowMsg {
		io.Pf("> Running sweep with %d points\n", len(pts))
	}
	rows, err = sweep.Run(ctx, o.State, base, pts, o.Sim.BcMode, sw.Workers)
	if err != nil {
		return
	}

	// save results
	key := o.Sim.Key + "-sweep"
	chik, chie, cmps := sweep.Columns(rows)
	if err = out.WriteSweep(o.Sim.DirOut, o.Sim.Key, chik, chie, cmps); err != nil {
		return
	}
	man := o.manifest(key)
	man.Input("sweep_chik", sw.ChiK)
	man.Input("sweep_chie", sw.ChiE)
	man.File(o.Sim.Key + "-sweep.res")
	nkept := 0
	for _, c := range cmps {
		if c.WavelengthPreserved() {
			nkept++
		}
	}
	man.Result("points", len(rows))
	man.Result("wavelength_preserved", nkept)
	_, err = man.Write(o.Sim.DirOut)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// save writes tables, figures and manifest
func (o *Main) save(rep *Report) (err error) {
	dir, key := o.Sim.DirOut, o.Sim.Key
	st := o.State

	// tables
	if err = out.WriteFields(dir, key, st.S, st.Kappa0, rep.Kappa, st.Info); err != nil {
		return
	}
	rep.Files = append(rep.Files, key+"-fields.res")
	names := []string{"base", "coupled"}
	shapes := []*shape.Shape{rep.Base, rep.Coupled}
	if rep.Bridge != nil && rep.Bridge.Status == bridge.Success {
		names = append(names, "bridge")
		shapes = append(shapes, rep.Bridge.Shape)
	}
	if err = out.WriteShapes(dir, key, st.S, names, shapes...); err != nil {
		return
	}
	rep.Files = append(rep.Files, key+"-shapes.res")
	if rep.Spectrum != nil {
		if err = out.WriteSpectrum(dir, key, st.S, rep.Spectrum); err != nil {
			return
		}
		rep.Files = append(rep.Files, key+"-eigenvalues.res", key+"-modes.res")
	}

	// figures
	if o.Sim.Data.Figures {
		if _, err = out.PlotShapes(dir, key, names, shapes...); err != nil {
			return
		}
		rep.Files = append(rep.Files, key+"-shapes.png")
		if rep.Spectrum != nil && rep.Spectrum.Len() > 0 {
			if _, err = out.PlotModes(dir, key, st.S, rep.Spectrum); err != nil {
				return
			}
			rep.Files = append(rep.Files, key+"-modes.png")
		}
	}

	// manifest
	man := o.manifest(key)
	c := rep.Comparison
	man.Result("wavelength_base", c.WavelengthBase)
	man.Result("wavelength_coupled", c.WavelengthCoupled)
	man.Result("wavelength_ratio", c.WavelengthRatio)
	man.Result("wavelength_preserved", c.WavelengthPreserved())
	man.Result("phase_shift", c.PhaseShift)
	man.Result("amplitude_base", c.AmplitudeBase)
	man.Result("amplitude_coupled", c.AmplitudeCoupled)
	man.Result("amplitude_ratio", c.AmplitudeRatio)
	if rep.Spectrum != nil {
		man.Result("eigenvalues", rep.Spectrum.Lambda)
		man.Result("frequencies", rep.Spectrum.Omega)
	}
	if rep.Bridge != nil {
		man.Result("bridge", rep.Bridge.Status.String())
	}
	for _, fn := range rep.Files {
		man.File(fn)
	}
	rep.Manifest, err = man.Write(dir)
	return
}

// manifest returns a new manifest holding the input data
func (o *Main) manifest(key string) (man *out.Manifest) {
	s := o.Sim
	man = out.NewManifest(key, s.SimFile, s.Data.Seed)
	man.Input("l", s.Grid.L)
	man.Input("n", s.Grid.N)
	man.Input("ratio", s.Grid.Ratio)
	man.Input("baseline", s.Baseline)
	man.Input("info", s.Info)
	man.Input("chik", s.Coupling.ChiK)
	man.Input("chie", s.Coupling.ChiE)
	man.Input("bc", s.BcMode.String())
	man.Input("nmodes", s.Nmodes)
	if s.Stiffness != nil {
		man.Input("ei", s.Stiffness.EI)
	}
	return
}

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Since(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
