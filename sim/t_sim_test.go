// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/sayujks0071/life-sub001/ana"
	"github.com/sayujks0071/life-sub001/bridge"
	"github.com/sayujks0071/life-sub001/out"
	"github.com/sayujks0071/life-sub001/shape"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

type quasistatic struct{}

func (o quasistatic) Solve(ctx context.Context, s, kappa []float64) (*shape.Shape, error) {
	return shape.Integrate(s, kappa, shape.ClampedFree)
}

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. coupled run with eigenmodes, figures and bridge")

	bridge.Register("quasistatic", func() bridge.Solver { return quasistatic{} })
	defer bridge.Unregister("quasistatic")

	dir := tst.TempDir()
	analysis, err := NewMain("data/wave01.sim", dir, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	rep, err := analysis.Run(context.Background())
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// shapes
	c := rep.Comparison
	io.Pforan("%v\n", c)
	chk.String(tst, rep.Key, "wave01")
	chk.Bool(tst, "wavelength preserved", c.WavelengthPreserved(), true)
	chk.Bool(tst, "phase shifted", c.PhaseShift < -0.1, true)
	chk.Float64(tst, "y(0)", 1e-15, rep.Coupled.Y[0], 0)
	chk.Float64(tst, "y(L)", 1e-15, rep.Coupled.Y[100], 0)

	// eigenmodes with unit stiffness
	chk.Int(tst, "number of modes", rep.Spectrum.Len(), 3)
	λ1, _ := ana.ClampedFreeLambda(1, 1, 1)
	chk.Float64(tst, "λ1", λ1*1e-3, rep.Spectrum.Lambda[0], λ1)

	// bridge
	chk.Bool(tst, "bridge success", rep.Bridge.Status == bridge.Success, true)
	chk.Array(tst, "bridge y", 1e-15, rep.Bridge.Shape.Y, rep.Coupled.Y)

	// files
	for _, fn := range append(rep.Files, filepath.Base(rep.Manifest)) {
		if _, err := os.Stat(filepath.Join(dir, fn)); err != nil {
			tst.Errorf("file %q is missing", fn)
		}
	}
	chk.Int(tst, "number of files", len(rep.Files), 6)
	_, shapes, err := out.ReadShapes(filepath.Join(dir, "wave01-shapes.res"), "base", "coupled", "bridge")
	if err != nil {
		tst.Errorf("ReadShapes failed:\n%v", err)
		return
	}
	chk.Array(tst, "y coupled", 1e-15, shapes[1].Y, rep.Coupled.Y)
	man, err := out.ReadManifest(rep.Manifest)
	if err != nil {
		tst.Errorf("ReadManifest failed:\n%v", err)
		return
	}
	chk.String(tst, man.Results["bridge"].(string), "success")
	chk.Bool(tst, "manifest: preserved", man.Results["wavelength_preserved"].(bool), true)
	chk.Float64(tst, "manifest: χk", 1e-15, man.Inputs["chik"].(float64), 0.18849555921538758)
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. stiffness, unavailable bridge and sweep")

	dir := tst.TempDir()
	analysis, err := NewMain("data/wave02.yaml", dir, chk.Verbose)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	rep, err := analysis.Run(context.Background())
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Bool(tst, "bridge unavailable", rep.Bridge.Status == bridge.Unavailable, true)
	chk.Bool(tst, "amplified", rep.Comparison.AmplitudeRatio > 1.5, true)
	λ1, _ := ana.ClampedFreeLambda(1, 2, 1)
	chk.Float64(tst, "λ1 with B=2", λ1*1e-3, rep.Spectrum.Lambda[0], λ1)
	chk.Int(tst, "no figures", len(rep.Files), 4)

	rows, err := analysis.RunSweep(context.Background())
	if err != nil {
		tst.Errorf("RunSweep failed:\n%v", err)
		return
	}
	chk.Int(tst, "rows", len(rows), 6)
	chk.Float64(tst, "Δφ(0,0)", 1e-15, rows[0].Comparison.PhaseShift, 0)
	chk.Float64(tst, "A(0,1)", 1e-10, rows[1].Comparison.AmplitudeRatio, 2)
	_, T := io.ReadTable(filepath.Join(dir, "wave02-sweep.res"))
	chk.Array(tst, "chik column", 1e-15, T["chik"], []float64{0, 0, 0.1, 0.1, 0.2, 0.2})
	if _, err = out.ReadManifest(filepath.Join(dir, "wave02-sweep-manifest.json")); err != nil {
		tst.Errorf("sweep manifest is missing:\n%v", err)
	}
}

func Test_run03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run03. errors")

	_, err := NewMain("data/missing.sim", tst.TempDir(), false)
	chk.Bool(tst, "missing file", err != nil, true)

	analysis, err := NewMain("data/wave01.sim", tst.TempDir(), false)
	if err != nil {
		tst.Errorf("NewMain failed:\n%v", err)
		return
	}
	_, err = analysis.RunSweep(context.Background())
	chk.Bool(tst, "no sweep block", err != nil, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = analysis.Run(ctx)
	chk.Bool(tst, "cancelled", errors.Is(err, context.Canceled), true)
}
