// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bridge implements the optional connection to external rod-dynamics solvers
package bridge

import (
	"context"
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/sayujks0071/life-sub001/grid"
	"github.com/sayujks0071/life-sub001/shape"
)

// Status indicates the outcome of a query to an external solver
type Status int

const (
	Unavailable Status = iota // no solver registered under the given name
	Success                   // solver returned a shape
	Failure                   // solver is registered but failed
)

// String returns the key of the status
func (o Status) String() string {
	switch o {
	case Unavailable:
		return "unavailable"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// Solver defines external rod-dynamics solvers
type Solver interface {
	Solve(ctx context.Context, s, kappa []float64) (*shape.Shape, error) // Solve computes the centreline for the given curvature
}

// Result holds the outcome of a query
type Result struct {
	Name    string       // name of solver
	Status  Status       // outcome
	Shape   *shape.Shape // shape if Status == Success
	Err     error        // error if Status == Failure
	Message string       // human readable description
}

// allocators holds all available solvers; name => allocator
var (
	mutex      sync.RWMutex
	allocators = map[string]func() Solver{}
)

// Register makes a solver available under name. Registering the same name twice replaces the allocator
func Register(name string, alloc func() Solver) {
	if name == "" || alloc == nil {
		chk.Panic("bridge: name and allocator must be given")
	}
	mutex.Lock()
	defer mutex.Unlock()
	allocators[name] = alloc
}

// Unregister removes a solver
func Unregister(name string) {
	mutex.Lock()
	defer mutex.Unlock()
	delete(allocators, name)
}

// Available tells whether a solver is registered under name
func Available(name string) bool {
	mutex.RLock()
	defer mutex.RUnlock()
	_, ok := allocators[name]
	return ok
}

// Names returns the sorted names of all registered solvers
func Names() (names []string) {
	mutex.RLock()
	defer mutex.RUnlock()
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Query runs the solver registered under name. Query never fails: an
// unregistered name gives Unavailable and solver errors (or panics) give Failure
func Query(ctx context.Context, name string, s, kappa []float64) (res *Result) {
	res = &Result{Name: name}
	mutex.RLock()
	alloc, ok := allocators[name]
	mutex.RUnlock()
	if !ok {
		res.Status = Unavailable
		res.Message = io.Sf("solver %q is not available", name)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			res.Status = Failure
			res.Shape = nil
			res.Err = chk.Err("solver %q panicked: %v", name, r)
			res.Message = res.Err.Error()
		}
	}()
	shp, err := solve(ctx, alloc(), s, kappa)
	if err != nil {
		res.Status = Failure
		res.Err = err
		res.Message = io.Sf("solver %q failed: %v", name, err)
		return
	}
	res.Status = Success
	res.Shape = shp
	res.Message = io.Sf("solver %q returned %d points", name, shp.Len())
	return
}

// solve checks input and output of solver
func solve(ctx context.Context, solver Solver, s, kappa []float64) (shp *shape.Shape, err error) {
	if err = grid.CheckField("kappa", s, kappa); err != nil {
		return
	}
	if err = ctx.Err(); err != nil {
		return
	}
	shp, err = solver.Solve(ctx, s, kappa)
	if err != nil {
		return nil, err
	}
	if shp == nil || shp.Len() != len(s) {
		return nil, chk.Err("shape is missing or has wrong length: %w", grid.ErrShapeMismatch)
	}
	return
}
