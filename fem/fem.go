// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem contains the finite element method solver for plane
// incompressible flow problems
package fem

import (
	"github.com/mvettori/planefem/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FEsolver defines what a solution driver must compute
type FEsolver interface {
	Run(verbose bool) (err error)
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(doms []*Domain) FEsolver)

// FEM holds all data for a simulation using the finite element method
type FEM struct {
	Sim     *inp.Simulation // simulation data
	Doms    []*Domain       // all domains
	Solver  FEsolver        // solver
	ShowMsg bool            // show messages
}

// NewFEM returns a new FEM structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key; e.g. when running multiple cases
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewFEM(simfilepath, alias string, erasePrev, verbose bool) (o *FEM) {

	// new structure
	o = new(FEM)
	o.ShowMsg = verbose

	// read input data
	o.Sim = inp.ReadSim(simfilepath, alias, erasePrev, 0)
	if o.Sim == nil {
		chk.Panic("cannot read simulation file %q", simfilepath)
	}

	// allocate domains
	o.Doms = NewDomains(o.Sim)

	// allocate solver
	allocator, ok := solverallocators["linsteady"]
	if !ok {
		chk.Panic("cannot find solver 'linsteady'")
	}
	o.Solver = allocator(o.Doms)
	return
}

// Run runs all stages of the simulation
func (o *FEM) Run() (err error) {
	for stgidx, stg := range o.Sim.Stages {

		// skip stage
		if stg.Skip {
			continue
		}

		// set stage
		err = o.SetStage(stgidx)
		if err != nil {
			return
		}

		// message
		if o.ShowMsg {
			io.Pfyel("stage # %d: %q\n", stgidx, stg.Desc)
		}

		// solve
		err = o.Solver.Run(o.ShowMsg)
		if err != nil {
			return chk.Err("solver failed:\n%v", err)
		}
	}
	return
}

// SetStage sets stage for all domains
func (o *FEM) SetStage(stgidx int) (err error) {
	for _, d := range o.Doms {
		err = d.SetStage(stgidx)
		if err != nil {
			return chk.Err("cannot set stage %d:\n%v", stgidx, err)
		}
	}
	return
}
