// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// LinSteady solves the linear steady problem in one go:
//
//   | K  Aᵀ | | Δy |   | fb |
//   |       | |    | = |    |
//   | A  0  | | Δλ |   | cb |
//
// Since the problem is linear, a single "iteration" starting from y = 0
// delivers the solution.
type LinSteady struct {
	doms []*Domain
}

// register solver
func init() {
	solverallocators["linsteady"] = func(doms []*Domain) FEsolver {
		return &LinSteady{doms}
	}
}

// Run solves the problem
func (o *LinSteady) Run(verbose bool) (err error) {
	for _, d := range o.doms {
		err = o.solve(d, verbose)
		if err != nil {
			return
		}
	}
	return
}

// solve solves the linear problem in one domain
func (o LinSteady) solve(d *Domain, verbose bool) (err error) {

	// options
	if d.Sim.LinSol.Name != "dense" {
		return chk.Err("linear solver %q is not available", d.Sim.LinSol.Name)
	}
	verbose = verbose || d.Sim.LinSol.Verbose

	// the problem is linear: always start from the zero state
	d.Sol.Reset()

	// assemble right-hand-side vector (fb) with negative of residuals
	la.VecFill(d.Fb, 0)
	for _, e := range d.Elems {
		err = e.AddToRhs(d.Fb, d.Sol)
		if err != nil {
			return
		}
	}

	// join all fb equations
	d.PtNatBcs.AddToRhs(d.Fb, d.Sol.T)
	d.EssenBcs.AddToRhs(d.Fb, d.Sol)

	// assemble Kb matrix
	d.Kb.Start()
	for _, e := range d.Elems {
		err = e.AddToKb(d.Kb, d.Sol)
		if err != nil {
			return
		}
	}
	if d.Nlam > 0 {
		d.Kb.PutMatAndMatT(&d.EssenBcs.A)
	}

	// solve for increments
	cputime := time.Now()
	err = DenseSolve(d.Wb, d.Kb, d.Fb)
	if err != nil {
		return chk.Err("cannot solve linear system:\n%v", err)
	}
	if d.Sim.LinSol.Timing {
		io.Pflmag("solver cpu time = %v\n", time.Now().Sub(cputime))
	}

	// update solution
	for i := 0; i < d.Ny; i++ {
		d.Sol.Y[i] += d.Wb[i]
		d.Sol.ΔY[i] += d.Wb[i]
	}
	for i := 0; i < d.Nlam; i++ {
		d.Sol.L[i] += d.Wb[d.Ny+i]
	}

	// message
	if verbose {
		io.Pf(". . . linear steady problem solved: ny=%d nλ=%d\n", d.Ny, d.Nlam)
	}
	return
}
