// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/mvettori/planefem/ana"
	"github.com/mvettori/planefem/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_dom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dom01. domain and dof numbering")

	// simulation and domain
	sim := inp.ReadSim("data/cavity.sim", "", false, 0)
	doms := NewDomains(sim)
	chk.IntAssert(len(doms), 1)
	dom := doms[0]
	err := dom.SetStage(0)
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}

	// sizes
	io.Pforan("nnodes = %v\n", len(dom.Nodes))
	io.Pforan("nelems = %v\n", len(dom.Elems))
	io.Pforan("ny     = %v\n", dom.Ny)
	io.Pforan("nλ     = %v\n", dom.Nlam)
	chk.IntAssert(len(dom.Nodes), 25)
	chk.IntAssert(len(dom.Elems), 4)

	// 25 vertices with {ux,uy} and 9 cell corners with {pl}
	chk.IntAssert(dom.Ny, 59)

	// 16 boundary vertices with {ux,uy} prescribed and 1 pinned pressure
	chk.IntAssert(dom.Nlam, 33)
	chk.IntAssert(dom.Nyb, 92)

	// dof keys
	chk.String(tst, dom.F2Y["fux"], "ux")
	chk.String(tst, dom.F2Y["fpl"], "pl")
	if !dom.YandC["uy"] || !dom.YandC["pl"] {
		tst.Errorf("YandC map is incomplete\n")
		return
	}

	// pressure lives on cell corners only
	for _, v := range []int{0, 2, 4, 10, 12, 14, 20, 22, 24} {
		if dom.Vid2node[v].GetEq("pl") < 0 {
			tst.Errorf("vertex %d must have a pressure dof\n", v)
			return
		}
	}
	for _, v := range []int{1, 6, 11, 13, 17} {
		chk.IntAssert(dom.Vid2node[v].GetEq("pl"), -1)
	}

	// list of constraints: all prescribed values are zero at t=0
	keys, eqs, values := dom.EssenBcs.List(0)
	chk.IntAssert(len(keys), 33)
	chk.IntAssert(len(eqs), 33)
	for i, v := range values {
		chk.Scalar(tst, io.Sf("%s @ eq %d", keys[i], eqs[i]), 1e-17, v, 0)
	}
}

func Test_stokes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stokes01. pressure-driven channel flow")

	// run simulation
	fe := NewFEM("data/chanflow.sim", "", false, chk.Verbose)
	err := fe.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	dom := fe.Doms[0]

	// analytical solution
	var sol ana.ChannelFlow
	sol.Init([]*fun.Prm{
		{N: "mu", V: 1.0},
		{N: "H", V: 1.0},
		{N: "L", V: 2.0},
		{N: "dp", V: 3.0},
		{N: "p0", V: 3.0},
	})

	// check nodal values
	for _, nod := range dom.Nodes {
		x := nod.Vert.C
		ux, uy := sol.Velocity(x[0], x[1])
		eqx := nod.GetEq("ux")
		eqy := nod.GetEq("uy")
		chk.Scalar(tst, io.Sf("ux @ (%4.2f,%4.2f)", x[0], x[1]), 1e-10, dom.Sol.Y[eqx], ux)
		chk.Scalar(tst, io.Sf("uy @ (%4.2f,%4.2f)", x[0], x[1]), 1e-10, dom.Sol.Y[eqy], uy)
		if eqp := nod.GetEq("pl"); eqp >= 0 {
			chk.Scalar(tst, io.Sf("pl @ (%4.2f,%4.2f)", x[0], x[1]), 1e-9, dom.Sol.Y[eqp], sol.Pressure(x[0], x[1]))
		}
	}

	// centreline velocity
	eqmax := dom.Vid2node[7].GetEq("ux")
	chk.Scalar(tst, "max ux", 1e-10, dom.Sol.Y[eqmax], sol.MaxVelocity())

	// incompressibility at integration points
	for _, e := range dom.Elems {
		for _, dat := range e.OutIpsData() {
			vals := dat.Calc(dom.Sol)
			chk.Scalar(tst, io.Sf("divu @ (%4.2f,%4.2f)", dat.X[0], dat.X[1]), 1e-10, vals["divu"], 0)
		}
	}
}

func Test_stokes02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stokes02. hydrostatic equilibrium in closed cavity")

	// run simulation
	fe := NewFEM("data/cavity.sim", "", false, chk.Verbose)
	err := fe.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	dom := fe.Doms[0]

	// no flow and linear pressure: p = -ρ*g*y with p(0,0) = 0
	ρ, g := 1.0, 10.0
	for _, nod := range dom.Nodes {
		x := nod.Vert.C
		eqx := nod.GetEq("ux")
		eqy := nod.GetEq("uy")
		chk.Scalar(tst, io.Sf("ux @ (%4.2f,%4.2f)", x[0], x[1]), 1e-10, dom.Sol.Y[eqx], 0)
		chk.Scalar(tst, io.Sf("uy @ (%4.2f,%4.2f)", x[0], x[1]), 1e-10, dom.Sol.Y[eqy], 0)
		if eqp := nod.GetEq("pl"); eqp >= 0 {
			chk.Scalar(tst, io.Sf("pl @ (%4.2f,%4.2f)", x[0], x[1]), 1e-9, dom.Sol.Y[eqp], -ρ*g*x[1])
		}
	}
}

func Test_stokes03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stokes03. lid-driven cavity")

	// run simulation
	fe := NewFEM("data/liddriven.sim", "", false, chk.Verbose)
	err := fe.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	dom := fe.Doms[0]

	// pinned pressure
	eqp := dom.Vid2node[0].GetEq("pl")
	chk.Scalar(tst, "pinned pl", 1e-12, dom.Sol.Y[eqp], 0)

	// lid moves and the fluid below flows back
	eqlid := dom.Vid2node[22].GetEq("ux")
	eqmid := dom.Vid2node[12].GetEq("ux")
	chk.Scalar(tst, "ux @ lid", 1e-12, dom.Sol.Y[eqlid], 1)
	if dom.Sol.Y[eqmid] >= 0 {
		tst.Errorf("return flow at mid-depth must be negative: %g\n", dom.Sol.Y[eqmid])
		return
	}

	// reactions balance: no body force, so the multipliers of each velocity
	// component sum to zero
	var sumx, sumy float64
	for i, bc := range dom.EssenBcs.Bcs {
		switch bc.Key {
		case "ux":
			sumx += dom.Sol.L[i]
		case "uy":
			sumy += dom.Sol.L[i]
		}
	}
	chk.Scalar(tst, "Σ reactions x", 1e-10, sumx, 0)
	chk.Scalar(tst, "Σ reactions y", 1e-10, sumy, 0)
}

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. linear solver options")

	// run with timing activated
	fe := NewFEM("data/chanflow.sim", "", false, chk.Verbose)
	fe.Sim.LinSol.Timing = true
	err := fe.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	dom := fe.Doms[0]
	eq := dom.Vid2node[7].GetEq("ux")
	ux := dom.Sol.Y[eq]

	// solving again restarts from the zero state and reproduces the solution
	dom.Sol.Y[eq] += 123.0
	err = fe.Solver.Run(chk.Verbose)
	if err != nil {
		tst.Errorf("second Run failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "ux after rerun", 1e-14, dom.Sol.Y[eq], ux)

	// unknown solver kind
	fe.Sim.LinSol.Name = "sparse"
	err = fe.Solver.Run(chk.Verbose)
	if err == nil {
		tst.Errorf("solver must reject unknown linear solver kind\n")
		return
	}
	io.Pfgreen("error as expected: %v\n", err)
}
