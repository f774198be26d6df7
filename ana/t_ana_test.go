// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/gonum/integrate/quad"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_tube01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tube01. stress boundary conditions")

	var sol PressTube
	sol.Init([]*fun.Prm{
		{N: "mu", V: 80.0},
		{N: "nu", V: 0.25},
		{N: "R", V: 2.0},
		{N: "eta", V: 0.2},
		{N: "p", V: 3.0},
		{N: "varpi", V: 0.5},
	})
	io.Pforan("Rin=%g Rout=%g Pin=%g Pout=%g\n", sol.Rin, sol.Rout, sol.Pin, sol.Pout)

	// radii and pressures
	chk.Scalar(tst, "Rin", 1e-15, sol.Rin, 1.6)
	chk.Scalar(tst, "Rout", 1e-15, sol.Rout, 2.4)
	chk.Scalar(tst, "Pin", 1e-15, sol.Pin, 3.75)
	chk.Scalar(tst, "Pout", 1e-15, sol.Pout, 2.25)

	// σr must balance the applied pressures at both walls
	srin, _, _ := sol.Stresses(sol.Rin)
	srout, _, _ := sol.Stresses(sol.Rout)
	chk.Scalar(tst, "sr(Rin)", 1e-14, srin, -sol.Pin)
	chk.Scalar(tst, "sr(Rout)", 1e-14, srout, -sol.Pout)

	// plane strain: σz is the ν-weighted mean of σr and σθ
	for _, r := range utl.LinSpace(sol.Rin, sol.Rout, 7) {
		sr, st, sz := sol.Stresses(r)
		chk.Scalar(tst, "sz", 1e-14, sz, 0.25*(sr+st))
	}
}

func Test_tube02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tube02. uniform pressure (ϖ=0)")

	var sol PressTube
	sol.Init([]*fun.Prm{
		{N: "mu", V: 1.0},
		{N: "nu", V: 0.3},
		{N: "R", V: 1.0},
		{N: "eta", V: 0.1},
		{N: "p", V: 2.0},
	})

	// equal pressures: hydrostatic in-plane state, B and D vanish
	chk.Scalar(tst, "B", 1e-15, sol.B, 0)
	chk.Scalar(tst, "D", 1e-15, sol.D, 0)
	for _, r := range utl.LinSpace(sol.Rin, sol.Rout, 5) {
		sr, st, _ := sol.Stresses(r)
		chk.Scalar(tst, "sr", 1e-14, sr, -2.0)
		chk.Scalar(tst, "st", 1e-14, st, -2.0)
		chk.Scalar(tst, "ur", 1e-14, sol.Displacement(r), sol.A*r)
	}
}

func Test_tube03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tube03. pressure swap and scaling")

	prms := func(p, w float64) fun.Prms {
		return []*fun.Prm{
			{N: "mu", V: 10.0},
			{N: "nu", V: 0.2},
			{N: "R", V: 1.5},
			{N: "eta", V: 0.25},
			{N: "p", V: p},
			{N: "varpi", V: w},
		}
	}

	// swapping pin and pout flips the sign of D and reflects C
	var a, b PressTube
	a.Init(prms(3.0, 0.8))
	b.Init(prms(3.0, -0.8))
	chk.Scalar(tst, "Pin swap", 1e-15, b.Pin, a.Pout)
	chk.Scalar(tst, "Pout swap", 1e-15, b.Pout, a.Pin)
	chk.Scalar(tst, "D swap", 1e-14, b.D, -a.D)
	chk.Scalar(tst, "C swap", 1e-14, b.C, -(a.Pin+a.Pout)-a.C)

	// doubling the mean pressure doubles stresses and displacements
	var c PressTube
	c.Init(prms(6.0, 0.8))
	for _, r := range utl.LinSpace(a.Rin, a.Rout, 5) {
		sra, sta, sza := a.Stresses(r)
		src, stc, szc := c.Stresses(r)
		chk.Scalar(tst, "sr x2", 1e-14, src, 2.0*sra)
		chk.Scalar(tst, "st x2", 1e-14, stc, 2.0*sta)
		chk.Scalar(tst, "sz x2", 1e-14, szc, 2.0*sza)
		chk.Scalar(tst, "ur x2", 1e-14, c.Displacement(r), 2.0*a.Displacement(r))
	}

	// A scales as p/μ and B as R²p/μ
	var d, e PressTube
	d.Init([]*fun.Prm{
		{N: "mu", V: 10.0}, {N: "nu", V: 0.2}, {N: "R", V: 3.0},
		{N: "eta", V: 0.25}, {N: "p", V: 3.0}, {N: "varpi", V: 0.8},
	})
	e.Init([]*fun.Prm{
		{N: "mu", V: 20.0}, {N: "nu", V: 0.2}, {N: "R", V: 1.5},
		{N: "eta", V: 0.25}, {N: "p", V: 3.0}, {N: "varpi", V: 0.8},
	})
	chk.Scalar(tst, "B x4 (R x2)", 1e-14, d.B, 4.0*a.B)
	chk.Scalar(tst, "A unchanged (R x2)", 1e-14, d.A, a.A)
	chk.Scalar(tst, "A half (μ x2)", 1e-14, e.A, a.A/2.0)
	chk.Scalar(tst, "B half (μ x2)", 1e-14, e.B, a.B/2.0)
}

func Test_tube04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tube04. strains, mean hoop stress and polar components")

	var sol PressTube
	sol.Init([]*fun.Prm{
		{N: "mu", V: 5.0},
		{N: "nu", V: 0.3},
		{N: "R", V: 2.0},
		{N: "eta", V: 0.15},
		{N: "p", V: 1.0},
		{N: "varpi", V: 2.0}, // pout = 0
	})

	// strains from the displacement field
	for _, r := range utl.LinSpace(sol.Rin, sol.Rout, 5) {
		er, et := sol.Strains(r)
		chk.Scalar(tst, "et", 1e-14, et, sol.Displacement(r)/r)
		chk.Scalar(tst, "er+et", 1e-14, er+et, 2.0*sol.A)
	}

	// quadrature against the exact integral of σθ
	h := sol.Rout - sol.Rin
	exact := (sol.C*h + sol.D*(1.0/sol.Rin-1.0/sol.Rout)) / h
	chk.Scalar(tst, "mean hoop", 1e-12, sol.MeanHoopStress(6), exact)

	// Cartesian components must map back to the polar ones
	x, y := 1.2, 1.4
	sx, sy, sxy := sol.CartesianStresses(x, y)
	r, sr, st, srt := PolarStresses(x, y, sx, sy, sxy)
	srr, stt, _ := sol.Stresses(r)
	chk.Scalar(tst, "sr", 1e-14, sr, srr)
	chk.Scalar(tst, "st", 1e-14, st, stt)
	chk.Scalar(tst, "srt", 1e-14, srt, 0)
}

func Test_tube05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tube05. invalid parameters")

	for _, prms := range []fun.Prms{
		{{N: "nu", V: 0.5}},  // incompressible limit
		{{N: "nu", V: -1.0}}, // lower bound
		{{N: "mu", V: -1.0}},
		{{N: "eta", V: 1.0}},
	} {
		func() {
			defer func() {
				if err := recover(); err == nil {
					tst.Errorf("Init must panic for prms = %v\n", prms)
				} else if chk.Verbose {
					io.Pfgreen("panic as expected: %v\n", err)
				}
			}()
			var sol PressTube
			sol.Init(prms)
		}()
	}
}

func Test_chflow01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chflow01. plane Poiseuille flow")

	var sol ChannelFlow
	sol.Init([]*fun.Prm{
		{N: "mu", V: 0.5},
		{N: "H", V: 2.0},
		{N: "L", V: 4.0},
		{N: "dp", V: 3.0},
		{N: "p0", V: 1.0},
	})

	// no-slip walls and centreline maximum
	ux0, uy0 := sol.Velocity(1.0, 0.0)
	uxH, _ := sol.Velocity(1.0, sol.H)
	uxc, _ := sol.Velocity(1.0, sol.H/2.0)
	chk.Scalar(tst, "ux(0)", 1e-15, ux0, 0)
	chk.Scalar(tst, "uy", 1e-15, uy0, 0)
	chk.Scalar(tst, "ux(H)", 1e-15, uxH, 0)
	chk.Scalar(tst, "ux max", 1e-15, uxc, sol.MaxVelocity())

	// pressure drop
	chk.Scalar(tst, "p(0)-p(L)", 1e-15, sol.Pressure(0, 0)-sol.Pressure(sol.L, 0), 3.0)

	// flow rate computed by quadrature
	q := quad.Fixed(func(y float64) float64 {
		ux, _ := sol.Velocity(0, y)
		return ux
	}, 0, sol.H, 4, quad.Legendre{}, 0)
	io.Pforan("Q = %v\n", q)
	chk.Scalar(tst, "Q", 1e-14, q, sol.FlowRate())
}
