// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deriv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mvettori/planefem/ana"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	sym "github.com/njchilds90/gosymbol"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_roots01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("roots01. characteristic exponents")

	for _, ν := range []sym.Expr{sym.F(3, 10), sym.F(1, 4), sym.N(0), sym.F(-1, 2), sym.F(49, 100)} {

		roots, err := CharacteristicRoots(ν)
		if err != nil {
			tst.Errorf("CharacteristicRoots failed:\n%v", err)
			return
		}
		io.Pforan("ν=%v: roots = %v\n", ν, roots)

		// root set must be {1, -1} for any admissible ν
		chk.IntAssert(len(roots), 2)
		vals := make([]float64, 2)
		for i, root := range roots {
			num, ok := root.Eval()
			if !ok {
				tst.Errorf("root %v is not numeric\n", root)
				return
			}
			vals[i] = num.Float64()
		}
		if vals[0] < vals[1] {
			vals[0], vals[1] = vals[1], vals[0]
		}
		chk.Vector(tst, "roots", 1e-15, vals, []float64{1, -1})
	}
}

func Test_roots02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("roots02. degenerate Poisson coefficient")

	_, err := CharacteristicRoots(sym.N(1))
	if err == nil {
		tst.Errorf("ν=1 must make the characteristic polynomial degenerate\n")
		return
	}
	io.Pfgreen("error as expected: %v\n", err)
}

func Test_lame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lame01. symbolic vs closed-form solution")

	// exact derivation
	sol, err := Derive(sym.N(80), sym.F(1, 4), sym.N(2), sym.F(1, 5), sym.N(3), sym.F(1, 2))
	if err != nil {
		tst.Errorf("Derive failed:\n%v", err)
		return
	}

	// boundary conditions hold exactly
	err = sol.CheckBoundary()
	if err != nil {
		tst.Errorf("CheckBoundary failed:\n%v", err)
		return
	}

	// closed-form counterpart
	var ref ana.PressTube
	ref.Init([]*fun.Prm{
		{N: "mu", V: 80},
		{N: "nu", V: 0.25},
		{N: "R", V: 2},
		{N: "eta", V: 0.2},
		{N: "p", V: 3},
		{N: "varpi", V: 0.5},
	})

	// coefficients
	a, _ := sol.A.Eval()
	b, _ := sol.B.Eval()
	io.Pforan("A = %v = %v\n", sol.A, a.Float64())
	io.Pforan("B = %v = %v\n", sol.B, b.Float64())
	chk.Scalar(tst, "A", 1e-14, a.Float64(), ref.A)
	chk.Scalar(tst, "B", 1e-14, b.Float64(), ref.B)

	// fields at a few radii
	for _, radius := range []sym.Expr{sym.F(8, 5), sym.N(2), sym.F(12, 5)} {
		rn, _ := radius.Eval()
		r := rn.Float64()

		u, err := sol.EvalAt(sol.U, radius)
		if err != nil {
			tst.Errorf("EvalAt failed:\n%v", err)
			return
		}
		chk.Scalar(tst, "u", 1e-13, u.Float64(), ref.Displacement(r))

		sr, _ := sol.EvalAt(sol.SigR, radius)
		st, _ := sol.EvalAt(sol.SigT, radius)
		sz, _ := sol.EvalAt(sol.SigZ, radius)
		srr, stt, szz := ref.Stresses(r)
		chk.Scalar(tst, "sr", 1e-12, sr.Float64(), srr)
		chk.Scalar(tst, "st", 1e-12, st.Float64(), stt)
		chk.Scalar(tst, "sz", 1e-12, sz.Float64(), szz)

		er, _ := sol.EvalAt(sol.EpsR, radius)
		et, _ := sol.EvalAt(sol.EpsT, radius)
		err1, ett := ref.Strains(r)
		chk.Scalar(tst, "er", 1e-13, er.Float64(), err1)
		chk.Scalar(tst, "et", 1e-13, et.Float64(), ett)
	}
}

func Test_lame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lame02. uniform pressure kills the 1/r term")

	sol, err := Derive(sym.N(1), sym.F(3, 10), sym.N(1), sym.F(1, 10), sym.N(2), sym.N(0))
	if err != nil {
		tst.Errorf("Derive failed:\n%v", err)
		return
	}

	// ϖ=0: B vanishes exactly and both in-plane stresses equal -p
	b, ok := sol.B.Eval()
	if !ok || !b.IsZero() {
		tst.Errorf("B must vanish exactly; got %v\n", sol.B)
		return
	}
	for _, radius := range []sym.Expr{sol.Rin, sym.N(1), sol.Rout} {
		sr, _ := sol.EvalAt(sol.SigR, radius)
		st, _ := sol.EvalAt(sol.SigT, radius)
		if !sr.Equal(sym.N(-2)) || !st.Equal(sym.N(-2)) {
			tst.Errorf("in-plane stresses must be exactly -p; got σr=%v σθ=%v\n", sr, st)
			return
		}
	}
}

func Test_lame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lame03. LaTeX report")

	sol, err := Derive(sym.N(1), sym.F(1, 4), sym.N(1), sym.F(1, 10), sym.N(1), sym.N(1))
	if err != nil {
		tst.Errorf("Derive failed:\n%v", err)
		return
	}

	var buf bytes.Buffer
	err = sol.Report(&buf)
	if err != nil {
		tst.Errorf("Report failed:\n%v", err)
		return
	}
	out := buf.String()
	io.Pf("%s", out)
	for _, key := range []string{"u(r)", "\\sigma_r", "\\sigma_\\theta", "\\varepsilon_r"} {
		if !strings.Contains(out, key) {
			tst.Errorf("report is missing %q\n", key)
			return
		}
	}
}

func Test_lame04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lame04. Poisson coefficient out of range")

	for _, ν := range []sym.Expr{sym.F(1, 2), sym.N(1), sym.N(-1)} {
		_, err := Derive(sym.N(1), ν, sym.N(1), sym.F(1, 10), sym.N(1), sym.N(0))
		if err == nil {
			tst.Errorf("Derive must reject ν=%v\n", ν)
			return
		}
		io.Pfgreen("ν=%v: error as expected: %v\n", ν, err)
	}
}
