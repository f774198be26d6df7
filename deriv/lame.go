// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package deriv derives the closed-form solution of the pressurised tube
// step by step, with exact rational arithmetic
package deriv

import (
	goio "io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	sym "github.com/njchilds90/gosymbol"
)

// CharacteristicRoots computes the exponents n such that u(r) = r^n solves
// the radial equilibrium equation in plane strain. Substituting the ansatz
// into the Navier operator and scaling by the oedometric modulus gives the
// characteristic polynomial
//
//   (n-1) * (n+1) * (ν-1) / (2ν-1) = 0
//
// whose root set is {1, -1} for any admissible ν. The Poisson coefficient
// must be an exact rational; ν=1 degenerates the polynomial.
func CharacteristicRoots(ν sym.Expr) (roots []sym.Expr, err error) {

	// substitute u = r^n into  r² u'' + r u' - u  (equilibrium times r²)
	r, n := sym.S("r"), sym.S("n")
	u := sym.PowOf(r, n)
	lhs := sym.AddOf(
		sym.MulOf(sym.PowOf(r, sym.N(2)), sym.Diff2(u, "r")),
		sym.MulOf(r, sym.Diff(u, "r")),
		sym.MulOf(sym.N(-1), u),
	)

	// scale by (λ+2μ)/(2μ) = (ν-1)/(2ν-1)
	scale := sym.MulOf(
		sym.AddOf(ν, sym.N(-1)),
		sym.PowOf(sym.AddOf(sym.MulOf(sym.N(2), ν), sym.N(-1)), sym.N(-1)),
	)
	char := sym.Canonicalize(sym.Sub(sym.MulOf(scale, lhs), "r", sym.N(1)))

	// characteristic polynomial in n
	coeffs := sym.PolyCoeffs(char, "n")
	a, b, c := polyCoeff(coeffs, 2), polyCoeff(coeffs, 1), polyCoeff(coeffs, 0)
	res := sym.SolveQuadraticExact(a, b, c)
	if res.Error != "" {
		return nil, chk.Err("characteristic polynomial is degenerate: %s", res.Error)
	}
	return res.Solutions, nil
}

// polyCoeff returns the coefficient of degree deg; zero if absent
func polyCoeff(coeffs sym.PolyCoeffsResult, deg int) sym.Expr {
	if c, ok := coeffs[deg]; ok {
		return c
	}
	return sym.N(0)
}

// Solution holds the symbolic solution of the pressurised tube in plane
// strain. All fields are exact; expressions in the radius keep "r" free.
type Solution struct {

	// input
	Mu  sym.Expr // shear modulus μ
	Nu  sym.Expr // Poisson's coefficient ν
	R   sym.Expr // mid-surface radius
	Eta sym.Expr // relative half-thickness η
	P   sym.Expr // mean pressure
	W   sym.Expr // pressure contrast ϖ

	// derived geometry and loads
	Rin  sym.Expr // inner radius R(1-η)
	Rout sym.Expr // outer radius R(1+η)
	Pin  sym.Expr // inner pressure p(1+ϖ/2)
	Pout sym.Expr // outer pressure p(1-ϖ/2)

	// solved coefficients
	Lam sym.Expr // Lamé's first parameter 2μν/(1-2ν)
	A   sym.Expr // coefficient of r in u(r)
	B   sym.Expr // coefficient of 1/r in u(r)

	// fields of "r"
	U    sym.Expr // radial displacement A r + B/r
	EpsR sym.Expr // radial strain
	EpsT sym.Expr // hoop strain
	SigR sym.Expr // radial stress
	SigT sym.Expr // hoop stress
	SigZ sym.Expr // axial stress
}

// Derive builds the tube solution from exact rational input parameters:
// the ansatz u(r) = A r + B/r is differentiated, pushed through the
// plane-strain Hooke law, and A, B are solved from the two stress boundary
// conditions σr(rin) = -pin and σr(rout) = -pout.
func Derive(μ, ν, R, η, p, ϖ sym.Expr) (*Solution, error) {

	// admissible range: ν=1/2 (incompressible) makes Lamé's parameter blow up
	if num, ok := ν.Eval(); ok {
		v := num.Float64()
		if v <= -1 || v >= 0.5 {
			return nil, chk.Err("Poisson's coefficient must be within (-1, 1/2); ν=%v is invalid", ν)
		}
	}

	// geometry and pressures
	o := &Solution{Mu: μ, Nu: ν, R: R, Eta: η, P: p, W: ϖ}
	o.Rin = sym.MulOf(R, sym.AddOf(sym.N(1), sym.MulOf(sym.N(-1), η))).Simplify()
	o.Rout = sym.MulOf(R, sym.AddOf(sym.N(1), η)).Simplify()
	o.Pin = sym.MulOf(p, sym.AddOf(sym.N(1), sym.MulOf(sym.F(1, 2), ϖ))).Simplify()
	o.Pout = sym.MulOf(p, sym.AddOf(sym.N(1), sym.MulOf(sym.F(-1, 2), ϖ))).Simplify()

	// Lamé's first parameter
	o.Lam = sym.MulOf(
		sym.N(2), μ, ν,
		sym.PowOf(sym.AddOf(sym.N(1), sym.MulOf(sym.N(-2), ν)), sym.N(-1)),
	).Simplify()

	// with u = A r + B/r the radial stress reads
	//   σr = 2(λ+μ) A - 2μ B / r²
	// so the two boundary conditions form a linear system in (A, B)
	ca := sym.MulOf(sym.N(2), sym.AddOf(o.Lam, μ)).Simplify()
	cb := func(radius sym.Expr) sym.Expr {
		return sym.MulOf(sym.N(-2), μ, sym.PowOf(radius, sym.N(-2))).Simplify()
	}
	A, B, err := sym.SolveLinearSystem2x2(
		ca, cb(o.Rin), sym.MulOf(sym.N(-1), o.Pin).Simplify(),
		ca, cb(o.Rout), sym.MulOf(sym.N(-1), o.Pout).Simplify(),
	)
	if err != nil {
		return nil, chk.Err("cannot solve for the displacement coefficients: %v", err)
	}
	o.A, o.B = A, B

	// displacement, strains and stresses as expressions of r
	r := sym.S("r")
	o.U = sym.AddOf(sym.MulOf(o.A, r), sym.MulOf(o.B, sym.PowOf(r, sym.N(-1)))).Simplify()
	o.EpsR = sym.Diff(o.U, "r")
	o.EpsT = sym.MulOf(o.U, sym.PowOf(r, sym.N(-1))).Simplify()
	tr := sym.AddOf(o.EpsR, o.EpsT).Simplify()
	o.SigR = sym.AddOf(sym.MulOf(o.Lam, tr), sym.MulOf(sym.N(2), μ, o.EpsR)).Simplify()
	o.SigT = sym.AddOf(sym.MulOf(o.Lam, tr), sym.MulOf(sym.N(2), μ, o.EpsT)).Simplify()
	o.SigZ = sym.MulOf(o.Lam, tr).Simplify()
	return o, nil
}

// CheckBoundary verifies that the radial stress balances the applied
// pressures at both walls, exactly
func (o *Solution) CheckBoundary() error {
	for _, bc := range []struct {
		radius sym.Expr
		press  sym.Expr
	}{
		{o.Rin, o.Pin},
		{o.Rout, o.Pout},
	} {
		eq := sym.Eq(
			sym.Sub(o.SigR, "r", bc.radius),
			sym.MulOf(sym.N(-1), bc.press),
		)
		res, ok := eq.Residual().Simplify().Eval()
		if !ok {
			return chk.Err("boundary residual is not numeric: %v", eq)
		}
		if !res.IsZero() {
			return chk.Err("boundary condition violated: residual = %v", res)
		}
	}
	return nil
}

// EvalAt evaluates one of the fields of "r" at an exact radius
func (o *Solution) EvalAt(field sym.Expr, radius sym.Expr) (*sym.Num, error) {
	v, ok := sym.Sub(field, "r", radius).Simplify().Eval()
	if !ok {
		return nil, chk.Err("field does not evaluate to a number at r = %v", radius)
	}
	return v, nil
}

// Report writes the derivation as LaTeX lines
func (o *Solution) Report(w goio.Writer) (err error) {
	lines := []string{
		io.Sf("r_{in} = %s \\quad r_{out} = %s", o.Rin.LaTeX(), o.Rout.LaTeX()),
		io.Sf("p_{in} = %s \\quad p_{out} = %s", o.Pin.LaTeX(), o.Pout.LaTeX()),
		io.Sf("u(r) = %s", o.U.LaTeX()),
		io.Sf("\\varepsilon_r(r) = %s", o.EpsR.LaTeX()),
		io.Sf("\\varepsilon_\\theta(r) = %s", o.EpsT.LaTeX()),
		io.Sf("\\sigma_r(r) = %s", o.SigR.LaTeX()),
		io.Sf("\\sigma_\\theta(r) = %s", o.SigT.LaTeX()),
		io.Sf("\\sigma_z(r) = %s", o.SigZ.LaTeX()),
	}
	for _, l := range lines {
		_, err = w.Write([]byte(l + "\n"))
		if err != nil {
			return
		}
	}
	return
}
