// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/gonum/integrate/quad"
)

// PressTube implements the closed-form solution of a thick-walled
// cylindrical tube under internal and external pressures, in plane strain
// (Lamé's problem). The wall occupies rin ≤ r ≤ rout with
//
//   rin  = R * (1 - η)
//   rout = R * (1 + η)
//
// where R is the mid-surface radius and η = h/(2R) the relative
// half-thickness. Pressures are parametrised by the mean pressure p and
// the contrast ϖ:
//
//   pin  = p * (1 + ϖ/2)
//   pout = p * (1 - ϖ/2)
//
// The radial displacement has the form u(r) = A*r + B/r and the stresses
//
//   σr = C - D/r²   σθ = C + D/r²   σz = 2*ν*C
//
//               , - - ,
//           , '         ' ,
//         ,                 ,
//        ,      .-'''-.      ,
//       ,      / ↖ ↑ ↗ \      ,
//       ,     | ← pin → |     ,
//       ,      \ ↙ ↓ ↘ /      ,
//        ,      `-...-'      ,
//         ,                 ,
//           ,            , '
//             ' - , ,  '
type PressTube struct {

	// input
	μ float64 // shear modulus
	ν float64 // Poisson's coefficient
	R float64 // mid-surface radius
	η float64 // relative half-thickness h/(2R)
	p float64 // mean pressure
	ϖ float64 // pressure contrast

	// derived data
	Rin  float64 // inner radius
	Rout float64 // outer radius
	Pin  float64 // inner pressure
	Pout float64 // outer pressure
	A    float64 // coefficient of the linear part of u(r)
	B    float64 // coefficient of the 1/r part of u(r)
	C    float64 // constant part of σr and σθ
	D    float64 // coefficient of the 1/r² part of σr and σθ
}

// Init initialises this structure
func (o *PressTube) Init(prms fun.Prms) {

	// default values
	o.μ = 1.0
	o.ν = 0.3
	o.R = 1.0
	o.η = 0.1
	o.p = 1.0
	o.ϖ = 0.0

	// parameters
	for _, prm := range prms {
		switch prm.N {
		case "mu", "μ":
			o.μ = prm.V
		case "nu", "ν":
			o.ν = prm.V
		case "R":
			o.R = prm.V
		case "eta", "η":
			o.η = prm.V
		case "p":
			o.p = prm.V
		case "varpi", "ϖ":
			o.ϖ = prm.V
		}
	}

	// check
	if o.μ <= 0 {
		chk.Panic("PressTube: shear modulus must be positive; μ=%g is invalid", o.μ)
	}
	if o.ν <= -1 || o.ν >= 0.5 {
		chk.Panic("PressTube: Poisson's coefficient must be within (-1, 1/2); ν=%g is invalid", o.ν)
	}
	if o.η <= 0 || o.η >= 1 {
		chk.Panic("PressTube: relative half-thickness must be within (0,1); η=%g is invalid", o.η)
	}

	// radii and pressures
	o.Rin = o.R * (1.0 - o.η)
	o.Rout = o.R * (1.0 + o.η)
	o.Pin = o.p * (1.0 + o.ϖ/2.0)
	o.Pout = o.p * (1.0 - o.ϖ/2.0)

	// coefficients from the boundary conditions σr(Rin)=-Pin and σr(Rout)=-Pout
	ri2 := o.Rin * o.Rin
	ro2 := o.Rout * o.Rout
	den := ro2 - ri2
	o.C = (o.Pin*ri2 - o.Pout*ro2) / den
	o.D = (o.Pin - o.Pout) * ri2 * ro2 / den
	o.A = o.C * (1.0 - 2.0*o.ν) / (2.0 * o.μ)
	o.B = o.D / (2.0 * o.μ)
}

// Displacement computes the radial displacement u(r) = A*r + B/r
func (o PressTube) Displacement(r float64) (ur float64) {
	return o.A*r + o.B/r
}

// Strains computes the radial and hoop strains
func (o PressTube) Strains(r float64) (εr, εt float64) {
	εr = o.A - o.B/(r*r)
	εt = o.A + o.B/(r*r)
	return
}

// Stresses computes the radial, hoop and axial stresses
func (o PressTube) Stresses(r float64) (sr, st, sz float64) {
	sr = o.C - o.D/(r*r)
	st = o.C + o.D/(r*r)
	sz = 2.0 * o.ν * o.C
	return
}

// CartesianStresses computes the Cartesian stress components at (x,y)
func (o PressTube) CartesianStresses(x, y float64) (sx, sy, sxy float64) {
	r := math.Sqrt(x*x + y*y)
	sr, st, _ := o.Stresses(r)
	β := math.Atan2(y, x)
	si, co := math.Sin(β), math.Cos(β)
	ss, cc, cs := si*si, co*co, co*si
	sx = cc*sr + ss*st
	sy = ss*sr + cc*st
	sxy = cs * (sr - st)
	return
}

// MeanHoopStress computes the through-thickness average of σθ using
// Gauss-Legendre quadrature; it approaches the thin-wall estimate
// (Pin*Rin - Pout*Rout)/h as η → 0
func (o PressTube) MeanHoopStress(n int) float64 {
	h := o.Rout - o.Rin
	return quad.Fixed(func(r float64) float64 {
		_, st, _ := o.Stresses(r)
		return st
	}, o.Rin, o.Rout, n, quad.Legendre{}, 0) / h
}

// CalcStresses computes the polar stresses at many points
//  Input:
//   coords -- coordinates of points [npts][2]
//  Output:
//   sr, st -- radial and hoop stresses at all points
func (o PressTube) CalcStresses(coords [][]float64) (sr, st []float64) {
	sr = make([]float64, len(coords))
	st = make([]float64, len(coords))
	for i, x := range coords {
		r := math.Sqrt(x[0]*x[0] + x[1]*x[1])
		sr[i], st[i], _ = o.Stresses(r)
	}
	return
}
