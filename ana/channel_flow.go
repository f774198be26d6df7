// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/cpmech/gosl/fun"

// ChannelFlow implements the plane Poiseuille solution of the Stokes
// equations in the channel 0 ≤ x ≤ L, 0 ≤ y ≤ H with no-slip walls at
// y=0 and y=H and a constant pressure drop Δp = p(0) - p(L):
//
//   ux(y) = Δp/(2*μ*L) * y*(H-y)
//   uy    = 0
//   p(x)  = p0 - Δp*x/L
//
// The velocity is quadratic and the pressure linear; a mixed
// quadratic-linear discretisation reproduces this field exactly.
type ChannelFlow struct {

	// input
	μ  float64 // viscosity
	H  float64 // height of channel
	L  float64 // length of channel
	Δp float64 // pressure drop between inlet and outlet
	P0 float64 // pressure at inlet

	// derived
	G float64 // pressure gradient Δp/L
}

// Init initialises this structure
func (o *ChannelFlow) Init(prms fun.Prms) {

	// default values
	o.μ = 1.0
	o.H = 1.0
	o.L = 1.0
	o.Δp = 1.0
	o.P0 = 1.0

	// parameters
	for _, prm := range prms {
		switch prm.N {
		case "mu", "μ":
			o.μ = prm.V
		case "H":
			o.H = prm.V
		case "L":
			o.L = prm.V
		case "dp", "Δp":
			o.Δp = prm.V
		case "p0":
			o.P0 = prm.V
		}
	}

	// derived
	o.G = o.Δp / o.L
}

// Velocity computes the velocity components at (x,y)
func (o ChannelFlow) Velocity(x, y float64) (ux, uy float64) {
	ux = o.G * y * (o.H - y) / (2.0 * o.μ)
	return
}

// Pressure computes the pressure at (x,y)
func (o ChannelFlow) Pressure(x, y float64) float64 {
	return o.P0 - o.G*x
}

// MaxVelocity returns the velocity at the centreline
func (o ChannelFlow) MaxVelocity() float64 {
	return o.G * o.H * o.H / (8.0 * o.μ)
}

// FlowRate returns the volumetric flow rate per unit depth
func (o ChannelFlow) FlowRate() float64 {
	return o.G * o.H * o.H * o.H / (12.0 * o.μ)
}
