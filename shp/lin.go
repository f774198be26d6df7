// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shapes
var lin2, lin3 Shape

// register shapes
func init() {

	// lin2
	lin2.Type = "lin2"
	lin2.Func = Lin2
	lin2.BasicType = "lin2"
	lin2.Gndim = 1
	lin2.Nverts = 2
	lin2.NatCoords = [][]float64{
		{-1, 1},
	}
	lin2.init_scratchpad()
	factory["lin2"] = &lin2

	// lin3
	lin3.Type = "lin3"
	lin3.Func = Lin3
	lin3.BasicType = "lin2"
	lin3.Gndim = 1
	lin3.Nverts = 3
	lin3.NatCoords = [][]float64{
		{-1, 1, 0},
	}
	lin3.init_scratchpad()
	factory["lin3"] = &lin3
}

// Lin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r} natural coordinates
//
//   -1     0    +1
//    0-----------1-->r
//
func Lin2(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 0.5 * (1.0 - r[0])
	S[1] = 0.5 * (1.0 + r[0])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// Lin3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin3
// elements at {r} natural coordinates
//
//   -1     0    +1
//    0-----2-----1-->r
//
func Lin3(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 0.5 * r[0] * (r[0] - 1.0)
	S[1] = 0.5 * r[0] * (r[0] + 1.0)
	S[2] = 1.0 - r[0]*r[0]
	if !derivs {
		return
	}
	dSdR[0][0] = r[0] - 0.5
	dSdR[1][0] = r[0] + 0.5
	dSdR[2][0] = -2.0 * r[0]
}
