// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shapes
var tri3, tri6 Shape

// register shapes
func init() {

	// tri3
	tri3.Type = "tri3"
	tri3.Func = Tri3
	tri3.FaceFunc = Lin2
	tri3.BasicType = "tri3"
	tri3.FaceType = "lin2"
	tri3.Gndim = 2
	tri3.Nverts = 3
	tri3.FaceNverts = 2
	tri3.FaceLocalVerts = [][]int{{0, 1}, {1, 2}, {2, 0}}
	tri3.NatCoords = [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	}
	tri3.init_scratchpad()
	factory["tri3"] = &tri3

	// tri6
	tri6.Type = "tri6"
	tri6.Func = Tri6
	tri6.FaceFunc = Lin3
	tri6.BasicType = "tri3"
	tri6.FaceType = "lin3"
	tri6.Gndim = 2
	tri6.Nverts = 6
	tri6.FaceNverts = 3
	tri6.FaceLocalVerts = [][]int{{0, 1, 3}, {1, 2, 4}, {2, 0, 5}}
	tri6.NatCoords = [][]float64{
		{0, 1, 0, 0.5, 0.5, 0},
		{0, 0, 1, 0, 0.5, 0.5},
	}
	tri6.init_scratchpad()
	factory["tri6"] = &tri6
}

// Tri3 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri3
// elements at {r,s} natural coordinates
//
//    s
//    |
//    2
//    | \
//    |   \
//    |     \
//    0-------1-->r
//
func Tri3(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	S[0] = 1.0 - r[0] - r[1]
	S[1] = r[0]
	S[2] = r[1]
	if !derivs {
		return
	}
	dSdR[0][0] = -1.0
	dSdR[0][1] = -1.0
	dSdR[1][0] = 1.0
	dSdR[1][1] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 1.0
}

// Tri6 calculates the shape functions (S) and derivatives of shape functions (dSdR) of tri6
// elements at {r,s} natural coordinates
//
//    s
//    |
//    2
//    | \
//    5   4
//    |     \
//    0---3---1-->r
//
func Tri6(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	u, v := r[0], r[1]
	w := 1.0 - u - v
	S[0] = w * (2.0*w - 1.0)
	S[1] = u * (2.0*u - 1.0)
	S[2] = v * (2.0*v - 1.0)
	S[3] = 4.0 * u * w
	S[4] = 4.0 * u * v
	S[5] = 4.0 * v * w
	if !derivs {
		return
	}
	dSdR[0][0] = 1.0 - 4.0*w
	dSdR[0][1] = 1.0 - 4.0*w
	dSdR[1][0] = 4.0*u - 1.0
	dSdR[1][1] = 0.0
	dSdR[2][0] = 0.0
	dSdR[2][1] = 4.0*v - 1.0
	dSdR[3][0] = 4.0 * (w - u)
	dSdR[3][1] = -4.0 * u
	dSdR[4][0] = 4.0 * v
	dSdR[4][1] = 4.0 * u
	dSdR[5][0] = -4.0 * v
	dSdR[5][1] = 4.0 * (w - v)
}
