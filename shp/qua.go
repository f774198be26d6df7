// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shapes
var qua4, qua8, qua9 Shape

// register shapes
func init() {

	// qua4
	qua4.Type = "qua4"
	qua4.Func = Qua4
	qua4.FaceFunc = Lin2
	qua4.BasicType = "qua4"
	qua4.FaceType = "lin2"
	qua4.Gndim = 2
	qua4.Nverts = 4
	qua4.FaceNverts = 2
	qua4.FaceLocalVerts = [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	qua4.NatCoords = [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}
	qua4.init_scratchpad()
	factory["qua4"] = &qua4

	// qua8
	qua8.Type = "qua8"
	qua8.Func = Qua8
	qua8.FaceFunc = Lin3
	qua8.BasicType = "qua4"
	qua8.FaceType = "lin3"
	qua8.Gndim = 2
	qua8.Nverts = 8
	qua8.FaceNverts = 3
	qua8.FaceLocalVerts = [][]int{{0, 1, 4}, {1, 2, 5}, {2, 3, 6}, {3, 0, 7}}
	qua8.NatCoords = [][]float64{
		{-1, 1, 1, -1, 0, 1, 0, -1},
		{-1, -1, 1, 1, -1, 0, 1, 0},
	}
	qua8.init_scratchpad()
	factory["qua8"] = &qua8

	// qua9
	qua9.Type = "qua9"
	qua9.Func = Qua9
	qua9.FaceFunc = Lin3
	qua9.BasicType = "qua4"
	qua9.FaceType = "lin3"
	qua9.Gndim = 2
	qua9.Nverts = 9
	qua9.FaceNverts = 3
	qua9.FaceLocalVerts = [][]int{{0, 1, 4}, {1, 2, 5}, {2, 3, 6}, {3, 0, 7}}
	qua9.NatCoords = [][]float64{
		{-1, 1, 1, -1, 0, 1, 0, -1, 0},
		{-1, -1, 1, 1, -1, 0, 1, 0, 0},
	}
	qua9.init_scratchpad()
	factory["qua9"] = &qua9
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s} natural coordinates
//
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    0-----------1
//
func Qua4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	u, v := r[0], r[1]
	S[0] = (1.0 - u) * (1.0 - v) / 4.0
	S[1] = (1.0 + u) * (1.0 - v) / 4.0
	S[2] = (1.0 + u) * (1.0 + v) / 4.0
	S[3] = (1.0 - u) * (1.0 + v) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0] = -(1.0 - v) / 4.0
	dSdR[0][1] = -(1.0 - u) / 4.0
	dSdR[1][0] = (1.0 - v) / 4.0
	dSdR[1][1] = -(1.0 + u) / 4.0
	dSdR[2][0] = (1.0 + v) / 4.0
	dSdR[2][1] = (1.0 + u) / 4.0
	dSdR[3][0] = -(1.0 + v) / 4.0
	dSdR[3][1] = (1.0 - u) / 4.0
}

// Qua8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua8
// (serendipity) elements at {r,s} natural coordinates
//
//    3-----6-----2
//    |     s     |
//    |     |     |
//    7     +--r  5
//    |           |
//    0-----4-----1
//
func Qua8(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	u, v := r[0], r[1]
	S[0] = (1.0 - u) * (1.0 - v) * (-u - v - 1.0) / 4.0
	S[1] = (1.0 + u) * (1.0 - v) * (u - v - 1.0) / 4.0
	S[2] = (1.0 + u) * (1.0 + v) * (u + v - 1.0) / 4.0
	S[3] = (1.0 - u) * (1.0 + v) * (-u + v - 1.0) / 4.0
	S[4] = (1.0 - v) * (1.0 - u*u) / 2.0
	S[5] = (1.0 + u) * (1.0 - v*v) / 2.0
	S[6] = (1.0 + v) * (1.0 - u*u) / 2.0
	S[7] = (1.0 - u) * (1.0 - v*v) / 2.0
	if !derivs {
		return
	}
	dSdR[0][0] = (1.0 - v) * (2.0*u + v) / 4.0
	dSdR[0][1] = (1.0 - u) * (u + 2.0*v) / 4.0
	dSdR[1][0] = (1.0 - v) * (2.0*u - v) / 4.0
	dSdR[1][1] = (1.0 + u) * (2.0*v - u) / 4.0
	dSdR[2][0] = (1.0 + v) * (2.0*u + v) / 4.0
	dSdR[2][1] = (1.0 + u) * (u + 2.0*v) / 4.0
	dSdR[3][0] = (1.0 + v) * (2.0*u - v) / 4.0
	dSdR[3][1] = (1.0 - u) * (2.0*v - u) / 4.0
	dSdR[4][0] = -u * (1.0 - v)
	dSdR[4][1] = -(1.0 - u*u) / 2.0
	dSdR[5][0] = (1.0 - v*v) / 2.0
	dSdR[5][1] = -v * (1.0 + u)
	dSdR[6][0] = -u * (1.0 + v)
	dSdR[6][1] = (1.0 - u*u) / 2.0
	dSdR[7][0] = -(1.0 - v*v) / 2.0
	dSdR[7][1] = -v * (1.0 - u)
}

// Qua9 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua9
// (bi-quadratic) elements at {r,s} natural coordinates
//
//    3-----6-----2
//    |     s     |
//    |     |     |
//    7     8--r  5
//    |           |
//    0-----4-----1
//
func Qua9(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	u, v := r[0], r[1]
	S[0] = u * v * (u - 1.0) * (v - 1.0) / 4.0
	S[1] = u * v * (u + 1.0) * (v - 1.0) / 4.0
	S[2] = u * v * (u + 1.0) * (v + 1.0) / 4.0
	S[3] = u * v * (u - 1.0) * (v + 1.0) / 4.0
	S[4] = v * (v - 1.0) * (1.0 - u*u) / 2.0
	S[5] = u * (u + 1.0) * (1.0 - v*v) / 2.0
	S[6] = v * (v + 1.0) * (1.0 - u*u) / 2.0
	S[7] = u * (u - 1.0) * (1.0 - v*v) / 2.0
	S[8] = (1.0 - u*u) * (1.0 - v*v)
	if !derivs {
		return
	}
	dSdR[0][0] = v * (v - 1.0) * (2.0*u - 1.0) / 4.0
	dSdR[0][1] = u * (u - 1.0) * (2.0*v - 1.0) / 4.0
	dSdR[1][0] = v * (v - 1.0) * (2.0*u + 1.0) / 4.0
	dSdR[1][1] = u * (u + 1.0) * (2.0*v - 1.0) / 4.0
	dSdR[2][0] = v * (v + 1.0) * (2.0*u + 1.0) / 4.0
	dSdR[2][1] = u * (u + 1.0) * (2.0*v + 1.0) / 4.0
	dSdR[3][0] = v * (v + 1.0) * (2.0*u - 1.0) / 4.0
	dSdR[3][1] = u * (u - 1.0) * (2.0*v + 1.0) / 4.0
	dSdR[4][0] = -u * v * (v - 1.0)
	dSdR[4][1] = (1.0 - u*u) * (2.0*v - 1.0) / 2.0
	dSdR[5][0] = (2.0*u + 1.0) * (1.0 - v*v) / 2.0
	dSdR[5][1] = -u * v * (u + 1.0)
	dSdR[6][0] = -u * v * (v + 1.0)
	dSdR[6][1] = (1.0 - u*u) * (2.0*v + 1.0) / 2.0
	dSdR[7][0] = (2.0*u - 1.0) * (1.0 - v*v) / 2.0
	dSdR[7][1] = -u * v * (u - 1.0)
	dSdR[8][0] = -2.0 * u * (1.0 - v*v)
	dSdR[8][1] = -2.0 * v * (1.0 - u*u)
}
