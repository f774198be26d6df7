// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. functions and derivatives")

	r := []float64{0.1, 0.2, 0}

	verb := chk.Verbose
	for name, shape := range factory {

		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)

		// check S
		tol := 1e-15
		CheckShape(tst, shape, tol, verb)

		// check Sf
		tol = 1e-15
		CheckShapeFace(tst, shape, tol, verb)

		// check dSdR
		tol = 1e-9
		CheckDSdR(tst, shape, r, tol, verb)

		io.PfGreen("OK\n")
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. Jacobian of stretched qua4")

	xmat := [][]float64{
		{10, 13, 13, 10},
		{8, 8, 9, 9},
	}
	dx, dy := 3.0, 1.0
	dr, ds := 2.0, 2.0
	r := []float64{0, 0, 0}
	shape := factory["qua4"]
	err := shape.CalcAtIp(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	io.Pforan("J = %v\n", shape.J)
	chk.Scalar(tst, "J", 1e-17, shape.J, (dx/dr)*(dy/ds))

	// gradients of the bilinear map are constant on a rectangle
	chk.Scalar(tst, "G00", 1e-15, shape.G[0][0], -0.25*dr/dx)
	chk.Scalar(tst, "G01", 1e-15, shape.G[0][1], -0.25*ds/dy)
	chk.Scalar(tst, "G20", 1e-15, shape.G[2][0], 0.25*dr/dx)
	chk.Scalar(tst, "G21", 1e-15, shape.G[2][1], 0.25*ds/dy)

	// the natural-coordinate interface gives the same constant Jacobian
	err = shape.CalcAtR(xmat, []float64{1, 1, 0}, true)
	if err != nil {
		tst.Errorf("CalcAtR failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "J @ corner", 1e-17, shape.J, (dx/dr)*(dy/ds))
	chk.Vector(tst, "S @ corner", 1e-15, shape.S, []float64{0, 0, 1, 0})
}

func Test_shape03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape03. face normal vectors on unit square")

	xmat := [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}
	shape := factory["qua4"]
	ipf := Ipoint{0, 0, 0, 1}

	// outward normals scaled by half the edge length
	fnvecs := [][]float64{
		{0, -0.5},
		{0.5, 0},
		{0, 0.5},
		{-0.5, 0},
	}

	// face midpoints
	xmids := [][]float64{
		{0.5, 0},
		{1, 0.5},
		{0.5, 1},
		{0, 0.5},
	}
	for idxface, fnvec := range fnvecs {
		err := shape.CalcAtFaceIp(xmat, ipf, idxface)
		if err != nil {
			tst.Errorf("CalcAtFaceIp failed:\n%v", err)
			return
		}
		io.Pforan("face %d: Fnvec = %v\n", idxface, shape.Fnvec)
		chk.Vector(tst, io.Sf("Fnvec%d", idxface), 1e-15, shape.Fnvec, fnvec)

		// the centre of the face maps to the edge midpoint
		y := shape.FaceIpRealCoords(xmat, ipf, idxface)
		chk.Vector(tst, io.Sf("x @ face %d", idxface), 1e-15, y, xmids[idxface])
	}

	// face geometry types
	chk.String(tst, GetFaceType("qua4"), "lin2")
	chk.String(tst, GetFaceType("qua9"), "lin3")
}

func Test_ips01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ips01. weights and exactness")

	verb := chk.Verbose

	// weights must add up to the reference cell measure
	CheckIps(tst, "lin2", 2, 2.0, 1e-15, verb)
	CheckIps(tst, "lin3", 3, 2.0, 1e-15, verb)
	CheckIps(tst, "qua4", 4, 4.0, 1e-15, verb)
	CheckIps(tst, "qua9", 9, 4.0, 1e-14, verb)
	CheckIps(tst, "tri3", 1, 0.5, 1e-15, verb)
	CheckIps(tst, "tri3", 3, 0.5, 1e-15, verb)
	CheckIps(tst, "tri6", 6, 0.5, 1e-14, verb)

	// default sets
	for _, geoType := range []string{"lin2", "lin3", "tri3", "tri6", "qua4", "qua8", "qua9"} {
		ips, err := GetIps(geoType, 0)
		if err != nil {
			tst.Errorf("GetIps failed:\n%v", err)
			return
		}
		io.Pf("%s: default nip = %d\n", geoType, len(ips))
	}

	// 3x3 rule integrates r^2 * s^2 exactly: (2/3)*(2/3) = 4/9
	ips, err := GetIps("qua9", 9)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	res := 0.0
	for _, ip := range ips {
		res += ip[0] * ip[0] * ip[1] * ip[1] * ip[3]
	}
	chk.Scalar(tst, "int r2s2", 1e-15, res, 4.0/9.0)
}
