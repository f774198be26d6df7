// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements FE simulation output handling for analyses and plotting
package out

import (
	"github.com/mvettori/planefem/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// constants
const (
	TolC = 1e-8 // tolerance to compare x-y-z coordinates
	Ndiv = 20   // bins n-division
)

// global variables
var (
	Sum     *fem.FEM      // the simulation data
	Dom     *fem.Domain   // active domain
	Sol     *fem.Solution // solution of active domain
	NodBins gm.Bins       // bins for nodes; to find nodes with given coordinates
)

// Start sets the active domain of a solved simulation
func Start(fe *fem.FEM, regidx int) (err error) {
	if fe == nil {
		return chk.Err("simulation is not available")
	}
	if regidx < 0 || regidx >= len(fe.Doms) {
		return chk.Err("region index %d is out of range", regidx)
	}
	Sum = fe
	Dom = fe.Doms[regidx]
	Sol = Dom.Sol

	// bins; adding a diagonal because of the round-off errors
	m := Dom.Msh
	δ := TolC * 2.0
	xi := []float64{m.Xmin - δ, m.Ymin - δ}
	xf := []float64{m.Xmax + δ, m.Ymax + δ}
	err = NodBins.Init(xi, xf, Ndiv)
	if err != nil {
		return
	}
	for _, nod := range Dom.Nodes {
		err = NodBins.Append(nod.Vert.C, nod.Vert.Id)
		if err != nil {
			return
		}
	}
	return
}

// GetNodVal returns the value of a nodal variable; e.g. "ux", "pl"
//  found is false if the vertex is inactive or does not carry the variable
func GetNodVal(key string, vid int) (val float64, found bool) {
	nod := Dom.Vid2node[vid]
	if nod == nil {
		return
	}
	dof := nod.GetDof(key)
	if dof == nil {
		return
	}
	return Sol.Y[dof.Eq], true
}

// GetXY collects the distances and values of a nodal variable along the
// points in pts. Vertices without the variable are skipped; e.g. mid-side
// nodes have no pressure in the mixed formulation.
func GetXY(key string, pts Points) (dist, vals []float64) {
	for _, p := range pts {
		v, ok := GetNodVal(key, p.Vid)
		if !ok {
			continue
		}
		dist = append(dist, p.Dist)
		vals = append(vals, v)
	}
	return
}

// NodalField splits the mixed solution: it collects the coordinates and
// values of one nodal variable at all vertices carrying it
func NodalField(key string) (x, y, vals []float64) {
	for _, nod := range Dom.Nodes {
		eq := nod.GetEq(key)
		if eq < 0 {
			continue
		}
		x = append(x, nod.Vert.C[0])
		y = append(y, nod.Vert.C[1])
		vals = append(vals, Sol.Y[eq])
	}
	return
}

// IpVals collects values computed at all integration points of all elements;
// e.g. "divu". The real coordinates are returned in x and y
func IpVals(key string) (x, y, vals []float64) {
	for _, e := range Dom.Elems {
		for _, dat := range e.OutIpsData() {
			res := dat.Calc(Sol)
			if v, ok := res[key]; ok {
				x = append(x, dat.X[0])
				y = append(y, dat.X[1])
				vals = append(vals, v)
			}
		}
	}
	return
}
