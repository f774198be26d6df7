// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/mvettori/planefem/inp"
	"github.com/mvettori/planefem/shp"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// ElemStokes implements a mixed velocity-pressure element for steady
// incompressible creeping (Stokes) flow:
//
//   μ ∇²v - ∇p + ρ g = 0
//           div(v)   = 0
//
// The velocity is interpolated with the full shape (e.g. qua9) and the
// pressure with the corresponding basic shape (e.g. qua4), an inf-sup stable
// pair. The continuity equation enters with a negative sign so the element
// matrix is symmetric.
type ElemStokes struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // [ndim][nnode] matrix of nodal coordinates
	Shp  *shp.Shape  // shape structure for velocity
	Pshp *shp.Shape  // shape structure for pressure
	Nu   int         // total number of velocity dofs == 2 * nnode
	Np   int         // number of pressure dofs
	Ndim int         // space dimension

	// material parameters
	Mu  float64 // dynamic viscosity
	Rho float64 // density

	// integration points
	IpsElem []shp.Ipoint // [nip] integration points of element
	IpsFace []shp.Ipoint // [nipf] integration points on faces

	// conditions
	Gfcn fun.Func // gravity function; may be nil

	// equation numbers
	Umap []int // [nu] assembly map for velocity
	Pmap []int // [np] assembly map for pressure

	// scratchpad. computed @ each ip
	Kuu [][]float64 // [nu][nu] viscous block
	Kup [][]float64 // [nu][np] pressure-gradient block
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	infogetters["stokes"] = func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *Info {

		// new info
		var info Info

		// number of pressure nodes
		nverts := len(cell.Verts)
		np := nverts
		if edat.Lbb {
			np = shp.GetNverts(shp.GetBasicType(cell.Type))
		}

		// solution variables
		info.Dofs = make([][]string, nverts)
		for m := 0; m < nverts; m++ {
			if m < np {
				info.Dofs[m] = []string{"ux", "uy", "pl"}
			} else {
				info.Dofs[m] = []string{"ux", "uy"}
			}
		}

		// maps
		info.Y2F = map[string]string{"ux": "fux", "uy": "fuy", "pl": "fpl"}
		return &info
	}

	// element allocator
	eallocators["stokes"] = func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) Elem {

		// basic data
		var o ElemStokes
		o.Cell = cell
		o.X = x
		o.Shp = cell.Shp
		o.Ndim = len(x)
		nverts := len(cell.Verts)
		o.Nu = o.Ndim * nverts

		// pressure interpolation: basic shape for the LBB pair; otherwise equal-order
		if edat.Lbb {
			o.Pshp = shp.Get(o.Shp.BasicType, sim.GoroutineId)
			if o.Pshp == nil {
				return nil
			}
		} else {
			o.Pshp = o.Shp
		}
		o.Np = o.Pshp.Nverts

		// integration points
		var err error
		o.IpsElem, err = shp.GetIps(cell.Type, edat.Nip)
		if err != nil {
			return nil
		}
		o.IpsFace, err = shp.GetIps(shp.GetFaceType(cell.Type), edat.Nipf)
		if err != nil {
			return nil
		}

		// material parameters
		mat := sim.MatParams.Get(edat.Mat)
		if mat == nil {
			return nil
		}
		if prm := mat.Prms.Find("mu"); prm != nil {
			o.Mu = prm.V
		}
		if prm := mat.Prms.Find("rho"); prm != nil {
			o.Rho = prm.V
		}

		// scratchpad
		o.Kuu = la.MatAlloc(o.Nu, o.Nu)
		o.Kup = la.MatAlloc(o.Nu, o.Np)
		return &o
	}
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *ElemStokes) Id() int { return o.Cell.Id }

// SetEqs set equations
func (o *ElemStokes) SetEqs(eqs [][]int) (err error) {
	o.Umap = make([]int, o.Nu)
	for m := 0; m < o.Shp.Nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			o.Umap[i+m*o.Ndim] = eqs[m][i]
		}
	}
	o.Pmap = make([]int, o.Np)
	for n := 0; n < o.Np; n++ {
		o.Pmap[n] = eqs[n][o.Ndim]
	}
	return
}

// SetEleConds set element conditions
func (o *ElemStokes) SetEleConds(key string, f fun.Func, extra string) (err error) {
	if key == "g" {
		o.Gfcn = f
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *ElemStokes) AddToRhs(fb []float64, sol *Solution) (err error) {

	// fb = f - K*y
	err = o.calcK()
	if err != nil {
		return
	}
	for r := 0; r < o.Nu; r++ {
		for c := 0; c < o.Nu; c++ {
			fb[o.Umap[r]] -= o.Kuu[r][c] * sol.Y[o.Umap[c]]
		}
		for c := 0; c < o.Np; c++ {
			fb[o.Umap[r]] -= o.Kup[r][c] * sol.Y[o.Pmap[c]]
		}
	}
	for c := 0; c < o.Np; c++ {
		for r := 0; r < o.Nu; r++ {
			fb[o.Pmap[c]] -= o.Kup[r][c] * sol.Y[o.Umap[r]]
		}
	}

	// gravity acting along -y
	if o.Gfcn != nil {
		g := o.Gfcn.F(sol.T, nil)
		for _, ip := range o.IpsElem {
			err = o.Shp.CalcAtIp(o.X, ip, true)
			if err != nil {
				return
			}
			coef := ip[3] * o.Shp.J
			for m := 0; m < o.Shp.Nverts; m++ {
				fb[o.Umap[1+m*o.Ndim]] -= coef * o.Rho * g * o.Shp.S[m]
			}
		}
	}

	// natural boundary conditions
	return o.add_natbcs_to_rhs(fb, sol)
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *ElemStokes) AddToKb(Kb *la.Triplet, sol *Solution) (err error) {
	err = o.calcK()
	if err != nil {
		return
	}
	for r := 0; r < o.Nu; r++ {
		for c := 0; c < o.Nu; c++ {
			Kb.Put(o.Umap[r], o.Umap[c], o.Kuu[r][c])
		}
		for c := 0; c < o.Np; c++ {
			Kb.Put(o.Umap[r], o.Pmap[c], o.Kup[r][c])
			Kb.Put(o.Pmap[c], o.Umap[r], o.Kup[r][c])
		}
	}
	return
}

// OutIpsData returns data from all integration points for output
func (o *ElemStokes) OutIpsData() (data []*OutIpData) {
	for _, ip := range o.IpsElem {
		x := o.Shp.IpRealCoords(o.X, ip)
		ipval := ip
		calc := func(sol *Solution) (vals map[string]float64) {
			err := o.Shp.CalcAtIp(o.X, ipval, true)
			if err != nil {
				return
			}
			o.Pshp.Func(o.Pshp.S, o.Pshp.DSdR, ipval, false)
			vals = make(map[string]float64)
			vkeys := []string{"vx", "vy"}
			var p, divu float64
			for n := 0; n < o.Np; n++ {
				p += o.Pshp.S[n] * sol.Y[o.Pmap[n]]
			}
			for m := 0; m < o.Shp.Nverts; m++ {
				for i := 0; i < o.Ndim; i++ {
					divu += o.Shp.G[m][i] * sol.Y[o.Umap[i+m*o.Ndim]]
					vals[vkeys[i]] += o.Shp.S[m] * sol.Y[o.Umap[i+m*o.Ndim]]
				}
			}
			vals["pl"] = p
			vals["divu"] = divu
			return
		}
		data = append(data, &OutIpData{o.Id(), x, calc})
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// calcK computes the viscous and pressure-gradient blocks.
//
//   Kuu[mi][nj] = ∫ μ δij (dSm/dxk)(dSn/dxk) dΩ
//   Kup[mi][n]  = -∫ (dSm/dxi) Sp_n dΩ
//
func (o *ElemStokes) calcK() (err error) {
	la.MatFill(o.Kuu, 0)
	la.MatFill(o.Kup, 0)
	for _, ip := range o.IpsElem {

		// interpolation functions and gradients
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return
		}
		o.Pshp.Func(o.Pshp.S, o.Pshp.DSdR, ip, false)
		coef := ip[3] * o.Shp.J
		G := o.Shp.G
		Sp := o.Pshp.S

		// viscous block
		for m := 0; m < o.Shp.Nverts; m++ {
			for n := 0; n < o.Shp.Nverts; n++ {
				var gg float64
				for k := 0; k < o.Ndim; k++ {
					gg += G[m][k] * G[n][k]
				}
				for i := 0; i < o.Ndim; i++ {
					o.Kuu[i+m*o.Ndim][i+n*o.Ndim] += coef * o.Mu * gg
				}
			}
		}

		// pressure-gradient block
		for m := 0; m < o.Shp.Nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				for n := 0; n < o.Np; n++ {
					o.Kup[i+m*o.Ndim][n] -= coef * G[m][i] * Sp[n]
				}
			}
		}
	}
	return
}

// add_natbcs_to_rhs adds natural boundary conditions to rhs
func (o *ElemStokes) add_natbcs_to_rhs(fb []float64, sol *Solution) (err error) {
	for _, fc := range o.Cell.FaceBcs {
		if fc.Cond != "qn" {
			continue
		}
		qn := fc.Func.F(sol.T, nil)
		for _, ipf := range o.IpsFace {
			err = o.Shp.CalcAtFaceIp(o.X, ipf, fc.FaceId)
			if err != nil {
				return
			}
			// qn positive along the outward normal; Fnvec carries the face Jacobian
			for k, n := range o.Shp.FaceLocalVerts[fc.FaceId] {
				for i := 0; i < o.Ndim; i++ {
					fb[o.Umap[i+n*o.Ndim]] += ipf[3] * qn * o.Shp.Sf[k] * o.Shp.Fnvec[i]
				}
			}
		}
	}
	return
}
