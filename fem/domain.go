// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/mvettori/planefem/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Solution holds the solution data @ nodes.
//
//        / u \         / u \
//        |   | => y =  |   |
//  yb =  | p |         \ p / (ny x 1)
//        |   |
//        \ λ / (nyb x 1)
//
type Solution struct {

	// current state
	T  float64   // current (pseudo) time
	Y  []float64 // DOFs (solution variables); e.g. y = {u, p}
	ΔY []float64 // total increment
	L  []float64 // Lagrange multipliers
}

// Domain holds all Nodes and Elements active during a stage in addition to
// the Solution at nodes
type Domain struct {

	// init: auxiliary variables
	Sim *inp.Simulation // [from FEM] input data
	Reg *inp.Region     // region data
	Msh *inp.Mesh       // mesh data

	// stage: nodes and elements
	Nodes []*Node // active nodes (for each stage)
	Elems []Elem  // active elements (for each stage)

	// stage: auxiliary maps for dofs and equation types
	F2Y   map[string]string // converts f-keys to y-keys; e.g.: "fux" => "ux"
	YandC map[string]bool   // y and constraints keys; e.g. "ux", "pl"

	// stage: auxiliary maps for nodes and elements
	Vid2node []*Node // [nverts] VertexId => index in Nodes. Inactive vertices are 'nil'
	Cid2elem []Elem  // [ncells] CellId => index in Elems. Inactive cells are 'nil'

	// stage: coefficients and prescribed forces
	EssenBcs EssentialBcs // constraints (Lagrange multipliers)
	PtNatBcs PtNaturalBcs // point loads such as prescribed forces at nodes

	// stage: dimensions
	NnzKb int // number of nonzeros in Kb matrix
	Ny    int // total number of dofs, except λ
	Nlam  int // total number of Lagrange multipliers
	NnzA  int // number of nonzeros in A (constraints) matrix
	Nyb   int // total number of equations: ny + nλ

	// stage: solution and linear system
	Sol *Solution   // solution state
	Kb  *la.Triplet // Jacobian == dRdy
	Fb  []float64   // residual == -fb
	Wb  []float64   // workspace
}

// NewDomains returns domains
func NewDomains(sim *inp.Simulation) (doms []*Domain) {
	doms = make([]*Domain, len(sim.Regions))
	for i, reg := range sim.Regions {
		doms[i] = new(Domain)
		doms[i].Sim = sim
		doms[i].Reg = reg
		doms[i].Msh = reg.Msh
	}
	return
}

// SetStage set nodes, equation numbers and auxiliary data for given stage
func (o *Domain) SetStage(stgidx int) (err error) {

	// pointer to stage structure
	stg := o.Sim.Stages[stgidx]

	// nodes and elements
	o.Nodes = make([]*Node, 0)
	o.Elems = make([]Elem, 0)

	// auxiliary maps for dofs and equation types
	o.F2Y = make(map[string]string)
	o.YandC = make(map[string]bool)

	// auxiliary maps for nodes and elements
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]Elem, len(o.Msh.Cells))

	// allocate nodes and cells (active only) -------------------------------------------------------

	// for each cell
	var eq int // current equation number => total number of equations @ end of loop
	o.NnzKb = 0
	for _, cell := range o.Msh.Cells {

		// set cell's face boundary conditions
		err = cell.SetFaceConds(stg, o.Sim.Functions)
		if err != nil {
			return chk.Err("cannot set face boundary conditions:\n%v", err)
		}

		// get element info
		info, inactive, err := GetElemInfo(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("get element information failed:\n%v", err)
		}

		// skip inactive element
		if inactive {
			continue
		}
		chk.IntAssert(len(info.Dofs), len(cell.Verts))

		// store y and f information
		for ykey, fkey := range info.Y2F {
			o.F2Y[fkey] = ykey
			o.YandC[ykey] = true
		}

		// loop over nodes of this element
		var eNdof int // number of DOFs of this element
		for j, v := range cell.Verts {

			// new or existent node
			var nod *Node
			if o.Vid2node[v] == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			} else {
				nod = o.Vid2node[v]
			}

			// set DOFs and equation numbers
			for _, ukey := range info.Dofs[j] {
				eq = nod.AddDofAndEq(ukey, eq)
				eNdof += 1
			}
		}

		// number of non-zeros
		o.NnzKb += eNdof * eNdof

		// new element
		ele, err := NewElem(cell, o.Reg, o.Sim)
		if err != nil {
			return chk.Err("new element failed:\n%v", err)
		}
		o.Cid2elem[cell.Id] = ele
		o.Elems = append(o.Elems, ele)

		// give equation numbers to new element
		eqs := make([][]int, len(cell.Verts))
		for j, v := range cell.Verts {
			for _, dof := range o.Vid2node[v].Dofs {
				eqs[j] = append(eqs[j], dof.Eq)
			}
		}
		err = ele.SetEqs(eqs)
		if err != nil {
			return chk.Err("cannot set element equations:\n%v", err)
		}
	}

	// element conditions, essential and natural boundary conditions --------------------------------

	// (re)set constraints and prescribed forces structures
	o.EssenBcs.Init()
	o.PtNatBcs.Reset()

	// element conditions
	for _, ec := range stg.EleConds {
		cells, ok := o.Msh.CellTag2cells[ec.Tag]
		if !ok {
			return chk.Err("cannot find cells with tag = %d to assign conditions", ec.Tag)
		}
		for _, cell := range cells {
			e := o.Cid2elem[cell.Id]
			if e != nil { // set conditions only for active elements
				for j, key := range ec.Keys {
					fcn := o.Sim.Functions.Get(ec.Funcs[j])
					if fcn == nil {
						return chk.Err("cannot find function named %q", ec.Funcs[j])
					}
					e.SetEleConds(key, fcn, ec.Extra)
				}
			}
		}
	}

	// face essential boundary conditions
	for _, cellsAndFaces := range o.Msh.FaceTag2cells {
		for _, pair := range cellsAndFaces {
			cell := pair.C
			for _, fc := range cell.FaceBcs {
				var enodes []*Node
				for _, v := range fc.GlobalVerts {
					enodes = append(enodes, o.Vid2node[v])
				}
				if o.YandC[fc.Cond] {
					err = o.EssenBcs.Set(fc.Cond, enodes, fc.Func, fc.Extra)
					if err != nil {
						return chk.Err("setting of essential boundary conditions failed:\n%v", err)
					}
				}
			}
		}
	}

	// vertex boundary conditions
	for _, nc := range stg.NodeBcs {
		verts, ok := o.Msh.VertTag2verts[nc.Tag]
		if !ok {
			return chk.Err("cannot find vertices with tag = %d to assign node boundary conditions", nc.Tag)
		}
		for _, v := range verts {
			if o.Vid2node[v.Id] != nil { // set BCs only for active nodes
				n := o.Vid2node[v.Id]
				for j, key := range nc.Keys {
					fcn := o.Sim.Functions.Get(nc.Funcs[j])
					if fcn == nil {
						return chk.Err("cannot find function named %q", nc.Funcs[j])
					}
					if o.YandC[key] {
						o.EssenBcs.Set(key, []*Node{n}, fcn, nc.Extra)
					} else {
						o.PtNatBcs.Set(o.F2Y[key], n, fcn, nc.Extra)
					}
				}
			}
		}
	}

	// resize slices --------------------------------------------------------------------------------

	// size of arrays
	o.Ny = eq
	o.Nlam, o.NnzA = o.EssenBcs.Build(o.Ny)
	o.Nyb = o.Ny + o.Nlam

	// solution structure
	o.Sol = new(Solution)

	// linear system
	o.Kb = new(la.Triplet)
	o.Fb = make([]float64, o.Nyb)
	o.Wb = make([]float64, o.Nyb)
	o.Kb.Init(o.Nyb, o.Nyb, o.NnzKb+2*o.NnzA)

	// allocate arrays
	o.Sol.Y = make([]float64, o.Ny)
	o.Sol.ΔY = make([]float64, o.Ny)
	o.Sol.L = make([]float64, o.Nlam)
	return
}

// Reset clears solution vectors
func (o *Solution) Reset() {
	o.T = 0
	for i := 0; i < len(o.Y); i++ {
		o.Y[i] = 0
		o.ΔY[i] = 0
	}
	for i := 0; i < len(o.L); i++ {
		o.L[i] = 0
	}
}
