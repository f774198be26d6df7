// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// EssentialBc holds information about one essential boundary condition;
// i.e. one prescribed solution variable
type EssentialBc struct {
	Key string   // key; e.g. "ux", "uy", "pl"
	Eq  int      // equation number of the constrained dof
	Fcn fun.Func // function that computes the prescribed value
}

// EssentialBcs implements a structure to record the definition of essential
// boundary conditions. The constraints are appended to the global system via
// Lagrange multipliers:
//
//   | K  Aᵀ | | y |   | f |
//   |       | |   | = |   |        A[i][eq] = 1   c[i] = prescribed value
//   | A  0  | | λ |   | c |
//
// The A matrix is stored with GLOBAL indices so that Kb.PutMatAndMatT(&A)
// assembles both blocks at once.
type EssentialBcs struct {

	// data
	Bcs []*EssentialBc // active essential boundary conditions
	A   la.Triplet     // matrix of coefficients 'A'
	Ny  int            // total number of dofs, except λ

	// auxiliary
	eq2idx map[int]int // constrained equation number => index in Bcs
}

// Init initialises this structure
func (o *EssentialBcs) Init() {
	o.Bcs = make([]*EssentialBc, 0)
	o.eq2idx = make(map[int]int)
	o.Ny = 0
}

// Set sets boundary condition key and function to a set of nodes.
// A later call for the same dof replaces the function; thus corner nodes
// shared by two tagged edges take the condition set last.
func (o *EssentialBcs) Set(key string, nodes []*Node, fcn fun.Func, extra string) (err error) {
	for _, nod := range nodes {
		eq := nod.GetEq(key)
		if eq < 0 {
			return chk.Err("cannot find equation corresponding to %q @ node (vid=%d)", key, nod.Vert.Id)
		}
		if idx, ok := o.eq2idx[eq]; ok {
			o.Bcs[idx].Fcn = fcn
			continue
		}
		o.eq2idx[eq] = len(o.Bcs)
		o.Bcs = append(o.Bcs, &EssentialBc{key, eq, fcn})
	}
	return
}

// Build builds the 'A' matrix and returns the number of Lagrange multipliers
// and the number of non-zeros in 'A'
func (o *EssentialBcs) Build(ny int) (nλ, nnzA int) {
	o.Ny = ny
	nλ = len(o.Bcs)
	nnzA = nλ
	if nλ == 0 {
		return
	}
	o.A.Init(ny+nλ, ny+nλ, nnzA)
	for i, bc := range o.Bcs {
		o.A.Put(ny+i, bc.Eq, 1.0)
	}
	return
}

// AddToRhs adds the essential boundary conditions terms to the
// right-hand-side vector:
//  fb[eq]   -= λ[i]           (-Aᵀλ goes into the primary residual)
//  fb[ny+i]  = c(t) - y[eq]   (constraint residual)
func (o EssentialBcs) AddToRhs(fb []float64, sol *Solution) {
	for i, bc := range o.Bcs {
		fb[bc.Eq] -= sol.L[i]
		fb[o.Ny+i] = bc.Fcn.F(sol.T, nil) - sol.Y[bc.Eq]
	}
}

// List returns the keys, equations and prescribed values @ time t
func (o EssentialBcs) List(t float64) (keys []string, eqs []int, values []float64) {
	for _, bc := range o.Bcs {
		keys = append(keys, bc.Key)
		eqs = append(eqs, bc.Eq)
		values = append(values, bc.Fcn.F(t, nil))
	}
	return
}

// PtNaturalBc holds information on one point natural boundary condition;
// e.g. a concentrated load
type PtNaturalBc struct {
	Key   string   // key; e.g. "fux"
	Eq    int      // equation number
	Fcn   fun.Func // function that computes the applied value
	Extra string   // extra information
}

// PtNaturalBcs holds all point natural boundary conditions
type PtNaturalBcs struct {
	Bcs []*PtNaturalBc
}

// Reset initialises and/or clears this structure
func (o *PtNaturalBcs) Reset() {
	o.Bcs = make([]*PtNaturalBc, 0)
}

// Set sets a point natural boundary condition.
//  ykey -- the primary variable key; e.g. "ux" for a force "fux"
func (o *PtNaturalBcs) Set(ykey string, nod *Node, fcn fun.Func, extra string) (err error) {
	eq := nod.GetEq(ykey)
	if eq < 0 {
		return chk.Err("cannot find equation corresponding to %q @ node (vid=%d)", ykey, nod.Vert.Id)
	}
	o.Bcs = append(o.Bcs, &PtNaturalBc{"f" + ykey, eq, fcn, extra})
	return
}

// AddToRhs adds the prescribed point loads to the right-hand-side vector
func (o PtNaturalBcs) AddToRhs(fb []float64, t float64) {
	for _, bc := range o.Bcs {
		fb[bc.Eq] += bc.Fcn.F(t, nil)
	}
}

// String returns a short description of all point loads
func (o PtNaturalBcs) String() string {
	l := ""
	for i, bc := range o.Bcs {
		if i > 0 {
			l += "\n"
		}
		l += io.Sf("%q @ eq=%d", bc.Key, bc.Eq)
	}
	return l
}
