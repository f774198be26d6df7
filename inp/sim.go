// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/planefem
	NoLBB   bool   `json:"nolbb"`   // do not use the mixed [qua9,qua4] pair for the velocity-pressure formulation
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name    string `json:"name"`    // "dense" only
	Verbose bool   `json:"verbose"` // verbose?
	Timing  bool   `json:"timing"`  // show timing statistics
}

// SetDefault sets defaults
func (o *LinSolData) SetDefault() {
	o.Name = "dense"
}

// ElemData holds element data
type ElemData struct {

	// input data
	Tag   int    `json:"tag"`   // tag of element
	Mat   string `json:"mat"`   // material name
	Type  string `json:"type"`  // type of element; e.g. "stokes"
	Nip   int    `json:"nip"`   // number of integration points; 0 => use default
	Nipf  int    `json:"nipf"`  // number of integration points on face; 0 => use default
	Extra string `json:"extra"` // extra flags (in keycode format); e.g. "!nip:4"

	// derived
	Lbb bool // mixed element satisfying the inf-sup (LBB) condition
}

// Region holds region data
type Region struct {

	// input data
	Desc      string      `json:"desc"`      // description of region; e.g. channel, tube wall
	Mshfile   string      `json:"mshfile"`   // file path of file with mesh data
	ElemsData []*ElemData `json:"elemsdata"` // list of elements data
	AbsPath   bool        `json:"abspath"`   // mesh filename is given in absolute path

	// derived
	Msh      *Mesh       // the mesh
	etag2idx map[int]int // maps element tag to element index in ElemsData slice
}

// FaceBc holds face boundary condition
type FaceBc struct {
	Tag   int      `json:"tag"`   // tag of face
	Keys  []string `json:"keys"`  // key indicating type of bcs; e.g. "ux", "uy", "qn"
	Funcs []string `json:"funcs"` // name of function; e.g. "zero", "pin"
	Extra string   `json:"extra"` // extra information
}

// NodeBc holds node boundary condition
type NodeBc struct {
	Tag   int      `json:"tag"`   // tag of node
	Keys  []string `json:"keys"`  // key indicating type of bcs; e.g. "ux", "uy", "pl"
	Funcs []string `json:"funcs"` // name of function; e.g. "zero"
	Extra string   `json:"extra"` // extra information
}

// EleCond holds element condition
type EleCond struct {
	Tag   int      `json:"tag"`   // tag of cell/element
	Keys  []string `json:"keys"`  // key indicating type of condition; e.g. "g" (gravity)
	Funcs []string `json:"funcs"` // name of function; e.g. "grav"
	Extra string   `json:"extra"` // extra information
}

// Stage holds stage data
type Stage struct {
	Desc     string     `json:"desc"`     // description of simulation stage
	Skip     bool       `json:"skip"`     // do not run stage
	EleConds []*EleCond `json:"eleconds"` // element conditions; e.g. gravity
	FaceBcs  []*FaceBc  `json:"facebcs"`  // face boundary conditions
	NodeBcs  []*NodeBc  `json:"nodebcs"`  // node boundary conditions
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data       `json:"data"`      // stores global simulation data
	Functions FuncsData  `json:"functions"` // stores all boundary condition functions
	Regions   []*Region  `json:"regions"`   // stores all regions
	LinSol    LinSolData `json:"linsol"`    // linear solver data
	Stages    []*Stage   `json:"stages"`    // stores all stages

	// derived
	GoroutineId int    // id of goroutine to avoid race problems
	DirOut      string // directory to save results
	Key         string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	MatParams   *MatDb // materials' parameters
	Ndim        int    // space dimension
}

// ReadSim reads all simulation data from a .sim JSON file
//  Note: panics on errors
func ReadSim(simfilepath, alias string, erasefiles bool, goroutineId int) *Simulation {

	// new sim
	var o Simulation
	o.GoroutineId = goroutineId

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.LinSol.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/planefem/" + fnkey
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// read materials database
	if o.Data.Matfile != "" {
		o.MatParams = ReadMat(dir, o.Data.Matfile)
		if o.MatParams == nil {
			chk.Panic("ReadSim: cannot read materials database %q", o.Data.Matfile)
		}
	}

	// for all regions
	for i, reg := range o.Regions {

		// read mesh
		ddir := dir
		if reg.AbsPath {
			ddir = ""
		}
		reg.Msh = ReadMsh(ddir, reg.Mshfile, goroutineId)
		if reg.Msh == nil {
			chk.Panic("ReadSim: cannot read mesh file %q", reg.Mshfile)
		}

		// dependent variables
		reg.etag2idx = make(map[int]int)
		for j, ed := range reg.ElemsData {
			reg.etag2idx[ed.Tag] = j
		}

		// get ndim
		if i == 0 {
			o.Ndim = reg.Msh.Ndim
		} else if reg.Msh.Ndim != o.Ndim {
			chk.Panic("ReadSim: Ndim value is inconsistent: %d != %d", reg.Msh.Ndim, o.Ndim)
		}

		// set LBB flag
		if !o.Data.NoLBB {
			for _, ed := range reg.ElemsData {
				if ed.Type == "stokes" {
					ed.Lbb = true
				}
			}
		}
	}

	// results
	return &o
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (d *Region) Etag2data(etag int) *ElemData {
	idx, ok := d.etag2idx[etag]
	if !ok {
		return nil
	}
	return d.ElemsData[idx]
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

// GetEleCond returns element condition; nil if element tag is not found
func (o Stage) GetEleCond(elemtag int) *EleCond {
	for _, ec := range o.EleConds {
		if ec.Tag == elemtag {
			return ec
		}
	}
	return nil
}

// GetNodeBc returns node boundary condition; nil if node tag is not found
func (o Stage) GetNodeBc(nodetag int) *NodeBc {
	for _, nbc := range o.NodeBcs {
		if nbc.Tag == nodetag {
			return nbc
		}
	}
	return nil
}

// GetFaceBc returns face boundary condition; nil if face tag is not found
func (o Stage) GetFaceBc(facetag int) *FaceBc {
	for _, fbc := range o.FaceBcs {
		if fbc.Tag == facetag {
			return fbc
		}
	}
	return nil
}
