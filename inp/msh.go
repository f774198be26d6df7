// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/mvettori/planefem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // tag
	C   []float64 // coordinates (size==2)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    // id
	Tag   int    // tag
	Type  string // geometry type (string)
	Part  int    // partition id
	Verts []int  // vertices
	FTags []int  // edge tags

	// derived
	Shp     *shp.Shape // shape structure
	FaceBcs FaceConds  // face boundary conditions
}

// CellFaceId structure
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert      // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId // face tag => set of cells
	FaceTag2verts map[int][]int        // face tag => vertices on tagged face
	Ctype2cells   map[string][]*Cell   // cell type => set of cells
}

// ReadMsh reads a mesh for FE analyses
//  Note: returns nil on errors
func ReadMsh(dir, fn string, goroutineId int) *Mesh {

	// read file
	fnamepath := filepath.Join(dir, fn)
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil
	}

	// decode
	var o Mesh
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil
	}
	o.FnamePath = fnamepath

	// derived data
	if o.CalcDerived(goroutineId) != nil {
		return nil
	}

	// results
	return &o
}

// CalcDerived computes derived data and maps
func (o *Mesh) CalcDerived(goroutineId int) error {

	// check
	if len(o.Verts) < 2 {
		return chk.Err("mesh: at least 2 vertices are required; got %d", len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh: at least 1 cell is required; got %d", len(o.Cells))
	}

	// vertex related derived data
	o.Ndim = 2
	o.Xmin = o.Verts[0].C[0]
	o.Ymin = o.Verts[0].C[1]
	o.Xmax = o.Xmin
	o.Ymax = o.Ymin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id and dimension
		if v.Id != i {
			return chk.Err("mesh: vertices ids must coincide with order in list; %d != %d", v.Id, i)
		}
		if len(v.C) != 2 {
			return chk.Err("mesh: only 2D meshes are allowed; vertex %d has %d coordinates", v.Id, len(v.C))
		}

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.FaceTag2verts = make(map[int][]int)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return chk.Err("mesh: cells ids must coincide with order in list; %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return chk.Err("mesh: cell tags must be negative; cell %d has tag %d", c.Id, c.Tag)
		}

		// face tags
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)
		for j, ftag := range c.FTags {
			if ftag < 0 {
				pairs := o.FaceTag2cells[ftag]
				o.FaceTag2cells[ftag] = append(pairs, CellFaceId{c, j})
				for _, l := range shp.GetFaceLocalVerts(c.Type, j) {
					utl.IntIntsMapAppend(&o.FaceTag2verts, ftag, o.Verts[c.Verts[l]].Id)
				}
			}
		}

		// cell type => cells
		cells = o.Ctype2cells[c.Type]
		o.Ctype2cells[c.Type] = append(cells, c)

		// get shape structure
		c.Shp = shp.Get(c.Type, goroutineId)
		if c.Shp == nil {
			return chk.Err("mesh: cannot find shape structure for cell type %q", c.Type)
		}
	}

	// remove duplicates
	for ftag, verts := range o.FaceTag2verts {
		o.FaceTag2verts[ftag] = utl.IntUnique(verts)
	}
	return nil
}

// ExtractCellCoords extracts cell coordinates
//  xmat -- [ndim][nverts] matrix
func (o *Mesh) ExtractCellCoords(cellId int) (xmat [][]float64) {
	c := o.Cells[cellId]
	xmat = la.MatAlloc(o.Ndim, len(c.Verts))
	for j, v := range c.Verts {
		for i := 0; i < o.Ndim; i++ {
			xmat[i][j] = o.Verts[v].C[i]
		}
	}
	return
}

// String returns a JSON representation of *Vert
func (o *Vert) String() string {
	l := io.Sf("{\"id\":%4d, \"tag\":%6d, \"c\":[", o.Id, o.Tag)
	for i, x := range o.C {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%23.15e", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Cell
func (o *Cell) String() string {
	l := io.Sf("{\"id\":%d, \"tag\":%d, \"type\":%q, \"part\":%d, \"verts\":[", o.Id, o.Tag, o.Type, o.Part)
	for i, x := range o.Verts {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "], \"ftags\":["
	for i, x := range o.FTags {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%d", x)
	}
	l += "] }"
	return l
}

// String returns a JSON representation of *Mesh
func (o *Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, v := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", v)
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, c := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", c)
	}
	l += "\n  ]\n}"
	return l
}
