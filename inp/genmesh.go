// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// edge tags of generated structured meshes
const (
	LeftTag   = -10 // x = 0
	RightTag  = -11 // x = lx
	BottomTag = -12 // y = 0
	TopTag    = -13 // y = ly
	CornerTag = -100
)

// GenQuaMesh generates a structured mesh of quadrilaterals over the rectangle
// [0,lx] x [0,ly] with nx by ny cells of type ctype ("qua4", "qua8" or "qua9").
// Edges are tagged with LeftTag, RightTag, BottomTag and TopTag and the vertex
// at the origin is tagged with CornerTag.
func GenQuaMesh(lx, ly float64, nx, ny int, ctype string, cellTag int, goroutineId int) (*Mesh, error) {

	// check
	if nx < 1 || ny < 1 {
		return nil, chk.Err("genmesh: number of cells must be positive; got nx=%d ny=%d", nx, ny)
	}
	if cellTag >= 0 {
		return nil, chk.Err("genmesh: cell tag must be negative; got %d", cellTag)
	}

	// grid step: qua8/qua9 add mid-side (and centre) nodes
	half := ctype == "qua8" || ctype == "qua9"
	npx, npy := nx+1, ny+1 // number of grid points along x and y
	if half {
		npx, npy = 2*nx+1, 2*ny+1
	}
	xcoords := utl.LinSpace(0, lx, npx)
	ycoords := utl.LinSpace(0, ly, npy)

	// grid point (i,j) => vertex id; -1 if unused (qua8 centre positions)
	grid2vid := make([]int, npx*npy)
	for k := range grid2vid {
		grid2vid[k] = -1
	}
	used := func(i, j int) bool {
		if ctype == "qua8" {
			return i%2 == 0 || j%2 == 0
		}
		return true
	}

	// vertices
	var o Mesh
	for j := 0; j < npy; j++ {
		for i := 0; i < npx; i++ {
			if !used(i, j) {
				continue
			}
			tag := 0
			if i == 0 && j == 0 {
				tag = CornerTag
			}
			grid2vid[j*npx+i] = len(o.Verts)
			o.Verts = append(o.Verts, &Vert{
				Id:  len(o.Verts),
				Tag: tag,
				C:   []float64{xcoords[i], ycoords[j]},
			})
		}
	}

	// cells
	vid := func(i, j int) int { return grid2vid[j*npx+i] }
	for cy := 0; cy < ny; cy++ {
		for cx := 0; cx < nx; cx++ {

			// vertices of cell
			i0, j0, d := cx, cy, 1
			if half {
				i0, j0, d = 2*cx, 2*cy, 2
			}
			var verts []int
			switch ctype {
			case "qua4":
				verts = []int{vid(i0, j0), vid(i0+d, j0), vid(i0+d, j0+d), vid(i0, j0+d)}
			case "qua8":
				verts = []int{
					vid(i0, j0), vid(i0+d, j0), vid(i0+d, j0+d), vid(i0, j0+d),
					vid(i0+1, j0), vid(i0+d, j0+1), vid(i0+1, j0+d), vid(i0, j0+1),
				}
			case "qua9":
				verts = []int{
					vid(i0, j0), vid(i0+d, j0), vid(i0+d, j0+d), vid(i0, j0+d),
					vid(i0+1, j0), vid(i0+d, j0+1), vid(i0+1, j0+d), vid(i0, j0+1),
					vid(i0+1, j0+1),
				}
			default:
				return nil, chk.Err("genmesh: cell type %q is not available", ctype)
			}

			// edge tags: faces are numbered bottom, right, top, left
			ftags := []int{0, 0, 0, 0}
			if cy == 0 {
				ftags[0] = BottomTag
			}
			if cx == nx-1 {
				ftags[1] = RightTag
			}
			if cy == ny-1 {
				ftags[2] = TopTag
			}
			if cx == 0 {
				ftags[3] = LeftTag
			}

			o.Cells = append(o.Cells, &Cell{
				Id:    len(o.Cells),
				Tag:   cellTag,
				Type:  ctype,
				Verts: verts,
				FTags: ftags,
			})
		}
	}

	// derived data
	err := o.CalcDerived(goroutineId)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
