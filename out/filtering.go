// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"sort"
)

// Point holds one located vertex and its distance along the filtering line
type Point struct {
	Vid  int       // vertex id
	X    []float64 // coordinates
	Dist float64   // distance along line
}

// Points is a set of located points, sortable by distance
type Points []*Point

func (o Points) Len() int           { return len(o) }
func (o Points) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o Points) Less(i, j int) bool { return o[i].Dist < o[j].Dist }

// Locator defines an interface for locating vertices
type Locator interface {
	Locate() Points
}

// Along implements a locator along the segment {a, b}
//  Example: Along{{0, 0}, {0, 1}}
type Along [][]float64

// AlongX implements a locator along a horizontal line with y = AlongX[0]
type AlongX []float64

// AlongY implements a locator along a vertical line with x = AlongY[0]
type AlongY []float64

// N implements a vertex locator by ids (≥ 0) or tags (< 0)
type N []int

// Locate finds vertices on the line {a, b}, sorted by distance from a
func (o Along) Locate() (res Points) {
	a, b := o[0], o[1]
	ids := NodBins.FindAlongLine(a, b, TolC)
	for _, vid := range ids {
		nod := Dom.Vid2node[vid]
		if nod == nil {
			continue
		}
		x := nod.Vert.C
		dx := x[0] - a[0]
		dy := x[1] - a[1]
		res = append(res, &Point{vid, x, math.Sqrt(dx*dx + dy*dy)})
	}
	sort.Sort(res)
	return
}

// Locate finds vertices along the horizontal line y = o[0]
func (o AlongX) Locate() Points {
	return Along{{Dom.Msh.Xmin, o[0]}, {Dom.Msh.Xmax, o[0]}}.Locate()
}

// Locate finds vertices along the vertical line x = o[0]
func (o AlongY) Locate() Points {
	return Along{{o[0], Dom.Msh.Ymin}, {o[0], Dom.Msh.Ymax}}.Locate()
}

// Locate finds vertices by id or tag. The distance is measured from the
// first vertex found
func (o N) Locate() (res Points) {
	var a []float64
	add := func(vid int) {
		nod := Dom.Vid2node[vid]
		if nod == nil {
			return
		}
		x := nod.Vert.C
		if a == nil {
			a = x
		}
		dx := x[0] - a[0]
		dy := x[1] - a[1]
		res = append(res, &Point{vid, x, math.Sqrt(dx*dx + dy*dy)})
	}
	for _, idortag := range o {
		if idortag < 0 {
			for _, v := range Dom.Msh.VertTag2verts[idortag] {
				add(v.Id)
			}
		} else {
			add(idortag)
		}
	}
	return
}
