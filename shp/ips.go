// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Ipoint holds integration point data: natural coordinates and weight: {r, s, t, w}
type Ipoint []float64

// constants
var (
	SQ3o3 = 0.5773502691896257 // sqrt(3)/3 == 1/sqrt(3)
	SQ3o5 = 0.7745966692414834 // sqrt(3/5)
	W5o9  = 5.0 / 9.0
	W8o9  = 8.0 / 9.0
)

// Gauss-Legendre points for lin elements
var (
	ips_lin_2 = []Ipoint{
		{-SQ3o3, 0, 0, 1},
		{SQ3o3, 0, 0, 1},
	}
	ips_lin_3 = []Ipoint{
		{-SQ3o5, 0, 0, W5o9},
		{0, 0, 0, W8o9},
		{SQ3o5, 0, 0, W5o9},
	}
)

// Gauss-Legendre points for qua elements
var (
	ips_qua_4 = []Ipoint{
		{-SQ3o3, -SQ3o3, 0, 1},
		{SQ3o3, -SQ3o3, 0, 1},
		{-SQ3o3, SQ3o3, 0, 1},
		{SQ3o3, SQ3o3, 0, 1},
	}
	ips_qua_9 = []Ipoint{
		{-SQ3o5, -SQ3o5, 0, W5o9 * W5o9},
		{0, -SQ3o5, 0, W8o9 * W5o9},
		{SQ3o5, -SQ3o5, 0, W5o9 * W5o9},
		{-SQ3o5, 0, 0, W5o9 * W8o9},
		{0, 0, 0, W8o9 * W8o9},
		{SQ3o5, 0, 0, W5o9 * W8o9},
		{-SQ3o5, SQ3o5, 0, W5o9 * W5o9},
		{0, SQ3o5, 0, W8o9 * W5o9},
		{SQ3o5, SQ3o5, 0, W5o9 * W5o9},
	}
)

// symmetric points for tri elements (weights sum to the reference area 1/2)
var (
	ips_tri_1 = []Ipoint{
		{1.0 / 3.0, 1.0 / 3.0, 0, 1.0 / 2.0},
	}
	ips_tri_3 = []Ipoint{
		{1.0 / 6.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{2.0 / 3.0, 1.0 / 6.0, 0, 1.0 / 6.0},
		{1.0 / 6.0, 2.0 / 3.0, 0, 1.0 / 6.0},
	}
	ips_tri_6 = []Ipoint{
		{0.091576213509771, 0.091576213509771, 0, 0.054975871827661},
		{0.816847572980459, 0.091576213509771, 0, 0.054975871827661},
		{0.091576213509771, 0.816847572980459, 0, 0.054975871827661},
		{0.445948490915965, 0.445948490915965, 0, 0.111690794839005},
		{0.108103018168070, 0.445948490915965, 0, 0.111690794839005},
		{0.445948490915965, 0.108103018168070, 0, 0.111690794839005},
	}
)

// ipsfactory holds all integration points sets
var ipsfactory = map[string][]Ipoint{
	"lin_2": ips_lin_2,
	"lin_3": ips_lin_3,
	"qua_4": ips_qua_4,
	"qua_9": ips_qua_9,
	"tri_1": ips_tri_1,
	"tri_3": ips_tri_3,
	"tri_6": ips_tri_6,
}

// defaultips holds the default number of integration points for each cell type
var defaultips = map[string]int{
	"lin2": 2,
	"lin3": 3,
	"tri3": 3,
	"tri6": 6,
	"qua4": 4,
	"qua8": 9,
	"qua9": 9,
}

// GetIps returns a set of integration points
//  If nip is zero, the default set for geoType is returned
func GetIps(geoType string, nip int) (ips []Ipoint, err error) {
	if nip == 0 {
		var ok bool
		nip, ok = defaultips[geoType]
		if !ok {
			return nil, chk.Err("cannot find default number of integration points for %q", geoType)
		}
	}
	key := io.Sf("%s_%d", geoType[:3], nip)
	ips, ok := ipsfactory[key]
	if !ok {
		return nil, chk.Err("cannot find integration points set %q", key)
	}
	return
}
