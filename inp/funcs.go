// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// FuncData holds one boundary condition function definition
type FuncData struct {
	Name string   `json:"name"` // name of function; e.g. "zero", "pin", "vmax"
	Type string   `json:"type"` // type of function; e.g. "cte"
	Prms fun.Prms `json:"prms"` // parameters; e.g. [{"n":"c", "v":1}]
}

// FuncsData holds all boundary condition functions
type FuncsData []*FuncData

// Get returns a function with name
//  Note: returns nil if not found
func (o FuncsData) Get(name string) fun.Func {
	if name == "zero" {
		return &fun.Cte{}
	}
	for _, d := range o {
		if d.Name == name {
			f, err := fun.New(d.Type, d.Prms)
			if err != nil {
				chk.Panic("cannot create function named %q: %v", name, err)
			}
			return f
		}
	}
	return nil
}

// String prints the function names and types
func (o FuncsData) String() string {
	l := ""
	for i, d := range o {
		if i > 0 {
			l += "\n"
		}
		l += io.Sf("%q (%s) nprms=%d", d.Name, d.Type, len(d.Prms))
	}
	return l
}
