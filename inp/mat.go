// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Material holds material data; e.g. a fluid with viscosity "mu"
type Material struct {
	Name  string   `json:"name"`  // name of material
	Desc  string   `json:"desc"`  // description
	Model string   `json:"model"` // name of model; e.g. "newtonian", "elastic"
	Prms  fun.Prms `json:"prms"`  // parameters
}

// MatDb holds all materials
type MatDb struct {
	Materials []*Material `json:"materials"` // all materials
}

// ReadMat reads a materials database from a JSON file
//  Note: returns nil on errors
func ReadMat(dir, fn string) *MatDb {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil
	}

	// decode
	var o MatDb
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil
	}
	return &o
}

// Get returns a material with name
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("{\"name\":%q, \"desc\":%q, \"model\":%q, \"nprms\":%d}", o.Name, o.Desc, o.Model, len(o.Prms))
}
