// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/mvettori/planefem/inp"

	"github.com/cpmech/gosl/io"
)

// Dof holds information about one degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key; e.g. "ux"
	Eq  int    // equation number
}

// String returns the string representation of this Dof
func (o *Dof) String() string {
	return io.Sf("{%q:%d}", o.Key, o.Eq)
}

// Node holds the degrees-of-freedom attached to one vertex
type Node struct {
	Dofs []*Dof    // degrees-of-freedom
	Vert *inp.Vert // pointer to vertex
}

// NewNode allocates a new Node
func NewNode(v *inp.Vert) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new Dof to the node, if the key is not present yet,
// and returns the next equation number
func (o *Node) AddDofAndEq(key string, eq int) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return eq
		}
	}
	o.Dofs = append(o.Dofs, &Dof{key, eq})
	return eq + 1
}

// GetDof returns the Dof with given key; nil if not found
func (o Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number of the Dof with given key; -1 if not found
func (o Node) GetEq(key string) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof.Eq
		}
	}
	return -1
}

// String returns the string representation of this Node
func (o Node) String() string {
	l := io.Sf("{\"vid\":%d, \"dofs\":[", o.Vert.Id)
	for i, dof := range o.Dofs {
		if i > 0 {
			l += ", "
		}
		l += dof.String()
	}
	l += "]}"
	return l
}
