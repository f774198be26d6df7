// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/gonum/matrix/mat64"
)

// DenseSolve solves the sparse linear system Kb * x = fb by converting the
// triplet to a dense matrix and factorising it. The systems assembled here
// are small enough for a dense factorisation.
func DenseSolve(x []float64, Kb *la.Triplet, fb []float64) (err error) {

	// convert triplet to dense matrix
	n := len(fb)
	d := Kb.ToMatrix(nil).ToDense()
	A := mat64.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, d[i][j])
		}
	}

	// right-hand-side
	b := mat64.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		b.Set(i, 0, fb[i])
	}

	// solve
	var sol mat64.Dense
	err = sol.Solve(A, b)
	if err != nil {
		return chk.Err("dense solver failed:\n%v", err)
	}
	for i := 0; i < n; i++ {
		x[i] = sol.At(i, 0)
	}
	return
}
