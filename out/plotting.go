// Copyright 2016 The planefem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// SplotDat holds data of one curve in a subplot
type SplotDat struct {
	X     []float64 // x-values
	Y     []float64 // y-values
	Style plt.Fmt   // style; e.g. plt.Fmt{C: "b", L: "label"}
}

// Splot holds all curves to be plotted
type Splot struct {
	Title string      // title of plot
	Xlbl  string      // x-axis label
	Ylbl  string      // y-axis label
	Data  []*SplotDat // curves
}

// Plots holds subplots
var Splots []*Splot

// Reset clears all plot data
func Reset() {
	Splots = make([]*Splot, 0)
}

// Plot adds a profile of a nodal variable along a line to the current subplot
//  key -- nodal variable; e.g. "ux", "pl"
//  loc -- where to extract the profile
func Plot(key string, loc Locator, fm plt.Fmt) {
	if len(Splots) == 0 {
		Splots = append(Splots, new(Splot))
	}
	d, v := GetXY(key, loc.Locate())
	sp := Splots[len(Splots)-1]
	sp.Data = append(sp.Data, &SplotDat{d, v, fm})
}

// AddSplot starts a new subplot
func AddSplot(title, xlbl, ylbl string) {
	Splots = append(Splots, &Splot{Title: title, Xlbl: xlbl, Ylbl: ylbl})
}

// Draw draws or saves the figure
//  dirout -- directory to save figure; e.g. "/tmp/planefem"
//  fname  -- filename; e.g. "profiles.eps". Empty means show figure instead
func Draw(dirout, fname string) {
	nplots := len(Splots)
	nr, nc := 1, nplots
	if nplots > 2 {
		nr = (nplots + 1) / 2
		nc = 2
	}
	for k, sp := range Splots {
		if nplots > 1 {
			plt.Subplot(nr, nc, k+1)
		}
		if sp.Title != "" {
			plt.Title(sp.Title, "")
		}
		for _, d := range sp.Data {
			plt.Plot(d.X, d.Y, d.Style.GetArgs("clip_on=0"))
		}
		plt.Gll(sp.Xlbl, sp.Ylbl, "")
	}
	if fname != "" {
		plt.SaveD(dirout, fname)
		return
	}
	plt.Show()
}
