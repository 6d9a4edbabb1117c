// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the curves of cell i and, if deriv == true, their derivatives
func Plot(o Model, i int, dirout, fnkey string, np int, deriv bool) {
	X := utl.LinSpace(0, 1, np)
	Ya := make([]float64, np)
	Yb := make([]float64, np)
	var Za, Zb []float64
	if deriv {
		Za = make([]float64, np)
		Zb = make([]float64, np)
	}
	for k, se := range X {
		Ya[k] = o.Kra(i, false, se)
		Yb[k] = o.Krb(i, false, se)
		if deriv {
			Za[k] = o.DkraDse(i, se)
			Zb[k] = o.DkrbDse(i, se)
		}
	}
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(X, Ya, &plt.A{C: "b", Ls: "-", L: "a"})
	plt.Plot(X, Yb, &plt.A{C: "r", Ls: "-", L: "b"})
	plt.Gll("$S_e$", "$k^r$", nil)
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(X, Za, &plt.A{C: "b", Ls: "-", L: "a"})
		plt.Plot(X, Zb, &plt.A{C: "r", Ls: "-", L: "b"})
		plt.Gll("$S_e$", "$\\mathrm{d}k^r/\\mathrm{d}S_e$", nil)
	}
	plt.Save(dirout, fnkey)
}
