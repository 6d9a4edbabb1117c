// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the retention curve of cell i; i.e. Se versus pc
func Plot(o Model, i int, dirout, fnkey string, np int, args *plt.A) {
	if args == nil {
		args = &plt.A{C: "b", Ls: "-", M: "."}
	}
	X := utl.LinSpace(0, 1, np)
	Y := make([]float64, np)
	for k, se := range X {
		Y[k] = o.Pc(i, se)
	}
	plt.Plot(Y, X, args)
	plt.Gll("$p_c$", "$S_e$", nil)
	plt.Save(dirout, fnkey)
}
