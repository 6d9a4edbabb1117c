// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/retention"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// ColumnCapillary computes the hydrostatic state of a column with the water table at
// elevation H. The pressure (p) and intrinsic density (R) of the liquid are given by
//
//    R    = R0 + C・(p - p0)   thus   dR/dp = C
//    dp   = -R(p)・g・dz
//    p(z) = p0 + (R0/C)・(exp(C・g・(H - z)) - 1)     or    p0 + R0・g・(H - z)  if C = 0
//
// and the capillary pressure is pc = pg - p with the pressure of the other phase (pg) constant
type ColumnCapillary struct {
	R0   float64 // intrinsic density corresponding to p0
	P0   float64 // pressure corresponding to R0 at the water table
	C    float64 // compressibility coefficient; e.g. R0/Kbulk
	Grav float64 // gravity acceleration (positive constant)
	H    float64 // elevation of water table
	Pg   float64 // pressure of the other phase
}

// Init initialises this structure
func (o *ColumnCapillary) Init(R0, p0, C, g, H, pg float64) (err error) {
	if R0 <= 0 || C < 0 || g <= 0 {
		return chk.Err("column: R0 > 0, C >= 0 and g > 0 must hold. R0 = %g, C = %g and g = %g are invalid", R0, C, g)
	}
	o.R0, o.P0, o.C, o.Grav, o.H, o.Pg = R0, p0, C, g, H, pg
	return
}

// Calc computes pressure and density of the liquid
func (o ColumnCapillary) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		return o.P0 + o.R0*o.Grav*(o.H-z), o.R0
	}
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// Pc computes the capillary pressure
func (o ColumnCapillary) Pc(z float64) float64 {
	p, _ := o.Calc(z)
	return o.Pg - p
}

// Saturation computes the bulk saturation Sb = Smin + Se(pc)・(Smax - Smin) at cells
// with elevations z
func (o ColumnCapillary) Saturation(Sb fld.Cell, z []float64, ret retention.Inverse, smin, smax fld.Cell) (err error) {
	if ret == nil {
		return chk.Err("column: retention model must implement Se(pc)")
	}
	nc := len(Sb)
	if len(z) != nc || len(smin) != nc || len(smax) != nc {
		return chk.Err("column: z, Smin and Smax must have %d values. %d, %d and %d are invalid", nc, len(z), len(smin), len(smax))
	}
	for i := range Sb {
		Sb[i] = smin[i] + ret.Se(i, o.Pc(z[i]))*(smax[i]-smin[i])
	}
	return
}

// Plot plots liquid and capillary pressures along height of column
func (o ColumnCapillary) Plot(dirout, fnkey string, zmax float64, np int) {
	Z := utl.LinSpace(0, zmax, np)
	P := make([]float64, np)
	Pc := make([]float64, np)
	for i, z := range Z {
		P[i], _ = o.Calc(z)
		Pc[i] = o.Pc(z)
	}
	plt.Subplot(2, 1, 1)
	plt.Plot(P, Z, &plt.A{C: "k", Ls: "-"})
	plt.Gll("$p_{\\ell}$", "$z$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(Pc, Z, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$p_c$", "$z$", nil)
	plt.Save(dirout, fnkey)
}
