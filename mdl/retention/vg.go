// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"

	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VanGen implements van Genuchten's model
//   pc = pc0 (Se^(-1/m) - 1)^(1/n)   with   pc0 = 1/α
type VanGen struct {

	// parameters
	m, n  fld.Cell // exponents
	pc0   fld.Cell // reference pressure 1/α
	pcmax fld.Cell // cap of pc corresponding to Se → 0
}

// add model to factory
func init() {
	allocators["VanGenuchten"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if err = prms.Check("vg", "m", "n", "alpha", "pc0", "pcMax"); err != nil {
		return
	}
	if o.n, err = prms.Field(msh, "n"); err != nil {
		return
	}
	for i, n := range o.n {
		if n <= 1 {
			return chk.Err("vg: n must be greater than 1. n = %g at cell %d is invalid", n, i)
		}
	}
	if prms.Has("m") {
		if o.m, err = prms.Field(msh, "m"); err != nil {
			return
		}
	} else {
		o.m = fld.NewCell(msh)
		for i, n := range o.n {
			o.m[i] = 1.0 - 1.0/n
		}
	}
	for i, m := range o.m {
		if m <= 0 || m >= 1 {
			return chk.Err("vg: m must be within (0, 1). m = %g at cell %d is invalid", m, i)
		}
	}
	switch {
	case prms.Has("alpha") && prms.Has("pc0"):
		return chk.Err("vg: either 'alpha' or 'pc0' must be given, not both")
	case prms.Has("alpha"):
		alp, e := prms.Field(msh, "alpha")
		if e != nil {
			return e
		}
		o.pc0 = fld.NewCell(msh)
		for i, α := range alp {
			if α <= 0 {
				return chk.Err("vg: alpha must be positive. alpha = %g at cell %d is invalid", α, i)
			}
			o.pc0[i] = 1.0 / α
		}
	case prms.Has("pc0"):
		if o.pc0, err = prms.Field(msh, "pc0"); err != nil {
			return
		}
		for i, pc0 := range o.pc0 {
			if pc0 <= 0 {
				return chk.Err("vg: pc0 must be positive. pc0 = %g at cell %d is invalid", pc0, i)
			}
		}
	default:
		return chk.Err("vg: either 'alpha' or 'pc0' must be given in database of parameters")
	}
	if o.pcmax, err = prms.FieldOrDefault(msh, "pcMax", PCMAX); err != nil {
		return
	}
	for i, pcmax := range o.pcmax {
		if pcmax <= 0 {
			return chk.Err("vg: pcMax must be positive. pcMax = %g at cell %d is invalid", pcmax, i)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "m", V: 0.5},
		&dbf.P{N: "n", V: 2},
		&dbf.P{N: "pc0", V: 1000},
		&dbf.P{N: "pcMax", V: 1e+6},
	}
}

// Pc computes pc
func (o VanGen) Pc(i int, se float64) float64 {
	if se >= 1 {
		return 0
	}
	if se <= 0 {
		return o.pcmax[i]
	}
	pc := o.pc0[i] * math.Pow(math.Pow(se, -1.0/o.m[i])-1.0, 1.0/o.n[i])
	if pc >= o.pcmax[i] {
		return o.pcmax[i]
	}
	return pc
}

// DpcDse computes ∂pc/∂Se
func (o VanGen) DpcDse(i int, se float64) float64 {
	if se >= 1 || se <= 0 {
		return 0
	}
	m, n, pc0 := o.m[i], o.n[i], o.pc0[i]
	x := math.Pow(se, -1.0/m) - 1.0
	if pc0*math.Pow(x, 1.0/n) >= o.pcmax[i] {
		return 0
	}
	return -(1.0 / (n * m)) * pc0 * math.Pow(x, 1.0/n-1.0) * math.Pow(se, -(1.0+m)/m)
}

// Se computes Se directly from pc
func (o VanGen) Se(i int, pc float64) float64 {
	if pc <= 0 {
		return 1
	}
	if pc >= o.pcmax[i] {
		pc = o.pcmax[i]
	}
	return math.Pow(1.0+math.Pow(pc/o.pc0[i], o.n[i]), -o.m[i])
}
