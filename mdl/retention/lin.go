// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear retention curve
//   pc = pc0 + (1 - Se) (pcMax - pc0)
type Lin struct {
	pc0   fld.Cell // pc at Se = 1
	pcmax fld.Cell // pc at Se = 0
}

// add model to factory
func init() {
	allocators["linear"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if err = prms.Check("lin", "pc0", "pcMax"); err != nil {
		return
	}
	if o.pc0, err = prms.FieldOrDefault(msh, "pc0", 0); err != nil {
		return
	}
	if o.pcmax, err = prms.Field(msh, "pcMax"); err != nil {
		return
	}
	for i := range o.pc0 {
		if o.pc0[i] < 0 || o.pcmax[i] <= o.pc0[i] {
			return chk.Err("lin: pcMax > pc0 >= 0 must hold. pc0 = %g and pcMax = %g at cell %d are invalid", o.pc0[i], o.pcmax[i], i)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "pc0", V: 0},
		&dbf.P{N: "pcMax", V: 1000},
	}
}

// Pc computes pc
func (o Lin) Pc(i int, se float64) float64 {
	if se >= 1 {
		return o.pc0[i]
	}
	if se <= 0 {
		return o.pcmax[i]
	}
	return o.pc0[i] + (1.0-se)*(o.pcmax[i]-o.pc0[i])
}

// DpcDse computes ∂pc/∂Se
func (o Lin) DpcDse(i int, se float64) float64 {
	if se > 1 || se < 0 {
		return 0
	}
	return o.pc0[i] - o.pcmax[i]
}

// Se computes Se directly from pc
func (o Lin) Se(i int, pc float64) float64 {
	if pc <= o.pc0[i] {
		return 1
	}
	if pc >= o.pcmax[i] {
		return 0
	}
	return 1.0 - (pc-o.pc0[i])/(o.pcmax[i]-o.pc0[i])
}
