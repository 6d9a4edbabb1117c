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

// BrooksCorey implements Brooks and Corey' model
//   pc = pc0 Se^(-1/λ)
//  Note: pc0 is the entry pressure; thus pc(1) = pc0
type BrooksCorey struct {
	pc0   fld.Cell // entry pressure
	λ     fld.Cell // pore size distribution index
	pcmax fld.Cell // cap of pc
}

// add model to factory
func init() {
	allocators["BrooksCorey"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if err = prms.Check("bc", "pc0", "lambda", "pcMax"); err != nil {
		return
	}
	if o.pc0, err = prms.Field(msh, "pc0"); err != nil {
		return
	}
	if o.λ, err = prms.Field(msh, "lambda"); err != nil {
		return
	}
	if o.pcmax, err = prms.FieldOrDefault(msh, "pcMax", PCMAX); err != nil {
		return
	}
	for i := range o.pc0 {
		if o.pc0[i] <= 0 {
			return chk.Err("bc: pc0 must be positive. pc0 = %g at cell %d is invalid", o.pc0[i], i)
		}
		if o.λ[i] <= 0 {
			return chk.Err("bc: lambda must be positive. lambda = %g at cell %d is invalid", o.λ[i], i)
		}
		if o.pcmax[i] <= o.pc0[i] {
			return chk.Err("bc: pcMax must be greater than pc0. pcMax = %g at cell %d is invalid", o.pcmax[i], i)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "pc0", V: 1000},
		&dbf.P{N: "lambda", V: 2},
		&dbf.P{N: "pcMax", V: 1e+6},
	}
}

// Pc computes pc
func (o BrooksCorey) Pc(i int, se float64) float64 {
	if se >= 1 {
		return o.pc0[i]
	}
	if se <= 0 {
		return o.pcmax[i]
	}
	return math.Min(o.pc0[i]*math.Pow(se, -1.0/o.λ[i]), o.pcmax[i])
}

// DpcDse computes ∂pc/∂Se
func (o BrooksCorey) DpcDse(i int, se float64) float64 {
	if se > 1 || se <= 0 {
		return 0
	}
	λ := o.λ[i]
	if o.pc0[i]*math.Pow(se, -1.0/λ) >= o.pcmax[i] {
		return 0
	}
	return -o.pc0[i] * math.Pow(se, -1.0/λ-1.0) / λ
}

// Se computes Se directly from pc
func (o BrooksCorey) Se(i int, pc float64) float64 {
	if pc <= o.pc0[i] {
		return 1
	}
	if pc >= o.pcmax[i] {
		pc = o.pcmax[i]
	}
	return math.Pow(o.pc0[i]/pc, o.λ[i])
}
