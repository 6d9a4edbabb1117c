// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package satur implements the reduced (effective) saturation model
//
//   Se = (Sb - Smin) / (Smax - Smin)   clipped to [0, 1]
//
package satur

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model computes the reduced saturation and its derivative w.r.t. the bulk saturation
type Model struct {

	// parameters
	smin fld.Cell // residual saturation
	smax fld.Cell // maximum saturation

	// input (owned by the solver)
	sb fld.Cell // bulk saturation

	// output
	se    fld.Cell // reduced saturation
	dsedS fld.Cell // ∂Se/∂Sb
}

// New returns a new reduced saturation model
func New(msh fld.Mesh, prms *generic.Coeffs, Sb fld.Cell) (o *Model, err error) {
	if msh == nil {
		return nil, chk.Err("satur: mesh must be non-nil")
	}
	if len(Sb) != msh.NCells() {
		return nil, chk.Err("satur: bulk saturation has %d values but mesh has %d cells", len(Sb), msh.NCells())
	}
	if err = prms.Check("satur", "Smin", "Smax"); err != nil {
		return
	}
	o = &Model{sb: Sb}
	if o.smin, err = prms.Field(msh, "Smin"); err != nil {
		return nil, chk.Err("satur: %v", err)
	}
	if o.smax, err = prms.Field(msh, "Smax"); err != nil {
		return nil, chk.Err("satur: %v", err)
	}
	for i := range o.smin {
		if o.smin[i] < 0 || o.smax[i] > 1 {
			return nil, chk.Err("satur: end points must be within [0, 1]. Smin = %g and Smax = %g at cell %d are invalid", o.smin[i], o.smax[i], i)
		}
		if o.smax[i] <= o.smin[i] {
			return nil, chk.Err("satur: Smax must be greater than Smin. Smax = %g <= Smin = %g at cell %d is invalid", o.smax[i], o.smin[i], i)
		}
	}
	o.se = fld.NewCell(msh)
	o.dsedS = fld.NewCell(msh)
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example || len(o.smin) == 0 {
		return dbf.Params{
			&dbf.P{N: "Smin", V: 0.1},
			&dbf.P{N: "Smax", V: 0.9},
		}
	}
	return dbf.Params{
		&dbf.P{N: "Smin", V: o.smin[0]},
		&dbf.P{N: "Smax", V: o.smax[0]},
	}
}

// Calc computes Se and ∂Se/∂Sb at cell i for a given bulk saturation
func (o Model) Calc(i int, sb float64) (se, dsedS float64) {
	Δs := o.smax[i] - o.smin[i]
	if sb <= o.smin[i] {
		return 0, 0
	}
	if sb >= o.smax[i] {
		return 1, 0
	}
	se = (sb - o.smin[i]) / Δs
	if se > 1 {
		return 1, 0
	}
	return se, 1.0 / Δs
}

// Update computes Se and ∂Se/∂Sb from the current bulk saturation
func (o *Model) Update() {
	for i, sb := range o.sb {
		o.se[i], o.dsedS[i] = o.Calc(i, sb)
	}
}

// Sb returns the bulk saturation
func (o Model) Sb() fld.Cell { return o.sb }

// Se returns the reduced saturation
func (o Model) Se() fld.Cell { return o.se }

// DSeDSb returns ∂Se/∂Sb
func (o Model) DSeDSb() fld.Cell { return o.dsedS }

// Smin returns the residual saturation
func (o Model) Smin() fld.Cell { return o.smin }

// Smax returns the maximum saturation
func (o Model) Smax() fld.Cell { return o.smax }
