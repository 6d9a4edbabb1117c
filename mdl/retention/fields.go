// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
)

// ACTIVATE is the name of the parameter switching capillarity on and off
const ACTIVATE = "activateCapillarity"

// Fields holds the capillary pressure on cells
//  Note: if capillarity is not active, pc and ∂pc/∂S are identically zero
type Fields struct {
	Mdl Model // curve

	// input (owned by the saturation model)
	active bool
	se     fld.Cell // reduced saturation
	dsedS  fld.Cell // ∂Se/∂Sb

	// output
	pc    fld.Cell // capillary pressure
	dpcdS fld.Cell // ∂pc/∂S
}

// NewFields allocates and initialises the curve selected by name. The curve
// is validated even if capillarity is deactivated by the ACTIVATE parameter
func NewFields(msh fld.Mesh, name string, prms *generic.Coeffs, Se, DSeDSb fld.Cell) (o *Fields, err error) {
	if msh == nil {
		return nil, chk.Err("retention: mesh must be non-nil")
	}
	nc := msh.NCells()
	if len(Se) != nc || len(DSeDSb) != nc {
		return nil, chk.Err("retention: Se and ∂Se/∂Sb must have %d values. %d and %d are invalid", nc, len(Se), len(DSeDSb))
	}
	mdl, err := New(name)
	if err != nil {
		return
	}
	if err = mdl.Init(msh, prms.Without(ACTIVATE)); err != nil {
		return
	}
	o = &Fields{Mdl: mdl, active: prms.Bool(ACTIVATE, true), se: Se, dsedS: DSeDSb}
	o.pc = fld.NewCell(msh)
	o.dpcdS = fld.NewCell(msh)
	return
}

// Correct computes pc and ∂pc/∂S from the current Se
func (o *Fields) Correct() {
	if !o.active {
		o.pc.Fill(0)
		o.dpcdS.Fill(0)
		return
	}
	for i, se := range o.se {
		o.pc[i] = o.Mdl.Pc(i, se)
		o.dpcdS[i] = o.Mdl.DpcDse(i, se) * o.dsedS[i]
	}
}

// Active tells whether capillarity is switched on
func (o Fields) Active() bool { return o.active }

// Pc returns the capillary pressure
func (o Fields) Pc() fld.Cell { return o.pc }

// DpcDS returns ∂pc/∂S
func (o Fields) DpcDS() fld.Cell { return o.dpcdS }
