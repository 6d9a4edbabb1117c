// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
)

// Fields holds relative permeabilities on cells and faces
//  Note: derivatives are taken w.r.t. the bulk saturation, i.e.
//        ∂kr/∂S = ∂kr/∂Se ・ ∂Se/∂Sb, at the same Se used for the values
type Fields struct {
	Mdl Model // curves

	// input (owned by the saturation model)
	msh   fld.Mesh
	se    fld.Cell // reduced saturation
	dsedS fld.Cell // ∂Se/∂Sb

	// output
	sef    fld.Face // reduced saturation on faces
	kra    fld.Cell // kra on cells
	krb    fld.Cell // krb on cells
	kraf   fld.Face // kra on faces
	krbf   fld.Face // krb on faces
	dkradS fld.Cell // ∂kra/∂S
	dkrbdS fld.Cell // ∂krb/∂S
}

// NewFields allocates and initialises the curves selected by name
func NewFields(msh fld.Mesh, name string, prms *generic.Coeffs, Se, DSeDSb fld.Cell) (o *Fields, err error) {
	if msh == nil {
		return nil, chk.Err("conduct: mesh must be non-nil")
	}
	nc := msh.NCells()
	if len(Se) != nc || len(DSeDSb) != nc {
		return nil, chk.Err("conduct: Se and ∂Se/∂Sb must have %d values. %d and %d are invalid", nc, len(Se), len(DSeDSb))
	}
	mdl, err := New(name)
	if err != nil {
		return
	}
	if err = mdl.Init(msh, prms); err != nil {
		return
	}
	o = &Fields{Mdl: mdl, msh: msh, se: Se, dsedS: DSeDSb}
	o.sef = fld.NewFace(msh)
	o.kra = fld.NewCell(msh)
	o.krb = fld.NewCell(msh)
	o.kraf = fld.NewFace(msh)
	o.krbf = fld.NewFace(msh)
	o.dkradS = fld.NewCell(msh)
	o.dkrbdS = fld.NewCell(msh)
	return
}

// Correct computes relative permeabilities from the current Se
func (o *Fields) Correct() {
	o.msh.Interpolate(o.sef, o.se)
	for i, se := range o.se {
		o.kra[i] = o.Mdl.Kra(i, false, se)
		o.krb[i] = o.Mdl.Krb(i, false, se)
		o.dkradS[i] = o.Mdl.DkraDse(i, se) * o.dsedS[i]
		o.dkrbdS[i] = o.Mdl.DkrbDse(i, se) * o.dsedS[i]
	}
	for f, se := range o.sef {
		o.kraf[f] = o.Mdl.Kra(f, true, se)
		o.krbf[f] = o.Mdl.Krb(f, true, se)
	}
}

// Sef returns the reduced saturation on faces
func (o Fields) Sef() fld.Face { return o.sef }

// Kra returns kra on cells
func (o Fields) Kra() fld.Cell { return o.kra }

// Krb returns krb on cells
func (o Fields) Krb() fld.Cell { return o.krb }

// Kraf returns kra on faces
func (o Fields) Kraf() fld.Face { return o.kraf }

// Krbf returns krb on faces
func (o Fields) Krbf() fld.Face { return o.krbf }

// DkraDS returns ∂kra/∂S
func (o Fields) DkraDS() fld.Cell { return o.dkradS }

// DkrbDS returns ∂krb/∂S
func (o Fields) DkrbDS() fld.Cell { return o.dkrbdS }
