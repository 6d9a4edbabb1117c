// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/inp"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/fluid"
	"github.com/cpmech/gosl/chk"
)

// Setup holds a Model and the collaborators allocated from a database of materials
type Setup struct {
	Mdl *Model       // coordinator
	Med *Medium      // porosity and permeability
	Pha *fluid.Model // phase a; e.g. water
	Phb *fluid.Model // phase b; e.g. air
}

// NewFromDb allocates a Model using the materials in mdb
//  Note: medium is the name of the medium material; the first one is used if empty.
//        The Extra field of the medium lists the names of phases a and b
func NewFromDb(msh fld.Mesh, mdb *inp.MatDb, medium string, Sb fld.Cell) (o *Setup, err error) {
	if mdb == nil {
		return nil, chk.Err("porous: database of materials must be non-nil")
	}

	// medium
	var mmed *inp.Material
	if medium == "" {
		mmed = mdb.First(inp.TypeMedium)
	} else {
		mmed = mdb.Get(medium)
	}
	if mmed == nil || mmed.Type != inp.TypeMedium {
		return nil, chk.Err("porous: cannot find medium material %q", medium)
	}
	o = new(Setup)
	if o.Med, err = NewMedium(msh, mmed.Coeffs()); err != nil {
		return nil, err
	}

	// phases
	names := mmed.ExtraNames()
	if len(names) != 2 {
		return nil, chk.Err("porous: medium %q must list two phases in 'extra'. %q is invalid", mmed.Name, mmed.Extra)
	}
	phases := make([]*fluid.Model, 2)
	for k, name := range names {
		mat := mdb.Get(name)
		if mat == nil || mat.Type != inp.TypePhase {
			return nil, chk.Err("porous: cannot find phase material %q", name)
		}
		if phases[k], err = fluid.New(msh, mat.Coeffs()); err != nil {
			return nil, chk.Err("porous: phase %q: %v", name, err)
		}
	}
	o.Pha, o.Phb = phases[0], phases[1]

	// sub-models
	var cfg Config
	msat := mdb.First(inp.TypeSaturation)
	mcnd := mdb.First(inp.TypeConduct)
	mret := mdb.First(inp.TypeRetention)
	if msat == nil || mcnd == nil || mret == nil {
		return nil, chk.Err("porous: saturation, conduct and retention materials must be all given")
	}
	cfg.Sat = msat.Coeffs()
	cfg.Cnd, cfg.CndPrms = mcnd.Model, mcnd.Coeffs()
	cfg.Ret, cfg.RetPrms = mret.Model, mret.Coeffs()
	if o.Mdl, err = New(msh, Sb, cfg, o.Pha, o.Phb, o.Med); err != nil {
		return nil, err
	}
	return
}
