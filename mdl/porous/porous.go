// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porous implements the constitutive core of two-phase flow in porous media.
// Model composes the reduced saturation, relative permeability and capillary
// pressure models and computes the face mobilities of both phases
//  References:
//   [1] Horgue P, Soulaine C, Franc J, Guibert R and Debenest G (2015) An open-source
//       toolbox for multiphase flow in porous media. Computer Physics Communications,
//       187 217-226. http://dx.doi.org/10.1016/j.cpc.2014.10.005
package porous

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/conduct"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/retention"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/satur"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Phase supplies the properties of one fluid phase on faces
type Phase interface {
	MuF() fld.Face  // dynamic viscosity on faces
	RhoF() fld.Face // density on faces
}

// Config holds the selectors and coefficients of the sub-models
type Config struct {
	Sat     *generic.Coeffs // saturation end points
	Cnd     string          // name of relative permeability model; e.g. "BrooksCorey"
	CndPrms *generic.Coeffs // coefficients of relative permeability model
	Ret     string          // name of capillary pressure model; e.g. "VanGenuchten"
	RetPrms *generic.Coeffs // coefficients of capillary pressure model
}

// Model computes the mobilities of two phases in a porous medium
//  Note: accessors never recompute anything; Update must be called once
//        per iteration of the solver before reading any output
type Model struct {

	// settings
	Verbose bool // show summary of fields in Update

	// sub-models
	Sat *satur.Model      // reduced saturation
	Cnd *conduct.Fields   // relative permeabilities
	Ret *retention.Fields // capillary pressure

	// collaborators
	Pha  Phase        // phase a
	Phb  Phase        // phase b
	Perm Permeability // intrinsic permeability

	// mobilities on faces
	maf fld.Face // Kf・kraf/μa
	mbf fld.Face // Kf・krbf/μb
	mf  fld.Face // maf + mbf
	laf fld.Face // maf・ρa
	lbf fld.Face // mbf・ρb
	lf  fld.Face // laf + lbf
}

// New allocates the sub-models selected in cfg and returns a new Model.
// Sb is the bulk saturation owned by the solver and is referenced, not copied
func New(msh fld.Mesh, Sb fld.Cell, cfg Config, pa, pb Phase, perm Permeability) (o *Model, err error) {
	sat, err := satur.New(msh, cfg.Sat, Sb)
	if err != nil {
		return
	}
	cnd, err := conduct.NewFields(msh, cfg.Cnd, cfg.CndPrms, sat.Se(), sat.DSeDSb())
	if err != nil {
		return
	}
	ret, err := retention.NewFields(msh, cfg.Ret, cfg.RetPrms, sat.Se(), sat.DSeDSb())
	if err != nil {
		return
	}
	o = new(Model)
	if err = o.Init(msh, sat, cnd, ret, pa, pb, perm); err != nil {
		return nil, err
	}
	return
}

// Init initialises this structure with existent sub-models and collaborators
func (o *Model) Init(msh fld.Mesh, sat *satur.Model, cnd *conduct.Fields, ret *retention.Fields, pa, pb Phase, perm Permeability) (err error) {
	if msh == nil {
		return chk.Err("porous: mesh must be non-nil")
	}
	if sat == nil || cnd == nil || ret == nil {
		return chk.Err("porous: saturation, relative permeability and capillary pressure models must be all non-nil")
	}
	if pa == nil || pb == nil || perm == nil {
		return chk.Err("porous: phases and permeability must be all non-nil")
	}
	nf := msh.NFaces()
	if len(perm.Kf()) != nf {
		return chk.Err("porous: Kf must have %d values. %d is invalid", nf, len(perm.Kf()))
	}
	for k, pha := range []Phase{pa, pb} {
		if len(pha.MuF()) != nf || len(pha.RhoF()) != nf {
			return chk.Err("porous: μf and ρf of phase %d must have %d values. %d and %d are invalid", k, nf, len(pha.MuF()), len(pha.RhoF()))
		}
	}
	o.Sat, o.Cnd, o.Ret = sat, cnd, ret
	o.Pha, o.Phb, o.Perm = pa, pb, perm
	o.maf = fld.NewFace(msh)
	o.mbf = fld.NewFace(msh)
	o.mf = fld.NewFace(msh)
	o.laf = fld.NewFace(msh)
	o.lbf = fld.NewFace(msh)
	o.lf = fld.NewFace(msh)
	return
}

// Update computes all derived fields from the current bulk saturation
//  Note: the order is fixed: Se → kr → pc → mobilities
func (o *Model) Update() {
	o.Sat.Update()
	o.Cnd.Correct()
	o.Ret.Correct()
	o.UpdateMobilities()
	if o.Verbose {
		semin, semax := o.Sat.Se().MinMax()
		pcmin, pcmax := o.Ret.Pc().MinMax()
		mmin, mmax := o.mf.MinMax()
		io.Pf("porous: Se = [%g, %g]  pc = [%g, %g]  M = [%g, %g]\n", semin, semax, pcmin, pcmax, mmin, mmax)
	}
}

// UpdateMobilities computes the mobilities from the current relative permeabilities
//  Note: kr is not recomputed here
func (o *Model) UpdateMobilities() {
	kf := o.Perm.Kf()
	kraf, krbf := o.Cnd.Kraf(), o.Cnd.Krbf()
	μa, μb := o.Pha.MuF(), o.Phb.MuF()
	ρa, ρb := o.Pha.RhoF(), o.Phb.RhoF()
	for f := range o.mf {
		o.maf[f] = kf[f] * kraf[f] / μa[f]
		o.mbf[f] = kf[f] * krbf[f] / μb[f]
		o.mf[f] = o.maf[f] + o.mbf[f]
		o.laf[f] = o.maf[f] * ρa[f]
		o.lbf[f] = o.mbf[f] * ρb[f]
		o.lf[f] = o.laf[f] + o.lbf[f]
	}
}

// FractionalFlow computes the fractional flows fa = Maf/Mf and fb = Mbf/Mf.
// Both are zero where Mf is zero
func (o Model) FractionalFlow(fa, fb fld.Face) {
	for f, m := range o.mf {
		if m == 0 {
			fa[f], fb[f] = 0, 0
			continue
		}
		fa[f] = o.maf[f] / m
		fb[f] = o.mbf[f] / m
	}
}

// Se returns the reduced saturation
func (o Model) Se() fld.Cell { return o.Sat.Se() }

// Kra returns kra on cells
func (o Model) Kra() fld.Cell { return o.Cnd.Kra() }

// Krb returns krb on cells
func (o Model) Krb() fld.Cell { return o.Cnd.Krb() }

// Kraf returns kra on faces
func (o Model) Kraf() fld.Face { return o.Cnd.Kraf() }

// Krbf returns krb on faces
func (o Model) Krbf() fld.Face { return o.Cnd.Krbf() }

// DkraDS returns ∂kra/∂S
func (o Model) DkraDS() fld.Cell { return o.Cnd.DkraDS() }

// DkrbDS returns ∂krb/∂S
func (o Model) DkrbDS() fld.Cell { return o.Cnd.DkrbDS() }

// Pc returns the capillary pressure
func (o Model) Pc() fld.Cell { return o.Ret.Pc() }

// DpcDS returns ∂pc/∂S
func (o Model) DpcDS() fld.Cell { return o.Ret.DpcDS() }

// ActivateCapillarity tells whether capillarity is switched on
func (o Model) ActivateCapillarity() bool { return o.Ret.Active() }

// Kf returns the intrinsic permeability on faces
func (o Model) Kf() fld.Face { return o.Perm.Kf() }

// Maf returns the mobility of phase a on faces
func (o Model) Maf() fld.Face { return o.maf }

// Mbf returns the mobility of phase b on faces
func (o Model) Mbf() fld.Face { return o.mbf }

// Mf returns the total mobility on faces
func (o Model) Mf() fld.Face { return o.mf }

// Laf returns the mass mobility of phase a on faces
func (o Model) Laf() fld.Face { return o.laf }

// Lbf returns the mass mobility of phase b on faces
func (o Model) Lbf() fld.Face { return o.lbf }

// Lf returns the total mass mobility on faces
func (o Model) Lf() fld.Face { return o.lf }
