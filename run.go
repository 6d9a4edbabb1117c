// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/LiXueying0309/porousMedia4Foam/ana"
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/inp"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/porous"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/retention"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// Results holds the column and the models after one update
type Results struct {
	Msh *fld.Column   // column of cells
	Sb  fld.Cell      // bulk saturation
	Set *porous.Setup // models
}

// run builds the column, sets the initial bulk saturation and updates all models
func run(sim *inp.Simulation) (o *Results, err error) {

	// column and bulk saturation
	o = new(Results)
	if o.Msh, err = fld.NewColumn(sim.Column.Ncells, sim.Column.H); err != nil {
		return nil, err
	}
	o.Sb = fld.NewCell(o.Msh)
	o.Sb.Fill(sim.Ini.Sb)

	// models
	if o.Set, err = porous.NewFromDb(o.Msh, sim.MatModels, sim.Data.Medium, o.Sb); err != nil {
		return nil, err
	}
	mdl := o.Set.Mdl
	mdl.Verbose = sim.Data.Verbose

	// hydrostatic state
	if sim.Ini.Hydrost {
		inv, ok := mdl.Ret.Mdl.(retention.Inverse)
		if !ok {
			return nil, chk.Err("hydrostatic state requires a retention model computing Se(pc)")
		}
		var col ana.ColumnCapillary
		pha := o.Set.Pha
		if err = col.Init(pha.R0, pha.P0, pha.C, sim.Ini.Grav, sim.Ini.Wlevel, sim.Ini.Pg); err != nil {
			return nil, err
		}
		if err = col.Saturation(o.Sb, o.Msh.Z(), inv, mdl.Sat.Smin(), mdl.Sat.Smax()); err != nil {
			return nil, err
		}
		p := fld.NewCell(o.Msh)
		for i, z := range o.Msh.Z() {
			p[i], _ = col.Calc(z)
		}
		if err = pha.Update(p); err != nil {
			return nil, err
		}
	}

	// update all fields
	mdl.Update()
	return
}

// CellsTable returns a table with the values at cells
func (o Results) CellsTable() (l string) {
	mdl := o.Set.Mdl
	l = io.Sf("%8s%12s%12s%14s%14s%14s\n", "z", "Sb", "Se", "pc", "kra", "krb")
	for i, z := range o.Msh.Z() {
		l += io.Sf("%8.4f%12.6f%12.6f%14.6e%14.6e%14.6e\n", z, o.Sb[i], mdl.Se()[i], mdl.Pc()[i], mdl.Kra()[i], mdl.Krb()[i])
	}
	return
}

// FacesTable returns a table with the mobilities at faces
func (o Results) FacesTable() (l string) {
	mdl := o.Set.Mdl
	l = io.Sf("%6s%14s%14s%14s%14s%14s%14s\n", "face", "Ma", "Mb", "M", "La", "Lb", "L")
	for f := range mdl.Mf() {
		l += io.Sf("%6d%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e\n", f, mdl.Maf()[f], mdl.Mbf()[f], mdl.Mf()[f], mdl.Laf()[f], mdl.Lbf()[f], mdl.Lf()[f])
	}
	return
}

// Plot plots saturation and capillary pressure along the column
func (o Results) Plot(dirout, fnkey string) {
	Z := o.Msh.Z()
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(o.Sb, Z, &plt.A{C: "b", Ls: "-", M: "."})
	plt.Gll("$S_b$", "$z$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(o.Set.Mdl.Pc(), Z, &plt.A{C: "r", Ls: "-", M: "."})
	plt.Gll("$p_c$", "$z$", nil)
	plt.Save(dirout, fnkey)
}
