// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satur

import (
	"testing"

	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_satur01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("satur01. Se within [0,1] and monotone")

	np := 41
	msh, _ := fld.NewColumn(np, 1)
	Sb := fld.NewCell(msh)
	copy(Sb, utl.LinSpace(0.1, 0.9, np))
	Sb[0], Sb[np-1] = 0.1, 0.9

	var tmp Model
	mdl, err := New(msh, generic.NewCoeffs(tmp.GetPrms(true)), Sb)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	mdl.Update()

	se := mdl.Se()
	chk.Float64(tst, "Se(Smin)", 1e-15, se[0], 0)
	chk.Float64(tst, "Se(Smax)", 1e-15, se[np-1], 1)
	for i := 1; i < np; i++ {
		if se[i] < 0 || se[i] > 1 {
			tst.Errorf("Se = %g is out of range\n", se[i])
			return
		}
		if se[i] < se[i-1] {
			tst.Errorf("Se must be non-decreasing: Se[%d]=%g < Se[%d]=%g\n", i, se[i], i-1, se[i-1])
			return
		}
	}

	dse := mdl.DSeDSb()
	chk.Float64(tst, "dSe(Smin)", 1e-15, dse[0], 0)
	chk.Float64(tst, "dSe(Smax)", 1e-15, dse[np-1], 0)
	for i := 1; i < np-1; i++ {
		chk.Float64(tst, io.Sf("dSe%d", i), 1e-12, dse[i], 1.0/0.8)
	}
}

func Test_satur02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("satur02. scenario and clipping")

	msh, _ := fld.NewColumn(4, 1)
	Sb := fld.NewCell(msh)
	copy(Sb, []float64{0.5, 0.0, 1.0, 0.3})

	mdl, err := New(msh, generic.NewCoeffs(dbf.Params{
		&dbf.P{N: "Smin", V: 0.1},
		&dbf.P{N: "Smax", V: 0.9},
	}), Sb)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	mdl.Update()
	io.Pforan("Se = %v\n", mdl.Se())
	chk.Float64(tst, "Se(0.5)", 1e-15, mdl.Se()[0], 0.5)
	chk.Float64(tst, "Se(0.0)", 1e-15, mdl.Se()[1], 0)
	chk.Float64(tst, "Se(1.0)", 1e-15, mdl.Se()[2], 1)
	chk.Float64(tst, "Se(0.3)", 1e-15, mdl.Se()[3], 0.25)
	chk.Float64(tst, "dSe(0.5)", 1e-15, mdl.DSeDSb()[0], 1.25)
	chk.Float64(tst, "dSe(0.0)", 1e-15, mdl.DSeDSb()[1], 0)
	chk.Float64(tst, "dSe(1.0)", 1e-15, mdl.DSeDSb()[2], 0)

	// the bulk saturation is read, not copied
	Sb[1] = 0.9
	mdl.Update()
	chk.Float64(tst, "Se(0.9)", 1e-15, mdl.Se()[1], 1)
	chk.Float64(tst, "dSe(0.9)", 1e-15, mdl.DSeDSb()[1], 0)
}

func Test_satur03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("satur03. heterogeneous end points and invalid input")

	msh, _ := fld.NewColumn(2, 1)
	Sb := fld.NewCell(msh)
	Sb.Fill(0.5)

	mdl, err := New(msh, &generic.Coeffs{
		Prms:  dbf.Params{&dbf.P{N: "Smax", V: 1}},
		Cells: map[string][]float64{"Smin": {0, 0.25}},
	}, Sb)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	mdl.Update()
	chk.Float64(tst, "Se0", 1e-15, mdl.Se()[0], 0.5)
	chk.Float64(tst, "Se1", 1e-15, mdl.Se()[1], 1.0/3.0)

	bad := []dbf.Params{
		{&dbf.P{N: "Smin", V: 0.5}, &dbf.P{N: "Smax", V: 0.5}},
		{&dbf.P{N: "Smin", V: 0.6}, &dbf.P{N: "Smax", V: 0.4}},
		{&dbf.P{N: "Smin", V: -0.1}, &dbf.P{N: "Smax", V: 0.9}},
		{&dbf.P{N: "Smin", V: 0.1}},
		{&dbf.P{N: "Smin", V: 0.1}, &dbf.P{N: "Smax", V: 0.9}, &dbf.P{N: "Sr", V: 0.1}},
	}
	for k, prms := range bad {
		_, err = New(msh, generic.NewCoeffs(prms), Sb)
		if err == nil {
			tst.Errorf("configuration %d should fail\n", k)
			return
		}
		io.Pforan("%d: %v\n", k, err)
	}

	if _, err = New(msh, generic.NewCoeffs(mdl.GetPrms(false)), fld.Cell{0.5}); err == nil {
		tst.Errorf("wrong size of Sb should fail\n")
	}
}
