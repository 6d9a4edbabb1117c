// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"testing"

	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// newModel allocates and initialises a model on a one-cell mesh
func newModel(tst *testing.T, name string, prms dbf.Params) (mdl Model) {
	msh, _ := fld.NewColumn(1, 1)
	mdl, err := New(name)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	if prms == nil {
		prms = mdl.GetPrms(true)
	}
	err = mdl.Init(msh, generic.NewCoeffs(prms))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return nil
	}
	return
}

// checkDerivs compares analytical derivatives with central differences
func checkDerivs(tst *testing.T, mdl Model, se0, sef float64) {
	h := 1e-5
	for _, se := range utl.LinSpace(se0, sef, 11) {
		ana := mdl.DpcDse(0, se)
		num := (mdl.Pc(0, se+h) - mdl.Pc(0, se-h)) / (2.0 * h)
		dif := math.Abs(ana-num) / math.Max(1, math.Abs(ana))
		if chk.Verbose {
			io.Pf("Se = %.3f  ana = %23.15e  num = %23.15e  dif = %g\n", se, ana, num, dif)
		}
		if dif > 1e-5 {
			tst.Errorf("dpc/dSe @ %g failed: ana = %g, num = %g\n", se, ana, num)
			return
		}
	}
}

// checkFinite checks that pc and its derivative are finite over [0,1]
func checkFinite(tst *testing.T, mdl Model) {
	for _, se := range append(utl.LinSpace(0, 1, 101), 1e-300, 1-1e-16) {
		pc, dpc := mdl.Pc(0, se), mdl.DpcDse(0, se)
		if math.IsNaN(pc) || math.IsInf(pc, 0) || math.IsNaN(dpc) || math.IsInf(dpc, 0) {
			tst.Errorf("pc and dpc/dSe must be finite. Se=%g: pc=%g dpc=%g\n", se, pc, dpc)
			return
		}
	}
}

// checkInverse checks that Se(pc(Se)) = Se
func checkInverse(tst *testing.T, mdl Model, se0, sef float64) {
	inv, ok := mdl.(Inverse)
	if !ok {
		tst.Errorf("model does not implement Inverse\n")
		return
	}
	for _, se := range utl.LinSpace(se0, sef, 11) {
		chk.Float64(tst, io.Sf("Se(pc(%.2f))", se), 1e-12, inv.Se(0, mdl.Pc(0, se)), se)
	}
}

func Test_vg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg01. van Genuchten")

	mdl := newModel(tst, "VanGenuchten", dbf.Params{
		&dbf.P{N: "m", V: 0.5},
		&dbf.P{N: "n", V: 2},
		&dbf.P{N: "pc0", V: 1000},
	})
	if mdl == nil {
		return
	}

	// reference values
	chk.Float64(tst, "pc(0.5)", 1e-12, mdl.Pc(0, 0.5), 1000*math.Sqrt(3))
	chk.Float64(tst, "pc(1)", 1e-15, mdl.Pc(0, 1), 0)
	chk.Float64(tst, "dpc(1)", 1e-15, mdl.DpcDse(0, 1), 0)
	chk.Float64(tst, "pc(0)", 1e-15, mdl.Pc(0, 0), PCMAX)
	chk.Float64(tst, "dpc(0)", 1e-15, mdl.DpcDse(0, 0), 0)

	// strictly decreasing in (0,1)
	Se := utl.LinSpace(0.01, 0.99, 99)
	for k := 1; k < len(Se); k++ {
		if mdl.Pc(0, Se[k]) >= mdl.Pc(0, Se[k-1]) {
			tst.Errorf("pc must be strictly decreasing. Se=%g\n", Se[k])
			return
		}
	}

	// deterministic
	for _, se := range Se {
		if mdl.Pc(0, se) != mdl.Pc(0, se) {
			tst.Errorf("pc must be deterministic\n")
			return
		}
	}

	checkFinite(tst, mdl)
	checkDerivs(tst, mdl, 0.1, 0.9)
	checkInverse(tst, mdl, 0.05, 0.95)

	// alpha = 1/pc0 and m = 1 - 1/n
	mdlB := newModel(tst, "VanGenuchten", dbf.Params{
		&dbf.P{N: "n", V: 2},
		&dbf.P{N: "alpha", V: 0.001},
	})
	if mdlB == nil {
		return
	}
	for _, se := range utl.LinSpace(0, 1, 11) {
		chk.Float64(tst, io.Sf("pc(%g)", se), 1e-9, mdlB.Pc(0, se), mdl.Pc(0, se))
	}

	if chk.Verbose {
		Plot(mdl, 0, "/tmp/gofem", "ret_vg01", 101, nil)
	}
}

func Test_vg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg02. van Genuchten with cap")

	mdl := newModel(tst, "VanGenuchten", nil)
	if mdl == nil {
		return
	}
	pcmax := 1e+6
	chk.Float64(tst, "pc(0)", 1e-15, mdl.Pc(0, 0), pcmax)
	chk.Float64(tst, "pc(1e-8)", 1e-15, mdl.Pc(0, 1e-8), pcmax)
	chk.Float64(tst, "dpc(1e-8)", 1e-15, mdl.DpcDse(0, 1e-8), 0)
	chk.Float64(tst, "Se(pcmax)", 1e-15, mdl.(Inverse).Se(0, 2*pcmax), mdl.(Inverse).Se(0, pcmax))
	chk.Float64(tst, "Se(0)", 1e-15, mdl.(Inverse).Se(0, 0), 1)

	// non-increasing over [0,1] and approaching the cap as Se → 0
	Se := utl.LinSpace(0, 1, 1001)
	for k := 1; k < len(Se); k++ {
		if mdl.Pc(0, Se[k]) > mdl.Pc(0, Se[k-1]) {
			tst.Errorf("pc must be non-increasing. Se=%g\n", Se[k])
			return
		}
	}
	if mdl.Pc(0, 1e-3) < mdl.Pc(0, 1e-2) {
		tst.Errorf("pc must grow as Se decreases\n")
	}
	checkFinite(tst, mdl)
}

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01. Brooks-Corey")

	mdl := newModel(tst, "BrooksCorey", nil)
	if mdl == nil {
		return
	}
	chk.Float64(tst, "pc(1)", 1e-15, mdl.Pc(0, 1), 1000)
	chk.Float64(tst, "pc(0.25)", 1e-12, mdl.Pc(0, 0.25), 2000)
	chk.Float64(tst, "pc(0)", 1e-15, mdl.Pc(0, 0), 1e+6)
	checkFinite(tst, mdl)
	checkDerivs(tst, mdl, 0.1, 0.9)
	checkInverse(tst, mdl, 0.05, 1)
	chk.Float64(tst, "Se(pc < pc0)", 1e-15, mdl.(Inverse).Se(0, 500), 1)
}

func Test_lin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin01. linear")

	mdl := newModel(tst, "linear", nil)
	if mdl == nil {
		return
	}
	chk.Float64(tst, "pc(1)", 1e-15, mdl.Pc(0, 1), 0)
	chk.Float64(tst, "pc(0.25)", 1e-12, mdl.Pc(0, 0.25), 750)
	chk.Float64(tst, "pc(0)", 1e-15, mdl.Pc(0, 0), 1000)
	chk.Float64(tst, "dpc(0.5)", 1e-15, mdl.DpcDse(0, 0.5), -1000)
	checkFinite(tst, mdl)
	checkDerivs(tst, mdl, 0.1, 0.9)
	checkInverse(tst, mdl, 0, 1)
}

func Test_fields01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fields01. capillary pressure on cells")

	msh, _ := fld.NewColumn(3, 1)
	Se := fld.NewCell(msh)
	copy(Se, []float64{0.2, 0.5, 1})
	dSe := fld.NewCell(msh)
	dSe.Fill(1.25)

	prms := &generic.Coeffs{
		Prms: dbf.Params{&dbf.P{N: "n", V: 2}, &dbf.P{N: "pc0", V: 1000}},
	}
	o, err := NewFields(msh, "VanGenuchten", prms, Se, dSe)
	if err != nil {
		tst.Errorf("NewFields failed: %v\n", err)
		return
	}
	if !o.Active() {
		tst.Errorf("capillarity must be active by default\n")
		return
	}
	o.Correct()
	for i, se := range Se {
		chk.Float64(tst, "pc", 1e-15, o.Pc()[i], o.Mdl.Pc(i, se))
		chk.Float64(tst, "dpc/dS", 1e-15, o.DpcDS()[i], o.Mdl.DpcDse(i, se)*1.25)
	}
	chk.Float64(tst, "pc(0.5)", 1e-12, o.Pc()[1], 1000*math.Sqrt(3))
	chk.Float64(tst, "pc(1)", 1e-15, o.Pc()[2], 0)

	// values follow Se
	Se[2] = 0.5
	o.Correct()
	chk.Float64(tst, "pc(0.5) after update", 1e-12, o.Pc()[2], 1000*math.Sqrt(3))
}

func Test_fields02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fields02. deactivated capillarity and heterogeneous pc0")

	msh, _ := fld.NewColumn(2, 1)
	Se := fld.NewCell(msh)
	Se.Fill(0.5)
	dSe := fld.NewCell(msh)
	dSe.Fill(1)

	prms := &generic.Coeffs{
		Prms:  dbf.Params{&dbf.P{N: "m", V: 0.5}, &dbf.P{N: "n", V: 2}, &dbf.P{N: ACTIVATE, V: 0}},
		Cells: map[string][]float64{"pc0": {1000, 2000}},
	}
	o, err := NewFields(msh, "VanGenuchten", prms, Se, dSe)
	if err != nil {
		tst.Errorf("NewFields failed: %v\n", err)
		return
	}
	if o.Active() {
		tst.Errorf("capillarity must be inactive\n")
		return
	}
	o.Correct()
	chk.Ints(tst, "sizes", []int{len(o.Pc()), len(o.DpcDS())}, []int{2, 2})
	for i := 0; i < 2; i++ {
		chk.Float64(tst, "pc", 1e-15, o.Pc()[i], 0)
		chk.Float64(tst, "dpc/dS", 1e-15, o.DpcDS()[i], 0)
	}

	// the curve is still available and heterogeneous
	chk.Float64(tst, "pc @ 0", 1e-12, o.Mdl.Pc(0, 0.5), 1000*math.Sqrt(3))
	chk.Float64(tst, "pc @ 1", 1e-12, o.Mdl.Pc(1, 0.5), 2000*math.Sqrt(3))
}

func Test_retention02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("retention02. invalid configurations")

	msh, _ := fld.NewColumn(1, 1)
	Se, dSe := fld.NewCell(msh), fld.NewCell(msh)

	if _, err := NewFields(msh, "unknown", nil, Se, dSe); err == nil {
		tst.Errorf("unknown model should fail\n")
	}

	bad := []struct {
		name string
		prms dbf.Params
	}{
		{"VanGenuchten", nil},
		{"VanGenuchten", dbf.Params{&dbf.P{N: "n", V: 2}}},
		{"VanGenuchten", dbf.Params{&dbf.P{N: "n", V: 2}, &dbf.P{N: "pc0", V: 1}, &dbf.P{N: "alpha", V: 1}}},
		{"VanGenuchten", dbf.Params{&dbf.P{N: "n", V: 1}, &dbf.P{N: "pc0", V: 1}}},
		{"VanGenuchten", dbf.Params{&dbf.P{N: "n", V: 2}, &dbf.P{N: "m", V: 1}, &dbf.P{N: "pc0", V: 1}}},
		{"VanGenuchten", dbf.Params{&dbf.P{N: "n", V: 2}, &dbf.P{N: "pc0", V: -1}}},
		{"VanGenuchten", dbf.Params{&dbf.P{N: "n", V: 2}, &dbf.P{N: "alpha", V: 0}}},
		{"VanGenuchten", dbf.Params{&dbf.P{N: "n", V: 2}, &dbf.P{N: "pc0", V: 1}, &dbf.P{N: "PC0", V: 1}}},
		{"BrooksCorey", dbf.Params{&dbf.P{N: "pc0", V: 1}}},
		{"BrooksCorey", dbf.Params{&dbf.P{N: "pc0", V: 1}, &dbf.P{N: "lambda", V: 0}}},
		{"BrooksCorey", dbf.Params{&dbf.P{N: "pc0", V: 10}, &dbf.P{N: "lambda", V: 2}, &dbf.P{N: "pcMax", V: 5}}},
		{"linear", dbf.Params{&dbf.P{N: "pc0", V: 10}}},
		{"linear", dbf.Params{&dbf.P{N: "pc0", V: 10}, &dbf.P{N: "pcMax", V: 10}}},
	}
	for k, b := range bad {
		_, err := NewFields(msh, b.name, generic.NewCoeffs(b.prms), Se, dSe)
		if err == nil {
			tst.Errorf("configuration %d should fail\n", k)
			return
		}
		io.Pforan("%d: %v\n", k, err)
	}

	if _, err := NewFields(msh, "linear", nil, Se, fld.Cell{}); err == nil {
		tst.Errorf("wrong size of ∂Se/∂Sb should fail\n")
	}
}
