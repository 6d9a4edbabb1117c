// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/LiXueying0309/porousMedia4Foam/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_run01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run01. hydrostatic column")

	sim, err := inp.ReadSim("inp/data/column.sim", "", false, false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	res, err := run(sim)
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	io.Pf("\n%s", res.CellsTable())
	io.Pf("\n%s", res.FacesTable())

	mdl := res.Set.Mdl
	for i, z := range res.Msh.Z() {
		if z < 0.5 {
			chk.Float64(tst, "Se below water table", 1e-15, mdl.Se()[i], 1)
			chk.Float64(tst, "pc below water table", 1e-15, mdl.Pc()[i], 0)
			continue
		}
		chk.Float64(tst, io.Sf("pc(%g)", z), 1e-8, mdl.Pc()[i], 1000*9.81*(z-0.5))
	}
	for f := range mdl.Mf() {
		if mdl.Mf()[f] != mdl.Maf()[f]+mdl.Mbf()[f] || mdl.Lf()[f] != mdl.Laf()[f]+mdl.Lbf()[f] {
			tst.Errorf("mobilities are not additive at face %d\n", f)
			return
		}
	}

	if chk.Verbose {
		res.Plot("/tmp/gofem", "run01")
	}
}

func Test_run02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("run02. layered column with uniform saturation")

	sim, err := inp.ReadSim("inp/data/layered.sim", "", false, false)
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	res, err := run(sim)
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	mdl := res.Set.Mdl
	chk.Float64(tst, "Se @ 0", 1e-15, mdl.Se()[0], 0.5)
	chk.Float64(tst, "Se @ 3", 1e-15, mdl.Se()[3], 0.5/0.9)
	if mdl.Maf()[4] <= mdl.Maf()[3] {
		tst.Errorf("top face in more permeable layer must have larger mobility than bottom face\n")
	}
}
