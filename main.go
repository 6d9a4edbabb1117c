// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/LiXueying0309/porousMedia4Foam/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, false)

	// message
	if verbose {
		io.Pfyel("\nporousMedia4Foam -- constitutive core of two-phase flow in porous media\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
		))
	}

	// simulation data
	alias := ""
	sim, err := inp.ReadSim(fnamepath, alias, erasePrev, true)
	if err != nil {
		chk.Panic("ReadSim failed:\n%v", err)
	}

	// run
	res, err := run(sim)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if verbose {
		io.Pf("\n%s", res.CellsTable())
		io.Pf("\n%s", res.FacesTable())
	}
	if sim.Data.Plot {
		res.Plot(sim.DirOut, sim.Key)
	}
}
