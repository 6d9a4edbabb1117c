// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/porousMedia4Foam
	Medium  string `json:"medium"`  // name of medium material; first medium if empty
	Verbose bool   `json:"verbose"` // show summary of fields after each update
	Plot    bool   `json:"plot"`    // plot profiles along the column
}

// ColumnData holds the definition of a vertical column of cells
type ColumnData struct {
	Ncells int     `json:"ncells"` // number of cells
	H      float64 `json:"h"`      // height of column
}

// IniData holds data for setting the initial bulk saturation
//  Note: if Hydrost is false, the uniform Sb is used
type IniData struct {
	Hydrost bool    `json:"hydrost"` // hydrostatic state with the water table at Wlevel
	Wlevel  float64 `json:"wlevel"`  // elevation of water table (pc = 0)
	Pg      float64 `json:"pg"`      // pressure of phase b (gas) above water table
	Grav    float64 `json:"grav"`    // gravity acceleration (positive constant)
	Sb      float64 `json:"sb"`      // uniform bulk saturation
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // stores global simulation data
	Column ColumnData `json:"column"` // column of cells
	Ini    IniData    `json:"ini"`    // initial state

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	MatModels *MatDb // materials
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o = new(Simulation)
	o.Ini.Grav = 10.0

	// decode
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	fnkey := io.FnKey(filepath.Base(simfilepath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/porousMedia4Foam/" + fnkey
	}
	if createDirOut {
		if err = os.MkdirAll(o.DirOut, 0777); err != nil {
			return nil, chk.Err("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// check data
	if o.Column.Ncells < 1 || o.Column.H <= 0 {
		return nil, chk.Err("ReadSim: column must have ncells >= 1 and h > 0. ncells = %d and h = %g are invalid", o.Column.Ncells, o.Column.H)
	}
	if o.Ini.Grav <= 0 {
		return nil, chk.Err("ReadSim: gravity constant grav = %g is invalid", o.Ini.Grav)
	}
	if !o.Ini.Hydrost && (o.Ini.Sb < 0 || o.Ini.Sb > 1) {
		return nil, chk.Err("ReadSim: uniform bulk saturation sb = %g is invalid", o.Ini.Sb)
	}

	// read materials database
	if o.MatModels, err = ReadMat(dir, o.Data.Matfile); err != nil {
		return nil, chk.Err("loading materials failed:\n%v", err)
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
