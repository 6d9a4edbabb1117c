// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid implements models for the viscosity and density of a fluid phase
package fluid

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a fluid phase with constant viscosity (μ) and intrinsic density (R)
// depending on pressure (p) as follows:
//   R(p) = R0 + C・(p - p0)   thus   dR/dp = C
//  Note: C = 0 means incompressible fluid
type Model struct {

	// material data
	R0  float64 // intrinsic density corresponding to p0
	P0  float64 // pressure corresponding to R0
	C   float64 // compressibility coefficient; e.g. R0/Kbulk or M/(R・θ)
	Mu  float64 // dynamic viscosity
	Gas bool    // is gas instead of liquid?

	// fields
	msh  fld.Mesh
	rho  fld.Cell // density on cells
	mu   fld.Cell // viscosity on cells
	rhof fld.Face // density on faces
	muf  fld.Face // viscosity on faces
}

// New returns a new phase
func New(msh fld.Mesh, prms *generic.Coeffs) (o *Model, err error) {
	o = new(Model)
	err = o.Init(msh, prms)
	return
}

// Init initialises this structure and sets the fields at p = P0
func (o *Model) Init(msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if msh == nil {
		return chk.Err("fluid: mesh must be non-nil")
	}
	if err = prms.Check("fluid", "R0", "P0", "C", "mu", "gas"); err != nil {
		return
	}
	var ok bool
	if o.R0, ok = prms.Scalar("R0"); !ok {
		return chk.Err("fluid: parameter 'R0' is required")
	}
	if o.Mu, ok = prms.Scalar("mu"); !ok {
		return chk.Err("fluid: parameter 'mu' is required")
	}
	o.P0, _ = prms.Scalar("P0")
	o.C, _ = prms.Scalar("C")
	o.Gas = prms.Bool("gas", false)
	if o.R0 <= 0 {
		return chk.Err("fluid: R0 must be positive. R0 = %g is invalid", o.R0)
	}
	if o.Mu <= 0 {
		return chk.Err("fluid: mu must be positive. mu = %g is invalid", o.Mu)
	}
	if o.C < 0 {
		return chk.Err("fluid: C must be non-negative. C = %g is invalid", o.C)
	}
	o.msh = msh
	o.rho = fld.NewCell(msh)
	o.mu = fld.NewCell(msh)
	o.rhof = fld.NewFace(msh)
	o.muf = fld.NewFace(msh)
	o.rho.Fill(o.R0)
	o.rhof.Fill(o.R0)
	o.mu.Fill(o.Mu)
	o.muf.Fill(o.Mu)
	return
}

// GetPrms gets (an example of) parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
//  Note:
//   Gas variable is used to return dry air properties instead of water
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		if o.Gas {
			return dbf.Params{ // dry air
				&dbf.P{N: "R0", V: 0.0012}, // [Mg/m³]
				&dbf.P{N: "P0", V: 0.0},    // [kPa]
				&dbf.P{N: "C", V: 1.17e-5}, // [Mg/(m³・kPa)]
				&dbf.P{N: "mu", V: 1.8e-8}, // [kPa・s]
				&dbf.P{N: "gas", V: 1},     // [-]
			}
		}
		return dbf.Params{ // water
			&dbf.P{N: "R0", V: 1.0},    // [Mg/m³]
			&dbf.P{N: "P0", V: 0.0},    // [kPa]
			&dbf.P{N: "C", V: 4.53e-7}, // [Mg/(m³・kPa)]
			&dbf.P{N: "mu", V: 1.0e-6}, // [kPa・s]
			&dbf.P{N: "gas", V: 0},     // [-]
		}
	}
	var gas float64
	if o.Gas {
		gas = 1
	}
	return dbf.Params{
		&dbf.P{N: "R0", V: o.R0},
		&dbf.P{N: "P0", V: o.P0},
		&dbf.P{N: "C", V: o.C},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "gas", V: gas},
	}
}

// Dens computes the intrinsic density corresponding to pressure p
func (o Model) Dens(p float64) float64 {
	return o.R0 + o.C*(p-o.P0)
}

// Update computes the density on cells and faces from the pressure on cells
func (o *Model) Update(p fld.Cell) (err error) {
	if len(p) != len(o.rho) {
		return chk.Err("fluid: pressure must have %d values. %d is invalid", len(o.rho), len(p))
	}
	for i, pi := range p {
		o.rho[i] = o.Dens(pi)
	}
	o.msh.Interpolate(o.rhof, o.rho)
	return
}

// RhoC returns the density on cells
func (o Model) RhoC() fld.Cell { return o.rho }

// MuC returns the viscosity on cells
func (o Model) MuC() fld.Cell { return o.mu }

// RhoF returns the density on faces
func (o Model) RhoF() fld.Face { return o.rhof }

// MuF returns the viscosity on faces
func (o Model) MuF() fld.Face { return o.muf }
