// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// KMIN is the smallest intrinsic permeability accepted by Medium
const KMIN = 1e-25

// Permeability supplies the intrinsic permeability on faces
type Permeability interface {
	Kf() fld.Face // intrinsic permeability on faces
}

// Medium holds the porosity and intrinsic permeability of the solid skeleton
type Medium struct {
	eps fld.Cell // porosity
	k   fld.Cell // intrinsic permeability on cells
	kf  fld.Face // intrinsic permeability on faces
}

// NewMedium returns a new medium. Both "eps" and "K" may vary from cell to cell
func NewMedium(msh fld.Mesh, prms *generic.Coeffs) (o *Medium, err error) {
	if msh == nil {
		return nil, chk.Err("medium: mesh must be non-nil")
	}
	if err = prms.Check("medium", "eps", "K"); err != nil {
		return
	}
	o = new(Medium)
	if o.eps, err = prms.Field(msh, "eps"); err != nil {
		return nil, err
	}
	K, err := prms.Pair(msh, "K", 0, true)
	if err != nil {
		return nil, err
	}
	o.k, o.kf = K.C, K.F
	for i := range o.eps {
		if o.eps[i] <= 0 || o.eps[i] > 1 {
			return nil, chk.Err("medium: porosity must be within (0, 1]. eps = %g at cell %d is invalid", o.eps[i], i)
		}
		if o.k[i] < KMIN {
			return nil, chk.Err("medium: K must be greater than or equal to %g. K = %g at cell %d is invalid", KMIN, o.k[i], i)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Medium) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "eps", V: 0.3}, // [-]
		&dbf.P{N: "K", V: 1e-12}, // [m²]
	}
}

// Eps returns the porosity
func (o Medium) Eps() fld.Cell { return o.eps }

// K returns the intrinsic permeability on cells
func (o Medium) K() fld.Cell { return o.k }

// Kf returns the intrinsic permeability on faces
func (o Medium) Kf() fld.Face { return o.kf }
