// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"

	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BrooksCorey implements the power law model
//   kra = kra0 + (kramax - kra0) Se^n
//   krb = krb0 + (krbmax - krb0) (1 - Se)^n
type BrooksCorey struct {
	ends
	n generic.Pair // exponent
}

// Lin implements linear curves; i.e. BrooksCorey with n = 1
type Lin struct {
	ends
}

// add models to factory
func init() {
	allocators["BrooksCorey"] = func() Model { return new(BrooksCorey) }
	allocators["linear"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *BrooksCorey) Init(msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if err = prms.Check("BrooksCorey", append(endNames, "n")...); err != nil {
		return
	}
	if o.n, err = prms.Pair(msh, "n", 0, true); err != nil {
		return chk.Err("BrooksCorey: %v", err)
	}
	for i, n := range o.n.C {
		if n < 1 {
			return chk.Err("BrooksCorey: exponent n must be greater than or equal to 1. n = %g at cell %d is invalid", n, i)
		}
	}
	return o.ends.init("BrooksCorey", msh, prms)
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "n", V: 3},
		&dbf.P{N: "kra0", V: 0},
		&dbf.P{N: "kramax", V: 1},
		&dbf.P{N: "krb0", V: 0},
		&dbf.P{N: "krbmax", V: 1},
	}
}

// Kra returns kra
func (o BrooksCorey) Kra(i int, face bool, se float64) float64 {
	return o.a(i, face, math.Pow(clip(se), o.n.At(i, face)))
}

// Krb returns krb
func (o BrooksCorey) Krb(i int, face bool, se float64) float64 {
	return o.b(i, face, math.Pow(1.0-clip(se), o.n.At(i, face)))
}

// DkraDse returns ∂kra/∂Se
func (o BrooksCorey) DkraDse(i int, se float64) float64 {
	n := o.n.C[i]
	return o.da(i, n*math.Pow(clip(se), n-1.0))
}

// DkrbDse returns ∂krb/∂Se
func (o BrooksCorey) DkrbDse(i int, se float64) float64 {
	n := o.n.C[i]
	return o.db(i, -n*math.Pow(1.0-clip(se), n-1.0))
}

// Init initialises model
func (o *Lin) Init(msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if err = prms.Check("linear", endNames...); err != nil {
		return
	}
	return o.ends.init("linear", msh, prms)
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "kra0", V: 0},
		&dbf.P{N: "kramax", V: 1},
		&dbf.P{N: "krb0", V: 0},
		&dbf.P{N: "krbmax", V: 1},
	}
}

// Kra returns kra
func (o Lin) Kra(i int, face bool, se float64) float64 { return o.a(i, face, clip(se)) }

// Krb returns krb
func (o Lin) Krb(i int, face bool, se float64) float64 { return o.b(i, face, 1.0-clip(se)) }

// DkraDse returns ∂kra/∂Se
func (o Lin) DkraDse(i int, se float64) float64 { return o.da(i, 1) }

// DkrbDse returns ∂krb/∂Se
func (o Lin) DkrbDse(i int, se float64) float64 { return o.db(i, -1) }
