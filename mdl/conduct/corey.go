// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/fun/dbf"
)

// Corey implements Corey's curves
//   kra = Se⁴
//   krb = (1 - Se)² (1 - Se²)
type Corey struct {
	ends
}

// add model to factory
func init() {
	allocators["Corey"] = func() Model { return new(Corey) }
}

// Init initialises model
func (o *Corey) Init(msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if err = prms.Check("Corey", endNames...); err != nil {
		return
	}
	return o.ends.init("Corey", msh, prms)
}

// GetPrms gets (an example) of parameters
func (o Corey) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "kra0", V: 0},
		&dbf.P{N: "kramax", V: 1},
		&dbf.P{N: "krb0", V: 0},
		&dbf.P{N: "krbmax", V: 1},
	}
}

// Kra returns kra
func (o Corey) Kra(i int, face bool, se float64) float64 {
	s := clip(se)
	s2 := s * s
	return o.a(i, face, s2*s2)
}

// Krb returns krb
func (o Corey) Krb(i int, face bool, se float64) float64 {
	s := clip(se)
	return o.b(i, face, (1.0-s)*(1.0-s)*(1.0-s*s))
}

// DkraDse returns ∂kra/∂Se
func (o Corey) DkraDse(i int, se float64) float64 {
	s := clip(se)
	return o.da(i, 4.0*s*s*s)
}

// DkrbDse returns ∂krb/∂Se
func (o Corey) DkrbDse(i int, se float64) float64 {
	s := clip(se)
	return o.db(i, -2.0*(1.0-s)*(1.0-s)*(1.0+2.0*s))
}
