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

// VanGen implements the van Genuchten-Mualem model
//   kra = √Se (1 - (1 - Se^(1/m))^m)²
//   krb = √(1-Se) (1 - Se^(1/m))^(2m)
//  Note: the slopes are infinite at Se = 0 and Se = 1; thus derivatives are
//        computed with Se limited to [SeTol, 1-SeTol]
type VanGen struct {
	ends
	m     generic.Pair // exponent
	seTol float64      // tolerance to compute derivatives near end points
}

// add model to factory
func init() {
	allocators["VanGenuchten"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if err = prms.Check("VanGenuchten", append(endNames, "m", "n", "SeTol")...); err != nil {
		return
	}
	o.seTol = 1e-10
	if v, ok := prms.Scalar("SeTol"); ok {
		o.seTol = v
	}
	if o.seTol <= 0 || o.seTol >= 0.5 {
		return chk.Err("VanGenuchten: SeTol = %g is invalid; it must be within (0, 0.5)", o.seTol)
	}
	switch {
	case prms.Has("m") && prms.Has("n"):
		return chk.Err("VanGenuchten: either 'm' or 'n' must be given, not both")
	case prms.Has("m"):
		if o.m, err = prms.Pair(msh, "m", 0, true); err != nil {
			return
		}
	case prms.Has("n"):
		n, e := prms.Field(msh, "n")
		if e != nil {
			return e
		}
		for i := range n {
			if n[i] <= 1 {
				return chk.Err("VanGenuchten: n must be greater than 1. n = %g at cell %d is invalid", n[i], i)
			}
			n[i] = 1.0 - 1.0/n[i]
		}
		o.m.C = n
		o.m.F = fld.NewFace(msh)
		msh.Interpolate(o.m.F, o.m.C)
	default:
		return chk.Err("VanGenuchten: either 'm' or 'n' must be given in database of parameters")
	}
	for i, m := range o.m.C {
		if m <= 0 || m >= 1 {
			return chk.Err("VanGenuchten: m must be within (0, 1). m = %g at cell %d is invalid", m, i)
		}
	}
	return o.ends.init("VanGenuchten", msh, prms)
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	return dbf.Params{
		&dbf.P{N: "m", V: 0.5},
		&dbf.P{N: "kra0", V: 0},
		&dbf.P{N: "kramax", V: 1},
		&dbf.P{N: "krb0", V: 0},
		&dbf.P{N: "krbmax", V: 1},
	}
}

// Kra returns kra
func (o VanGen) Kra(i int, face bool, se float64) float64 {
	s := clip(se)
	m := o.m.At(i, face)
	a := 1.0 - math.Pow(1.0-math.Pow(s, 1.0/m), m)
	return o.a(i, face, math.Sqrt(s)*a*a)
}

// Krb returns krb
func (o VanGen) Krb(i int, face bool, se float64) float64 {
	s := clip(se)
	m := o.m.At(i, face)
	return o.b(i, face, math.Sqrt(1.0-s)*math.Pow(1.0-math.Pow(s, 1.0/m), 2.0*m))
}

// DkraDse returns ∂kra/∂Se
func (o VanGen) DkraDse(i int, se float64) float64 {
	s := o.limit(se)
	m := o.m.C[i]
	u := math.Pow(s, 1.0/m)
	w := 1.0 - u
	a := 1.0 - math.Pow(w, m)
	dadS := math.Pow(w, m-1.0) * u / s
	return o.da(i, 0.5*a*a/math.Sqrt(s)+2.0*math.Sqrt(s)*a*dadS)
}

// DkrbDse returns ∂krb/∂Se
func (o VanGen) DkrbDse(i int, se float64) float64 {
	s := o.limit(se)
	m := o.m.C[i]
	u := math.Pow(s, 1.0/m)
	w := 1.0 - u
	r := math.Sqrt(1.0 - s)
	return o.db(i, -0.5*math.Pow(w, 2.0*m)/r-2.0*r*math.Pow(w, 2.0*m-1.0)*u/s)
}

// limit returns se within [SeTol, 1-SeTol]
func (o VanGen) limit(se float64) float64 {
	if se < o.seTol {
		return o.seTol
	}
	if se > 1.0-o.seTol {
		return 1.0 - o.seTol
	}
	return se
}
