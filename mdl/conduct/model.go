// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements relative permeability models for two-phase flow
// in porous media. Phase "a" is the wetting phase whose reduced saturation is
// Se; phase "b" is the non-wetting phase with saturation 1 - Se.
package conduct

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines relative permeability curves
//  Note: i is a cell index, or a face index if face == true
type Model interface {
	Init(msh fld.Mesh, prms *generic.Coeffs) error // Init initialises this structure
	GetPrms(example bool) dbf.Params               // gets (an example) of parameters
	Kra(i int, face bool, se float64) float64      // Kra returns kra
	Krb(i int, face bool, se float64) float64      // Krb returns krb
	DkraDse(i int, se float64) float64             // DkraDse returns ∂kra/∂Se at cell i
	DkrbDse(i int, se float64) float64             // DkrbDse returns ∂krb/∂Se at cell i
}

// New conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// endpoint parameter names shared by all models
var endNames = []string{"kra0", "kramax", "krb0", "krbmax"}

// ends holds the end points of both curves
//   kra(0) = kra0  and  kra(1) = kramax
//   krb(1) = krb0  and  krb(0) = krbmax
type ends struct {
	kra0, kramax generic.Pair
	krb0, krbmax generic.Pair
}

// init reads and checks the end points
func (o *ends) init(model string, msh fld.Mesh, prms *generic.Coeffs) (err error) {
	if o.kra0, err = prms.Pair(msh, "kra0", 0, false); err != nil {
		return
	}
	if o.kramax, err = prms.Pair(msh, "kramax", 1, false); err != nil {
		return
	}
	if o.krb0, err = prms.Pair(msh, "krb0", 0, false); err != nil {
		return
	}
	if o.krbmax, err = prms.Pair(msh, "krbmax", 1, false); err != nil {
		return
	}
	for i := range o.kra0.C {
		if o.kra0.C[i] < 0 || o.kramax.C[i] > 1 || o.kra0.C[i] >= o.kramax.C[i] {
			return chk.Err("%s: end points must satisfy 0 <= kra0 < kramax <= 1. kra0 = %g and kramax = %g at cell %d are invalid", model, o.kra0.C[i], o.kramax.C[i], i)
		}
		if o.krb0.C[i] < 0 || o.krbmax.C[i] > 1 || o.krb0.C[i] >= o.krbmax.C[i] {
			return chk.Err("%s: end points must satisfy 0 <= krb0 < krbmax <= 1. krb0 = %g and krbmax = %g at cell %d are invalid", model, o.krb0.C[i], o.krbmax.C[i], i)
		}
	}
	return
}

// a scales a unit curve f ∈ [0,1] of phase a
func (o ends) a(i int, face bool, f float64) float64 {
	lo := o.kra0.At(i, face)
	return lo + (o.kramax.At(i, face)-lo)*f
}

// b scales a unit curve f ∈ [0,1] of phase b
func (o ends) b(i int, face bool, f float64) float64 {
	lo := o.krb0.At(i, face)
	return lo + (o.krbmax.At(i, face)-lo)*f
}

// da scales the derivative of a unit curve of phase a
func (o ends) da(i int, df float64) float64 {
	return (o.kramax.C[i] - o.kra0.C[i]) * df
}

// db scales the derivative of a unit curve of phase b
func (o ends) db(i int, df float64) float64 {
	return (o.krbmax.C[i] - o.krb0.C[i]) * df
}

// clip returns se within [0, 1]
func clip(se float64) float64 {
	if se < 0 {
		return 0
	}
	if se > 1 {
		return 1
	}
	return se
}
