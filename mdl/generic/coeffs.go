// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package generic implements a collector of model coefficients that may be
// uniform or vary from cell to cell (heterogeneous media)
package generic

import (
	"math"
	"sort"

	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Coeffs holds the parameters of one model
//  Cells has priority over Prms when a name appears in both
type Coeffs struct {
	Prms  dbf.Params           `json:"prms"`  // uniform parameters
	Cells map[string][]float64 `json:"cells"` // spatially varying parameters; one value per cell
}

// NewCoeffs returns coefficients holding uniform parameters only
func NewCoeffs(prms dbf.Params) *Coeffs {
	return &Coeffs{Prms: prms}
}

// Has tells whether parameter is given, either uniform or per cell
func (o *Coeffs) Has(name string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.Cells[name]; ok {
		return true
	}
	return o.Prms.Find(name) != nil
}

// Scalar returns a uniform parameter
func (o *Coeffs) Scalar(name string) (val float64, found bool) {
	if o == nil {
		return
	}
	if p := o.Prms.Find(name); p != nil {
		return p.V, true
	}
	return
}

// Bool returns a flag given by a uniform parameter; V > 0 means true
func (o *Coeffs) Bool(name string, def bool) bool {
	if v, ok := o.Scalar(name); ok {
		return v > 0
	}
	return def
}

// Field returns the values of a required parameter, one per cell
func (o *Coeffs) Field(msh fld.Mesh, name string) (res fld.Cell, err error) {
	if !o.Has(name) {
		return nil, chk.Err("parameter %q is required but was not given", name)
	}
	return o.FieldOrDefault(msh, name, 0)
}

// FieldOrDefault returns the values of an optional parameter, one per cell
func (o *Coeffs) FieldOrDefault(msh fld.Mesh, name string, def float64) (res fld.Cell, err error) {
	res = fld.NewCell(msh)
	if o != nil {
		if vals, ok := o.Cells[name]; ok {
			if len(vals) != len(res) {
				return nil, chk.Err("parameter %q has %d values but mesh has %d cells", name, len(vals), len(res))
			}
			for i, v := range vals {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, chk.Err("parameter %q has invalid value %g at cell %d", name, v, i)
				}
			}
			res.Set(vals)
			return
		}
	}
	if v, ok := o.Scalar(name); ok {
		def = v
	}
	res.Fill(def)
	return
}

// Check returns an error if any parameter is not among the allowed names
func (o *Coeffs) Check(model string, allowed ...string) error {
	if o == nil {
		return nil
	}
	ok := make(map[string]bool)
	for _, a := range allowed {
		ok[a] = true
	}
	for _, p := range o.Prms {
		if !ok[p.N] {
			return chk.Err("%s: parameter named %q is incorrect", model, p.N)
		}
	}
	names := make([]string, 0, len(o.Cells))
	for n := range o.Cells {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		if !ok[n] {
			return chk.Err("%s: spatially varying parameter named %q is incorrect", model, n)
		}
	}
	return nil
}

// Pair holds a parameter on cells and its interpolation onto faces
type Pair struct {
	C fld.Cell // cell values
	F fld.Face // face values
}

// At returns the value at cell i or, if face == true, at face i
func (o Pair) At(i int, face bool) float64 {
	if face {
		return o.F[i]
	}
	return o.C[i]
}

// Pair returns a parameter on cells and faces. def is used if the parameter
// is not given, unless required is true
func (o *Coeffs) Pair(msh fld.Mesh, name string, def float64, required bool) (res Pair, err error) {
	if required {
		res.C, err = o.Field(msh, name)
	} else {
		res.C, err = o.FieldOrDefault(msh, name, def)
	}
	if err != nil {
		return
	}
	res.F = fld.NewFace(msh)
	msh.Interpolate(res.F, res.C)
	return
}

// Without returns a copy of the coefficients without the given names
func (o *Coeffs) Without(names ...string) *Coeffs {
	if o == nil {
		return nil
	}
	skip := make(map[string]bool)
	for _, n := range names {
		skip[n] = true
	}
	res := &Coeffs{Cells: make(map[string][]float64)}
	for _, p := range o.Prms {
		if !skip[p.N] {
			res.Prms = append(res.Prms, p)
		}
	}
	for n, v := range o.Cells {
		if !skip[n] {
			res.Cells[n] = v
		}
	}
	return res
}
