// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements capillary pressure models pc(Se) for two-phase
// flow in porous media (drainage branch of the retention curve)
//  References:
//   [1] van Genuchten MT (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Sci Soc Am J, 44(5) 892-898
//   [2] Brooks RH and Corey AT (1964) Hydraulic properties of porous media.
//       Hydrology Papers 3, Colorado State University
package retention

import (
	"github.com/LiXueying0309/porousMedia4Foam/fld"
	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PCMAX is the default cap of the capillary pressure
const PCMAX = 1e+30

// Model implements a capillary pressure model
//  Note: i is a cell index. Models never return NaN or ±Inf: the end
//        points Se = 0 and Se = 1 are computed by limiting branches
type Model interface {
	Init(msh fld.Mesh, prms *generic.Coeffs) error // initialises model
	GetPrms(example bool) dbf.Params               // gets (an example) of parameters
	Pc(i int, se float64) float64                  // computes pc
	DpcDse(i int, se float64) float64              // computes ∂pc/∂Se
}

// Inverse is a subset of models that directly computes Se from pc
type Inverse interface {
	Se(i int, pc float64) float64 // computes Se from pc
}

// New returns new capillary pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
