// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fld

import "github.com/cpmech/gosl/chk"

// Column implements a one-dimensional vertical column of equal cells
//
//   faces  0 .. nc-2  :  internal; owner = i, neighbour = i+1
//   face   nc-1       :  bottom boundary (owner = 0)
//   face   nc         :  top boundary (owner = nc-1)
//
type Column struct {
	H     float64 // height of column
	Dz    float64 // cell size
	Owner []int   // owner cell of each face
	Neigh []int   // neighbour cell of each face; -1 for boundaries
	Wgt   []float64
	nc    int
}

// NewColumn returns a column with nc cells spanning z ∈ [0, H]
func NewColumn(nc int, H float64) (o *Column, err error) {
	if nc < 1 {
		return nil, chk.Err("column: number of cells must be at least 1; nc = %d is invalid", nc)
	}
	if H <= 0 {
		return nil, chk.Err("column: height must be positive; H = %g is invalid", H)
	}
	o = &Column{H: H, Dz: H / float64(nc), nc: nc}
	nf := nc + 1
	o.Owner = make([]int, nf)
	o.Neigh = make([]int, nf)
	o.Wgt = make([]float64, nf)
	for i := 0; i < nc-1; i++ {
		o.Owner[i], o.Neigh[i], o.Wgt[i] = i, i+1, 0.5
	}
	o.Owner[nc-1], o.Neigh[nc-1], o.Wgt[nc-1] = 0, -1, 1
	o.Owner[nc], o.Neigh[nc], o.Wgt[nc] = nc-1, -1, 1
	return
}

// NCells returns the number of cells
func (o *Column) NCells() int { return o.nc }

// NFaces returns the number of faces
func (o *Column) NFaces() int { return o.nc + 1 }

// Interpolate computes face values; boundary faces take the owner value
func (o *Column) Interpolate(res Face, u Cell) {
	for f := range res {
		w := o.Wgt[f]
		v := w * u[o.Owner[f]]
		if n := o.Neigh[f]; n >= 0 {
			v += (1.0 - w) * u[n]
		}
		res[f] = v
	}
}

// Z returns the elevation of cell centres
func (o *Column) Z() (z []float64) {
	z = make([]float64, o.nc)
	for i := range z {
		z[i] = (float64(i) + 0.5) * o.Dz
	}
	return
}
