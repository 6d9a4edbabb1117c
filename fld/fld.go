// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fld implements scalar fields stored on cells and faces of a mesh
package fld

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Cell holds one scalar value per cell
type Cell []float64

// Face holds one scalar value per face
type Face []float64

// Mesh defines the topology needed by the constitutive models
//  Note: the topology is fixed after construction
type Mesh interface {
	NCells() int                  // number of cells
	NFaces() int                  // number of faces (internal and boundary)
	Interpolate(res Face, u Cell) // res := linear interpolation of u onto faces
}

// NewCell allocates a cell field sized to the mesh
func NewCell(msh Mesh) Cell {
	return Cell(la.NewVector(msh.NCells()))
}

// NewFace allocates a face field sized to the mesh
func NewFace(msh Mesh) Face {
	return Face(la.NewVector(msh.NFaces()))
}

// Fill sets all values to s
func (o Cell) Fill(s float64) {
	for i := range o {
		o[i] = s
	}
}

// Set copies u into o; both must have the same size
func (o Cell) Set(u Cell) {
	copy(o, u)
}

// MinMax returns the smallest and largest values
func (o Cell) MinMax() (min, max float64) {
	return minmax(o)
}

// Fill sets all values to s
func (o Face) Fill(s float64) {
	for i := range o {
		o[i] = s
	}
}

// Set copies u into o; both must have the same size
func (o Face) Set(u Face) {
	copy(o, u)
}

// MinMax returns the smallest and largest values
func (o Face) MinMax() (min, max float64) {
	return minmax(o)
}

func minmax(v []float64) (min, max float64) {
	if len(v) == 0 {
		return
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, x := range v {
		min = math.Min(min, x)
		max = math.Max(max, x)
	}
	return
}
