// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/LiXueying0309/porousMedia4Foam/mdl/generic"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// material types
const (
	TypeSaturation = "saturation" // saturation end points
	TypeConduct    = "conduct"    // relative permeability curves
	TypeRetention  = "retention"  // capillary pressure curve
	TypeMedium     = "medium"     // porosity and intrinsic permeability
	TypePhase      = "phase"      // fluid phase
)

// Material holds material data
type Material struct {
	Name  string               `json:"name"`  // name of material
	Type  string               `json:"type"`  // type of material; e.g. "saturation", "conduct", "retention"
	Model string               `json:"model"` // name of model; e.g. "VanGenuchten", "BrooksCorey"
	Extra string               `json:"extra"` // extra information about this material
	Prms  dbf.Params           `json:"prms"`  // prms holds all uniform model parameters for this material
	Cells map[string][]float64 `json:"cells"` // cells holds parameters varying from cell to cell
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	return NewMatDb(b)
}

// NewMatDb decodes and checks a database of materials
func NewMatDb(b []byte) (mdb *MatDb, err error) {
	mdb = new(MatDb)
	if err = json.Unmarshal(b, mdb); err != nil {
		return nil, chk.Err("cannot decode materials:\n%v", err)
	}
	names := make(map[string]bool)
	for _, m := range mdb.Materials {
		if m.Name == "" {
			return nil, chk.Err("all materials must have a name")
		}
		if names[m.Name] {
			return nil, chk.Err("material named %q is repeated", m.Name)
		}
		names[m.Name] = true
		switch m.Type {
		case TypeSaturation, TypeMedium, TypePhase:
		case TypeConduct, TypeRetention:
			if m.Model == "" {
				return nil, chk.Err("material %q of type %q must have a model name", m.Name, m.Type)
			}
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"saturation\", \"conduct\", \"retention\", \"medium\", and \"phase\"", m.Type)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// First returns the first material of a given type
//  Note: returns nil if not found
func (o MatDb) First(typ string) *Material {
	for _, mat := range o.Materials {
		if mat.Type == typ {
			return mat
		}
	}
	return nil
}

// Coeffs returns the model coefficients of this material
func (o *Material) Coeffs() *generic.Coeffs {
	return &generic.Coeffs{Prms: o.Prms, Cells: o.Cells}
}

// ExtraNames returns the names listed in Extra
func (o *Material) ExtraNames() []string {
	return strings.Fields(o.Extra)
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [", o.Name, o.Type, o.Model, o.Extra)
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%v}", p.N, p.V)
	}
	l += "\n      ]"
	if len(o.Cells) > 0 {
		b, _ := json.Marshal(o.Cells)
		l += io.Sf(",\n      \"cells\" : %s", b)
	}
	return l + "\n    }"
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
