// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// CrossSection computes the cross-sectional moments of inertia of a rod
//
//   y1     y2 points out of the bending plane; bending happens about y2
//    ^
//    |          typ : rectangle
//    o------->  y0    circle
//                     tube
//
//   ^ 1       +-------+               .-''-.              .-''-.
//   |         |       |             /        \          /  .--.  \
//   |         |       | h = hei    |    R     |        |  | Ri |  |  R
//   +----> 2  |       |             \        /          \  '--'  /
//             +-------+               '-..-'              '-..-'
//              b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "circle" or "tube"
	Unit string  // unit of length
	Wid  float64 // width (b) if rectangular
	Hei  float64 // height (h) if rectangular
	R    float64 // outer radius if circular or tube
	Ri   float64 // inner radius if tube

	// derived
	A   float64 // cross-sectional area
	I22 float64 // moment of inertia about the out-of-plane axis (bending)
	I11 float64 // moment of inertia about the in-plane axis
}

// Init initialises structure and computes moments of inertia
func (o *CrossSection) Init(typ, unitLen string, wid, hei, rad, radIn float64) (err error) {

	// input data
	o.Type, o.Unit, o.Wid, o.Hei, o.R, o.Ri = typ, unitLen, wid, hei, rad, radIn

	// derived
	switch typ {
	case "rectangle":
		if wid <= 0 || hei <= 0 {
			return chk.Err("rectangle: width and height must be positive; got %g and %g", wid, hei)
		}
		b, h := wid, hei
		o.A = b * h
		o.I22 = b * h * h * h / 12.0
		o.I11 = b * b * b * h / 12.0

	case "circle":
		if rad <= 0 {
			return chk.Err("circle: radius must be positive; got %g", rad)
		}
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I22 = math.Pi * r2 * r2 / 4.0
		o.I11 = o.I22

	case "tube":
		if rad <= 0 || radIn < 0 || radIn >= rad {
			return chk.Err("tube: radii must satisfy 0 ≤ Ri < R; got R=%g, Ri=%g", rad, radIn)
		}
		r2, q2 := rad*rad, radIn*radIn
		o.A = math.Pi * (r2 - q2)
		o.I22 = math.Pi * (r2*r2 - q2*q2) / 4.0
		o.I11 = o.I22

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return
}

// String returns a short representation of the cross-section
func (o *CrossSection) String() string {
	return io.Sf("%s: A=%g %s², I22=%g %s⁴", o.Type, o.A, o.Unit, o.I22, o.Unit)
}

// Material holds parameters of some reference materials
type Material struct {

	// input
	Type     string // type of material; e.g. "bone-cortical"
	UnitPres string // unit of pressure

	// derived
	UnitDens string  // unit of density
	Desc     string  // description
	E        float64 // Young's modulus
	Nu       float64 // Poisson's coefficient
	G        float64 // shear modulus
	Rho      float64 // density
}

// reference holds the data of a reference material in MPa and Gg/m³
type reference struct {
	desc string
	e    float64 // Young's modulus [MPa]
	nu   float64 // Poisson's coefficient [-]
	rho  float64 // density [Gg/m³]
}

// references holds all available materials
var references = map[string]reference{
	"steel":            {"Steel: structural A36", 200000.0, 0.32, 7.85e-3},
	"aluminum":         {"Aluminum: 2014-T6", 73100.0, 0.35, 2.79e-3},
	"wood-douglas-fir": {"Wood: Douglas-fir", 13100.0, 0.29, 4.70e-4},
	"bone-cortical":    {"Bone: cortical, longitudinal", 17000.0, 0.30, 1.90e-3},
	"bone-trabecular":  {"Bone: trabecular, vertebral body", 400.0, 0.30, 1.00e-3},
	"cartilage":        {"Cartilage: articular, equilibrium", 10.0, 0.45, 1.10e-3},
}

// units maps the unit of pressure to the unit of density and the factor converting from MPa (and Gg/m³)
var units = map[string]struct {
	dens   string
	factor float64
}{
	"kPa": {"Mg/m³", 1e3},
	"MPa": {"Gg/m³", 1},
	"GPa": {"Tg/m³", 1e-3},
}

// Init initialises material paramters
//  Input:
//   unitPres:  "kPa" => E:[kPa], rho:[Mg/m³]
//              "MPa" => E:[MPa], rho:[Gg/m³]
//              "GPa" => E:[GPa], rho:[Tg/m³]
func (o *Material) Init(typ, unitPres string) (err error) {
	ref, ok := references[typ]
	if !ok {
		return chk.Err("material type %q is unavailable", typ)
	}
	unit, ok := units[unitPres]
	if !ok {
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}
	o.Type, o.UnitPres, o.UnitDens, o.Desc = typ, unitPres, unit.dens, ref.desc
	o.E = ref.e * unit.factor
	o.Nu = ref.nu
	o.Rho = ref.rho * unit.factor
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// BendingStiffness returns B = E⋅I22 for the given material and cross-section
func BendingStiffness(mat *Material, sec *CrossSection) float64 {
	return mat.E * sec.I22
}

// Params returns the parameters of the combined rod as a list of named values
func (o *Material) Params(sec *CrossSection) (prms utl.Params) {
	prms = utl.Params{
		&utl.P{N: "E", V: o.E, U: o.UnitPres},
		&utl.P{N: "G", V: o.G, U: o.UnitPres},
		&utl.P{N: "nu", V: o.Nu, U: "-"},
		&utl.P{N: "rho", V: o.Rho, U: o.UnitDens},
	}
	if sec != nil {
		prms = append(prms,
			&utl.P{N: "A", V: sec.A, U: sec.Unit + "²"},
			&utl.P{N: "I22", V: sec.I22, U: sec.Unit + "⁴"},
			&utl.P{N: "B", V: BendingStiffness(o, sec), U: o.UnitPres + "⋅" + sec.Unit + "⁴"},
			&utl.P{N: "rhoA", V: o.Rho * sec.A, U: o.UnitDens + "⋅" + sec.Unit + "²"},
		)
	}
	return
}
