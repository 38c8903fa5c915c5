// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/sayujks0071/life-sub001/ana"
)

// SectionData holds the cross-section of the rod
type SectionData struct {
	Type string  `json:"type" yaml:"type"` // "rectangle", "circle" or "tube"
	Unit string  `json:"unit" yaml:"unit"` // unit of length; default = "m"
	Wid  float64 `json:"wid" yaml:"wid"`   // width if rectangular
	Hei  float64 `json:"hei" yaml:"hei"`   // height if rectangular
	R    float64 `json:"r" yaml:"r"`       // outer radius
	Ri   float64 `json:"ri" yaml:"ri"`     // inner radius if tube
}

// StiffnessData holds the definition of the bending stiffness B(s)
//
//  either a function name is given or B = E⋅I is computed from a reference
//  material and a cross-section. The function (if any) multiplies E⋅I when
//  both are given
type StiffnessData struct {
	Func     string       `json:"func" yaml:"func"`         // name of function giving B(s) or the modulation of E⋅I
	Material string       `json:"material" yaml:"material"` // reference material; e.g. "bone-cortical"
	UnitPres string       `json:"unitpres" yaml:"unitpres"` // unit of pressure: "kPa", "MPa" or "GPa"; default = "MPa"
	Section  *SectionData `json:"section" yaml:"section"`   // cross-section

	// derived
	Mat *ana.Material     `json:"-" yaml:"-"` // material; nil if not given
	Sec *ana.CrossSection `json:"-" yaml:"-"` // cross-section; nil if not given
	EI  float64           `json:"-" yaml:"-"` // E⋅I; 1 if material is not given
}

// PostProcess initialises material and cross-section
func (o *StiffnessData) PostProcess() (err error) {
	o.EI = 1
	if o.Material == "" && o.Section == nil {
		if o.Func == "" {
			return chk.Err("stiffness: either func or material with section must be given")
		}
		return
	}
	if o.Material == "" || o.Section == nil {
		return chk.Err("stiffness: material and section must be given together")
	}
	if o.UnitPres == "" {
		o.UnitPres = "MPa"
	}
	if o.Section.Unit == "" {
		o.Section.Unit = "m"
	}
	o.Mat = new(ana.Material)
	if err = o.Mat.Init(o.Material, o.UnitPres); err != nil {
		return chk.Err("stiffness: %v", err)
	}
	o.Sec = new(ana.CrossSection)
	sd := o.Section
	if err = o.Sec.Init(sd.Type, sd.Unit, sd.Wid, sd.Hei, sd.R, sd.Ri); err != nil {
		return chk.Err("stiffness: %v", err)
	}
	o.EI = ana.BendingStiffness(o.Mat, o.Sec)
	return
}
