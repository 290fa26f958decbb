// Package bloodsugar models blood glucose readings and parses them from free-form text.
package bloodsugar

import (
	"fmt"
	"math"
)

// MgdlPerMmol is the number of mg/dL in one mmol/L of glucose.
const MgdlPerMmol = 18.015588

// Unit is a blood glucose unit of measurement.
type Unit int

const (
	UnitMgdl Unit = iota
	UnitMmol
)

func (u Unit) String() string {
	switch u {
	case UnitMgdl:
		return "mg/dL"
	case UnitMmol:
		return "mmol/L"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Glucose is a glucose value and its unit of measurement.
// mg/dL values are whole numbers; mmol/L values are fractional.
type Glucose struct {
	unit Unit
	mgdl int
	mmol float64
}

// Mgdl creates a glucose value in mg/dL.
func Mgdl(value int) Glucose {
	return Glucose{unit: UnitMgdl, mgdl: value}
}

// Mmol creates a glucose value in mmol/L.
func Mmol(value float64) Glucose {
	return Glucose{unit: UnitMmol, mmol: value}
}

// Unit returns the unit the value is expressed in.
func (g Glucose) Unit() Unit {
	return g.unit
}

// ToMgdl converts the value to mg/dL, rounding to the nearest whole number.
// A value already in mg/dL is returned unchanged.
func (g Glucose) ToMgdl() Glucose {
	if g.unit == UnitMgdl {
		return g
	}
	return Mgdl(int(math.Round(g.mmol * MgdlPerMmol)))
}

// ToMmol converts the value to mmol/L.
// A value already in mmol/L is returned unchanged.
func (g Glucose) ToMmol() Glucose {
	if g.unit == UnitMmol {
		return g
	}
	return Mmol(float64(g.mgdl) / MgdlPerMmol)
}

// Convert returns the value in the opposite unit.
func (g Glucose) Convert() Glucose {
	if g.unit == UnitMgdl {
		return g.ToMmol()
	}
	return g.ToMgdl()
}

// MgdlValue returns the magnitude in mg/dL.
func (g Glucose) MgdlValue() int {
	return g.ToMgdl().mgdl
}

// MmolValue returns the magnitude in mmol/L.
func (g Glucose) MmolValue() float64 {
	return g.ToMmol().mmol
}

func (g Glucose) String() string {
	if g.unit == UnitMgdl {
		return fmt.Sprintf("%d mg/dL", g.mgdl)
	}
	return fmt.Sprintf("%.1f mmol/L", g.mmol)
}
