// Package a1c estimates glycated hemoglobin from blood glucose.
//
// All conversions are routed through the DCCT percentage, which is derived
// from whichever input is available and cached for later conversions.
package a1c

import (
	"math"

	"github.com/jwulff/diabot-go/internal/bloodsugar"
)

// Scale is an A1c reporting scale, or glucose as an input to one.
type Scale string

const (
	ScaleGlucose      Scale = "glucose"
	ScaleDCCT         Scale = "dcct"
	ScaleIFCC         Scale = "ifcc"
	ScaleFructosamine Scale = "fructosamine"
)

// Unit returns the display unit for values on the scale.
func (s Scale) Unit() string {
	switch s {
	case ScaleDCCT:
		return "%"
	case ScaleIFCC:
		return "mmol/mol"
	case ScaleFructosamine:
		return "µmol/L"
	default:
		return ""
	}
}

// Known holds the values supplied by the caller. Nil fields are unknown.
type Known struct {
	Glucose      *bloodsugar.Glucose
	DCCT         *float64
	IFCC         *float64
	Fructosamine *float64
}

// Estimation derives A1c values from whatever is known.
//
// Derived values are cached on the Estimation, so it must not be shared
// between goroutines.
type Estimation struct {
	glucose      *bloodsugar.Glucose
	dcct         *float64
	ifcc         *float64
	fructosamine *float64
}

// Estimate creates an estimation from the known values.
// The values are copied, so later changes by the caller do not affect it.
func Estimate(known Known) *Estimation {
	e := &Estimation{
		dcct:         copyValue(known.DCCT),
		ifcc:         copyValue(known.IFCC),
		fructosamine: copyValue(known.Fructosamine),
	}
	if known.Glucose != nil {
		g := *known.Glucose
		e.glucose = &g
	}
	return e
}

func copyValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// FromGlucose creates an estimation from a glucose reading.
func FromGlucose(g bloodsugar.Glucose) *Estimation {
	return &Estimation{glucose: &g}
}

// FromDCCT creates an estimation from a DCCT percentage.
func FromDCCT(v float64) *Estimation {
	return &Estimation{dcct: &v}
}

// FromIFCC creates an estimation from an IFCC value in mmol/mol.
func FromIFCC(v float64) *Estimation {
	return &Estimation{ifcc: &v}
}

// FromFructosamine creates an estimation from a fructosamine value in µmol/L.
func FromFructosamine(v float64) *Estimation {
	return &Estimation{fructosamine: &v}
}

// DCCT returns the A1c as a DCCT percentage.
func (e *Estimation) DCCT() (float64, error) {
	if e.dcct != nil {
		return *e.dcct, nil
	}

	var v float64
	switch {
	case e.glucose != nil:
		v = (float64(e.glucose.MgdlValue()) + 46.7) / 28.7
	case e.ifcc != nil:
		v = *e.ifcc/10.929 + 2.15
	case e.fructosamine != nil:
		v = *e.fructosamine/58.82 + 1.61
	default:
		return 0, &MissingInputError{
			Scale:    ScaleDCCT,
			Expected: []Scale{ScaleGlucose, ScaleIFCC, ScaleFructosamine},
		}
	}

	if err := checkFinite(ScaleDCCT, v); err != nil {
		return 0, err
	}
	e.dcct = &v
	return v, nil
}

// IFCC returns the A1c in mmol/mol.
func (e *Estimation) IFCC() (float64, error) {
	if e.ifcc != nil {
		return *e.ifcc, nil
	}

	dcct, err := e.pivot(ScaleIFCC, ScaleGlucose, ScaleDCCT, ScaleFructosamine)
	if err != nil {
		return 0, err
	}

	v := (dcct - 2.15) * 10.929
	if err := checkFinite(ScaleIFCC, v); err != nil {
		return 0, err
	}
	e.ifcc = &v
	return v, nil
}

// Fructosamine returns the estimated fructosamine in µmol/L.
func (e *Estimation) Fructosamine() (float64, error) {
	if e.fructosamine != nil {
		return *e.fructosamine, nil
	}

	dcct, err := e.pivot(ScaleFructosamine, ScaleGlucose, ScaleDCCT, ScaleIFCC)
	if err != nil {
		return 0, err
	}

	v := (dcct - 1.61) * 58.82
	if err := checkFinite(ScaleFructosamine, v); err != nil {
		return 0, err
	}
	e.fructosamine = &v
	return v, nil
}

// Summary holds an estimate on every A1c scale.
type Summary struct {
	DCCT         float64
	IFCC         float64
	Fructosamine float64
}

// Summary derives all three A1c scales.
func (e *Estimation) Summary() (Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.DCCT, err = e.DCCT(); err != nil {
		return Summary{}, err
	}
	if s.IFCC, err = e.IFCC(); err != nil {
		return Summary{}, err
	}
	if s.Fructosamine, err = e.Fructosamine(); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// pivot returns the DCCT value needed to compute target.
func (e *Estimation) pivot(target Scale, expected ...Scale) (float64, error) {
	if e.dcct == nil && e.glucose == nil && e.ifcc == nil && e.fructosamine == nil {
		return 0, &MissingInputError{Scale: target, Expected: expected}
	}

	dcct, err := e.DCCT()
	if err != nil {
		return 0, &CalculationError{Scale: target, Err: err}
	}
	return dcct, nil
}

func checkFinite(scale Scale, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return &CalculationError{Scale: scale}
	}
	return nil
}
