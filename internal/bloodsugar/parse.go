package bloodsugar

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Accepted range for parsed values, in whatever unit they were given.
const (
	MinValue = -9999.0
	MaxValue = 9999.0
)

// Bare numbers inside this band could be either unit.
const (
	AmbiguousLow  = 25.0
	AmbiguousHigh = 50.0
)

var (
	ErrEmptyInput    = errors.New("missing or empty input")
	ErrInvalidNumber = errors.New("invalid number format")
	ErrOutOfRange    = errors.New("number is out of range")
	ErrUnknownUnit   = errors.New("unknown unit specified")
)

// ParseError reports which part of the input could not be understood.
type ParseError struct {
	Kind error
	Text string
}

func (e *ParseError) Error() string {
	if errors.Is(e.Kind, ErrOutOfRange) {
		return fmt.Sprintf("%s: %s (between %g and %g)", e.Kind, e.Text, MinValue, MaxValue)
	}
	return fmt.Sprintf("%s: '%s'", e.Kind, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// ParsedResult is the outcome of interpreting a glucose string.
// It is either Known or Ambiguous.
type ParsedResult interface {
	parsedResult()
}

// Known is a value whose unit was given or could be inferred.
type Known struct {
	Glucose Glucose
}

// Ambiguous is a bare number that is plausible in both units.
type Ambiguous struct {
	Original string
	AsMmol   Glucose
	AsMgdl   Glucose
}

func (Known) parsedResult()     {}
func (Ambiguous) parsedResult() {}

// Parse parses a glucose value, guessing the unit if none is given.
func Parse(input string) (ParsedResult, error) {
	return ParseWithUnit(input, "")
}

// ParseWithUnit parses a glucose value with an optional unit.
// If both the input and unit specify a unit, unit takes precedence.
func ParseWithUnit(input, unit string) (ParsedResult, error) {
	num, parsedUnit, err := ParseInput(input, unit)
	if err != nil {
		return nil, err
	}
	if !(num >= MinValue && num <= MaxValue) {
		return nil, &ParseError{Kind: ErrOutOfRange, Text: input}
	}
	rounded := int(math.Round(num))

	if parsedUnit == "" {
		switch {
		case num >= AmbiguousLow && num <= AmbiguousHigh:
			return Ambiguous{
				Original: strings.TrimSpace(input),
				AsMmol:   Mmol(num),
				AsMgdl:   Mgdl(rounded),
			}, nil
		case num < AmbiguousLow:
			return Known{Glucose: Mmol(num)}, nil
		default:
			return Known{Glucose: Mgdl(rounded)}, nil
		}
	}

	u, err := ParseUnit(parsedUnit)
	if err != nil {
		return nil, err
	}
	if u == UnitMmol {
		return Known{Glucose: Mmol(num)}, nil
	}
	return Known{Glucose: Mgdl(rounded)}, nil
}

// ParseUnit resolves a unit name, ignoring case.
func ParseUnit(text string) (Unit, error) {
	switch strings.ToLower(text) {
	case "mmol", "mmol/l":
		return UnitMmol, nil
	case "mg", "mg/dl", "mgdl":
		return UnitMgdl, nil
	default:
		return 0, &ParseError{Kind: ErrUnknownUnit, Text: text}
	}
}

// ParseInput splits a glucose string into its number and unit text.
//
// The unit text is lowercased and empty when no unit was found. It is not
// validated; ParseWithUnit does that. A non-empty unit argument takes
// precedence over a unit embedded in value.
//
// Supported styles:
//   - "5.5 mmol"
//   - "5.5mmol"
//   - "5,5 mmol"
//   - "5.5" with unit "mmol"
//   - "5.5" with no unit
func ParseInput(value, unit string) (float64, string, error) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if value == "" {
		return 0, "", ErrEmptyInput
	}

	split := len(value)
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' {
			split = i
			break
		}
	}
	if split == 0 {
		return 0, "", &ParseError{Kind: ErrInvalidNumber, Text: value}
	}

	numPart := strings.TrimSpace(value[:split])
	unitPart := strings.TrimSpace(value[split:])

	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, "", &ParseError{Kind: ErrInvalidNumber, Text: numPart}
	}

	if u := strings.TrimSpace(unit); u != "" {
		return num, strings.ToLower(u), nil
	}
	return num, strings.ToLower(unitPart), nil
}
