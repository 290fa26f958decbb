// Package reply turns parse and estimation results into user-facing messages.
package reply

import (
	"fmt"
	"strings"

	"github.com/jwulff/diabot-go/internal/a1c"
	"github.com/jwulff/diabot-go/internal/bloodsugar"
)

// Level is the severity of a reply. Chat front ends map it to a colour.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Field is a titled block shown below the description.
type Field struct {
	Name  string
	Value string
}

// Reply is a rendered response to a command.
type Reply struct {
	Level       Level
	Title       string
	Description string
	Fields      []Field
	// Private replies are only shown to the user who asked.
	Private bool
}

// String renders the reply as plain text.
func (r Reply) String() string {
	var b strings.Builder
	if r.Title != "" {
		b.WriteString(r.Title)
		b.WriteString("\n\n")
	}
	b.WriteString(r.Description)
	for _, f := range r.Fields {
		b.WriteString("\n\n")
		b.WriteString(f.Name)
		b.WriteString(":\n")
		b.WriteString(f.Value)
	}
	b.WriteString("\n")
	return b.String()
}

// Convert describes a parsed glucose value in both units.
func Convert(result bloodsugar.ParsedResult) Reply {
	switch r := result.(type) {
	case bloodsugar.Known:
		return Reply{
			Level:       LevelInfo,
			Description: fmt.Sprintf("%s is %s", r.Glucose, r.Glucose.Convert()),
		}
	case bloodsugar.Ambiguous:
		return Reply{
			Level: LevelWarning,
			Description: ambiguousIntro(r.Original) + "\n" +
				fmt.Sprintf("- %s is %s\n", r.AsMgdl, r.AsMgdl.Convert()) +
				fmt.Sprintf("- %s is %s", r.AsMmol, r.AsMmol.Convert()),
		}
	default:
		return ConvertError(fmt.Errorf("unsupported result %T", result))
	}
}

// ConvertError explains why a convert request could not be understood.
func ConvertError(err error) Reply {
	return invalidInput(err,
		"Please make sure you're entering a number optionally followed by a unit.",
		"convert 5.7mmol", "convert 100 mgdl", "convert 30")
}

// Estimate is an A1c estimate together with the value it was derived from.
type Estimate struct {
	Source  string
	Summary a1c.Summary
}

// A1c describes one or more A1c estimates.
func A1c(estimates ...Estimate) Reply {
	return Reply{
		Level:       LevelInfo,
		Description: describeEstimates(estimates),
	}
}

// A1cAmbiguous describes estimates for a glucose value whose unit could not be determined.
func A1cAmbiguous(original string, estimates ...Estimate) Reply {
	return Reply{
		Level:       LevelWarning,
		Description: ambiguousIntro(original) + "\n" + describeEstimates(estimates),
	}
}

// A1cError explains why an A1c estimate could not be produced.
func A1cError(err error) Reply {
	return invalidInput(err,
		"Please enter a glucose reading, or an A1c value together with the scale it is on.",
		"a1c 5.7mmol", "a1c 6.7 --from dcct", "a1c 48 --from ifcc")
}

func ambiguousIntro(original string) string {
	return fmt.Sprintf("I'm not sure if %s is mmol/L or mg/dL, so I'll give you both.", original)
}

func describeEstimates(estimates []Estimate) string {
	blocks := make([]string, len(estimates))
	for i, e := range estimates {
		blocks[i] = fmt.Sprintf("Estimated A1c for %s:\n", e.Source) +
			fmt.Sprintf("- DCCT: %.1f %s\n", e.Summary.DCCT, a1c.ScaleDCCT.Unit()) +
			fmt.Sprintf("- IFCC: %.1f %s\n", e.Summary.IFCC, a1c.ScaleIFCC.Unit()) +
			fmt.Sprintf("- Fructosamine: %.1f %s", e.Summary.Fructosamine, a1c.ScaleFructosamine.Unit())
	}
	return strings.Join(blocks, "\n\n")
}

func invalidInput(err error, hint string, examples ...string) Reply {
	return Reply{
		Level:       LevelError,
		Title:       "Invalid Input",
		Description: fmt.Sprintf("I couldn't understand your input.\n\nReason: %v\n\n%s", err, hint),
		Fields: []Field{
			{Name: "Examples of valid input", Value: strings.Join(examples, "\n")},
		},
		Private: true,
	}
}
