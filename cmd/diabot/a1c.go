package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jwulff/diabot-go/internal/a1c"
	"github.com/jwulff/diabot-go/internal/bloodsugar"
	"github.com/jwulff/diabot-go/internal/config"
	"github.com/jwulff/diabot-go/internal/logging"
	"github.com/jwulff/diabot-go/internal/reply"
)

func newA1cCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:      "a1c",
		Usage:     "Estimate A1c from a glucose reading or convert between A1c scales",
		ArgsUsage: "<value> (e.g. 7.2mmol, 154 mg, 6.7 --from dcct)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Value:   string(a1c.ScaleGlucose),
				Usage:   "scale of the value (glucose, dcct, ifcc, fructosamine)",
			},
			&cli.StringFlag{
				Name:    "unit",
				Aliases: []string{"u"},
				Usage:   "blood glucose unit when --from is glucose (mmol/L, mg/dL)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runA1c(ctx, cmd, cfg)
		},
	}
}

func runA1c(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	logger := logging.Logger(logging.SourceCommand).With("command", cmd.Name)
	logger.Debug("executing command")
	defer logger.Debug("executed command")

	input := strings.Join(cmd.Args().Slice(), " ")
	scale := a1c.Scale(strings.ToLower(strings.TrimSpace(cmd.String("from"))))

	r, err := estimateA1c(input, scale, glucoseUnit(cmd, input, cfg.DefaultUnit))
	if err != nil {
		logger.Debug("could not estimate a1c", "input", input, "scale", scale, "err", err)
		r = reply.A1cError(err)
	}

	_, err = fmt.Fprint(cmd.Root().Writer, r.String())
	return err
}

func estimateA1c(input string, scale a1c.Scale, unit string) (reply.Reply, error) {
	if scale == a1c.ScaleGlucose {
		result, err := bloodsugar.ParseWithUnit(input, unit)
		if err != nil {
			return reply.Reply{}, err
		}
		switch r := result.(type) {
		case bloodsugar.Known:
			est, err := glucoseEstimate(r.Glucose)
			if err != nil {
				return reply.Reply{}, err
			}
			return reply.A1c(est), nil
		case bloodsugar.Ambiguous:
			asMgdl, err := glucoseEstimate(r.AsMgdl)
			if err != nil {
				return reply.Reply{}, err
			}
			asMmol, err := glucoseEstimate(r.AsMmol)
			if err != nil {
				return reply.Reply{}, err
			}
			return reply.A1cAmbiguous(r.Original, asMgdl, asMmol), nil
		}
	}

	value, err := parseScaleValue(input, scale)
	if err != nil {
		return reply.Reply{}, err
	}

	var known a1c.Known
	switch scale {
	case a1c.ScaleDCCT:
		known.DCCT = &value
	case a1c.ScaleIFCC:
		known.IFCC = &value
	case a1c.ScaleFructosamine:
		known.Fructosamine = &value
	}

	summary, err := a1c.Estimate(known).Summary()
	if err != nil {
		return reply.Reply{}, err
	}
	return reply.A1c(reply.Estimate{
		Source:  fmt.Sprintf("%.1f %s (%s)", value, scale.Unit(), scale),
		Summary: summary,
	}), nil
}

func glucoseEstimate(g bloodsugar.Glucose) (reply.Estimate, error) {
	summary, err := a1c.FromGlucose(g).Summary()
	if err != nil {
		return reply.Estimate{}, err
	}
	return reply.Estimate{Source: g.String(), Summary: summary}, nil
}

// parseScaleValue reads an A1c value, allowing the scale's own unit as a suffix.
func parseScaleValue(input string, scale a1c.Scale) (float64, error) {
	switch scale {
	case a1c.ScaleDCCT, a1c.ScaleIFCC, a1c.ScaleFructosamine:
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownScale, scale)
	}

	value, unit, err := bloodsugar.ParseInput(input, "")
	if err != nil {
		return 0, err
	}
	if unit != "" && unit != strings.ToLower(scale.Unit()) {
		return 0, fmt.Errorf("%w %s: %q", errUnexpectedUnit, scale, unit)
	}
	return value, nil
}
