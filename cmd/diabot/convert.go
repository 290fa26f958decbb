package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jwulff/diabot-go/internal/bloodsugar"
	"github.com/jwulff/diabot-go/internal/config"
	"github.com/jwulff/diabot-go/internal/logging"
	"github.com/jwulff/diabot-go/internal/reply"
)

func newConvertCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert blood glucose units (mg/dL <> mmol/L)",
		ArgsUsage: "<value> (e.g. 5.7mmol, 100 mg, 40)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "unit",
				Aliases: []string{"u"},
				Usage:   "blood glucose unit (mmol/L, mg/dL)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runConvert(ctx, cmd, cfg)
		},
	}
}

func runConvert(ctx context.Context, cmd *cli.Command, cfg config.Config) error {
	logger := logging.Logger(logging.SourceCommand).With("command", cmd.Name)
	logger.Debug("executing command")
	defer logger.Debug("executed command")

	input := strings.Join(cmd.Args().Slice(), " ")

	var r reply.Reply
	result, err := bloodsugar.ParseWithUnit(input, glucoseUnit(cmd, input, cfg.DefaultUnit))
	if err != nil {
		logger.Debug("could not parse glucose", "input", input, "err", err)
		r = reply.ConvertError(err)
	} else {
		r = reply.Convert(result)
	}

	_, err = fmt.Fprint(cmd.Root().Writer, r.String())
	return err
}

// glucoseUnit picks the unit hint for input. The --unit flag always wins; the
// configured default only applies when input does not name a unit itself.
func glucoseUnit(cmd *cli.Command, input, defaultUnit string) string {
	if cmd.IsSet("unit") {
		return cmd.String("unit")
	}
	if _, unit, err := bloodsugar.ParseInput(input, ""); err == nil && unit == "" {
		return defaultUnit
	}
	return ""
}
