// Package main is the entry point for the diabot command line.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jwulff/diabot-go/internal/config"
	"github.com/jwulff/diabot-go/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Logger(logging.SourceApp).Fatal("could not load configuration", "err", err)
	}
	if err := logging.Configure(os.Stderr, cfg.LogLevel); err != nil {
		logging.Logger(logging.SourceApp).Fatal("could not configure logging", "err", err)
	}

	if err := newApp(cfg).Run(context.Background(), os.Args); err != nil {
		logging.Logger(logging.SourceApp).Fatal("command failed", "err", err)
	}
}

func newApp(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "diabot",
		Usage: "Blood glucose unit conversion and A1c estimation",
		Commands: []*cli.Command{
			newConvertCommand(cfg),
			newA1cCommand(cfg),
		},
	}
}
