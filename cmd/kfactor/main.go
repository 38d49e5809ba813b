package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "kfactor",
		Usage: "k-factor quantiles, deviates, CDF and density for failure-rate confidence intervals",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "precision",
				Usage:   "decimal places in the output",
				Value:   4,
				EnvVars: []string{"KFACTOR_PRECISION"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log at debug level",
				EnvVars: []string{"KFACTOR_VERBOSE"},
			},
		},
		Commands: []*cli.Command{
			quantileCommand,
			randomCommand,
			cdfCommand,
			densityCommand,
			intervalCommand,
			simulateCommand,
		},
	}
}
