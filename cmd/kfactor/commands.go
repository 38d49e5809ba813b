package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/uyouii/kfactor/common"
	"github.com/uyouii/kfactor/kde"
	"github.com/uyouii/kfactor/kfactor"
	"github.com/uyouii/kfactor/summary"
	"github.com/uyouii/kfactor/utils"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	failuresFlag = &cli.IntFlag{
		Name:     "r",
		Usage:    "number of failures",
		Required: true,
		EnvVars:  []string{"KFACTOR_FAILURES"},
	}
	timeFlag = &cli.BoolFlag{
		Name:    "time",
		Usage:   "time-censored data",
		EnvVars: []string{"KFACTOR_TIME_CENSORED"},
	}
	failureFlag = &cli.BoolFlag{
		Name:    "failure",
		Usage:   "failure-censored data",
		EnvVars: []string{"KFACTOR_FAILURE_CENSORED"},
	}
	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "random seed, 0 uses the global source",
	}
	sizeFlag = &cli.IntFlag{
		Name:  "n",
		Usage: "number of deviates",
		Value: 10,
	}
	bandwidthFlag = &cli.StringFlag{
		Name:  "bandwidth",
		Usage: "kde bandwidth rule: scott or normal-reference",
		Value: "scott",
	}
)

var regimeFlags = []cli.Flag{failuresFlag, timeFlag, failureFlag}

var quantileCommand = &cli.Command{
	Name:      "quantile",
	Aliases:   []string{"qk"},
	Usage:     "k-factor for each probability",
	ArgsUsage: "P...",
	Flags:     regimeFlags,
	Action: func(c *cli.Context) error {
		ps, err := parseArgs(c)
		if err != nil {
			return err
		}
		d, err := newDist(c)
		if err != nil {
			return err
		}
		k, err := d.Quantiles(ps)
		if err != nil {
			return err
		}
		return render(c, table.Row{"p", "k"}, ps, k)
	},
}

var randomCommand = &cli.Command{
	Name:    "random",
	Aliases: []string{"rk"},
	Usage:   "random k-factors",
	Flags:   append([]cli.Flag{sizeFlag, seedFlag}, regimeFlags...),
	Action: func(c *cli.Context) error {
		d, err := newDist(c)
		if err != nil {
			return err
		}
		k, err := d.Sample(c.Int(sizeFlag.Name))
		if err != nil {
			return err
		}
		index := make([]float64, len(k))
		for i := range index {
			index[i] = float64(i + 1)
		}
		return render(c, table.Row{"#", "k"}, index, k)
	},
}

var cdfCommand = &cli.Command{
	Name:      "cdf",
	Aliases:   []string{"pk"},
	Usage:     "cumulative probability of each k-factor",
	ArgsUsage: "Q...",
	Flags:     regimeFlags,
	Action: func(c *cli.Context) error {
		qs, err := parseArgs(c)
		if err != nil {
			return err
		}
		d, err := newDist(c)
		if err != nil {
			return err
		}
		p, err := d.CDFs(qs)
		if err != nil {
			return err
		}
		return render(c, table.Row{"k", "p"}, qs, p)
	},
}

var densityCommand = &cli.Command{
	Name:      "density",
	Aliases:   []string{"dk"},
	Usage:     "probability density at each k-factor",
	ArgsUsage: "X...",
	Flags:     append([]cli.Flag{bandwidthFlag}, regimeFlags...),
	Action: func(c *cli.Context) error {
		xs, err := parseArgs(c)
		if err != nil {
			return err
		}
		d, err := newDist(c)
		if err != nil {
			return err
		}
		return render(c, table.Row{"k", "density"}, xs, d.Probs(xs))
	},
}

var intervalCommand = &cli.Command{
	Name:  "interval",
	Usage: "confidence interval for a failure rate",
	Flags: append([]cli.Flag{
		&cli.Float64Flag{Name: "exposure", Usage: "total time on test", Required: true},
		&cli.Float64Flag{Name: "level", Usage: "confidence level", Value: 0.95},
	}, regimeFlags...),
	Action: func(c *cli.Context) error {
		d, err := newDist(c)
		if err != nil {
			return err
		}
		ci, err := d.Interval(c.Float64("exposure"), c.Float64("level"))
		if err != nil {
			return err
		}
		utils.GetLogger(withLogger(c)).Debug("failure rate interval", zap.String("ci", ci.DebugString()))

		precision := int32(c.Int("precision"))
		t := table.NewWriter()
		t.SetOutputMirror(c.App.Writer)
		t.AppendHeader(table.Row{"bound", "p", "failure rate"})
		t.AppendRow(table.Row{"lower", ci.Lower.Quantile, utils.FormatFloat(ci.Lower.Value, precision)})
		t.AppendRow(table.Row{"upper", ci.Upper.Quantile, utils.FormatFloat(ci.Upper.Value, precision)})
		t.AppendRow(table.Row{"width", "", utils.FormatFloat(ci.Width(), precision)})
		t.Render()
		return nil
	},
}

var simulateCommand = &cli.Command{
	Name:  "simulate",
	Usage: "summarise a simulated sampling distribution of k-factors",
	Flags: append([]cli.Flag{
		sizeFlag,
		seedFlag,
		&cli.BoolFlag{Name: "clip", Usage: "drop values beyond 3 standard deviations before the kde"},
	}, regimeFlags...),
	Action: func(c *cli.Context) error {
		d, err := newDist(c)
		if err != nil {
			return err
		}
		k, err := d.Sample(c.Int(sizeFlag.Name))
		if err != nil {
			return err
		}
		conf, err := kde.CalculateKdeConfidences(c.Context, k, nil, c.Bool("clip"))
		if err != nil {
			return err
		}

		precision := int32(c.Int("precision"))
		t := table.NewWriter()
		t.SetOutputMirror(c.App.Writer)
		t.AppendHeader(table.Row{"statistic", "value"})
		t.AppendRow(table.Row{"mean", utils.FormatFloat(conf.Mean, precision)})
		t.AppendRow(table.Row{"sd", utils.FormatFloat(conf.StdDev, precision)})
		t.AppendRow(table.Row{"skewness", utils.FormatFloat(summary.Skewness(k), precision)})
		t.AppendRow(table.Row{"kurtosis", utils.FormatFloat(summary.Kurtosis(k), precision)})
		t.AppendRow(table.Row{"bandwidth", utils.FormatFloat(conf.Bandwidth, precision)})
		t.AppendSeparator()
		for _, p := range kde.AllCalculateQuantiles {
			if q, ok := conf.GetQuantileValue(p); ok {
				t.AppendRow(table.Row{fmt.Sprintf("q%v", p), q.Value})
			}
		}
		t.Render()
		return nil
	},
}

func newDist(c *cli.Context) (*kfactor.Dist, error) {
	ctx := withLogger(c)
	opts := []kfactor.Option{}
	if c.IsSet(seedFlag.Name) && c.Uint64(seedFlag.Name) != 0 {
		opts = append(opts, kfactor.WithSource(rand.NewSource(c.Uint64(seedFlag.Name))))
	}
	if c.IsSet(bandwidthFlag.Name) {
		switch c.String(bandwidthFlag.Name) {
		case "scott":
			opts = append(opts, kfactor.WithBandWidth(kde.NewScottBandWidth()))
		case "normal-reference":
			opts = append(opts, kfactor.WithBandWidth(kde.NewNormalReferenceBandWidth(nil)))
		default:
			return nil, errors.Wrapf(common.ErrorInvalidValue, "unknown bandwidth rule %q", c.String(bandwidthFlag.Name))
		}
	}
	return kfactor.New(ctx, c.Int(failuresFlag.Name), c.Bool(timeFlag.Name), c.Bool(failureFlag.Name), opts...)
}

func withLogger(c *cli.Context) context.Context {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if !c.Bool("verbose") {
		return ctx
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return ctx
	}
	return utils.ContextWithLogger(ctx, logger)
}

func parseArgs(c *cli.Context) ([]float64, error) {
	if c.NArg() == 0 {
		return nil, errors.Wrap(common.ErrorInvalidValue, "no values given")
	}
	res := make([]float64, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(common.ErrorInvalidValue, "parse %q: %v", arg, err)
		}
		res = append(res, v)
	}
	return res, nil
}

func render(c *cli.Context, header table.Row, xs, ys []float64) error {
	precision := int32(c.Int("precision"))
	t := table.NewWriter()
	t.SetOutputMirror(c.App.Writer)
	t.AppendHeader(header)
	for i := range xs {
		t.AppendRow(table.Row{xs[i], utils.FormatFloat(ys[i], precision)})
	}
	t.Render()
	return nil
}
