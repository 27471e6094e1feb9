package cmd

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ws396/wmacalc/internal/analysis"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/output"
	"github.com/ws396/wmacalc/internal/settings"
	"github.com/ws396/wmacalc/internal/util"
	"github.com/ws396/wmacalc/internal/wma"
	"go.uber.org/zap"
)

// Run computes one weighted moving average from command line arguments and writes it
// to out. Prices may also be passed as positional arguments.
func Run(args []string, s *settings.Settings, out io.Writer) error {
	fs := flag.NewFlagSet("wmacalc", flag.ContinueOnError)
	fs.SetOutput(out)

	pricesFlag := fs.String("prices", "", "price series, ex. 100,102,101,105")
	weightsFlag := fs.String("weights", "", "weight series, ex. 1,2,3 (defaults to "+settings.DefaultWeightsKey+")")
	linear := fs.Int("linear", 0, "use linear weights 1..N instead of -weights")
	format := fs.String("output", s.Output, "output format: txt, styled, json, yaml, stub")
	precision := fs.Int("precision", s.Precision, "decimals shown by txt and styled output")
	decimal := fs.Bool("decimal", s.Decimal, "compute in decimal arithmetic")
	sample := fs.Bool("sample", false, "run the sample scenario")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *precision < 0 || *precision > globals.MaxPrecision {
		return fmt.Errorf("%w: precision %d", globals.ErrInvalidSetting, *precision)
	}

	var prices, weights []float64
	var err error
	if *sample {
		if *pricesFlag != "" || *weightsFlag != "" || *linear != 0 || fs.NArg() > 0 {
			return globals.ErrConflictingSample
		}

		prices, weights = globals.SamplePrices, globals.SampleWeights
	} else {
		if *pricesFlag != "" && fs.NArg() > 0 {
			return globals.ErrConflictingPrices
		}

		input := *pricesFlag
		if input == "" {
			input = strings.Join(fs.Args(), " ")
		}

		prices, err = util.ParseFloats(input)
		if err != nil {
			return err
		}

		weights, err = selectWeights(*weightsFlag, *linear, s.DefaultWeights)
		if err != nil {
			return err
		}
	}

	w, err := output.NewWriterCreator(out, *precision).CreateWriter(output.Action(*format))
	if err != nil {
		return err
	}

	a, err := analysis.CreateAnalysis(prices, weights, *decimal)
	if err != nil {
		return err
	}

	util.Logger.Debug("weighted moving average calculated",
		zap.Int("prices", len(prices)),
		zap.Int("weights", len(weights)),
		zap.Int("windows", a.Windows),
		zap.Bool("decimal", a.Decimal),
	)

	return w.Write(a)
}

func selectWeights(input string, linear int, fallback []float64) ([]float64, error) {
	switch {
	case input != "" && linear != 0:
		return nil, globals.ErrConflictingWeights
	case linear < 0:
		return nil, fmt.Errorf("%w: %d", globals.ErrBadWindow, linear)
	case linear > 0:
		return wma.LinearWeights(linear), nil
	case input != "":
		return util.ParseFloats(input)
	}

	return fallback, nil
}
