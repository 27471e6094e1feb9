package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ws396/wmacalc/internal/globals"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger = zap.NewNop()

// InitZapLogger replaces Logger with a production logger at the given level, writing
// to the given comma separated output paths.
func InitZapLogger(level, output string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: LOG_LEVEL %q", globals.ErrInvalidSetting, level)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = strings.Split(output, ",")
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return err
	}

	Logger = logger

	return nil
}

// ParseFloats reads numbers separated by commas and/or whitespace, as typed in
// "100, 102 101".
func ParseFloats(input string) ([]float64, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", globals.ErrBadNumber, f)
		}

		values = append(values, v)
	}

	return values, nil
}

func Round(value float64, precision int) float64 {
	m := math.Pow(10, float64(precision))

	return math.Round(value*m) / m
}

func RoundAll(values []float64, precision int) []float64 {
	rounded := make([]float64, len(values))
	for i, v := range values {
		rounded[i] = Round(v, precision)
	}

	return rounded
}

// FormatFloats renders values the way fmt prints a slice, e.g. [101.17 103.17].
func FormatFloats(values []float64, precision int) string {
	return fmt.Sprint(RoundAll(values, precision))
}

func Contains[T comparable](slice []T, el T) bool {
	for _, v := range slice {
		if v == el {
			return true
		}
	}

	return false
}
