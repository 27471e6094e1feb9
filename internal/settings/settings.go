package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/util"
)

const (
	DefaultWeightsKey = "WMA_DEFAULT_WEIGHTS"
	PrecisionKey      = "WMA_PRECISION"
	OutputKey         = "WMA_OUTPUT"
	DecimalKey        = "WMA_DECIMAL"
	LogLevelKey       = "LOG_LEVEL"
	LogOutputKey      = "LOG_OUTPUT"
)

var keys = []string{
	DefaultWeightsKey,
	PrecisionKey,
	OutputKey,
	DecimalKey,
	LogLevelKey,
	LogOutputKey,
}

type Settings struct {
	DefaultWeights []float64
	Precision      int
	Output         string
	Decimal        bool
	LogLevel       string
	LogOutput      string
}

// Load reads the given .env files (".env" when none are given) into the process
// environment and then builds Settings from it. Missing files are not an error.
func Load(filenames ...string) (*Settings, error) {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	return FromEnv()
}

func FromEnv() (*Settings, error) {
	env := map[string]string{}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}

	return Parse(env)
}

// Parse builds Settings from key/value pairs, filling in defaults for absent keys.
func Parse(env map[string]string) (*Settings, error) {
	s := &Settings{
		Precision: globals.DefaultPrecision,
		Output:    globals.DefaultOutput,
		LogLevel:  globals.DefaultLogLevel,
		LogOutput: globals.DefaultLogOutput,
	}

	if v := strings.TrimSpace(env[DefaultWeightsKey]); v != "" {
		weights, err := util.ParseFloats(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", globals.ErrInvalidSetting, DefaultWeightsKey, err)
		}

		s.DefaultWeights = weights
	}

	if v := strings.TrimSpace(env[PrecisionKey]); v != "" {
		precision, err := strconv.Atoi(v)
		if err != nil || precision < 0 || precision > globals.MaxPrecision {
			return nil, fmt.Errorf("%w: %s=%q", globals.ErrInvalidSetting, PrecisionKey, v)
		}

		s.Precision = precision
	}

	if v := strings.TrimSpace(env[OutputKey]); v != "" {
		output := strings.ToLower(v)
		if !util.Contains(globals.OutputFormats, output) {
			return nil, fmt.Errorf("%w: %s=%q", globals.ErrInvalidSetting, OutputKey, v)
		}

		s.Output = output
	}

	if v := strings.TrimSpace(env[DecimalKey]); v != "" {
		decimal, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", globals.ErrInvalidSetting, DecimalKey, v)
		}

		s.Decimal = decimal
	}

	if v := strings.TrimSpace(env[LogLevelKey]); v != "" {
		s.LogLevel = v
	}

	if v := strings.TrimSpace(env[LogOutputKey]); v != "" {
		s.LogOutput = v
	}

	return s, nil
}
