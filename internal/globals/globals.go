package globals

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultPrecision int           = 2
	MaxPrecision     int           = 15
	DefaultOutput    string        = "txt"
	DefaultLogLevel  string        = "info"
	DefaultLogOutput string        = "stderr"
	CandlePeriod     time.Duration = time.Minute
)

var (
	// Sample scenario used by -sample and the menu.
	SamplePrices  = []float64{100, 102, 101, 105, 107, 110}
	SampleWeights = []float64{1, 2, 3}

	OutputFormats = []string{"txt", "styled", "json", "yaml", "stub"}

	ErrInvalidInput   = errors.New("err: invalid input")
	ErrEmptyPrices    = fmt.Errorf("%w: price series is empty", ErrInvalidInput)
	ErrEmptyWeights   = fmt.Errorf("%w: weight series is empty", ErrInvalidInput)
	ErrWindowTooLarge = fmt.Errorf("%w: weight series is longer than price series", ErrInvalidInput)
	ErrZeroWeightSum  = fmt.Errorf("%w: weights sum to zero", ErrInvalidInput)
	ErrBadNumber      = fmt.Errorf("%w: could not parse number", ErrInvalidInput)
	ErrBadWindow      = fmt.Errorf("%w: window must be positive", ErrInvalidInput)

	ErrConflictingWeights = errors.New("err: use either -weights or -linear")
	ErrConflictingPrices  = errors.New("err: use either -prices or positional prices")
	ErrConflictingSample  = errors.New("err: -sample takes no prices or weights")

	ErrInvalidSetting = errors.New("err: invalid setting")
	ErrWriterNotFound = errors.New("err: writer not found")
	ErrNoPrices       = errors.New("err: no prices entered")
	ErrNoWeights      = errors.New("err: no weights entered")
)
