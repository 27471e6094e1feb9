package analysis

import (
	"time"

	"github.com/ws396/wmacalc/internal/techanext"
	"github.com/ws396/wmacalc/internal/wma"
)

type Analysis struct {
	Prices            []float64 `json:"prices" yaml:"prices"`
	Weights           []float64 `json:"weights" yaml:"weights"`
	NormalizedWeights []float64 `json:"normalizedWeights" yaml:"normalizedWeights"`
	Averages          []float64 `json:"averages" yaml:"averages"`
	Windows           int       `json:"windows" yaml:"windows"`
	First             float64   `json:"first" yaml:"first"`
	Last              float64   `json:"last" yaml:"last"`
	Min               float64   `json:"min" yaml:"min"`
	Max               float64   `json:"max" yaml:"max"`
	Decimal           bool      `json:"decimal" yaml:"decimal"`
	CreatedAt         time.Time `json:"createdAt" yaml:"createdAt"`
}

// CreateAnalysis averages prices with weights, in decimal arithmetic when decimal is
// set, and summarizes the result.
func CreateAnalysis(prices, weights []float64, decimal bool) (*Analysis, error) {
	var averages []float64
	if decimal {
		decimals, err := techanext.WeightedAverages(prices, weights)
		if err != nil {
			return nil, err
		}

		averages = make([]float64, len(decimals))
		for i, d := range decimals {
			averages[i] = d.Float()
		}
	} else {
		var err error
		averages, err = wma.Calculate(prices, weights)
		if err != nil {
			return nil, err
		}
	}

	normalized, err := wma.Normalize(weights)
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Prices:            append([]float64(nil), prices...),
		Weights:           append([]float64(nil), weights...),
		NormalizedWeights: normalized,
		Averages:          averages,
		Windows:           len(averages),
		First:             averages[0],
		Last:              averages[len(averages)-1],
		Min:               averages[0],
		Max:               averages[0],
		Decimal:           decimal,
		CreatedAt:         time.Now(),
	}

	for _, v := range averages[1:] {
		if v < a.Min {
			a.Min = v
		}
		if v > a.Max {
			a.Max = v
		}
	}

	return a, nil
}
