package techanext

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/ws396/wmacalc/internal/wma"
)

type weightedIndicator struct {
	indicator techan.Indicator
	weights   []big.Decimal
	norm      big.Decimal
}

// NewWeightedIndicator returns an Indicator averaging the last len(weights) values of
// indicator, weights[0] applying to the oldest value of the window. Indices before the
// first full window calculate to zero.
func NewWeightedIndicator(indicator techan.Indicator, weights []big.Decimal) techan.Indicator {
	norm := big.ZERO
	for _, w := range weights {
		norm = norm.Add(w)
	}

	return weightedIndicator{
		indicator: indicator,
		weights:   weights,
		norm:      norm,
	}
}

func (wi weightedIndicator) Calculate(index int) big.Decimal {
	window := len(wi.weights)
	if window == 0 || index < window-1 || wi.norm.EQ(big.ZERO) {
		return big.ZERO
	}

	sum := big.ZERO
	start := index - window + 1
	for j, weight := range wi.weights {
		sum = sum.Add(wi.indicator.Calculate(start + j).Mul(weight))
	}

	return sum.Div(wi.norm)
}

// NewWMAIndicator returns the linear weighted moving average, weighting the values of a
// window 1 through window from oldest to newest.
func NewWMAIndicator(indicator techan.Indicator, window int) techan.Indicator {
	return NewWeightedIndicator(indicator, Decimals(wma.LinearWeights(window)))
}

// Decimals converts float weights or prices to big.Decimal.
func Decimals(values []float64) []big.Decimal {
	decimals := make([]big.Decimal, len(values))
	for i, v := range values {
		decimals[i] = big.NewDecimal(v)
	}

	return decimals
}
