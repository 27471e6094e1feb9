package techanext

import (
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/wma"
)

// NewSeries lays prices out as consecutive candles of the given period, each candle
// opening and closing at its price.
func NewSeries(prices []float64, period time.Duration) *techan.TimeSeries {
	series := techan.NewTimeSeries()

	for i, p := range prices {
		candle := techan.NewCandle(techan.NewTimePeriod(time.Unix(0, 0).Add(time.Duration(i)*period), period))
		candle.OpenPrice = big.NewDecimal(p)
		candle.ClosePrice = big.NewDecimal(p)
		candle.MaxPrice = big.NewDecimal(p)
		candle.MinPrice = big.NewDecimal(p)

		series.AddCandle(candle)
	}

	return series
}

// WeightedAverages is the decimal counterpart of wma.Calculate.
func WeightedAverages(prices, weights []float64) ([]big.Decimal, error) {
	if err := wma.CheckShape(len(prices), len(weights)); err != nil {
		return nil, err
	}

	decWeights := Decimals(weights)
	total := big.ZERO
	for _, w := range decWeights {
		total = total.Add(w)
	}
	if total.EQ(big.ZERO) {
		return nil, globals.ErrZeroWeightSum
	}

	series := NewSeries(prices, globals.CandlePeriod)
	indicator := NewWeightedIndicator(techan.NewClosePriceIndicator(series), decWeights)

	result := make([]big.Decimal, 0, len(prices)-len(weights)+1)
	for index := len(weights) - 1; index < len(prices); index++ {
		result = append(result, indicator.Calculate(index))
	}

	return result, nil
}
