package techanext_test

import (
	"testing"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/techanext"
	"github.com/ws396/wmacalc/internal/testutil"
	"github.com/ws396/wmacalc/internal/wma"
)

func TestWeightedIndicator(t *testing.T) {
	indicator := techanext.NewWeightedIndicator(
		techan.NewClosePriceIndicator(
			testutil.MockedTimeSeries,
		), techanext.Decimals(globals.SampleWeights),
	)

	expectedValues := []float64{
		0,
		0,
		101.1667,
		103.1667,
		105.3333,
		108.1667,
	}

	testutil.IndicatorEquals(t, expectedValues, indicator, testutil.MockedTimeSeries)
}

func TestWMAIndicator(t *testing.T) {
	indicator := techanext.NewWMAIndicator(
		techan.NewClosePriceIndicator(
			testutil.MockedTimeSeries,
		), 3,
	)

	expectedValues := []float64{
		0,
		0,
		101.1667,
		103.1667,
		105.3333,
		108.1667,
	}

	testutil.IndicatorEquals(t, expectedValues, indicator, testutil.MockedTimeSeries)
}

func TestWeightedIndicatorSingleWeight(t *testing.T) {
	series := testutil.MockTimeSeries(42, 43.5, 41.25)
	indicator := techanext.NewWeightedIndicator(
		techan.NewClosePriceIndicator(series),
		[]big.Decimal{big.NewDecimal(4)},
	)

	testutil.IndicatorEquals(t, []float64{42, 43.5, 41.25}, indicator, series)
}

func TestWeightedIndicatorZeroWeights(t *testing.T) {
	close := techan.NewClosePriceIndicator(testutil.MockTimeSeries(42, 42))
	indicator := techanext.NewWeightedIndicator(close, []big.Decimal{big.ZERO, big.ZERO})
	assert.Equal(t, big.ZERO.FormattedString(2), indicator.Calculate(1).FormattedString(2))
}

func TestWeightedAverages(t *testing.T) {
	t.Run("agrees with the float computation", func(t *testing.T) {
		cases := []struct {
			prices  []float64
			weights []float64
		}{
			{globals.SamplePrices, globals.SampleWeights},
			{[]float64{64.75, 63.79, 63.73, 63.73, 63.55, 63.19, 63.91}, []float64{0.5, 0.25, 0.25}},
			{[]float64{1, 2, 3, 4}, []float64{1, 1, 1, 1}},
			{[]float64{10, 20, 30}, []float64{9}},
			{[]float64{5, 1, 5, 1, 5}, wma.LinearWeights(4)},
		}

		for _, c := range cases {
			decimals, err := techanext.WeightedAverages(c.prices, c.weights)
			require.NoError(t, err)
			floats, err := wma.Calculate(c.prices, c.weights)
			require.NoError(t, err)

			require.Len(t, decimals, len(floats))
			for i := range floats {
				assert.InDelta(t, floats[i], decimals[i].Float(), 1e-9)
			}
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := techanext.WeightedAverages(nil, []float64{1})
		assert.ErrorIs(t, err, globals.ErrEmptyPrices)

		_, err = techanext.WeightedAverages([]float64{1}, nil)
		assert.ErrorIs(t, err, globals.ErrEmptyWeights)

		_, err = techanext.WeightedAverages([]float64{1}, []float64{1, 2})
		assert.ErrorIs(t, err, globals.ErrWindowTooLarge)

		_, err = techanext.WeightedAverages([]float64{1, 2}, []float64{2, -2})
		assert.ErrorIs(t, err, globals.ErrZeroWeightSum)
		assert.ErrorIs(t, err, globals.ErrInvalidInput)
	})
}

func TestNewSeries(t *testing.T) {
	series := techanext.NewSeries(globals.SamplePrices, globals.CandlePeriod)

	require.Len(t, series.Candles, len(globals.SamplePrices))
	for i, p := range globals.SamplePrices {
		assert.Equal(t, p, series.Candles[i].ClosePrice.Float())
	}
}
