package testutil

import (
	"testing"

	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"github.com/ws396/wmacalc/internal/globals"
	"github.com/ws396/wmacalc/internal/techanext"
	"github.com/ws396/wmacalc/internal/util"
)

var MockedTimeSeries = MockTimeSeries(globals.SamplePrices...)

func MockTimeSeries(values ...float64) *techan.TimeSeries {
	return techanext.NewSeries(values, globals.CandlePeriod)
}

// IndicatorEquals evaluates indicator at every index of series and compares the
// values, rounded to 4 decimals, with expected.
func IndicatorEquals(t *testing.T, expected []float64, indicator techan.Indicator, series *techan.TimeSeries) {
	actual := make([]float64, len(series.Candles))
	for index := range series.Candles {
		actual[index] = util.Round(indicator.Calculate(index).Float(), 4)
	}

	assert.EqualValues(t, expected, actual)
}

// SumFloats is used to check normalized weights.
func SumFloats(values []float64) (sum float64) {
	for _, v := range values {
		sum += v
	}

	return sum
}
