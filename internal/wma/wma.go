// Package wma computes weighted moving averages over price series.
//
// A window is a contiguous run of prices as long as the weight series. Weights
// are normalized to sum to 1 before they are applied, so every result is a true
// weighted average of its window.
package wma

import (
	"github.com/ws396/wmacalc/internal/globals"
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type a series can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// CheckShape reports whether a price series of length prices can be averaged
// with a weight series of length weights.
func CheckShape(prices, weights int) error {
	if prices == 0 {
		return globals.ErrEmptyPrices
	}
	if weights == 0 {
		return globals.ErrEmptyWeights
	}
	if weights > prices {
		return globals.ErrWindowTooLarge
	}

	return nil
}

// Normalize rescales weights so they sum to 1.
func Normalize[W Number](weights []W) ([]float64, error) {
	if len(weights) == 0 {
		return nil, globals.ErrEmptyWeights
	}

	var total float64
	for _, w := range weights {
		total += float64(w)
	}

	if total == 0 {
		return nil, globals.ErrZeroWeightSum
	}

	normalized := make([]float64, len(weights))
	for j, w := range weights {
		normalized[j] = float64(w) / total
	}

	return normalized, nil
}

// Calculate returns one weighted average per window, in the order of prices.
// The result holds len(prices)-len(weights)+1 values.
func Calculate[P, W Number](prices []P, weights []W) ([]float64, error) {
	if err := CheckShape(len(prices), len(weights)); err != nil {
		return nil, err
	}

	normalized, err := Normalize(weights)
	if err != nil {
		return nil, err
	}

	m := len(normalized)
	result := make([]float64, 0, len(prices)-m+1)
	for i := 0; i <= len(prices)-m; i++ {
		var sum float64
		for j, w := range normalized {
			sum += float64(prices[i+j]) * w
		}

		result = append(result, sum)
	}

	return result, nil
}

// LinearWeights returns 1, 2, ..., window, giving the most recent price in a
// window the largest weight.
func LinearWeights(window int) []float64 {
	if window <= 0 {
		return nil
	}

	weights := make([]float64, window)
	for i := range weights {
		weights[i] = float64(i + 1)
	}

	return weights
}
