// SPDX-License-Identifier: MIT
//
// File: histogram.go
// Role: Histogram type and its summary statistics.

package distance

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Histogram maps a hop distance (> 0) to the number of times it was
// observed. Zero counts are never stored: an absent key means zero.
type Histogram map[int]int

// Total returns the number of observations.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// MaxCount returns the largest count (0 for an empty histogram).
func (h Histogram) MaxCount() int {
	m := 0
	for _, c := range h {
		m = max(m, c)
	}
	return m
}

// Distances returns the observed distances in ascending order.
func (h Histogram) Distances() []int {
	keys := make([]int, 0, len(h))
	for d := range h {
		keys = append(keys, d)
	}
	slices.Sort(keys)
	return keys
}

// Merge adds every count of other into h. Zero or negative counts in other
// are ignored so h never stores zeros.
func (h Histogram) Merge(other Histogram) {
	for d, c := range other {
		if c > 0 {
			h[d] += c
		}
	}
}

// Mean returns the count-weighted mean distance, NaN when h is empty.
// It equals the Mean estimate computed over the same observations.
func (h Histogram) Mean() float64 {
	x, w := h.weighted()
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, w)
}

// Quantile returns the smallest observed distance q such that at least a
// fraction p of the observations are ≤ q (empirical quantile).
// Quantile(0.9) is the usual "effective diameter". NaN when h is empty or p
// is outside [0,1].
func (h Histogram) Quantile(p float64) float64 {
	x, w := h.weighted()
	if len(x) == 0 || p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	return stat.Quantile(p, stat.Empirical, x, w)
}

// weighted returns ascending distances and their counts as float64 slices.
func (h Histogram) weighted() (x, w []float64) {
	keys := h.Distances()
	x = make([]float64, len(keys))
	w = make([]float64, len(keys))
	for i, d := range keys {
		x[i] = float64(d)
		w[i] = float64(h[d])
	}
	return x, w
}
