// SPDX-License-Identifier: MIT
//
// File: ranking.go
// Role: Ranked (node, score) lists with a NaN-safe total order.

package closeness

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Entry is one scored node.
type Entry struct {
	Node  int
	Score float64
}

// Ranking is a list of entries sorted by Less.
type Ranking []Entry

// Less is the ranking order: higher score first, NaN after every number,
// equal scores (and NaN vs NaN) by ascending node index.
func Less(a, b Entry) bool {
	return compare(a, b) < 0
}

func compare(a, b Entry) int {
	aNaN, bNaN := math.IsNaN(a.Score), math.IsNaN(b.Score)
	switch {
	case aNaN && !bNaN:
		return 1
	case !aNaN && bNaN:
		return -1
	case !aNaN && a.Score > b.Score:
		return -1
	case !aNaN && a.Score < b.Score:
		return 1
	}
	switch {
	case a.Node < b.Node:
		return -1
	case a.Node > b.Node:
		return 1
	}
	return 0
}

// NewRanking sorts entries in place by Less and returns them as a Ranking.
func NewRanking(entries []Entry) Ranking {
	slices.SortFunc(entries, compare)
	return Ranking(entries)
}

// Top returns at most the first n entries. The result aliases r.
func (r Ranking) Top(n int) Ranking {
	if n < 0 {
		n = 0
	}
	return r[:min(n, len(r))]
}

// Scores returns the scores in ranking order.
func (r Ranking) Scores() []float64 {
	out := make([]float64, len(r))
	for i, e := range r {
		out[i] = e.Score
	}
	return out
}

// Summary describes the finite scores of a Ranking.
type Summary struct {
	Scored int     // entries with a finite score
	NaN    int     // entries whose score is NaN
	Mean   float64 // mean finite score (NaN when Scored == 0)
	StdDev float64 // sample standard deviation (NaN when Scored < 2)
}

// Summary computes mean and standard deviation over the finite scores.
func (r Ranking) Summary() Summary {
	finite := make([]float64, 0, len(r))
	s := Summary{}
	for _, e := range r {
		if math.IsNaN(e.Score) {
			s.NaN++
			continue
		}
		finite = append(finite, e.Score)
	}
	s.Scored = len(finite)
	s.Mean, s.StdDev = math.NaN(), math.NaN()
	switch {
	case s.Scored == 1:
		s.Mean = finite[0]
	case s.Scored > 1:
		s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)
	}
	return s
}
