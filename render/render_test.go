// SPDX-License-Identifier: MIT
package render_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsample/closeness"
	"github.com/katalvlaran/graphsample/distance"
	"github.com/katalvlaran/graphsample/render"
)

func TestBar(t *testing.T) {
	assert.Equal(t, 80, render.Bar(10, 10, 80))
	assert.Equal(t, 40, render.Bar(5, 10, 80))
	assert.Equal(t, 0, render.Bar(1, 100, 80)) // 80/100 rounds down
	assert.Equal(t, 0, render.Bar(1, 0, 80))
	assert.Equal(t, 0, render.Bar(1, 1, 0))
}

func TestHistogram_Layout(t *testing.T) {
	h := distance.Histogram{1: 4, 2: 2, 3: 1}
	var sb strings.Builder
	require.NoError(t, render.Histogram(&sb, h, 8))

	want := "Distance:\n" +
		"1: ********\n" +
		"2: ****\n" +
		"3: **\n" +
		"Distances with very low counts are omitted\n"
	assert.Equal(t, want, sb.String())
}

func TestHistogram_OmitsZeroBars(t *testing.T) {
	h := distance.Histogram{1: 1000, 7: 1}
	var sb strings.Builder
	require.NoError(t, render.Histogram(&sb, h, render.DefaultWidth))

	out := sb.String()
	assert.Contains(t, out, "1: "+strings.Repeat("*", 80)+"\n")
	assert.NotContains(t, out, "7:")
}

func TestHistogram_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, render.Histogram(&sb, distance.Histogram{}, 0))
	assert.Equal(t, "Distance:\nDistances with very low counts are omitted\n", sb.String())
}

func TestRanking(t *testing.T) {
	r := closeness.NewRanking([]closeness.Entry{
		{Node: 4, Score: math.NaN()},
		{Node: 2, Score: 1},
		{Node: 0, Score: 0.75},
	})
	var sb strings.Builder
	require.NoError(t, render.Ranking(&sb, "Top 2 Out Closenesses:", r, 2))
	assert.Equal(t, "Top 2 Out Closenesses:\n(2, 1.0)\n(0, 0.75)\n", sb.String())

	sb.Reset()
	require.NoError(t, render.Ranking(&sb, "All:", r, 0))
	assert.Equal(t, "All:\n(2, 1.0)\n(0, 0.75)\n(4, NaN)\n", sb.String())
}

func TestRanking_FullPrecision(t *testing.T) {
	r := closeness.NewRanking([]closeness.Entry{
		{Node: 1, Score: 2.0 / 3.0},
		{Node: 7, Score: 1e-9},
	})
	var sb strings.Builder
	require.NoError(t, render.Ranking(&sb, "Scores:", r, 0))
	assert.Equal(t, "Scores:\n(1, 0.6666666666666666)\n(7, 1e-09)\n", sb.String())
}

type failingWriter struct{ calls int }

var errBroken = errors.New("broken pipe")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errBroken
}

func TestWriteErrorStopsOutput(t *testing.T) {
	fw := &failingWriter{}
	err := render.Histogram(fw, distance.Histogram{1: 1, 2: 1}, 10)
	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, 1, fw.calls)
}
