// SPDX-License-Identifier: MIT
//
// File: render.go
// Role: Histogram bar chart and ranking listings.

package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsample/closeness"
	"github.com/katalvlaran/graphsample/distance"
)

// DefaultWidth is the maximum bar length in characters.
const DefaultWidth = 80

const (
	histogramHeader  = "Distance:"
	histogramCaption = "Distances with very low counts are omitted"
	barGlyph         = "*"
)

// Bar returns the bar length for count against maxCount at the given width.
// It returns 0 when maxCount or width is not positive.
func Bar(count, maxCount, width int) int {
	if maxCount <= 0 || width <= 0 || count <= 0 {
		return 0
	}
	return count * width / maxCount
}

// Histogram writes h as a star bar chart. A non-positive width falls back to
// DefaultWidth. An empty histogram produces the header and caption only.
func Histogram(w io.Writer, h distance.Histogram, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	ew := &errWriter{w: w}
	ew.println(histogramHeader)

	maxCount := h.MaxCount()
	for _, d := range h.Distances() {
		n := Bar(h[d], maxCount, width)
		if n == 0 {
			continue
		}
		ew.printf("%d: %s\n", d, strings.Repeat(barGlyph, n))
	}
	ew.println(histogramCaption)

	return ew.err
}

// Ranking writes title followed by the first n entries of r as
// "(node, score)" lines. n <= 0 prints every entry.
func Ranking(w io.Writer, title string, r closeness.Ranking, n int) error {
	if n > 0 {
		r = r.Top(n)
	}
	ew := &errWriter{w: w}
	ew.println(title)
	for _, e := range r {
		ew.printf("(%d, %s)\n", e.Node, formatScore(e.Score))
	}

	return ew.err
}

// formatScore prints the shortest round-trip form, always with a fraction
// or exponent ("1.0", "0.75", "NaN").
func formatScore(s float64) string {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return strconv.FormatFloat(s, 'g', -1, 64)
	}
	out := strconv.FormatFloat(s, 'g', -1, 64)
	if !strings.ContainsAny(out, ".e") {
		out += ".0"
	}
	return out
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s+"\n")
}
