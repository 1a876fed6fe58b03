// SPDX-License-Identifier: MIT
package render_test

import (
	"os"

	"github.com/katalvlaran/graphsample/distance"
	"github.com/katalvlaran/graphsample/render"
)

func ExampleHistogram() {
	_ = render.Histogram(os.Stdout, distance.Histogram{1: 4, 2: 2}, 10)
	// Output:
	// Distance:
	// 1: **********
	// 2: *****
	// Distances with very low counts are omitted
}
