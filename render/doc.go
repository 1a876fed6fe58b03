// SPDX-License-Identifier: MIT

// Package render writes human-readable terminal output for the graphsample
// report: a star bar chart of a distance histogram and top-n closeness
// listings.
//
// Histogram layout (one line per surviving distance, ascending):
//
//	Distance:
//	1: ********************************************************************************
//	2: ****************************************
//	Distances with very low counts are omitted
//
// Bar length is count*width/maxCount using integer division, so the most
// frequent distance always gets exactly width stars and distances whose bar
// rounds down to zero are left out.
package render
