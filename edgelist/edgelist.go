// SPDX-License-Identifier: MIT
//
// Package edgelist reads directed graphs from whitespace-separated edge
// list text, one "from to" pair of non-negative integers per line, as
// distributed by SNAP (e.g. amazon0302.txt).
//
// Line rules:
//
//   - Blank lines and lines starting with '#' are comments.
//   - Every token of every other line must be a non-negative base-10
//     integer; the first one that is not aborts the whole load with
//     ErrBadToken (no partial graph), whatever the line's token count.
//   - Well-formed lines with a token count other than two are skipped.
//
// The resulting graph has N = max(from, to) + 1 nodes and only forward
// edges, in file order per source node.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsample/core"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrBadToken is returned when a from/to token is not a non-negative integer.
	ErrBadToken = errors.New("edgelist: invalid node token")

	// ErrRead wraps failures to open or read the input.
	ErrRead = errors.New("edgelist: read failed")
)

// commentPrefix starts a comment line.
const commentPrefix = "#"

// maxLineBytes bounds a single line; SNAP lines are far shorter.
const maxLineBytes = 1 << 20

// Stats describes one parse.
type Stats struct {
	Lines    int // lines read
	Edges    int // edges kept
	Skipped  int // lines with a token count other than two
	Comments int // blank and '#' lines
}

// Read parses r into a Graph.
func Read(r io.Reader) (*core.Graph, Stats, error) {
	var (
		st    Stats
		edges []core.Edge
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		st.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			st.Comments++
			continue
		}
		fields := strings.Fields(line)
		ids := make([]int, len(fields))
		for i, tok := range fields {
			v, err := parseNode(tok)
			if err != nil {
				return nil, st, fmt.Errorf("line %d: %w", st.Lines, err)
			}
			ids[i] = v
		}
		if len(ids) != 2 {
			st.Skipped++
			continue
		}
		edges = append(edges, core.Edge{From: ids[0], To: ids[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("%w: %w", ErrRead, err)
	}

	st.Edges = len(edges)
	g, err := core.FromEdges(edges)
	if err != nil {
		return nil, st, err
	}
	return g, st, nil
}

// Load opens path and parses it with Read.
func Load(path string) (*core.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	g, st, err := Read(f)
	if err != nil {
		return nil, st, fmt.Errorf("%s: %w", path, err)
	}
	return g, st, nil
}

// parseNode accepts a non-negative base-10 integer.
func parseNode(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}
	return v, nil
}
