// Edge-list loading into core.Graph.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/biconn/core"
)

// FromFile opens path and loads the edge-list it contains. A missing or
// unreadable file surfaces the wrapped os.Open error; everything after a
// successful open behaves exactly like FromReader.
func FromFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("builder: open graph file: %w", err)
	}
	defer f.Close()

	return FromReader(f)
}

// FromReader scans r as a whitespace-separated integer stream: vertex
// count first, then edge pairs, applied in input order. See the package
// documentation for the format and the sentinel taxonomy.
//
// Complexity: O(tokens); memory O(V+E) for the resulting graph.
func FromReader(r io.Reader) (*core.Graph, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	vertices, ok, err := nextInt(sc, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrEmptyInput
	}
	if vertices <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrVertexCount, vertices)
	}

	g, err := core.NewGraph(vertices)
	if err != nil {
		return nil, err
	}

	// Edge pairs until the stream ends; an odd tail is a format error.
	for pos := 1; ; pos += 2 {
		v, ok, err := nextInt(sc, pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			return g, nil
		}

		u, ok, err := nextInt(sc, pos+1)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: edge %d ends after vertex %d", ErrUnpairedEdge, pos/2, v)
		}

		if err = g.AddEdge(v, u); err != nil {
			return nil, fmt.Errorf("builder: edge %d (%d,%d): %w", pos/2, v, u, err)
		}
	}
}

// nextInt pulls the next whitespace-separated token and parses it. The
// boolean reports whether a token existed; pos is its zero-based index in
// the stream, used only for error context.
func nextInt(sc *bufio.Scanner, pos int) (int, bool, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, false, fmt.Errorf("builder: read token %d: %w", pos, err)
		}

		return 0, false, nil
	}

	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false, fmt.Errorf("%w: token %d %q", ErrBadToken, pos, sc.Text())
	}

	return n, true, nil
}
