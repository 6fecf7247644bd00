// Sentinel errors, the undirected Edge value type, and shared constants.
//
// Error policy follows the usual rules: only package-level sentinels are
// exposed, callers branch with errors.Is, and implementations may attach
// context with %w wrapping.

package bicomp

import (
	"errors"
	"fmt"
)

// NoParent marks the absence of a parent: pass it to Traverse for the root
// of a pass, and Root returns it while no pass has assigned a root.
const NoParent = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to New.
	ErrGraphNil = errors.New("bicomp: graph is nil")

	// ErrVertexOutOfRange indicates a vertex identifier outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("bicomp: vertex out of range")

	// ErrParentOutOfRange indicates a parent identifier outside [NoParent, VertexCount).
	ErrParentOutOfRange = errors.New("bicomp: parent out of range")

	// ErrTraversalNotRun indicates Components was called before any Traverse.
	ErrTraversalNotRun = errors.New("bicomp: no traversal has been run")
)

// Edge is an undirected edge of a decomposed graph, reported as the ordered
// pair in which the replay emitted it. Two Edge values describe the same
// undirected edge when their endpoint sets match.
type Edge struct {
	// V is the endpoint the replay reached first.
	V int

	// U is the other endpoint.
	U int
}

// NewEdge builds an Edge and validates both endpoints against the given
// vertex count. Returns ErrVertexOutOfRange if either endpoint is outside
// [0, vertices).
func NewEdge(v, u, vertices int) (Edge, error) {
	if v < 0 || v >= vertices {
		return Edge{}, fmt.Errorf("endpoint %d: %w", v, ErrVertexOutOfRange)
	}
	if u < 0 || u >= vertices {
		return Edge{}, fmt.Errorf("endpoint %d: %w", u, ErrVertexOutOfRange)
	}

	return Edge{V: v, U: u}, nil
}

// String renders the edge as "v-u".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d", e.V, e.U)
}
