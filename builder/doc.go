// Package builder constructs core graphs from textual edge lists.
//
// The format is a whitespace-separated sequence of non-negative integers
// with an odd total count: the first integer N > 0 is the vertex count,
// followed by pairs (v,u), each in [0,N), applied via AddEdge in input
// order. Line breaks carry no meaning; any whitespace separates tokens.
//
//	5
//	0 1
//	1 2
//	2 0
//	1 3
//	3 4
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Format violations wrap the matching sentinel with positional
// context; a missing file surfaces the wrapped os.Open error, distinct
// from every format sentinel.
//
// Errors:
//
//	ErrNilReader    - FromReader received a nil reader.
//	ErrEmptyInput   - the input holds no leading integer.
//	ErrBadToken     - a token is not a valid integer.
//	ErrVertexCount  - the leading vertex count is not positive.
//	ErrUnpairedEdge - the input ends on a dangling endpoint.
//
// Out-of-range endpoints surface core.ErrVertexOutOfRange from AddEdge.
package builder
