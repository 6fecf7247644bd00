// Sentinel errors for the builder package.
//
// Only package-level sentinels are exposed; implementations attach
// positional context with %w wrapping, so errors.Is keeps working.

package builder

import "errors"

// ErrNilReader indicates FromReader received a nil io.Reader.
var ErrNilReader = errors.New("builder: reader is nil")

// ErrEmptyInput indicates the input held no leading integer at all.
var ErrEmptyInput = errors.New("builder: input holds no vertex count")

// ErrBadToken indicates a token that does not parse as an integer.
var ErrBadToken = errors.New("builder: token is not an integer")

// ErrVertexCount indicates a leading vertex count that is not positive.
var ErrVertexCount = errors.New("builder: vertex count must be positive")

// ErrUnpairedEdge indicates the input ended on a dangling edge endpoint,
// i.e. the total token count was even.
var ErrUnpairedEdge = errors.New("builder: dangling edge endpoint")
