package engine

import "errors"

// Sentinel errors for the coder engine. The root package re-exports these
// under the cabac.Err* names so callers can use errors.Is without importing
// this internal package.
var (
	// ErrInvalidPrecision is returned when precision < 2.
	ErrInvalidPrecision = errors.New("cabac: precision must be >= 2")

	// ErrInvalidContextWindow is returned when the context window is negative.
	ErrInvalidContextWindow = errors.New("cabac: context window must be >= 0")

	// ErrModelRange is returned when the probability model returns a value
	// outside [0, 1].
	ErrModelRange = errors.New("cabac: model returned probability outside [0, 1]")

	// ErrModelViolation is returned during decode when the interval becomes
	// empty or value falls outside [low, high]. This indicates the decoder's
	// model disagrees with the encoder's, or the stream is corrupted. Encode
	// also returns it when the model leaves the bit being encoded an empty
	// subinterval.
	ErrModelViolation = errors.New("cabac: decoder interval violation (model mismatch or corrupt stream)")

	// ErrLengthMismatch is returned when Decode is given a negative sequence
	// length. Decode does not return it for short input: encoded bits missing
	// past the end are read as 0.
	ErrLengthMismatch = errors.New("cabac: insufficient encoded bits for requested sequence length")
)
