package cabac

import "github.com/mrjoshuak/cabac/internal/engine"

// Sentinel errors re-exported from the internal engine so callers can use
// errors.Is(err, cabac.ErrModelViolation) etc. without importing an internal
// package.
var (
	// ErrInvalidPrecision is returned when precision < 2.
	ErrInvalidPrecision = engine.ErrInvalidPrecision

	// ErrInvalidContextWindow is returned when the context window is negative.
	ErrInvalidContextWindow = engine.ErrInvalidContextWindow

	// ErrModelRange is returned when the probability model returns a value
	// outside [0, 1].
	ErrModelRange = engine.ErrModelRange

	// ErrModelViolation is returned during decode when the interval becomes
	// empty or value falls outside [low, high] — the decoder's model
	// disagreed with the encoder's, or the stream is corrupted. Encode also
	// returns it when the model leaves the bit being encoded an empty
	// subinterval.
	ErrModelViolation = engine.ErrModelViolation

	// ErrLengthMismatch is returned when Decode is given a negative length,
	// and by EncodeBytes when bitLength is negative or exceeds the data.
	// Decode does not return it for short input: encoded bits missing past
	// the end are read as 0.
	ErrLengthMismatch = engine.ErrLengthMismatch
)
