package engine

import "math"

// scale maps a real-valued probability p1 in [0, 1] to an integer in
// [0, 2^precision], representing the probability mass assigned to the 1
// symbol. Rounding is truncation toward zero, applied identically on the
// encode and decode sides so both partition the interval bit-for-bit the
// same way.
func scale(p1 float64, precision uint) uint64 {
	max := uint64(1) << precision
	scaled := uint64(math.Floor(p1 * float64(max)))
	if scaled > max {
		scaled = max
	}
	return scaled
}
