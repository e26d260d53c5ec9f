package engine

import "math/bits"

// renormCase identifies which of the three classical renormalization cases
// applies to the current interval, if any. Cases are mutually exclusive and
// must be tested in this order: E1, then E2, then E3.
type renormCase int

const (
	caseNone renormCase = iota
	caseE1              // top half: high < 2^(P-1)
	caseE2              // bottom half: low >= 2^(P-1)
	caseE3              // straddle: low >= 2^(P-2) and high < 3*2^(P-2)
)

// state is the P-bit-wide [low, high] interval shared by the encoder and the
// decoder. It owns no I/O and no model reference; it is pure arithmetic.
type state struct {
	precision uint
	low, high uint64
}

// newState returns the initial interval [0, 2^precision - 1].
func newState(precision uint) state {
	return state{precision: precision, low: 0, high: (uint64(1) << precision) - 1}
}

func (s *state) half() uint64 {
	return uint64(1) << (s.precision - 1)
}

func (s *state) quarter() uint64 {
	return uint64(1) << (s.precision - 2)
}

// midpoint computes high - ((range * p1s) >> precision), the boundary
// between the 0-subinterval [low, midpoint] and the 1-subinterval
// [midpoint+1, high]. The product range*p1s can require up to 2*precision
// bits, so it is computed as a 128-bit value via math/bits and shifted down
// without truncation.
//
// When p1s scales to the full range (p1 == 1.0 exactly, per scale's
// definition), the shifted product equals range itself, so the 0-subinterval
// is empty: high - range == low - 1, which underflows uint64 when low == 0
// instead of going negative the way the unbounded-precision reference does.
// zeroEmpty reports this case; callers must assign the whole interval to
// bit 1 rather than trust mid.
func (s *state) midpoint(p1s uint64) (mid uint64, zeroEmpty bool) {
	rng := s.high - s.low + 1
	hi, lo := bits.Mul64(rng, p1s)
	shift := shiftRight128(hi, lo, s.precision)
	if shift >= rng {
		return 0, true
	}
	return s.high - shift, false
}

// shiftRight128 computes (hi<<64 | lo) >> n, assuming the result fits in a
// uint64 (true here because n == precision and the product is bounded by
// range * 2^precision <= 2^precision * 2^precision).
func shiftRight128(hi, lo uint64, n uint) uint64 {
	switch {
	case n == 0:
		return lo
	case n < 64:
		return (hi << (64 - n)) | (lo >> n)
	default:
		return hi >> (n - 64)
	}
}

// classify determines which renormalization case applies, testing E1, E2,
// then E3 in order as required by spec.
func (s *state) classify() renormCase {
	if s.high < s.half() {
		return caseE1
	}
	if s.low >= s.half() {
		return caseE2
	}
	if s.low >= s.quarter() && s.high < 3*s.quarter() {
		return caseE3
	}
	return caseNone
}

// shiftE1 shifts low and high left by one bit, with low's new LSB 0 and
// high's new LSB 1.
func (s *state) shiftE1() {
	s.low <<= 1
	s.high = (s.high << 1) | 1
}

// shiftE2 subtracts 2^(P-1) from low and high, then shifts as shiftE1.
func (s *state) shiftE2() {
	half := s.half()
	s.low -= half
	s.high -= half
	s.shiftE1()
}

// shiftE3 subtracts 2^(P-2) from low and high, then shifts as shiftE1.
func (s *state) shiftE3() {
	quarter := s.quarter()
	s.low -= quarter
	s.high -= quarter
	s.shiftE1()
}

// partition applies a single partition step for the given decision bit,
// returning the midpoint that was used to classify it (or high when the
// 0-subinterval is empty).
func (s *state) partition(p1s uint64, bit byte) uint64 {
	mid, zeroEmpty := s.midpoint(p1s)
	if zeroEmpty {
		// p1 == 1.0 exactly: the 0-subinterval is empty, so the whole
		// current interval belongs to bit 1 and low/high are left as-is.
		// A 0 bit here is data the model itself says is impossible;
		// Encode reports ErrModelViolation before calling partition.
		return s.high
	}
	if bit == 0 {
		s.high = mid
	} else {
		s.low = mid + 1
	}
	return mid
}
