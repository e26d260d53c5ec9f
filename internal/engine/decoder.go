package engine

import "github.com/pkg/errors"

// Decode implements the decoder half of spec §4.4. It is re-entrant on the
// same partition/renormalize machinery as Encode, with value taking the
// place of the bit being emitted: value <= midpoint decodes a 0, otherwise a
// 1 — except when the model assigns the whole interval to bit 1 (p1 == 1.0
// exactly), in which case there is no midpoint to compare against.
func Decode(encoded []byte, prob ProbFunc, length, precision, contextWindow int) ([]byte, error) {
	if err := validateParams(precision, contextWindow); err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errors.Wrapf(ErrLengthMismatch, "negative sequence length %d", length)
	}

	st := newState(uint(precision))
	win := newWindow(contextWindow)

	padded := encoded
	if len(padded) < precision {
		padded = make([]byte, precision)
		copy(padded, encoded)
	}

	var value uint64
	for i := 0; i < precision; i++ {
		value = (value << 1) | uint64(padded[i]&1)
	}
	pos := precision

	nextBit := func() uint64 {
		if pos < len(padded) {
			b := uint64(padded[pos] & 1)
			pos++
			return b
		}
		pos++
		return 0
	}

	out := make([]byte, 0, length)

	for i := 0; i < length; i++ {
		if value < st.low || value > st.high {
			return nil, errors.Wrapf(ErrModelViolation, "position %d: value=%d not in [%d, %d]", i, value, st.low, st.high)
		}

		ctx := win.bits()
		p1, err := queryModel(prob, ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", i)
		}
		p1s := scale(p1, st.precision)
		mid, zeroEmpty := st.midpoint(p1s)

		var bit byte
		switch {
		case zeroEmpty:
			// p1 == 1.0 exactly: the 0-subinterval is empty, so value
			// (already confirmed to be in [low, high] above) can only
			// belong to bit 1. low/high are left as-is.
			bit = 1
		case value <= mid:
			bit = 0
			st.high = mid
		default:
			bit = 1
			st.low = mid + 1
		}
		out = append(out, bit)
		win.append(bit)

	renorm:
		for {
			switch st.classify() {
			case caseE1:
				st.shiftE1()
				value = (value << 1) | nextBit()
			case caseE2:
				half := st.half()
				st.shiftE2()
				value = ((value - half) << 1) | nextBit()
			case caseE3:
				quarter := st.quarter()
				st.shiftE3()
				value = ((value - quarter) << 1) | nextBit()
			default:
				break renorm
			}
		}

		if st.low > st.high {
			return nil, errors.Wrapf(ErrModelViolation, "position %d: empty interval after renormalization", i)
		}
	}

	return out, nil
}
