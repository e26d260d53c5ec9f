package engine

import "github.com/pkg/errors"

// ProbFunc is the engine's view of a probability model: a pure function from
// an ordered context bit slice to P(bit=1). The root package adapts its
// public Model interface to this shape when calling into the engine, so this
// package never needs to know about the public Bits/Model types.
type ProbFunc func(context []byte) float64

// Encode implements the encoder half of spec §4.4: partition, update
// context, renormalize for every input bit, then run the termination
// procedure of spec §4.3.
func Encode(input []byte, prob ProbFunc, precision, contextWindow int) ([]byte, error) {
	if err := validateParams(precision, contextWindow); err != nil {
		return nil, err
	}

	st := newState(uint(precision))
	win := newWindow(contextWindow)
	var pending uint64
	out := make([]byte, 0, len(input)+precision)

	emit := func(bit byte) {
		out = append(out, bit)
	}

	for i, bit := range input {
		p1, err := queryModel(prob, win.bits())
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", i)
		}
		p1s := scale(p1, st.precision)
		if mid, zeroEmpty := st.midpoint(p1s); (zeroEmpty && bit == 0) || (!zeroEmpty && bit != 0 && mid == st.high) {
			return nil, errors.Wrapf(ErrModelViolation, "position %d: model leaves bit %d an empty subinterval", i, bit)
		}
		st.partition(p1s, bit)
		win.append(bit)

	renorm:
		for {
			switch st.classify() {
			case caseE1:
				emit(0)
				for ; pending > 0; pending-- {
					emit(1)
				}
				st.shiftE1()
			case caseE2:
				emit(1)
				for ; pending > 0; pending-- {
					emit(0)
				}
				st.shiftE2()
			case caseE3:
				pending++
				st.shiftE3()
			default:
				break renorm
			}
		}
	}

	terminate(&out, st, pending)
	for len(out) < precision {
		out = append(out, 0)
	}
	return out, nil
}

// terminate emits enough bits to uniquely identify the final interval, per
// spec §4.3: the low < 2^(P-2) branch additionally appends an extra 1 bit,
// an asymmetry preserved from the reference implementation (see DESIGN.md).
func terminate(out *[]byte, st state, pending uint64) {
	if st.low < st.quarter() {
		*out = append(*out, 0)
		for ; pending > 0; pending-- {
			*out = append(*out, 1)
		}
		*out = append(*out, 1)
	} else {
		*out = append(*out, 1)
		for ; pending > 0; pending-- {
			*out = append(*out, 0)
		}
	}
}
