package engine

import "github.com/pkg/errors"

// validateParams fails fast on invalid precision or context window, per
// spec §7: invalid parameters must be rejected before any bits are
// processed.
func validateParams(precision, contextWindow int) error {
	if precision < 2 {
		return errors.Wrapf(ErrInvalidPrecision, "got %d", precision)
	}
	if contextWindow < 0 {
		return errors.Wrapf(ErrInvalidContextWindow, "got %d", contextWindow)
	}
	return nil
}

// queryModel invokes the probability function and validates its result is
// in [0, 1]. The core does not catch panics from prob; those propagate to
// the caller per spec §7.
func queryModel(prob ProbFunc, context []byte) (float64, error) {
	p1 := prob(context)
	if p1 < 0 || p1 > 1 {
		return 0, errors.Wrapf(ErrModelRange, "got %v for context %v", p1, context)
	}
	return p1, nil
}
