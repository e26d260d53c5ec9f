package cabac

import "github.com/mrjoshuak/cabac/internal/engine"

// Decode recovers length bits from encoded, the inverse of Encode. model,
// precision, and contextWindow must match the values used to produce
// encoded exactly; encoded must be passed verbatim, with no reordering and
// no truncation of trailing padding bits below precision bits.
func Decode(encoded Bits, model Model, length, precision, contextWindow int) (Bits, error) {
	prob := func(ctx []byte) float64 { return model.Probability(Bits(ctx)) }
	out, err := engine.Decode(toEngine(encoded), prob, length, precision, contextWindow)
	if err != nil {
		return nil, err
	}
	return fromEngine(out), nil
}
