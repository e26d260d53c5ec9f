package cabac

import "github.com/mrjoshuak/cabac/internal/engine"

// Encode compresses bits under model, using precision bits of interval
// state and a context window of contextWindow of the most recently coded
// bits.
//
// precision must be at least 2; model must be deterministic and return
// values in [0, 1] for every context it is asked about. The same precision,
// contextWindow, and model must be used to Decode the result.
func Encode(bits Bits, model Model, precision, contextWindow int) (Bits, error) {
	prob := func(ctx []byte) float64 { return model.Probability(Bits(ctx)) }
	out, err := engine.Encode(toEngine(bits), prob, precision, contextWindow)
	if err != nil {
		return nil, err
	}
	return fromEngine(out), nil
}
