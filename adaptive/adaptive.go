// Package adaptive provides a ready-made context-table probability model
// satisfying cabac.Model, for callers who have no domain-specific model of
// their own. It is a convenience built on top of the core coder, not part
// of it: internal/engine never imports this package, and nothing about the
// coder depends on the model being adaptive.
package adaptive

import (
	"sync"

	"github.com/mrjoshuak/cabac"
)

// Model is an order-N frequency-counting binary model: for each distinct
// context it has seen, it keeps a count of zeros and ones observed after
// that context, and reports the Laplace-smoothed fraction of ones as
// P(bit = 1 | context). N is the length of the context slice the coder
// passes to Probability, i.e. the contextWindow given to Encode/Decode.
//
// Probability trains itself as coding proceeds: since the context passed on
// call i+1 is the FIFO window with the bit coded at step i appended, Model
// recovers that bit from the tail of call i+1's context and folds it into
// the count for call i's context before answering. The encoder and decoder
// see the identical sequence of contexts when decoding succeeds, so two
// Models constructed the same way train identically on both sides without
// any explicit synchronization — the caller just passes a fresh *Model to
// Encode and a fresh *Model to Decode. A Model already used for Encode
// carries its counts into a later Decode and does not train the same way.
// With an empty context (contextWindow 0) there is no bit to recover, and
// Probability does not train.
//
// Observe is also exported directly for callers who want to pre-seed a
// model from known statistics, or drive training separately from coding.
type Model struct {
	mu          sync.Mutex
	counts      map[string]*tally
	havePrev    bool
	prevContext cabac.Bits
}

type tally struct {
	zeros, ones uint64
}

// New returns an empty Model with no observations.
func New() *Model {
	return &Model{counts: make(map[string]*tally)}
}

// Probability implements cabac.Model. An unseen context reports 0.5.
func (m *Model) Probability(context cabac.Bits) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.havePrev && len(context) > 0 {
		observed := context[len(context)-1]
		m.observeLocked(m.prevContext, observed)
	}
	m.prevContext = context
	m.havePrev = true

	return m.probabilityLocked(context)
}

func (m *Model) probabilityLocked(context cabac.Bits) float64 {
	t, ok := m.counts[string(context)]
	if !ok {
		return 0.5
	}
	total := t.zeros + t.ones
	return (float64(t.ones) + 1) / (float64(total) + 2)
}

// Observe records that bit followed context, updating the count used for
// future Probability calls against the same context. Probability already
// calls this automatically as coding proceeds; Observe is exposed for
// callers who want to train a Model ahead of time or independently of a
// live Encode/Decode call.
func (m *Model) Observe(context cabac.Bits, bit byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observeLocked(context, bit)
}

func (m *Model) observeLocked(context cabac.Bits, bit byte) {
	key := string(context)
	t, ok := m.counts[key]
	if !ok {
		t = &tally{}
		m.counts[key] = t
	}
	if bit != 0 {
		t.ones++
	} else {
		t.zeros++
	}
}

// Reset discards all observations and training state, returning the model
// to its initial uniform state.
func (m *Model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = make(map[string]*tally)
	m.havePrev = false
	m.prevContext = nil
}

// Seen reports how many distinct contexts the model has observed at least
// one bit for.
func (m *Model) Seen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.counts)
}
