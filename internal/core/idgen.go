package core

import "math/rand/v2"

// IDLength is the number of digits in a generated identifier.
const IDLength = 6

const digits = "0123456789"

// IDSource produces candidate identifiers.
type IDSource interface {
	NextID() string
}

// IDSourceFunc adapts a function to the IDSource interface.
type IDSourceFunc func() string

func (f IDSourceFunc) NextID() string { return f() }

// RandomIDs draws IDLength digits per call.
type RandomIDs struct {
	rng *rand.Rand
}

// NewRandomIDs returns a source seeded from the runtime's random state.
func NewRandomIDs() *RandomIDs {
	return &RandomIDs{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededIDs returns a deterministic source.
func NewSeededIDs(seed1, seed2 uint64) *RandomIDs {
	return &RandomIDs{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (r *RandomIDs) NextID() string {
	b := make([]byte, IDLength)
	for i := range b {
		b[i] = digits[r.rng.IntN(len(digits))]
	}

	return string(b)
}
