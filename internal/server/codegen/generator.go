// Package codegen produces the six-digit verification codes sent to users.
package codegen

import "math/rand/v2"

// Digits is the number of decimal digits in a code.
const Digits = 6

// Generator produces a new verification code below 10^Digits.
type Generator interface {
	Generate() uint32
}

// RandomGenerator draws every digit independently and uniformly from 0-9.
// Codes are human-facing and short-lived, so a non-cryptographic source is
// enough.
type RandomGenerator struct {
	intN func(n int) int
}

// NewRandomGenerator uses the process-wide math/rand/v2 source.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{intN: rand.IntN}
}

// NewSeededGenerator draws digits from r; used for reproducible codes.
func NewSeededGenerator(r *rand.Rand) *RandomGenerator {
	return &RandomGenerator{intN: r.IntN}
}

func (g *RandomGenerator) Generate() uint32 {
	var code uint32
	for i := 0; i < Digits; i++ {
		code = code*10 + uint32(g.intN(10))
	}
	return code
}
