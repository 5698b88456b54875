package codegen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomGenerator_Range(t *testing.T) {
	g := NewRandomGenerator()
	for i := 0; i < 10000; i++ {
		assert.Less(t, g.Generate(), uint32(1_000_000))
	}
}

func TestRandomGenerator_EveryDigitAppearsInEveryPosition(t *testing.T) {
	g := NewSeededGenerator(rand.New(rand.NewPCG(1, 2)))

	var seen [Digits][10]bool
	for i := 0; i < 5000; i++ {
		c := g.Generate()
		for pos := 0; pos < Digits; pos++ {
			seen[pos][c%10] = true
			c /= 10
		}
	}

	for pos := range seen {
		for d, ok := range seen[pos] {
			assert.True(t, ok, "digit %d never drawn at position %d", d, pos)
		}
	}
}

func TestRandomGenerator_Seeded(t *testing.T) {
	a := NewSeededGenerator(rand.New(rand.NewPCG(7, 7)))
	b := NewSeededGenerator(rand.New(rand.NewPCG(7, 7)))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestRandomGenerator_FixedSource(t *testing.T) {
	digits := []int{0, 1, 2, 3, 4, 5}
	i := 0
	g := &RandomGenerator{intN: func(n int) int {
		d := digits[i%len(digits)]
		i++
		return d
	}}
	assert.Equal(t, uint32(12345), g.Generate(), "leading zero folds into a smaller number")
}
