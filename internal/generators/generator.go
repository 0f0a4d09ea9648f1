package generators

import (
	"math/rand"
)

// Generator synthesizes one plausible value of a single semantic category.
type Generator interface {
	Generate(rng *rand.Rand, ctx GeneratorContext) (string, error)
}

type GeneratorContext struct {
	RowIndex int
	Column   string
}
