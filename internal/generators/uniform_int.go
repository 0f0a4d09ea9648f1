package generators

import (
	"fmt"
	"math/rand"
	"strconv"
)

// UniformIntGenerator yields the decimal form of an integer in [Min, Max).
type UniformIntGenerator struct {
	Min int64
	Max int64
}

func (g *UniformIntGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	if g.Max <= g.Min {
		return "", fmt.Errorf("max (%d) must be greater than min (%d)", g.Max, g.Min)
	}
	return strconv.FormatInt(g.Min+rng.Int63n(g.Max-g.Min), 10), nil
}
