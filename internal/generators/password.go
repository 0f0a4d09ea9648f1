package generators

import (
	"fmt"
	"math/rand"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-_=+"

// PasswordGenerator yields a random string whose length lies in [MinLen, MaxLen).
type PasswordGenerator struct {
	MinLen int
	MaxLen int
}

func (g *PasswordGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	if g.MinLen <= 0 || g.MaxLen <= g.MinLen {
		return "", fmt.Errorf("invalid password length range [%d, %d)", g.MinLen, g.MaxLen)
	}
	n := g.MinLen + rng.Intn(g.MaxLen-g.MinLen)
	b := make([]byte, n)
	for i := range b {
		b[i] = passwordAlphabet[rng.Intn(len(passwordAlphabet))]
	}
	return string(b), nil
}
