package generators

import (
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
)

type FakerFirstNameGenerator struct{}

func (g *FakerFirstNameGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	return faker.FirstName(), nil
}

type FakerLastNameGenerator struct{}

func (g *FakerLastNameGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	return faker.LastName(), nil
}

type FakerCityGenerator struct{}

func (g *FakerCityGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	return faker.GetRealAddress().City, nil
}

type FakerZipCodeGenerator struct{}

func (g *FakerZipCodeGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	return faker.GetRealAddress().PostalCode, nil
}

type FakerStreetNameGenerator struct{}

var streetSuffixes = []string{
	"Street", "Avenue", "Road", "Lane", "Drive", "Court", "Boulevard",
	"Way", "Place", "Terrace", "Parkway", "Circle", "Trail",
}

func (g *FakerStreetNameGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	return faker.LastName() + " " + streetSuffixes[rng.Intn(len(streetSuffixes))], nil
}

type FakerEmailGenerator struct{}

func (g *FakerEmailGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	return faker.Email(), nil
}

type FakerUsernameGenerator struct{}

func (g *FakerUsernameGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	return faker.Username(), nil
}

// FakerParagraphGenerator joins between MinSentences and MaxSentences
// (inclusive) faker sentences.
type FakerParagraphGenerator struct {
	MinSentences int
	MaxSentences int
}

func (g *FakerParagraphGenerator) Generate(rng *rand.Rand, ctx GeneratorContext) (string, error) {
	lo, hi := g.MinSentences, g.MaxSentences
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	n := lo + rng.Intn(hi-lo+1)
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = faker.Sentence()
	}
	return strings.Join(sentences, " "), nil
}
