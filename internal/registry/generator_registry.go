package registry

import (
	"fmt"
	"sync"

	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/generators"
)

type GeneratorRegistry struct {
	mu         sync.RWMutex
	generators map[domain.GeneratorKind]generators.Generator
}

func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		generators: make(map[domain.GeneratorKind]generators.Generator),
	}
}

func (r *GeneratorRegistry) Register(kind domain.GeneratorKind, gen generators.Generator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[kind] = gen
}

func (r *GeneratorRegistry) Get(kind domain.GeneratorKind) (generators.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gen, ok := r.generators[kind]
	if !ok {
		return nil, fmt.Errorf("generator not found: %w", &domain.UnsupportedGeneratorKindError{Kind: string(kind)})
	}
	return gen, nil
}

// List returns registered kinds in declaration order.
func (r *GeneratorRegistry) List() []domain.GeneratorKind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]domain.GeneratorKind, 0, len(r.generators))
	for _, k := range domain.AllGeneratorKinds() {
		if _, ok := r.generators[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func DefaultGeneratorRegistry() *GeneratorRegistry {
	r := NewGeneratorRegistry()
	r.Register(domain.KindFirstName, &generators.FakerFirstNameGenerator{})
	r.Register(domain.KindLastName, &generators.FakerLastNameGenerator{})
	r.Register(domain.KindCityName, &generators.FakerCityGenerator{})
	r.Register(domain.KindStreetName, &generators.FakerStreetNameGenerator{})
	r.Register(domain.KindZipCode, &generators.FakerZipCodeGenerator{})
	r.Register(domain.KindEmail, &generators.FakerEmailGenerator{})
	r.Register(domain.KindUsername, &generators.FakerUsernameGenerator{})
	r.Register(domain.KindPassword, &generators.PasswordGenerator{MinLen: 8, MaxLen: 12})
	r.Register(domain.KindColor, &generators.ColorGenerator{})
	r.Register(domain.KindParagraph, &generators.FakerParagraphGenerator{MinSentences: 1, MaxSentences: 2})
	r.Register(domain.KindNumber, &generators.UniformIntGenerator{Min: 1, Max: 100})
	return r
}
