package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/generators"
)

func TestDefaultRegistryCoversEveryKind(t *testing.T) {
	r := DefaultGeneratorRegistry()
	for _, k := range domain.AllGeneratorKinds() {
		if _, err := r.Get(k); err != nil {
			t.Fatalf("kind %s not registered: %v", k, err)
		}
	}
	if !reflect.DeepEqual(r.List(), domain.AllGeneratorKinds()) {
		t.Fatalf("List = %v", r.List())
	}
}

func TestGetUnknownKind(t *testing.T) {
	r := NewGeneratorRegistry()
	r.Register(domain.KindColor, &generators.ColorGenerator{})
	_, err := r.Get(domain.KindEmail)
	if !errors.Is(err, domain.ErrUnsupportedGeneratorKind) {
		t.Fatalf("expected unsupported kind error, got %v", err)
	}
	if got := r.List(); len(got) != 1 || got[0] != domain.KindColor {
		t.Fatalf("List = %v", got)
	}
}
