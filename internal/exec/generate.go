package exec

import (
	"fmt"
	"math/rand"

	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/generators"
	"github.com/salsasteve/rainbow/internal/registry"
)

// RowGenerator materializes a full table from a column list.
type RowGenerator struct {
	genRegistry *registry.GeneratorRegistry
}

func NewRowGenerator(genRegistry *registry.GeneratorRegistry) *RowGenerator {
	return &RowGenerator{genRegistry: genRegistry}
}

// Generate returns rowCount rows, each keyed by the declared column names in
// declaration order. Kinds are resolved before any row is built, so a kind
// with no registered generator fails the call instead of being skipped.
func (g *RowGenerator) Generate(rng *rand.Rand, columns []domain.ColumnSpec, rowCount int) (domain.Table, error) {
	if rowCount < 0 {
		return nil, fmt.Errorf("rows must be >= 0, got %d", rowCount)
	}

	gens := make([]generators.Generator, len(columns))
	for i, col := range columns {
		if !col.Kind.Valid() {
			return nil, fmt.Errorf("column '%s': %w", col.Name, &domain.UnsupportedGeneratorKindError{Kind: string(col.Kind)})
		}
		gen, err := g.genRegistry.Get(col.Kind)
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", col.Name, err)
		}
		gens[i] = gen
	}

	table := make(domain.Table, 0, rowCount)
	for rowIdx := 0; rowIdx < rowCount; rowIdx++ {
		row := domain.NewRow(len(columns))
		for colIdx, col := range columns {
			val, err := gens[colIdx].Generate(rng, generators.GeneratorContext{RowIndex: rowIdx, Column: col.Name})
			if err != nil {
				return nil, fmt.Errorf("column '%s', row %d: %w", col.Name, rowIdx, err)
			}
			row.Set(col.Name, val)
		}
		table = append(table, row)
	}

	return table, nil
}
