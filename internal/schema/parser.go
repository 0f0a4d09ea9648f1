package schema

import (
	"strings"

	"github.com/salsasteve/rainbow/internal/domain"
)

// Parse turns "name:Type,name:Type" into an ordered column list.
func Parse(spec string) ([]domain.ColumnSpec, error) {
	tokens := strings.Split(spec, ",")
	columns := make([]domain.ColumnSpec, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))

	for _, token := range tokens {
		parts := strings.Split(token, ":")
		if len(parts) != 2 {
			return nil, &domain.MalformedColumnTokenError{Token: token}
		}
		col, err := column(parts[0], parts[1], token)
		if err != nil {
			return nil, err
		}
		if seen[col.Name] {
			return nil, &domain.DuplicateColumnError{Name: col.Name}
		}
		seen[col.Name] = true
		columns = append(columns, col)
	}

	return columns, nil
}

// ParseFields validates columns declared one per entry in a schema file.
func ParseFields(fields []domain.SchemaColumn) ([]domain.ColumnSpec, error) {
	columns := make([]domain.ColumnSpec, 0, len(fields))
	seen := make(map[string]bool, len(fields))

	for _, f := range fields {
		col, err := column(f.Name, f.Type, f.Name+":"+f.Type)
		if err != nil {
			return nil, err
		}
		if seen[col.Name] {
			return nil, &domain.DuplicateColumnError{Name: col.Name}
		}
		seen[col.Name] = true
		columns = append(columns, col)
	}

	return columns, nil
}

// Resolve returns the columns a schema file declares, preferring Columns
// over the inline Spec form.
func Resolve(s *domain.Schema) ([]domain.ColumnSpec, error) {
	if len(s.Columns) > 0 {
		return ParseFields(s.Columns)
	}
	return Parse(s.Spec)
}

// Format renders columns back into the inline form accepted by Parse.
func Format(columns []domain.ColumnSpec) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c.Name + ":" + string(c.Kind)
	}
	return strings.Join(parts, ",")
}

func column(rawName, rawType, token string) (domain.ColumnSpec, error) {
	name := strings.TrimSpace(rawName)
	typ := strings.TrimSpace(rawType)
	if name == "" {
		return domain.ColumnSpec{}, &domain.MalformedColumnTokenError{Token: token}
	}
	kind, ok := domain.ParseGeneratorKind(typ)
	if !ok {
		return domain.ColumnSpec{}, &domain.UnsupportedGeneratorKindError{Kind: typ}
	}
	return domain.ColumnSpec{Name: name, Kind: kind}, nil
}
