package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/salsasteve/rainbow/internal/domain"
)

// identifier validation: allow simple SQL identifiers only (prevents injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reservedWords = map[string]struct{}{
		"add": {}, "all": {}, "alter": {}, "and": {}, "any": {}, "as": {},
		"asc": {}, "between": {}, "by": {}, "case": {}, "check": {},
		"column": {}, "constraint": {}, "create": {}, "cross": {}, "current_date": {},
		"current_time": {}, "current_timestamp": {}, "database": {}, "default": {}, "delete": {},
		"desc": {}, "distinct": {}, "do": {}, "drop": {}, "else": {},
		"end": {}, "except": {}, "exists": {}, "false": {}, "for": {},
		"foreign": {}, "from": {}, "full": {}, "grant": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "inner": {}, "insert": {},
		"intersect": {}, "into": {}, "is": {}, "join": {}, "key": {},
		"left": {}, "like": {}, "limit": {}, "natural": {}, "not": {},
		"null": {}, "offset": {}, "on": {}, "or": {}, "order": {},
		"outer": {}, "primary": {}, "references": {}, "returning": {}, "revoke": {},
		"right": {}, "schema": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "to": {}, "true": {}, "truncate": {}, "union": {},
		"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
		"view": {}, "when": {}, "where": {}, "with": {},
	}
)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || !identRe.MatchString(s) {
		return false
	}
	_, reserved := reservedWords[strings.ToLower(s)]
	return !reserved
}

func IsValidMode(mode string) bool {
	switch mode {
	case domain.TableModeCreate, domain.TableModeTruncate, domain.TableModeAppend:
		return true
	}
	return false
}

func IsSQLKind(kind string) bool {
	return kind == domain.TargetKindSQLite || kind == domain.TargetKindPostgres
}

func ValidateTarget(t *domain.TargetConfig) error {
	if t == nil {
		return errors.New("target is required")
	}
	if t.Name == "" {
		return errors.New("target name is required")
	}
	if t.Kind == "" {
		return errors.New("target kind is required")
	}
	if t.DSN == "" {
		return errors.New("target dsn is required")
	}

	switch t.Kind {
	case domain.TargetKindPostgres:
		if t.Schema != "" && !IsValidIdentifier(t.Schema) {
			return fmt.Errorf("invalid target schema identifier: %s", t.Schema)
		}
	case domain.TargetKindCSV, domain.TargetKindSQLite, domain.TargetKindElasticsearch:
		if t.Schema != "" {
			return fmt.Errorf("%s targets must not set schema", t.Kind)
		}
	default:
		return fmt.Errorf("unsupported target kind: %s", t.Kind)
	}

	return nil
}

// ValidateColumnsForSQL checks that a table and its columns can be spliced
// into DDL/DML for the SQL sinks.
func ValidateColumnsForSQL(tableName string, columns []domain.ColumnSpec) error {
	if !IsValidIdentifier(tableName) {
		return fmt.Errorf("invalid table identifier: %s", tableName)
	}
	if len(columns) == 0 {
		return errors.New("at least one column is required for a database target")
	}
	for _, c := range columns {
		if !IsValidIdentifier(c.Name) {
			return fmt.Errorf("invalid column identifier: %s", c.Name)
		}
	}
	return nil
}

func ValidateRowCount(rows int) error {
	if rows < 0 {
		return fmt.Errorf("rows must be >= 0, got %d", rows)
	}
	return nil
}

func ValidateGenerateRequest(req *domain.GenerateRequest) error {
	sources := 0
	for _, s := range []string{req.Columns, req.SchemaID, req.SchemaPath} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return errors.New("one of columns, schema or schema path must be provided")
	}
	if sources > 1 {
		return errors.New("only one of columns, schema or schema path may be provided")
	}

	if err := ValidateRowCount(req.Rows); err != nil {
		return err
	}

	sinks := 0
	if req.OutputPath != "" {
		sinks++
	}
	if req.TargetID != "" {
		sinks++
	}
	if req.Target != nil {
		sinks++
	}
	if sinks == 0 {
		return errors.New("one of file path, target id or target must be provided")
	}
	if sinks > 1 {
		return errors.New("only one of file path, target id or target may be provided")
	}

	if req.OutputPath == "" {
		if req.Mode != "" && !IsValidMode(req.Mode) {
			return fmt.Errorf("invalid mode: %s", req.Mode)
		}
		if req.Table == "" {
			return errors.New("table is required when loading into a target")
		}
		// also names the csv file and the elasticsearch index
		if !IsValidIdentifier(req.Table) {
			return fmt.Errorf("invalid table identifier: %s", req.Table)
		}
	}

	return nil
}
