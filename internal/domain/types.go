package domain

import (
	"encoding/json"
	"time"
)

type GeneratorKind string

const (
	KindFirstName  GeneratorKind = "FirstName"
	KindLastName   GeneratorKind = "LastName"
	KindCityName   GeneratorKind = "CityName"
	KindStreetName GeneratorKind = "StreetName"
	KindZipCode    GeneratorKind = "ZipCode"
	KindEmail      GeneratorKind = "Email"
	KindUsername   GeneratorKind = "Username"
	KindPassword   GeneratorKind = "Password"
	KindColor      GeneratorKind = "Color"
	KindParagraph  GeneratorKind = "Paragraph"
	KindNumber     GeneratorKind = "Number"
)

var allKinds = []GeneratorKind{
	KindFirstName, KindLastName, KindCityName, KindStreetName, KindZipCode,
	KindEmail, KindUsername, KindPassword, KindColor, KindParagraph, KindNumber,
}

// AllGeneratorKinds returns every supported kind in declaration order.
func AllGeneratorKinds() []GeneratorKind {
	out := make([]GeneratorKind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseGeneratorKind maps a raw type name to its kind. Matching is exact.
func ParseGeneratorKind(s string) (GeneratorKind, bool) {
	for _, k := range allKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

func (k GeneratorKind) Valid() bool {
	_, ok := ParseGeneratorKind(string(k))
	return ok
}

type ColumnSpec struct {
	Name string        `json:"name" yaml:"name"`
	Kind GeneratorKind `json:"type" yaml:"type"`
}

// Schema is a named, reusable column list loaded from the schemas directory.
// Either Spec (inline "name:Type,..." form) or Columns is set.
type Schema struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Spec        string         `json:"spec,omitempty" yaml:"spec,omitempty"`
	Columns     []SchemaColumn `json:"columns,omitempty" yaml:"columns,omitempty"`
}

type SchemaColumn struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type TargetConfig struct {
	ID      string            `json:"id" yaml:"id"`
	Name    string            `json:"name" yaml:"name"`
	Kind    string            `json:"kind" yaml:"kind"`
	DSN     string            `json:"dsn" yaml:"dsn"`
	Schema  string            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

const (
	TargetKindCSV           = "csv"
	TargetKindSQLite        = "sqlite"
	TargetKindPostgres      = "postgres"
	TargetKindElasticsearch = "elasticsearch"
)

type TargetCheck struct {
	TargetID     string             `json:"target_id"`
	OK           bool               `json:"ok"`
	LatencyMS    int64              `json:"latency_ms"`
	ServerVer    string             `json:"server_version,omitempty"`
	Error        string             `json:"error,omitempty"`
	Capabilities TargetCapabilities `json:"capabilities"`
	CheckedAt    time.Time          `json:"checked_at"`
}

type TargetCapabilities struct {
	CanCreate   bool `json:"can_create"`
	CanInsert   bool `json:"can_insert"`
	CanTruncate bool `json:"can_truncate"`
}

type Run struct {
	ID          string          `json:"id" yaml:"id"`
	SchemaID    string          `json:"schema_id" yaml:"schema_id"`
	SchemaName  string          `json:"schema_name" yaml:"schema_name"`
	SpecHash    string          `json:"spec_hash" yaml:"spec_hash"`
	Rows        int             `json:"rows" yaml:"rows"`
	TargetKind  string          `json:"target_kind" yaml:"target_kind"`
	TargetName  string          `json:"target_name" yaml:"target_name"`
	Output      string          `json:"output" yaml:"output"`
	Seed        int64           `json:"seed" yaml:"seed"`
	Status      RunStatus       `json:"status" yaml:"status"`
	StartedAt   time.Time       `json:"started_at" yaml:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	Stats       json.RawMessage `json:"stats,omitempty" yaml:"-"`
	Error       string          `json:"error,omitempty" yaml:"error,omitempty"`
}

type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

type RunStats struct {
	Columns          int     `json:"columns"`
	RowsGenerated    int     `json:"rows_generated"`
	GenerateSeconds  float64 `json:"generate_seconds"`
	WriteSeconds     float64 `json:"write_seconds"`
	DurationSeconds  float64 `json:"duration_seconds"`
	BatchesSubmitted int     `json:"batches_submitted,omitempty"`
}

// GenerateRequest describes one fake-data invocation. Exactly one of Columns,
// SchemaID and SchemaPath selects the columns; exactly one of OutputPath,
// TargetID and Target selects where the table goes.
type GenerateRequest struct {
	Columns    string
	SchemaID   string
	SchemaPath string
	Rows       int
	OutputPath string
	TargetID   string
	Target     *TargetConfig
	Table      string
	Mode       string
	Seed       *int64
}

const (
	TableModeCreate   = "create"
	TableModeTruncate = "truncate"
	TableModeAppend   = "append"
)
