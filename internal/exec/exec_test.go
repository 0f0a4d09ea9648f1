package exec

import (
	"errors"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/generators"
	"github.com/salsasteve/rainbow/internal/registry"
)

func newRNG() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestGenerate_RowAndColumnCounts(t *testing.T) {
	g := NewRowGenerator(registry.DefaultGeneratorRegistry())
	cols := make([]domain.ColumnSpec, 0)
	for _, k := range domain.AllGeneratorKinds() {
		cols = append(cols, domain.ColumnSpec{Name: "c_" + string(k), Kind: k})
	}
	want := make([]string, len(cols))
	for i, c := range cols {
		want[i] = c.Name
	}

	for _, n := range []int{0, 1, 7} {
		table, err := g.Generate(newRNG(), cols, n)
		if err != nil {
			t.Fatal(err)
		}
		if len(table) != n {
			t.Fatalf("expected %d rows, got %d", n, len(table))
		}
		for i, row := range table {
			if !reflect.DeepEqual(row.Keys(), want) {
				t.Fatalf("row %d keys = %v", i, row.Keys())
			}
		}
	}
}

func TestGenerate_NumberAndPasswordConstraints(t *testing.T) {
	g := NewRowGenerator(registry.DefaultGeneratorRegistry())
	cols := []domain.ColumnSpec{
		{Name: "age", Kind: domain.KindNumber},
		{Name: "pw", Kind: domain.KindPassword},
	}
	table, err := g.Generate(newRNG(), cols, 500)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range table {
		age, _ := row.Get("age")
		n, err := strconv.Atoi(age)
		if err != nil || n < 1 || n >= 100 {
			t.Fatalf("age %q not an integer in [1,100)", age)
		}
		pw, _ := row.Get("pw")
		if len(pw) < 8 || len(pw) >= 12 {
			t.Fatalf("password %q length out of range", pw)
		}
	}
}

func TestGenerate_EmptyColumns(t *testing.T) {
	g := NewRowGenerator(registry.DefaultGeneratorRegistry())
	table, err := g.Generate(newRNG(), nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table))
	}
	for _, row := range table {
		if row.Len() != 0 {
			t.Fatalf("expected empty row, got %v", row.Keys())
		}
	}
}

func TestGenerate_RejectsInvalidInput(t *testing.T) {
	g := NewRowGenerator(registry.DefaultGeneratorRegistry())
	if _, err := g.Generate(newRNG(), nil, -1); err == nil {
		t.Fatal("expected error for negative row count")
	}

	_, err := g.Generate(newRNG(), []domain.ColumnSpec{{Name: "x", Kind: "Phone"}}, 1)
	if !errors.Is(err, domain.ErrUnsupportedGeneratorKind) {
		t.Fatalf("expected unsupported kind, got %v", err)
	}

	partial := registry.NewGeneratorRegistry()
	partial.Register(domain.KindColor, &generators.ColorGenerator{})
	_, err = NewRowGenerator(partial).Generate(newRNG(), []domain.ColumnSpec{{Name: "e", Kind: domain.KindEmail}}, 1)
	if !errors.Is(err, domain.ErrUnsupportedGeneratorKind) {
		t.Fatalf("expected unregistered kind to fail, got %v", err)
	}
}

type recordingTarget struct {
	connected bool
	closed    bool
	created   []string
	truncated []string
	batches   [][][]string
	columns   []string
	failOn    int
}

func (r *recordingTarget) Connect() error { r.connected = true; return nil }
func (r *recordingTarget) Close() error   { r.closed = true; return nil }

func (r *recordingTarget) CreateTableIfNotExists(tableName string, columns []string) error {
	r.created = append(r.created, tableName)
	r.columns = columns
	return nil
}

func (r *recordingTarget) TruncateTable(tableName string) error {
	r.truncated = append(r.truncated, tableName)
	return nil
}

func (r *recordingTarget) InsertBatch(tableName string, columns []string, rows [][]string) error {
	if r.failOn > 0 && len(r.batches)+1 == r.failOn {
		return errors.New("boom")
	}
	r.batches = append(r.batches, rows)
	return nil
}

func sampleTable(n int) domain.Table {
	table := make(domain.Table, n)
	for i := range table {
		row := domain.NewRow(2)
		row.Set("id", strconv.Itoa(i))
		row.Set("name", "n"+strconv.Itoa(i))
		table[i] = row
	}
	return table
}

func TestLoader_BatchesAndModes(t *testing.T) {
	tgt := &recordingTarget{}
	batches, err := NewLoader(2).Load(sampleTable(5), tgt, "people", domain.TableModeTruncate)
	if err != nil {
		t.Fatal(err)
	}
	if batches != 3 || len(tgt.batches) != 3 {
		t.Fatalf("expected 3 batches, got %d/%d", batches, len(tgt.batches))
	}
	if len(tgt.batches[2]) != 1 || tgt.batches[2][0][0] != "4" {
		t.Fatalf("unexpected last batch %v", tgt.batches[2])
	}
	if !tgt.connected || !tgt.closed {
		t.Fatal("expected connect and close")
	}
	if !reflect.DeepEqual(tgt.columns, []string{"id", "name"}) {
		t.Fatalf("unexpected columns %v", tgt.columns)
	}
	if len(tgt.truncated) != 1 {
		t.Fatalf("expected truncate, got %v", tgt.truncated)
	}

	appendTgt := &recordingTarget{}
	if _, err := NewLoader(0).Load(sampleTable(2), appendTgt, "people", domain.TableModeAppend); err != nil {
		t.Fatal(err)
	}
	if len(appendTgt.created) != 0 || len(appendTgt.batches) != 1 {
		t.Fatalf("append mode should skip create, got %#v", appendTgt)
	}
}

func TestLoader_Errors(t *testing.T) {
	if _, err := NewLoader(10).Load(nil, &recordingTarget{}, "t", ""); !errors.Is(err, domain.ErrEmptyTable) {
		t.Fatalf("expected empty table error, got %v", err)
	}
	if _, err := NewLoader(10).Load(sampleTable(1), &recordingTarget{}, "t", "replace"); err == nil {
		t.Fatal("expected unknown mode error")
	}
	tgt := &recordingTarget{failOn: 2}
	n, err := NewLoader(1).Load(sampleTable(3), tgt, "t", "")
	if err == nil || n != 1 {
		t.Fatalf("expected failure after one batch, got n=%d err=%v", n, err)
	}
	if !tgt.closed {
		t.Fatal("expected target closed on failure")
	}
}
