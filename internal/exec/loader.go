package exec

import (
	"fmt"

	"github.com/salsasteve/rainbow/internal/domain"
)

// Target is a database or index that can receive a generated table.
type Target interface {
	Connect() error
	Close() error
	CreateTableIfNotExists(tableName string, columns []string) error
	TruncateTable(tableName string) error
	InsertBatch(tableName string, columns []string, rows [][]string) error
}

const DefaultBatchSize = 1000

type Loader struct {
	batchSize int
}

func NewLoader(batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Loader{batchSize: batchSize}
}

// Load writes table into tableName on target and returns the number of
// batches submitted. The target is connected and closed here.
func (l *Loader) Load(table domain.Table, target Target, tableName, mode string) (int, error) {
	if len(table) == 0 {
		return 0, domain.ErrEmptyTable
	}

	if err := target.Connect(); err != nil {
		return 0, fmt.Errorf("failed to connect to target: %w", err)
	}
	defer target.Close()

	columns := table.Header()

	if mode == "" {
		mode = domain.TableModeCreate
	}

	switch mode {
	case domain.TableModeCreate:
		if err := target.CreateTableIfNotExists(tableName, columns); err != nil {
			return 0, fmt.Errorf("failed to create table '%s': %w", tableName, err)
		}
	case domain.TableModeTruncate:
		if err := target.CreateTableIfNotExists(tableName, columns); err != nil {
			return 0, fmt.Errorf("failed to create table '%s': %w", tableName, err)
		}
		if err := target.TruncateTable(tableName); err != nil {
			return 0, fmt.Errorf("failed to truncate table '%s': %w", tableName, err)
		}
	case domain.TableModeAppend:
	default:
		return 0, fmt.Errorf("unknown table mode: %s", mode)
	}

	records := table.Records(columns)
	batches := 0
	for start := 0; start < len(records); start += l.batchSize {
		end := start + l.batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := target.InsertBatch(tableName, columns, records[start:end]); err != nil {
			return batches, fmt.Errorf("failed to insert batch into '%s' (rows %d-%d): %w", tableName, start, end-1, err)
		}
		batches++
	}

	return batches, nil
}
