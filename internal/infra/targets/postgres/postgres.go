package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

// postgres caps bind parameters per statement at 65535.
const maxParams = 65535

type PostgresTarget struct {
	dsn    string
	schema string
	db     *sql.DB
}

func NewPostgresTarget(dsn, schema string) *PostgresTarget {
	if schema == "" {
		schema = "public"
	}
	return &PostgresTarget{
		dsn:    dsn,
		schema: schema,
	}
}

func (t *PostgresTarget) Connect() error {
	db, err := sql.Open("postgres", t.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return err
	}
	t.db = db
	return nil
}

func (t *PostgresTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *PostgresTarget) ServerVersion() (string, error) {
	var version string
	err := t.db.QueryRow("SHOW server_version").Scan(&version)
	return version, err
}

func (t *PostgresTarget) CreateTableIfNotExists(tableName string, columns []string) error {
	var exists bool
	query := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = $1 AND table_name = $2
	)`
	if err := t.db.QueryRow(query, t.schema, tableName).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	columnDefs := make([]string, len(columns))
	for i, col := range columns {
		columnDefs[i] = fmt.Sprintf("%s TEXT NOT NULL", col)
	}

	_, err := t.db.Exec(fmt.Sprintf("CREATE TABLE %s.%s (%s)",
		t.schema, tableName, strings.Join(columnDefs, ", ")))
	return err
}

func (t *PostgresTarget) TruncateTable(tableName string) error {
	_, err := t.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s.%s", t.schema, tableName))
	return err
}

func (t *PostgresTarget) InsertBatch(tableName string, columns []string, rows [][]string) error {
	if len(rows) == 0 || len(columns) == 0 {
		return nil
	}

	perStmt := maxParams / len(columns)
	for start := 0; start < len(rows); start += perStmt {
		end := start + perStmt
		if end > len(rows) {
			end = len(rows)
		}
		query, args := buildInsert(t.schema, tableName, columns, rows[start:end])
		if _, err := t.db.Exec(query, args...); err != nil {
			return err
		}
	}
	return nil
}

func buildInsert(schema, tableName string, columns []string, rows [][]string) (string, []interface{}) {
	placeholders := make([]string, len(rows))
	args := make([]interface{}, 0, len(rows)*len(columns))

	for i, row := range rows {
		rowPlaceholders := make([]string, len(columns))
		for j := range columns {
			rowPlaceholders[j] = fmt.Sprintf("$%d", i*len(columns)+j+1)
			args = append(args, row[j])
		}
		placeholders[i] = "(" + strings.Join(rowPlaceholders, ", ") + ")"
	}

	query := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
		schema, tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	return query, args
}
