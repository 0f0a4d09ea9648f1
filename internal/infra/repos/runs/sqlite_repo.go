package runs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/salsasteve/rainbow/internal/domain"
)

type SQLiteRepository struct {
	dbPath string
	db     *sql.DB
}

func NewSQLiteRepository(dbPath string) *SQLiteRepository {
	return &SQLiteRepository{dbPath: dbPath}
}

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	schema_id TEXT NOT NULL,
	schema_name TEXT NOT NULL,
	spec_hash TEXT NOT NULL,
	rows INTEGER NOT NULL,
	target_kind TEXT NOT NULL,
	target_name TEXT NOT NULL,
	output TEXT NOT NULL,
	seed INTEGER NOT NULL,
	status TEXT NOT NULL,
	started_at TEXT NOT NULL,
	completed_at TEXT,
	stats TEXT,
	error TEXT
)`

const runColumns = `id, schema_id, schema_name, spec_hash, rows, target_kind, target_name,
	output, seed, status, started_at, completed_at, stats, error`

func (r *SQLiteRepository) Init() error {
	if dir := filepath.Dir(r.dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create runs db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", r.dbPath)
	if err != nil {
		return err
	}
	if _, err := db.Exec(createRunsTable); err != nil {
		_ = db.Close()
		return err
	}
	r.db = db
	return nil
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Create(run *domain.Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}

	query := `INSERT INTO runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.Exec(query,
		run.ID, run.SchemaID, run.SchemaName, run.SpecHash, run.Rows,
		run.TargetKind, run.TargetName, run.Output, run.Seed, string(run.Status),
		run.StartedAt.UTC().Format(timeLayout), formatTime(run.CompletedAt),
		nullableString(string(run.Stats)), nullableString(run.Error),
	)
	return err
}

func (r *SQLiteRepository) Update(run *domain.Run) error {
	query := `UPDATE runs SET status = ?, completed_at = ?, stats = ?, error = ? WHERE id = ?`
	res, err := r.db.Exec(query, string(run.Status), formatTime(run.CompletedAt),
		nullableString(string(run.Stats)), nullableString(run.Error), run.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, run.ID)
	}
	return nil
}

// Get accepts a full id or a unique prefix of one, as printed by List.
func (r *SQLiteRepository) Get(id string) (*domain.Run, error) {
	prefix := escapeLike(strings.TrimSpace(id))
	if prefix == "" {
		return nil, fmt.Errorf("%w: empty id %q", ErrNotFound, id)
	}
	query := `SELECT ` + runColumns + ` FROM runs WHERE id = ? OR id LIKE ? ORDER BY id = ? DESC LIMIT 2`
	rows, err := r.db.Query(query, id, prefix+"%", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found []*domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	switch {
	case len(found) == 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case found[0].ID == id || len(found) == 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("ambiguous run id prefix: %s", id)
	}
}

func (r *SQLiteRepository) List(limit int, status string) ([]*domain.Run, error) {
	return r.Find(ListFilter{Limit: limit, Status: status})
}

// Find returns matching runs newest first. Since is applied in the query,
// before Limit.
func (r *SQLiteRepository) Find(filter ListFilter) ([]*domain.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs`

	where := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}
	if !filter.Since.IsZero() {
		where = append(where, "started_at >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*domain.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*domain.Run, error) {
	var run domain.Run
	var status, startedAt string
	var completedAt, stats, errMsg sql.NullString

	err := s.Scan(
		&run.ID, &run.SchemaID, &run.SchemaName, &run.SpecHash, &run.Rows,
		&run.TargetKind, &run.TargetName, &run.Output, &run.Seed, &status,
		&startedAt, &completedAt, &stats, &errMsg,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	run.Status = domain.RunStatus(status)
	run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
	if completedAt.Valid {
		t, _ := time.Parse(time.RFC3339Nano, completedAt.String)
		run.CompletedAt = &t
	}
	if stats.Valid {
		run.Stats = json.RawMessage(stats.String)
	}
	run.Error = errMsg.String

	return &run, nil
}

// timeLayout keeps a fixed width so stored times sort and compare as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func escapeLike(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
