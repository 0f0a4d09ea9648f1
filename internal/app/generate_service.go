package app

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	mrand "math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/salsasteve/rainbow/internal/csvwriter"
	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/exec"
	"github.com/salsasteve/rainbow/internal/hashing"
	"github.com/salsasteve/rainbow/internal/infra/repos/runs"
	"github.com/salsasteve/rainbow/internal/infra/repos/schemas"
	"github.com/salsasteve/rainbow/internal/infra/repos/targets"
	"github.com/salsasteve/rainbow/internal/infra/targets/elasticsearch"
	"github.com/salsasteve/rainbow/internal/infra/targets/postgres"
	"github.com/salsasteve/rainbow/internal/infra/targets/sqlite"
	"github.com/salsasteve/rainbow/internal/logging"
	"github.com/salsasteve/rainbow/internal/registry"
	"github.com/salsasteve/rainbow/internal/schema"
	"github.com/salsasteve/rainbow/internal/validation"
)

type GenerateService struct {
	schemaRepo schemas.Repository
	targetRepo targets.Repository
	runRepo    runs.Repository
	generator  *exec.RowGenerator
	loader     *exec.Loader
	logger     *logging.Logger
	stdout     io.Writer
}

// StdoutPath as an output path sends the CSV to the service's stdout.
const StdoutPath = "-"

func NewGenerateService(
	schemaRepo schemas.Repository,
	targetRepo targets.Repository,
	runRepo runs.Repository,
	genRegistry *registry.GeneratorRegistry,
	logger *logging.Logger,
	batchSize int,
) *GenerateService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &GenerateService{
		schemaRepo: schemaRepo,
		targetRepo: targetRepo,
		runRepo:    runRepo,
		generator:  exec.NewRowGenerator(genRegistry),
		loader:     exec.NewLoader(batchSize),
		logger:     logger.WithComponent("generate"),
		stdout:     os.Stdout,
	}
}

// SetStdout redirects CSV written for StdoutPath.
func (s *GenerateService) SetStdout(w io.Writer) {
	s.stdout = w
}

// Run generates req.Rows rows and writes them to the requested sink. The
// returned run is the final history record; on failure it is returned along
// with the error whenever one was created.
func (s *GenerateService) Run(req *domain.GenerateRequest) (*domain.Run, error) {
	if err := validation.ValidateGenerateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid generate request: %w", err)
	}

	columns, schemaID, schemaName, err := s.resolveColumns(req)
	if err != nil {
		return nil, err
	}

	targetCfg, err := s.resolveTarget(req)
	if err != nil {
		return nil, err
	}
	if targetCfg != nil {
		if err := validation.ValidateTarget(targetCfg); err != nil {
			return nil, fmt.Errorf("target validation failed: %w", err)
		}
		if validation.IsSQLKind(targetCfg.Kind) {
			if err := validation.ValidateColumnsForSQL(req.Table, columns); err != nil {
				return nil, err
			}
		}
	}

	specHash, err := hashing.HashColumns(columns)
	if err != nil {
		return nil, fmt.Errorf("failed to hash columns: %w", err)
	}

	seed := generateSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	run := &domain.Run{
		SchemaID:   schemaID,
		SchemaName: schemaName,
		SpecHash:   specHash,
		Rows:       req.Rows,
		Seed:       seed,
		Status:     domain.RunStatusRunning,
		StartedAt:  time.Now().UTC(),
	}
	if targetCfg == nil {
		run.TargetKind = domain.TargetKindCSV
		run.Output = req.OutputPath
	} else {
		run.TargetKind = targetCfg.Kind
		run.TargetName = targetCfg.Name
		run.Output = outputName(targetCfg, req.Table)
	}

	if s.runRepo != nil {
		if err := s.runRepo.Create(run); err != nil {
			return nil, fmt.Errorf("failed to create run: %w", err)
		}
	}

	s.logger.Infow("generate.started", map[string]any{
		"run_id":  run.ID,
		"columns": schema.Format(columns),
		"rows":    req.Rows,
		"target":  run.TargetKind,
		"output":  run.Output,
		"seed":    seed,
	})

	stats, err := s.execute(columns, req, targetCfg, seed)
	if err != nil {
		s.logger.Errorw("generate.failed", map[string]any{"run_id": run.ID, "error": err.Error()})
		s.finish(run, stats, err)
		return run, err
	}

	s.finish(run, stats, nil)
	s.logger.Infow("generate.completed", map[string]any{
		"run_id":   run.ID,
		"rows":     stats.RowsGenerated,
		"batches":  stats.BatchesSubmitted,
		"duration": stats.DurationSeconds,
	})
	return run, nil
}

func (s *GenerateService) execute(columns []domain.ColumnSpec, req *domain.GenerateRequest, targetCfg *domain.TargetConfig, seed int64) (*domain.RunStats, error) {
	start := time.Now()
	stats := &domain.RunStats{Columns: len(columns)}

	rng := mrand.New(mrand.NewSource(seed))
	table, err := s.generator.Generate(rng, columns, req.Rows)
	if err != nil {
		return stats, err
	}
	stats.RowsGenerated = len(table)
	stats.GenerateSeconds = time.Since(start).Seconds()

	writeStart := time.Now()
	switch {
	case targetCfg == nil && req.OutputPath == StdoutPath:
		err = csvwriter.WriteTo(table, s.stdout)
	case targetCfg == nil:
		err = csvwriter.Write(table, req.OutputPath)
	case targetCfg.Kind == domain.TargetKindCSV:
		err = writeCSVTarget(table, targetCfg, req.Table, req.Mode)
	default:
		var tgt exec.Target
		tgt, err = buildTarget(targetCfg)
		if err == nil {
			stats.BatchesSubmitted, err = s.loader.Load(table, tgt, req.Table, req.Mode)
		}
	}
	stats.WriteSeconds = time.Since(writeStart).Seconds()
	stats.DurationSeconds = time.Since(start).Seconds()
	return stats, err
}

func (s *GenerateService) finish(run *domain.Run, stats *domain.RunStats, runErr error) {
	now := time.Now().UTC()
	run.CompletedAt = &now
	if stats != nil {
		if b, err := json.Marshal(stats); err == nil {
			run.Stats = b
		}
	}
	if runErr != nil {
		run.Status = domain.RunStatusFailed
		run.Error = runErr.Error()
	} else {
		run.Status = domain.RunStatusSuccess
	}
	if s.runRepo == nil {
		return
	}
	if err := s.runRepo.Update(run); err != nil {
		s.logger.Error("Failed to update run %s: %v", run.ID, err)
	}
}

func (s *GenerateService) resolveColumns(req *domain.GenerateRequest) ([]domain.ColumnSpec, string, string, error) {
	if req.Columns != "" {
		columns, err := schema.Parse(req.Columns)
		if err != nil {
			return nil, "", "", err
		}
		return columns, "", "", nil
	}

	if s.schemaRepo == nil {
		return nil, "", "", errors.New("no schema repository configured")
	}

	var sch *domain.Schema
	var err error
	if req.SchemaID != "" {
		sch, err = s.schemaRepo.Get(req.SchemaID)
	} else {
		sch, err = s.schemaRepo.GetByPath(req.SchemaPath)
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to load schema: %w", err)
	}

	columns, err := schema.Resolve(sch)
	if err != nil {
		return nil, "", "", fmt.Errorf("schema %s: %w", sch.ID, err)
	}
	return columns, sch.ID, sch.Name, nil
}

func (s *GenerateService) resolveTarget(req *domain.GenerateRequest) (*domain.TargetConfig, error) {
	switch {
	case req.Target != nil:
		return req.Target, nil
	case req.TargetID != "":
		if s.targetRepo == nil {
			return nil, errors.New("no target repository configured")
		}
		t, err := s.targetRepo.Get(req.TargetID)
		if err != nil {
			return nil, fmt.Errorf("failed to load target: %w", err)
		}
		return t, nil
	}
	return nil, nil
}

func buildTarget(t *domain.TargetConfig) (exec.Target, error) {
	switch t.Kind {
	case domain.TargetKindPostgres:
		schemaName := t.Schema
		if schemaName == "" {
			schemaName = "public"
		}
		return postgres.NewPostgresTarget(t.DSN, schemaName), nil
	case domain.TargetKindSQLite:
		return sqlite.NewSQLiteTarget(t.DSN), nil
	case domain.TargetKindElasticsearch:
		return elasticsearch.NewElasticsearchTarget(t.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported target kind: %s", t.Kind)
	}
}

func writeCSVTarget(table domain.Table, t *domain.TargetConfig, tableName, mode string) error {
	if mode == domain.TableModeAppend {
		return errors.New("append mode is not supported for csv targets")
	}
	return csvwriter.Write(table, csvTargetPath(t, tableName))
}

func csvTargetPath(t *domain.TargetConfig, tableName string) string {
	return filepath.Join(t.DSN, tableName+".csv")
}

func outputName(t *domain.TargetConfig, tableName string) string {
	if t.Kind == domain.TargetKindCSV {
		return csvTargetPath(t, tableName)
	}
	return tableName
}

func generateSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
