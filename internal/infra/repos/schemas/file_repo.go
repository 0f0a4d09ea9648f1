package schemas

import (
	"fmt"

	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/infra/repos/filerepo"
)

type Repository interface {
	List() ([]*domain.Schema, error)
	Get(id string) (*domain.Schema, error)
	GetByPath(path string) (*domain.Schema, error)
}

type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

// List loads every schema file in the base directory. Files that fail to
// parse are skipped.
func (r *FileRepository) List() ([]*domain.Schema, error) {
	files, err := filerepo.Files(r.baseDir)
	if err != nil {
		return nil, err
	}

	schemas := make([]*domain.Schema, 0, len(files))
	for _, f := range files {
		s, err := loadSchema(f)
		if err != nil {
			continue
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

func (r *FileRepository) Get(id string) (*domain.Schema, error) {
	schemas, err := r.List()
	if err != nil {
		return nil, err
	}

	for _, s := range schemas {
		if s.ID == id || s.Name == id {
			return s, nil
		}
	}

	return nil, fmt.Errorf("schema not found: %s", id)
}

// GetByPath loads a schema file that must live inside the base directory.
func (r *FileRepository) GetByPath(path string) (*domain.Schema, error) {
	resolved, err := filerepo.ResolveInside(r.baseDir, path)
	if err != nil {
		return nil, fmt.Errorf("schema path: %w", err)
	}
	return loadSchema(resolved)
}

func loadSchema(path string) (*domain.Schema, error) {
	var s domain.Schema
	if err := filerepo.Decode(path, &s); err != nil {
		return nil, err
	}
	if s.ID == "" {
		s.ID = filerepo.StemID(path)
	}
	if s.Name == "" {
		s.Name = s.ID
	}
	return &s, nil
}
