package targets

import (
	"fmt"

	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/infra/repos/filerepo"
)

type Repository interface {
	List() ([]*domain.TargetConfig, error)
	Get(id string) (*domain.TargetConfig, error)
	GetByPath(path string) (*domain.TargetConfig, error)
}

// FileRepository reads target definitions, one per YAML/JSON file.
type FileRepository struct {
	dir string
}

func NewFileRepository(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

func (r *FileRepository) List() ([]*domain.TargetConfig, error) {
	files, err := filerepo.Files(r.dir)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.TargetConfig, 0, len(files))
	for _, f := range files {
		if t, err := decodeTarget(f); err == nil {
			out = append(out, t)
		}
	}
	return out, nil
}

// Get matches id against target IDs first, then names.
func (r *FileRepository) Get(id string) (*domain.TargetConfig, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}

	var byName *domain.TargetConfig
	for _, t := range list {
		if t.ID == id {
			return t, nil
		}
		if byName == nil && t.Name == id {
			byName = t
		}
	}
	if byName != nil {
		return byName, nil
	}
	return nil, fmt.Errorf("target not found: %s", id)
}

// GetByPath loads a target file that must live inside the targets directory.
func (r *FileRepository) GetByPath(path string) (*domain.TargetConfig, error) {
	resolved, err := filerepo.ResolveInside(r.dir, path)
	if err != nil {
		return nil, fmt.Errorf("target path: %w", err)
	}
	return decodeTarget(resolved)
}

func decodeTarget(path string) (*domain.TargetConfig, error) {
	t := &domain.TargetConfig{}
	if err := filerepo.Decode(path, t); err != nil {
		return nil, err
	}
	if t.ID == "" {
		t.ID = filerepo.StemID(path)
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	return t, nil
}
