package runs

import (
	"errors"
	"time"

	"github.com/salsasteve/rainbow/internal/domain"
)

var ErrNotFound = errors.New("run not found")

// ListFilter narrows a run listing. Zero fields match everything.
type ListFilter struct {
	Limit  int
	Status string
	Since  time.Time
}

// Repository stores the history of generate invocations.
type Repository interface {
	Init() error
	Create(run *domain.Run) error
	Update(run *domain.Run) error
	Get(id string) (*domain.Run, error)
	List(limit int, status string) ([]*domain.Run, error)
	Find(filter ListFilter) ([]*domain.Run, error)
	Close() error
}
