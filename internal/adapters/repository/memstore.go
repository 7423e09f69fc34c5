package repository

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/pkg/metrics"
)

// MemoryStore is an in-memory, read-only Store built from a Catalog.
type MemoryStore struct {
	mu        sync.RWMutex
	projects  []model.Project
	byID      map[string]int // project id -> index into projects
	employees []model.Employee
}

// NewMemoryStore validates c and copies it into a new store.
func NewMemoryStore(c Catalog) (*MemoryStore, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	s := &MemoryStore{
		projects:  make([]model.Project, len(c.Projects)),
		byID:      make(map[string]int, len(c.Projects)),
		employees: make([]model.Employee, len(c.Employees)),
	}
	for i, p := range c.Projects {
		s.projects[i] = cloneProject(p)
		s.byID[p.ID] = i
	}
	for i, e := range c.Employees {
		s.employees[i] = cloneEmployee(e)
	}

	metrics.UpdateCatalogProjects(len(s.projects))
	metrics.UpdateCatalogEmployees(len(s.employees))
	return s, nil
}

// NewDefaultStore returns a store over the embedded demo catalog.
func NewDefaultStore() (*MemoryStore, error) {
	c, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewMemoryStore(c)
}

// Project implements Store.
func (s *MemoryStore) Project(ctx context.Context, id string) (model.Project, error) {
	if err := ctx.Err(); err != nil {
		return model.Project{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return model.Project{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return cloneProject(s.projects[i]), nil
}

// Projects implements Store.
func (s *MemoryStore) Projects(ctx context.Context) ([]model.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = cloneProject(p)
	}
	return out, nil
}

// Employees implements Store.
func (s *MemoryStore) Employees(ctx context.Context) ([]model.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Employee, len(s.employees))
	for i, e := range s.employees {
		out[i] = cloneEmployee(e)
	}
	return out, nil
}

// Stats implements Store.
func (s *MemoryStore) Stats(_ context.Context) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Projects: len(s.projects), Employees: len(s.employees)}
}

func cloneProject(p model.Project) model.Project {
	p.SkillsNeeded = maps.Clone(p.SkillsNeeded)
	return p
}

func cloneEmployee(e model.Employee) model.Employee {
	e.Skills = maps.Clone(e.Skills)
	return e
}
