// Package repository provides read access to the staffing catalog: the
// projects awaiting staff and the employees who can fill them.
package repository

import (
	"context"

	"github.com/okian/staffer/internal/domain/model"
)

// Stats summarizes the catalog contents.
type Stats struct {
	Projects  int
	Employees int
}

// Store provides read access to projects and employees. Returned values are
// copies; callers may not mutate the catalog through them.
type Store interface {
	// Project returns a project by id.
	// Returns ErrNotFound if the project is unknown.
	Project(ctx context.Context, id string) (model.Project, error)

	// Projects returns every project in catalog order.
	Projects(ctx context.Context) ([]model.Project, error)

	// Employees returns every employee in catalog order.
	Employees(ctx context.Context) ([]model.Employee, error)

	// Stats returns the number of projects and employees.
	Stats(ctx context.Context) Stats
}
