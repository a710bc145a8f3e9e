// Package service contains the business logic for the vehicle rental API.
// Services enforce the not-found and exactly-one-row contracts, compute
// rental prices, and orchestrate repo calls. No SQL lives here: services
// depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/locafleet/backend/internal/domain"
	"github.com/locafleet/backend/internal/repo"
)

// PersonService implements business logic for Person operations.
type PersonService struct {
	repo repo.PersonRepo
}

// NewPersonService constructs a PersonService backed by the provided PersonRepo.
func NewPersonService(r repo.PersonRepo) *PersonService {
	return &PersonService{repo: r}
}

// GetByID returns a single person by ID.
// Returns domain.ErrNotFound if no person with that ID exists.
func (s *PersonService) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Person{}, fmt.Errorf("service.PersonService.GetByID: %w", err)
	}
	return result, nil
}

// FindPage returns page params.Page (1-indexed) of persons, params.Size rows
// per page, translating to offset = (page-1)*size.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PersonService) FindPage(ctx context.Context, params domain.PageParams) ([]domain.Person, error) {
	people, err := s.repo.FindAll(ctx, params.Size, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("service.PersonService.FindPage: %w", err)
	}
	if people == nil {
		return []domain.Person{}, nil
	}
	return people, nil
}

// Save inserts a new person.
// Returns domain.ErrRowCount if the store reports anything but one affected row.
func (s *PersonService) Save(ctx context.Context, person domain.Person) error {
	rows, err := s.repo.Save(ctx, person)
	if err != nil {
		return fmt.Errorf("service.PersonService.Save: %w", err)
	}
	if rows != 1 {
		return fmt.Errorf("service.PersonService.Save: %w: %d", domain.ErrRowCount, rows)
	}
	return nil
}

// Update replaces the person at id with the supplied fields.
// Returns domain.ErrNotFound if zero rows were affected.
func (s *PersonService) Update(ctx context.Context, person domain.Person, id int64) error {
	rows, err := s.repo.Update(ctx, person, id)
	if err != nil {
		return fmt.Errorf("service.PersonService.Update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service.PersonService.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes the person at id.
// Returns domain.ErrNotFound if zero rows were affected.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("service.PersonService.Delete: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service.PersonService.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
