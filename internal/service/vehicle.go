package service

import (
	"context"
	"fmt"

	"github.com/locafleet/backend/internal/domain"
	"github.com/locafleet/backend/internal/repo"
)

// VehicleService implements business logic for Vehicle operations.
// GetByID doubles as the daily-rate lookup consumed by the rental service.
type VehicleService struct {
	repo repo.VehicleRepo
}

// NewVehicleService constructs a VehicleService backed by the provided VehicleRepo.
func NewVehicleService(r repo.VehicleRepo) *VehicleService {
	return &VehicleService{repo: r}
}

// GetByID returns a single vehicle by ID.
// Returns domain.ErrNotFound if no vehicle with that ID exists.
func (s *VehicleService) GetByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.GetByID: %w", err)
	}
	return result, nil
}

// FindPage returns page params.Page (1-indexed) of vehicles, params.Size rows
// per page. Always returns a non-nil slice.
func (s *VehicleService) FindPage(ctx context.Context, params domain.PageParams) ([]domain.Vehicle, error) {
	vehicles, err := s.repo.FindAll(ctx, params.Size, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("service.VehicleService.FindPage: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// Save inserts a new vehicle.
// Returns domain.ErrRowCount if the store reports anything but one affected row.
func (s *VehicleService) Save(ctx context.Context, vehicle domain.Vehicle) error {
	rows, err := s.repo.Save(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("service.VehicleService.Save: %w", err)
	}
	if rows != 1 {
		return fmt.Errorf("service.VehicleService.Save: %w: %d", domain.ErrRowCount, rows)
	}
	return nil
}

// Update replaces the vehicle at id with the supplied fields.
// Returns domain.ErrNotFound if zero rows were affected.
func (s *VehicleService) Update(ctx context.Context, vehicle domain.Vehicle, id int64) error {
	rows, err := s.repo.Update(ctx, vehicle, id)
	if err != nil {
		return fmt.Errorf("service.VehicleService.Update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service.VehicleService.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes the vehicle at id.
// Returns domain.ErrNotFound if zero rows were affected.
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service.VehicleService.Delete: %w", domain.ErrNotFound)
	}
	return nil
}
