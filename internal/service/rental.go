package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/locafleet/backend/internal/domain"
	"github.com/locafleet/backend/internal/repo"
)

// CreateRental is the input for RentalService.Create. The amount is never part
// of it: pricing is the service's job.
type CreateRental struct {
	PersonID  int64
	VehicleID int64
	StartDate time.Time
	EndDate   time.Time
}

// RentalChecks configures which referential checks Create runs before pricing.
// The vehicle lookup itself is not listed here because it cannot be skipped:
// pricing reads the daily rate from the vehicle row, so a missing vehicle
// always aborts the create.
type RentalChecks struct {
	// Person verifies that the renter exists before the rental is priced and
	// persisted. Off by default, matching the billing system this service
	// replaces: a rental can be created for a person id that does not exist.
	Person bool
}

// RentalService implements pricing and orchestration for Rental operations.
// It holds the vehicle and person repos because creating a rental reads the
// vehicle's daily rate and optionally verifies the renter exists.
type RentalService struct {
	rentals  repo.RentalRepo
	vehicles repo.VehicleRepo
	people   repo.PersonRepo
	checks   RentalChecks
}

// NewRentalService constructs a RentalService backed by the provided repos.
func NewRentalService(rentals repo.RentalRepo, vehicles repo.VehicleRepo, people repo.PersonRepo, checks RentalChecks) *RentalService {
	return &RentalService{rentals: rentals, vehicles: vehicles, people: people, checks: checks}
}

// GetByID returns a single rental by ID.
// Returns domain.ErrNotFound if no rental with that ID exists.
func (s *RentalService) GetByID(ctx context.Context, id int64) (domain.Rental, error) {
	result, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return domain.Rental{}, fmt.Errorf("service.RentalService.GetByID: %w", err)
	}
	return result, nil
}

// FindPage returns page params.Page (1-indexed) of rentals, params.Size rows
// per page. Always returns a non-nil slice.
func (s *RentalService) FindPage(ctx context.Context, params domain.PageParams) ([]domain.Rental, error) {
	rentals, err := s.rentals.FindAll(ctx, params.Size, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("service.RentalService.FindPage: %w", err)
	}
	if rentals == nil {
		return []domain.Rental{}, nil
	}
	return rentals, nil
}

// Create prices and persists a new rental.
// The referenced vehicle must exist; its daily rate times the day count of the
// rental period becomes the amount. Nothing is persisted when the vehicle (or,
// with the person check enabled, the renter) is missing; the create aborts
// with domain.ErrNotFound first. Returns domain.ErrRowCount if the insert
// reports anything but one affected row.
func (s *RentalService) Create(ctx context.Context, req CreateRental) error {
	if s.checks.Person {
		if _, err := s.people.GetByID(ctx, req.PersonID); err != nil {
			return fmt.Errorf("service.RentalService.Create: person: %w", err)
		}
	}

	vehicle, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return fmt.Errorf("service.RentalService.Create: vehicle: %w", err)
	}

	days := RentalDays(req.StartDate, req.EndDate)
	rental := domain.Rental{
		PersonID:  req.PersonID,
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Amount:    vehicle.DailyRate.Mul(decimal.NewFromInt(int64(days))),
	}

	rows, err := s.rentals.Save(ctx, rental)
	if err != nil {
		return fmt.Errorf("service.RentalService.Create: %w", err)
	}
	if rows != 1 {
		return fmt.Errorf("service.RentalService.Create: %w: %d", domain.ErrRowCount, rows)
	}
	return nil
}

// Update replaces the rental at id with the supplied record. The amount is
// persisted verbatim; Create is the only path that computes it.
// Returns domain.ErrNotFound if zero rows were affected.
func (s *RentalService) Update(ctx context.Context, rental domain.Rental, id int64) error {
	rows, err := s.rentals.Update(ctx, rental, id)
	if err != nil {
		return fmt.Errorf("service.RentalService.Update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service.RentalService.Update: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes the rental at id.
// Returns domain.ErrNotFound if zero rows were affected.
func (s *RentalService) Delete(ctx context.Context, id int64) error {
	rows, err := s.rentals.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("service.RentalService.Delete: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("service.RentalService.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// RentalDays returns the billable day count for a rental period using
// day-of-year subtraction. Both dates must fall in the same calendar year:
// when end is in a later year the count truncates at the year boundary and
// can go negative. Kept bug-compatible with the billing system this service
// replaces; the tests pin the cross-year behavior.
func RentalDays(start, end time.Time) int {
	return end.YearDay() - start.YearDay()
}
