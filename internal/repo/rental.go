package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/locafleet/backend/internal/domain"
)

// RentalRepo defines the persistence operations for Rentals.
// Rows are plain records here; pricing and referential checks live in the
// rental service, which is the only path that creates rentals.
type RentalRepo interface {
	// GetByID retrieves a single rental by primary key.
	// Returns domain.ErrNotFound if no rental with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Rental, error)

	// FindAll returns up to limit rentals starting at offset, ordered by id.
	FindAll(ctx context.Context, limit, offset int) ([]domain.Rental, error)

	// Save inserts a new rental and returns the number of affected rows.
	Save(ctx context.Context, rental domain.Rental) (int64, error)

	// Update replaces all fields of the rental at id, amount included, and
	// returns the number of affected rows (zero when the id does not exist).
	Update(ctx context.Context, rental domain.Rental, id int64) (int64, error)

	// Delete removes the rental at id and returns the number of affected rows
	// (zero when the id does not exist).
	Delete(ctx context.Context, id int64) (int64, error)
}

// pgRentalRepo is the Postgres implementation of RentalRepo.
type pgRentalRepo struct {
	db db
}

// NewRentalRepo constructs a RentalRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewRentalRepo(db db) RentalRepo {
	return &pgRentalRepo{db: db}
}

func (r *pgRentalRepo) GetByID(ctx context.Context, id int64) (domain.Rental, error) {
	const q = `
		SELECT id, person_id, vehicle_id, start_date, end_date, amount, created_at, updated_at
		FROM rentals
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanRental(row)
	if err != nil {
		return domain.Rental{}, fmt.Errorf("repo.RentalRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgRentalRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Rental, error) {
	const q = `
		SELECT id, person_id, vehicle_id, start_date, end_date, amount, created_at, updated_at
		FROM rentals
		ORDER BY id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit, "offset": offset})
	if err != nil {
		return nil, fmt.Errorf("repo.RentalRepo.FindAll: %w", err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RentalRepo.FindAll: scan: %w", err)
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RentalRepo.FindAll: rows: %w", err)
	}

	return rentals, nil
}

func (r *pgRentalRepo) Save(ctx context.Context, rental domain.Rental) (int64, error) {
	const q = `
		INSERT INTO rentals (person_id, vehicle_id, start_date, end_date, amount)
		VALUES (@person_id, @vehicle_id, @start_date, @end_date, @amount)`

	args := pgx.NamedArgs{
		"person_id":  rental.PersonID,
		"vehicle_id": rental.VehicleID,
		"start_date": rental.StartDate,
		"end_date":   rental.EndDate,
		"amount":     rental.Amount,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return 0, fmt.Errorf("repo.RentalRepo.Save: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgRentalRepo) Update(ctx context.Context, rental domain.Rental, id int64) (int64, error) {
	const q = `
		UPDATE rentals
		SET person_id  = @person_id,
		    vehicle_id = @vehicle_id,
		    start_date = @start_date,
		    end_date   = @end_date,
		    amount     = @amount,
		    updated_at = now()
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id":         id,
		"person_id":  rental.PersonID,
		"vehicle_id": rental.VehicleID,
		"start_date": rental.StartDate,
		"end_date":   rental.EndDate,
		"amount":     rental.Amount,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return 0, fmt.Errorf("repo.RentalRepo.Update: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgRentalRepo) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM rentals WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, fmt.Errorf("repo.RentalRepo.Delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanRental maps a single database row into a domain.Rental.
func scanRental(s scanner) (domain.Rental, error) {
	var (
		rt     domain.Rental
		start  pgtype.Date
		end    pgtype.Date
		amount pgtype.Numeric
	)

	err := s.Scan(&rt.ID, &rt.PersonID, &rt.VehicleID, &start, &end, &amount, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Rental{}, domain.ErrNotFound
		}
		return domain.Rental{}, err
	}

	rt.StartDate = start.Time
	rt.EndDate = end.Time
	if amount.Valid {
		rt.Amount = decimal.NewFromBigInt(amount.Int, amount.Exp)
	}

	return rt, nil
}
