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

// VehicleRepo defines the persistence operations for Vehicles.
type VehicleRepo interface {
	// GetByID retrieves a single vehicle by primary key.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Vehicle, error)

	// FindAll returns up to limit vehicles starting at offset, ordered by id.
	FindAll(ctx context.Context, limit, offset int) ([]domain.Vehicle, error)

	// Save inserts a new vehicle and returns the number of affected rows.
	Save(ctx context.Context, vehicle domain.Vehicle) (int64, error)

	// Update replaces the mutable fields of the vehicle at id and returns the
	// number of affected rows (zero when the id does not exist).
	Update(ctx context.Context, vehicle domain.Vehicle, id int64) (int64, error)

	// Delete removes the vehicle at id and returns the number of affected rows
	// (zero when the id does not exist).
	Delete(ctx context.Context, id int64) (int64, error)
}

// pgVehicleRepo is the Postgres implementation of VehicleRepo.
type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

func (r *pgVehicleRepo) GetByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	const q = `
		SELECT id, make, model, plate, color, daily_rate, created_at, updated_at
		FROM vehicles
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgVehicleRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Vehicle, error) {
	const q = `
		SELECT id, make, model, plate, color, daily_rate, created_at, updated_at
		FROM vehicles
		ORDER BY id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit, "offset": offset})
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.FindAll: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.FindAll: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.FindAll: rows: %w", err)
	}

	return vehicles, nil
}

func (r *pgVehicleRepo) Save(ctx context.Context, vehicle domain.Vehicle) (int64, error) {
	const q = `
		INSERT INTO vehicles (make, model, plate, color, daily_rate)
		VALUES (@make, @model, @plate, @color, @daily_rate)`

	args := pgx.NamedArgs{
		"make":       vehicle.Make,
		"model":      vehicle.Model,
		"plate":      vehicle.Plate,
		"color":      vehicle.Color,
		"daily_rate": vehicle.DailyRate,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return 0, fmt.Errorf("repo.VehicleRepo.Save: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgVehicleRepo) Update(ctx context.Context, vehicle domain.Vehicle, id int64) (int64, error) {
	const q = `
		UPDATE vehicles
		SET make       = @make,
		    model      = @model,
		    plate      = @plate,
		    color      = @color,
		    daily_rate = @daily_rate,
		    updated_at = now()
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id":         id,
		"make":       vehicle.Make,
		"model":      vehicle.Model,
		"plate":      vehicle.Plate,
		"color":      vehicle.Color,
		"daily_rate": vehicle.DailyRate,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return 0, fmt.Errorf("repo.VehicleRepo.Update: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgVehicleRepo) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM vehicles WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, fmt.Errorf("repo.VehicleRepo.Delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanVehicle maps a single database row into a domain.Vehicle.
// The numeric daily_rate column is scanned through pgtype.Numeric and
// converted losslessly into a decimal.Decimal.
func scanVehicle(s scanner) (domain.Vehicle, error) {
	var (
		v    domain.Vehicle
		rate pgtype.Numeric
	)

	err := s.Scan(&v.ID, &v.Make, &v.Model, &v.Plate, &v.Color, &rate, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrNotFound
		}
		return domain.Vehicle{}, err
	}

	if rate.Valid {
		v.DailyRate = decimal.NewFromBigInt(rate.Int, rate.Exp)
	}

	return v, nil
}
