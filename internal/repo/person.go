package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/locafleet/backend/internal/domain"
)

// PersonRepo defines the persistence operations for Persons.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the services to be unit-tested with a mock.
type PersonRepo interface {
	// GetByID retrieves a single person by primary key.
	// Returns domain.ErrNotFound if no person with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Person, error)

	// FindAll returns up to limit persons starting at offset, ordered by id.
	FindAll(ctx context.Context, limit, offset int) ([]domain.Person, error)

	// Save inserts a new person and returns the number of affected rows.
	Save(ctx context.Context, person domain.Person) (int64, error)

	// Update replaces the mutable fields of the person at id and returns the
	// number of affected rows (zero when the id does not exist).
	Update(ctx context.Context, person domain.Person, id int64) (int64, error)

	// Delete removes the person at id and returns the number of affected rows
	// (zero when the id does not exist).
	Delete(ctx context.Context, id int64) (int64, error)
}

// pgPersonRepo is the Postgres implementation of PersonRepo.
type pgPersonRepo struct {
	db db
}

// NewPersonRepo constructs a PersonRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPersonRepo(db db) PersonRepo {
	return &pgPersonRepo{db: db}
}

func (r *pgPersonRepo) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	const q = `
		SELECT id, name, document, email, phone, created_at, updated_at
		FROM people
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPerson(row)
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.PersonRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPersonRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Person, error) {
	const q = `
		SELECT id, name, document, email, phone, created_at, updated_at
		FROM people
		ORDER BY id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit, "offset": offset})
	if err != nil {
		return nil, fmt.Errorf("repo.PersonRepo.FindAll: %w", err)
	}
	defer rows.Close()

	var people []domain.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PersonRepo.FindAll: scan: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PersonRepo.FindAll: rows: %w", err)
	}

	return people, nil
}

func (r *pgPersonRepo) Save(ctx context.Context, person domain.Person) (int64, error) {
	const q = `
		INSERT INTO people (name, document, email, phone)
		VALUES (@name, @document, @email, @phone)`

	args := pgx.NamedArgs{
		"name":     person.Name,
		"document": person.Document,
		"email":    person.Email,
		"phone":    person.Phone,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return 0, fmt.Errorf("repo.PersonRepo.Save: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgPersonRepo) Update(ctx context.Context, person domain.Person, id int64) (int64, error) {
	const q = `
		UPDATE people
		SET name       = @name,
		    document   = @document,
		    email      = @email,
		    phone      = @phone,
		    updated_at = now()
		WHERE id = @id`

	args := pgx.NamedArgs{
		"id":       id,
		"name":     person.Name,
		"document": person.Document,
		"email":    person.Email,
		"phone":    person.Phone,
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return 0, fmt.Errorf("repo.PersonRepo.Update: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgPersonRepo) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM people WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return 0, fmt.Errorf("repo.PersonRepo.Delete: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanPerson maps a single database row into a domain.Person.
func scanPerson(s scanner) (domain.Person, error) {
	var p domain.Person

	err := s.Scan(&p.ID, &p.Name, &p.Document, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Person{}, domain.ErrNotFound
		}
		return domain.Person{}, err
	}

	return p, nil
}
