// Package domain contains the core data types for the vehicle rental API.
// This package has zero dependencies on the other internal packages and is
// imported by every one of them (repo, service, handler).
package domain

import "time"

// Person is a renter on file with the agency.
// The ID is assigned by the database on insert and never changes afterwards.
type Person struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
