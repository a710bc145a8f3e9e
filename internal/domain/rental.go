package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental links a person to a vehicle over a date range.
// Amount is computed by the rental service at creation time (daily rate times
// day count) and is never supplied by the caller on create. Updates replace
// the full record, amount included, without recomputing it.
type Rental struct {
	ID        int64           `json:"id"`
	PersonID  int64           `json:"person_id"`
	VehicleID int64           `json:"vehicle_id"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
