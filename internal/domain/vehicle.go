package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle is a rentable vehicle in the agency's fleet.
// DailyRate is the price charged per rental day; rental pricing multiplies it
// by the day count of the rental period.
type Vehicle struct {
	ID        int64           `json:"id"`
	Make      string          `json:"make"`
	Model     string          `json:"model"`
	Plate     string          `json:"plate"`
	Color     string          `json:"color"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
