package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/locafleet/backend/internal/domain"
	"github.com/locafleet/backend/internal/service"
)

// dateLayout is the wire format for rental dates.
const dateLayout = "2006-01-02"

// createRentalRequest is the body for POST /rentals. No amount field: the
// rental service computes it from the vehicle's daily rate.
type createRentalRequest struct {
	PersonID  int64  `json:"person_id" validate:"required"`
	VehicleID int64  `json:"vehicle_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// updateRentalRequest is the body for PUT /rentals/{id}. Unlike create it
// carries the amount, which is persisted verbatim without recomputation.
type updateRentalRequest struct {
	PersonID  int64           `json:"person_id" validate:"required"`
	VehicleID int64           `json:"vehicle_id" validate:"required"`
	StartDate string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	Amount    decimal.Decimal `json:"amount"`
}

// ListRentals handles GET /rentals?page=1&size=10.
func (s *Server) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := s.rentals.FindPage(r.Context(), pageParams(r))
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

// GetRental handles GET /rentals/{id}.
func (s *Server) GetRental(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	rental, err := s.rentals.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "rental not found")
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// CreateRental handles POST /rentals. Responds 201 with an empty body.
// A missing vehicle aborts the create with 404 before anything is persisted.
func (s *Server) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		badRequest(w, validationMessage(err))
		return
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	err := s.rentals.Create(r.Context(), service.CreateRental{
		PersonID:  req.PersonID,
		VehicleID: req.VehicleID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		respondError(w, err, "vehicle not found")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// UpdateRental handles PUT /rentals/{id}. Replaces the full record, the
// caller-supplied amount included.
func (s *Server) UpdateRental(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	var req updateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		badRequest(w, validationMessage(err))
		return
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	rental := domain.Rental{
		PersonID:  req.PersonID,
		VehicleID: req.VehicleID,
		StartDate: start,
		EndDate:   end,
		Amount:    req.Amount,
	}

	if err := s.rentals.Update(r.Context(), rental, id); err != nil {
		respondError(w, err, "rental not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteRental handles DELETE /rentals/{id}.
func (s *Server) DeleteRental(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	if err := s.rentals.Delete(r.Context(), id); err != nil {
		respondError(w, err, "rental not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}
