package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/locafleet/backend/internal/domain"
)

// vehicleRequest is the body for POST /vehicles and PUT /vehicles/{id}.
// The daily rate is not range-checked here; pricing assumes it is
// non-negative but the store accepts whatever the caller sends.
type vehicleRequest struct {
	Make      string          `json:"make" validate:"required"`
	Model     string          `json:"model" validate:"required"`
	Plate     string          `json:"plate" validate:"required"`
	Color     string          `json:"color"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

func (v vehicleRequest) toDomain() domain.Vehicle {
	return domain.Vehicle{
		Make:      v.Make,
		Model:     v.Model,
		Plate:     v.Plate,
		Color:     v.Color,
		DailyRate: v.DailyRate,
	}
}

// ListVehicles handles GET /vehicles?page=1&size=10.
func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.vehicles.FindPage(r.Context(), pageParams(r))
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// GetVehicle handles GET /vehicles/{id}.
func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	vehicle, err := s.vehicles.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// CreateVehicle handles POST /vehicles. Responds 201 with an empty body.
func (s *Server) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		badRequest(w, validationMessage(err))
		return
	}

	if err := s.vehicles.Save(r.Context(), req.toDomain()); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// UpdateVehicle handles PUT /vehicles/{id}. Replaces all fields of the record.
func (s *Server) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	var req vehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		badRequest(w, validationMessage(err))
		return
	}

	if err := s.vehicles.Update(r.Context(), req.toDomain(), id); err != nil {
		respondError(w, err, "vehicle not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteVehicle handles DELETE /vehicles/{id}.
func (s *Server) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	if err := s.vehicles.Delete(r.Context(), id); err != nil {
		respondError(w, err, "vehicle not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}
