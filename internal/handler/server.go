// Package handler implements the HTTP handlers for the vehicle rental API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (person.go, vehicle.go, rental.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/locafleet/backend/internal/domain"
	"github.com/locafleet/backend/internal/service"
)

// PersonServicer defines the business operations the person handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type PersonServicer interface {
	GetByID(ctx context.Context, id int64) (domain.Person, error)
	FindPage(ctx context.Context, params domain.PageParams) ([]domain.Person, error)
	Save(ctx context.Context, person domain.Person) error
	Update(ctx context.Context, person domain.Person, id int64) error
	Delete(ctx context.Context, id int64) error
}

// VehicleServicer defines the business operations the vehicle handler depends on.
type VehicleServicer interface {
	GetByID(ctx context.Context, id int64) (domain.Vehicle, error)
	FindPage(ctx context.Context, params domain.PageParams) ([]domain.Vehicle, error)
	Save(ctx context.Context, vehicle domain.Vehicle) error
	Update(ctx context.Context, vehicle domain.Vehicle, id int64) error
	Delete(ctx context.Context, id int64) error
}

// RentalServicer defines the business operations the rental handler depends on.
type RentalServicer interface {
	GetByID(ctx context.Context, id int64) (domain.Rental, error)
	FindPage(ctx context.Context, params domain.PageParams) ([]domain.Rental, error)
	Create(ctx context.Context, req service.CreateRental) error
	Update(ctx context.Context, rental domain.Rental, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Server holds the dependencies shared by every handler method.
// Wire it in main.go via Server.Routes().
type Server struct {
	people   PersonServicer
	vehicles VehicleServicer
	rentals  RentalServicer
	validate *validator.Validate
}

// NewServer constructs the Server with all its dependencies.
// The validator reports field names from json tags so validation messages
// match what the client actually sent.
func NewServer(people PersonServicer, vehicles VehicleServicer, rentals RentalServicer) *Server {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Server{
		people:   people,
		vehicles: vehicles,
		rentals:  rentals,
		validate: v,
	}
}

// Routes returns the router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/people", func(r chi.Router) {
		r.Get("/", s.ListPeople)
		r.Post("/", s.CreatePerson)
		r.Get("/{id}", s.GetPerson)
		r.Put("/{id}", s.UpdatePerson)
		r.Delete("/{id}", s.DeletePerson)
	})

	r.Route("/vehicles", func(r chi.Router) {
		r.Get("/", s.ListVehicles)
		r.Post("/", s.CreateVehicle)
		r.Get("/{id}", s.GetVehicle)
		r.Put("/{id}", s.UpdateVehicle)
		r.Delete("/{id}", s.DeleteVehicle)
	})

	r.Route("/rentals", func(r chi.Router) {
		r.Get("/", s.ListRentals)
		r.Post("/", s.CreateRental)
		r.Get("/{id}", s.GetRental)
		r.Put("/{id}", s.UpdateRental)
		r.Delete("/{id}", s.DeleteRental)
	})

	return r
}

// writeJSON marshals v to the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}

// idParam extracts and parses the {id} path parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// pageParams builds validated pagination params from the page/size query
// parameters. Missing or malformed values fall back to the defaults inside
// domain.NewPageParams.
func pageParams(r *http.Request) domain.PageParams {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	return domain.NewPageParams(page, size)
}
