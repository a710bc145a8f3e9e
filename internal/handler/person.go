package handler

import (
	"encoding/json"
	"net/http"

	"github.com/locafleet/backend/internal/domain"
)

// personRequest is the body for POST /people and PUT /people/{id}.
type personRequest struct {
	Name     string `json:"name" validate:"required"`
	Document string `json:"document"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

func (p personRequest) toDomain() domain.Person {
	return domain.Person{
		Name:     p.Name,
		Document: p.Document,
		Email:    p.Email,
		Phone:    p.Phone,
	}
}

// ListPeople handles GET /people?page=1&size=10.
func (s *Server) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := s.people.FindPage(r.Context(), pageParams(r))
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, people)
}

// GetPerson handles GET /people/{id}.
func (s *Server) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	person, err := s.people.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "person not found")
		return
	}
	writeJSON(w, http.StatusOK, person)
}

// CreatePerson handles POST /people. Responds 201 with an empty body.
func (s *Server) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		badRequest(w, validationMessage(err))
		return
	}

	if err := s.people.Save(r.Context(), req.toDomain()); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// UpdatePerson handles PUT /people/{id}. Replaces all fields of the record.
func (s *Server) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	var req personRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		badRequest(w, validationMessage(err))
		return
	}

	if err := s.people.Update(r.Context(), req.toDomain(), id); err != nil {
		respondError(w, err, "person not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeletePerson handles DELETE /people/{id}.
func (s *Server) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		badRequest(w, "invalid id")
		return
	}

	if err := s.people.Delete(r.Context(), id); err != nil {
		respondError(w, err, "person not found")
		return
	}
	w.WriteHeader(http.StatusOK)
}
