package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locafleet/backend/internal/domain"
	"github.com/locafleet/backend/internal/handler"
)

// mockPersonServicer is a test double for handler.PersonServicer.
// Set only the method fields your test needs.
type mockPersonServicer struct {
	getByID  func(ctx context.Context, id int64) (domain.Person, error)
	findPage func(ctx context.Context, params domain.PageParams) ([]domain.Person, error)
	save     func(ctx context.Context, person domain.Person) error
	update   func(ctx context.Context, person domain.Person, id int64) error
	delete   func(ctx context.Context, id int64) error
}

func (m *mockPersonServicer) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	return m.getByID(ctx, id)
}
func (m *mockPersonServicer) FindPage(ctx context.Context, params domain.PageParams) ([]domain.Person, error) {
	return m.findPage(ctx, params)
}
func (m *mockPersonServicer) Save(ctx context.Context, person domain.Person) error {
	return m.save(ctx, person)
}
func (m *mockPersonServicer) Update(ctx context.Context, person domain.Person, id int64) error {
	return m.update(ctx, person, id)
}
func (m *mockPersonServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockPersonServicer must satisfy handler.PersonServicer.
var _ handler.PersonServicer = (*mockPersonServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newPeopleHandler wires a Server with the given mock into the router.
// This mirrors exactly how main.go wires it in production.
func newPeopleHandler(svc handler.PersonServicer) http.Handler {
	return handler.NewServer(svc, nil, nil).Routes()
}

func personFixture() domain.Person {
	return domain.Person{
		ID:       7,
		Name:     "Ana Souza",
		Document: "123.456.789-00",
		Email:    "ana@example.com",
		Phone:    "+55 11 91234-5678",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeError unmarshals the {message, status} error payload.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (message string, status int) {
	t.Helper()
	var body struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message, body.Status
}

// ---- GET /people -----------------------------------------------------------

func TestListPeople_200(t *testing.T) {
	svc := &mockPersonServicer{
		findPage: func(_ context.Context, _ domain.PageParams) ([]domain.Person, error) {
			return []domain.Person{personFixture(), personFixture()}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/people?page=1&size=10", nil)
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []domain.Person
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestListPeople_PassesValidatedParams(t *testing.T) {
	var got domain.PageParams
	svc := &mockPersonServicer{
		findPage: func(_ context.Context, params domain.PageParams) ([]domain.Person, error) {
			got = params
			return []domain.Person{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/people?page=3&size=15", nil)
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 15, got.Size)
}

func TestListPeople_InvalidParamsFallBackToDefaults(t *testing.T) {
	var got domain.PageParams
	svc := &mockPersonServicer{
		findPage: func(_ context.Context, params domain.PageParams) ([]domain.Person, error) {
			got = params
			return []domain.Person{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/people?page=0&size=-5", nil)
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 10, got.Size)
}

// ---- GET /people/{id} ------------------------------------------------------

func TestGetPerson_200(t *testing.T) {
	fixture := personFixture()
	svc := &mockPersonServicer{
		getByID: func(_ context.Context, id int64) (domain.Person, error) {
			assert.Equal(t, int64(7), id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/people/7", nil)
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Person
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, fixture.Name, resp.Name)
	assert.Equal(t, fixture.ID, resp.ID)
}

func TestGetPerson_404(t *testing.T) {
	svc := &mockPersonServicer{
		getByID: func(_ context.Context, _ int64) (domain.Person, error) {
			return domain.Person{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/people/999", nil)
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	message, status := decodeError(t, rec)
	assert.Equal(t, "person not found", message)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetPerson_400_BadID(t *testing.T) {
	svc := &mockPersonServicer{}

	req := httptest.NewRequest(http.MethodGet, "/people/abc", nil)
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- POST /people ----------------------------------------------------------

func TestCreatePerson_201(t *testing.T) {
	var saved domain.Person
	svc := &mockPersonServicer{
		save: func(_ context.Context, p domain.Person) error {
			saved = p
			return nil
		},
	}

	body := jsonBody(t, map[string]any{
		"name":     "Ana Souza",
		"document": "123.456.789-00",
		"email":    "ana@example.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/people", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String(), "create responds with an empty body")
	assert.Equal(t, "Ana Souza", saved.Name)
}

func TestCreatePerson_400_MissingName(t *testing.T) {
	svc := &mockPersonServicer{}

	body := jsonBody(t, map[string]any{"document": "123.456.789-00"})

	req := httptest.NewRequest(http.MethodPost, "/people", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	message, status := decodeError(t, rec)
	assert.Equal(t, "name is required", message)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreatePerson_500_RowCount(t *testing.T) {
	svc := &mockPersonServicer{
		save: func(_ context.Context, _ domain.Person) error {
			return domain.ErrRowCount
		},
	}

	body := jsonBody(t, map[string]any{"name": "Ana Souza"})

	req := httptest.NewRequest(http.MethodPost, "/people", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---- PUT /people/{id} ------------------------------------------------------

func TestUpdatePerson_200(t *testing.T) {
	svc := &mockPersonServicer{
		update: func(_ context.Context, p domain.Person, id int64) error {
			assert.Equal(t, int64(7), id)
			assert.Equal(t, "Ana Lima", p.Name)
			return nil
		},
	}

	body := jsonBody(t, map[string]any{"name": "Ana Lima"})

	req := httptest.NewRequest(http.MethodPut, "/people/7", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdatePerson_404(t *testing.T) {
	svc := &mockPersonServicer{
		update: func(_ context.Context, _ domain.Person, _ int64) error {
			return domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{"name": "Ana Lima"})

	req := httptest.NewRequest(http.MethodPut, "/people/999", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	message, _ := decodeError(t, rec)
	assert.Equal(t, "person not found", message)
}

// ---- DELETE /people/{id} ---------------------------------------------------

func TestDeletePerson_200(t *testing.T) {
	svc := &mockPersonServicer{
		delete: func(_ context.Context, id int64) error {
			assert.Equal(t, int64(7), id)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/people/7", nil)
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeletePerson_404(t *testing.T) {
	svc := &mockPersonServicer{
		delete: func(_ context.Context, _ int64) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/people/999", nil)
	rec := httptest.NewRecorder()

	newPeopleHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	message, status := decodeError(t, rec)
	assert.Equal(t, "person not found", message)
	assert.Equal(t, http.StatusNotFound, status)
}
