package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaleed/kernel/config"
	"github.com/mvaleed/kernel/internal/customer"
	"github.com/mvaleed/kernel/internal/event"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := customer.NewService(customer.NewMemoryStore(), event.NewNoopPublisher(), logger)
	return NewServer(&config.Config{Environment: "prod"}, svc, logger)
}

func do(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestRegisterAndGetCustomer(t *testing.T) {
	s := newTestServer()

	rec, created := do(t, s, http.MethodPost, "/api/v1/customers",
		`{"name":"Ana","email":"ana@example.com","age":30,"license":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, created["can_rent"])

	id, ok := created["id"].(string)
	require.True(t, ok)
	assert.Equal(t, "/api/v1/customers/"+id, rec.Header().Get("Location"))

	rec, got := do(t, s, http.MethodGet, "/api/v1/customers/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ana", got["name"])

	rec, _ = do(t, s, http.MethodPost, "/api/v1/customers",
		`{"name":"Ana","email":"ana@example.com","age":30,"license":true}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterCustomer_ValidationProblem(t *testing.T) {
	s := newTestServer()

	rec, body := do(t, s, http.MethodPost, "/api/v1/customers",
		`{"name":"Kid","email":"kid@example.com","age":16,"license":false}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{
		"Profile": []any{"must be 18 or older", "must hold a driving license"},
	}, body["errors"])
}

func TestRegisterCustomer_BadJSON(t *testing.T) {
	rec, body := do(t, newTestServer(), http.MethodPost, "/api/v1/customers", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"body": []any{"invalid JSON"}}, body["errors"])
}

func TestGetCustomer_Errors(t *testing.T) {
	s := newTestServer()

	rec, _ := do(t, s, http.MethodGet, "/api/v1/customers/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, body := do(t, s, http.MethodGet, "/api/v1/customers/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["errors"], "id")
}

func TestHealth(t *testing.T) {
	rec, body := do(t, newTestServer(), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}
