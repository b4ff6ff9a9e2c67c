package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/WGledhill94/loadLab/internal/auth"
	"github.com/WGledhill94/loadLab/internal/domain"
	"github.com/WGledhill94/loadLab/internal/store"
	"github.com/go-chi/chi/v5"
)

func newAuthRouter() *chi.Mux {
	authSvc := auth.NewService(store.New[domain.User](), "test-secret", time.Hour)
	handler := NewAuthHandler(authSvc)

	r := chi.NewRouter()
	r.Post("/api/register", handler.Register)
	r.Post("/api/login", handler.Login)
	return r
}

func postJSON(router *chi.Mux, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRegister_Success(t *testing.T) {
	router := newAuthRouter()

	recorder := postJSON(router, "/api/register", `{"email":"ada@example.com","password":"hunter2","name":"Ada"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var resp AuthResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("Expected a token in the response")
	}
	if resp.User.Email != "ada@example.com" {
		t.Errorf("Expected user email 'ada@example.com', got '%s'", resp.User.Email)
	}
	if resp.User.PasswordHash != "" {
		t.Error("Password hash must not be serialized in the response")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := newAuthRouter()

	postJSON(router, "/api/register", `{"email":"ada@example.com","password":"hunter2","name":"Ada"}`)
	recorder := postJSON(router, "/api/register", `{"email":"ada@example.com","password":"other","name":"Imposter"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "User already exists" {
		t.Errorf("Expected error 'User already exists', got '%s'", resp.Error)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	router := newAuthRouter()

	recorder := postJSON(router, "/api/register", `{"name":"Ada"}`)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	router := newAuthRouter()
	postJSON(router, "/api/register", `{"email":"ada@example.com","password":"hunter2","name":"Ada"}`)

	recorder := postJSON(router, "/api/login", `{"email":"ada@example.com","password":"hunter2"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	var resp AuthResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("Expected a token in the response")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newAuthRouter()
	postJSON(router, "/api/register", `{"email":"ada@example.com","password":"hunter2","name":"Ada"}`)

	recorder := postJSON(router, "/api/login", `{"email":"ada@example.com","password":"wrong"}`)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "Invalid credentials" {
		t.Errorf("Expected error 'Invalid credentials', got '%s'", resp.Error)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	router := newAuthRouter()

	recorder := postJSON(router, "/api/login", `{"email":"nobody@example.com","password":"pw"}`)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}
