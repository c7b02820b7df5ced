package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docuvault/docuvault/internal/pkg/config"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"github.com/docuvault/docuvault/internal/pkg/jwt"
	"github.com/docuvault/docuvault/internal/pkg/uid"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type createdResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (createdResponse) StatusCode() int { return http.StatusCreated }

func newTestRouter(t *testing.T) (*Router, jwt.JWT) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
app:
  env: development
instrument:
  log_mask_fields: otp,token
`))
	if err != nil {
		t.Fatalf("new config: %v", err)
	}

	tokenizer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(testSecret),
		Issuer:    "test",
		Audiences: []string{"test"},
		TTL:       time.Hour,
		Clock:     realClock{},
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("new jwt: %v", err)
	}

	r := NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        tokenizer,
		Instrument: instrument.NewNoop(),
	})

	return r, tokenizer
}

func doRequest(r *Router, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestRouter(t *testing.T) {

	t.Run("Health", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)

		// Act
		rec := doRequest(r, http.MethodGet, "/health", "", "")

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["status"] != "OK" {
			t.Fatalf("status field = %v", resp["status"])
		}
		if resp["timestamp"] == nil {
			t.Fatal("expected a timestamp")
		}
	})

	t.Run("ProtectedWithoutToken", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)
		r.GET("/api/things", func(*Request) (any, error) { return nil, nil })

		// Act
		rec := doRequest(r, http.MethodGet, "/api/things", "", "")

		// Assert
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["success"] != false {
			t.Fatalf("success = %v, want false", resp["success"])
		}
	})

	t.Run("StatusCodePassThrough", func(t *testing.T) {

		// Arrange
		r, tokenizer := newTestRouter(t)
		r.POST("/api/things", func(*Request) (any, error) {
			return createdResponse{Success: true, Message: "created"}, nil
		})
		token, err := tokenizer.Generate(1, "+15551234567", "user")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		// Act
		rec := doRequest(r, http.MethodPost, "/api/things", `{}`, token)

		// Assert
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
		}
		var resp createdResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !resp.Success || resp.Message != "created" {
			t.Fatalf("body = %s", rec.Body.String())
		}
	})

	t.Run("NilResponseIsNoContent", func(t *testing.T) {

		// Arrange
		r, tokenizer := newTestRouter(t)
		r.DELETE("/api/things/:id", func(*Request) (any, error) { return nil, nil })
		token, err := tokenizer.Generate(1, "+15551234567", "user")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		// Act
		rec := doRequest(r, http.MethodDelete, "/api/things/1", "", token)

		// Assert
		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
	})

	t.Run("BusinessErrorDetailsAreMerged", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)
		r.POST("/api/auth/validateOTP", func(*Request) (any, error) {
			return nil, goerror.NewBusinessDetails("Invalid OTP", goerror.CodeInvalidInput, map[string]any{
				"attempts_remaining": 2,
			})
		})

		// Act
		rec := doRequest(r, http.MethodPost, "/api/auth/validateOTP", `{}`, "")

		// Assert
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["message"] != "Invalid OTP" {
			t.Fatalf("message = %v", resp["message"])
		}
		if resp["attempts_remaining"] != float64(2) {
			t.Fatalf("attempts_remaining = %v", resp["attempts_remaining"])
		}
	})

	t.Run("ServerErrorExposesCauseInDevOnly", func(t *testing.T) {

		// Arrange
		cause := errors.New("connection refused")
		r, _ := newTestRouter(t)
		r.POST("/api/auth/generateOTP", func(*Request) (any, error) {
			return nil, goerror.NewServer(cause)
		})

		// Act
		rec := doRequest(r, http.MethodPost, "/api/auth/generateOTP", `{}`, "")

		// Assert
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["error"] != "connection refused" {
			t.Fatalf("error = %v, want the cause in dev mode", resp["error"])
		}
	})

	t.Run("UnknownRoute", func(t *testing.T) {

		// Arrange
		r, _ := newTestRouter(t)

		// Act
		rec := doRequest(r, http.MethodGet, "/nope", "", "")

		// Assert
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}
