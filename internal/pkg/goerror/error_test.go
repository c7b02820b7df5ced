package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	cases := map[Code]int{
		CodeInternal:       http.StatusInternalServerError,
		CodeInvalidFormat:  http.StatusBadRequest,
		CodeInvalidInput:   http.StatusBadRequest,
		CodeNotFound:       http.StatusNotFound,
		CodeConflict:       http.StatusConflict,
		CodeTooManyRequest: http.StatusTooManyRequests,
		CodeUnauthorized:   http.StatusUnauthorized,
		CodeForbidden:      http.StatusForbidden,
		CodeTimeout:        http.StatusRequestTimeout,
	}

	for code, want := range cases {
		e := &Error{code: code}
		if got := e.StatusCode(); got != want {
			t.Fatalf("StatusCode(%v) = %d, want %d", code, got, want)
		}
	}
}

func TestNewBusiness(t *testing.T) {

	// Act
	err := NewBusiness("Too many OTP requests. Please try again later.", CodeTooManyRequest)

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Type() != TypeBusiness {
		t.Fatalf("type = %v", gerr.Type())
	}
	if gerr.Msg() != "Too many OTP requests. Please try again later." {
		t.Fatalf("msg = %q", gerr.Msg())
	}
}

func TestNewBusinessDetails(t *testing.T) {

	// Act
	err := NewBusinessDetails("Invalid OTP", CodeInvalidInput, map[string]any{"attempts_remaining": 2})

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Details()["attempts_remaining"] != 2 {
		t.Fatalf("details = %v", gerr.Details())
	}
	if gerr.StatusCode() != http.StatusBadRequest {
		t.Fatalf("status = %d", gerr.StatusCode())
	}
}

func TestNewServer(t *testing.T) {

	// Arrange
	cause := errors.New("connection refused")

	// Act
	err := NewServer(cause)

	// Assert
	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to be wrapped")
	}
	if gerr.Msg() != "Internal server error" {
		t.Fatalf("msg = %q", gerr.Msg())
	}
}

func TestNewInvalidInput(t *testing.T) {

	t.Run("WithFieldPairs", func(t *testing.T) {

		// Act
		err := NewInvalidInput(nil, "attachment", "attachment file is required")

		// Assert
		var gerr *Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if gerr.Fields()["attachment"] != "attachment file is required" {
			t.Fatalf("fields = %v", gerr.Fields())
		}
	})

	t.Run("WithUnderlyingError", func(t *testing.T) {

		// Act
		err := NewInvalidInput(errors.New("bad value"))

		// Assert
		var gerr *Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if gerr.Type() != TypeValidation {
			t.Fatalf("type = %v", gerr.Type())
		}
	})
}
