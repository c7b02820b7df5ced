package tests

import (
	"net/http"
	"testing"
)

func TestGenerateOTP(t *testing.T) {

	t.Run("DevModeEchoesCode", func(t *testing.T) {

		// Arrange
		number := uniqueNumber()

		// Act
		status, body := doJSON(t, http.MethodPost, "/api/auth/generateOTP", map[string]string{
			"mobileNumber": number,
		}, "")

		// Assert
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d (body: %s)", status, http.StatusOK, body)
		}
		var resp struct {
			Success   bool   `json:"success"`
			Message   string `json:"message"`
			OTP       string `json:"otp"`
			ExpiresIn int64  `json:"expires_in"`
		}
		decodeJSON(t, body, &resp)
		if !resp.Success {
			t.Fatal("expected success")
		}
		if len(resp.OTP) != 6 {
			t.Fatalf("otp = %q, want 6 digits", resp.OTP)
		}
		if resp.ExpiresIn != 300 {
			t.Fatalf("expires_in = %d, want 300", resp.ExpiresIn)
		}
	})

	t.Run("InvalidNumber", func(t *testing.T) {

		// Act
		status, body := doJSON(t, http.MethodPost, "/api/auth/generateOTP", map[string]string{
			"mobileNumber": "not-a-number",
		}, "")

		// Assert
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d (body: %s)", status, http.StatusBadRequest, body)
		}
		env := decodeError(t, body)
		if env.Success {
			t.Fatal("expected success false")
		}
	})

	t.Run("RateLimited", func(t *testing.T) {

		// Arrange
		number := uniqueNumber()

		// Act
		var status int
		var body []byte
		for range 4 {
			status, body = doJSON(t, http.MethodPost, "/api/auth/generateOTP", map[string]string{
				"mobileNumber": number,
			}, "")
		}

		// Assert
		if status != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want %d (body: %s)", status, http.StatusTooManyRequests, body)
		}
		env := decodeError(t, body)
		if env.Message != "Too many OTP requests. Please try again later." {
			t.Fatalf("message = %q", env.Message)
		}
	})
}

func TestValidateOTP(t *testing.T) {

	t.Run("HappyPath", func(t *testing.T) {

		// Arrange
		number := uniqueNumber()

		// Act
		token := login(t, number)

		// Assert
		if token == "" {
			t.Fatal("expected a token")
		}
	})

	t.Run("WrongCodeCountsDown", func(t *testing.T) {

		// Arrange
		number := uniqueNumber()
		status, body := doJSON(t, http.MethodPost, "/api/auth/generateOTP", map[string]string{
			"mobileNumber": number,
		}, "")
		if status != http.StatusOK {
			t.Fatalf("generateOTP status = %d (body: %s)", status, body)
		}

		// Act
		status, body = doJSON(t, http.MethodPost, "/api/auth/validateOTP", map[string]string{
			"mobileNumber": number,
			"otp":          "000000",
		}, "")

		// Assert
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d (body: %s)", status, http.StatusBadRequest, body)
		}
		var resp struct {
			Message           string `json:"message"`
			AttemptsRemaining int    `json:"attempts_remaining"`
		}
		decodeJSON(t, body, &resp)
		if resp.Message != "Invalid OTP" {
			t.Fatalf("message = %q", resp.Message)
		}
		if resp.AttemptsRemaining != 2 {
			t.Fatalf("attempts_remaining = %d, want 2", resp.AttemptsRemaining)
		}
	})

	t.Run("LockoutAfterThreeFailures", func(t *testing.T) {

		// Arrange
		number := uniqueNumber()
		status, body := doJSON(t, http.MethodPost, "/api/auth/generateOTP", map[string]string{
			"mobileNumber": number,
		}, "")
		if status != http.StatusOK {
			t.Fatalf("generateOTP status = %d (body: %s)", status, body)
		}
		var gen struct {
			OTP string `json:"otp"`
		}
		decodeJSON(t, body, &gen)

		// Act & Assert
		for _, want := range []int{2, 1, 0} {
			status, body = doJSON(t, http.MethodPost, "/api/auth/validateOTP", map[string]string{
				"mobileNumber": number,
				"otp":          "000000",
			}, "")
			if status != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body: %s)", status, http.StatusBadRequest, body)
			}
			var resp struct {
				Message           string `json:"message"`
				AttemptsRemaining int    `json:"attempts_remaining"`
			}
			decodeJSON(t, body, &resp)
			if resp.Message != "Invalid OTP" {
				t.Fatalf("message = %q", resp.Message)
			}
			if resp.AttemptsRemaining != want {
				t.Fatalf("attempts_remaining = %d, want %d", resp.AttemptsRemaining, want)
			}
		}

		status, body = doJSON(t, http.MethodPost, "/api/auth/validateOTP", map[string]string{
			"mobileNumber": number,
			"otp":          gen.OTP,
		}, "")
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d (body: %s)", status, http.StatusBadRequest, body)
		}
		env := decodeError(t, body)
		if env.Message != "Too many failed attempts. Please request a new OTP." {
			t.Fatalf("message = %q", env.Message)
		}
	})

	t.Run("CodeIsSingleUse", func(t *testing.T) {

		// Arrange
		number := uniqueNumber()
		status, body := doJSON(t, http.MethodPost, "/api/auth/generateOTP", map[string]string{
			"mobileNumber": number,
		}, "")
		if status != http.StatusOK {
			t.Fatalf("generateOTP status = %d (body: %s)", status, body)
		}
		var gen struct {
			OTP string `json:"otp"`
		}
		decodeJSON(t, body, &gen)

		// Act
		payload := map[string]string{"mobileNumber": number, "otp": gen.OTP}
		status, _ = doJSON(t, http.MethodPost, "/api/auth/validateOTP", payload, "")
		if status != http.StatusOK {
			t.Fatalf("first validate status = %d", status)
		}
		status, body = doJSON(t, http.MethodPost, "/api/auth/validateOTP", payload, "")

		// Assert
		if status != http.StatusBadRequest {
			t.Fatalf("replay status = %d, want %d (body: %s)", status, http.StatusBadRequest, body)
		}
		env := decodeError(t, body)
		if env.Message != "Invalid or expired OTP" {
			t.Fatalf("message = %q", env.Message)
		}
	})
}
