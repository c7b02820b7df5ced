package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docuvault/docuvault/internal/identity/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

func TestOTPGenerate(t *testing.T) {

	t.Run("FallbackDisclosesCode", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		var stored entity.NewChallenge
		f.repo.replaceChallenge = func(_ context.Context, in entity.NewChallenge) error {
			stored = in
			return nil
		}

		// Act
		out, err := f.uc.OTPGenerate(context.Background(), OTPGenerateInput{MobileNumber: "+15551230001"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "OTP generated (dev mode)" {
			t.Fatalf("message = %q", out.Message)
		}
		if out.OTP != "123456" {
			t.Fatalf("otp = %q, want the generated code", out.OTP)
		}
		if out.Delivery != entity.DeliveryFallback {
			t.Fatalf("delivery = %v, want fallback", out.Delivery)
		}
		if out.ExpiresIn != 300 {
			t.Fatalf("expires_in = %d, want 300", out.ExpiresIn)
		}
		if stored.MobileNumber != "+15551230001" {
			t.Fatalf("stored number = %q", stored.MobileNumber)
		}
		if !f.uc.hmac.Verify(stored.CodeHash, "123456") {
			t.Fatal("stored hash does not match the code")
		}
		if got, want := stored.ExpiresAt, testNow.Add(5*time.Minute); !got.Equal(want) {
			t.Fatalf("expires_at = %v, want %v", got, want)
		}
	})

	t.Run("SMSDeliveryHidesCode", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.sms.enabled = true
		f.repo.replaceChallenge = func(context.Context, entity.NewChallenge) error { return nil }

		// Act
		out, err := f.uc.OTPGenerate(context.Background(), OTPGenerateInput{MobileNumber: "+15551230002"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "OTP sent successfully" {
			t.Fatalf("message = %q", out.Message)
		}
		if out.OTP != "" {
			t.Fatal("code must not be disclosed when SMS delivery succeeds")
		}
		if out.Delivery != entity.DeliverySent {
			t.Fatalf("delivery = %v, want sent", out.Delivery)
		}
		if len(f.sms.sent) != 1 || f.sms.sent[0] != "Your verification code is 123456" {
			t.Fatalf("sms body = %v", f.sms.sent)
		}
	})

	t.Run("SMSFailureFallsBack", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.sms.enabled = true
		f.sms.send = func(context.Context, string, string) error { return errors.New("provider down") }
		f.repo.replaceChallenge = func(context.Context, entity.NewChallenge) error { return nil }

		// Act
		out, err := f.uc.OTPGenerate(context.Background(), OTPGenerateInput{MobileNumber: "+15551230003"})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.OTP != "123456" || out.Delivery != entity.DeliveryFallback {
			t.Fatalf("expected fallback disclosure, got %+v", out)
		}
	})

	t.Run("InvalidNumber", func(t *testing.T) {

		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.OTPGenerate(context.Background(), OTPGenerateInput{MobileNumber: "abc"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Type() != goerror.TypeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("RateLimitedOnFourthRequest", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		f.repo.replaceChallenge = func(context.Context, entity.NewChallenge) error { return nil }
		in := OTPGenerateInput{MobileNumber: "+15551230004"}

		// Act
		var err error
		for range 3 {
			if _, err = f.uc.OTPGenerate(context.Background(), in); err != nil {
				t.Fatalf("unexpected error before the limit: %v", err)
			}
		}
		_, err = f.uc.OTPGenerate(context.Background(), in)

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeTooManyRequest {
			t.Fatalf("expected rate limit error, got %v", err)
		}
		if gerr.Msg() != "Too many OTP requests. Please try again later." {
			t.Fatalf("message = %q", gerr.Msg())
		}
	})

	t.Run("SupersedesPreviousChallenge", func(t *testing.T) {

		// Arrange
		f := newFixture(t)
		calls := 0
		f.repo.replaceChallenge = func(context.Context, entity.NewChallenge) error {
			calls++
			return nil
		}

		// Act
		for range 2 {
			if _, err := f.uc.OTPGenerate(context.Background(), OTPGenerateInput{MobileNumber: "+15551230005"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		// Assert
		if calls != 2 {
			t.Fatalf("replace calls = %d, want 2", calls)
		}
	})
}
