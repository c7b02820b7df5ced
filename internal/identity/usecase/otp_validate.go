package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/docuvault/docuvault/internal/identity/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

const maxChallengeAttempts = 3

type OTPValidateInput struct {
	MobileNumber string `validate:"required,mobile_number"`
	OTP          string `validate:"required,otp_code"`
}

type OTPValidateOutput struct {
	Message string
	Token   string
	User    entity.User
}

func (s *Usecase) OTPValidate(ctx context.Context, in OTPValidateInput) (*OTPValidateOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPValidate")
	defer span.End()

	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	ch, err := s.repoDB.GetActiveChallenge(ctx, in.MobileNumber)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "no live challenge for number", "mobile_number", in.MobileNumber)
		return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get challenge", "mobile_number", in.MobileNumber, "error", err)
		return nil, goerror.NewServer(err)
	}

	if ch.Verified || s.clock.Now().After(ch.ExpiresAt) {
		return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	if ch.Attempts >= maxChallengeAttempts {
		if err := s.repoDB.DeleteChallenge(ctx, ch.ID); err != nil {
			slog.ErrorContext(ctx, "failed to repo delete locked challenge", "challenge_id", ch.ID, "error", err)
			return nil, goerror.NewServer(err)
		}
		return nil, goerror.NewBusiness("Too many failed attempts. Please request a new OTP.", goerror.CodeInvalidInput)
	}

	if !s.hmac.Verify(ch.CodeHash, in.OTP) {
		attempts, err := s.repoDB.IncrementChallengeAttempts(ctx, ch.ID)
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo increment attempts", "challenge_id", ch.ID, "error", err)
			return nil, goerror.NewServer(err)
		}

		return nil, goerror.NewBusinessDetails("Invalid OTP", goerror.CodeInvalidInput, map[string]any{
			"attempts_remaining": maxChallengeAttempts - attempts,
		})
	}

	// Guarded flip: loses to a concurrent verify, lockout, or expiry.
	if err := s.repoDB.MarkChallengeVerified(ctx, ch.ID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
		}
		slog.ErrorContext(ctx, "failed to repo mark challenge verified", "challenge_id", ch.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	user, err := s.repoDB.UpsertUserLogin(ctx, entity.LoginUser{
		ID:           s.uid.Generate(),
		MobileNumber: in.MobileNumber,
		Name:         placeholderName(in.MobileNumber),
		LoginAt:      s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert login user", "mobile_number", in.MobileNumber, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(user.ID, user.MobileNumber, user.Role)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &OTPValidateOutput{
		Message: "OTP verified successfully",
		Token:   token,
		User:    *user,
	}, nil
}

func placeholderName(mobileNumber string) string {
	last4 := mobileNumber
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return "User " + last4
}
