package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/docuvault/docuvault/internal/identity/entity"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
)

type OTPGenerateInput struct {
	MobileNumber string `validate:"required,mobile_number"`
	// ClientIP is the limiter fallback key when the number is absent.
	ClientIP string `validate:"-"`
}

type OTPGenerateOutput struct {
	Message   string
	OTP       string
	Delivery  entity.DeliveryMode
	ExpiresIn int64
}

func (s *Usecase) OTPGenerate(ctx context.Context, in OTPGenerateInput) (*OTPGenerateOutput, error) {
	ctx, span := s.startSpan(ctx, "OTPGenerate")
	defer span.End()

	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	key := in.MobileNumber
	if key == "" {
		key = in.ClientIP
	}

	res, err := s.limiter.Allow(ctx, key)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check otp rate limit", "error", err)
		return nil, goerror.NewServer(err)
	}
	if !res.Allowed {
		slog.WarnContext(ctx, "otp issuance rate limited", "mobile_number", in.MobileNumber)
		return nil, goerror.NewBusiness("Too many OTP requests. Please try again later.", goerror.CodeTooManyRequest)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	codeHash, err := s.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")

	if err := s.repoDB.ReplaceChallenge(ctx, entity.NewChallenge{
		ID:           s.uid.Generate(),
		MobileNumber: in.MobileNumber,
		CodeHash:     string(codeHash),
		ExpiresAt:    s.clock.Now().Add(ttl),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo replace challenge", "mobile_number", in.MobileNumber, "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &OTPGenerateOutput{
		Message:   "OTP generated (dev mode)",
		OTP:       code,
		Delivery:  entity.DeliveryFallback,
		ExpiresIn: int64(ttl.Seconds()),
	}

	if s.repoSMS.Enabled() {
		if err := s.repoSMS.Send(ctx, in.MobileNumber, "Your verification code is "+code); err != nil {
			slog.WarnContext(ctx, "sms provider failed, disclosing code in response", "error", err)
		} else {
			out.Message = "OTP sent successfully"
			out.OTP = ""
			out.Delivery = entity.DeliverySent
		}
	}

	return out, nil
}
