package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/docuvault/docuvault/internal/identity/inbound"
	"github.com/docuvault/docuvault/internal/identity/outbound/db"
	"github.com/docuvault/docuvault/internal/identity/outbound/sms"
	"github.com/docuvault/docuvault/internal/identity/usecase"
	"github.com/docuvault/docuvault/internal/pkg/clock"
	"github.com/docuvault/docuvault/internal/pkg/config"
	"github.com/docuvault/docuvault/internal/pkg/hash"
	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"github.com/docuvault/docuvault/internal/pkg/jwt"
	"github.com/docuvault/docuvault/internal/pkg/otp"
	"github.com/docuvault/docuvault/internal/pkg/ratelimit"
	"github.com/docuvault/docuvault/internal/pkg/router"
	"github.com/docuvault/docuvault/internal/pkg/uid"
	"github.com/docuvault/docuvault/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Limiter    ratelimit.Limiter          `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoSMS := sms.NewTwilio(sms.Options{
		AccountSID: dep.Config.GetString("sms.twilio.account_sid"),
		AuthToken:  dep.Config.GetString("sms.twilio.auth_token"),
		FromNumber: dep.Config.GetString("sms.twilio.from_number"),
	}, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAuth,
		RepoSMS:    repoSMS,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Limiter:    dep.Limiter,
		HMAC:       dep.HMAC,
		UID:        dep.UID,
		OTP:        dep.OTP,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
