package usecase

import (
	"context"

	"github.com/docuvault/docuvault/internal/identity/entity"
	"github.com/docuvault/docuvault/internal/pkg/clock"
	"github.com/docuvault/docuvault/internal/pkg/config"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
	"github.com/docuvault/docuvault/internal/pkg/hash"
	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"github.com/docuvault/docuvault/internal/pkg/jwt"
	"github.com/docuvault/docuvault/internal/pkg/otp"
	"github.com/docuvault/docuvault/internal/pkg/ratelimit"
	"github.com/docuvault/docuvault/internal/pkg/uid"
	"github.com/docuvault/docuvault/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoSMS interface {
	// Enabled reports whether a provider is configured.
	Enabled() bool
	// Send delivers the message to the mobile number.
	Send(ctx context.Context, to, body string) error
}

type repoDB interface {
	GetActiveChallenge(ctx context.Context, mobileNumber string) (*entity.Challenge, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserList(ctx context.Context, filter entity.UserListFilter) ([]entity.User, int64, error)

	ReplaceChallenge(ctx context.Context, in entity.NewChallenge) error
	IncrementChallengeAttempts(ctx context.Context, id int64) (int16, error)
	MarkChallengeVerified(ctx context.Context, id int64) error
	UpsertUserLogin(ctx context.Context, in entity.LoginUser) (*entity.User, error)
	CreateUser(ctx context.Context, in entity.NewUser) error

	DeleteChallenge(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	repoSMS   repoSMS
	validator validator.Validator
	cfg       config.Config
	limiter   ratelimit.Limiter
	hmac      hash.Hash
	uid       uid.NumberID
	otp       otp.Generator
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	RepoSMS    repoSMS
	Validator  validator.Validator
	Config     config.Config
	Limiter    ratelimit.Limiter
	HMAC       hash.Hash
	UID        uid.NumberID
	OTP        otp.Generator
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoSMS:   dep.RepoSMS,
		validator: dep.Validator,
		cfg:       dep.Config,
		limiter:   dep.Limiter,
		hmac:      dep.HMAC,
		uid:       dep.UID,
		otp:       dep.OTP,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}
