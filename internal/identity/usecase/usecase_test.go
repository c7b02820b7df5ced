package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docuvault/docuvault/internal/identity/entity"
	"github.com/docuvault/docuvault/internal/pkg/config"
	"github.com/docuvault/docuvault/internal/pkg/hash"
	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"github.com/docuvault/docuvault/internal/pkg/jwt"
	"github.com/docuvault/docuvault/internal/pkg/ratelimit"
	"github.com/docuvault/docuvault/internal/pkg/uid"
	"github.com/docuvault/docuvault/internal/pkg/validator"
)

var errUnexpectedCall = errors.New("unexpected repository call")

type fakeRepoDB struct {
	getActiveChallenge         func(ctx context.Context, mobileNumber string) (*entity.Challenge, error)
	getUserByID                func(ctx context.Context, id int64) (*entity.User, error)
	getUserList                func(ctx context.Context, filter entity.UserListFilter) ([]entity.User, int64, error)
	replaceChallenge           func(ctx context.Context, in entity.NewChallenge) error
	incrementChallengeAttempts func(ctx context.Context, id int64) (int16, error)
	markChallengeVerified      func(ctx context.Context, id int64) error
	upsertUserLogin            func(ctx context.Context, in entity.LoginUser) (*entity.User, error)
	createUser                 func(ctx context.Context, in entity.NewUser) error
	deleteChallenge            func(ctx context.Context, id int64) error
}

func (f *fakeRepoDB) GetActiveChallenge(ctx context.Context, mobileNumber string) (*entity.Challenge, error) {
	if f.getActiveChallenge == nil {
		return nil, errUnexpectedCall
	}
	return f.getActiveChallenge(ctx, mobileNumber)
}

func (f *fakeRepoDB) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	if f.getUserByID == nil {
		return nil, errUnexpectedCall
	}
	return f.getUserByID(ctx, id)
}

func (f *fakeRepoDB) GetUserList(ctx context.Context, filter entity.UserListFilter) ([]entity.User, int64, error) {
	if f.getUserList == nil {
		return nil, 0, errUnexpectedCall
	}
	return f.getUserList(ctx, filter)
}

func (f *fakeRepoDB) ReplaceChallenge(ctx context.Context, in entity.NewChallenge) error {
	if f.replaceChallenge == nil {
		return errUnexpectedCall
	}
	return f.replaceChallenge(ctx, in)
}

func (f *fakeRepoDB) IncrementChallengeAttempts(ctx context.Context, id int64) (int16, error) {
	if f.incrementChallengeAttempts == nil {
		return 0, errUnexpectedCall
	}
	return f.incrementChallengeAttempts(ctx, id)
}

func (f *fakeRepoDB) MarkChallengeVerified(ctx context.Context, id int64) error {
	if f.markChallengeVerified == nil {
		return errUnexpectedCall
	}
	return f.markChallengeVerified(ctx, id)
}

func (f *fakeRepoDB) UpsertUserLogin(ctx context.Context, in entity.LoginUser) (*entity.User, error) {
	if f.upsertUserLogin == nil {
		return nil, errUnexpectedCall
	}
	return f.upsertUserLogin(ctx, in)
}

func (f *fakeRepoDB) CreateUser(ctx context.Context, in entity.NewUser) error {
	if f.createUser == nil {
		return errUnexpectedCall
	}
	return f.createUser(ctx, in)
}

func (f *fakeRepoDB) DeleteChallenge(ctx context.Context, id int64) error {
	if f.deleteChallenge == nil {
		return errUnexpectedCall
	}
	return f.deleteChallenge(ctx, id)
}

type fakeSMS struct {
	enabled bool
	send    func(ctx context.Context, to, body string) error
	sent    []string
}

func (f *fakeSMS) Enabled() bool { return f.enabled }

func (f *fakeSMS) Send(ctx context.Context, to, body string) error {
	f.sent = append(f.sent, body)
	if f.send == nil {
		return nil
	}
	return f.send(ctx, to, body)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type staticOTP struct{ code string }

func (g staticOTP) Generate() (string, error) { return g.code, nil }

type staticUID struct{ id int64 }

func (g staticUID) Generate() int64 { return g.id }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const testJWTSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type fixture struct {
	repo *fakeRepoDB
	sms  *fakeSMS
	hmac hash.Hash
	uc   *Usecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  identity:
    otp_ttl_minutes: 5
`))
	if err != nil {
		t.Fatalf("new config: %v", err)
	}

	limiter, err := ratelimit.New(ratelimit.Options{
		Store:  ratelimit.StoreMemory,
		Limit:  3,
		Period: time.Minute,
		Prefix: "test",
	})
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}

	clk := fixedClock{now: testNow}

	tokenizer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(testJWTSecret),
		Issuer:    "test",
		Audiences: []string{"test"},
		TTL:       time.Hour,
		Clock:     clk,
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("new jwt: %v", err)
	}

	repo := &fakeRepoDB{}
	sms := &fakeSMS{}
	hmac := hash.NewHMACSHA256("test-hmac-secret")

	uc := New(Dependency{
		RepoDB:     repo,
		RepoSMS:    sms,
		Validator:  v,
		Config:     cfg,
		Limiter:    limiter,
		HMAC:       hmac,
		UID:        staticUID{id: 42},
		OTP:        staticOTP{code: "123456"},
		Clock:      clk,
		JWT:        tokenizer,
		Instrument: instrument.NewNoop(),
	})

	return &fixture{repo: repo, sms: sms, hmac: hmac, uc: uc}
}

func (f *fixture) hashCode(t *testing.T, code string) string {
	t.Helper()

	h, err := f.hmac.Hash(code)
	if err != nil {
		t.Fatalf("hash code: %v", err)
	}

	return string(h)
}
