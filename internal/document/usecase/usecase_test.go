package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/docuvault/docuvault/internal/document/entity"
	"github.com/docuvault/docuvault/internal/pkg/config"
	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"github.com/docuvault/docuvault/internal/pkg/jwt"
	"github.com/docuvault/docuvault/internal/pkg/storage"
	"github.com/docuvault/docuvault/internal/pkg/validator"
)

var errUnexpectedCall = errors.New("unexpected repository call")

type fakeRepoDB struct {
	getDocumentList       func(ctx context.Context, filter entity.DocumentListFilter) ([]entity.Document, int64, error)
	getDocumentByID       func(ctx context.Context, id int64) (*entity.Document, error)
	createDocument        func(ctx context.Context, in entity.NewDocument) error
	setDocumentAttachment func(ctx context.Context, id int64, key string) error
}

func (f *fakeRepoDB) GetDocumentList(ctx context.Context, filter entity.DocumentListFilter) ([]entity.Document, int64, error) {
	if f.getDocumentList == nil {
		return nil, 0, errUnexpectedCall
	}
	return f.getDocumentList(ctx, filter)
}

func (f *fakeRepoDB) GetDocumentByID(ctx context.Context, id int64) (*entity.Document, error) {
	if f.getDocumentByID == nil {
		return nil, errUnexpectedCall
	}
	return f.getDocumentByID(ctx, id)
}

func (f *fakeRepoDB) CreateDocument(ctx context.Context, in entity.NewDocument) error {
	if f.createDocument == nil {
		return errUnexpectedCall
	}
	return f.createDocument(ctx, in)
}

func (f *fakeRepoDB) SetDocumentAttachment(ctx context.Context, id int64, key string) error {
	if f.setDocumentAttachment == nil {
		return errUnexpectedCall
	}
	return f.setDocumentAttachment(ctx, id, key)
}

type fakeStorage struct {
	putObject    func(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error)
	deleteObject func(ctx context.Context, bucket, key string) error
	presignGet   func(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

func (f *fakeStorage) PutObject(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.ObjectInfo, error) {
	if f.putObject == nil {
		return storage.ObjectInfo{}, errUnexpectedCall
	}
	return f.putObject(ctx, bucket, key, r, opts)
}

func (f *fakeStorage) DeleteObject(ctx context.Context, bucket, key string) error {
	if f.deleteObject == nil {
		return errUnexpectedCall
	}
	return f.deleteObject(ctx, bucket, key)
}

func (f *fakeStorage) PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if f.presignGet == nil {
		return "", errUnexpectedCall
	}
	return f.presignGet(ctx, bucket, key, expiry)
}

func (f *fakeStorage) Close() error { return nil }

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type staticUID struct{ id int64 }

func (g staticUID) Generate() int64 { return g.id }

type staticUUID struct{ val string }

func (g staticUUID) Generate() string { return g.val }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	repo    *fakeRepoDB
	storage *fakeStorage
	uc      *Usecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  document:
    attachment_bucket: test-bucket
    attachment_url_ttl_minutes: 15
    attachment_max_size_bytes: 64
`))
	if err != nil {
		t.Fatalf("new config: %v", err)
	}

	repo := &fakeRepoDB{}
	stg := &fakeStorage{}

	uc := New(Dependency{
		RepoDB:     repo,
		Validator:  v,
		Config:     cfg,
		Storage:    stg,
		UID:        staticUID{id: 77},
		UUID:       staticUUID{val: "fixed-uuid"},
		Clock:      fixedClock{now: testNow},
		Instrument: instrument.NewNoop(),
	})

	return &fixture{repo: repo, storage: stg, uc: uc}
}

func authedContext() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		UserID:       42,
		MobileNumber: "+15550000042",
		Role:         "user",
	})
}
