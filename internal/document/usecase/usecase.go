package usecase

import (
	"context"

	"github.com/docuvault/docuvault/internal/document/entity"
	"github.com/docuvault/docuvault/internal/pkg/clock"
	"github.com/docuvault/docuvault/internal/pkg/config"
	"github.com/docuvault/docuvault/internal/pkg/goerror"
	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"github.com/docuvault/docuvault/internal/pkg/jwt"
	"github.com/docuvault/docuvault/internal/pkg/storage"
	"github.com/docuvault/docuvault/internal/pkg/uid"
	"github.com/docuvault/docuvault/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetDocumentList(ctx context.Context, filter entity.DocumentListFilter) ([]entity.Document, int64, error)
	GetDocumentByID(ctx context.Context, id int64) (*entity.Document, error)

	CreateDocument(ctx context.Context, in entity.NewDocument) error
	SetDocumentAttachment(ctx context.Context, id int64, key string) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	storage   storage.Storage
	uid       uid.NumberID
	uuid      uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Storage    storage.Storage
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		storage:   dep.Storage,
		uid:       dep.UID,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("document.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}
