package document

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/docuvault/docuvault/internal/document/inbound"
	"github.com/docuvault/docuvault/internal/document/outbound/db"
	"github.com/docuvault/docuvault/internal/document/usecase"
	"github.com/docuvault/docuvault/internal/pkg/clock"
	"github.com/docuvault/docuvault/internal/pkg/config"
	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"github.com/docuvault/docuvault/internal/pkg/router"
	"github.com/docuvault/docuvault/internal/pkg/storage"
	"github.com/docuvault/docuvault/internal/pkg/uid"
	"github.com/docuvault/docuvault/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbDoc := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbDoc,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Storage:    dep.Storage,
		UID:        dep.UID,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
