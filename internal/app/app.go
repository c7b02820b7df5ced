package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/docuvault/docuvault/internal/pkg/clock"
	"github.com/docuvault/docuvault/internal/pkg/config"
	"github.com/docuvault/docuvault/internal/pkg/hash"
	"github.com/docuvault/docuvault/internal/pkg/instrument"
	"github.com/docuvault/docuvault/internal/pkg/jwt"
	"github.com/docuvault/docuvault/internal/pkg/otp"
	"github.com/docuvault/docuvault/internal/pkg/ratelimit"
	"github.com/docuvault/docuvault/internal/pkg/router"
	"github.com/docuvault/docuvault/internal/pkg/storage"
	"github.com/docuvault/docuvault/internal/pkg/uid"
	"github.com/docuvault/docuvault/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT
	limiter   ratelimit.Limiter

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	storage   storage.Storage

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initMigrate()
	app.initCache()
	app.initRateLimit()
	app.initStorage()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
