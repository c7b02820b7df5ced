package ratelimit

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const (
	// StoreMemory keeps counters in process memory.
	StoreMemory = "memory"
	// StoreRedis keeps counters in Redis so limits hold across instances.
	StoreRedis = "redis"
)

// ErrUnknownStore indicates an unsupported limiter store.
var ErrUnknownStore = errors.New("ratelimit: unknown store")

// ErrMissingRedisClient indicates the redis store was selected without a client.
var ErrMissingRedisClient = errors.New("ratelimit: redis store requires a client")

// Options groups configuration for building a limiter.
type Options struct {
	// Store selects the backing store, memory or redis.
	Store string
	// Limit is the maximum number of hits per period.
	Limit int64
	// Period is the window duration.
	Period time.Duration
	// Prefix namespaces keys in shared stores.
	Prefix string
	// Redis is the client used by the redis store.
	Redis *redis.Client
}

// Ulule implements Limiter on top of ulule/limiter.
type Ulule struct {
	instance *limiter.Limiter
}

// New constructs a Ulule limiter with the selected store.
func New(opts Options) (*Ulule, error) {
	if opts.Limit <= 0 {
		opts.Limit = 3
	}

	if opts.Period <= 0 {
		opts.Period = time.Minute
	}

	rate := limiter.Rate{Period: opts.Period, Limit: opts.Limit}

	var (
		store limiter.Store
		err   error
	)

	switch strings.ToLower(opts.Store) {
	case StoreMemory, "":
		store = memory.NewStore()
	case StoreRedis:
		if opts.Redis == nil {
			return nil, ErrMissingRedisClient
		}

		store, err = sredis.NewStoreWithOptions(opts.Redis, limiter.StoreOptions{
			Prefix: opts.Prefix,
		})
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownStore
	}

	return &Ulule{instance: limiter.New(store, rate)}, nil
}

// Allow records a hit for the key and reports whether it is within limits.
func (u *Ulule) Allow(ctx context.Context, key string) (Result, error) {
	lctx, err := u.instance.Get(ctx, key)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Allowed:   !lctx.Reached,
		Limit:     lctx.Limit,
		Remaining: lctx.Remaining,
		Reset:     time.Unix(lctx.Reset, 0),
	}, nil
}
