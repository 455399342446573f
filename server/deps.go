package server

import (
	"context"
	"fmt"

	"SecureEHealth/auth"
	"SecureEHealth/config"
	"SecureEHealth/config/db"
	"SecureEHealth/config/redis"
	"SecureEHealth/middleware"
	"SecureEHealth/services"
	"SecureEHealth/store"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deps is everything built once at startup and shared by handlers, jobs and migrations.
type Deps struct {
	Config   *config.Config
	Log      *logrus.Logger
	Database *mongo.Database
	Cache    redis.Cache
	Tokens   *auth.TokenService
	Services *services.Service
	Limiter  *middleware.RateLimiter

	mongoClient *mongo.Client
	redisClient *goredis.Client
}

/*
* The token secret and hashing cost are fixed here for the life of the process
* Mongo and Redis are only dialled when enabled
* Redis without an address falls back to no cache
 */
func Bootstrap(ctx context.Context, cfg *config.Config, log *logrus.Logger, withMongo, withCache bool) (*Deps, error) {
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}
	hasher := auth.NewPasswordHasher(auth.Params{
		Memory:      cfg.Argon2MemoryKB,
		Iterations:  cfg.Argon2Iterations,
		Parallelism: cfg.Argon2Parallelism,
	})

	deps := &Deps{
		Config:  cfg,
		Log:     log,
		Cache:   redis.Noop{},
		Tokens:  tokens,
		Limiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	if withMongo {
		client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB, log)
		if err != nil {
			return nil, err
		}
		deps.mongoClient = client
		deps.Database = database
	}

	if withCache && cfg.CacheEnabled() {
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			deps.Close(ctx)
			return nil, err
		}
		deps.redisClient = client
		deps.Cache = redis.NewCache(client)
	}

	var st services.Store
	if deps.Database != nil {
		st = store.NewMongo(deps.Database)
	}
	deps.Services = services.New(st, hasher, tokens,
		services.WithCache(deps.Cache, cfg.HospitalCacheTTL),
		services.WithLogger(log),
	)
	return deps, nil
}

func (d *Deps) Close(ctx context.Context) {
	if d.redisClient != nil {
		if err := d.redisClient.Close(); err != nil {
			d.Log.WithError(err).Warn("redis close failed")
		}
	}
	if d.mongoClient != nil {
		if err := d.mongoClient.Disconnect(ctx); err != nil {
			d.Log.WithError(err).Warn("mongo disconnect failed")
		}
	}
}
