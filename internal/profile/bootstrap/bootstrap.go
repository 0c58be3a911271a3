// Package bootstrap собирает компоненты сервиса профилей по конфигурации.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	profilecache "profilefetch/internal/profile/adapters/cache"
	profilegrpc "profilefetch/internal/profile/adapters/grpc"
	"profilefetch/internal/profile/adapters/rest"
	"profilefetch/internal/profile/adapters/services"
	"profilefetch/internal/profile/config"
	"profilefetch/internal/profile/ports/cache"
	"profilefetch/internal/profile/ports/endpoint"
	svc "profilefetch/internal/profile/ports/services"
	"profilefetch/internal/profile/resilience"
	"profilefetch/pkg/db/postgres"
	"profilefetch/pkg/db/redis"
	"profilefetch/pkg/logger"
	"profilefetch/pkg/shutdown"
)

// Константы для логирования.
const (
	LogInitEndpoint      = "initializing profile endpoint"
	LogInitCache         = "initializing profile cache"
	LogResilienceEnabled = "resilience enabled for profile endpoint"

	ErrCreateEndpoint    = "failed to create profile endpoint"
	ErrCreateRedisClient = "failed to create Redis client"
	ErrCreatePostgres    = "failed to connect to PostgreSQL"
	ErrApplyMigrations   = "failed to apply profile cache migrations"
)

// NewTokenService создает выпуск токенов для вызовов сервиса профилей.
func NewTokenService(cfg *config.Config) svc.TokenService {
	return services.NewJWT(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TokenTTL)
}

// NewEndpoint создает клиент сервиса профилей для выбранного транспорта.
// Возвращаемый hook освобождает ресурсы клиента при завершении.
func NewEndpoint(ctx context.Context, cfg *config.Config) (endpoint.ProfileEndpoint, shutdown.Hook, error) {
	log := logger.Log(ctx).With(
		zap.String("transport", cfg.Endpoint.Transport),
		zap.String("address", cfg.Endpoint.Address()),
	)
	log.Info(ctx, LogInitEndpoint)

	tokens := NewTokenService(cfg)

	var (
		profileEndpoint endpoint.ProfileEndpoint
		closeHook       shutdown.Hook = func(context.Context) error { return nil }
	)

	switch cfg.Endpoint.Transport {
	case config.TransportGRPC:
		client, err := profilegrpc.NewProfileEndpoint(cfg.Endpoint.GRPCAddress(), tokens)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrCreateEndpoint, err)
		}
		profileEndpoint = client
		closeHook = func(context.Context) error { return client.Close() }
	case config.TransportREST:
		profileEndpoint = rest.NewProfileEndpoint(cfg.Endpoint.BaseURL, cfg.Endpoint.RequestTimeout, tokens)
	default:
		return nil, nil, fmt.Errorf("%s: %w: %q", ErrCreateEndpoint, config.ErrUnknownTransport, cfg.Endpoint.Transport)
	}

	if cfg.Resilience.Enabled {
		log.Info(ctx, LogResilienceEnabled,
			zap.Int("max_attempts", cfg.Resilience.MaxAttempts),
			zap.Int("error_threshold", cfg.Resilience.ErrorThreshold))
		profileEndpoint = resilience.NewEndpoint(profileEndpoint, config.ServiceName, cfg.Resilience)
	}

	return profileEndpoint, closeHook, nil
}

// ReadinessCheck проверяет доступность хранилища кэша.
type ReadinessCheck = func(ctx context.Context) error

// NewCache создает кэш профилей для выбранного хранилища.
// Вместе с кэшем возвращается проверка готовности хранилища; для памяти она nil.
func NewCache(ctx context.Context, cfg *config.Config) (cache.ProfileCache, ReadinessCheck, error) {
	logger.Log(ctx).Info(ctx, LogInitCache, zap.String("backend", cfg.Cache.Backend))

	switch cfg.Cache.Backend {
	case config.CacheMemory:
		return profilecache.NewMemoryCache(), nil, nil
	case config.CacheRedis:
		client, err := redis.NewClient(ctx, redisConfig(&cfg.Redis))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrCreateRedisClient, err)
		}
		ready := func(ctx context.Context) error { return client.Ping(ctx).Err() }
		return profilecache.NewRedisCache(client, cfg.Redis.DefaultTTL), ready, nil
	case config.CachePostgres:
		pgCfg := postgresConfig(&cfg.Postgres)
		if err := postgres.Migrate(ctx, pgCfg, cfg.Postgres.MigrationsPath); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrApplyMigrations, err)
		}
		db, err := postgres.New(ctx, pgCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", ErrCreatePostgres, err)
		}
		return profilecache.NewPostgresCache(db.Pool(), func() { db.Close(ctx) }), db.Ping, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownCacheBackend, cfg.Cache.Backend)
	}
}

func redisConfig(cfg *config.RedisConfig) redis.Config {
	return redis.Config{
		Addr:            cfg.GetAddressString(),
		Password:        cfg.Password,
		DB:              cfg.DB,
		PoolSize:        cfg.PoolSize,
		MinIdleConns:    cfg.MinIdle,
		DialTimeout:     cfg.ConnectTimeout,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ConnMaxIdleTime: cfg.IdleTimeout,
		ConnMaxLifetime: cfg.MaxConnLifetime,
	}
}

func postgresConfig(cfg *config.PostgresConfig) postgres.Config {
	return postgres.Config{
		Host:           cfg.Host,
		Port:           cfg.Port,
		User:           cfg.User,
		Password:       cfg.Password,
		Database:       cfg.Database,
		SSLMode:        cfg.SSLMode,
		MinConns:       cfg.MinConn,
		MaxConns:       cfg.MaxConn,
		ConnectTimeout: cfg.ConnectTimeout,
	}
}
