// Package config содержит конфигурацию сервиса профилей.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "profilefetch/pkg/config"
	"profilefetch/pkg/logger"
)

// Константы ошибок и сообщений для конфигурации.
const (
	ServiceName = "profile"

	EnvConfigPath = "PROFILE_CONFIG_PATH"

	LogConfigLoaded     = "profile service configuration"
	ErrFailedLoadConfig = "failed to load profile configuration"
	ErrInvalidConfig    = "invalid profile configuration"
)

// Config представляет полную конфигурацию сервиса профилей.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Endpoint   EndpointConfig   `yaml:"endpoint"`
	Resilience ResilienceConfig `yaml:"resilience"`
	Cache      CacheConfig      `yaml:"cache"`
	Redis      RedisConfig      `yaml:"redis"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	JWT        JWTConfig        `yaml:"jwt"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
}

// Load загружает конфигурацию из файла path (если он существует) и переменных окружения.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrInvalidConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("endpoint_transport", cfg.Endpoint.Transport),
		zap.String("endpoint_address", cfg.Endpoint.Address()),
		zap.Bool("resilience_enabled", cfg.Resilience.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Duration("shutdown_timeout", cfg.Shutdown.Timeout))

	return cfg, nil
}

// Validate проверяет значения перечислимых параметров.
func (c *Config) Validate() error {
	if err := c.Endpoint.Validate(); err != nil {
		return err
	}
	return c.Cache.Validate()
}
