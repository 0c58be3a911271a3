package config

import (
	"fmt"
	"time"

	"profilefetch/pkg/logger"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"PROFILE_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"PROFILE_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"PROFILE_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"PROFILE_HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig содержит настройки токенов для межсервисных вызовов.
type JWTConfig struct {
	SecretKey string        `yaml:"secret_key" env:"PROFILE_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	Issuer    string        `yaml:"issuer" env:"PROFILE_JWT_ISSUER" env-default:"profile-service"`
	Audience  string        `yaml:"audience" env:"PROFILE_JWT_AUDIENCE" env-default:"user-profile-service"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"PROFILE_JWT_TOKEN_TTL" env-default:"5m"`
}

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"PROFILE_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"PROFILE_LOGGER_MODE" env-default:"production"`
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == "development" {
		return logger.Development
	}
	return logger.Production
}

// ShutdownConfig представляет конфигурацию для корректного завершения работы.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"PROFILE_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5s"`
}
