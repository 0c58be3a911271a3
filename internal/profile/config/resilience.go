package config

import "time"

// ResilienceConfig управляет повторами и circuit breaker вокруг сервиса профилей.
// По умолчанию выключено: один вызов сервиса на один запрос.
type ResilienceConfig struct {
	Enabled          bool          `yaml:"enabled" env:"PROFILE_RESILIENCE_ENABLED" env-default:"false"`
	MaxAttempts      int           `yaml:"max_attempts" env:"PROFILE_RESILIENCE_MAX_ATTEMPTS" env-default:"3"`
	InitialBackoff   time.Duration `yaml:"initial_backoff" env:"PROFILE_RESILIENCE_INITIAL_BACKOFF" env-default:"100ms"`
	MaxBackoff       time.Duration `yaml:"max_backoff" env:"PROFILE_RESILIENCE_MAX_BACKOFF" env-default:"1s"`
	ErrorThreshold   int           `yaml:"error_threshold" env:"PROFILE_RESILIENCE_ERROR_THRESHOLD" env-default:"5"`
	OpenTimeout      time.Duration `yaml:"open_timeout" env:"PROFILE_RESILIENCE_OPEN_TIMEOUT" env-default:"10s"`
	SuccessThreshold int           `yaml:"success_threshold" env:"PROFILE_RESILIENCE_SUCCESS_THRESHOLD" env-default:"2"`
}
