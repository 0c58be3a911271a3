package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Хранилища кэша профилей.
const (
	CacheMemory   = "memory"
	CacheRedis    = "redis"
	CachePostgres = "postgres"
)

// ErrUnknownCacheBackend возвращается для неподдерживаемого хранилища кэша.
var ErrUnknownCacheBackend = errors.New("unknown cache backend")

// CacheConfig выбирает хранилище кэша профилей.
type CacheConfig struct {
	Backend string `yaml:"backend" env:"PROFILE_CACHE_BACKEND" env-default:"memory"`
}

// Validate проверяет хранилище.
func (c *CacheConfig) Validate() error {
	switch c.Backend {
	case CacheMemory, CacheRedis, CachePostgres:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCacheBackend, c.Backend)
	}
}

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host            string        `yaml:"host" env:"PROFILE_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"PROFILE_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"PROFILE_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"PROFILE_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"PROFILE_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"PROFILE_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"PROFILE_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"PROFILE_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"PROFILE_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"PROFILE_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"PROFILE_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	DefaultTTL      time.Duration `yaml:"default_ttl" env:"PROFILE_REDIS_DEFAULT_TTL" env-default:"15m"`
}

// GetAddressString возвращает адрес Redis строкой.
func (c *RedisConfig) GetAddressString() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host           string        `yaml:"host" env:"PROFILE_POSTGRES_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"PROFILE_POSTGRES_PORT" env-default:"5432"`
	User           string        `yaml:"user" env:"PROFILE_POSTGRES_USER" env-default:"postgres"`
	Password       string        `yaml:"password" env:"PROFILE_POSTGRES_PASSWORD" env-default:"postgres"`
	Database       string        `yaml:"database" env:"PROFILE_POSTGRES_DB" env-default:"profiles"`
	SSLMode        string        `yaml:"ssl_mode" env:"PROFILE_POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"PROFILE_POSTGRES_CONNECT_TIMEOUT" env-default:"5s"`
	MinConn        int32         `yaml:"min_conn" env:"PROFILE_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn        int32         `yaml:"max_conn" env:"PROFILE_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsPath string        `yaml:"migrations_path" env:"PROFILE_POSTGRES_MIGRATIONS_PATH" env-default:"file://migrations/profiles"`
}
