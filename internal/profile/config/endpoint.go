package config

import (
	"errors"
	"fmt"
	"time"
)

// Транспорты сервиса профилей.
const (
	TransportREST = "rest"
	TransportGRPC = "grpc"
)

// ErrUnknownTransport возвращается для неподдерживаемого транспорта.
var ErrUnknownTransport = errors.New("unknown endpoint transport")

// EndpointConfig описывает подключение к удаленному сервису профилей.
type EndpointConfig struct {
	Transport      string        `yaml:"transport" env:"PROFILE_ENDPOINT_TRANSPORT" env-default:"rest"`
	BaseURL        string        `yaml:"base_url" env:"PROFILE_ENDPOINT_BASE_URL" env-default:"http://localhost:8081"`
	GRPCHost       string        `yaml:"grpc_host" env:"PROFILE_ENDPOINT_GRPC_HOST" env-default:"localhost"`
	GRPCPort       int           `yaml:"grpc_port" env:"PROFILE_ENDPOINT_GRPC_PORT" env-default:"50051"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"PROFILE_ENDPOINT_REQUEST_TIMEOUT" env-default:"5s"`
}

// GRPCAddress возвращает адрес gRPC сервиса в формате host:port.
func (c *EndpointConfig) GRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.GRPCHost, c.GRPCPort)
}

// Address возвращает адрес для выбранного транспорта.
func (c *EndpointConfig) Address() string {
	if c.Transport == TransportGRPC {
		return c.GRPCAddress()
	}
	return c.BaseURL
}

// Validate проверяет транспорт.
func (c *EndpointConfig) Validate() error {
	switch c.Transport {
	case TransportREST, TransportGRPC:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.Transport)
	}
}
