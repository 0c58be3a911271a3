// Package main реализует HTTP сервис получения и кэширования профилей.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	profilehttp "profilefetch/internal/profile/adapters/http"
	"profilefetch/internal/profile/app"
	"profilefetch/internal/profile/bootstrap"
	"profilefetch/internal/profile/config"
	"profilefetch/internal/profile/ports/cache"
	"profilefetch/pkg/logger"
	"profilefetch/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "PROFILE_LOGGER_MODE"
	EnvLoggerLevel = "PROFILE_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrCreateEndpoint       = "failed to create profile endpoint"
	ErrCreateCache          = "failed to create profile cache"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrCloseEndpoint        = "failed to close profile endpoint"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "profile gateway started"
	LogServiceShutdownDone = "profile gateway shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingEndpoint     = "closing profile endpoint"
	LogClosingCache        = "closing profile cache"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx, os.Getenv(config.EnvConfigPath))
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		profileEndpoint, closeEndpoint, err := bootstrap.NewEndpoint(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrCreateEndpoint, zap.Error(err))
			exitCode = 1
			return
		}

		profileCache, cacheReady, err := bootstrap.NewCache(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrCreateCache, zap.Error(err))
			if closeErr := closeEndpoint(ctx); closeErr != nil {
				log.Warn(ctx, ErrCloseEndpoint, zap.Error(closeErr))
			}
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitUseCases)
		fetchProfile := app.NewFetchProfileUseCase(profileEndpoint, profileCache)

		log.Info(ctx, LogInitHTTPServer)
		server := fiber.New(fiber.Config{
			AppName:      config.ServiceName,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})
		profilehttp.SetupRouter(server, profilehttp.NewHandler(fetchProfile, profileCache, cacheReady))

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.Timeout,
			shutdownHooks(log, server.ShutdownWithContext, closeEndpoint, profileCache)...)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// shutdownHooks задает порядок остановки: сначала HTTP сервер дожидается текущих запросов,
// затем закрываются клиент сервиса профилей и кэш, которыми эти запросы пользуются.
func shutdownHooks(
	log *logger.Logger,
	stopServer shutdown.Hook,
	closeEndpoint shutdown.Hook,
	profileCache cache.ProfileCache,
) []shutdown.Hook {
	return []shutdown.Hook{
		func(ctx context.Context) error {
			log.Info(ctx, LogStoppingHTTP)
			return stopServer(ctx)
		},
		func(ctx context.Context) error {
			log.Info(ctx, LogClosingEndpoint)
			return closeEndpoint(ctx)
		},
		func(ctx context.Context) error {
			log.Info(ctx, LogClosingCache)
			return profileCache.Close()
		},
	}
}
