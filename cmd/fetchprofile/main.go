// Package main реализует разовое получение профиля пользователя из командной строки.
//
// Использование: fetchprofile <userID>
//
// Коды выхода: 0 - профиль получен и закэширован, 1 - отказ, 2 - сетевой сбой (можно повторить).
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"profilefetch/internal/profile/app"
	"profilefetch/internal/profile/bootstrap"
	"profilefetch/internal/profile/config"
	"profilefetch/internal/profile/domain/entities"
	"profilefetch/pkg/logger"
)

// Коды выхода.
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitNetworkError = 2
)

// Константы для сообщений.
const (
	ErrUsage          = "usage: fetchprofile <userID>"
	ErrLoadConfig     = "failed to load configuration"
	ErrInitLogger     = "failed to initialize logger"
	ErrCreateEndpoint = "failed to create profile endpoint"
	ErrCreateCache    = "failed to create profile cache"
	ErrCloseResources = "failed to release resources"

	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"

	LogFetchFinished = "profile fetch finished"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// ExitCode переводит итог получения профиля в код выхода процесса.
func ExitCode(result entities.UseCaseResult) int {
	switch result {
	case entities.ResultSuccess:
		return ExitSuccess
	case entities.ResultNetworkError:
		return ExitNetworkError
	default:
		return ExitFailure
	}
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, ErrUsage)
		return ExitFailure
	}
	userID := args[0]

	ctx := logger.NewRequestIDContext(context.Background(), "")

	cfg, err := config.Load(ctx, os.Getenv(config.EnvConfigPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", ErrLoadConfig, err)
		return ExitFailure
	}

	log, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", ErrInitLogger, err)
		return ExitFailure
	}
	logger.SetGlobalLogger(log)
	defer syncLogger(log)

	profileEndpoint, closeEndpoint, err := bootstrap.NewEndpoint(ctx, cfg)
	if err != nil {
		log.Error(ctx, ErrCreateEndpoint, zap.Error(err))
		return ExitFailure
	}
	defer func() {
		if err := closeEndpoint(ctx); err != nil {
			log.Warn(ctx, ErrCloseResources, zap.Error(err))
		}
	}()

	profileCache, _, err := bootstrap.NewCache(ctx, cfg)
	if err != nil {
		log.Error(ctx, ErrCreateCache, zap.Error(err))
		return ExitFailure
	}
	defer func() {
		if err := profileCache.Close(); err != nil {
			log.Warn(ctx, ErrCloseResources, zap.Error(err))
		}
	}()

	result := app.NewFetchProfileUseCase(profileEndpoint, profileCache).FetchProfileSync(ctx, userID)
	log.Info(ctx, LogFetchFinished, zap.String("userID", userID), zap.Stringer("result", result))

	fmt.Fprintln(os.Stdout, result.String())
	return ExitCode(result)
}

func syncLogger(log *logger.Logger) {
	if err := log.Sync(); err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
