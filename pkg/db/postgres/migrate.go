package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // драйвер postgres для migrate
	_ "github.com/golang-migrate/migrate/v4/source/file"       // источник миграций из файловой системы
	"go.uber.org/zap"

	"profilefetch/pkg/logger"
)

// Константы для сообщений об ошибках миграций.
const (
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
	ErrCloseMigrations         = "failed to close migration instance"
)

// Migrate поднимает схему базы cfg до последней версии из source (например, file://migrations/profiles).
// Уже примененная схема не считается ошибкой.
func Migrate(ctx context.Context, cfg Config, source string) error {
	log := logger.Log(ctx).With(zap.String("source", source), zap.String("database", cfg.Database))

	m, err := migrate.New(source, cfg.URL())
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			log.Warn(ctx, ErrCloseMigrations, zap.Error(closeErr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error(ctx, ErrApplyMigrations, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrApplyMigrations, err)
	}

	version, dirty, verErr := m.Version()
	if verErr != nil {
		log.Info(ctx, LogMigrationsApplied)
		return nil
	}

	log.Info(ctx, LogMigrationsApplied, zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
