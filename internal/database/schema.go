package database

import (
	"context"
	"fmt"
	"time"

	"product-insights/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewGorm wraps pool in a GORM handle that shares the pool's connections.
func NewGorm(pool *pgxpool.Pool, logger zerolog.Logger) (*gorm.DB, error) {
	dbLogger := logger.With().Str("component", "gorm").Logger()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: stdlib.OpenDBFromPool(pool),
	}), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(gormWriter{logger: dbLogger}, gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return db, nil
}

// gormWriter routes GORM log lines to zerolog at warn level. GORM filters by its
// own LogLevel before printing, so every line that reaches Printf is a warning
// or an error.
type gormWriter struct {
	logger zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn().Msgf(format, args...)
}

// EnsureSchema creates the products and users tables when they are absent.
// It is idempotent.
func EnsureSchema(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.Product{}, &model.User{}); err != nil {
		logger.Error().Err(err).Msg("failed to ensure schema")
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	logger.Info().Msg("database schema ensured")
	return nil
}
