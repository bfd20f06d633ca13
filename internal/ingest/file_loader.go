package ingest

import (
	"context"
	"fmt"
	"os"

	"product-insights/internal/cleaner"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for CSV files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based CSV loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "csv-file-loader").Logger(),
	}
}

// Load reads a CSV file (optionally gzipped) from disk.
func (l *fileLoader) Load(ctx context.Context, path string) ([]cleaner.Row, error) {
	l.logger.Info().Str("file", path).Msg("loading csv file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open csv file")
		return nil, fmt.Errorf("failed to open csv file %s: %w", path, err)
	}
	defer file.Close()

	rows, err := parseSource(ctx, path, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to parse csv file")
		return nil, fmt.Errorf("failed to parse csv file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("rows_loaded", len(rows)).
		Msg("csv file loaded successfully")

	return rows, nil
}
