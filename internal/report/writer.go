package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"product-insights/internal/model"

	"github.com/rs/zerolog"
)

// Header is the column order of the summary CSV.
var Header = []string{"category", "total_revenue", "top_product_quantity_sold", "top_product"}

// Writer persists a summary table.
type Writer interface {
	Write(ctx context.Context, summaries []model.CategorySummary) error
}

// WriteCSV encodes summaries as CSV with a header row. Missing quantities are empty cells.
func WriteCSV(w io.Writer, summaries []model.CategorySummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, s := range summaries {
		qty := ""
		if s.TopProductQuantitySold != nil {
			qty = strconv.FormatInt(*s.TopProductQuantitySold, 10)
		}
		record := []string{
			s.Category,
			strconv.FormatFloat(s.TotalRevenue, 'f', -1, 64),
			qty,
			s.TopProduct,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return nil
}

// fileWriter overwrites a fixed file on each call.
type fileWriter struct {
	path   string
	logger zerolog.Logger
}

// NewFileWriter creates a Writer that replaces the file at path on every write.
func NewFileWriter(path string, logger zerolog.Logger) Writer {
	return &fileWriter{
		path:   path,
		logger: logger.With().Str("component", "report-file-writer").Logger(),
	}
}

// Write renders the report to a temporary file and renames it over path.
func (w *fileWriter) Write(ctx context.Context, summaries []model.CategorySummary) error {
	tmp, err := os.CreateTemp(filepath.Dir(w.path), ".summary-*.csv")
	if err != nil {
		w.logger.Error().Err(err).Str("file", w.path).Msg("failed to create temporary report file")
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteCSV(tmp, summaries); err != nil {
		tmp.Close()
		w.logger.Error().Err(err).Str("file", w.path).Msg("failed to write report")
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		w.logger.Error().Err(err).Str("file", w.path).Msg("failed to replace report file")
		return fmt.Errorf("failed to replace report file %s: %w", w.path, err)
	}

	w.logger.Info().
		Str("file", w.path).
		Int("categories", len(summaries)).
		Msg("summary report written")

	return nil
}

// multiWriter writes to every writer in order and stops at the first error.
type multiWriter struct {
	writers []Writer
}

// MultiWriter combines writers. Nil writers are skipped.
func MultiWriter(writers ...Writer) Writer {
	m := &multiWriter{}
	for _, w := range writers {
		if w != nil {
			m.writers = append(m.writers, w)
		}
	}
	return m
}

func (m *multiWriter) Write(ctx context.Context, summaries []model.CategorySummary) error {
	for _, w := range m.writers {
		if err := w.Write(ctx, summaries); err != nil {
			return err
		}
	}
	return nil
}
