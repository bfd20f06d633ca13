// Package ingest reads product CSV files from the local file system or S3.
package ingest

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"product-insights/internal/cleaner"
	"product-insights/internal/model"
)

// Loader defines the interface for loading product CSV files.
type Loader interface {
	// Load reads the CSV at path and returns its raw rows.
	Load(ctx context.Context, path string) ([]cleaner.Row, error)
}

// Recognised CSV column names. Unknown columns are ignored.
const (
	ColProductID    = "product_id"
	ColProductName  = "product_name"
	ColCategory     = "category"
	ColPrice        = "price"
	ColQuantitySold = "quantity_sold"
	ColRating       = "rating"
	ColReviewCount  = "review_count"
)

// ParseCSV reads a header row followed by data rows. Columns are matched by name;
// a column absent from the header leaves that field missing on every row.
// Short records are padded with missing cells, long records are an error.
func ParseCSV(ctx context.Context, r io.Reader) ([]cleaner.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, model.ErrInvalidCSV
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var rows []cleaner.Row
	for line := 2; ; line++ {
		if line%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("csv line %d: expected %d fields, saw %d", line, len(header), len(record))
		}

		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		rows = append(rows, cleaner.Row{
			ProductID:    cell(ColProductID),
			ProductName:  cell(ColProductName),
			Category:     cell(ColCategory),
			Price:        cell(ColPrice),
			QuantitySold: cell(ColQuantitySold),
			Rating:       cell(ColRating),
			ReviewCount:  cell(ColReviewCount),
		})
	}

	return rows, nil
}

// parseSource decompresses gzip input when the path ends in .gz.
func parseSource(ctx context.Context, path string, r io.Reader) ([]cleaner.Row, error) {
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}
	return ParseCSV(ctx, r)
}
