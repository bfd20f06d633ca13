package service

import (
	"context"
	"fmt"
	"strings"

	"product-insights/internal/cache"
	"product-insights/internal/cleaner"
	"product-insights/internal/ingest"
	"product-insights/internal/model"
	"product-insights/internal/report"
	"product-insights/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	loader      ingest.Loader
	writer      report.Writer
	cache       cache.SummaryCache
	logger      zerolog.Logger
}

// NewProductService creates a new product service. A nil summaryCache disables caching.
func NewProductService(
	productRepo repository.ProductRepository,
	loader ingest.Loader,
	writer report.Writer,
	summaryCache cache.SummaryCache,
	logger zerolog.Logger,
) ProductService {
	if summaryCache == nil {
		summaryCache = cache.NewNoop()
	}
	return &productService{
		productRepo: productRepo,
		loader:      loader,
		writer:      writer,
		cache:       summaryCache,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// LoadCSV reads, cleans and stores the CSV at path.
func (s *productService) LoadCSV(ctx context.Context, path string) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, model.ErrFilePathRequired
	}

	rows, err := s.loader.Load(ctx, path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to load csv")
		return 0, fmt.Errorf("failed to load csv: %w", err)
	}

	products := cleaner.Clean(rows)

	n, err := s.productRepo.InsertBatch(ctx, products)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Int("rows", len(products)).Msg("failed to store products")
		return 0, fmt.Errorf("failed to store products: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		// A stale summary is served until the cache TTL expires.
		s.logger.Warn().Err(err).Msg("failed to invalidate summary cache")
	}

	s.logger.Info().
		Str("path", path).
		Int("rows", n).
		Msg("csv loaded")

	return n, nil
}

// Summary computes the per-category report and persists it.
func (s *productService) Summary(ctx context.Context) ([]model.CategorySummary, error) {
	summaries, hit, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read summary cache")
		hit = false
	}

	if !hit {
		products, err := s.productRepo.ListAll(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to list products")
			return nil, fmt.Errorf("failed to build summary: %w", err)
		}

		summaries = report.Summarize(products)

		if err := s.cache.Set(ctx, summaries); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache summary")
		}
	}

	if err := s.writer.Write(ctx, summaries); err != nil {
		s.logger.Error().Err(err).Msg("failed to write summary report")
		return nil, fmt.Errorf("failed to write summary report: %w", err)
	}

	s.logger.Debug().
		Int("categories", len(summaries)).
		Bool("cached", hit).
		Msg("summary generated")

	return summaries, nil
}
