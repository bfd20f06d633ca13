// Package cache stores the computed summary between product loads.
package cache

import (
	"context"

	"product-insights/internal/model"
)

// SummaryCache holds the latest summary table. Implementations must be safe
// for concurrent use.
type SummaryCache interface {
	// Get returns the cached summary. ok is false on a miss.
	Get(ctx context.Context) (summaries []model.CategorySummary, ok bool, err error)

	// Set stores summaries.
	Set(ctx context.Context, summaries []model.CategorySummary) error

	// Invalidate drops the cached summary.
	Invalidate(ctx context.Context) error
}

// noopCache never hits.
type noopCache struct{}

// NewNoop returns a SummaryCache that stores nothing.
func NewNoop() SummaryCache {
	return noopCache{}
}

func (noopCache) Get(context.Context) ([]model.CategorySummary, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(context.Context, []model.CategorySummary) error {
	return nil
}

func (noopCache) Invalidate(context.Context) error {
	return nil
}
