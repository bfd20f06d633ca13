// Package report aggregates products per category and writes the summary CSV.
package report

import (
	"sort"

	"product-insights/internal/model"
)

// Summarize groups products by category, sorted by category name. Products
// without a category are skipped. The top product of a group is the first
// product, in input order, with the highest quantity sold; products with no
// quantity rank below any product that has one.
func Summarize(products []model.Product) []model.CategorySummary {
	type group struct {
		summary model.CategorySummary
		topQty  *int64
		hasTop  bool
	}

	groups := make(map[string]*group)
	for _, p := range products {
		if p.Category == "" {
			continue
		}

		g, ok := groups[p.Category]
		if !ok {
			g = &group{summary: model.CategorySummary{Category: p.Category}}
			groups[p.Category] = g
		}

		if p.Price != nil {
			g.summary.TotalRevenue += *p.Price
		}

		if !g.hasTop || outranks(p.QuantitySold, g.topQty) {
			g.hasTop = true
			g.topQty = p.QuantitySold
			g.summary.TopProduct = p.Name
		}
	}

	summaries := make([]model.CategorySummary, 0, len(groups))
	for _, g := range groups {
		g.summary.TopProductQuantitySold = g.topQty
		summaries = append(summaries, g.summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Category < summaries[j].Category
	})

	return summaries
}

// outranks reports whether quantity a strictly beats the current best b.
func outranks(a, b *int64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a > *b
}
