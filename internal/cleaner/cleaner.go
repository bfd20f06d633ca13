// Package cleaner imputes and coerces raw product rows before they are stored.
//
// Cleaning fills missing values first and coerces types second. A value that is
// present but malformed is therefore not filled: it only becomes missing during
// coercion and is stored as NULL.
package cleaner

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"product-insights/internal/model"
)

// Row is one raw CSV record. Every cell is kept as text until coercion.
type Row struct {
	ProductID    string
	ProductName  string
	Category     string
	Price        string
	QuantitySold string
	Rating       string
	ReviewCount  string
}

// nullMarkers are cell values treated as missing, in addition to the empty string.
var nullMarkers = map[string]bool{
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
	"None": true,
}

// IsMissing reports whether a raw cell holds no value.
func IsMissing(cell string) bool {
	v := strings.TrimSpace(cell)
	return v == "" || nullMarkers[v]
}

// Clean fills missing price and quantity_sold with the batch median, fills
// missing rating with the mean rating of the row's category, then coerces the
// numeric columns. The input slice is not modified.
func Clean(rows []Row) []model.Product {
	filled := make([]Row, len(rows))
	copy(filled, rows)

	fillColumn(filled, medianFill(column(filled, func(r *Row) string { return r.Price })),
		func(r *Row) *string { return &r.Price })
	fillColumn(filled, medianFill(column(filled, func(r *Row) string { return r.QuantitySold })),
		func(r *Row) *string { return &r.QuantitySold })
	fillRatingByCategory(filled)

	products := make([]model.Product, len(filled))
	for i := range filled {
		products[i] = coerce(filled[i])
	}
	return products
}

// column returns the parseable, present values of one column.
func column(rows []Row, get func(r *Row) string) []float64 {
	values := make([]float64, 0, len(rows))
	for i := range rows {
		if v, ok := parseFloat(get(&rows[i])); ok {
			values = append(values, v)
		}
	}
	return values
}

// medianFill returns the median of values, or 0 when there are none.
func medianFill(values []float64) float64 {
	if m, ok := Median(values); ok {
		return m
	}
	return 0
}

func fillColumn(rows []Row, value float64, cell func(r *Row) *string) {
	formatted := formatFloat(value)
	for i := range rows {
		c := cell(&rows[i])
		if IsMissing(*c) {
			*c = formatted
		}
	}
}

// fillRatingByCategory fills missing ratings with the mean of the present ratings
// in the same category. Rows without a category, and categories with no present
// rating, are left missing.
func fillRatingByCategory(rows []Row) {
	// Groups are keyed by the category text as it will be stored.
	groups := make(map[string][]float64)
	for i := range rows {
		category := cellText(rows[i].Category)
		if category == "" {
			continue
		}
		if v, ok := parseFloat(rows[i].Rating); ok {
			groups[category] = append(groups[category], v)
		}
	}

	for i := range rows {
		category := cellText(rows[i].Category)
		if !IsMissing(rows[i].Rating) || category == "" {
			continue
		}
		if mean, ok := Mean(groups[category]); ok {
			rows[i].Rating = formatFloat(mean)
		}
	}
}

func coerce(r Row) model.Product {
	p := model.Product{
		Name:     cellText(r.ProductName),
		Category: cellText(r.Category),
	}

	if id, ok := parseInt(r.ProductID); ok {
		p.ID = id
	}
	if v, ok := parseFloat(r.Price); ok {
		p.Price = &v
	}
	if v, ok := parseInt(r.QuantitySold); ok {
		p.QuantitySold = &v
	}
	if v, ok := parseFloat(r.Rating); ok {
		p.Rating = &v
	}
	if v, ok := parseInt(r.ReviewCount); ok {
		p.ReviewCount = &v
	}

	return p
}

func cellText(cell string) string {
	if IsMissing(cell) {
		return ""
	}
	return strings.TrimSpace(cell)
}

// Median returns the median of values. ok is false for an empty slice.
func Median(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

// Mean returns the arithmetic mean of values. ok is false for an empty slice.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

func parseFloat(cell string) (float64, bool) {
	if IsMissing(cell) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseInt accepts integral and fractional text; fractions are rounded half away from zero.
func parseInt(cell string) (int64, bool) {
	v, ok := parseFloat(cell)
	if !ok || v > math.MaxInt64 || v < math.MinInt64 {
		return 0, false
	}
	return int64(math.Round(v)), true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
