package report

import (
	"testing"

	"product-insights/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64       { return &v }

func TestSummarize(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "Laptop", Category: "Electronics", Price: float64Ptr(1000), QuantitySold: int64Ptr(5)},
		{ID: 2, Name: "Phone", Category: "Electronics", Price: float64Ptr(500), QuantitySold: int64Ptr(20)},
		{ID: 3, Name: "Novel", Category: "Books", Price: float64Ptr(10.5), QuantitySold: int64Ptr(7)},
		{ID: 4, Name: "Atlas", Category: "Books", Price: nil, QuantitySold: nil},
		{ID: 5, Name: "Orphan", Category: "", Price: float64Ptr(99), QuantitySold: int64Ptr(100)},
	}

	summaries := Summarize(products)

	require.Len(t, summaries, 2)

	assert.Equal(t, "Books", summaries[0].Category)
	assert.InDelta(t, 10.5, summaries[0].TotalRevenue, 1e-9)
	require.NotNil(t, summaries[0].TopProductQuantitySold)
	assert.Equal(t, int64(7), *summaries[0].TopProductQuantitySold)
	assert.Equal(t, "Novel", summaries[0].TopProduct)

	assert.Equal(t, "Electronics", summaries[1].Category)
	assert.InDelta(t, 1500.0, summaries[1].TotalRevenue, 1e-9)
	assert.Equal(t, int64(20), *summaries[1].TopProductQuantitySold)
	assert.Equal(t, "Phone", summaries[1].TopProduct)
}

func TestSummarize_TiesKeepFirstInInputOrder(t *testing.T) {
	products := []model.Product{
		{Name: "First", Category: "A", QuantitySold: int64Ptr(9)},
		{Name: "Second", Category: "A", QuantitySold: int64Ptr(9)},
	}

	summaries := Summarize(products)

	require.Len(t, summaries, 1)
	assert.Equal(t, "First", summaries[0].TopProduct)
}

func TestSummarize_MissingQuantitiesRankLast(t *testing.T) {
	products := []model.Product{
		{Name: "Unknown", Category: "A", QuantitySold: nil},
		{Name: "Zero", Category: "A", QuantitySold: int64Ptr(0)},
	}

	summaries := Summarize(products)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Zero", summaries[0].TopProduct)
	assert.Equal(t, int64(0), *summaries[0].TopProductQuantitySold)
}

func TestSummarize_AllQuantitiesMissing(t *testing.T) {
	products := []model.Product{
		{Name: "One", Category: "A", Price: float64Ptr(2)},
		{Name: "Two", Category: "A", Price: float64Ptr(3)},
	}

	summaries := Summarize(products)

	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].TopProductQuantitySold)
	assert.Equal(t, "One", summaries[0].TopProduct)
	assert.InDelta(t, 5.0, summaries[0].TotalRevenue, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	summaries := Summarize(nil)

	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
