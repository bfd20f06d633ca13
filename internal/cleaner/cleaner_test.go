package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMissing(t *testing.T) {
	tests := []struct {
		cell     string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"NA", true},
		{"N/A", true},
		{"NaN", true},
		{"null", true},
		{"None", true},
		{"0", false},
		{"abc", false},
		{" 4.5 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMissing(tt.cell))
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
		ok       bool
	}{
		{name: "Empty", values: nil, expected: 0, ok: false},
		{name: "Single value", values: []float64{7}, expected: 7, ok: true},
		{name: "Odd count unsorted", values: []float64{9, 1, 5}, expected: 5, ok: true},
		{name: "Even count averages middle pair", values: []float64{4, 1, 3, 2}, expected: 2.5, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Median(tt.values)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, _ = Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMean(t *testing.T) {
	got, ok := Mean([]float64{4, 6})
	require.True(t, ok)
	assert.InDelta(t, 5.0, got, 1e-9)

	_, ok = Mean(nil)
	assert.False(t, ok)
}

func TestClean_FillsRatingWithCategoryMean(t *testing.T) {
	rows := []Row{
		{ProductName: "a1", Category: "A", Price: "1", QuantitySold: "1", Rating: "4"},
		{ProductName: "a2", Category: "A", Price: "1", QuantitySold: "1", Rating: ""},
		{ProductName: "a3", Category: "A", Price: "1", QuantitySold: "1", Rating: "6"},
		{ProductName: "b1", Category: "B", Price: "1", QuantitySold: "1", Rating: "1"},
	}

	products := Clean(rows)

	require.Len(t, products, 4)
	require.NotNil(t, products[1].Rating)
	assert.InDelta(t, 5.0, *products[1].Rating, 1e-9)
	assert.InDelta(t, 1.0, *products[3].Rating, 1e-9)
}

func TestClean_CategoryWithoutRatingsStaysMissing(t *testing.T) {
	rows := []Row{
		{Category: "A", Price: "1", QuantitySold: "1", Rating: "4"},
		{Category: "B", Price: "1", QuantitySold: "1", Rating: ""},
		{Category: "", Price: "1", QuantitySold: "1", Rating: ""},
	}

	products := Clean(rows)

	assert.Nil(t, products[1].Rating)
	assert.Nil(t, products[2].Rating)
}

func TestClean_RatingGroupsMatchStoredCategory(t *testing.T) {
	rows := []Row{
		{Category: "A", Price: "1", QuantitySold: "1", Rating: "4"},
		{Category: "A ", Price: "1", QuantitySold: "1", Rating: ""},
		{Category: " A", Price: "1", QuantitySold: "1", Rating: "6"},
	}

	products := Clean(rows)

	for _, p := range products {
		assert.Equal(t, "A", p.Category)
	}
	require.NotNil(t, products[1].Rating)
	assert.InDelta(t, 5.0, *products[1].Rating, 1e-9)
}

func TestClean_FillsPriceAndQuantityWithMedian(t *testing.T) {
	rows := []Row{
		{Category: "A", Price: "10", QuantitySold: "1"},
		{Category: "A", Price: "", QuantitySold: "NA"},
		{Category: "B", Price: "30", QuantitySold: "4"},
		{Category: "B", Price: "20", QuantitySold: "2"},
	}

	products := Clean(rows)

	require.NotNil(t, products[1].Price)
	assert.InDelta(t, 20.0, *products[1].Price, 1e-9)
	require.NotNil(t, products[1].QuantitySold)
	assert.Equal(t, int64(2), *products[1].QuantitySold)
}

func TestClean_EvenMedianQuantityIsRounded(t *testing.T) {
	rows := []Row{
		{QuantitySold: "1"},
		{QuantitySold: "4"},
		{QuantitySold: ""},
	}

	products := Clean(rows)

	// median(1, 4) = 2.5, stored as an integer column
	require.NotNil(t, products[2].QuantitySold)
	assert.Equal(t, int64(3), *products[2].QuantitySold)
}

func TestClean_AllPricesMissingFillsZero(t *testing.T) {
	rows := []Row{
		{Category: "A", Price: "", QuantitySold: ""},
		{Category: "A", Price: "NaN", QuantitySold: ""},
	}

	products := Clean(rows)

	for _, p := range products {
		require.NotNil(t, p.Price)
		assert.Equal(t, 0.0, *p.Price)
		require.NotNil(t, p.QuantitySold)
		assert.Equal(t, int64(0), *p.QuantitySold)
	}
}

func TestClean_MalformedValuesBecomeMissingAfterFill(t *testing.T) {
	rows := []Row{
		{Category: "A", Price: "abc", QuantitySold: "ten", Rating: "great", ReviewCount: "many"},
		{Category: "A", Price: "5", QuantitySold: "3", Rating: "4", ReviewCount: "12"},
	}

	products := Clean(rows)

	// Malformed cells are not missing at fill time, so coercion leaves them NULL.
	assert.Nil(t, products[0].Price)
	assert.Nil(t, products[0].QuantitySold)
	assert.Nil(t, products[0].Rating)
	assert.Nil(t, products[0].ReviewCount)

	require.NotNil(t, products[1].ReviewCount)
	assert.Equal(t, int64(12), *products[1].ReviewCount)
}

func TestClean_MalformedValuesExcludedFromStatistics(t *testing.T) {
	rows := []Row{
		{Price: "abc"},
		{Price: "2"},
		{Price: "4"},
		{Price: ""},
	}

	products := Clean(rows)

	require.NotNil(t, products[3].Price)
	assert.InDelta(t, 3.0, *products[3].Price, 1e-9)
}

func TestClean_CoercesTextFields(t *testing.T) {
	rows := []Row{
		{ProductID: "42", ProductName: "  Widget ", Category: "Tools", Price: "9.99", QuantitySold: "7", Rating: "4.5", ReviewCount: "3"},
		{ProductID: "", ProductName: "NA", Category: "null", Price: "1", QuantitySold: "1", Rating: "1"},
	}

	products := Clean(rows)

	assert.Equal(t, int64(42), products[0].ID)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "Tools", products[0].Category)
	assert.InDelta(t, 9.99, *products[0].Price, 1e-9)
	assert.InDelta(t, 4.5, *products[0].Rating, 1e-9)

	assert.Equal(t, int64(0), products[1].ID)
	assert.Equal(t, "", products[1].Name)
	assert.Equal(t, "", products[1].Category)
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	rows := []Row{
		{Category: "A", Price: "", QuantitySold: "", Rating: ""},
		{Category: "A", Price: "2", QuantitySold: "2", Rating: "3"},
	}

	_ = Clean(rows)

	assert.Equal(t, "", rows[0].Price)
	assert.Equal(t, "", rows[0].QuantitySold)
	assert.Equal(t, "", rows[0].Rating)
}

func TestClean_EmptyBatch(t *testing.T) {
	assert.Empty(t, Clean(nil))
}
