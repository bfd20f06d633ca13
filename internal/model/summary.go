package model

// CategorySummary is one row of the summary report.
type CategorySummary struct {
	Category               string  `json:"category"`
	TotalRevenue           float64 `json:"total_revenue"`
	TopProductQuantitySold *int64  `json:"top_product_quantity_sold"`
	TopProduct             string  `json:"top_product"`
}

// SummaryResponse is the body returned by GET /summary.
type SummaryResponse struct {
	Message string            `json:"message"`
	Data    []CategorySummary `json:"data"`
}
