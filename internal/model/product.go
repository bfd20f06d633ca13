package model

// Product represents a catalogue item loaded from CSV.
// Numeric fields are nullable: values that fail numeric coercion are stored as NULL.
type Product struct {
	ID           int64    `json:"product_id" gorm:"column:product_id;primaryKey;autoIncrement"`
	Name         string   `json:"product_name" gorm:"column:product_name;size:255"`
	Category     string   `json:"category" gorm:"column:category;size:255;index"`
	Price        *float64 `json:"price" gorm:"column:price"`
	QuantitySold *int64   `json:"quantity_sold" gorm:"column:quantity_sold"`
	Rating       *float64 `json:"rating" gorm:"column:rating"`
	ReviewCount  *int64   `json:"review_count" gorm:"column:review_count"`
}

// TableName pins the table name used by GORM.
func (Product) TableName() string { return "products" }

// LoadRequest represents the request payload for POST /load_csv.
type LoadRequest struct {
	FilePath string `json:"file_path"`
}
