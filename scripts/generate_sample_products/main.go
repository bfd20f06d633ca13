package main

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// generateSampleProducts writes a product CSV that exercises every cleaning rule:
// Electronics has a missing price, a missing rating and a malformed quantity.
// Books has a missing quantity. Toys has no ratings at all, so its missing
// rating stays empty. The last row has no category and is left out of the summary.
func main() {
	dataDir := "data/products"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	records := [][]string{
		{"product_id", "product_name", "category", "price", "quantity_sold", "rating", "review_count"},
		{"1", "Laptop", "Electronics", "999.99", "50", "4.5", "120"},
		{"2", "Phone", "Electronics", "", "80", "NA", "300"},
		{"3", "Headphones", "Electronics", "79.5", "many", "4.1", "85"},
		{"4", "Novel", "Books", "12.5", "200", "4.0", "45"},
		{"5", "Atlas", "Books", "35", "", "3.8", "12"},
		{"6", "Robot Kit", "Toys", "59", "30", "", "7"},
		{"7", "Puzzle", "Toys", "15", "30", "", ""},
		{"8", "Mystery Box", "", "9.99", "5", "2.0", "1"},
	}

	for _, filename := range []string{"products.csv", "products.csv.gz"} {
		filePath := filepath.Join(dataDir, filename)

		if err := createProductFile(filePath, records); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d rows\n", filePath, len(records)-1)
	}

	fmt.Println("\nSample product files created successfully!")
	fmt.Printf("Load one with: curl -X POST -H 'Authorization: Bearer <token>' -d '{\"file_path\": \"%s\"}' localhost:8080/load_csv\n",
		filepath.Join(dataDir, "products.csv"))
}

// createProductFile writes records as CSV, gzipped when the name ends in .gz.
func createProductFile(filePath string, records [][]string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if filepath.Ext(filePath) == ".gz" {
		gzipWriter := gzip.NewWriter(file)
		defer gzipWriter.Close()
		w = gzipWriter
	}

	csvWriter := csv.NewWriter(w)
	if err := csvWriter.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	return nil
}
