package repository

import (
	"context"
	"fmt"

	"product-insights/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	insertProductQuery = `
		INSERT INTO products (product_name, category, price, quantity_sold, rating, review_count)
		VALUES (NULLIF($1, ''), NULLIF($2, ''), $3, $4, $5, $6)
	`

	insertProductWithIDQuery = `
		INSERT INTO products (product_id, product_name, category, price, quantity_sold, rating, review_count)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7)
	`

	// Explicit IDs bypass the sequence; move it past them so generated IDs do not collide.
	syncProductSequenceQuery = `
		SELECT setval(
			pg_get_serial_sequence('products', 'product_id'),
			(SELECT COALESCE(MAX(product_id), 0) + 1 FROM products),
			false
		)
	`
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// InsertBatch stores all products in a single transaction.
func (r *productRepository) InsertBatch(ctx context.Context, products []model.Product) (n int, err error) {
	if len(products) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	// Explicit IDs go first and the sequence is moved past them before any
	// generated ID is drawn, so the two kinds can mix in one batch.
	batch := &pgx.Batch{}
	rows := make([]int, 0, len(products)+1)
	for i, p := range products {
		if p.ID == 0 {
			continue
		}
		batch.Queue(insertProductWithIDQuery,
			p.ID, p.Name, p.Category, p.Price, p.QuantitySold, p.Rating, p.ReviewCount)
		rows = append(rows, i)
	}
	explicitIDs := len(rows) > 0
	if explicitIDs {
		batch.Queue(syncProductSequenceQuery)
		rows = append(rows, -1)
	}
	for i, p := range products {
		if p.ID != 0 {
			continue
		}
		batch.Queue(insertProductQuery,
			p.Name, p.Category, p.Price, p.QuantitySold, p.Rating, p.ReviewCount)
		rows = append(rows, i)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err = results.Exec(); err != nil {
			results.Close()
			if rows[i] < 0 {
				r.logger.Error().Err(err).Msg("failed to sync product id sequence")
				return 0, fmt.Errorf("failed to sync product id sequence: %w", err)
			}
			r.logger.Error().
				Err(err).
				Int("row", rows[i]).
				Msg("failed to insert product")
			return 0, fmt.Errorf("failed to insert product row %d: %w", rows[i], err)
		}
	}
	if err = results.Close(); err != nil {
		r.logger.Error().Err(err).Msg("failed to close batch results")
		return 0, fmt.Errorf("failed to insert products: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return 0, fmt.Errorf("failed to commit products: %w", err)
	}

	r.logger.Debug().
		Int("count", len(products)).
		Bool("explicit_ids", explicitIDs).
		Msg("products inserted successfully")

	return len(products), nil
}

// ListAll retrieves every product ordered by product_id.
func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT product_id, COALESCE(product_name, ''), COALESCE(category, ''),
			price, quantity_sold, rating, review_count
		FROM products
		ORDER BY product_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.QuantitySold, &p.Rating, &p.ReviewCount)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
