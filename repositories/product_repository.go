package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"storefront/config"
	"storefront/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

type SearchParams struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

const productColumns = "id, name, description, price, image_url, category, created_at"

func (r *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	rows, err := config.DB.Query(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := config.DB.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Search(ctx context.Context, params SearchParams) ([]models.Product, error) {
	query, args := buildSearchQuery(params)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// buildSearchQuery ANDs the provided filters together: case-insensitive
// substring match on name or description, exact category, and optional price
// bounds. Absent filters leave the query open-ended.
func buildSearchQuery(params SearchParams) (string, []interface{}) {
	query := "SELECT " + productColumns + " FROM products WHERE 1=1"
	args := []interface{}{}
	paramIndex := 1

	if params.Query != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", paramIndex, paramIndex)
		args = append(args, "%"+params.Query+"%")
		paramIndex++
	}

	if params.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", paramIndex)
		args = append(args, params.Category)
		paramIndex++
	}

	if params.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", paramIndex)
		args = append(args, *params.MinPrice)
		paramIndex++
	}

	if params.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", paramIndex)
		args = append(args, *params.MaxPrice)
		paramIndex++
	}

	query += " ORDER BY id"
	return query, args
}

// ImportBatch inserts catalog feed entries in one transaction and returns the
// number of products stored.
func (r *ProductRepository) ImportBatch(ctx context.Context, products []models.Product) (int, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	count := 0
	for _, p := range products {
		_, err := tx.Exec(ctx,
			"INSERT INTO products (name, description, price, image_url, category, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
			p.Name, p.Description, p.Price, p.ImageURL, p.Category, now)
		if err != nil {
			return 0, err
		}
		count++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return count, nil
}

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
