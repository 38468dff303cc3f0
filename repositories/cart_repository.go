package repositories

import (
	"context"
	"time"

	"storefront/config"
	"storefront/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) ListByUser(ctx context.Context, userID int) ([]models.CartItem, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT ci.id, ci.product_id, ci.quantity, p.name, p.price, p.image_url
		 FROM cart_items ci
		 JOIN products p ON ci.product_id = p.id
		 WHERE ci.user_id = $1
		 ORDER BY ci.id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.Name, &item.Price, &item.ImageURL); err != nil {
			return nil, err
		}
		item.UserID = userID
		items = append(items, item)
	}
	return items, rows.Err()
}

// Add merges into an existing row or inserts a new one. The upsert rides the
// UNIQUE(user_id, product_id) constraint so two concurrent adds for the same
// product can never produce duplicate rows.
func (r *CartRepository) Add(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error) {
	now := time.Now()

	var item models.CartItem
	err := config.DB.QueryRow(ctx,
		`INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 ON CONFLICT ON CONSTRAINT uq_cart_items_user_product
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		 RETURNING id, quantity`,
		userID, productID, quantity, now,
	).Scan(&item.ID, &item.Quantity)

	if err != nil {
		return nil, err
	}

	item.UserID = userID
	item.ProductID = productID
	return &item, nil
}

// SetQuantity updates a cart line. A target quantity below 1 deletes the row;
// every quantity-mutating path goes through this clamp.
func (r *CartRepository) SetQuantity(ctx context.Context, userID, itemID, quantity int) error {
	if quantity < 1 {
		return r.Remove(ctx, userID, itemID)
	}

	tag, err := config.DB.Exec(ctx,
		"UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3 AND user_id = $4",
		quantity, time.Now(), itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, itemID int) error {
	tag, err := config.DB.Exec(ctx,
		"DELETE FROM cart_items WHERE id = $1 AND user_id = $2", itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear removes every cart row for the user in a single statement, so the
// caller either sees the whole cart gone or untouched.
func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	_, err := config.DB.Exec(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	return err
}
