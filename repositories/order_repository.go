package repositories

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"storefront/config"
	"storefront/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// priceTolerance is how far the client-computed total may drift from the
// catalog total before the order is rejected (rounding noise only).
const priceTolerance = 0.01

// ComputeTotal sums line price times quantity over a cart snapshot.
func ComputeTotal(items []models.CheckoutItemRequest) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalsMatch reports whether the client total agrees with the server total
// within the tolerance.
func TotalsMatch(clientTotal, serverTotal float64) bool {
	return math.Abs(clientTotal-serverTotal) <= priceTolerance
}

// PlaceOrder persists the order header and all of its line items in one
// transaction. Unit prices are re-read from the catalog inside the
// transaction; the client snapshot total is only accepted when it matches
// them. Either everything commits or nothing does.
func (r *OrderRepository) PlaceOrder(ctx context.Context, order *models.Order, items []models.CheckoutItemRequest) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	serverTotal := 0.0
	unitPrices := make(map[int]float64, len(items))
	for _, item := range items {
		var price float64
		err := tx.QueryRow(ctx, "SELECT price FROM products WHERE id = $1", item.ProductID).Scan(&price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		unitPrices[item.ProductID] = price
		serverTotal += price * float64(item.Quantity)
	}

	if !TotalsMatch(ComputeTotal(items), serverTotal) {
		return ErrPriceMismatch
	}
	order.TotalPrice = serverTotal

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, full_name, address, email, card_number, total_price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		order.UserID, order.FullName, order.Address, order.Email, order.CardNumber, order.TotalPrice, time.Now(),
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for _, item := range items {
		_, err := tx.Exec(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)",
			order.ID, item.ProductID, item.Quantity, unitPrices[item.ProductID])
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) HistoryByUser(ctx context.Context, userID int) ([]models.OrderHistoryLine, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT o.id AS order_id, o.total_price, o.created_at,
		        oi.product_id, p.name, oi.quantity, oi.price
		 FROM orders o
		 JOIN order_items oi ON o.id = oi.order_id
		 JOIN products p ON oi.product_id = p.id
		 WHERE o.user_id = $1
		 ORDER BY o.created_at DESC, o.id DESC, oi.id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.OrderHistoryLine{}
	for rows.Next() {
		var line models.OrderHistoryLine
		if err := rows.Scan(&line.OrderID, &line.TotalPrice, &line.CreatedAt,
			&line.ProductID, &line.ProductName, &line.Quantity, &line.Price); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
