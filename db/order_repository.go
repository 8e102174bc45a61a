package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"storefront/entities"
	"time"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) OrderRepository {
	if db == nil {
		panic("db is nil")
	}
	return OrderRepository{
		db: db,
	}
}

// Create persists a finalized order. Orders are insert-only: there is no
// update path, a persisted order is never mutated.
func (or OrderRepository) Create(ctx context.Context, order entities.Order) error {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("could not marshal order lines: %w", err)
	}

	_, err = or.db.Conn.ExecContext(ctx, `
		INSERT INTO
			orders (order_id, lines, total_cents, total_currency, placed_at)
		VALUES
			($1, $2, $3, $4, $5)`,
		order.OrderID, lines, order.TotalAmount.Cents, order.TotalAmount.Currency, order.PlacedAt,
	)
	if isErrorUniqueViolation(err) {
		// the order was already finalized, nothing to do
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not save order: %w", err)
	}
	return nil
}

type orderRow struct {
	OrderID       uuid.UUID `db:"order_id"`
	Lines         []byte    `db:"lines"`
	TotalCents    int64     `db:"total_cents"`
	TotalCurrency string    `db:"total_currency"`
	PlacedAt      time.Time `db:"placed_at"`
}

func (row orderRow) toOrder() (entities.Order, error) {
	order := entities.Order{
		OrderID: row.OrderID,
		TotalAmount: entities.Money{
			Cents:    row.TotalCents,
			Currency: row.TotalCurrency,
		},
		PlacedAt: row.PlacedAt,
	}
	if err := json.Unmarshal(row.Lines, &order.Lines); err != nil {
		return entities.Order{}, fmt.Errorf("could not unmarshal order lines: %w", err)
	}
	return order, nil
}

func (or OrderRepository) OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	var row orderRow
	err := or.db.Conn.GetContext(ctx, &row, `
		SELECT order_id, lines, total_cents, total_currency, placed_at
		FROM orders
		WHERE order_id = $1`, orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("could not get order: %w", err)
	}

	return row.toOrder()
}

func (or OrderRepository) GetAll(ctx context.Context) ([]entities.Order, error) {
	var rows []orderRow
	err := or.db.Conn.SelectContext(ctx, &rows, `
		SELECT order_id, lines, total_cents, total_currency, placed_at
		FROM orders
		ORDER BY placed_at`)
	if err != nil {
		return nil, fmt.Errorf("could not get all orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.toOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
