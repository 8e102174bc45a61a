package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"storefront/entities"

	"github.com/google/uuid"
)

type CartRepository struct {
	db *DB
}

func NewCartRepository(db *DB) CartRepository {
	if db == nil {
		panic("db is nil")
	}
	return CartRepository{
		db: db,
	}
}

func (cr CartRepository) Create(ctx context.Context, cart entities.Cart) error {
	lines, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("could not marshal cart lines: %w", err)
	}

	_, err = cr.db.Conn.ExecContext(ctx, `
		INSERT INTO
			carts (cart_id, lines)
		VALUES
			($1, $2) ON CONFLICT DO NOTHING`,
		cart.CartID, lines,
	)
	if err != nil {
		return fmt.Errorf("could not save cart: %w", err)
	}
	return nil
}

func (cr CartRepository) CartByID(ctx context.Context, cartID uuid.UUID) (entities.Cart, error) {
	var row struct {
		CartID uuid.UUID `db:"cart_id"`
		Lines  []byte    `db:"lines"`
	}
	err := cr.db.Conn.GetContext(ctx, &row, `
		SELECT cart_id, lines FROM carts WHERE cart_id = $1`, cartID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("could not get cart: %w", err)
	}

	cart := entities.Cart{CartID: row.CartID}
	if err := json.Unmarshal(row.Lines, &cart.Lines); err != nil {
		return entities.Cart{}, fmt.Errorf("could not unmarshal cart lines: %w", err)
	}

	return cart, nil
}

func (cr CartRepository) Delete(ctx context.Context, cartID uuid.UUID) error {
	_, err := cr.db.Conn.ExecContext(ctx,
		`DELETE FROM carts WHERE cart_id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("could not delete cart: %w", err)
	}
	return nil
}
