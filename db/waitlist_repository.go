package db

import (
	"context"
	"fmt"
	"storefront/entities"
)

type WaitlistRepository struct {
	db *DB
}

func NewWaitlistRepository(db *DB) WaitlistRepository {
	if db == nil {
		panic("db is nil")
	}
	return WaitlistRepository{
		db: db,
	}
}

func (wr WaitlistRepository) Create(ctx context.Context, entry entities.WaitlistEntry) error {
	_, err := wr.db.Conn.NamedExecContext(ctx, `
		INSERT INTO
			waitlist (entry_id, product_id, name, description, quantity, price_cents, price_currency, created_at)
		VALUES
			(:entry_id, :product_id, :name, :description, :quantity, :price.cents, :price.currency, :created_at) ON CONFLICT DO NOTHING`,
		entry,
	)
	if err != nil {
		return fmt.Errorf("could not save waitlist entry: %w", err)
	}
	return nil
}

func (wr WaitlistRepository) GetAll(ctx context.Context) ([]entities.WaitlistEntry, error) {
	var entries []entities.WaitlistEntry
	err := wr.db.Conn.SelectContext(ctx, &entries, `
		SELECT entry_id,
			   product_id,
			   name,
			   description,
			   quantity,
			   price_cents AS "price.cents",
			   price_currency AS "price.currency",
			   created_at
		FROM waitlist
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("could not get waitlist entries: %w", err)
	}

	return entries, nil
}
