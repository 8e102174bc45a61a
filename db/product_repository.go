package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"storefront/entities"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db *DB
}

func NewProductRepository(db *DB) ProductRepository {
	if db == nil {
		panic("db is nil")
	}
	return ProductRepository{
		db: db,
	}
}

func (pr ProductRepository) Create(ctx context.Context, product entities.Product) error {
	_, err := pr.db.Conn.NamedExecContext(
		ctx,
		`
		INSERT INTO
			products (product_id, name, description, price_cents, price_currency, stock)
		VALUES
			(:product_id, :name, :description, :price.cents, :price.currency, :stock) ON CONFLICT DO NOTHING`,
		product,
	)
	if err != nil {
		return fmt.Errorf("could not save product: %w", err)
	}
	return nil
}

func (pr ProductRepository) Update(ctx context.Context, product entities.Product) error {
	res, err := pr.db.Conn.NamedExecContext(ctx, `
		UPDATE products SET
			name = :name,
			description = :description,
			price_cents = :price.cents,
			price_currency = :price.currency,
			stock = :stock
		WHERE product_id = :product_id`, product)
	if err != nil {
		return fmt.Errorf("could not update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check updated rows: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (pr ProductRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	res, err := pr.db.Conn.ExecContext(ctx,
		`DELETE FROM products WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("could not delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (pr ProductRepository) ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error) {
	var product entities.Product
	err := pr.db.Conn.GetContext(ctx, &product, `
		SELECT product_id,
			   name,
			   description,
			   price_cents AS "price.cents",
			   price_currency AS "price.currency",
			   stock
		FROM products
		WHERE product_id = $1`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("could not get product: %w", err)
	}

	return product, nil
}

func (pr ProductRepository) GetAll(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	err := pr.db.Conn.SelectContext(ctx, &products, `
		SELECT product_id,
			   name,
			   description,
			   price_cents AS "price.cents",
			   price_currency AS "price.currency",
			   stock
		FROM products`)
	if err != nil {
		return nil, fmt.Errorf("could not get all products: %w", err)
	}

	return products, nil
}

// TryReserve decrements the product's stock by min(quantity, stock) and
// returns the amount actually reserved together with the remaining stock.
// The read and the decrement happen inside one serializable transaction with
// the row locked, so concurrent reservations against the same product can
// never both decrement from a stale snapshot.
func (pr ProductRepository) TryReserve(ctx context.Context, productID uuid.UUID, quantity int) (reserved int, remaining int, err error) {
	tx, err := pr.db.Conn.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, 0, fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			err = errors.Join(err, rollbackErr)
			return
		}
		err = tx.Commit()
	}()

	stock := 0
	err = tx.GetContext(ctx, &stock, `
		SELECT
		    stock
		FROM
		    products
		WHERE
		    product_id = $1
		FOR UPDATE
	`, productID)
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrProductNotFound
		return 0, 0, err
	}
	if err != nil {
		return 0, 0, fmt.Errorf("could not get available stock: %w", err)
	}

	reserved = quantity
	if stock < reserved {
		reserved = stock
	}

	if reserved > 0 {
		_, err = tx.ExecContext(ctx, `
			UPDATE products SET stock = stock - $1 WHERE product_id = $2
		`, reserved, productID)
		if err != nil {
			return 0, 0, fmt.Errorf("could not decrement stock: %w", err)
		}
	}

	return reserved, stock - reserved, nil
}
