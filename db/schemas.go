package db

var schema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS products (
	product_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price_cents BIGINT NOT NULL,
	price_currency CHAR(3) NOT NULL,
	stock INT NOT NULL CHECK (stock >= 0)
);

CREATE TABLE IF NOT EXISTS carts (
	cart_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	lines JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	order_id UUID PRIMARY KEY,
	lines JSONB NOT NULL,
	total_cents BIGINT NOT NULL,
	total_currency CHAR(3) NOT NULL,
	placed_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS waitlist (
	entry_id UUID PRIMARY KEY,
	product_id UUID NOT NULL,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	quantity INT NOT NULL,
	price_cents BIGINT NOT NULL,
	price_currency CHAR(3) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`
