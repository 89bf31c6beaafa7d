package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateProductsTable, downCreateProductsTable)
}

func upCreateProductsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE products (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  name TEXT NOT NULL,
	  description TEXT NOT NULL,
	  price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
	  image_url TEXT NOT NULL,
	  featured BOOLEAN NOT NULL DEFAULT FALSE,
	  in_stock BOOLEAN NOT NULL DEFAULT TRUE,
	  artisan_id UUID NOT NULL REFERENCES artisans(id) ON DELETE CASCADE,
	  category_id UUID NOT NULL REFERENCES categories(id),
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);

	CREATE INDEX idx_products_artisan_id ON products(artisan_id);
	CREATE INDEX idx_products_category_id ON products(category_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateProductsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS products;`)
	if err != nil {
		return err
	}
	return nil
}
