package migrations

import (
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upCreateCategoriesTable, downCreateCategoriesTable)
}

func upCreateCategoriesTable(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			image_url TEXT
		);

		-- Categories are administered here, not through the application.
		INSERT INTO categories (name, image_url) VALUES
		('Ceramics', '/images/categories/ceramics.jpg'),
		('Textiles', '/images/categories/textiles.jpg'),
		('Woodwork', '/images/categories/woodwork.jpg'),
		('Jewelry', '/images/categories/jewelry.jpg'),
		('Paintings', '/images/categories/paintings.jpg');
	`)
	return err
}

func downCreateCategoriesTable(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS categories;`)
	return err
}
