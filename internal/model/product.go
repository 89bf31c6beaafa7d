package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Featured    bool      `db:"featured" json:"featured"`
	InStock     bool      `db:"in_stock" json:"in_stock"`
	ArtisanID   uuid.UUID `db:"artisan_id" json:"artisan_id"`
	CategoryID  uuid.UUID `db:"category_id" json:"category_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ProductListing is a product row joined with its artisan and category
// names for the browse surface.
type ProductListing struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Price        float64   `db:"price" json:"price"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	Featured     bool      `db:"featured" json:"featured"`
	InStock      bool      `db:"in_stock" json:"in_stock"`
	ArtisanID    uuid.UUID `db:"artisan_id" json:"artisan_id"`
	ArtisanName  string    `db:"artisan_name" json:"artisan_name"`
	CategoryName string    `db:"category_name" json:"category_name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
