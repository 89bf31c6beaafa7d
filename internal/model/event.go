package model

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
	Location    string    `db:"location" json:"location"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	Featured    bool      `db:"featured" json:"featured"`
	ArtisanID   uuid.UUID `db:"artisan_id" json:"artisan_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
