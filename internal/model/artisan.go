package model

import (
	"time"

	"github.com/google/uuid"
)

type Artisan struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Bio          *string   `db:"bio" json:"bio,omitempty"`
	Location     *string   `db:"location" json:"location,omitempty"`
	Website      *string   `db:"website" json:"website,omitempty"`
	AvatarURL    *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// ArtisanSummary is the public directory row: profile fields plus how
// many products and events the artisan currently has.
type ArtisanSummary struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Bio          *string   `db:"bio" json:"bio,omitempty"`
	Location     *string   `db:"location" json:"location,omitempty"`
	AvatarURL    *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	ProductCount int       `db:"product_count" json:"product_count"`
	EventCount   int       `db:"event_count" json:"event_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
