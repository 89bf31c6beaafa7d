package model

import "github.com/google/uuid"

type Category struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	ImageURL *string   `db:"image_url" json:"image_url,omitempty"`
}
