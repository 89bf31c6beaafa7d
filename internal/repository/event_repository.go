package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"handcrafted-haven/internal/model"
)

type EventRepository interface {
	ListUpcoming(ctx context.Context, limit int) ([]model.Event, error)
}

type postgresEventRepository struct {
	db *sqlx.DB
}

func NewPostgresEventRepository(db *sqlx.DB) EventRepository {
	return &postgresEventRepository{db: db}
}

func (r *postgresEventRepository) ListUpcoming(ctx context.Context, limit int) ([]model.Event, error) {
	var events []model.Event
	query := `
		SELECT id, title, description, date, location, image_url, featured, artisan_id, created_at
		FROM events
		WHERE date >= now()
		ORDER BY date ASC
		LIMIT $1
	`
	err := r.db.SelectContext(ctx, &events, query, limit)
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = []model.Event{}
	}

	return events, nil
}
