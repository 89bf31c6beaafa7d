package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"handcrafted-haven/internal/model"
)

type ArtisanRepository interface {
	Create(ctx context.Context, artisan *model.Artisan) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*model.Artisan, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Artisan, error)
	ListWithCounts(ctx context.Context) ([]model.ArtisanSummary, error)
}

type postgresArtisanRepository struct {
	db *sqlx.DB
}

func NewPostgresArtisanRepository(db *sqlx.DB) ArtisanRepository {
	return &postgresArtisanRepository{db: db}
}

func (r *postgresArtisanRepository) Create(ctx context.Context, artisan *model.Artisan) (uuid.UUID, error) {
	query := `INSERT INTO artisans (name, email, password_hash, bio, location, website) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var newID uuid.UUID
	err := r.db.QueryRowxContext(ctx, query,
		artisan.Name, artisan.Email, artisan.PasswordHash,
		artisan.Bio, artisan.Location, artisan.Website,
	).Scan(&newID)

	if err != nil {
		return uuid.Nil, err
	}

	return newID, nil
}

// FindByEmail returns (nil, nil) when no artisan has the email. Lookup
// by the unique key backs both the registration uniqueness check and
// the login path.
func (r *postgresArtisanRepository) FindByEmail(ctx context.Context, email string) (*model.Artisan, error) {
	var artisan model.Artisan
	query := `SELECT id, name, email, password_hash, bio, location, website, avatar_url, created_at, updated_at FROM artisans WHERE email = $1`
	err := r.db.GetContext(ctx, &artisan, query, email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &artisan, nil
}

func (r *postgresArtisanRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Artisan, error) {
	var artisan model.Artisan
	query := `SELECT id, name, email, password_hash, bio, location, website, avatar_url, created_at, updated_at FROM artisans WHERE id = $1`
	err := r.db.GetContext(ctx, &artisan, query, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &artisan, nil
}

func (r *postgresArtisanRepository) ListWithCounts(ctx context.Context) ([]model.ArtisanSummary, error) {
	var artisans []model.ArtisanSummary
	query := `
		SELECT
			a.id,
			a.name,
			a.bio,
			a.location,
			a.avatar_url,
			COUNT(DISTINCT p.id) AS product_count,
			COUNT(DISTINCT e.id) AS event_count,
			a.created_at
		FROM artisans a
		LEFT JOIN products p ON p.artisan_id = a.id
		LEFT JOIN events e ON e.artisan_id = a.id
		GROUP BY a.id
		ORDER BY a.created_at DESC
	`
	err := r.db.SelectContext(ctx, &artisans, query)
	if err != nil {
		return nil, err
	}

	if artisans == nil {
		artisans = []model.ArtisanSummary{}
	}

	return artisans, nil
}
