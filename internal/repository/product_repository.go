package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"handcrafted-haven/internal/model"
)

// ProductFilters carries the recognized browse options. Zero values mean
// "not filtered on". MinPrice above MaxPrice simply matches nothing.
type ProductFilters struct {
	Category  string
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string
	SortOrder string
}

var sortColumns = map[string]string{
	"name":      "p.name",
	"price":     "p.price",
	"createdAt": "p.created_at",
}

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProductListing, error)
	FindOwned(ctx context.Context, id, artisanID uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filters ProductFilters) ([]model.ProductListing, error)
	ListByArtisan(ctx context.Context, artisanID uuid.UUID) ([]model.ProductListing, error)
	ListFeatured(ctx context.Context, limit int) ([]model.ProductListing, error)
	Update(ctx context.Context, id, artisanID uuid.UUID, product *model.Product) (int64, error)
	Delete(ctx context.Context, id, artisanID uuid.UUID) (int64, error)
}

type postgresProductRepository struct {
	db *sqlx.DB
}

func NewPostgresProductRepository(db *sqlx.DB) ProductRepository {
	return &postgresProductRepository{db: db}
}

const productListingSelect = `
		SELECT
			p.id,
			p.name,
			p.description,
			p.price,
			p.image_url,
			p.featured,
			p.in_stock,
			p.artisan_id,
			COALESCE(a.name, '') AS artisan_name,
			COALESCE(c.name, '') AS category_name,
			p.created_at
		FROM products p
		LEFT JOIN artisans a ON p.artisan_id = a.id
		LEFT JOIN categories c ON p.category_id = c.id
	`

func (r *postgresProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		INSERT INTO products (name, description, price, image_url, featured, artisan_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, in_stock, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.Featured, product.ArtisanID, product.CategoryID,
	)
	err := row.Scan(&product.ID, &product.InStock, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *postgresProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductListing, error) {
	var product model.ProductListing
	query := productListingSelect + ` WHERE p.id = $1`
	err := r.db.GetContext(ctx, &product, query, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &product, nil
}

// FindOwned is scoped to the (id, artisan_id) pair so a missing product
// and somebody else's product read the same.
func (r *postgresProductRepository) FindOwned(ctx context.Context, id, artisanID uuid.UUID) (*model.Product, error) {
	var product model.Product
	query := `SELECT id, name, description, price, image_url, featured, in_stock, artisan_id, category_id, created_at, updated_at FROM products WHERE id = $1 AND artisan_id = $2`
	err := r.db.GetContext(ctx, &product, query, id, artisanID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &product, nil
}

func (r *postgresProductRepository) List(ctx context.Context, filters ProductFilters) ([]model.ProductListing, error) {
	query := productListingSelect + ` WHERE 1=1`

	args := []interface{}{}
	argID := 1
	if filters.Category != "" {
		query += fmt.Sprintf(" AND c.name = $%d", argID)
		args = append(args, filters.Category)
		argID++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.description ILIKE $%d)", argID, argID)
		args = append(args, "%"+filters.Search+"%")
		argID++
	}
	if filters.MinPrice != nil {
		query += fmt.Sprintf(" AND p.price >= $%d", argID)
		args = append(args, *filters.MinPrice)
		argID++
	}
	if filters.MaxPrice != nil {
		query += fmt.Sprintf(" AND p.price <= $%d", argID)
		args = append(args, *filters.MaxPrice)
		argID++
	}

	column, ok := sortColumns[filters.SortBy]
	if !ok {
		column = "p.created_at"
	}

	direction := "ASC"
	switch filters.SortOrder {
	case "asc":
		direction = "ASC"
	case "desc":
		direction = "DESC"
	default:
		if column == "p.created_at" {
			direction = "DESC"
		}
	}

	// Secondary key keeps the order stable among equal sort keys.
	query += fmt.Sprintf(" ORDER BY %s %s, p.id ASC", column, direction)

	var products []model.ProductListing
	err := r.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []model.ProductListing{}
	}

	return products, nil
}

func (r *postgresProductRepository) ListByArtisan(ctx context.Context, artisanID uuid.UUID) ([]model.ProductListing, error) {
	query := productListingSelect + ` WHERE p.artisan_id = $1 ORDER BY p.created_at DESC, p.id ASC`

	var products []model.ProductListing
	err := r.db.SelectContext(ctx, &products, query, artisanID)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []model.ProductListing{}
	}

	return products, nil
}

func (r *postgresProductRepository) ListFeatured(ctx context.Context, limit int) ([]model.ProductListing, error) {
	query := productListingSelect + ` WHERE p.featured = TRUE ORDER BY p.created_at DESC, p.id ASC LIMIT $1`

	var products []model.ProductListing
	err := r.db.SelectContext(ctx, &products, query, limit)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []model.ProductListing{}
	}

	return products, nil
}

// Update is conditional on ownership and reports the affected row count.
func (r *postgresProductRepository) Update(ctx context.Context, id, artisanID uuid.UUID, product *model.Product) (int64, error) {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, image_url = $4, featured = $5, category_id = $6, updated_at = now()
		WHERE id = $7 AND artisan_id = $8
	`
	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.Featured, product.CategoryID, id, artisanID,
	)

	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *postgresProductRepository) Delete(ctx context.Context, id, artisanID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1 AND artisan_id = $2`, id, artisanID)

	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
