package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	repo "handcrafted-haven/internal/repository"
)

func newCategoryRepo(t *testing.T) (repo.CategoryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return repo.NewPostgresCategoryRepository(sqlxDB), mock, func() { db.Close() }
}

func TestPostgresCategoryRepository_List_EmptyIsNotNil(t *testing.T) {
	r, mock, closeDB := newCategoryRepo(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories ORDER BY name ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image_url"}))

	categories, err := r.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, categories)
	require.Empty(t, categories)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCategoryRepository_FindByName_ExactCaseOnly(t *testing.T) {
	r, mock, closeDB := newCategoryRepo(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE name = $1`)).
		WithArgs("ceramics").
		WillReturnError(sql.ErrNoRows)

	category, err := r.FindByName(context.Background(), "ceramics")
	require.NoError(t, err)
	require.Nil(t, category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCategoryRepository_FindByID_Found(t *testing.T) {
	r, mock, closeDB := newCategoryRepo(t)
	defer closeDB()

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image_url"}).AddRow(id, "Ceramics", nil))

	category, err := r.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, category)
	require.Equal(t, "Ceramics", category.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
