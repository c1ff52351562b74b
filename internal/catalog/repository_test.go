package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{
	"id", "name", "price", "original_price", "category_id", "category_name",
	"description", "full_description", "image", "images", "eco_tag",
	"in_stock", "rating", "review_count", "features", "created_at", "updated_at",
}

func productRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(productCols).AddRow(
		"p1", "Bamboo Yoga Mat", 49.99, 59.99, "c1", "Yoga",
		"Natural rubber base", "Full details", "/images/mat.jpg", "{/images/mat.jpg}",
		"Biodegradable", true, 4.8, 12, "{Non-slip,Recyclable}", now, now,
	)
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* FROM products p\s+JOIN categories c ON c.id = p.category_id\s+ORDER BY p.created_at DESC`).
			WillReturnRows(productRow(time.Now()))

		products, err := repo.GetAll(ctx)
		assert.NoError(t, err)
		if assert.Len(t, products, 1) {
			p := products[0]
			assert.Equal(t, "Bamboo Yoga Mat", p.Name)
			assert.Equal(t, "Yoga", p.CategoryName)
			require.NotNil(t, p.OriginalPrice)
			assert.Equal(t, 59.99, *p.OriginalPrice)
			assert.Equal(t, []string{"Non-slip", "Recyclable"}, []string(p.Features))
		}
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .*`).WillReturnError(errors.New("db error"))
		_, err = repo.GetAll(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* WHERE p.id = \$1`).
			WithArgs("p1").
			WillReturnRows(productRow(time.Now()))

		p, err := repo.GetByID(ctx, "p1")
		assert.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .* WHERE p.id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(productCols))

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(`(?s)INSERT INTO products .* RETURNING id, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("p-new", now, now))

	created, err := repo.Create(context.Background(), Product{
		Name:       "Sample Name",
		CategoryID: "c1",
		Images:     []string{"/images/sample.jpg"},
		Features:   []string{"Feature 1", "Feature 2"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "p-new", created.ID)
}

func TestRepository_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`(?s)UPDATE products SET .* WHERE id = \$14`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Update(context.Background(), Product{ID: "p1", Name: "Renamed"})
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`(?s)UPDATE products SET .*`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Update(context.Background(), Product{ID: "missing"})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), "p1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrProductNotFound)
	})
}

func TestRepository_Categories(t *testing.T) {
	ctx := context.Background()

	t.Run("GetCategories", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, name FROM categories ORDER BY name`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
				AddRow("c1", "Yoga").
				AddRow("c2", "Running"))

		categories, err := repo.GetCategories(ctx)
		assert.NoError(t, err)
		assert.Len(t, categories, 2)
	})

	t.Run("FirstCategory_Empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, name FROM categories ORDER BY created_at LIMIT 1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err = repo.FirstCategory(ctx)
		assert.ErrorIs(t, err, ErrNoCategories)
	})
}

func TestRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}
