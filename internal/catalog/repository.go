package catalog

import (
	"context"
	"database/sql"

	"sustainsports-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	GetCategories(ctx context.Context) ([]Category, error)
	FirstCategory(ctx context.Context) (*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id, p.name, p.price, p.original_price, p.category_id, c.name,
	p.description, p.full_description, p.image, p.images, p.eco_tag,
	p.in_stock, p.rating, p.review_count, p.features, p.created_at, p.updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (*Product, error) {
	var p Product
	var originalPrice sql.NullFloat64

	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &originalPrice, &p.CategoryID, &p.CategoryName,
		&p.Description, &p.FullDescription, &p.Image, (*pq.StringArray)(&p.Images),
		&p.EcoTag, &p.InStock, &p.Rating, &p.ReviewCount,
		(*pq.StringArray)(&p.Features), &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if originalPrice.Valid {
		p.OriginalPrice = &originalPrice.Float64
	}
	return &p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC`)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to list products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT`+productColumns+`
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`, id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, p Product) (*Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (
			name, price, original_price, category_id, description,
			full_description, image, images, eco_tag, in_stock,
			rating, review_count, features
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		p.Name, p.Price, nullFloat(p.OriginalPrice), p.CategoryID, p.Description,
		p.FullDescription, p.Image, pq.StringArray(p.Images), p.EcoTag, p.InStock,
		p.Rating, p.ReviewCount, pq.StringArray(p.Features),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product",
			zap.String("name", p.Name),
			zap.Error(err),
		)
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET
			name = $1, price = $2, original_price = $3, category_id = $4,
			description = $5, full_description = $6, image = $7, images = $8,
			eco_tag = $9, in_stock = $10, rating = $11, review_count = $12,
			features = $13, updated_at = NOW()
		WHERE id = $14`,
		p.Name, p.Price, nullFloat(p.OriginalPrice), p.CategoryID,
		p.Description, p.FullDescription, p.Image, pq.StringArray(p.Images),
		p.EcoTag, p.InStock, p.Rating, p.ReviewCount,
		pq.StringArray(p.Features), p.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func (r *repository) GetCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repository) FirstCategory(ctx context.Context) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM categories ORDER BY created_at LIMIT 1`,
	).Scan(&c.ID, &c.Name)

	if err == sql.ErrNoRows {
		return nil, ErrNoCategories
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
