package donation

import (
	"context"
	"database/sql"

	"sustainsports-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, d Donation) (*Donation, error)
	GetByID(ctx context.Context, id string) (*Donation, error)
	GetAllWithUsers(ctx context.Context) ([]Donation, error)
	GetByUser(ctx context.Context, userID string) ([]Donation, error)
	UpdateStatus(ctx context.Context, id string, status Status, promoCode *string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d Donation) (*Donation, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO donations (user_id, item_name, item_description, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		d.UserID, d.ItemName, d.ItemDescription, StatusPending,
	).Scan(&d.ID, &d.CreatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert donation",
			zap.String("user_id", d.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	d.Status = StatusPending
	return &d, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Donation, error) {
	var d Donation
	var promo sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, item_name, item_description, status, promo_code, created_at
		 FROM donations WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.UserID, &d.ItemName, &d.ItemDescription, &d.Status, &promo, &d.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if promo.Valid {
		d.PromoCode = &promo.String
	}
	return &d, nil
}

func (r *repository) GetAllWithUsers(ctx context.Context) ([]Donation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.id, d.user_id, u.name, u.email, d.item_name, d.item_description,
		        d.status, d.promo_code, d.created_at
		 FROM donations d
		 JOIN users u ON u.id = d.user_id
		 ORDER BY d.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []Donation
	for rows.Next() {
		var d Donation
		var promo sql.NullString
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.UserName, &d.UserEmail, &d.ItemName,
			&d.ItemDescription, &d.Status, &promo, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		if promo.Valid {
			d.PromoCode = &promo.String
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *repository) GetByUser(ctx context.Context, userID string) ([]Donation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, item_name, item_description, status, promo_code, created_at
		 FROM donations WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donations []Donation
	for rows.Next() {
		var d Donation
		var promo sql.NullString
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.ItemName, &d.ItemDescription,
			&d.Status, &promo, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		if promo.Valid {
			d.PromoCode = &promo.String
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id string, status Status, promoCode *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE donations SET status = $1, promo_code = COALESCE($2, promo_code)
		 WHERE id = $3`,
		status, promoCode, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
