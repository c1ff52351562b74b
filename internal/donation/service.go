package donation

import (
	"context"
	"strings"

	"sustainsports-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PromoPrefix is the reward-code prefix the checkout pricing engine honors.
const PromoPrefix = "ECO-REWARD-"

type Service interface {
	Submit(ctx context.Context, userID, itemName, itemDescription string) (*Donation, error)
	ListMine(ctx context.Context, userID string) ([]Donation, error)
	ListAll(ctx context.Context) ([]Donation, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Donation, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, userID, itemName, itemDescription string) (*Donation, error) {
	if strings.TrimSpace(itemName) == "" || strings.TrimSpace(itemDescription) == "" {
		return nil, ErrMissingFields
	}

	return s.repo.Create(ctx, Donation{
		UserID:          userID,
		ItemName:        strings.TrimSpace(itemName),
		ItemDescription: strings.TrimSpace(itemDescription),
	})
}

func (s *service) ListMine(ctx context.Context, userID string) ([]Donation, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]Donation, error) {
	return s.repo.GetAllWithUsers(ctx)
}

// UpdateStatus moves a donation through its review states. The enum is
// validated before any mutation; approving mints a reward promo code once and
// keeps it on later status changes.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Donation, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var promo *string
	if status == StatusApproved && d.PromoCode == nil {
		code := mintPromoCode()
		promo = &code
		logger.FromCtx(ctx).Info("promo code minted",
			zap.String("donation_id", id),
			zap.String("promo_code", code),
		)
	}

	if err := s.repo.UpdateStatus(ctx, id, status, promo); err != nil {
		return nil, err
	}

	d.Status = status
	if promo != nil {
		d.PromoCode = promo
	}
	return d, nil
}

func mintPromoCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:4]
	return PromoPrefix + suffix
}
