package order

import (
	"context"
	"sort"
	"strings"
	"sync"

	"sustainsports-be/internal/localstore"
	"sustainsports-be/internal/logger"

	"go.uber.org/zap"
)

const storageKey = "sustainSportsUserOrders"

// Ledger is the append-only order list for this installation. Records are
// created at checkout, mutated only by status changes, never deleted.
type Ledger interface {
	Append(ctx context.Context, o Order) error
	ListByUser(ctx context.Context, userKey string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	GetByIDAndUser(ctx context.Context, id, userKey string) (*Order, error)
	Cancel(ctx context.Context, id, userKey, reason string) (*Order, error)
	AdminSetStatus(ctx context.Context, id string, status Status) (*Order, error)
}

// ledger persists the whole order list as one document. Writes replace the
// document (last-write-wins across processes).
type ledger struct {
	mu    sync.Mutex
	store localstore.Store
}

func NewLedger(store localstore.Store) Ledger {
	return &ledger{store: store}
}

func (l *ledger) load() ([]Order, error) {
	var orders []Order
	if _, err := l.store.Get(storageKey, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Append prepends the new record so the ledger stays newest first.
func (l *ledger) Append(ctx context.Context, o Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load()
	if err != nil {
		return err
	}

	updated := append([]Order{o}, orders...)
	if err := l.store.Set(storageKey, updated); err != nil {
		logger.FromCtx(ctx).Error("failed to persist order ledger",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (l *ledger) ListByUser(ctx context.Context, userKey string) ([]Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load()
	if err != nil {
		return nil, err
	}

	mine := make([]Order, 0)
	for _, o := range orders {
		if strings.EqualFold(o.UserKey, userKey) {
			mine = append(mine, o)
		}
	}

	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine, nil
}

func (l *ledger) ListAll(ctx context.Context) ([]Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders, err := l.load()
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

// GetByIDAndUser treats an order owned by another user as missing, so
// existence never leaks through a permission error.
func (l *ledger) GetByIDAndUser(ctx context.Context, id, userKey string) (*Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.find(id, userKey)
}

func (l *ledger) find(id, userKey string) (*Order, error) {
	orders, err := l.load()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if userKey != "" && !strings.EqualFold(orders[i].UserKey, userKey) {
			return nil, ErrNotFound
		}
		return &orders[i], nil
	}
	return nil, ErrNotFound
}

// Cancel is the user-side transition; it always requires a reason.
func (l *ledger) Cancel(ctx context.Context, id, userKey, reason string) (*Order, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.mutate(ctx, id, userKey, func(o *Order) error {
		if !CanTransition(o.Status, StatusCancelled) {
			return ErrInvalidTransition
		}
		o.Status = StatusCancelled
		o.CancellationReason = strings.TrimSpace(reason)
		return nil
	})
}

// AdminSetStatus moves an order through the state machine without the
// cancellation-reason requirement.
func (l *ledger) AdminSetStatus(ctx context.Context, id string, status Status) (*Order, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.mutate(ctx, id, "", func(o *Order) error {
		if !CanTransition(o.Status, status) {
			return ErrInvalidTransition
		}
		o.Status = status
		return nil
	})
}

func (l *ledger) mutate(ctx context.Context, id, userKey string, fn func(*Order) error) (*Order, error) {
	orders, err := l.load()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if userKey != "" && !strings.EqualFold(orders[i].UserKey, userKey) {
			return nil, ErrNotFound
		}

		if err := fn(&orders[i]); err != nil {
			return nil, err
		}
		if err := l.store.Set(storageKey, orders); err != nil {
			logger.FromCtx(ctx).Error("failed to persist order ledger",
				zap.String("order_id", id),
				zap.Error(err),
			)
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, ErrNotFound
}
