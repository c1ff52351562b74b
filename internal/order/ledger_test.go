package order

import (
	"context"
	"testing"
	"time"

	"sustainsports-be/internal/cart"
	"sustainsports-be/internal/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id, userKey string, createdAt time.Time) Order {
	return Order{
		ID:        id,
		UserKey:   userKey,
		CreatedAt: createdAt,
		Status:    StatusProcessing,
		Items: []cart.Line{
			{ProductID: "p1", Name: "Bamboo Yoga Mat", Price: 49.99, Quantity: 2},
		},
		Total:          91.8,
		ShippingMethod: "Free Shipping",
		PaymentMethod:  "Card ending in 4242",
		TrackingNumber: "1Z1234567890123456",
	}
}

func TestLedger_ListByUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(localstore.NewMemStore())

	base := time.Now()
	require.NoError(t, l.Append(ctx, testOrder("SS-A", "alice@example.com", base.Add(-2*time.Hour))))
	require.NoError(t, l.Append(ctx, testOrder("SS-B", "bob@example.com", base.Add(-time.Hour))))
	require.NoError(t, l.Append(ctx, testOrder("SS-C", "alice@example.com", base)))

	mine, err := l.ListByUser(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "SS-C", mine[0].ID)
	assert.Equal(t, "SS-A", mine[1].ID)

	empty, err := l.ListByUser(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLedger_GetByIDAndUser(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(localstore.NewMemStore())
	require.NoError(t, l.Append(ctx, testOrder("SS-A", "alice@example.com", time.Now())))

	t.Run("OwnerSeesOrder", func(t *testing.T) {
		o, err := l.GetByIDAndUser(ctx, "SS-A", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "SS-A", o.ID)
	})

	t.Run("ForeignOrderIsNotFound", func(t *testing.T) {
		// ownership failures must look identical to a missing order
		_, err := l.GetByIDAndUser(ctx, "SS-A", "bob@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("MissingOrder", func(t *testing.T) {
		_, err := l.GetByIDAndUser(ctx, "SS-X", "alice@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLedger_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresReason", func(t *testing.T) {
		l := NewLedger(localstore.NewMemStore())
		require.NoError(t, l.Append(ctx, testOrder("SS-A", "alice@example.com", time.Now())))

		_, err := l.Cancel(ctx, "SS-A", "alice@example.com", "  ")
		assert.ErrorIs(t, err, ErrReasonRequired)
	})

	t.Run("AttachesReason", func(t *testing.T) {
		l := NewLedger(localstore.NewMemStore())
		require.NoError(t, l.Append(ctx, testOrder("SS-A", "alice@example.com", time.Now())))

		o, err := l.Cancel(ctx, "SS-A", "alice@example.com", "ordered by mistake")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, o.Status)
		assert.Equal(t, "ordered by mistake", o.CancellationReason)
	})

	t.Run("TerminalOrderCannotBeCancelled", func(t *testing.T) {
		l := NewLedger(localstore.NewMemStore())
		delivered := testOrder("SS-A", "alice@example.com", time.Now())
		delivered.Status = StatusDelivered
		require.NoError(t, l.Append(ctx, delivered))

		_, err := l.Cancel(ctx, "SS-A", "alice@example.com", "too late")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("ForeignOrderIsNotFound", func(t *testing.T) {
		l := NewLedger(localstore.NewMemStore())
		require.NoError(t, l.Append(ctx, testOrder("SS-A", "alice@example.com", time.Now())))

		_, err := l.Cancel(ctx, "SS-A", "bob@example.com", "not mine")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLedger_AdminSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("WalksTheStateMachine", func(t *testing.T) {
		l := NewLedger(localstore.NewMemStore())
		require.NoError(t, l.Append(ctx, testOrder("SS-A", "alice@example.com", time.Now())))

		o, err := l.AdminSetStatus(ctx, "SS-A", StatusShipped)
		require.NoError(t, err)
		assert.Equal(t, StatusShipped, o.Status)

		o, err = l.AdminSetStatus(ctx, "SS-A", StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, StatusDelivered, o.Status)

		_, err = l.AdminSetStatus(ctx, "SS-A", StatusShipped)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("CancelWithoutReason", func(t *testing.T) {
		// admin-side edits bypass the reason requirement
		l := NewLedger(localstore.NewMemStore())
		require.NoError(t, l.Append(ctx, testOrder("SS-A", "alice@example.com", time.Now())))

		o, err := l.AdminSetStatus(ctx, "SS-A", StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, o.Status)
		assert.Empty(t, o.CancellationReason)
	})

	t.Run("RejectsUnknownStatus", func(t *testing.T) {
		l := NewLedger(localstore.NewMemStore())
		_, err := l.AdminSetStatus(ctx, "SS-A", Status("Refunded"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestLedger_FileRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	l := NewLedger(store)
	o := testOrder("SS-A", "alice@example.com", time.Now().UTC().Truncate(time.Millisecond))
	require.NoError(t, l.Append(ctx, o))

	// a fresh ledger over the same store must reproduce the list field for
	// field, including numeric precision of totals
	reloaded := NewLedger(store)
	orders, err := reloaded.ListByUser(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, o, orders[0])
}
