package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/horizontravels/booking/internal/domain"
)

func newBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		ItemKind:     domain.ItemKindDestination,
		ItemID:       1,
		CustomerName: "Jane Doe",
		Email:        "jane@x.com",
		Amount:       1200,
		Status:       domain.BookingStatusConfirmed,
		CreatedAt:    time.Now(),
	}
}

func TestMemBookingRepository_InsertAndGet(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, newBooking("BK-1")))

	got, err := repo.Get(ctx, "BK-1")
	assert.NoError(t, err)
	assert.Equal(t, "BK-1", got.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}

func TestMemBookingRepository_Get_NotFound(t *testing.T) {
	repo := NewBookingRepository()

	got, err := repo.Get(context.Background(), "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestMemBookingRepository_List_CreationOrder(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		assert.NoError(t, repo.Insert(ctx, newBooking(fmt.Sprintf("BK-%d", i))))
	}

	bookings, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 5)
	for i, b := range bookings {
		assert.Equal(t, fmt.Sprintf("BK-%d", i+1), b.ID)
	}
}

func TestMemBookingRepository_Delete(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, newBooking("BK-1")))
	assert.NoError(t, repo.Insert(ctx, newBooking("BK-2")))

	assert.NoError(t, repo.Delete(ctx, "BK-1"))

	bookings, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, "BK-2", bookings[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, "BK-1"), domain.ErrBookingNotFound)
}

func TestMemBookingRepository_StoredCopyIsDetached(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	b := newBooking("BK-1")
	assert.NoError(t, repo.Insert(ctx, b))

	b.CustomerName = "changed after insert"

	got, err := repo.Get(ctx, "BK-1")
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.CustomerName)
}

// Concurrent inserts, deletes and lists must never leave the store torn.
func TestMemBookingRepository_ConcurrentAccess(t *testing.T) {
	repo := NewBookingRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("BK-%d", n)
			_ = repo.Insert(ctx, newBooking(id))
			if n%2 == 0 {
				_ = repo.Delete(ctx, id)
			}
			_, _ = repo.List(ctx)
		}(i)
	}
	wg.Wait()

	bookings, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 25)
}
