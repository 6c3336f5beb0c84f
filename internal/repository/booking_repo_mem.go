package repository

import (
	"context"
	"sync"

	"github.com/horizontravels/booking/internal/domain"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// MemBookingRepository keeps confirmed bookings in process memory. The map
// is the lookup index, the slice preserves creation order for listing.
// Mutations are serialized by the mutex so a List never observes a booking
// half inserted or half removed.
type MemBookingRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Booking
	order []string
}

func NewBookingRepository() BookingRepository {
	return &MemBookingRepository{
		byID: make(map[string]*domain.Booking),
	}
}

func (r *MemBookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *booking
	r.byID[booking.ID] = &stored
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *MemBookingRepository) Get(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	found := *b
	return &found, nil
}

func (r *MemBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]domain.Booking, 0, len(r.order))
	for _, id := range r.order {
		if b, ok := r.byID[id]; ok {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}

func (r *MemBookingRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ BookingRepository = (*MemBookingRepository)(nil)
