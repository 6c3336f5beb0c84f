package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/horizontravels/booking/internal/domain"
	"github.com/horizontravels/booking/internal/kafka"
	"github.com/horizontravels/booking/internal/repository"
)

const minCardNumberLength = 16

type BookingUseCase interface {
	SubmitBooking(ctx context.Context, input SubmitBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

// ItemResolver maps an item reference onto the catalog's common projection.
type ItemResolver interface {
	Resolve(kind domain.ItemKind, id int64) (domain.Item, bool)
}

// Charger models the external payment gateway round trip.
type Charger interface {
	Charge(ctx context.Context, card domain.CardDetails, amount int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	catalog            ItemResolver
	charger            Charger
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	paymentTimeout     time.Duration
}

type SubmitBookingInput struct {
	ItemKind     domain.ItemKind    `json:"itemType"`
	ItemID       int64              `json:"destinationId"`
	CustomerName string             `json:"customerName"`
	Email        string             `json:"email"`
	Card         domain.CardDetails `json:"cardDetails"`
	Amount       int64              `json:"amount"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	catalog ItemResolver,
	charger Charger,
	producer Producer,
	bookingTopic string,
	paymentTimeout time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:       bookings,
		catalog:        catalog,
		charger:        charger,
		producer:       producer,
		bookingTopic:   bookingTopic,
		paymentTimeout: paymentTimeout,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// SubmitBooking runs the simulated payment round trip, validates the
// submission and appends exactly one confirmed record on success. A failed
// submission leaves the store untouched.
func (s *BookingService) SubmitBooking(ctx context.Context, input SubmitBookingInput) (*domain.Booking, error) {
	if s.charger != nil {
		chargeCtx := ctx
		if s.paymentTimeout > 0 {
			var cancel context.CancelFunc
			chargeCtx, cancel = context.WithTimeout(ctx, s.paymentTimeout)
			defer cancel()
		}
		if err := s.charger.Charge(chargeCtx, input.Card, input.Amount); err != nil {
			return nil, err
		}
	}

	// The gateway answers before the fields are checked, same as the
	// storefront it replaces.
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	kind := input.ItemKind
	if kind == "" {
		kind = domain.ItemKindDestination
	}
	if !kind.Valid() {
		return nil, domain.NewValidationError("Unknown item type.")
	}

	item, ok := s.catalog.Resolve(kind, input.ItemID)
	if !ok {
		return nil, domain.NewValidationError("Unknown catalog item.")
	}

	booking := &domain.Booking{
		ID:           "BK-" + uuid.NewString(),
		ItemKind:     item.Kind,
		ItemID:       item.ID,
		CustomerName: input.CustomerName,
		Email:        input.Email,
		// The catalog price is authoritative; the submitted amount is only
		// presence-checked so a tampered client cannot set its own price.
		Amount:    item.Price,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}

	log.Printf("[PAYMENT SUCCESS] Booking %s for %d by %s", booking.ID, booking.Amount, booking.CustomerName)

	if err := s.publish(ctx, "booking_confirmed", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed for %s: %v", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	cancelled, err := s.bookings.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.publish(ctx, "booking_cancelled", cancelled); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled for %s: %v", id, err)
	}
	return nil
}

func validateSubmission(input SubmitBookingInput) error {
	if input.ItemID == 0 ||
		strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Card.Number) == "" ||
		input.Amount == 0 {
		return domain.NewValidationError("Missing required fields.")
	}
	if len(input.Card.Number) < minCardNumberLength {
		return domain.NewValidationError("Invalid card number.")
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.NewBookingEvent(eventType, booking)
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
