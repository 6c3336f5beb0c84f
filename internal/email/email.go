package email

import (
	"context"
	"log"

	"github.com/horizontravels/booking/internal/kafka"
)

// Sender delivers booking receipts. The demo stack has no real mail
// gateway, so delivery is a log line.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_cancelled":
		log.Printf("send cancellation notice to %s for booking %s", event.Email, event.BookingID)
	default:
		log.Printf("send receipt to %s for booking %s (%s %d, $%d)", event.Email, event.BookingID, event.ItemKind, event.ItemID, event.Amount)
	}
	return nil
}
