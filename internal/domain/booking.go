package domain

import "time"

type BookingStatus string

const (
	// BookingStatusConfirmed is the only status a stored booking can carry:
	// a submission that fails validation never produces a record.
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type Booking struct {
	ID           string        `json:"id"`
	ItemKind     ItemKind      `json:"itemKind"`
	ItemID       int64         `json:"destinationId"`
	CustomerName string        `json:"customerName"`
	Email        string        `json:"email"`
	Amount       int64         `json:"amount"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"date"`
}

// CardDetails carries the simulated payment instrument. Only the number
// length is ever checked; nothing here is a real card.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}
