package payment

import (
	"context"
	"time"

	"github.com/horizontravels/booking/internal/domain"
)

// Processor simulates the round trip to an external payment gateway. The
// configured delay stands in for network latency; it suspends on the timer
// rather than sleeping, so it never holds up unrelated requests and it
// honors cancellation.
type Processor struct {
	delay time.Duration
}

func NewProcessor(delay time.Duration) *Processor {
	return &Processor{delay: delay}
}

// Charge waits out the simulated gateway latency. It never declines a card:
// card acceptance is decided by the booking service's own checks, matching
// the storefront's demo gateway.
func (p *Processor) Charge(ctx context.Context, card domain.CardDetails, amount int64) error {
	if p.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return domain.ErrPaymentTimeout
		}
		return ctx.Err()
	}
}
