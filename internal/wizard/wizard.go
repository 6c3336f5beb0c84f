package wizard

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/horizontravels/booking/internal/domain"
)

// Step is the wizard's position in the booking flow.
type Step int

const (
	// StepClosed is the zero value: no booking in progress.
	StepClosed Step = iota
	StepDetails
	StepPayment
	StepConfirmation
)

var (
	ErrNoItemSelected = errors.New("no catalog item selected")
	ErrWrongStep      = errors.New("operation not valid at this step")
)

// Submission is everything collected across the wizard's steps.
type Submission struct {
	Item         domain.Item
	CustomerName string
	Email        string
	Card         domain.CardDetails
	Amount       int64
}

// Receipt is what a successful submission hands back for display.
type Receipt struct {
	BookingID string
	Message   string
}

// BookingAPI is the server boundary the wizard submits through.
type BookingAPI interface {
	CreateBooking(ctx context.Context, sub Submission) (Receipt, error)
}

type detailsForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

var validate = validator.New()

// Wizard drives the details -> payment -> confirmation flow for one selected
// catalog item. A failed submission keeps the wizard at the payment step
// with the failure message attached; closing discards everything.
type Wizard struct {
	api BookingAPI

	mu        sync.Mutex
	step      Step
	item      domain.Item
	name      string
	email     string
	card      domain.CardDetails
	inFlight  bool
	bookingID string
	lastError string
}

func New(api BookingAPI) *Wizard {
	return &Wizard{api: api}
}

// Start opens the wizard for an item, resetting any previous state.
func (w *Wizard) Start(item domain.Item) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if item.ID == 0 {
		return ErrNoItemSelected
	}
	w.reset()
	w.item = item
	w.step = StepDetails
	return nil
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// EnterDetails records the customer's name and email and advances to the
// payment step. The check is presence only; there is no server call here.
func (w *Wizard) EnterDetails(name, email string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepDetails {
		return ErrWrongStep
	}
	if err := validate.Struct(detailsForm{Name: name, Email: email}); err != nil {
		return domain.NewValidationError("Name and email are required.")
	}
	w.name = name
	w.email = email
	w.step = StepPayment
	return nil
}

// Back returns from payment to details. Form fields persist.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepPayment {
		return ErrWrongStep
	}
	if w.inFlight {
		return domain.ErrSubmitInFlight
	}
	w.step = StepDetails
	return nil
}

// Submit sends the collected booking to the server. Only one submission may
// be outstanding; a second Submit while the first is unresolved fails with
// ErrSubmitInFlight and is never dispatched. On success the wizard moves to
// confirmation; on failure it stays at payment with the error attached so
// the customer can retry.
func (w *Wizard) Submit(ctx context.Context, card domain.CardDetails) (Receipt, error) {
	w.mu.Lock()
	if w.step != StepPayment {
		w.mu.Unlock()
		return Receipt{}, ErrWrongStep
	}
	if w.inFlight {
		w.mu.Unlock()
		return Receipt{}, domain.ErrSubmitInFlight
	}
	w.inFlight = true
	w.card = card
	sub := Submission{
		Item:         w.item,
		CustomerName: w.name,
		Email:        w.email,
		Card:         card,
		Amount:       w.item.Price,
	}
	w.mu.Unlock()

	receipt, err := w.api.CreateBooking(ctx, sub)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false
	if w.step != StepPayment {
		// Closed while the request was in flight; the outcome is reported
		// but no state survives.
		return receipt, err
	}
	if err != nil {
		w.lastError = err.Error()
		return Receipt{}, err
	}
	w.bookingID = receipt.BookingID
	w.lastError = ""
	w.step = StepConfirmation
	return receipt, nil
}

// Close abandons the flow and discards all in-progress form data. Nothing
// partial is ever persisted server-side.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

// BookingID returns the confirmed booking's id, empty until confirmation.
func (w *Wizard) BookingID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bookingID
}

// LastError returns the message of the most recent failed submission.
func (w *Wizard) LastError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastError
}

// Details returns the form fields as currently held, so a Back transition
// can re-render them.
func (w *Wizard) Details() (name, email string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.name, w.email
}

func (w *Wizard) Item() domain.Item {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.item
}

func (w *Wizard) reset() {
	w.step = StepClosed
	w.item = domain.Item{}
	w.name = ""
	w.email = ""
	w.card = domain.CardDetails{}
	w.inFlight = false
	w.bookingID = ""
	w.lastError = ""
}
