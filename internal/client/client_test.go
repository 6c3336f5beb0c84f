package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/horizontravels/booking/config"
	"github.com/horizontravels/booking/internal/bootstrap"
	"github.com/horizontravels/booking/internal/catalog"
	"github.com/horizontravels/booking/internal/domain"
	"github.com/horizontravels/booking/internal/payment"
	"github.com/horizontravels/booking/internal/repository"
	"github.com/horizontravels/booking/internal/service/booking"
)

// newTestServer runs the full API against the in-memory store with a
// zero-delay payment gateway.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cat := catalog.NewCatalog()
	repo := repository.NewBookingRepository()
	svc := booking.NewBookingService(repo, cat, payment.NewProcessor(0), nil, "", time.Second)

	srv := httptest.NewServer(bootstrap.NewRouter(cfg, cat, svc))
	t.Cleanup(srv.Close)
	return srv
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		DestinationID: 1,
		CustomerName:  "Jane Doe",
		Email:         "jane@x.com",
		CardDetails:   domain.CardDetails{Number: "4111111111111111", Expiry: "12/27", CVV: "123"},
		Amount:        1200,
	}
}

func TestClient_FetchCatalog(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	dests, err := c.FetchDestinations(ctx)
	assert.NoError(t, err)
	assert.Len(t, dests, 4)
	assert.Equal(t, "Santorini, Greece", dests[0].Name)

	rentals, err := c.FetchRentals(ctx)
	assert.NoError(t, err)
	assert.Len(t, rentals, 2)

	tours, err := c.FetchTours(ctx)
	assert.NoError(t, err)
	assert.Len(t, tours, 2)

	guides, err := c.FetchGuides(ctx)
	assert.NoError(t, err)
	assert.Len(t, guides, 2)
}

func TestClient_CreateListCancel(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	resp, err := c.CreateBooking(ctx, validRequest())
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.BookingID)

	bookings, err := c.FetchBookings(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, resp.BookingID, bookings[0].ID)
	assert.Equal(t, domain.BookingStatusConfirmed, bookings[0].Status)

	assert.NoError(t, c.CancelBooking(ctx, resp.BookingID))

	bookings, err = c.FetchBookings(ctx)
	assert.NoError(t, err)
	assert.Empty(t, bookings)

	assert.ErrorIs(t, c.CancelBooking(ctx, resp.BookingID), domain.ErrBookingNotFound)
}

func TestClient_CreateBooking_ShortCard(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	req := validRequest()
	req.CardDetails.Number = "123"

	_, err := c.CreateBooking(ctx, req)

	assert.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Invalid card number")

	bookings, err := c.FetchBookings(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 0)
}

func TestClient_CreateBooking_MissingFields(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)

	req := validRequest()
	req.Email = ""

	_, err := c.CreateBooking(context.Background(), req)

	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Missing required fields")
}

func TestClient_CreateBooking_RentalAndTour(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	rental := validRequest()
	rental.ItemType = string(domain.ItemKindRental)
	rental.DestinationID = 2
	rental.Amount = 95

	resp, err := c.CreateBooking(ctx, rental)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.BookingID)

	tour := validRequest()
	tour.ItemType = string(domain.ItemKindTour)
	tour.DestinationID = 1
	tour.Amount = 45

	resp, err = c.CreateBooking(ctx, tour)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.BookingID)

	bookings, err := c.FetchBookings(ctx)
	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	// Server derives the stored amount from the catalog.
	assert.Equal(t, int64(95), bookings[0].Amount)
	assert.Equal(t, int64(45), bookings[1].Amount)
}
