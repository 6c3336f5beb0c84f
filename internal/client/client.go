package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/horizontravels/booking/internal/domain"
)

// Client talks to the booking API the way the storefront's browser code
// does: plain JSON over HTTP, decoding the success/message envelope on
// mutating calls.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type CreateBookingRequest struct {
	ItemType      string             `json:"itemType,omitempty"`
	DestinationID int64              `json:"destinationId"`
	CustomerName  string             `json:"customerName"`
	Email         string             `json:"email"`
	CardDetails   domain.CardDetails `json:"cardDetails"`
	Amount        int64              `json:"amount"`
}

type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
}

type resultEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) FetchDestinations(ctx context.Context) ([]domain.Destination, error) {
	var out []domain.Destination
	return out, c.getJSON(ctx, "/api/destinations", &out)
}

func (c *Client) FetchRentals(ctx context.Context) ([]domain.CarRental, error) {
	var out []domain.CarRental
	return out, c.getJSON(ctx, "/api/rentals", &out)
}

func (c *Client) FetchTours(ctx context.Context) ([]domain.Tour, error) {
	var out []domain.Tour
	return out, c.getJSON(ctx, "/api/tours", &out)
}

func (c *Client) FetchGuides(ctx context.Context) ([]domain.TravelGuide, error) {
	var out []domain.TravelGuide
	return out, c.getJSON(ctx, "/api/guides", &out)
}

func (c *Client) FetchBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	return out, c.getJSON(ctx, "/api/bookings", &out)
}

// CreateBooking submits a booking and maps failure envelopes back onto the
// domain error taxonomy so callers can retry on the right condition.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (CreateBookingResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return CreateBookingResponse{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return CreateBookingResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return CreateBookingResponse{}, fmt.Errorf("create booking: %w", err)
	}
	defer resp.Body.Close()

	var out CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return CreateBookingResponse{}, fmt.Errorf("decode response: %w", err)
	}
	if !out.Success {
		return CreateBookingResponse{}, mapFailure(resp.StatusCode, out.Message)
	}
	return out, nil
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/bookings/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	defer resp.Body.Close()

	var out resultEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !out.Success {
		return mapFailure(resp.StatusCode, out.Message)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mapFailure(status int, message string) error {
	switch status {
	case http.StatusBadRequest:
		return domain.NewValidationError(message)
	case http.StatusNotFound:
		return domain.ErrBookingNotFound
	case http.StatusGatewayTimeout:
		return domain.ErrPaymentTimeout
	default:
		if message == "" {
			message = "request failed"
		}
		return fmt.Errorf("booking api: %s", message)
	}
}
