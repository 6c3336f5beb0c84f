package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/horizontravels/booking/internal/domain"
	"github.com/horizontravels/booking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	ItemType      string      `json:"itemType"`
	DestinationID int64       `json:"destinationId"`
	CustomerName  string      `json:"customerName"`
	Email         string      `json:"email"`
	CardDetails   cardDetails `json:"cardDetails"`
	Amount        int64       `json:"amount"`
}

type cardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// bookingResult is the envelope the storefront client expects on every
// mutating call.
type bookingResult struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Message   string `json:"message"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, bookingResult{Success: false, Message: "Failed to load bookings."})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bookingResult{Success: false, Message: "Missing required fields."})
		return
	}

	created, err := h.service.SubmitBooking(c.Request.Context(), booking.SubmitBookingInput{
		ItemKind:     domain.ItemKind(req.ItemType),
		ItemID:       req.DestinationID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Card: domain.CardDetails{
			Number: req.CardDetails.Number,
			Expiry: req.CardDetails.Expiry,
			CVV:    req.CardDetails.CVV,
		},
		Amount: req.Amount,
	})
	if err != nil {
		status, message := submitErrorResponse(err)
		c.JSON(status, bookingResult{Success: false, Message: message})
		return
	}

	c.JSON(http.StatusOK, bookingResult{
		Success:   true,
		BookingID: created.ID,
		Message:   "Payment processed successfully. Your booking is confirmed!",
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.CancelBooking(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, bookingResult{Success: false, Message: "Booking not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, bookingResult{Success: false, Message: "Failed to cancel booking."})
		return
	}
	c.JSON(http.StatusOK, bookingResult{Success: true, Message: "Booking cancelled successfully."})
}

// submitErrorResponse maps a submission failure onto a status code and a
// message safe to show the customer.
func submitErrorResponse(err error) (int, string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Reason
	case errors.Is(err, domain.ErrPaymentTimeout):
		return http.StatusGatewayTimeout, "Payment processing timed out. Please try again."
	default:
		return http.StatusInternalServerError, "Payment failed. Please try again."
	}
}
