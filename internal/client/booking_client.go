package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

type BookingClient struct {
	baseURL    BaseURL
	httpClient *http.Client
}

func NewBookingClient(baseURL BaseURL, timeout time.Duration) *BookingClient {
	return &BookingClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

// GetBooking reads a booking through the booking service's public API.
func (c *BookingClient) GetBooking(ctx context.Context, bookingID int64) (*models.Booking, error) {
	url := fmt.Sprintf("%s/api/bookings/%d", c.baseURL(), bookingID)

	var booking models.Booking
	if err := getJSON(ctx, c.httpClient, url, &booking); err != nil {
		return nil, fmt.Errorf("booking %d: %w", bookingID, err)
	}
	return &booking, nil
}
