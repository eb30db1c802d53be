package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

type EventClient struct {
	baseURL    BaseURL
	httpClient *http.Client
}

func NewEventClient(baseURL BaseURL, timeout time.Duration) *EventClient {
	return &EventClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

// GetEvent fetches an event snapshot from the event service.
func (c *EventClient) GetEvent(ctx context.Context, eventID int64) (*models.Event, error) {
	url := fmt.Sprintf("%s/api/events/%d", c.baseURL(), eventID)

	var event models.Event
	if err := getJSON(ctx, c.httpClient, url, &event); err != nil {
		return nil, fmt.Errorf("event %d: %w", eventID, err)
	}
	return &event, nil
}
