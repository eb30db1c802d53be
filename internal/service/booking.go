package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Elie-MK/eventBooking-microservice/internal/client"
	"github.com/Elie-MK/eventBooking-microservice/internal/models"
	"github.com/Elie-MK/eventBooking-microservice/internal/pricing"
)

// EventDirectory returns client.ErrNotFound when the event is absent and
// client.ErrUnavailable when the event service cannot answer.
type EventDirectory interface {
	GetEvent(ctx context.Context, eventID int64) (*models.Event, error)
}

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	MarkCancelled(ctx context.Context, id int64) (*models.Booking, error)
}

// Publisher is fire-and-forget; it has no error to report.
type Publisher interface {
	Publish(ctx context.Context, msgType string, n models.Notification)
}

type CancelOutcome string

const CancelConfirmed CancelOutcome = "BOOKING_CANCELLED"

// CancelResult is the success value of Cancel. Failures come back as errors.
type CancelResult struct {
	Outcome CancelOutcome
	Booking *models.Booking
}

type BookingService struct {
	events    EventDirectory
	store     BookingStore
	publisher Publisher
}

func NewBookingService(events EventDirectory, store BookingStore, publisher Publisher) *BookingService {
	return &BookingService{
		events:    events,
		store:     store,
		publisher: publisher,
	}
}

// Create verifies the event before anything is written. The amount is priced
// once here and never recomputed downstream.
func (s *BookingService) Create(ctx context.Context, req models.CreateBookingRequest) (_ *models.Booking, err error) {
	ctx, span := tracer.Start(ctx, "BookingService.Create", trace.WithAttributes(
		attribute.Int64("event.id", req.EventID),
		attribute.String("booking.category", string(req.Category)),
		attribute.Int("booking.quantity", req.Quantity),
	))
	defer func() { endSpan(span, err) }()

	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	event, fetchErr := s.events.GetEvent(ctx, req.EventID)
	amount, priceErr := pricing.Price(req.Category, req.Quantity)

	if fetchErr != nil {
		return nil, eventError(req.EventID, fetchErr)
	}
	if priceErr != nil {
		return nil, priceErr
	}

	booking := &models.Booking{
		EventID:  req.EventID,
		UserID:   req.UserID,
		Category: req.Category,
		Quantity: req.Quantity,
		Amount:   amount,
	}
	if err := s.store.Create(ctx, booking); err != nil {
		return nil, err
	}
	log.Printf("✅ Booking #%d created for %s (event %d, %s x%d = %s)",
		booking.ID, booking.UserID, booking.EventID, booking.Category, booking.Quantity, booking.Amount.StringFixed(2))

	s.publisher.Publish(ctx, models.NotificationBookingConfirmed, models.NewBookingNotification(event, booking))
	return booking, nil
}

// Cancel moves an active booking to CANCELLED exactly once. The flag is
// persisted before the event is re-read for the notification, so an event
// deleted in between leaves the booking cancelled but unannounced and
// returns ErrEventNotFound.
func (s *BookingService) Cancel(ctx context.Context, id int64) (_ CancelResult, err error) {
	ctx, span := tracer.Start(ctx, "BookingService.Cancel", trace.WithAttributes(attribute.Int64("booking.id", id)))
	defer func() { endSpan(span, err) }()

	booking, err := s.store.GetByID(ctx, id)
	if err != nil {
		return CancelResult{}, err
	}
	if booking == nil {
		return CancelResult{}, ErrBookingNotFound
	}
	if booking.Cancelled {
		return CancelResult{}, ErrAlreadyCancelled
	}

	cancelled, err := s.store.MarkCancelled(ctx, id)
	if err != nil {
		return CancelResult{}, err
	}
	if cancelled == nil {
		// A concurrent cancel won the conditional update.
		return CancelResult{}, ErrAlreadyCancelled
	}
	log.Printf("✅ Booking #%d cancelled", id)

	event, err := s.events.GetEvent(ctx, cancelled.EventID)
	if err != nil {
		log.Printf("⚠️ Booking #%d cancelled but not announced: %v", id, err)
		return CancelResult{}, eventError(cancelled.EventID, err)
	}

	s.publisher.Publish(ctx, models.NotificationBookingCancelled, models.NewBookingNotification(event, cancelled))
	return CancelResult{Outcome: CancelConfirmed, Booking: cancelled}, nil
}

func (s *BookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	return s.store.GetAll(ctx)
}

// GetByID returns nil, nil when no booking has that id.
func (s *BookingService) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	return s.store.GetByID(ctx, id)
}

func (s *BookingService) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.store.GetByUser(ctx, userID)
}

func eventError(eventID int64, err error) error {
	if errors.Is(err, client.ErrNotFound) {
		return fmt.Errorf("%w: %d", ErrEventNotFound, eventID)
	}
	return fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
}
