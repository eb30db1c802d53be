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
)

// BookingReader reads bookings through the booking service's public API.
type BookingReader interface {
	GetBooking(ctx context.Context, bookingID int64) (*models.Booking, error)
}

type PaymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByBooking(ctx context.Context, bookingID int64) ([]models.Payment, error)
	GetAll(ctx context.Context) ([]models.Payment, error)
}

type PaymentService struct {
	bookings  BookingReader
	store     PaymentStore
	events    EventDirectory
	publisher Publisher
}

// NewPaymentService accepts a nil events; notifications then go out without
// event details.
func NewPaymentService(bookings BookingReader, store PaymentStore, events EventDirectory, publisher Publisher) *PaymentService {
	return &PaymentService{
		bookings:  bookings,
		store:     store,
		events:    events,
		publisher: publisher,
	}
}

// Process records a PENDING payment for an active booking. The amount always
// comes from the booking; the request amount is only compared and logged.
func (s *PaymentService) Process(ctx context.Context, req models.ProcessPaymentRequest) (_ *models.Payment, err error) {
	ctx, span := tracer.Start(ctx, "PaymentService.Process", trace.WithAttributes(attribute.Int64("booking.id", req.BookingID)))
	defer func() { endSpan(span, err) }()

	booking, err := s.bookings.GetBooking(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrBookingNotFound, req.BookingID)
		}
		return nil, fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}
	if booking.Cancelled {
		return nil, fmt.Errorf("%w: %d", ErrBookingCancelled, req.BookingID)
	}

	if req.Amount != nil && !req.Amount.Equal(booking.Amount) {
		log.Printf("⚠️ Booking #%d: requested amount %s ignored, charging %s",
			booking.ID, req.Amount.StringFixed(2), booking.Amount.StringFixed(2))
	}

	payment := &models.Payment{
		BookingID: booking.ID,
		Amount:    booking.Amount,
		Status:    models.PaymentPending,
	}
	if err := s.store.Create(ctx, payment); err != nil {
		return nil, err
	}
	log.Printf("✅ Payment #%d recorded for booking #%d (%s, %s)",
		payment.ID, payment.BookingID, payment.Amount.StringFixed(2), payment.Status)

	s.publisher.Publish(ctx, models.NotificationPaymentCreated, models.NewBookingNotification(s.eventFor(ctx, booking), booking))
	return payment, nil
}

// eventFor is best-effort: a missing snapshot only thins the notification.
func (s *PaymentService) eventFor(ctx context.Context, booking *models.Booking) *models.Event {
	if s.events == nil {
		return nil
	}
	event, err := s.events.GetEvent(ctx, booking.EventID)
	if err != nil {
		log.Printf("⚠️ Payment notification without event details: %v", err)
		return nil
	}
	return event
}

// GetByBooking returns ErrPaymentNotFound when the booking has no payments.
func (s *PaymentService) GetByBooking(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	payments, err := s.store.GetByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrPaymentNotFound, bookingID)
	}
	return payments, nil
}

func (s *PaymentService) GetAll(ctx context.Context) ([]models.Payment, error) {
	return s.store.GetAll(ctx)
}
