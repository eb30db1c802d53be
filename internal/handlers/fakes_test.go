package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Elie-MK/eventBooking-microservice/internal/client"
	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEvents struct {
	events map[int64]models.Event
	err    error
}

func (s *stubEvents) GetEvent(_ context.Context, id int64) (*models.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	e, ok := s.events[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &e, nil
}

type memBookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (m *memBookingStore) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.ID = int64(len(m.bookings) + 1)
	b.CreatedAt = time.Now()
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memBookingStore) GetAll(context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Booking{}, m.bookings...), nil
}

func (m *memBookingStore) GetByID(_ context.Context, id int64) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memBookingStore) GetByUser(_ context.Context, userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookingStore) MarkCancelled(_ context.Context, id int64) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id && !m.bookings[i].Cancelled {
			m.bookings[i].Cancelled = true
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, models.Notification) {}

type storeReader struct {
	store *memBookingStore
}

func (r storeReader) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	b, _ := r.store.GetByID(ctx, id)
	if b == nil {
		return nil, client.ErrNotFound
	}
	return b, nil
}

type memPaymentStore struct {
	payments []models.Payment
}

func (m *memPaymentStore) Create(_ context.Context, p *models.Payment) error {
	p.ID = int64(len(m.payments) + 1)
	p.PaymentDate = time.Now()
	m.payments = append(m.payments, *p)
	return nil
}

func (m *memPaymentStore) GetByBooking(_ context.Context, bookingID int64) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPaymentStore) GetAll(context.Context) ([]models.Payment, error) {
	return append([]models.Payment{}, m.payments...), nil
}
