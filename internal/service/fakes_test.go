package service

import (
	"context"
	"sync"
	"time"

	"github.com/Elie-MK/eventBooking-microservice/internal/client"
	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

type fakeEvents struct {
	mu     sync.Mutex
	events map[int64]*models.Event
	err    error
	calls  int
}

func newFakeEvents(events ...models.Event) *fakeEvents {
	f := &fakeEvents{events: map[int64]*models.Event{}}
	for i := range events {
		f.events[events[i].ID] = &events[i]
	}
	return f
}

func (f *fakeEvents) GetEvent(_ context.Context, id int64) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEvents) remove(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.events, id)
}

// memBookings mimics the conditional update of db.BookingRepository.
type memBookings struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*models.Booking
	err      error
}

func newMemBookings() *memBookings {
	return &memBookings{bookings: map[int64]*models.Booking{}}
}

func (m *memBookings) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	b.ID = m.nextID
	b.CreatedAt = time.Now()
	b.Cancelled = false
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memBookings) put(b models.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID] = &b
	if b.ID > m.nextID {
		m.nextID = b.ID
	}
}

func (m *memBookings) GetAll(context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (m *memBookings) GetByID(_ context.Context, id int64) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) GetByUser(_ context.Context, userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Booking{}
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookings) MarkCancelled(_ context.Context, id int64) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok || b.Cancelled {
		return nil, nil
	}
	b.Cancelled = true
	cp := *b
	return &cp, nil
}

type published struct {
	msgType string
	n       models.Notification
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []published
}

func (p *fakePublisher) Publish(_ context.Context, msgType string, n models.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, published{msgType: msgType, n: n})
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}

// bookingReader serves bookings from a memBookings the way the booking
// service's HTTP API would.
type bookingReader struct {
	store *memBookings
	err   error
}

func (r *bookingReader) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, _ := r.store.GetByID(ctx, id)
	if b == nil {
		return nil, client.ErrNotFound
	}
	return b, nil
}

type memPayments struct {
	mu       sync.Mutex
	payments []models.Payment
}

func (m *memPayments) Create(_ context.Context, p *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = int64(len(m.payments) + 1)
	p.PaymentDate = time.Now()
	m.payments = append(m.payments, *p)
	return nil
}

func (m *memPayments) GetByBooking(_ context.Context, bookingID int64) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Payment{}
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPayments) GetAll(context.Context) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Payment{}, m.payments...), nil
}
