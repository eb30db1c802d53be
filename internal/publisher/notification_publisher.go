package publisher

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

const publishTimeout = 5 * time.Second

// Sender is implemented by messaging.RabbitMQ.
type Sender interface {
	Publish(ctx context.Context, queue, msgType string, body []byte) error
}

type message struct {
	span    trace.SpanContext
	msgType string
	body    []byte
}

// NotificationPublisher hands notifications to a single background worker.
// Publish never blocks and never fails the caller: a full buffer, a closed
// publisher and a broker error are only logged.
type NotificationPublisher struct {
	sender Sender
	queue  string
	buf    chan message
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewNotificationPublisher(sender Sender, queue string, buffer int) *NotificationPublisher {
	if buffer <= 0 {
		buffer = 1
	}
	p := &NotificationPublisher{
		sender: sender,
		queue:  queue,
		buf:    make(chan message, buffer),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *NotificationPublisher) Publish(ctx context.Context, msgType string, n models.Notification) {
	body, err := json.Marshal(n)
	if err != nil {
		log.Printf("❌ Failed to marshal %s notification: %v", msgType, err)
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		log.Printf("⚠️ Publisher closed, dropping %s notification", msgType)
		return
	}

	select {
	case p.buf <- message{span: trace.SpanContextFromContext(ctx), msgType: msgType, body: body}:
	default:
		log.Printf("⚠️ Publish buffer full, dropping %s notification", msgType)
	}
}

func (p *NotificationPublisher) run() {
	defer close(p.done)
	for msg := range p.buf {
		ctx, cancel := context.WithTimeout(
			trace.ContextWithSpanContext(context.Background(), msg.span), publishTimeout)
		if err := p.sender.Publish(ctx, p.queue, msg.msgType, msg.body); err != nil {
			log.Printf("⚠️ Failed to publish %s notification: %v", msg.msgType, err)
		}
		cancel()
	}
}

// Close stops accepting notifications and waits until the buffer is drained
// or ctx expires.
func (p *NotificationPublisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.buf)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
