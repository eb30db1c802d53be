package consumer

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
	"github.com/Elie-MK/eventBooking-microservice/internal/notifier"
)

type NotificationConsumer struct {
	notifier notifier.Notifier
}

func NewNotificationConsumer(n notifier.Notifier) *NotificationConsumer {
	return &NotificationConsumer{notifier: n}
}

// Run handles deliveries until ctx is done or the channel closes.
func (c *NotificationConsumer) Run(ctx context.Context, messages <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				log.Println("⚠️ Delivery channel closed")
				return
			}
			c.Handle(msg)
		}
	}
}

// Handle decodes one delivery. Undecodable messages are dropped. A notifier
// failure is requeued once; a redelivered message that fails again is dropped.
// Unknown and missing fields are tolerated.
func (c *NotificationConsumer) Handle(msg amqp.Delivery) {
	log.Printf("📥 Received %s notification", msgType(msg))

	var n models.Notification
	if err := json.Unmarshal(msg.Body, &n); err != nil {
		log.Printf("❌ Failed to parse notification: %v", err)
		msg.Nack(false, false) // Don't requeue bad messages
		return
	}

	if err := c.notifier.Notify(notifier.Subject(msg.Type), notifier.Describe(n)); err != nil {
		if msg.Redelivered {
			log.Printf("❌ Notify failed again, dropping: %v", err)
			msg.Nack(false, false)
			return
		}
		log.Printf("⚠️ Notify failed, requeued: %v", err)
		msg.Nack(false, true)
		return
	}

	msg.Ack(false)
}

func msgType(msg amqp.Delivery) string {
	if msg.Type == "" {
		return "untyped"
	}
	return msg.Type
}
