package notifier

import (
	"fmt"
	"log"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

// Notifier delivers a decoded notification to the user. Email or SMS
// implementations can replace the console one.
type Notifier interface {
	Notify(subject, message string) error
}

type ConsoleNotifier struct{}

func NewConsole() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(subject, message string) error {
	log.Printf("[notify] %s :: %s", subject, message)
	return nil
}

// Subject maps a message type to a short headline.
func Subject(msgType string) string {
	switch msgType {
	case models.NotificationBookingConfirmed:
		return "✅ Booking Confirmed"
	case models.NotificationBookingCancelled:
		return "❌ Booking Cancelled"
	case models.NotificationPaymentCreated:
		return "💰 Payment Received"
	default:
		return "🔔 Notification"
	}
}

// Describe renders the notification body for a human.
func Describe(n models.Notification) string {
	event := n.EventName
	if event == "" {
		event = "your event"
	}
	msg := fmt.Sprintf("%s: %d x %s ticket(s) for %s", n.UserName, n.NumberOfTicket, n.TicketType, event)
	if !n.EventDate.IsZero() {
		msg += " on " + n.EventDate.String()
	}
	if n.EventLocation != "" {
		msg += " at " + n.EventLocation
	}
	return msg + ", amount " + n.PaymentAmount.StringFixed(2)
}
