package models

import "github.com/shopspring/decimal"

// Message types carried in the AMQP Type property. The body is always a
// Notification.
const (
	NotificationBookingConfirmed = "booking.confirmed"
	NotificationBookingCancelled = "booking.cancelled"
	NotificationPaymentCreated   = "payment.created"
)

// Notification is the flat, versionless record published on the
// notification queue.
type Notification struct {
	EventName      string          `json:"eventName"`
	EventDate      Date            `json:"eventDate"`
	EventLocation  string          `json:"eventLocation"`
	UserName       string          `json:"userName"`
	TicketType     string          `json:"ticketType"`
	NumberOfTicket int             `json:"numberOfTicket"`
	PaymentAmount  decimal.Decimal `json:"paymentAmount"`
}

// NewBookingNotification builds the record announced for a booking action.
// event may be nil when the snapshot could not be fetched.
func NewBookingNotification(event *Event, booking *Booking) Notification {
	n := Notification{
		UserName:       booking.UserID,
		TicketType:     string(booking.Category),
		NumberOfTicket: booking.Quantity,
		PaymentAmount:  booking.Amount,
	}
	if event != nil {
		n.EventName = event.Name
		n.EventDate = event.Date
		n.EventLocation = event.Location
	}
	return n
}
