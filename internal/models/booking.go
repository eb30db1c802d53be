package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketCategory string

const (
	TicketVIP     TicketCategory = "VIP"
	TicketRegular TicketCategory = "REGULAR"
	TicketStudent TicketCategory = "STUDENT"
)

// Booking is a user's reservation of tickets for an event. Cancelled only
// ever moves from false to true.
type Booking struct {
	ID        int64           `json:"id" db:"id"`
	EventID   int64           `json:"eventId" db:"event_id"`
	UserID    string          `json:"userId" db:"user_id"`
	Category  TicketCategory  `json:"category" db:"category"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Cancelled bool            `json:"cancelled" db:"cancelled"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

type CreateBookingRequest struct {
	EventID  int64          `json:"eventId" binding:"required"`
	UserID   string         `json:"userId" binding:"required"`
	Category TicketCategory `json:"category" binding:"required"`
	Quantity int            `json:"quantity" binding:"required"`
}
