package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentApproved  PaymentStatus = "APPROVED"
	PaymentRejected  PaymentStatus = "REJECTED"
	PaymentCanceled  PaymentStatus = "CANCELED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCompleted PaymentStatus = "COMPLETED"
)

type Payment struct {
	ID          int64           `json:"id" db:"id"`
	BookingID   int64           `json:"bookingId" db:"booking_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate time.Time       `json:"paymentDate" db:"payment_date"`
	Status      PaymentStatus   `json:"status" db:"status"`
}

// ProcessPaymentRequest.Amount is accepted for compatibility but never
// trusted; the stored amount always comes from the booking.
type ProcessPaymentRequest struct {
	BookingID int64            `json:"bookingId" binding:"required"`
	Amount    *decimal.Decimal `json:"amount"`
}
