// Package pricing maps a ticket category and quantity to a booking amount.
// The amount is computed once at booking time and stored; nothing downstream
// re-prices.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

// ErrUnknownCategory signals a category outside the price table. It is a
// configuration error, never defaulted.
var ErrUnknownCategory = errors.New("unknown ticket category")

var unitPrices = map[models.TicketCategory]decimal.Decimal{
	models.TicketVIP:     decimal.RequireFromString("150.00"),
	models.TicketRegular: decimal.RequireFromString("100.00"),
	models.TicketStudent: decimal.RequireFromString("50.00"),
}

var categories = []models.TicketCategory{models.TicketVIP, models.TicketRegular, models.TicketStudent}

func unitPrice(category models.TicketCategory) (decimal.Decimal, error) {
	unit, ok := unitPrices[category]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return unit, nil
}

// Price returns unit(category) * quantity.
func Price(category models.TicketCategory, quantity int) (decimal.Decimal, error) {
	unit, err := unitPrice(category)
	if err != nil {
		return decimal.Zero, err
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// Known reports whether category has a price.
func Known(category models.TicketCategory) bool {
	_, ok := unitPrices[category]
	return ok
}

// Categories lists the priced categories, most expensive first.
func Categories() []models.TicketCategory {
	return append([]models.TicketCategory(nil), categories...)
}
