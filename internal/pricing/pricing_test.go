package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		category models.TicketCategory
		quantity int
		want     string
	}{
		{name: "VIP single", category: models.TicketVIP, quantity: 1, want: "150"},
		{name: "VIP pair", category: models.TicketVIP, quantity: 2, want: "300"},
		{name: "REGULAR single", category: models.TicketRegular, quantity: 1, want: "100"},
		{name: "REGULAR five", category: models.TicketRegular, quantity: 5, want: "500"},
		{name: "STUDENT single", category: models.TicketStudent, quantity: 1, want: "50"},
		{name: "STUDENT ten", category: models.TicketStudent, quantity: 10, want: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.category, tt.quantity)
			if err != nil {
				t.Fatalf("Price() error = %v", err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Price() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriceIsLinearInQuantity(t *testing.T) {
	for _, category := range Categories() {
		unit, err := unitPrice(category)
		if err != nil {
			t.Fatalf("unitPrice(%s) error = %v", category, err)
		}
		for q := 1; q <= 20; q++ {
			got, err := Price(category, q)
			if err != nil {
				t.Fatalf("Price(%s, %d) error = %v", category, q, err)
			}
			if want := unit.Mul(decimal.NewFromInt(int64(q))); !got.Equal(want) {
				t.Errorf("Price(%s, %d) = %v, want %v", category, q, got, want)
			}
		}
	}
}

func TestPriceUnknownCategory(t *testing.T) {
	for _, category := range []models.TicketCategory{"", "vip", "PREMIUM"} {
		_, err := Price(category, 1)
		if !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("Price(%q) error = %v, want ErrUnknownCategory", category, err)
		}
		if Known(category) {
			t.Errorf("Known(%q) = true, want false", category)
		}
	}
}

func TestCategoriesArePriced(t *testing.T) {
	got := Categories()
	if len(got) != len(unitPrices) {
		t.Fatalf("Categories() = %v, want %d entries", got, len(unitPrices))
	}
	for _, category := range got {
		if !Known(category) {
			t.Errorf("Categories() lists %q without a price", category)
		}
	}
}
