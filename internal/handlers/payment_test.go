package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
	"github.com/Elie-MK/eventBooking-microservice/internal/service"
)

func newPaymentRouter(bookings ...models.Booking) (*gin.Engine, *memPaymentStore) {
	store := &memBookingStore{bookings: bookings}
	payments := &memPaymentStore{}
	svc := service.NewPaymentService(storeReader{store: store}, payments, nil, nopPublisher{})

	r := gin.New()
	NewPaymentHandler(svc).Register(r)
	return r, payments
}

func TestProcessPaymentHandler(t *testing.T) {
	r, payments := newPaymentRouter(
		models.Booking{ID: 5, EventID: 1, UserID: "bob", Category: models.TicketRegular, Quantity: 1, Amount: decimal.NewFromInt(100)},
		models.Booking{ID: 6, EventID: 1, UserID: "eve", Category: models.TicketVIP, Quantity: 1, Amount: decimal.NewFromInt(150), Cancelled: true},
	)

	w := do(r, http.MethodPost, "/api/payment", `{"bookingId":5,"amount":"1.00"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", w.Code, w.Body.String())
	}
	var payment models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &payment); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !payment.Amount.Equal(decimal.NewFromInt(100)) || payment.Status != models.PaymentPending {
		t.Errorf("payment = %+v, want 100 PENDING", payment)
	}

	w = do(r, http.MethodPost, "/api/payment", `{"bookingId":6}`)
	if w.Code != http.StatusConflict || decodeBody(t, w)["kind"] != KindBookingCancelled {
		t.Errorf("cancelled booking = %d %s, want 409 BOOKING_CANCELLED", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/payment", `{"bookingId":404}`)
	if w.Code != http.StatusNotFound || decodeBody(t, w)["kind"] != KindBookingNotFound {
		t.Errorf("missing booking = %d %s, want 404 BOOKING_NOT_FOUND", w.Code, w.Body.String())
	}

	if w := do(r, http.MethodPost, "/api/payment", `{}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty body = %d, want 400", w.Code)
	}

	if len(payments.payments) != 1 {
		t.Errorf("stored %d payments, want 1", len(payments.payments))
	}
}

func TestListBookingPaymentsHandler(t *testing.T) {
	r, _ := newPaymentRouter(models.Booking{ID: 5, EventID: 1, Amount: decimal.NewFromInt(100)})

	w := do(r, http.MethodGet, "/api/payment/booking/5", "")
	if w.Code != http.StatusNotFound || decodeBody(t, w)["kind"] != KindNotFound {
		t.Errorf("no payments = %d %s, want 404 NOT_FOUND", w.Code, w.Body.String())
	}

	do(r, http.MethodPost, "/api/payment", `{"bookingId":5}`)

	w = do(r, http.MethodGet, "/api/payment/booking/5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var payments []models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &payments); err != nil || len(payments) != 1 {
		t.Errorf("payments = %v, %v", payments, err)
	}

	if w := do(r, http.MethodGet, "/api/payment", ""); w.Code != http.StatusOK {
		t.Errorf("list all = %d, want 200", w.Code)
	}
}
