package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

func TestPaymentRepositoryCreate(t *testing.T) {
	database, mock := newMock(t)
	repo := NewPaymentRepository(database)
	paidAt := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
		WithArgs(5, "100", "PENDING").
		WillReturnRows(sqlmock.NewRows([]string{"id", "payment_date"}).AddRow(11, paidAt))

	payment := &models.Payment{
		BookingID: 5,
		Amount:    decimal.RequireFromString("100.00"),
		Status:    models.PaymentPending,
	}
	if err := repo.Create(context.Background(), payment); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if payment.ID != 11 {
		t.Errorf("ID = %d, want 11", payment.ID)
	}
	if !payment.PaymentDate.Equal(paidAt) {
		t.Errorf("PaymentDate = %v, want %v", payment.PaymentDate, paidAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPaymentRepositoryGetByBooking(t *testing.T) {
	database, mock := newMock(t)
	repo := NewPaymentRepository(database)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM payments WHERE booking_id = $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount", "payment_date", "status"}).
			AddRow(1, 5, "100.00", now, "PENDING").
			AddRow(2, 5, "100.00", now, "COMPLETED"))

	payments, err := repo.GetByBooking(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByBooking() error = %v", err)
	}
	if len(payments) != 2 {
		t.Fatalf("len(payments) = %d, want 2", len(payments))
	}
	if payments[1].Status != models.PaymentCompleted {
		t.Errorf("Status = %q, want COMPLETED", payments[1].Status)
	}
}

func TestPaymentRepositoryGetAllError(t *testing.T) {
	database, mock := newMock(t)
	repo := NewPaymentRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payments ORDER BY id DESC")).
		WillReturnError(context.DeadlineExceeded)

	if _, err := repo.GetAll(context.Background()); err == nil {
		t.Fatal("GetAll() error = nil, want error")
	}
}
