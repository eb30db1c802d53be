package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

const paymentColumns = `id, booking_id, amount, payment_date, status`

type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(database *PostgresDB) *PaymentRepository {
	return &PaymentRepository{db: database.Conn}
}

// Create inserts a payment and fills in ID and PaymentDate.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (booking_id, amount, status)
		VALUES ($1, $2, $3)
		RETURNING id, payment_date
	`
	err := r.db.QueryRowxContext(ctx, query, payment.BookingID, payment.Amount, payment.Status).
		Scan(&payment.ID, &payment.PaymentDate)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) GetByBooking(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY id`

	payments := []models.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, bookingID); err != nil {
		return nil, fmt.Errorf("failed to query payments for booking: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY id DESC`

	payments := []models.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	return payments, nil
}
