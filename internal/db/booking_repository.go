package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

const bookingColumns = `id, event_id, user_id, category, quantity, amount, cancelled, created_at`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(database *PostgresDB) *BookingRepository {
	return &BookingRepository{db: database.Conn}
}

// Create inserts an active booking and fills in ID and CreatedAt.
func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (event_id, user_id, category, quantity, amount, cancelled)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		booking.EventID,
		booking.UserID,
		booking.Category,
		booking.Quantity,
		booking.Amount,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	booking.Cancelled = false
	return nil
}

// GetAll returns all bookings, newest first
func (r *BookingRepository) GetAll(ctx context.Context) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY id DESC`

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	return bookings, nil
}

// GetByID returns nil, nil when the booking does not exist.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY id DESC`

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query bookings for user: %w", err)
	}
	return bookings, nil
}

// MarkCancelled flips cancelled to true only if it is still false. It returns
// nil, nil when no active booking with that id exists, so two concurrent
// cancels can never both succeed.
func (r *BookingRepository) MarkCancelled(ctx context.Context, id int64) (*models.Booking, error) {
	query := `
		UPDATE bookings SET cancelled = TRUE
		WHERE id = $1 AND cancelled = FALSE
		RETURNING ` + bookingColumns

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return &booking, nil
}
