package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

const eventColumns = `id, name, location, event_date, created_at`

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(database *PostgresDB) *EventRepository {
	return &EventRepository{db: database.Conn}
}

func (r *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id`

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return events, nil
}

// GetByID returns nil, nil when the event does not exist.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// SearchByName matches the whole name, ignoring case.
func (r *EventRepository) SearchByName(ctx context.Context, name string) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE lower(name) = lower($1) ORDER BY id`

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query, name); err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	query := `
		INSERT INTO events (name, location, event_date)
		VALUES ($1, $2, $3)
		RETURNING ` + eventColumns

	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, req.Name, req.Location, req.Date); err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	return &event, nil
}

// Update changes only the non-nil fields of req. It returns nil, nil when the
// event does not exist.
func (r *EventRepository) Update(ctx context.Context, id int64, req models.UpdateEventRequest) (*models.Event, error) {
	query := `
		UPDATE events SET
			name = COALESCE($2, name),
			location = COALESCE($3, location),
			event_date = COALESCE($4, event_date)
		WHERE id = $1
		RETURNING ` + eventColumns

	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id, req.Name, req.Location, req.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &event, nil
}

// Delete reports whether a row was removed.
func (r *EventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete event: %w", err)
	}
	return rowsAffected > 0, nil
}
