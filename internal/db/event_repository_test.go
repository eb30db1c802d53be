package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Elie-MK/eventBooking-microservice/internal/models"
)

var eventRowColumns = []string{"id", "name", "location", "event_date", "created_at"}

func TestEventRepositoryCreate(t *testing.T) {
	database, mock := newMock(t)
	repo := NewEventRepository(database)
	day := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events")).
		WithArgs("Jazz Night", "Kinshasa", "2026-07-14").
		WillReturnRows(sqlmock.NewRows(eventRowColumns).AddRow(1, "Jazz Night", "Kinshasa", day, time.Now()))

	event, err := repo.Create(context.Background(), models.CreateEventRequest{
		Name:     "Jazz Night",
		Location: "Kinshasa",
		Date:     models.NewDate(2026, time.July, 14),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if event.ID != 1 || event.Date.String() != "2026-07-14" {
		t.Errorf("Create() = %+v", event)
	}
}

func TestEventRepositoryGetByIDMissing(t *testing.T) {
	database, mock := newMock(t)
	repo := NewEventRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("FROM events WHERE id = $1")).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows(eventRowColumns))

	event, err := repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if event != nil {
		t.Errorf("GetByID() = %+v, want nil", event)
	}
}

func TestEventRepositoryUpdatePartial(t *testing.T) {
	database, mock := newMock(t)
	repo := NewEventRepository(database)
	location := "Lubumbashi"
	day := time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE events SET")).
		WithArgs(1, nil, "Lubumbashi", nil).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).AddRow(1, "Jazz Night", "Lubumbashi", day, time.Now()))

	event, err := repo.Update(context.Background(), 1, models.UpdateEventRequest{Location: &location})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if event.Location != "Lubumbashi" || event.Name != "Jazz Night" {
		t.Errorf("Update() = %+v", event)
	}
}

func TestEventRepositorySearchByName(t *testing.T) {
	database, mock := newMock(t)
	repo := NewEventRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(name) = lower($1)")).
		WithArgs("jazz night").
		WillReturnRows(sqlmock.NewRows(eventRowColumns).AddRow(1, "Jazz Night", "Kinshasa", nil, time.Now()))

	events, err := repo.SearchByName(context.Background(), "jazz night")
	if err != nil {
		t.Fatalf("SearchByName() error = %v", err)
	}
	if len(events) != 1 || !events[0].Date.IsZero() {
		t.Errorf("SearchByName() = %+v", events)
	}
}

func TestEventRepositoryDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "existing", affected: 1, want: true},
		{name: "missing", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, mock := newMock(t)
			repo := NewEventRepository(database)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM events WHERE id = $1")).
				WithArgs(3).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			got, err := repo.Delete(context.Background(), 3)
			if err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Delete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMigrate(t *testing.T) {
	database, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS bookings")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS bookings_user_id_idx")).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := database.Migrate(context.Background(), BookingsSchema, BookingsUserIndex); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
