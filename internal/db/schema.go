package db

// Each service owns its own tables; there are no cross-service foreign keys.
const (
	EventsSchema = `
		CREATE TABLE IF NOT EXISTS events (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			location   TEXT NOT NULL,
			event_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	BookingsSchema = `
		CREATE TABLE IF NOT EXISTS bookings (
			id         BIGSERIAL PRIMARY KEY,
			event_id   BIGINT NOT NULL,
			user_id    TEXT NOT NULL,
			category   TEXT NOT NULL,
			quantity   INTEGER NOT NULL CHECK (quantity > 0),
			amount     NUMERIC(12, 2) NOT NULL,
			cancelled  BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	BookingsUserIndex = `CREATE INDEX IF NOT EXISTS bookings_user_id_idx ON bookings (user_id)`

	PaymentsSchema = `
		CREATE TABLE IF NOT EXISTS payments (
			id           BIGSERIAL PRIMARY KEY,
			booking_id   BIGINT NOT NULL,
			amount       NUMERIC(12, 2) NOT NULL,
			payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			status       TEXT NOT NULL
		)`

	PaymentsBookingIndex = `CREATE INDEX IF NOT EXISTS payments_booking_id_idx ON payments (booking_id)`
)
