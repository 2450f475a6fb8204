// Package postgres is the optional persistence adapter. It archives
// passenger records and booking outcomes; the core never reads from it and
// keeps all live state in memory.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cx-tal-miterani/airline-network/internal/model"
)

// ErrNotFound is returned when a queried record does not exist.
var ErrNotFound = errors.New("not found")

// Store persists passengers and bookings in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a store over an existing connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Connect opens a connection pool and returns a store over it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	s.pool.Close()
}

// SavePassenger upserts a passenger record.
func (s *Store) SavePassenger(ctx context.Context, p *model.Passenger) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO passengers (id, name, email, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = $2, email = $3, phone = $4
	`, p.ID, p.Name, p.Email, p.Phone)
	if err != nil {
		return fmt.Errorf("failed to save passenger: %w", err)
	}

	return nil
}

// GetPassenger loads a passenger record by id.
func (s *Store) GetPassenger(ctx context.Context, passengerID string) (*model.Passenger, error) {
	var p model.Passenger
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, email, phone FROM passengers WHERE id = $1
	`, passengerID).Scan(&p.ID, &p.Name, &p.Email, &p.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}

	return &p, nil
}

// SaveBooking upserts a booking with its current status.
func (s *Store) SaveBooking(ctx context.Context, b *model.Booking) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO bookings (id, passenger_id, flight_id, created_at, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET status = $5
	`, b.ID, b.PassengerID, b.FlightID, b.CreatedAt, b.Status)
	if err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}

	return nil
}

// UpdateBookingStatus updates the status of an archived booking.
func (s *Store) UpdateBookingStatus(ctx context.Context, bookingID string, status model.BookingStatus) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE bookings SET status = $1 WHERE id = $2
	`, status, bookingID)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ListPassengerBookings loads all archived bookings for a passenger.
func (s *Store) ListPassengerBookings(ctx context.Context, passengerID string) ([]model.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, passenger_id, flight_id, created_at, status
		FROM bookings WHERE passenger_id = $1 ORDER BY created_at
	`, passengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.PassengerID, &b.FlightID, &b.CreatedAt, &b.Status); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		out = append(out, b)
	}

	return out, rows.Err()
}
