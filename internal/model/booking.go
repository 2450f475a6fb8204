package model

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "CONFIRMED"
	BookingStatusWaitlisted BookingStatus = "WAITLISTED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// Booking ties a passenger to a flight. A booking is created Confirmed or
// Waitlisted; a Waitlisted booking may be promoted to Confirmed exactly once;
// any non-Cancelled booking may be cancelled exactly once. Cancelled is
// terminal.
type Booking struct {
	ID          string        `json:"id"`
	PassengerID string        `json:"passengerId"`
	FlightID    string        `json:"flightId"`
	CreatedAt   time.Time     `json:"createdAt"`
	Status      BookingStatus `json:"status"`
}

// Active reports whether the booking still holds or awaits a seat.
func (b *Booking) Active() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusWaitlisted
}
