package model

import "time"

// Flight represents one scheduled flight between two airports. Origin,
// Destination, DepartureTime, ArrivalTime, Capacity, Price and Distance are
// immutable after creation; the seat inventory fields (BookedSeats, the
// confirmed-passenger set and the waitlist) are mutated only by the booking
// ledger under the flight's lock.
type Flight struct {
	ID            string    `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Capacity      int       `json:"capacity"`
	Price         float64   `json:"price"`
	Distance      float64   `json:"distance"`

	BookedSeats int `json:"bookedSeats"`

	// Confirmed holds the passenger ids currently occupying seats;
	// len(Confirmed) == BookedSeats at all times.
	Confirmed map[string]struct{} `json:"-"`

	// Waitlist holds booking ids in FIFO order. Storing booking ids rather
	// than passenger ids makes promotion an O(1) lookup and ties each
	// waitlist slot to exactly one booking.
	Waitlist []string `json:"-"`
}

// NewFlight creates a flight with an empty seat inventory.
func NewFlight(id, origin, destination string, departure, arrival time.Time, capacity int, price, distance float64) *Flight {
	return &Flight{
		ID:            id,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Capacity:      capacity,
		Price:         price,
		Distance:      distance,
		Confirmed:     make(map[string]struct{}),
	}
}

// AvailableSeats returns the number of unbooked seats.
func (f *Flight) AvailableSeats() int {
	return f.Capacity - f.BookedSeats
}

// IsAvailable reports whether at least one seat is free.
func (f *Flight) IsAvailable() bool {
	return f.BookedSeats < f.Capacity
}
