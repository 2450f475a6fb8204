// Package airline composes the flight catalog, route graph and booking
// ledger into the airline network service consumed by external collaborators
// (the CLI, persistence adapters). All operations return structured results;
// printing and logging stay outside.
package airline

import (
	"errors"
	"fmt"
	"time"

	"github.com/cx-tal-miterani/airline-network/internal/catalog"
	"github.com/cx-tal-miterani/airline-network/internal/ident"
	"github.com/cx-tal-miterani/airline-network/internal/ledger"
	"github.com/cx-tal-miterani/airline-network/internal/model"
	"github.com/cx-tal-miterani/airline-network/internal/registry"
	"github.com/cx-tal-miterani/airline-network/internal/routegraph"
)

var (
	// ErrInvalidCapacity is returned when a flight is created with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("flight capacity must be positive")

	// ErrNegativeWeight is returned when a flight is created with a negative
	// price or distance; shortest-path queries require non-negative edge
	// weights.
	ErrNegativeWeight = errors.New("price and distance must be non-negative")

	// ErrFlightNotFound is returned when a flight id is unknown.
	ErrFlightNotFound = errors.New("flight not found")
)

// FlightStatus is a flight together with its derived seat availability.
type FlightStatus struct {
	Flight         model.Flight `json:"flight"`
	AvailableSeats int          `json:"availableSeats"`
	Waitlisted     int          `json:"waitlisted"`
}

// Stats summarizes the state of the network.
type Stats struct {
	Airports           int `json:"airports"`
	Flights            int `json:"flights"`
	Passengers         int `json:"passengers"`
	ConfirmedBookings  int `json:"confirmedBookings"`
	WaitlistedBookings int `json:"waitlistedBookings"`
}

// Service defines the airline network operations.
type Service interface {
	AddAirport(code string)
	AddFlight(id, origin, destination string, departure, arrival time.Time, capacity int, price, distance float64) error
	RemoveFlight(flightID string) bool
	RegisterPassenger(name, email, phone string) *model.Passenger
	BookFlight(passengerID, flightID string) (bookingID string, status model.BookingStatus, err error)
	CancelBooking(bookingID string) error
	ShortestRoute(origin, destination string, criterion model.Criterion) (model.ShortestRoute, error)
	AllRoutes(origin, destination string, maxStops int) []model.Route
	FlightsFrom(origin, destination string) []FlightStatus
	PassengerBookings(passengerID string) ([]model.Booking, error)
	Schedule() []model.Flight
	Stats() Stats
}

// service implements Service over in-memory components.
type service struct {
	catalog    *catalog.Catalog
	graph      *routegraph.Graph
	ledger     *ledger.Ledger
	passengers *registry.Registry
}

// NewService creates the airline network service. Ids for passengers and
// bookings come from the given generator.
func NewService(ids ident.Generator) Service {
	c := catalog.New()

	return &service{
		catalog:    c,
		graph:      routegraph.New(),
		ledger:     ledger.New(c, ids),
		passengers: registry.New(ids),
	}
}

// AddAirport registers an airport with the route graph.
func (s *service) AddAirport(code string) {
	s.graph.AddAirport(code)
}

// AddFlight creates a flight and feeds it to both the catalog and the route
// graph.
func (s *service) AddFlight(id, origin, destination string, departure, arrival time.Time, capacity int, price, distance float64) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	if price < 0 || distance < 0 {
		return fmt.Errorf("%w: price=%.2f distance=%.1f", ErrNegativeWeight, price, distance)
	}

	f := model.NewFlight(id, origin, destination, departure, arrival, capacity, price, distance)
	if err := s.catalog.Add(f); err != nil {
		return fmt.Errorf("add flight %s: %w", id, err)
	}
	s.graph.AddRoute(f)

	return nil
}

// RemoveFlight drops a flight from the catalog and the route graph. It
// reports false if the id is unknown. Existing bookings keep their state;
// cancelling them afterwards fails because the flight is gone.
func (s *service) RemoveFlight(flightID string) bool {
	f, ok := s.catalog.Get(flightID)
	if !ok {
		return false
	}
	if s.catalog.Remove(flightID) {
		s.graph.RemoveRoute(f.Origin, flightID)
		return true
	}

	return false
}

// RegisterPassenger creates a passenger record.
func (s *service) RegisterPassenger(name, email, phone string) *model.Passenger {
	return s.passengers.Register(name, email, phone)
}

// BookFlight books a seat for the passenger, waitlisting when the flight is
// full. It returns the new booking id and resulting status.
func (s *service) BookFlight(passengerID, flightID string) (string, model.BookingStatus, error) {
	if _, ok := s.passengers.Get(passengerID); !ok {
		return "", "", fmt.Errorf("%w: %s", registry.ErrPassengerNotFound, passengerID)
	}
	flight, ok := s.catalog.Get(flightID)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrFlightNotFound, flightID)
	}

	b, err := s.ledger.Book(flight, passengerID)
	if err != nil {
		return "", "", err
	}
	if err := s.passengers.AddBooking(passengerID, b.ID); err != nil {
		return "", "", err
	}

	return b.ID, b.Status, nil
}

// CancelBooking cancels a booking, promoting the head of the flight's
// waitlist when a confirmed seat frees up.
func (s *service) CancelBooking(bookingID string) error {
	b, ok := s.ledger.Get(bookingID)
	if !ok {
		return fmt.Errorf("%w: %s", ledger.ErrBookingNotFound, bookingID)
	}

	if err := s.ledger.Cancel(bookingID); err != nil {
		return err
	}
	s.passengers.RemoveBooking(b.PassengerID, bookingID)

	return nil
}

// ShortestRoute returns a minimum-cost path between two airports under the
// given criterion.
func (s *service) ShortestRoute(origin, destination string, criterion model.Criterion) (model.ShortestRoute, error) {
	return s.graph.ShortestRoute(origin, destination, criterion)
}

// AllRoutes enumerates simple paths between two airports with at most
// maxStops intermediate airports.
func (s *service) AllRoutes(origin, destination string, maxStops int) []model.Route {
	return s.graph.Routes(origin, destination, maxStops)
}

// FlightsFrom lists flights departing from origin, optionally filtered to a
// destination (empty string matches all), with derived availability.
func (s *service) FlightsFrom(origin, destination string) []FlightStatus {
	var out []FlightStatus
	for _, f := range s.catalog.FlightsFrom(origin) {
		if destination != "" && f.Destination != destination {
			continue
		}
		snap, waiting := s.ledger.Snapshot(f)
		out = append(out, FlightStatus{
			Flight:         snap,
			AvailableSeats: snap.AvailableSeats(),
			Waitlisted:     waiting,
		})
	}

	return out
}

// PassengerBookings returns copies of the passenger's active bookings.
func (s *service) PassengerBookings(passengerID string) ([]model.Booking, error) {
	ids, err := s.passengers.Bookings(passengerID)
	if err != nil {
		return nil, err
	}

	out := make([]model.Booking, 0, len(ids))
	for _, id := range ids {
		if b, ok := s.ledger.Get(id); ok {
			out = append(out, b)
		}
	}

	return out, nil
}

// Schedule returns all flights ordered by departure time ascending.
func (s *service) Schedule() []model.Flight {
	flights := s.catalog.Schedule()
	out := make([]model.Flight, 0, len(flights))
	for _, f := range flights {
		snap, _ := s.ledger.Snapshot(f)
		out = append(out, snap)
	}

	return out
}

// Stats returns network-wide counters.
func (s *service) Stats() Stats {
	confirmed, waitlisted := s.ledger.Counts()

	return Stats{
		Airports:           s.graph.AirportCount(),
		Flights:            s.catalog.Len(),
		Passengers:         s.passengers.Len(),
		ConfirmedBookings:  confirmed,
		WaitlistedBookings: waitlisted,
	}
}
