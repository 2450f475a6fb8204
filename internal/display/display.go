// Package display renders core results as human-readable text for the CLI.
// It is pure formatting; nothing here touches service state.
package display

import (
	"fmt"
	"strings"

	"github.com/cx-tal-miterani/airline-network/internal/airline"
	"github.com/cx-tal-miterani/airline-network/internal/model"
)

const timeLayout = "15:04"

// Flight formats a flight as a single line, e.g.
// "Flight FL001: NYC -> LAX (08:00 - 11:00) - $500.00".
func Flight(f model.Flight) string {
	return fmt.Sprintf("Flight %s: %s -> %s (%s - %s) - $%.2f",
		f.ID, f.Origin, f.Destination,
		f.DepartureTime.Format(timeLayout), f.ArrivalTime.Format(timeLayout),
		f.Price)
}

// FlightStatus formats a flight with its derived availability.
func FlightStatus(fs airline.FlightStatus) string {
	return fmt.Sprintf("%s | Available: %d | Waiting: %d",
		Flight(fs.Flight), fs.AvailableSeats, fs.Waitlisted)
}

// Booking formats a booking as a single line.
func Booking(b model.Booking) string {
	return fmt.Sprintf("Booking %s: Passenger %s -> Flight %s (%s)",
		b.ID, b.PassengerID, b.FlightID, b.Status)
}

// Passenger formats a passenger record.
func Passenger(p model.Passenger) string {
	return fmt.Sprintf("Passenger %s: %s (%s)", p.ID, p.Name, p.Email)
}

// Path joins an airport sequence with arrows.
func Path(path []string) string {
	return strings.Join(path, " -> ")
}

// Route formats one enumerated route with its aggregates.
func Route(r model.Route) string {
	return fmt.Sprintf("%s (Stops: %d, Distance: %.1f, Price: $%.2f)",
		Path(r.Path), r.Stops, r.TotalDistance, r.TotalPrice)
}

// Schedule formats the full flight schedule, one flight per line with its
// seat usage.
func Schedule(flights []model.Flight) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, f := range flights {
		fmt.Fprintf(&sb, "%s | Booked: %d/%d\n", Flight(f), f.BookedSeats, f.Capacity)
	}

	return sb.String()
}

// Stats formats the system statistics block.
func Stats(s airline.Stats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total Airports: %d\n", s.Airports)
	fmt.Fprintf(&sb, "Total Flights: %d\n", s.Flights)
	fmt.Fprintf(&sb, "Total Passengers: %d\n", s.Passengers)
	fmt.Fprintf(&sb, "Confirmed Bookings: %d\n", s.ConfirmedBookings)
	fmt.Fprintf(&sb, "Waitlisted Bookings: %d\n", s.WaitlistedBookings)

	return sb.String()
}
