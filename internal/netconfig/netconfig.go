// Package netconfig loads a flight network definition from YAML and feeds it
// into the airline service.
package netconfig

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cx-tal-miterani/airline-network/internal/airline"
)

const timeLayout = "15:04"

// FlightDef is one flight entry in a network file. Departure and arrival are
// times of day in 24-hour HH:MM form.
type FlightDef struct {
	ID          string  `yaml:"id"`
	Origin      string  `yaml:"origin"`
	Destination string  `yaml:"destination"`
	Departure   string  `yaml:"departure"`
	Arrival     string  `yaml:"arrival"`
	Capacity    int     `yaml:"capacity"`
	Price       float64 `yaml:"price"`
	Distance    float64 `yaml:"distance"`
}

// Network is a full flight network definition.
type Network struct {
	Airports []string    `yaml:"airports"`
	Flights  []FlightDef `yaml:"flights"`
}

// Load reads and parses a network file.
func Load(path string) (Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Network{}, fmt.Errorf("read network file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a network definition from YAML.
func Parse(data []byte) (Network, error) {
	var n Network
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Network{}, fmt.Errorf("parse network file: %w", err)
	}

	return n, nil
}

// Apply registers the network's airports and flights with the service.
func (n Network) Apply(svc airline.Service) error {
	for _, code := range n.Airports {
		svc.AddAirport(code)
	}

	for _, fd := range n.Flights {
		dep, err := time.Parse(timeLayout, fd.Departure)
		if err != nil {
			return fmt.Errorf("flight %s: bad departure %q: %w", fd.ID, fd.Departure, err)
		}
		arr, err := time.Parse(timeLayout, fd.Arrival)
		if err != nil {
			return fmt.Errorf("flight %s: bad arrival %q: %w", fd.ID, fd.Arrival, err)
		}

		if err := svc.AddFlight(fd.ID, fd.Origin, fd.Destination, dep, arr, fd.Capacity, fd.Price, fd.Distance); err != nil {
			return err
		}
	}

	return nil
}

// Sample is the built-in demo network used when no network file is given.
func Sample() Network {
	return Network{
		Airports: []string{"NYC", "LAX", "CHI", "MIA", "SEA", "DEN"},
		Flights: []FlightDef{
			{ID: "FL001", Origin: "NYC", Destination: "LAX", Departure: "08:00", Arrival: "11:00", Capacity: 150, Price: 500, Distance: 2445},
			{ID: "FL002", Origin: "LAX", Destination: "NYC", Departure: "14:00", Arrival: "22:00", Capacity: 150, Price: 550, Distance: 2445},
			{ID: "FL003", Origin: "NYC", Destination: "CHI", Departure: "09:00", Arrival: "11:30", Capacity: 120, Price: 300, Distance: 790},
			{ID: "FL004", Origin: "CHI", Destination: "LAX", Departure: "13:00", Arrival: "15:30", Capacity: 120, Price: 400, Distance: 1745},
			{ID: "FL005", Origin: "NYC", Destination: "MIA", Departure: "10:00", Arrival: "13:00", Capacity: 100, Price: 350, Distance: 1090},
			{ID: "FL006", Origin: "MIA", Destination: "LAX", Departure: "15:00", Arrival: "18:00", Capacity: 100, Price: 450, Distance: 2342},
			{ID: "FL007", Origin: "SEA", Destination: "NYC", Departure: "07:00", Arrival: "15:00", Capacity: 130, Price: 600, Distance: 2408},
			{ID: "FL008", Origin: "DEN", Destination: "MIA", Departure: "11:00", Arrival: "15:30", Capacity: 110, Price: 400, Distance: 1726},
			{ID: "FL009", Origin: "CHI", Destination: "SEA", Departure: "16:00", Arrival: "18:30", Capacity: 90, Price: 350, Distance: 1721},
			{ID: "FL010", Origin: "LAX", Destination: "SEA", Departure: "12:00", Arrival: "14:30", Capacity: 140, Price: 250, Distance: 954},
		},
	}
}
