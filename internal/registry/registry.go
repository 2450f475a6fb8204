// Package registry is the passenger record store: a trivial keyed map of
// passenger records plus each passenger's booking index.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cx-tal-miterani/airline-network/internal/ident"
	"github.com/cx-tal-miterani/airline-network/internal/model"
)

// ErrPassengerNotFound is returned when a passenger id is unknown.
var ErrPassengerNotFound = errors.New("passenger not found")

// Registry stores passenger records keyed by id.
type Registry struct {
	mu         sync.RWMutex
	passengers map[string]*model.Passenger
	ids        ident.Generator
}

// New returns an empty registry minting ids with the given generator.
func New(ids ident.Generator) *Registry {
	return &Registry{
		passengers: make(map[string]*model.Passenger),
		ids:        ids,
	}
}

// Register creates a passenger record and returns it.
func (r *Registry) Register(name, email, phone string) *model.Passenger {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &model.Passenger{
		ID:    r.ids.NewID(),
		Name:  name,
		Email: email,
		Phone: phone,
	}
	r.passengers[p.ID] = p

	return p
}

// Get returns the passenger with the given id.
func (r *Registry) Get(passengerID string) (*model.Passenger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.passengers[passengerID]

	return p, ok
}

// AddBooking appends a booking id to the passenger's booking index.
func (r *Registry) AddBooking(passengerID, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passengers[passengerID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPassengerNotFound, passengerID)
	}
	p.Bookings = append(p.Bookings, bookingID)

	return nil
}

// RemoveBooking drops a booking id from the passenger's booking index.
// Absence is not an error.
func (r *Registry) RemoveBooking(passengerID, bookingID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passengers[passengerID]
	if !ok {
		return
	}
	for i, id := range p.Bookings {
		if id == bookingID {
			p.Bookings = append(p.Bookings[:i], p.Bookings[i+1:]...)
			return
		}
	}
}

// Bookings returns a copy of the passenger's booking index.
func (r *Registry) Bookings(passengerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.passengers[passengerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPassengerNotFound, passengerID)
	}

	out := make([]string, len(p.Bookings))
	copy(out, p.Bookings)

	return out, nil
}

// Len returns the number of registered passengers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.passengers)
}
