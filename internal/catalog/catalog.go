// Package catalog owns the flight entities: keyed lookup by flight id plus a
// departure-time-ordered schedule supporting insert, remove and range reads.
package catalog

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cx-tal-miterani/airline-network/internal/model"
)

var (
	// ErrDuplicateFlight is returned when adding a flight whose id is already
	// present in the catalog.
	ErrDuplicateFlight = errors.New("duplicate flight id")
)

// Catalog is the single writer for flight entities. Structural mutation is
// serialized behind one catalog-wide lock; these are rare administrative
// operations, so a coarse lock is sufficient.
type Catalog struct {
	mu       sync.RWMutex
	flights  map[string]*model.Flight
	schedule []*model.Flight // ordered by DepartureTime, ties by insertion order
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{flights: make(map[string]*model.Flight)}
}

// Add inserts a flight into the id map and the ordered schedule. It fails
// with ErrDuplicateFlight if the id is already present.
func (c *Catalog) Add(f *model.Flight) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.flights[f.ID]; ok {
		return ErrDuplicateFlight
	}
	c.flights[f.ID] = f

	// Insert after all flights departing at or before f; equal departure
	// times keep insertion order.
	i := sort.Search(len(c.schedule), func(i int) bool {
		return c.schedule[i].DepartureTime.After(f.DepartureTime)
	})
	c.schedule = append(c.schedule, nil)
	copy(c.schedule[i+1:], c.schedule[i:])
	c.schedule[i] = f

	return nil
}

// Remove deletes a flight from both structures. It reports false if the id
// is unknown.
func (c *Catalog) Remove(flightID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.flights[flightID]; !ok {
		return false
	}
	delete(c.flights, flightID)

	for i, f := range c.schedule {
		if f.ID == flightID {
			c.schedule = append(c.schedule[:i], c.schedule[i+1:]...)
			break
		}
	}

	return true
}

// Get returns the flight with the given id.
func (c *Catalog) Get(flightID string) (*model.Flight, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := c.flights[flightID]

	return f, ok
}

// FlightsFrom returns all flights departing from the given airport, in
// schedule order.
func (c *Catalog) FlightsFrom(origin string) []*model.Flight {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*model.Flight
	for _, f := range c.schedule {
		if f.Origin == origin {
			out = append(out, f)
		}
	}

	return out
}

// DepartingBetween returns the flights departing in [from, to), in schedule
// order.
func (c *Catalog) DepartingBetween(from, to time.Time) []*model.Flight {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lo := sort.Search(len(c.schedule), func(i int) bool {
		return !c.schedule[i].DepartureTime.Before(from)
	})
	hi := sort.Search(len(c.schedule), func(i int) bool {
		return !c.schedule[i].DepartureTime.Before(to)
	})

	out := make([]*model.Flight, hi-lo)
	copy(out, c.schedule[lo:hi])

	return out
}

// Schedule returns the full flight list ordered by departure time ascending.
func (c *Catalog) Schedule() []*model.Flight {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*model.Flight, len(c.schedule))
	copy(out, c.schedule)

	return out
}

// Len returns the number of flights in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.flights)
}
