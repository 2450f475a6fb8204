// Package ledger implements seat admission control: a booking request is
// confirmed while capacity remains and waitlisted once it is exhausted;
// cancelling a confirmed booking promotes the longest-waiting waitlisted
// booking into the freed seat.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cx-tal-miterani/airline-network/internal/ident"
	"github.com/cx-tal-miterani/airline-network/internal/model"
)

var (
	// ErrBookingNotFound is returned when a booking id is unknown.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled is returned when cancelling a booking already in
	// its terminal state.
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrAlreadyBooked is returned when a passenger with an active booking
	// on a flight requests another seat on the same flight.
	ErrAlreadyBooked = errors.New("passenger already booked on flight")

	// ErrFlightGone is returned when a booking references a flight that has
	// since been removed from the catalog.
	ErrFlightGone = errors.New("flight no longer exists")
)

// FlightResolver looks up the flight a booking refers to. The flight catalog
// satisfies it.
type FlightResolver interface {
	Get(flightID string) (*model.Flight, bool)
}

// Ledger owns all booking entities and mutates flight seat inventory. Every
// mutation of one flight's inventory runs under that flight's lock, so
// operations on different flights proceed in parallel while per-flight
// effects are observed in lock-grant order. The booking table has its own
// short-lived lock, only ever taken while a flight lock is already held or
// no flight lock is held at all, never the other way around.
type Ledger struct {
	flights FlightResolver
	ids     ident.Generator
	now     func() time.Time

	mu       sync.Mutex
	bookings map[string]*model.Booking

	lockMu      sync.Mutex
	flightLocks map[string]*sync.Mutex
}

// New returns a ledger resolving flights through the given resolver and
// minting booking ids with the given generator.
func New(flights FlightResolver, ids ident.Generator) *Ledger {
	return &Ledger{
		flights:     flights,
		ids:         ids,
		now:         time.Now,
		bookings:    make(map[string]*model.Booking),
		flightLocks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing inventory mutation for one flight.
func (l *Ledger) lockFor(flightID string) *sync.Mutex {
	l.lockMu.Lock()
	defer l.lockMu.Unlock()

	lk, ok := l.flightLocks[flightID]
	if !ok {
		lk = &sync.Mutex{}
		l.flightLocks[flightID] = lk
	}

	return lk
}

// Book admits or defers a booking request for the given flight. While seats
// remain the booking is created Confirmed and a seat is taken; once capacity
// is exhausted the booking is created Waitlisted and appended to the tail of
// the flight's FIFO waitlist. Capacity exhaustion is a normal outcome, not an
// error.
//
// A passenger may hold at most one active booking per flight; a second
// request while one is active fails with ErrAlreadyBooked and changes
// nothing.
func (l *Ledger) Book(flight *model.Flight, passengerID string) (*model.Booking, error) {
	lk := l.lockFor(flight.ID)
	lk.Lock()
	defer lk.Unlock()

	if _, ok := flight.Confirmed[passengerID]; ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrAlreadyBooked, passengerID, flight.ID)
	}
	if l.waitlisted(flight, passengerID) {
		return nil, fmt.Errorf("%w: %s on %s", ErrAlreadyBooked, passengerID, flight.ID)
	}

	b := &model.Booking{
		ID:          l.ids.NewID(),
		PassengerID: passengerID,
		FlightID:    flight.ID,
		CreatedAt:   l.now(),
	}

	if flight.IsAvailable() {
		b.Status = model.BookingStatusConfirmed
		flight.BookedSeats++
		flight.Confirmed[passengerID] = struct{}{}
	} else {
		b.Status = model.BookingStatusWaitlisted
		flight.Waitlist = append(flight.Waitlist, b.ID)
	}

	l.mu.Lock()
	l.bookings[b.ID] = b
	l.mu.Unlock()

	return b, nil
}

// Cancel moves a booking to its terminal Cancelled state. Cancelling a
// confirmed booking frees its seat and, if the waitlist is non-empty,
// immediately promotes the head waitlisted booking into it, leaving
// BookedSeats unchanged. Cancelling a waitlisted booking removes its waitlist
// entry. The whole call either fully applies or, on a failed precondition,
// applies nothing.
func (l *Ledger) Cancel(bookingID string) error {
	l.mu.Lock()
	b, ok := l.bookings[bookingID]
	l.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	lk := l.lockFor(b.FlightID)
	lk.Lock()
	defer lk.Unlock()

	if b.Status == model.BookingStatusCancelled {
		return fmt.Errorf("%w: %s", ErrAlreadyCancelled, bookingID)
	}

	flight, ok := l.flights.Get(b.FlightID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFlightGone, b.FlightID)
	}

	switch b.Status {
	case model.BookingStatusConfirmed:
		flight.BookedSeats--
		delete(flight.Confirmed, b.PassengerID)
		l.promote(flight)

	case model.BookingStatusWaitlisted:
		// Best-effort removal; the entry may already have been promoted away.
		for i, id := range flight.Waitlist {
			if id == bookingID {
				flight.Waitlist = append(flight.Waitlist[:i], flight.Waitlist[i+1:]...)
				break
			}
		}
	}

	l.setStatus(b, model.BookingStatusCancelled)

	return nil
}

// promote pops the head of the flight's waitlist and confirms that booking,
// taking the seat just freed. Called with the flight lock held.
func (l *Ledger) promote(flight *model.Flight) {
	for len(flight.Waitlist) > 0 {
		headID := flight.Waitlist[0]
		flight.Waitlist = flight.Waitlist[1:]

		l.mu.Lock()
		head, ok := l.bookings[headID]
		l.mu.Unlock()
		if !ok || head.Status != model.BookingStatusWaitlisted {
			continue // stale entry, try the next-longest waiter
		}

		l.setStatus(head, model.BookingStatusConfirmed)
		flight.BookedSeats++
		flight.Confirmed[head.PassengerID] = struct{}{}

		return
	}
}

// setStatus updates a booking's status under the table lock so concurrent
// readers of the booking table see a consistent value.
func (l *Ledger) setStatus(b *model.Booking, status model.BookingStatus) {
	l.mu.Lock()
	b.Status = status
	l.mu.Unlock()
}

// waitlisted reports whether the passenger already has a waitlisted booking
// on the flight. Called with the flight lock held.
func (l *Ledger) waitlisted(flight *model.Flight, passengerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, id := range flight.Waitlist {
		if b, ok := l.bookings[id]; ok && b.PassengerID == passengerID {
			return true
		}
	}

	return false
}

// Get returns a copy of the booking with the given id.
func (l *Ledger) Get(bookingID string) (model.Booking, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.bookings[bookingID]
	if !ok {
		return model.Booking{}, false
	}

	return *b, true
}

// Snapshot returns a consistent copy of the flight together with its current
// waitlist length, taken under the flight's lock.
func (l *Ledger) Snapshot(flight *model.Flight) (model.Flight, int) {
	lk := l.lockFor(flight.ID)
	lk.Lock()
	defer lk.Unlock()

	return *flight, len(flight.Waitlist)
}

// Counts returns the number of bookings currently in each active state.
func (l *Ledger) Counts() (confirmed, waitlisted int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.bookings {
		switch b.Status {
		case model.BookingStatusConfirmed:
			confirmed++
		case model.BookingStatusWaitlisted:
			waitlisted++
		}
	}

	return confirmed, waitlisted
}
