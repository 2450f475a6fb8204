package airline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/airline-network/internal/ident"
	"github.com/cx-tal-miterani/airline-network/internal/ledger"
	"github.com/cx-tal-miterani/airline-network/internal/model"
	"github.com/cx-tal-miterani/airline-network/internal/registry"
	"github.com/cx-tal-miterani/airline-network/internal/routegraph"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 6, 1, hour, min, 0, 0, time.UTC)
}

// sampleNetwork builds a service with a small network: NYC -> CHI -> LAX plus
// an isolated DEN.
func sampleNetwork(t *testing.T) Service {
	t.Helper()

	svc := NewService(&ident.Sequential{Prefix: "id"})
	for _, code := range []string{"NYC", "CHI", "LAX", "DEN"} {
		svc.AddAirport(code)
	}
	require.NoError(t, svc.AddFlight("FL003", "NYC", "CHI", at(9, 0), at(11, 30), 120, 300, 790))
	require.NoError(t, svc.AddFlight("FL004", "CHI", "LAX", at(13, 0), at(15, 30), 120, 400, 1745))

	return svc
}

func TestAddFlight_Validation(t *testing.T) {
	svc := NewService(&ident.Sequential{Prefix: "id"})

	tests := []struct {
		name     string
		capacity int
		price    float64
		distance float64
		wantErr  error
	}{
		{name: "zero capacity", capacity: 0, price: 100, distance: 100, wantErr: ErrInvalidCapacity},
		{name: "negative capacity", capacity: -5, price: 100, distance: 100, wantErr: ErrInvalidCapacity},
		{name: "negative price", capacity: 10, price: -1, distance: 100, wantErr: ErrNegativeWeight},
		{name: "negative distance", capacity: 10, price: 100, distance: -1, wantErr: ErrNegativeWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.AddFlight("FL001", "NYC", "LAX", at(8, 0), at(11, 0), tt.capacity, tt.price, tt.distance)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAddFlight_Duplicate(t *testing.T) {
	svc := sampleNetwork(t)

	err := svc.AddFlight("FL003", "NYC", "CHI", at(9, 0), at(11, 30), 120, 300, 790)
	assert.Error(t, err)
}

func TestBookFlight_UnknownIDs(t *testing.T) {
	svc := sampleNetwork(t)
	p := svc.RegisterPassenger("John Doe", "john@email.com", "123-456-7890")

	_, _, err := svc.BookFlight("ghost", "FL003")
	assert.ErrorIs(t, err, registry.ErrPassengerNotFound)

	_, _, err = svc.BookFlight(p.ID, "FL999")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestBookAndCancelLifecycle(t *testing.T) {
	svc := NewService(&ident.Sequential{Prefix: "id"})
	require.NoError(t, svc.AddFlight("FL001", "NYC", "LAX", at(8, 0), at(11, 0), 1, 500, 2445))

	alice := svc.RegisterPassenger("Alice", "alice@email.com", "1")
	bob := svc.RegisterPassenger("Bob", "bob@email.com", "2")

	aID, aStatus, err := svc.BookFlight(alice.ID, "FL001")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusConfirmed, aStatus)

	bID, bStatus, err := svc.BookFlight(bob.ID, "FL001")
	require.NoError(t, err)
	assert.Equal(t, model.BookingStatusWaitlisted, bStatus)

	status := svc.FlightsFrom("NYC", "")
	require.Len(t, status, 1)
	assert.Equal(t, 0, status[0].AvailableSeats)
	assert.Equal(t, 1, status[0].Waitlisted)

	// Cancelling Alice promotes Bob into the freed seat.
	require.NoError(t, svc.CancelBooking(aID))

	bobBookings, err := svc.PassengerBookings(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobBookings, 1)
	assert.Equal(t, bID, bobBookings[0].ID)
	assert.Equal(t, model.BookingStatusConfirmed, bobBookings[0].Status)

	// The cancelled booking left Alice's index.
	aliceBookings, err := svc.PassengerBookings(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceBookings)

	status = svc.FlightsFrom("NYC", "")
	require.Len(t, status, 1)
	assert.Equal(t, 0, status[0].AvailableSeats)
	assert.Equal(t, 0, status[0].Waitlisted)

	err = svc.CancelBooking(aID)
	assert.ErrorIs(t, err, ledger.ErrAlreadyCancelled)
}

func TestCancelBooking_Unknown(t *testing.T) {
	svc := sampleNetwork(t)

	err := svc.CancelBooking("nope")
	assert.ErrorIs(t, err, ledger.ErrBookingNotFound)
}

func TestShortestRoute_Delegation(t *testing.T) {
	svc := sampleNetwork(t)

	route, err := svc.ShortestRoute("NYC", "LAX", model.CriterionDistance)
	require.NoError(t, err)
	assert.Equal(t, []string{"NYC", "CHI", "LAX"}, route.Path)
	assert.Equal(t, 2535.0, route.Cost)

	_, err = svc.ShortestRoute("NYC", "DEN", model.CriterionDistance)
	assert.ErrorIs(t, err, routegraph.ErrRouteNotFound)

	_, err = svc.ShortestRoute("NYC", "XXX", model.CriterionDistance)
	assert.ErrorIs(t, err, routegraph.ErrAirportNotFound)
}

func TestAllRoutes_Delegation(t *testing.T) {
	svc := sampleNetwork(t)

	assert.Empty(t, svc.AllRoutes("NYC", "LAX", 0))

	routes := svc.AllRoutes("NYC", "LAX", 1)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"NYC", "CHI", "LAX"}, routes[0].Path)
}

func TestFlightsFrom_DestinationFilter(t *testing.T) {
	svc := sampleNetwork(t)
	require.NoError(t, svc.AddFlight("FL005", "NYC", "MIA", at(10, 0), at(13, 0), 100, 350, 1090))

	all := svc.FlightsFrom("NYC", "")
	assert.Len(t, all, 2)

	justChi := svc.FlightsFrom("NYC", "CHI")
	require.Len(t, justChi, 1)
	assert.Equal(t, "FL003", justChi[0].Flight.ID)

	assert.Empty(t, svc.FlightsFrom("NYC", "DEN"))
}

func TestRemoveFlight(t *testing.T) {
	svc := sampleNetwork(t)

	assert.True(t, svc.RemoveFlight("FL004"))
	assert.False(t, svc.RemoveFlight("FL004"))

	_, err := svc.ShortestRoute("NYC", "LAX", model.CriterionDistance)
	assert.ErrorIs(t, err, routegraph.ErrRouteNotFound)
	assert.Len(t, svc.Schedule(), 1)
}

func TestSchedule_Ordered(t *testing.T) {
	svc := sampleNetwork(t)
	require.NoError(t, svc.AddFlight("FL000", "DEN", "NYC", at(6, 0), at(10, 0), 100, 350, 1600))

	var ids []string
	for _, f := range svc.Schedule() {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"FL000", "FL003", "FL004"}, ids)
}

func TestStats(t *testing.T) {
	svc := NewService(&ident.Sequential{Prefix: "id"})
	svc.AddAirport("DEN")
	require.NoError(t, svc.AddFlight("FL001", "NYC", "LAX", at(8, 0), at(11, 0), 1, 500, 2445))

	a := svc.RegisterPassenger("Alice", "alice@email.com", "1")
	b := svc.RegisterPassenger("Bob", "bob@email.com", "2")
	_, _, err := svc.BookFlight(a.ID, "FL001")
	require.NoError(t, err)
	_, _, err = svc.BookFlight(b.ID, "FL001")
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, Stats{
		Airports:           3, // DEN plus the two flight endpoints
		Flights:            1,
		Passengers:         2,
		ConfirmedBookings:  1,
		WaitlistedBookings: 1,
	}, stats)
}

func TestPassengerBookings_Unknown(t *testing.T) {
	svc := sampleNetwork(t)

	_, err := svc.PassengerBookings("ghost")
	assert.ErrorIs(t, err, registry.ErrPassengerNotFound)
}
