// Package routegraph provides the route planner: an adjacency view over
// flights grouped by origin airport, shortest-path queries via Dijkstra's
// algorithm, and bounded-stop enumeration of simple paths.
//
// Every flight is kept as its own directed edge; parallel flights between the
// same pair of airports are never collapsed, so queries operate over real
// schedulable flights rather than synthetic aggregates.
package routegraph

import (
	"errors"
	"sync"

	"github.com/cx-tal-miterani/airline-network/internal/model"
)

var (
	// ErrAirportNotFound is returned when a route query names an airport the
	// graph has never seen.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrRouteNotFound is returned when both airports are known but no path
	// connects them.
	ErrRouteNotFound = errors.New("no route found")

	// ErrInvalidCriterion is returned for a criterion other than distance or
	// price.
	ErrInvalidCriterion = errors.New("invalid routing criterion")
)

// Graph is a directed multigraph of airports connected by flights. It reads
// only the immutable flight fields (origin, destination, price, distance), so
// queries may run concurrently with bookings; structural mutation is guarded
// against concurrent queries by an internal lock.
type Graph struct {
	mu       sync.RWMutex
	airports map[string]struct{}
	adjacent map[string][]*model.Flight
}

// New returns an empty route graph.
func New() *Graph {
	return &Graph{
		airports: make(map[string]struct{}),
		adjacent: make(map[string][]*model.Flight),
	}
}

// AddAirport registers an airport with no routes.
func (g *Graph) AddAirport(code string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.airports[code] = struct{}{}
}

// AddRoute registers the flight as a directed edge and adds both endpoints to
// the known-airport set.
func (g *Graph) AddRoute(f *model.Flight) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.airports[f.Origin] = struct{}{}
	g.airports[f.Destination] = struct{}{}
	g.adjacent[f.Origin] = append(g.adjacent[f.Origin], f)
}

// RemoveRoute drops the edge for the given flight id. The endpoints stay in
// the known-airport set.
func (g *Graph) RemoveRoute(origin, flightID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	edges := g.adjacent[origin]
	for i, f := range edges {
		if f.ID == flightID {
			g.adjacent[origin] = append(edges[:i], edges[i+1:]...)
			return
		}
	}
}

// HasAirport reports whether the airport is known to the graph.
func (g *Graph) HasAirport(code string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.airports[code]

	return ok
}

// AirportCount returns the number of known airports.
func (g *Graph) AirportCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.airports)
}

// weight returns the edge weight of f under the given criterion.
func weight(f *model.Flight, criterion model.Criterion) float64 {
	if criterion == model.CriterionPrice {
		return f.Price
	}

	return f.Distance
}
