package routegraph

import (
	"github.com/cx-tal-miterani/airline-network/internal/model"
)

// frame is one level of the explicit depth-first search stack: the airport
// the search stands on, a cursor into its outgoing edges, and the path cost
// accumulated from the origin.
type frame struct {
	airport string
	next    int
	dist    float64
	price   float64
}

// Routes enumerates every simple path (no airport repeated) from origin to
// destination with at most maxStops intermediate airports, i.e. at most
// maxStops+1 flight legs. A direct flight has zero stops. Each result carries
// the airport sequence, stop count, and the summed distance and price of its
// legs. Parallel flights are distinct edges, so the same airport sequence can
// appear once per leg combination.
//
// Routes returns an empty slice, never an error, when nothing qualifies —
// including when either airport is unknown. Zero-length paths
// (origin == destination with no legs) are never included.
//
// The search is depth-first over an explicit stack; termination is guaranteed
// by the stop bound and the simple-path constraint. The result count is
// exponential in the branching factor, up to airports^maxStops paths, so
// callers should keep maxStops small.
func (g *Graph) Routes(origin, destination string, maxStops int) []model.Route {
	if maxStops < 0 {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	maxLegs := maxStops + 1

	stack := []frame{{airport: origin}}
	onPath := map[string]bool{origin: true}

	var routes []model.Route
	for len(stack) > 0 {
		fr := &stack[len(stack)-1]
		edges := g.adjacent[fr.airport]

		if fr.next >= len(edges) {
			delete(onPath, fr.airport)
			stack = stack[:len(stack)-1]
			continue
		}

		f := edges[fr.next]
		fr.next++

		if onPath[f.Destination] {
			continue
		}

		if f.Destination == destination {
			// Taking this leg uses len(stack) edges in total.
			if len(stack) <= maxLegs {
				path := make([]string, 0, len(stack)+1)
				for i := range stack {
					path = append(path, stack[i].airport)
				}
				path = append(path, destination)

				routes = append(routes, model.Route{
					Path:          path,
					Stops:         len(stack) - 1,
					TotalDistance: fr.dist + f.Distance,
					TotalPrice:    fr.price + f.Price,
				})
			}
			continue
		}

		// Descending here spends one leg, and at least one more is needed to
		// reach the destination.
		if len(stack) >= maxLegs {
			continue
		}

		onPath[f.Destination] = true
		stack = append(stack, frame{
			airport: f.Destination,
			dist:    fr.dist + f.Distance,
			price:   fr.price + f.Price,
		})
	}

	return routes
}
