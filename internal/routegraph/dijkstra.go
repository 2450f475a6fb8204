package routegraph

import (
	"container/heap"
	"fmt"

	"github.com/cx-tal-miterani/airline-network/internal/model"
)

// ShortestRoute runs Dijkstra's algorithm over the flight multigraph using
// the chosen criterion as non-negative edge weight. It returns the airport
// sequence and total cost of a minimum-cost path.
//
// ErrAirportNotFound is returned if either airport is unknown and
// ErrRouteNotFound if no path exists. Ties between equal-cost paths may
// resolve to any one optimal path. Requesting origin == destination yields
// the trivial zero-cost single-airport path.
//
// Complexity: O((V + E) log V) time, O(V + E) space, using a lazy
// decrease-key min-heap (stale entries are skipped when popped).
func (g *Graph) ShortestRoute(origin, destination string, criterion model.Criterion) (model.ShortestRoute, error) {
	if !criterion.Valid() {
		return model.ShortestRoute{}, fmt.Errorf("%w: %q", ErrInvalidCriterion, criterion)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.airports[origin]; !ok {
		return model.ShortestRoute{}, fmt.Errorf("%w: %s", ErrAirportNotFound, origin)
	}
	if _, ok := g.airports[destination]; !ok {
		return model.ShortestRoute{}, fmt.Errorf("%w: %s", ErrAirportNotFound, destination)
	}

	if origin == destination {
		return model.ShortestRoute{Path: []string{origin}, Cost: 0}, nil
	}

	dist := map[string]float64{origin: 0}
	prev := make(map[string]string)
	visited := make(map[string]bool, len(g.airports))

	pq := &routePQ{{airport: origin, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(routeItem)
		if visited[item.airport] {
			continue // stale entry from lazy decrease-key
		}
		visited[item.airport] = true

		if item.airport == destination {
			return model.ShortestRoute{
				Path: reconstruct(prev, origin, destination),
				Cost: item.cost,
			}, nil
		}

		for _, f := range g.adjacent[item.airport] {
			next := f.Destination
			if visited[next] {
				continue
			}

			candidate := item.cost + weight(f, criterion)
			if best, ok := dist[next]; ok && candidate >= best {
				continue
			}
			dist[next] = candidate
			prev[next] = item.airport
			heap.Push(pq, routeItem{airport: next, cost: candidate})
		}
	}

	return model.ShortestRoute{}, fmt.Errorf("%w: %s to %s", ErrRouteNotFound, origin, destination)
}

// reconstruct walks the predecessor map back from destination to origin.
func reconstruct(prev map[string]string, origin, destination string) []string {
	var rev []string
	for at := destination; ; {
		rev = append(rev, at)
		if at == origin {
			break
		}
		at = prev[at]
	}

	path := make([]string, len(rev))
	for i, a := range rev {
		path[len(rev)-1-i] = a
	}

	return path
}

// routeItem is a (airport, cost-from-origin) pair stored in the priority
// queue.
type routeItem struct {
	airport string
	cost    float64
}

// routePQ is a min-heap of routeItem ordered by cost ascending.
type routePQ []routeItem

func (pq routePQ) Len() int            { return len(pq) }
func (pq routePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq routePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *routePQ) Push(x interface{}) { *pq = append(*pq, x.(routeItem)) }

func (pq *routePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
