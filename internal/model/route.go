package model

// Criterion selects the edge weight a shortest-path query optimizes for.
type Criterion string

const (
	CriterionDistance Criterion = "distance"
	CriterionPrice    Criterion = "price"
)

// Valid reports whether c names a supported routing criterion.
func (c Criterion) Valid() bool {
	return c == CriterionDistance || c == CriterionPrice
}

// Route is one multi-leg itinerary between two airports. Path holds the
// airport sequence including both endpoints; Stops counts intermediate
// airports, so a direct flight has zero stops.
type Route struct {
	Path          []string `json:"path"`
	Stops         int      `json:"stops"`
	TotalDistance float64  `json:"totalDistance"`
	TotalPrice    float64  `json:"totalPrice"`
}

// ShortestRoute is the result of a shortest-path query: the airport sequence
// and the total cost under the requested criterion.
type ShortestRoute struct {
	Path []string `json:"path"`
	Cost float64  `json:"cost"`
}
