package routegraph

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cx-tal-miterani/airline-network/internal/model"
)

var flightSeq int

func edge(origin, dest string, distance, price float64) *model.Flight {
	flightSeq++
	dep := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	return model.NewFlight(
		fmt.Sprintf("FL%03d", flightSeq), origin, dest,
		dep, dep.Add(2*time.Hour), 100, price, distance)
}

// twoLegGraph is NYC -> CHI -> LAX with no direct NYC -> LAX edge.
func twoLegGraph() *Graph {
	g := New()
	g.AddRoute(edge("NYC", "CHI", 790, 300))
	g.AddRoute(edge("CHI", "LAX", 1745, 400))

	return g
}

func TestShortestRoute_TwoLegs(t *testing.T) {
	g := twoLegGraph()

	tests := []struct {
		name      string
		criterion model.Criterion
		wantCost  float64
	}{
		{name: "by distance", criterion: model.CriterionDistance, wantCost: 2535},
		{name: "by price", criterion: model.CriterionPrice, wantCost: 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, err := g.ShortestRoute("NYC", "LAX", tt.criterion)
			require.NoError(t, err)
			assert.Equal(t, []string{"NYC", "CHI", "LAX"}, route.Path)
			assert.Equal(t, tt.wantCost, route.Cost)
		})
	}
}

func TestShortestRoute_PicksCheaperOfSeveral(t *testing.T) {
	g := New()
	g.AddRoute(edge("NYC", "LAX", 2445, 500))
	g.AddRoute(edge("NYC", "CHI", 790, 100))
	g.AddRoute(edge("CHI", "LAX", 1745, 100))

	byDistance, err := g.ShortestRoute("NYC", "LAX", model.CriterionDistance)
	require.NoError(t, err)
	assert.Equal(t, []string{"NYC", "LAX"}, byDistance.Path)
	assert.Equal(t, 2445.0, byDistance.Cost)

	byPrice, err := g.ShortestRoute("NYC", "LAX", model.CriterionPrice)
	require.NoError(t, err)
	assert.Equal(t, []string{"NYC", "CHI", "LAX"}, byPrice.Path)
	assert.Equal(t, 200.0, byPrice.Cost)
}

func TestShortestRoute_ParallelEdges(t *testing.T) {
	// Two flights on the same leg; the cheaper one must win under price.
	g := New()
	g.AddRoute(edge("NYC", "CHI", 790, 300))
	g.AddRoute(edge("NYC", "CHI", 790, 200))

	route, err := g.ShortestRoute("NYC", "CHI", model.CriterionPrice)
	require.NoError(t, err)
	assert.Equal(t, 200.0, route.Cost)
}

func TestShortestRoute_Errors(t *testing.T) {
	g := twoLegGraph()
	g.AddAirport("DEN") // known but unreachable

	tests := []struct {
		name    string
		origin  string
		dest    string
		wantErr error
	}{
		{name: "unknown origin", origin: "XXX", dest: "LAX", wantErr: ErrAirportNotFound},
		{name: "unknown destination", origin: "NYC", dest: "XXX", wantErr: ErrAirportNotFound},
		{name: "no path", origin: "NYC", dest: "DEN", wantErr: ErrRouteNotFound},
		{name: "wrong direction", origin: "LAX", dest: "NYC", wantErr: ErrRouteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.ShortestRoute(tt.origin, tt.dest, model.CriterionDistance)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShortestRoute_SameAirport(t *testing.T) {
	g := twoLegGraph()

	route, err := g.ShortestRoute("NYC", "NYC", model.CriterionDistance)
	require.NoError(t, err)
	assert.Equal(t, []string{"NYC"}, route.Path)
	assert.Zero(t, route.Cost)
}

func TestShortestRoute_InvalidCriterion(t *testing.T) {
	g := twoLegGraph()

	_, err := g.ShortestRoute("NYC", "LAX", model.Criterion("duration"))
	assert.ErrorIs(t, err, ErrInvalidCriterion)
}

func TestRoutes_StopBound(t *testing.T) {
	g := twoLegGraph()

	// No direct edge: zero stops finds nothing, one stop finds the two-leg path.
	assert.Empty(t, g.Routes("NYC", "LAX", 0))

	routes := g.Routes("NYC", "LAX", 1)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"NYC", "CHI", "LAX"}, routes[0].Path)
	assert.Equal(t, 1, routes[0].Stops)
	assert.Equal(t, 2535.0, routes[0].TotalDistance)
	assert.Equal(t, 700.0, routes[0].TotalPrice)
}

func TestRoutes_Exhaustive(t *testing.T) {
	g := New()
	g.AddRoute(edge("NYC", "LAX", 2445, 500))
	g.AddRoute(edge("NYC", "CHI", 790, 300))
	g.AddRoute(edge("CHI", "LAX", 1745, 400))
	g.AddRoute(edge("NYC", "MIA", 1090, 350))
	g.AddRoute(edge("MIA", "LAX", 2342, 450))

	routes := g.Routes("NYC", "LAX", 1)
	require.Len(t, routes, 3)

	paths := make(map[string]model.Route, len(routes))
	for _, r := range routes {
		key := ""
		for _, a := range r.Path {
			key += a + "/"
		}
		paths[key] = r
	}

	direct, ok := paths["NYC/LAX/"]
	require.True(t, ok)
	assert.Equal(t, 0, direct.Stops)
	assert.Equal(t, 2445.0, direct.TotalDistance)

	viaChi, ok := paths["NYC/CHI/LAX/"]
	require.True(t, ok)
	assert.Equal(t, 1, viaChi.Stops)
	assert.Equal(t, 700.0, viaChi.TotalPrice)

	_, ok = paths["NYC/MIA/LAX/"]
	assert.True(t, ok)
}

func TestRoutes_SimplePathsOnly(t *testing.T) {
	// A ring A -> B -> C -> A plus B -> D; a generous bound must not produce
	// paths revisiting an airport.
	g := New()
	g.AddRoute(edge("A", "B", 1, 1))
	g.AddRoute(edge("B", "C", 1, 1))
	g.AddRoute(edge("C", "A", 1, 1))
	g.AddRoute(edge("B", "D", 1, 1))

	routes := g.Routes("A", "D", 10)
	require.Len(t, routes, 1)
	assert.Equal(t, []string{"A", "B", "D"}, routes[0].Path)

	for _, r := range routes {
		seen := make(map[string]bool)
		for _, a := range r.Path {
			assert.False(t, seen[a], "airport %s repeated in %v", a, r.Path)
			seen[a] = true
		}
	}
}

func TestRoutes_ParallelEdgesEnumerated(t *testing.T) {
	g := New()
	g.AddRoute(edge("NYC", "CHI", 790, 300))
	g.AddRoute(edge("NYC", "CHI", 790, 250))

	routes := g.Routes("NYC", "CHI", 0)
	require.Len(t, routes, 2, "parallel flights are distinct routes")
	assert.NotEqual(t, routes[0].TotalPrice, routes[1].TotalPrice)
}

func TestRoutes_UnknownAirportsYieldEmpty(t *testing.T) {
	g := twoLegGraph()

	assert.Empty(t, g.Routes("XXX", "LAX", 3))
	assert.Empty(t, g.Routes("NYC", "XXX", 3))
	assert.Empty(t, g.Routes("NYC", "LAX", -1))
}

func TestRemoveRoute(t *testing.T) {
	g := New()
	f := edge("NYC", "CHI", 790, 300)
	g.AddRoute(f)
	g.AddRoute(edge("CHI", "LAX", 1745, 400))

	g.RemoveRoute("NYC", f.ID)

	_, err := g.ShortestRoute("NYC", "LAX", model.CriterionDistance)
	assert.ErrorIs(t, err, ErrRouteNotFound)
	assert.True(t, g.HasAirport("NYC"), "airport survives route removal")
}
