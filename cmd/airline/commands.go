package main

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cx-tal-miterani/airline-network/internal/airline"
	"github.com/cx-tal-miterani/airline-network/internal/display"
	"github.com/cx-tal-miterani/airline-network/internal/ident"
	"github.com/cx-tal-miterani/airline-network/internal/model"
	"github.com/cx-tal-miterani/airline-network/internal/netconfig"
	"github.com/cx-tal-miterani/airline-network/internal/postgres"
)

// buildService loads the configured network (or the built-in sample) into a
// fresh service.
func buildService() (airline.Service, error) {
	network := netconfig.Sample()
	if path := viper.GetString("network"); path != "" {
		var err error
		network, err = netconfig.Load(path)
		if err != nil {
			return nil, err
		}
	}

	svc := airline.NewService(ident.UUID{})
	if err := network.Apply(svc); err != nil {
		return nil, err
	}

	return svc, nil
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the flight schedule ordered by departure time",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}
		fmt.Print(display.Schedule(svc.Schedule()))

		return nil
	},
}

var flightsCmd = &cobra.Command{
	Use:   "flights <origin> [destination]",
	Short: "List flights from an airport with seat availability",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}

		dest := ""
		if len(args) == 2 {
			dest = args[1]
		}

		flights := svc.FlightsFrom(args[0], dest)
		if len(flights) == 0 {
			fmt.Printf("No flights found from %s\n", args[0])
			return nil
		}
		for _, fs := range flights {
			fmt.Println(display.FlightStatus(fs))
		}

		return nil
	},
}

var shortestCmd = &cobra.Command{
	Use:   "shortest <origin> <destination> [distance|price]",
	Short: "Find the minimum-cost route between two airports",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}

		criterion := model.CriterionDistance
		if len(args) == 3 {
			criterion = model.Criterion(args[2])
		}

		route, err := svc.ShortestRoute(args[0], args[1], criterion)
		if err != nil {
			return err
		}
		fmt.Printf("Path: %s\n", display.Path(route.Path))
		fmt.Printf("Total %s: %.1f\n", criterion, route.Cost)

		return nil
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes <origin> <destination> [max-stops]",
	Short: "List all routes between two airports within a stop bound",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}

		maxStops := 2
		if len(args) == 3 {
			maxStops, err = strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("bad max-stops %q: %w", args[2], err)
			}
		}

		routes := svc.AllRoutes(args[0], args[1], maxStops)
		if len(routes) == 0 {
			fmt.Printf("No routes found from %s to %s\n", args[0], args[1])
			return nil
		}
		for i, r := range routes {
			fmt.Printf("%d. %s\n", i+1, display.Route(r))
		}

		return nil
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the scripted booking and routing demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService()
		if err != nil {
			return err
		}

		return runDemo(cmd.Context(), svc)
	},
}

// runDemo reproduces the canonical walkthrough: register passengers, search
// flights, plan routes, book, cancel with waitlist promotion, and print the
// schedule and statistics. When a database URL is configured, passengers and
// booking outcomes are archived.
func runDemo(ctx context.Context, svc airline.Service) error {
	var archive *postgres.Store
	if url := viper.GetString("database_url"); url != "" {
		var err error
		archive, err = postgres.Connect(ctx, url)
		if err != nil {
			return err
		}
		defer archive.Close()
		log.Printf("archiving demo bookings")
	}

	var passengers []*model.Passenger
	for _, p := range [][3]string{
		{"John Doe", "john@email.com", "123-456-7890"},
		{"Jane Smith", "jane@email.com", "234-567-8901"},
		{"Bob Johnson", "bob@email.com", "345-678-9012"},
		{"Alice Brown", "alice@email.com", "456-789-0123"},
	} {
		reg := svc.RegisterPassenger(p[0], p[1], p[2])
		passengers = append(passengers, reg)
		fmt.Println(display.Passenger(*reg))
		if archive != nil {
			if err := archive.SavePassenger(ctx, reg); err != nil {
				return err
			}
		}
	}

	fmt.Println("\n1. FLIGHT SEARCH")
	for _, fs := range svc.FlightsFrom("NYC", "LAX") {
		fmt.Println(display.FlightStatus(fs))
	}

	fmt.Println("\n2. ROUTE PLANNING")
	for _, criterion := range []model.Criterion{model.CriterionDistance, model.CriterionPrice} {
		route, err := svc.ShortestRoute("NYC", "SEA", criterion)
		if err != nil {
			return err
		}
		fmt.Printf("Shortest by %s: %s (%.1f)\n", criterion, display.Path(route.Path), route.Cost)
	}
	for i, r := range svc.AllRoutes("NYC", "LAX", 1) {
		fmt.Printf("%d. %s\n", i+1, display.Route(r))
	}

	fmt.Println("\n3. BOOKING")
	bookings := make([]string, 0, 3)
	for _, req := range []struct{ passenger, flight string }{
		{passengers[0].ID, "FL001"},
		{passengers[1].ID, "FL003"},
		{passengers[2].ID, "FL001"},
	} {
		id, status, err := svc.BookFlight(req.passenger, req.flight)
		if err != nil {
			return err
		}
		bookings = append(bookings, id)
		fmt.Printf("Booking %s: %s\n", id, status)
		if archive != nil {
			b, _ := svc.PassengerBookings(req.passenger)
			if err := archive.SaveBooking(ctx, &b[len(b)-1]); err != nil {
				return err
			}
		}
	}

	fmt.Println("\n4. PASSENGER BOOKINGS")
	list, err := svc.PassengerBookings(passengers[0].ID)
	if err != nil {
		return err
	}
	for _, b := range list {
		fmt.Println(display.Booking(b))
	}

	fmt.Println("\n5. CANCELLATION")
	if err := svc.CancelBooking(bookings[0]); err != nil {
		return err
	}
	fmt.Printf("Booking %s cancelled\n", bookings[0])
	if archive != nil {
		if err := archive.UpdateBookingStatus(ctx, bookings[0], model.BookingStatusCancelled); err != nil {
			return err
		}
	}

	fmt.Println("\n6. FLIGHT SCHEDULE")
	fmt.Print(display.Schedule(svc.Schedule()))

	fmt.Println("\n7. STATISTICS")
	fmt.Print(display.Stats(svc.Stats()))

	return nil
}
