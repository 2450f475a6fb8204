package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var networkFile string

var rootCmd = &cobra.Command{
	Use:   "airline",
	Short: "Airline network demo driver",
	Long: `airline loads a flight network and runs route planning and booking
operations against it. Without --network the built-in sample network is used.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(flightsCmd)
	rootCmd.AddCommand(shortestCmd)
	rootCmd.AddCommand(routesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&networkFile, "network", "", "network definition file (YAML)")
	rootCmd.PersistentFlags().String("database-url", "", "optional postgres URL for archiving demo bookings")

	viper.BindPFlag("network", rootCmd.PersistentFlags().Lookup("network"))
	viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url"))

	viper.SetEnvPrefix("airline")
	viper.BindEnv("network")
	viper.BindEnv("database_url")
}
