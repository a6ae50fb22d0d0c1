package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/chrissnell/skywatch/pkg/events"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons [year]",
	Short: "Equinox and solstice times for a year",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSeasons,
}

func init() {
	rootCmd.AddCommand(seasonsCmd)
}

func runSeasons(cmd *cobra.Command, args []string) error {
	year := time.Now().UTC().Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("error parsing year: %w", err)
		}
		year = y
	}

	markers, err := events.Seasons(provider(), year, tolerance)
	if err != nil {
		return err
	}
	fmt.Printf("Seasons %d\n", year)
	fmt.Printf("  March equinox:     %s\n", markers.MarEquinox)
	fmt.Printf("  June solstice:     %s\n", markers.JunSolstice)
	fmt.Printf("  September equinox: %s\n", markers.SepEquinox)
	fmt.Printf("  December solstice: %s\n", markers.DecSolstice)
	return nil
}
