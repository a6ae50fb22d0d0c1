package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrissnell/skywatch/pkg/events"
)

var quarterNames = [4]string{"New Moon", "First Quarter", "Full Moon", "Third Quarter"}

var quartersCount int

var quartersCmd = &cobra.Command{
	Use:   "quarters",
	Short: "Enumerate upcoming principal lunar phases",
	RunE:  runQuarters,
}

func init() {
	quartersCmd.Flags().IntVar(&quartersCount, "count", 8, "number of quarters to list")
	rootCmd.AddCommand(quartersCmd)
}

func runQuarters(cmd *cobra.Command, args []string) error {
	t, err := startTime()
	if err != nil {
		return err
	}
	p := provider()

	q, found, err := events.SearchMoonQuarter(p, t, tolerance)
	if err != nil {
		return err
	}
	for i := 0; i < quartersCount && found; i++ {
		fmt.Printf("%-14s %s\n", quarterNames[q.Quarter], q.Time)
		q, found, err = events.NextMoonQuarter(p, q, tolerance)
		if err != nil {
			return err
		}
	}
	return nil
}
