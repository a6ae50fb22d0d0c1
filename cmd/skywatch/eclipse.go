package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrissnell/skywatch/pkg/events"
)

var eclipseLimitDays float64

var eclipseCmd = &cobra.Command{
	Use:   "eclipse",
	Short: "Next lunar eclipse after the start time",
	RunE:  runEclipse,
}

func init() {
	eclipseCmd.Flags().Float64Var(&eclipseLimitDays, "limit", 400, "search window in days")
	rootCmd.AddCommand(eclipseCmd)
}

func runEclipse(cmd *cobra.Command, args []string) error {
	t, err := startTime()
	if err != nil {
		return err
	}

	ecl, found, err := events.SearchLunarEclipse(provider(), t, eclipseLimitDays, tolerance)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("No lunar eclipse within %.0f days of %s\n", eclipseLimitDays, t)
		return nil
	}

	fmt.Printf("%s lunar eclipse\n", ecl.Kind)
	fmt.Printf("  Peak:            %s\n", ecl.Peak)
	fmt.Printf("  Penumbral phase: %s — %s\n", ecl.PenumbralBegin(), ecl.PenumbralEnd())
	if ecl.Kind >= events.EclipsePartial {
		fmt.Printf("  Partial phase:   %s — %s\n", ecl.PartialBegin(), ecl.PartialEnd())
	}
	if ecl.Kind >= events.EclipseTotal {
		fmt.Printf("  Total phase:     %s — %s\n", ecl.TotalBegin(), ecl.TotalEnd())
	}
	return nil
}
