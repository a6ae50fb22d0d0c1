package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/events"
)

var risesetLimitDays float64

var risesetCmd = &cobra.Command{
	Use:   "riseset <body>",
	Short: "Next rise and set times of a body for the configured observer",
	Args:  cobra.ExactArgs(1),
	RunE:  runRiseSet,
}

func init() {
	risesetCmd.Flags().Float64Var(&risesetLimitDays, "limit", 2, "search window in days (negative searches backward)")
	rootCmd.AddCommand(risesetCmd)
}

func runRiseSet(cmd *cobra.Command, args []string) error {
	b, err := body.Parse(args[0])
	if err != nil {
		return err
	}
	t, err := startTime()
	if err != nil {
		return err
	}
	obs, err := observer()
	if err != nil {
		return err
	}
	p := provider()

	rise, riseFound, err := events.RiseSet(p, b, obs, t, risesetLimitDays, events.Rise, tolerance)
	if err != nil {
		return err
	}
	set, setFound, err := events.RiseSet(p, b, obs, t, risesetLimitDays, events.Set, tolerance)
	if err != nil {
		return err
	}

	fmt.Printf("%s from %.4f°, %.4f° after %s\n", b, obs.LatDeg, obs.LonDeg, t)
	if riseFound {
		fmt.Printf("  Rise: %s\n", rise)
	} else {
		fmt.Printf("  Rise: not found within %.1f days\n", risesetLimitDays)
	}
	if setFound {
		fmt.Printf("  Set:  %s\n", set)
	} else {
		fmt.Printf("  Set:  not found within %.1f days\n", risesetLimitDays)
	}
	return nil
}
