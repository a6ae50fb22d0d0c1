package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/events"
	"github.com/chrissnell/skywatch/pkg/illum"
)

var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Current lunar phase angle and illumination",
	RunE:  runPhase,
}

func init() {
	rootCmd.AddCommand(phaseCmd)
}

func runPhase(cmd *cobra.Command, args []string) error {
	t, err := startTime()
	if err != nil {
		return err
	}
	p := provider()

	phase, err := events.MoonPhaseDeg(p, t)
	if err != nil {
		return err
	}
	info, err := illum.Compute(p, body.Moon, t)
	if err != nil {
		return err
	}

	fmt.Printf("Moon at %s\n", t)
	fmt.Printf("  Phase angle:  %7.2f° (0 new, 180 full)\n", phase)
	fmt.Printf("  Illuminated:  %6.1f%%\n", info.Fraction*100)
	fmt.Printf("  Magnitude:    %+.2f\n", info.Magnitude)
	fmt.Printf("  Distance:     %.0f km\n", info.GeoDistAU*149597870.7)
	return nil
}
