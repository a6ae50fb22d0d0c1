package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
	"github.com/chrissnell/skywatch/pkg/illum"
)

var positionOfDate bool

var positionCmd = &cobra.Command{
	Use:   "position <body>",
	Short: "Apparent equatorial and horizontal coordinates of a body",
	Args:  cobra.ExactArgs(1),
	RunE:  runPosition,
}

func init() {
	positionCmd.Flags().BoolVar(&positionOfDate, "of-date", true, "express RA/Dec in the equinox of date")
	rootCmd.AddCommand(positionCmd)
}

func runPosition(cmd *cobra.Command, args []string) error {
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
	res, err := frame.GeoVector(p, b, t, true)
	if err != nil {
		return err
	}
	eq := frame.ToEquatorial(res.Vector, positionOfDate)
	hz := frame.ToHorizontal(eq, obs, t, frame.NormalRefraction)

	fmt.Printf("%s at %s\n", b, t)
	fmt.Printf("  RA:        %8.4f h\n", eq.RA.Hour())
	fmt.Printf("  Dec:       %+8.4f°\n", eq.Dec.Deg())
	fmt.Printf("  Distance:  %10.6f AU (light time %.2f min)\n", eq.DistAU, res.LightTimeDays*1440)
	fmt.Printf("  Azimuth:   %8.3f°\n", hz.AzDeg)
	fmt.Printf("  Altitude:  %+8.3f°\n", hz.AltDeg)

	if info, err := illum.Compute(p, b, t); err == nil {
		fmt.Printf("  Illum:     %5.1f%%  (phase angle %.1f°)\n", info.Fraction*100, info.PhaseAngleDeg)
		fmt.Printf("  Magnitude: %+.2f\n", info.Magnitude)
	}
	return nil
}
