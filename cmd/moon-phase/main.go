package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/ephem"
	"github.com/chrissnell/skywatch/pkg/events"
	"github.com/chrissnell/skywatch/pkg/illum"
)

func main() {
	var timeStr string
	flag.StringVar(&timeStr, "time", "", "UTC time to calculate phase for (RFC3339 format, e.g., 2024-01-15T12:00:00Z)")
	flag.Parse()

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	model := ephem.NewModel()
	instant := astrotime.FromTime(t)

	phase, err := events.MoonPhaseDeg(model, instant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing moon phase: %v\n", err)
		os.Exit(1)
	}
	info, err := illum.Compute(model, body.Moon, instant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing illumination: %v\n", err)
		os.Exit(1)
	}

	ageDays := phase / 360 * constants.SynodicMonthDays
	waxing := phase < 180

	fmt.Printf("Moon Phase for %s\n", t.Format(time.RFC3339))
	fmt.Printf("  Phase Angle:  %.1f°\n", phase)
	fmt.Printf("  Phase Name:   %s\n", phaseName(phase))
	fmt.Printf("  Illumination: %.1f%%\n", info.Fraction*100)
	fmt.Printf("  Age:          %.1f days\n", ageDays)
	fmt.Printf("  Magnitude:    %+.2f\n", info.Magnitude)
	if waxing {
		fmt.Printf("  Direction:    Waxing\n")
	} else {
		fmt.Printf("  Direction:    Waning\n")
	}
}

// phaseName maps a phase angle to the traditional eight-phase name, with a
// ±11.25° window around each principal phase.
func phaseName(deg float64) string {
	switch {
	case deg < 11.25 || deg >= 348.75:
		return "New Moon"
	case deg < 78.75:
		return "Waxing Crescent"
	case deg < 101.25:
		return "First Quarter"
	case deg < 168.75:
		return "Waxing Gibbous"
	case deg < 191.25:
		return "Full Moon"
	case deg < 258.75:
		return "Waning Gibbous"
	case deg < 281.25:
		return "Third Quarter"
	default:
		return "Waning Crescent"
	}
}
