package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrissnell/skywatch/internal/log"
	"github.com/chrissnell/skywatch/pkg/almanac"
	"github.com/chrissnell/skywatch/pkg/astrotime"
)

var (
	almanacDays int
	almanacDB   string
)

var almanacCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Daily sun/moon rise and set table for the configured observer",
	RunE:  runAlmanac,
}

func init() {
	almanacCmd.Flags().IntVar(&almanacDays, "days", 7, "number of days to generate")
	almanacCmd.Flags().StringVar(&almanacDB, "db", "", "also save the run to this SQLite database")
	rootCmd.AddCommand(almanacCmd)
}

func runAlmanac(cmd *cobra.Command, args []string) error {
	t, err := startTime()
	if err != nil {
		return err
	}
	obs, err := observer()
	if err != nil {
		return err
	}

	// Snap to the preceding UTC midnight so rows line up with calendar days.
	y, mo, d, _, _, _ := t.Calendar()
	dayStart, err := astrotime.FromCalendar(y, mo, d, 0, 0, 0)
	if err != nil {
		return err
	}

	days, err := almanac.Generate(provider(), obs, dayStart, almanacDays)
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-8s %-8s %-8s %-8s %s\n",
		"Date", "Sunrise", "Sunset", "Moonrise", "Moonset", "Quarter")
	for _, day := range days {
		fmt.Printf("%-12s %-8s %-8s %-8s %-8s %s\n",
			day.Date,
			jdClock(day.Sunrise, day.HasSunrise),
			jdClock(day.Sunset, day.HasSunset),
			jdClock(day.Moonrise, day.HasMoonrise),
			jdClock(day.Moonset, day.HasMoonset),
			quarterLabel(day))
	}

	if almanacDB != "" {
		store, err := almanac.NewStore(almanacDB)
		if err != nil {
			return err
		}
		defer store.Close()
		runID, err := store.SaveRun(obs, days)
		if err != nil {
			return err
		}
		log.Infof("saved almanac run %s to %s", runID, almanacDB)
	}
	return nil
}

// jdClock formats a UT Julian Date as HH:MM, or a dash when the event did
// not occur that day.
func jdClock(jd float64, ok bool) string {
	if !ok {
		return "--:--"
	}
	_, _, _, h, m, _ := astrotime.FromJD(jd).Calendar()
	return fmt.Sprintf("%02d:%02d", h, m)
}

func quarterLabel(d almanac.Day) string {
	if d.Quarter < 0 {
		return ""
	}
	return fmt.Sprintf("%s %s", quarterNames[d.Quarter], jdClock(d.QuarterTime, true))
}
