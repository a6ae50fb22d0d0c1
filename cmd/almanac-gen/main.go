// Command almanac-gen batch-generates rise/set almanacs and stores them in
// a SQLite database for later lookup.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/skywatch/pkg/almanac"
	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/ephem"
	"github.com/chrissnell/skywatch/pkg/frame"
)

func main() {
	var (
		dbPath   string
		lat      float64
		lon      float64
		height   float64
		startStr string
		days     int
		loadID   string
	)
	flag.StringVar(&dbPath, "db", "almanac.db", "SQLite database path")
	flag.Float64Var(&lat, "lat", 0, "observer latitude, degrees north")
	flag.Float64Var(&lon, "lon", 0, "observer longitude, degrees east")
	flag.Float64Var(&height, "height", 0, "observer height above the ellipsoid, meters")
	flag.StringVar(&startStr, "start", "", "first UTC day (YYYY-MM-DD, default today)")
	flag.IntVar(&days, "days", 30, "number of days to generate")
	flag.StringVar(&loadID, "load", "", "print a stored run instead of generating (run ID)")
	flag.Parse()

	store, err := almanac.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if loadID != "" {
		printRun(store, loadID)
		return
	}

	start := time.Now().UTC()
	if startStr != "" {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			os.Exit(1)
		}
	}
	dayStart, err := astrotime.FromCalendar(start.Year(), int(start.Month()), start.Day(), 0, 0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building start instant: %v\n", err)
		os.Exit(1)
	}

	obs := frame.Observer{LatDeg: lat, LonDeg: lon, HeightM: height}
	rows, err := almanac.Generate(ephem.NewModel(), obs, dayStart, days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating almanac: %v\n", err)
		os.Exit(1)
	}

	runID, err := store.SaveRun(obs, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving almanac: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %d days as run %s\n", len(rows), runID)
}

func printRun(store *almanac.Store, runID string) {
	run, err := store.GetRun(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run: %v\n", err)
		os.Exit(1)
	}
	rows, err := store.LoadRun(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading run days: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %s: %.4f°, %.4f° starting %s (%d days)\n",
		run.ID, run.Latitude, run.Longitude, run.StartDate, run.Days)
	for _, d := range rows {
		fmt.Printf("%s  sunrise=%s sunset=%s moonrise=%s moonset=%s\n",
			d.Date, clock(d.Sunrise, d.HasSunrise), clock(d.Sunset, d.HasSunset),
			clock(d.Moonrise, d.HasMoonrise), clock(d.Moonset, d.HasMoonset))
	}
}

func clock(jd float64, ok bool) string {
	if !ok {
		return "--:--"
	}
	_, _, _, h, m, _ := astrotime.FromJD(jd).Calendar()
	return fmt.Sprintf("%02d:%02d", h, m)
}
