// Package almanac generates daily rise/set and lunar-quarter tables and
// persists them to SQLite for later lookup, so batch consumers do not have
// to re-run the searches.
package almanac

import (
	"fmt"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/events"
	"github.com/chrissnell/skywatch/pkg/frame"
)

// Day is one almanac row. Event times are UT Julian Dates; the Has flags
// distinguish "no event that day" (polar day/night, moonless day) from a
// real time.
type Day struct {
	Date        string // YYYY-MM-DD, UTC
	Sunrise     float64
	HasSunrise  bool
	Sunset      float64
	HasSunset   bool
	Moonrise    float64
	HasMoonrise bool
	Moonset     float64
	HasMoonset  bool
	Quarter     int // 0-3, -1 when no quarter falls on the day
	QuarterTime float64
}

// Generate computes an almanac for the given observer covering days
// consecutive UTC days beginning at start (normally a midnight instant).
func Generate(p frame.Provider, obs frame.Observer, start astrotime.Instant, days int) ([]Day, error) {
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, fmt.Errorf("almanac length must be positive, got %d", days)
	}

	out := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		dayStart := start.AddDays(float64(i))
		y, mo, d, _, _, _ := dayStart.Calendar()
		row := Day{
			Date:    fmt.Sprintf("%04d-%02d-%02d", y, mo, d),
			Quarter: -1,
		}

		if t, found, err := events.SunRise(p, obs, dayStart, 1); err != nil {
			return nil, fmt.Errorf("sunrise %s: %w", row.Date, err)
		} else if found && t.Sub(dayStart) < 1 {
			row.Sunrise, row.HasSunrise = t.JD(), true
		}
		if t, found, err := events.SunSet(p, obs, dayStart, 1); err != nil {
			return nil, fmt.Errorf("sunset %s: %w", row.Date, err)
		} else if found && t.Sub(dayStart) < 1 {
			row.Sunset, row.HasSunset = t.JD(), true
		}
		if t, found, err := events.MoonRise(p, obs, dayStart, 1); err != nil {
			return nil, fmt.Errorf("moonrise %s: %w", row.Date, err)
		} else if found && t.Sub(dayStart) < 1 {
			row.Moonrise, row.HasMoonrise = t.JD(), true
		}
		if t, found, err := events.MoonSet(p, obs, dayStart, 1); err != nil {
			return nil, fmt.Errorf("moonset %s: %w", row.Date, err)
		} else if found && t.Sub(dayStart) < 1 {
			row.Moonset, row.HasMoonset = t.JD(), true
		}

		if q, found, err := events.SearchMoonQuarter(p, dayStart, events.DefaultToleranceSeconds); err != nil {
			return nil, fmt.Errorf("moon quarter %s: %w", row.Date, err)
		} else if found && q.Time.Sub(dayStart) < 1 {
			row.Quarter = q.Quarter
			row.QuarterTime = q.Time.JD()
		}

		out = append(out, row)
	}
	return out, nil
}
