package events

import (
	"math"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/frame"
)

// MoonQuarter is one principal lunar phase: quarter 0 is new moon, 1 first
// quarter, 2 full moon, 3 third quarter.
type MoonQuarter struct {
	Quarter int
	Time    astrotime.Instant
}

// quarterSearchWindowDays bounds each quarter search. The next quarter is
// never more than ~7.4 days away, so 10 days always contains it.
const quarterSearchWindowDays = 10

// quarterAdvanceDays is how far NextMoonQuarter steps past the previous
// event before searching again: shorter than the ~7.38 day mean quarter
// spacing, so no quarter can be skipped, and long enough that the previous
// event cannot be found twice.
const quarterAdvanceDays = 6

// SearchMoonQuarter finds the first principal lunar phase after start.
func SearchMoonQuarter(p frame.Provider, start astrotime.Instant, tolSeconds float64) (MoonQuarter, bool, error) {
	phase, err := MoonPhaseDeg(p, start)
	if err != nil {
		return MoonQuarter{}, false, err
	}

	// Next multiple of 90 degrees strictly ahead of the current phase.
	targetDeg := math.Mod(math.Floor(phase/90)*90+90, 360)

	t, found, err := SearchMoonPhase(p, targetDeg, start, quarterSearchWindowDays, tolSeconds)
	if err != nil || !found {
		return MoonQuarter{}, false, err
	}
	return MoonQuarter{
		Quarter: int(targetDeg/90) % 4,
		Time:    t,
	}, true, nil
}

// NextMoonQuarter continues a quarter enumeration started with
// SearchMoonQuarter. Successive calls yield strictly increasing times with
// quarter indices cycling 0,1,2,3,0,...
func NextMoonQuarter(p frame.Provider, prev MoonQuarter, tolSeconds float64) (MoonQuarter, bool, error) {
	return SearchMoonQuarter(p, prev.Time.AddDays(quarterAdvanceDays), tolSeconds)
}
