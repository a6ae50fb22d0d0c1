package events

import (
	"math"
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/ephem"
	"github.com/chrissnell/skywatch/pkg/frame"
)

var london = frame.Observer{LatDeg: 51.5074, LonDeg: -0.1278}

func TestSunRiseSetLondon(t *testing.T) {
	// Cross-check against an independent sunrise/sunset implementation on a
	// handful of dates through the year. Different refraction conventions
	// keep the two from agreeing exactly; ten minutes is well inside what a
	// shared bug would need to explain away.
	tests := []struct {
		name  string
		year  int
		month int
		day   int
	}{
		{"winter", 2023, 1, 15},
		{"spring", 2023, 4, 10},
		{"summer", 2023, 6, 21},
		{"autumn", 2023, 10, 5},
	}

	p := ephem.NewModel()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := astrotime.FromCalendar(tt.year, tt.month, tt.day, 0, 0, 0)
			if err != nil {
				t.Fatal(err)
			}

			wantRise, wantSet := sunrise.SunriseSunset(
				london.LatDeg, london.LonDeg, tt.year, time.Month(tt.month), tt.day)

			rise, found, err := SunRise(p, london, start, 1)
			if err != nil {
				t.Fatal(err)
			}
			if !found {
				t.Fatal("sunrise not found")
			}
			if d := rise.Time().Sub(wantRise); d < -10*time.Minute || d > 10*time.Minute {
				t.Errorf("sunrise %v differs from reference %v by %v", rise.Time(), wantRise, d)
			}

			set, found, err := SunSet(p, london, start, 1)
			if err != nil {
				t.Fatal(err)
			}
			if !found {
				t.Fatal("sunset not found")
			}
			if d := set.Time().Sub(wantSet); d < -10*time.Minute || d > 10*time.Minute {
				t.Errorf("sunset %v differs from reference %v by %v", set.Time(), wantSet, d)
			}

			// Starting at midnight UTC in London, rise precedes set.
			if !rise.Before(set) {
				t.Errorf("sunrise %v not before sunset %v", rise, set)
			}
		})
	}
}

func TestRiseSetBackward(t *testing.T) {
	// A backward search from noon must find the same sunrise a forward
	// search from midnight does.
	p := ephem.NewModel()
	midnight, err := astrotime.FromCalendar(2023, 6, 1, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	noon := midnight.AddDays(0.5)

	fwd, found, err := SunRise(p, london, midnight, 1)
	if err != nil || !found {
		t.Fatalf("forward search: found=%v err=%v", found, err)
	}
	back, found, err := RiseSet(p, body.Sun, london, noon, -1, Rise, DefaultToleranceSeconds)
	if err != nil || !found {
		t.Fatalf("backward search: found=%v err=%v", found, err)
	}
	if diff := math.Abs(fwd.Sub(back)) * 86400; diff > 2 {
		t.Errorf("forward and backward sunrise differ by %.1f s", diff)
	}
}

func TestRiseSetPolarNight(t *testing.T) {
	// Above the Arctic circle in midwinter the Sun never rises; the search
	// must report not-found rather than fabricate an event or error.
	p := ephem.NewModel()
	svalbard := frame.Observer{LatDeg: 78.22, LonDeg: 15.64}
	start, err := astrotime.FromCalendar(2023, 12, 21, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	_, found, err := SunRise(p, svalbard, start, 1)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("sunrise reported during polar night")
	}
}

func TestRiseSetValidation(t *testing.T) {
	p := ephem.NewModel()
	start := astrotime.FromDays(0)

	if _, _, err := RiseSet(p, body.Sun, frame.Observer{LatDeg: 95}, start, 1, Rise, 1); err == nil {
		t.Error("invalid observer accepted")
	}
	if _, _, err := RiseSet(p, body.Earth, london, start, 1, Rise, 1); err == nil {
		t.Error("rise/set of Earth accepted")
	}
	if _, _, err := RiseSet(p, body.Sun, london, start, 1, Direction(0), 1); err == nil {
		t.Error("invalid direction accepted")
	}
	if _, _, err := RiseSet(p, body.Star1, london, start, 1, Rise, 1); err == nil {
		t.Error("undefined star slot accepted")
	}

	// Zero window: trivially not found, not an error.
	_, found, err := RiseSet(p, body.Sun, london, start, 0, Rise, 1)
	if err != nil || found {
		t.Errorf("zero window: found=%v err=%v, expected false, nil", found, err)
	}
}

func TestMoonRiseLaterEachDay(t *testing.T) {
	// Moonrise drifts roughly 25 to 80 minutes later per day.
	p := ephem.NewModel()
	day1, err := astrotime.FromCalendar(2023, 3, 2, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	day2 := day1.AddDays(1)

	r1, found1, err1 := MoonRise(p, london, day1, 1)
	r2, found2, err2 := MoonRise(p, london, day2, 1)
	if err1 != nil || err2 != nil || !found1 || !found2 {
		t.Fatalf("moonrise searches: %v %v %v %v", found1, err1, found2, err2)
	}

	driftMin := (r2.Sub(r1) - 1) * 1440
	if driftMin < 10 || driftMin > 120 {
		t.Errorf("moonrise drift = %.1f min/day, expected within [10, 120]", driftMin)
	}
}
