package events

import (
	"fmt"

	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
	"github.com/chrissnell/skywatch/pkg/search"
)

// phaseBracketDays is the uncertainty margin around the synodic-rate
// estimate of a phase event. The true instant never strays further than
// this from the mean-rate prediction.
const phaseBracketDays = 1.5

// MoonPhaseDeg returns the Moon's phase as the Sun-to-Moon geocentric
// ecliptic longitude difference in degrees [0,360): 0 new, 90 first
// quarter, 180 full, 270 third quarter.
func MoonPhaseDeg(p frame.Provider, t astrotime.Instant) (float64, error) {
	moonLon, err := eclipticLonDeg(p, body.Moon, t)
	if err != nil {
		return 0, err
	}
	sunLon, err := eclipticLonDeg(p, body.Sun, t)
	if err != nil {
		return 0, err
	}
	return wrap360(moonLon - sunLon), nil
}

// SearchMoonPhase finds when the Moon reaches the given phase angle after
// start, within limitDays. The phase offset is normalized into (-180,180]
// before it reaches the root finder, so the 0/360 seam cannot manufacture a
// false sign change, and the mean synodic rate seeds a bracket tight enough
// to contain exactly one crossing.
func SearchMoonPhase(p frame.Provider, targetDeg float64, start astrotime.Instant,
	limitDays, tolSeconds float64) (astrotime.Instant, bool, error) {

	if targetDeg < 0 || targetDeg >= 360 {
		return astrotime.Instant{}, false, fmt.Errorf("phase target %g out of [0,360)", targetDeg)
	}

	cur, err := MoonPhaseDeg(p, start)
	if err != nil {
		return astrotime.Instant{}, false, err
	}

	var fnErr error
	offset := func(t astrotime.Instant) float64 {
		phase, err := MoonPhaseDeg(p, t)
		if err != nil && fnErr == nil {
			fnErr = err
		}
		return wrap180(phase - targetDeg)
	}

	// Days until the mean-rate Moon would reach the target. A start right
	// on the target yields ~0, meaning the event is at hand rather than a
	// full cycle away.
	deltaDeg := wrap360(targetDeg - cur)
	meanRate := 360.0 / constants.SynodicMonthDays
	estDays := deltaDeg / meanRate

	t1 := start.AddDays(estDays - phaseBracketDays)
	if t1.Before(start) {
		t1 = start
	}
	t2 := start.AddDays(estDays + phaseBracketDays)
	if t2.Sub(start) > limitDays {
		if t1.Sub(start) >= limitDays {
			return astrotime.Instant{}, false, nil
		}
		t2 = start.AddDays(limitDays)
	}

	t, found := search.Search(offset, t1, t2, tolSeconds)
	if fnErr != nil {
		return astrotime.Instant{}, false, fnErr
	}
	if !found {
		return astrotime.Instant{}, false, nil
	}
	return t, true, nil
}
