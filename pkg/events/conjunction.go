package events

import (
	"fmt"
	"math"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
	"github.com/chrissnell/skywatch/pkg/search"
)

// Mean orbital periods in days, used only to estimate synodic periods for
// bracketing; accuracy is irrelevant beyond picking a sensible scan step.
var orbitalPeriodDays = map[body.Body]float64{
	body.Mercury: 87.969,
	body.Venus:   224.701,
	body.Mars:    686.980,
	body.Jupiter: 4332.589,
	body.Saturn:  10759.22,
	body.Uranus:  30685.4,
	body.Neptune: 60189.0,
	body.Pluto:   90560.0,
}

const earthOrbitDays = 365.256

// synodicPeriodDays estimates how long the planet takes to lap (or be
// lapped by) Earth, the natural period of its solar elongation.
func synodicPeriodDays(b body.Body) float64 {
	p := orbitalPeriodDays[b]
	return math.Abs(1 / (1/earthOrbitDays - 1/p))
}

// SearchRelativeLongitude finds when the geocentric ecliptic longitude of a
// planet differs from the Sun's by targetDeg: 0 for conjunction, 180 for
// opposition (superior planets), or any elongation angle in between. The
// scan is bounded to two synodic periods; found=false past that means the
// configuration does not occur (e.g. opposition of an inferior planet).
func SearchRelativeLongitude(p frame.Provider, b body.Body, targetDeg float64,
	start astrotime.Instant, tolSeconds float64) (astrotime.Instant, bool, error) {

	if _, ok := orbitalPeriodDays[b]; !ok {
		return astrotime.Instant{}, false, fmt.Errorf("%w: relative longitude needs a planet, got %v", body.ErrUnknownBody, b)
	}

	var fnErr error
	offset := func(t astrotime.Instant) float64 {
		planetLon, err := eclipticLonDeg(p, b, t)
		if err != nil {
			if fnErr == nil {
				fnErr = err
			}
			return 0
		}
		sunLon, err := eclipticLonDeg(p, body.Sun, t)
		if err != nil && fnErr == nil {
			fnErr = err
		}
		return wrap180(planetLon - sunLon - targetDeg)
	}

	syn := synodicPeriodDays(b)
	step := syn / 24
	limit := 2 * syn

	prev := start
	fPrev := offset(prev)
	if fnErr != nil {
		return astrotime.Instant{}, false, fnErr
	}
	for elapsed := step; elapsed <= limit; elapsed += step {
		cur := start.AddDays(elapsed)
		fCur := offset(cur)
		if fnErr != nil {
			return astrotime.Instant{}, false, fnErr
		}

		// A genuine crossing changes sign without wrapping through the
		// +/-180 seam; a seam jump shows up as a near-360 swing.
		if (fPrev > 0) != (fCur > 0) && math.Abs(fCur-fPrev) < 180 {
			if t, found := search.Search(offset, prev, cur, tolSeconds); found {
				if fnErr != nil {
					return astrotime.Instant{}, false, fnErr
				}
				return t, true, nil
			}
		}
		prev, fPrev = cur, fCur
	}
	return astrotime.Instant{}, false, nil
}

// SearchConjunction finds the next solar conjunction of a planet.
func SearchConjunction(p frame.Provider, b body.Body, start astrotime.Instant) (astrotime.Instant, bool, error) {
	return SearchRelativeLongitude(p, b, 0, start, DefaultToleranceSeconds)
}

// SearchOpposition finds the next solar opposition of a superior planet.
func SearchOpposition(p frame.Provider, b body.Body, start astrotime.Instant) (astrotime.Instant, bool, error) {
	return SearchRelativeLongitude(p, b, 180, start, DefaultToleranceSeconds)
}
