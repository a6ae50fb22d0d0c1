package events

import (
	"fmt"
	"math"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
	"github.com/chrissnell/skywatch/pkg/search"
)

// Direction selects which horizon crossing a rise/set search looks for.
type Direction int

const (
	// Rise finds the altitude crossing from below to above the horizon.
	Rise Direction = 1

	// Set finds the crossing from above to below.
	Set Direction = -1
)

// scanStepDays is the bounded pre-scan step. Altitude is quasi-sinusoidal
// with a ~1 day period, so the scan must sample well inside half a period
// to hand the root finder a bracket containing exactly one crossing; three
// hours leaves comfortable margin even for the fast-moving Moon.
const scanStepDays = 0.125

// bodyHorizonDeg returns the conventional apparent altitude of the center
// of a body at rise or set: 34 arcmin of horizon refraction plus the body's
// mean semidiameter.
func bodyHorizonDeg(b body.Body) float64 {
	switch b {
	case body.Sun:
		return -50.0 / 60 // 34' refraction + 16' semidiameter
	case body.Moon:
		return -49.6 / 60 // 34' refraction + 15.6' mean semidiameter
	default:
		return -34.0 / 60
	}
}

// RiseSet finds the next rise or set of a body as seen by an observer,
// scanning at most limitDays from start. Negative limitDays searches
// backward for the most recent event instead. Returns found=false when the
// event does not occur within the window, e.g. circumpolar cases; that is
// not an error.
func RiseSet(p frame.Provider, b body.Body, obs frame.Observer, start astrotime.Instant,
	limitDays float64, dir Direction, tolSeconds float64) (astrotime.Instant, bool, error) {

	if err := obs.Validate(); err != nil {
		return astrotime.Instant{}, false, err
	}
	if !b.Valid() || b == body.Earth {
		return astrotime.Instant{}, false, fmt.Errorf("%w: cannot observe %v", body.ErrUnknownBody, b)
	}
	if dir != Rise && dir != Set {
		return astrotime.Instant{}, false, fmt.Errorf("invalid rise/set direction %d", dir)
	}
	if limitDays == 0 {
		return astrotime.Instant{}, false, nil
	}

	horizon := bodyHorizonDeg(b)
	var fnErr error
	altitude := func(t astrotime.Instant) float64 {
		res, err := frame.GeoVector(p, b, t, true)
		if err != nil {
			if fnErr == nil {
				fnErr = err
			}
			return 0
		}
		eq := frame.ToEquatorial(res.Vector, true)
		hz := frame.ToHorizontal(eq, obs, t, frame.NoRefraction)
		return hz.AltDeg - horizon
	}

	// Probe once up front so invalid bodies (undefined star slots) surface
	// as an error rather than poisoning the scan.
	altitude(start)
	if fnErr != nil {
		return astrotime.Instant{}, false, fnErr
	}

	step := scanStepDays
	if limitDays < 0 {
		step = -scanStepDays
	}

	prev := start
	fPrev := altitude(prev)
	for elapsed := 0.0; math.Abs(elapsed) < math.Abs(limitDays); elapsed += step {
		remaining := limitDays - elapsed
		if math.Abs(remaining) < math.Abs(step) {
			step = remaining
		}
		cur := prev.AddDays(step)
		fCur := altitude(cur)
		if fnErr != nil {
			return astrotime.Instant{}, false, fnErr
		}

		// Order the pair chronologically so the crossing test reads the
		// same forward and backward.
		tA, fA, tB, fB := prev, fPrev, cur, fCur
		if step < 0 {
			tA, fA, tB, fB = cur, fCur, prev, fPrev
		}

		crossing := false
		switch dir {
		case Rise:
			crossing = fA < 0 && fB >= 0
		case Set:
			crossing = fA >= 0 && fB < 0
		}
		if crossing {
			if t, found := search.Search(altitude, tA, tB, tolSeconds); found {
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

// SunRise finds the next sunrise after start within limitDays.
func SunRise(p frame.Provider, obs frame.Observer, start astrotime.Instant, limitDays float64) (astrotime.Instant, bool, error) {
	return RiseSet(p, body.Sun, obs, start, limitDays, Rise, DefaultToleranceSeconds)
}

// SunSet finds the next sunset after start within limitDays.
func SunSet(p frame.Provider, obs frame.Observer, start astrotime.Instant, limitDays float64) (astrotime.Instant, bool, error) {
	return RiseSet(p, body.Sun, obs, start, limitDays, Set, DefaultToleranceSeconds)
}

// MoonRise finds the next moonrise after start within limitDays.
func MoonRise(p frame.Provider, obs frame.Observer, start astrotime.Instant, limitDays float64) (astrotime.Instant, bool, error) {
	return RiseSet(p, body.Moon, obs, start, limitDays, Rise, DefaultToleranceSeconds)
}

// MoonSet finds the next moonset after start within limitDays.
func MoonSet(p frame.Provider, obs frame.Observer, start astrotime.Instant, limitDays float64) (astrotime.Instant, bool, error) {
	return RiseSet(p, body.Moon, obs, start, limitDays, Set, DefaultToleranceSeconds)
}
