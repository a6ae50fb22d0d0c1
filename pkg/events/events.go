// Package events builds the scalar time functions for each astronomical
// event type (rise/set altitude, lunar phase offset, relative longitude,
// solar longitude, shadow separation) and delegates the actual root finding
// to the generic search engine.
//
// Every "no event in the window" outcome is an ordinary not-found result,
// never an error; errors are reserved for invalid input.
package events

import (
	"math"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
)

// DefaultToleranceSeconds is the stop tolerance used by the convenience
// wrappers.
const DefaultToleranceSeconds = 1.0

// wrap180 normalizes an angle in degrees to (-180, 180], the form that
// turns a periodic longitude offset into a function with a clean sign
// change at the event instead of a false one at the 0/360 seam.
func wrap180(a float64) float64 {
	a = math.Mod(a, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

// wrap360 normalizes an angle in degrees to [0, 360).
func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// eclipticLonDeg returns the apparent geocentric ecliptic longitude of a
// body in degrees, J2000 equinox.
func eclipticLonDeg(p frame.Provider, b body.Body, t astrotime.Instant) (float64, error) {
	res, err := frame.GeoVector(p, b, t, true)
	if err != nil {
		return 0, err
	}
	return frame.EclipticLonDeg(res.Vector), nil
}

// precessionLonDeg is the accumulated general precession in ecliptic
// longitude since J2000 in degrees, used to refer J2000 longitudes to the
// equinox of date where the event definition demands it (equinoxes and
// solstices). It cancels in Sun-Moon differences, so the phase functions
// stay in the J2000 frame.
func precessionLonDeg(t astrotime.Instant) float64 {
	return (5029.0966 / 3600) * t.Centuries()
}
