// Package illum models the illuminated fraction and apparent visual
// magnitude of solar-system bodies as pure functions of phase angle and
// distances. It shares the vector pipeline inputs with the event searches
// but performs no searching itself.
package illum

import (
	"errors"
	"fmt"
	"math"

	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
)

// ErrNoMagnitudeModel is returned for bodies without an empirical magnitude
// fit (user-defined stars and Earth).
var ErrNoMagnitudeModel = errors.New("no magnitude model for body")

// Info is the illumination state of a body at one instant.
type Info struct {
	PhaseAngleDeg float64 // Sun-body-Earth angle
	Fraction      float64 // illuminated fraction of the disc [0,1]
	Magnitude     float64 // apparent visual magnitude
	HelioDistAU   float64
	GeoDistAU     float64
}

// meanMoonDistAU normalizes the Moon's magnitude fit to its mean distance.
var meanMoonDistAU = 385000.56 / constants.AUKm

// Compute returns the illumination of a body as seen from Earth at t.
func Compute(p frame.Provider, b body.Body, t astrotime.Instant) (Info, error) {
	if !b.Valid() || b == body.Earth {
		return Info{}, fmt.Errorf("%w: %v", ErrNoMagnitudeModel, b)
	}
	if b.IsStar() {
		return Info{}, fmt.Errorf("%w: %v", ErrNoMagnitudeModel, b)
	}

	geo, err := frame.GeoVector(p, b, t, true)
	if err != nil {
		return Info{}, err
	}
	geoDist := geo.Norm()

	var helioDist, phaseDeg float64
	if b == body.Sun {
		helioDist = 0
		phaseDeg = 0
	} else {
		helio, err := p.HelioVector(b, t)
		if err != nil {
			return Info{}, err
		}
		helioDist = helio.Norm()
		// Phase angle: the angle at the body between the directions to the
		// Sun and to Earth.
		phaseDeg = frame.AngleBetweenDeg(helio.Scale(-1), geo.Vector.Scale(-1))
	}

	info := Info{
		PhaseAngleDeg: phaseDeg,
		Fraction:      Fraction(phaseDeg),
		HelioDistAU:   helioDist,
		GeoDistAU:     geoDist,
	}

	mag, err := magnitude(b, phaseDeg, helioDist, geoDist)
	if err != nil {
		return Info{}, err
	}
	info.Magnitude = mag
	return info, nil
}

// Fraction returns the illuminated fraction of a disc for a phase angle in
// degrees: 1 at zero phase (full), 0 at 180 (new).
func Fraction(phaseAngleDeg float64) float64 {
	return (1 + math.Cos(phaseAngleDeg*math.Pi/180)) / 2
}

// magnitude evaluates the body-specific empirical magnitude fit. Planet
// polynomials are in powers of phase/100 plus the inverse-square distance
// term; Saturn's ring geometry is ignored, so its brightness is the
// ring-free disc value.
func magnitude(b body.Body, phaseDeg, helioDist, geoDist float64) (float64, error) {
	if b == body.Sun {
		return -26.73 + 5*math.Log10(geoDist), nil
	}
	if b == body.Moon {
		rad := phaseDeg * math.Pi / 180
		mag := -12.717 + 1.49*math.Abs(rad) + 0.0431*math.Pow(rad, 4)
		return mag + 5*math.Log10(geoDist/meanMoonDistAU), nil
	}

	x := phaseDeg / 100
	var c0, c1, c2, c3 float64
	switch b {
	case body.Mercury:
		c0, c1, c2, c3 = -0.60, 4.98, -4.88, 3.02
	case body.Venus:
		if phaseDeg < 163.6 {
			c0, c1, c2, c3 = -4.47, 1.03, 0.57, 0.13
		} else {
			c0, c1 = 0.98, -1.02
		}
	case body.Mars:
		c0, c1 = -1.52, 1.60
	case body.Jupiter:
		c0, c1 = -9.40, 0.50
	case body.Saturn:
		c0, c1 = -8.88, 4.40
	case body.Uranus:
		c0, c1 = -7.19, 0.25
	case body.Neptune:
		c0 = -6.87
	case body.Pluto:
		c0, c1 = -1.00, 4.00
	default:
		return 0, fmt.Errorf("%w: %v", ErrNoMagnitudeModel, b)
	}

	mag := c0 + x*(c1+x*(c2+x*c3))
	return mag + 5*math.Log10(helioDist*geoDist), nil
}
