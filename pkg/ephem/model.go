// Package ephem provides the built-in orbital model: heliocentric vectors
// for the Sun, Moon, planets, and user-defined fixed stars. It is the
// default implementation of the frame.Provider boundary; the correction
// pipeline treats it as a pure function of (body, time).
package ephem

import (
	"fmt"
	"math"

	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
)

// Model computes raw heliocentric equatorial-J2000 vectors. The zero value
// is ready to use; it carries no state and is safe for concurrent use.
type Model struct{}

// NewModel returns the built-in orbital model.
func NewModel() *Model { return &Model{} }

var planetIndex = map[body.Body]int{
	body.Mercury: idxMercury,
	body.Venus:   idxVenus,
	body.Earth:   idxEarth,
	body.Mars:    idxMars,
	body.Jupiter: idxJupiter,
	body.Saturn:  idxSaturn,
	body.Uranus:  idxUranus,
	body.Neptune: idxNeptune,
	body.Pluto:   idxPluto,
}

// HelioVector returns the heliocentric position of a body at t in the
// equatorial J2000 frame, uncorrected for light time or aberration.
func (m *Model) HelioVector(b body.Body, t astrotime.Instant) (frame.Vector, error) {
	switch {
	case b == body.Sun:
		return frame.Vector{T: t, Frame: frame.FrameEquJ2000}, nil

	case b == body.Moon:
		earth, err := m.HelioVector(body.Earth, t)
		if err != nil {
			return frame.Vector{}, err
		}
		return earth.Add(m.moonGeoVector(t)), nil

	case b.IsPlanet():
		T := t.Centuries()
		x, y, z := helioKepler(planetIndex[b], T)
		ecl := frame.Vector{X: x, Y: y, Z: z, T: t, Frame: frame.FrameEcliptic}
		return frame.EclipticToEquatorial(ecl), nil

	case b.IsStar():
		def, ok := body.StarCoords(b)
		if !ok {
			return frame.Vector{}, fmt.Errorf("%w: %v has no registered coordinates", body.ErrUnknownBody, b)
		}
		// At stellar distances the heliocentric and geocentric directions
		// coincide to far below the model's accuracy.
		return frame.VectorFromEquatorial(frame.Equatorial{
			RA:     def.RA,
			Dec:    def.Dec,
			DistAU: def.DistAU,
		}, t), nil

	default:
		return frame.Vector{}, fmt.Errorf("%w: %d", body.ErrUnknownBody, int(b))
	}
}

// moonGeoVector returns the Moon's geocentric position in the equatorial
// J2000 frame from the truncated lunar series.
func (m *Model) moonGeoVector(t astrotime.Instant) frame.Vector {
	T := t.Centuries()
	lonDeg, latDeg, distKm := moonEclipticJ2000(T)

	dist := distKm / constants.AUKm
	sl, cl := math.Sincos(lonDeg * deg2rad)
	sb, cb := math.Sincos(latDeg * deg2rad)
	ecl := frame.Vector{
		X:     dist * cb * cl,
		Y:     dist * cb * sl,
		Z:     dist * sb,
		T:     t,
		Frame: frame.FrameEcliptic,
	}
	return frame.EclipticToEquatorial(ecl)
}
