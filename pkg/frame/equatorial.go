package frame

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/chrissnell/skywatch/pkg/astrotime"
)

// Equatorial is the spherical read-only view of a position vector: right
// ascension, declination, and distance. It is always recomputed from a
// Vector, never stored independently of one.
type Equatorial struct {
	RA     unit.RA
	Dec    unit.Angle
	DistAU float64
}

// Ecliptic is the spherical view of a position in the J2000 ecliptic frame.
type Ecliptic struct {
	Lon    unit.Angle
	Lat    unit.Angle
	DistAU float64
}

// ToEquatorial converts a Cartesian vector to RA/Dec/distance. When ofDate
// is true a J2000 vector is first rotated through precession and nutation
// into the equator of its own date; otherwise the vector's frame is used
// as-is (ecliptic input is rotated back to equatorial J2000 first).
func ToEquatorial(v Vector, ofDate bool) Equatorial {
	if ofDate {
		v = ToOfDate(v)
	} else if v.Frame == FrameEcliptic {
		v = EclipticToEquatorial(v)
	}
	return sphericalOf(v)
}

func sphericalOf(v Vector) Equatorial {
	dist := v.Norm()
	if dist == 0 {
		return Equatorial{}
	}
	return Equatorial{
		RA:     unit.RAFromRad(math.Atan2(v.Y, v.X)),
		Dec:    unit.Angle(math.Asin(v.Z / dist)),
		DistAU: dist,
	}
}

// ToEcliptic converts a vector to spherical J2000 ecliptic coordinates.
func ToEcliptic(v Vector) Ecliptic {
	if v.Frame == FrameEquOfDate {
		// Of-date vectors keep their small nutation offset; acceptable at
		// the arcsecond level the event functions need.
		v.Frame = FrameEquJ2000
	}
	e := EquatorialToEcliptic(v)
	dist := e.Norm()
	if dist == 0 {
		return Ecliptic{}
	}
	return Ecliptic{
		Lon:    unit.Angle(math.Atan2(e.Y, e.X)).Mod1(),
		Lat:    unit.Angle(math.Asin(e.Z / dist)),
		DistAU: dist,
	}
}

// EclipticLonDeg returns the geocentric ecliptic longitude of a vector in
// degrees [0,360), the scalar used by the phase and conjunction searches.
func EclipticLonDeg(v Vector) float64 {
	return ToEcliptic(v).Lon.Deg()
}

// VectorFromEquatorial converts RA/Dec/distance back to a Cartesian J2000
// vector at the given time, used for fixed-star positions.
func VectorFromEquatorial(eq Equatorial, t astrotime.Instant) Vector {
	sd, cd := eq.Dec.Sincos()
	sr, cr := math.Sincos(eq.RA.Rad())
	return Vector{
		X:     eq.DistAU * cd * cr,
		Y:     eq.DistAU * cd * sr,
		Z:     eq.DistAU * sd,
		T:     t,
		Frame: FrameEquJ2000,
	}
}
