package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/pkg/astrotime"
)

// ErrObserverRange is returned for latitude/longitude outside the accepted
// ranges. Out-of-range input is rejected, never clamped.
var ErrObserverRange = errors.New("observer coordinate out of range")

// Observer is a fixed location on the reference ellipsoid. Immutable; owned
// by the caller.
type Observer struct {
	LatDeg  float64 // geodetic latitude, north positive [-90,90]
	LonDeg  float64 // longitude, east positive [-180,180]
	HeightM float64 // height above the ellipsoid in meters
}

// Validate checks the coordinate ranges.
func (o Observer) Validate() error {
	if o.LatDeg < -90 || o.LatDeg > 90 {
		return fmt.Errorf("%w: latitude %g", ErrObserverRange, o.LatDeg)
	}
	if o.LonDeg < -180 || o.LonDeg > 180 {
		return fmt.Errorf("%w: longitude %g", ErrObserverRange, o.LonDeg)
	}
	return nil
}

// RefractionKind selects the atmospheric refraction model applied to
// altitude. Azimuth is never refracted.
type RefractionKind int

const (
	// NoRefraction reports the airless altitude.
	NoRefraction RefractionKind = iota

	// NormalRefraction applies the Bennett formula for typical conditions.
	NormalRefraction
)

// Horizontal is the altitude/azimuth view of a position for one observer.
// Azimuth is measured from north through east.
type Horizontal struct {
	AzDeg  float64
	AltDeg float64
}

// GMSTDeg returns Greenwich mean sidereal time in degrees (IAU 1982).
func GMSTDeg(t astrotime.Instant) float64 {
	d := t.Days()
	T := d / constants.JulianCentury
	gmst := 280.46061837 + 360.98564736629*d + 0.000387933*T*T - T*T*T/38710000.0
	gmst = math.Mod(gmst, 360)
	if gmst < 0 {
		gmst += 360
	}
	return gmst
}

// ToHorizontal converts of-date equatorial coordinates to altitude/azimuth
// for an observer, applying topocentric parallax from the observer's
// position on the ellipsoid and then optional refraction.
func ToHorizontal(eq Equatorial, obs Observer, t astrotime.Instant, refraction RefractionKind) Horizontal {
	lstDeg := GMSTDeg(t) + obs.LonDeg
	phi := obs.LatDeg * deg2rad

	ra := eq.RA.Rad()
	dec := eq.Dec.Rad()

	// Topocentric parallax: shift the geocentric position by the observer's
	// displacement from the geocenter. Negligible for stars, up to ~1 deg
	// for the Moon.
	if eq.DistAU > 0 {
		ox, oy, oz := observerEquatorial(obs, lstDeg)
		sd, cd := math.Sincos(dec)
		sr, cr := math.Sincos(ra)
		x := eq.DistAU*cd*cr - ox
		y := eq.DistAU*cd*sr - oy
		z := eq.DistAU*sd - oz
		dist := math.Sqrt(x*x + y*y + z*z)
		ra = math.Atan2(y, x)
		dec = math.Asin(z / dist)
	}

	// Hour angle from local sidereal time.
	ha := lstDeg*deg2rad - ra

	sinAlt := math.Sin(dec)*math.Sin(phi) + math.Cos(dec)*math.Cos(phi)*math.Cos(ha)
	if sinAlt > 1 {
		sinAlt = 1
	} else if sinAlt < -1 {
		sinAlt = -1
	}
	alt := math.Asin(sinAlt)

	cosAz := (math.Sin(dec) - sinAlt*math.Sin(phi)) / (math.Cos(alt) * math.Cos(phi))
	if cosAz > 1 {
		cosAz = 1
	} else if cosAz < -1 {
		cosAz = -1
	}
	az := math.Acos(cosAz)
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	altDeg := alt / deg2rad
	if refraction == NormalRefraction {
		altDeg += RefractionDeg(altDeg)
	}

	return Horizontal{
		AzDeg:  az / deg2rad,
		AltDeg: altDeg,
	}
}

// RefractionDeg returns the Bennett refraction correction in degrees for an
// airless altitude. The model is only valid near and above the horizon;
// below about -1 deg the correction is zero.
func RefractionDeg(altDeg float64) float64 {
	if altDeg < -1 || altDeg > 90 {
		return 0
	}
	arcmin := 1.02 / math.Tan((altDeg+10.3/(altDeg+5.11))*deg2rad)
	if arcmin < 0 {
		arcmin = 0
	}
	return arcmin / 60
}

// observerEquatorial returns the observer's geocentric position in the
// equatorial frame of date, in AU, using the ellipsoidal rho*sin(phi') /
// rho*cos(phi') terms.
func observerEquatorial(obs Observer, lstDeg float64) (x, y, z float64) {
	phi := obs.LatDeg * deg2rad
	f := constants.EarthFlattening
	u := math.Atan((1 - f) * math.Tan(phi))
	hEarthRadii := obs.HeightM / 1000 / constants.EarthEquatorialRadiusKm

	rhoSin := (1-f)*math.Sin(u) + hEarthRadii*math.Sin(phi)
	rhoCos := math.Cos(u) + hEarthRadii*math.Cos(phi)

	// Earth radii to AU.
	scale := constants.EarthEquatorialRadiusKm / constants.AUKm
	sl, cl := math.Sincos(lstDeg * deg2rad)
	return rhoCos * cl * scale, rhoCos * sl * scale, rhoSin * scale
}
