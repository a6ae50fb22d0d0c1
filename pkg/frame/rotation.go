package frame

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	deg2rad    = math.Pi / 180
	arcsec2rad = math.Pi / (180 * 3600)

	// obliquityJ2000 is the mean obliquity of the ecliptic at J2000.0 in degrees.
	obliquityJ2000 = 23.43929111
)

// rotX returns the rotation matrix about the X axis by angle radians.
func rotX(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	})
}

// rotY returns the rotation matrix about the Y axis by angle radians.
func rotY(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	})
}

// rotZ returns the rotation matrix about the Z axis by angle radians.
func rotZ(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	})
}

// meanObliquityDeg returns the mean obliquity of the ecliptic in degrees for
// Julian centuries T since J2000.0 (IAU formula).
func meanObliquityDeg(T float64) float64 {
	return obliquityJ2000 - 0.013004167*T - 0.00000164*T*T + 0.000000504*T*T*T
}

// precessionMatrix returns the IAU 1976 precession rotation from J2000 to
// the equator and equinox of date at T Julian centuries.
func precessionMatrix(T float64) *mat.Dense {
	zeta := (2306.2181 + (0.30188+0.017998*T)*T) * T * arcsec2rad
	z := (2306.2181 + (1.09468+0.018203*T)*T) * T * arcsec2rad
	theta := (2004.3109 - (0.42665+0.041833*T)*T) * T * arcsec2rad

	var m, tmp mat.Dense
	tmp.Mul(rotY(theta), rotZ(-zeta))
	m.Mul(rotZ(-z), &tmp)
	return mat.DenseCopyOf(&m)
}

// nutationAngles returns the nutation in longitude and obliquity in arcsec,
// using the dominant terms of the IAU 1980 series.
func nutationAngles(T float64) (dpsi, deps float64) {
	om := (125.04452 - 1934.136261*T) * deg2rad
	ls := (280.4665 + 36000.7698*T) * deg2rad
	lm := (218.3165 + 481267.8813*T) * deg2rad

	dpsi = -17.20*math.Sin(om) - 1.32*math.Sin(2*ls) -
		0.23*math.Sin(2*lm) + 0.21*math.Sin(2*om)
	deps = 9.20*math.Cos(om) + 0.57*math.Cos(2*ls) +
		0.10*math.Cos(2*lm) - 0.09*math.Cos(2*om)
	return dpsi, deps
}

// nutationMatrix returns the nutation rotation for the mean equator of date.
func nutationMatrix(T float64) *mat.Dense {
	dpsi, deps := nutationAngles(T)
	eps0 := meanObliquityDeg(T) * deg2rad
	epsTrue := eps0 + deps*arcsec2rad

	var m, tmp mat.Dense
	tmp.Mul(rotZ(-dpsi*arcsec2rad), rotX(eps0))
	m.Mul(rotX(-epsTrue), &tmp)
	return mat.DenseCopyOf(&m)
}

// applyRotation rotates the position components of v, leaving its time tag
// alone and setting the new frame tag.
func applyRotation(m *mat.Dense, v Vector, frame FrameID) Vector {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	v.X, v.Y, v.Z = out.AtVec(0), out.AtVec(1), out.AtVec(2)
	v.Frame = frame
	return v
}

// ToOfDate rotates a J2000 equatorial vector into the true equator and
// equinox of its own date, composing precession and nutation. Vectors
// already of-date pass through unchanged.
func ToOfDate(v Vector) Vector {
	if v.Frame == FrameEquOfDate {
		return v
	}
	if v.Frame == FrameEcliptic {
		v = EclipticToEquatorial(v)
	}
	T := v.T.Centuries()
	var m mat.Dense
	m.Mul(nutationMatrix(T), precessionMatrix(T))
	return applyRotation(&m, v, FrameEquOfDate)
}

// EquatorialToEcliptic rotates a J2000 equatorial vector into the J2000
// ecliptic frame.
func EquatorialToEcliptic(v Vector) Vector {
	if v.Frame == FrameEcliptic {
		return v
	}
	return applyRotation(rotX(obliquityJ2000*deg2rad), v, FrameEcliptic)
}

// EclipticToEquatorial rotates a J2000 ecliptic vector into the J2000
// equatorial frame.
func EclipticToEquatorial(v Vector) Vector {
	if v.Frame != FrameEcliptic {
		return v
	}
	return applyRotation(rotX(-obliquityJ2000*deg2rad), v, FrameEquJ2000)
}
