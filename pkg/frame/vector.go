// Package frame implements the correction pipeline that turns raw orbital
// model output into apparent coordinates: light-time iteration, aberration,
// precession/nutation, topocentric parallax, and atmospheric refraction.
package frame

import (
	"math"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
)

// FrameID tags the reference frame a Vector is expressed in. A Vector is
// never frame-ambiguous.
type FrameID int

const (
	// FrameEquJ2000 is the equatorial frame of the J2000.0 epoch.
	FrameEquJ2000 FrameID = iota

	// FrameEquOfDate is the equatorial frame of the Vector's own date,
	// after precession and nutation.
	FrameEquOfDate

	// FrameEcliptic is the J2000 ecliptic frame.
	FrameEcliptic
)

func (f FrameID) String() string {
	switch f {
	case FrameEquJ2000:
		return "equatorial-J2000"
	case FrameEquOfDate:
		return "equatorial-of-date"
	case FrameEcliptic:
		return "ecliptic"
	default:
		return "unknown-frame"
	}
}

// Vector is a Cartesian position in AU, tagged with the Instant it is valid
// for and the frame it is expressed in. Vel holds an optional velocity in
// AU/day; it is the zero triple when not computed.
type Vector struct {
	X, Y, Z float64
	T       astrotime.Instant
	Frame   FrameID
	Vel     [3]float64
}

// Norm returns the magnitude of the vector in AU.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns the component-wise sum, keeping v's tags.
func (v Vector) Add(u Vector) Vector {
	v.X += u.X
	v.Y += u.Y
	v.Z += u.Z
	return v
}

// Sub returns the component-wise difference, keeping v's tags.
func (v Vector) Sub(u Vector) Vector {
	v.X -= u.X
	v.Y -= u.Y
	v.Z -= u.Z
	return v
}

// Scale returns the vector scaled by a factor, keeping v's tags.
func (v Vector) Scale(s float64) Vector {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// AngleBetweenDeg returns the angle between two vectors in degrees,
// regardless of magnitude. Returns 0 when either vector is zero.
func AngleBetweenDeg(u, v Vector) float64 {
	nu, nv := u.Norm(), v.Norm()
	if nu == 0 || nv == 0 {
		return 0
	}
	c := (u.X*v.X + u.Y*v.Y + u.Z*v.Z) / (nu * nv)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c) * 180 / math.Pi
}

// Provider supplies raw heliocentric equatorial-J2000 vectors for a body at
// a time. Implementations are pure functions of their arguments; the
// pipeline treats them as a black box.
type Provider interface {
	HelioVector(b body.Body, t astrotime.Instant) (Vector, error)
}
