package frame

import (
	"fmt"
	"math"

	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/internal/log"
	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
)

const (
	// lightTimeTolerance is the convergence threshold for the light-time
	// fixed-point iteration, in days.
	lightTimeTolerance = 1e-12

	// maxLightTimeIterations caps the fixed-point loop. Hitting the cap is
	// logged and flagged, never fatal.
	maxLightTimeIterations = 10

	// velocityStepDays is the half-step for the central-difference Earth
	// velocity estimate.
	velocityStepDays = 0.25
)

// GeoResult is an apparent geocentric vector together with the light-time
// solution that produced it.
type GeoResult struct {
	Vector
	LightTimeDays float64
	Iterations    int
	Converged     bool
}

// GeoVector computes the geocentric J2000 equatorial vector of a body at t,
// corrected for light travel time and, when aberration is true, for the
// observer's orbital aberration.
//
// The light-time correction iterates: estimate the travel time from the
// geometric distance, re-evaluate the body at the emission time, repeat
// until the estimate moves by less than lightTimeTolerance days. If the
// iteration cap is reached the best estimate is returned with Converged set
// false and a warning logged; callers decide whether that is acceptable.
func GeoVector(p Provider, b body.Body, t astrotime.Instant, aberration bool) (GeoResult, error) {
	if !b.Valid() {
		return GeoResult{}, fmt.Errorf("%w: %d", body.ErrUnknownBody, int(b))
	}

	earth, err := p.HelioVector(body.Earth, t)
	if err != nil {
		return GeoResult{}, fmt.Errorf("earth vector: %w", err)
	}

	// Degenerate geocentric self-reference: distance is exactly zero, so
	// the iteration short-circuits rather than dividing by zero.
	if b == body.Earth {
		return GeoResult{
			Vector:    Vector{T: t, Frame: FrameEquJ2000},
			Converged: true,
		}, nil
	}

	var geo Vector
	lt := 0.0
	converged := false
	iters := 0
	for i := 0; i < maxLightTimeIterations; i++ {
		iters = i + 1
		bp, err := p.HelioVector(b, t.AddDays(-lt))
		if err != nil {
			return GeoResult{}, fmt.Errorf("%v vector: %w", b, err)
		}
		geo = bp.Sub(earth)
		dist := geo.Norm()
		if dist == 0 {
			lt = 0
			converged = true
			break
		}
		next := dist / constants.LightAUPerDay
		if math.Abs(next-lt) < lightTimeTolerance {
			lt = next
			converged = true
			break
		}
		lt = next
	}
	if !converged {
		log.Warnw("light-time iteration hit cap, using best estimate",
			"body", b.String(), "time", t.String(), "lightTimeDays", lt)
	}

	geo.T = t
	geo.Frame = FrameEquJ2000

	if aberration {
		vel, err := EarthVelocity(p, t)
		if err != nil {
			return GeoResult{}, err
		}
		geo = Aberration(geo, vel)
	}

	return GeoResult{
		Vector:        geo,
		LightTimeDays: lt,
		Iterations:    iters,
		Converged:     converged,
	}, nil
}

// EarthVelocity estimates Earth's heliocentric velocity in AU/day by central
// difference over half a day.
func EarthVelocity(p Provider, t astrotime.Instant) ([3]float64, error) {
	before, err := p.HelioVector(body.Earth, t.AddDays(-velocityStepDays))
	if err != nil {
		return [3]float64{}, fmt.Errorf("earth velocity: %w", err)
	}
	after, err := p.HelioVector(body.Earth, t.AddDays(velocityStepDays))
	if err != nil {
		return [3]float64{}, fmt.Errorf("earth velocity: %w", err)
	}
	inv := 1 / (2 * velocityStepDays)
	return [3]float64{
		(after.X - before.X) * inv,
		(after.Y - before.Y) * inv,
		(after.Z - before.Z) * inv,
	}, nil
}

// Aberration applies the first-order aberration displacement for an observer
// moving at vel (AU/day): the apparent direction shifts by roughly |vel|/c
// radians toward the velocity vector while the magnitude is preserved.
func Aberration(v Vector, vel [3]float64) Vector {
	dist := v.Norm()
	if dist == 0 {
		return v
	}
	inv := 1 / dist
	ux := v.X*inv + vel[0]/constants.LightAUPerDay
	uy := v.Y*inv + vel[1]/constants.LightAUPerDay
	uz := v.Z*inv + vel[2]/constants.LightAUPerDay
	n := math.Sqrt(ux*ux + uy*uy + uz*uz)
	v.X = ux / n * dist
	v.Y = uy / n * dist
	v.Z = uz / n * dist
	return v
}
