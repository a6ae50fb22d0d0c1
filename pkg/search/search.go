// Package search implements the generic event-search primitive: finding the
// zero crossing of an arbitrary scalar function of time inside a bracketing
// interval. Every "when does X happen" query in the system reduces to a call
// into this package.
package search

import (
	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/internal/log"
	"github.com/chrissnell/skywatch/pkg/astrotime"
)

const (
	// maxIterations caps the refinement loop. With bisection as the
	// fallback the bracket halves at worst every step, so 50 iterations
	// resolve any sane bracket far below the tolerance floor.
	maxIterations = 50

	// minToleranceSeconds floors the requested tolerance so callers cannot
	// ask for refinement below double precision.
	minToleranceSeconds = 1e-6
)

// Func is a scalar function of time. During one search it is only evaluated
// inside the initial bracket.
type Func func(astrotime.Instant) float64

// Search finds the time at which f crosses zero inside [t1, t2], to within
// tolSeconds. The caller must supply a genuine bracket: f(t1) and f(t2)
// with opposite signs and exactly one crossing between them (periodic
// quantities must be pre-normalized so that holds).
//
// The second return is false when the endpoints do not bracket a root or
// the iteration ceiling is reached first; that is an ordinary "not found"
// answer, not an error. Backward brackets (t1 later than t2) are accepted.
func Search(f Func, t1, t2 astrotime.Instant, tolSeconds float64) (astrotime.Instant, bool) {
	if tolSeconds < minToleranceSeconds {
		tolSeconds = minToleranceSeconds
	}
	tolDays := tolSeconds / constants.SecondsPerDay

	a, b := t1.Days(), t2.Days()
	if a > b {
		a, b = b, a
	}

	fa := f(astrotime.FromDays(a))
	if fa == 0 {
		return astrotime.FromDays(a), true
	}
	fb := f(astrotime.FromDays(b))
	if fb == 0 {
		return astrotime.FromDays(b), true
	}
	if (fa > 0) == (fb > 0) {
		// Same sign at both ends: the caller's bracket assumption was
		// wrong. Report not-found rather than guessing at a root.
		return astrotime.Instant{}, false
	}

	// Third sample for quadratic interpolation, seeded by the first
	// bisection step.
	var cPrev, fcPrev float64
	havePrev := false

	for i := 0; i < maxIterations; i++ {
		width := b - a
		if width <= tolDays {
			return astrotime.FromDays(a + width/2), true
		}

		c, ok := 0.0, false
		if havePrev {
			c, ok = interpolate(a, fa, cPrev, fcPrev, b, fb)
		}
		// Fall back to bisection when interpolation is ill-conditioned or
		// the candidate would not meaningfully shrink the bracket.
		if !ok || c <= a+0.01*width || c >= b-0.01*width {
			c = a + width/2
		}

		fc := f(astrotime.FromDays(c))
		if fc == 0 {
			return astrotime.FromDays(c), true
		}
		if (fc > 0) == (fa > 0) {
			cPrev, fcPrev = a, fa
			a, fa = c, fc
		} else {
			cPrev, fcPrev = b, fb
			b, fb = c, fc
		}
		havePrev = true
	}

	if b-a <= tolDays {
		return astrotime.FromDays(a + (b-a)/2), true
	}
	log.Warnw("search hit iteration ceiling before converging",
		"bracketDays", b-a, "toleranceDays", tolDays)
	return astrotime.Instant{}, false
}

// interpolate proposes the next candidate by inverse quadratic
// interpolation through the three most recent samples. Returns false when
// any pair of function values coincides, which would make the fit
// degenerate.
func interpolate(a, fa, c, fc, b, fb float64) (float64, bool) {
	if fa == fb || fa == fc || fb == fc {
		return 0, false
	}
	x := a*fb*fc/((fa-fb)*(fa-fc)) +
		c*fa*fb/((fc-fa)*(fc-fb)) +
		b*fa*fc/((fb-fa)*(fb-fc))
	return x, true
}
