package search

import (
	"math"
	"testing"

	"github.com/chrissnell/skywatch/pkg/astrotime"
)

func TestSearchLinear(t *testing.T) {
	// f crosses zero at exactly day 3.25.
	f := func(in astrotime.Instant) float64 { return in.Days() - 3.25 }

	got, found := Search(f, astrotime.FromDays(0), astrotime.FromDays(10), 0.001)
	if !found {
		t.Fatal("root not found")
	}
	if err := math.Abs(got.Days() - 3.25); err > 0.001/86400 {
		t.Errorf("root at day %.9f, expected 3.25 (error %.3g days)", got.Days(), err)
	}
}

func TestSearchSine(t *testing.T) {
	// sin(pi*d/10) has a descending zero at day 10; bracket [6, 14] holds
	// exactly that one crossing.
	f := func(in astrotime.Instant) float64 { return math.Sin(math.Pi * in.Days() / 10) }

	got, found := Search(f, astrotime.FromDays(6), astrotime.FromDays(14), 0.01)
	if !found {
		t.Fatal("root not found")
	}
	if err := math.Abs(got.Days() - 10); err > 0.01/86400 {
		t.Errorf("root at day %.9f, expected 10 (error %.3g days)", got.Days(), err)
	}
}

func TestSearchBackwardBracket(t *testing.T) {
	f := func(in astrotime.Instant) float64 { return in.Days() - 3.25 }

	// Endpoints in reverse order must behave identically.
	got, found := Search(f, astrotime.FromDays(10), astrotime.FromDays(0), 0.001)
	if !found {
		t.Fatal("root not found with reversed endpoints")
	}
	if math.Abs(got.Days()-3.25) > 0.001/86400 {
		t.Errorf("root at day %.9f, expected 3.25", got.Days())
	}
}

func TestSearchNoBracket(t *testing.T) {
	// Positive at both endpoints: no root to report.
	f := func(in astrotime.Instant) float64 { return in.Days()*in.Days() + 1 }

	if _, found := Search(f, astrotime.FromDays(0), astrotime.FromDays(5), 1); found {
		t.Error("found a root in a same-sign bracket")
	}
}

func TestSearchEndpointRoot(t *testing.T) {
	f := func(in astrotime.Instant) float64 { return in.Days() }

	got, found := Search(f, astrotime.FromDays(0), astrotime.FromDays(5), 1)
	if !found {
		t.Fatal("exact endpoint root not found")
	}
	if got.Days() != 0 {
		t.Errorf("root at day %g, expected 0", got.Days())
	}
}

func TestSearchToleranceFloor(t *testing.T) {
	// A sub-floor tolerance request must still converge rather than spin on
	// unreachable precision.
	f := func(in astrotime.Instant) float64 { return in.Days() - 1.0/3.0 }

	got, found := Search(f, astrotime.FromDays(0), astrotime.FromDays(1), 1e-12)
	if !found {
		t.Fatal("root not found with tiny tolerance")
	}
	if math.Abs(got.Days()-1.0/3.0) > 1e-6/86400*2 {
		t.Errorf("root at day %.12f, expected %.12f", got.Days(), 1.0/3.0)
	}
}

func TestSearchStepFunction(t *testing.T) {
	// A discontinuous sign change still converges by bisection.
	f := func(in astrotime.Instant) float64 {
		if in.Days() < 7.5 {
			return -1
		}
		return 1
	}

	got, found := Search(f, astrotime.FromDays(0), astrotime.FromDays(10), 0.5)
	if !found {
		t.Fatal("step crossing not found")
	}
	if math.Abs(got.Days()-7.5) > 1.0/86400 {
		t.Errorf("crossing at day %.6f, expected 7.5", got.Days())
	}
}
