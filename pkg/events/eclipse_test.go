package events

import (
	"math"
	"testing"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/ephem"
)

func TestLunarEclipseNov2022(t *testing.T) {
	// Total lunar eclipse of 2022 Nov 8, greatest eclipse 10:59 UTC.
	p := ephem.NewModel()
	start, err := astrotime.FromCalendar(2022, 10, 15, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	ecl, found, err := SearchLunarEclipse(p, start, 60, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("eclipse not found")
	}
	if ecl.Kind < EclipsePartial {
		t.Errorf("Kind = %v, expected at least partial", ecl.Kind)
	}

	want, err := astrotime.FromCalendar(2022, 11, 8, 10, 59, 0)
	if err != nil {
		t.Fatal(err)
	}
	if diffH := math.Abs(ecl.Peak.Sub(want)) * 24; diffH > 3 {
		t.Errorf("peak at %v, expected within 3 h of %v", ecl.Peak, want)
	}

	// Deeper phases are strictly shorter.
	if ecl.SdPenumMinutes <= ecl.SdPartialMinutes {
		t.Errorf("penumbral semiduration %.1f min not longer than partial %.1f min",
			ecl.SdPenumMinutes, ecl.SdPartialMinutes)
	}
	if ecl.Kind == EclipseTotal && ecl.SdPartialMinutes <= ecl.SdTotalMinutes {
		t.Errorf("partial semiduration %.1f min not longer than total %.1f min",
			ecl.SdPartialMinutes, ecl.SdTotalMinutes)
	}

	// Contact accessors bracket the peak symmetrically.
	if !ecl.PenumbralBegin().Before(ecl.Peak) || !ecl.PenumbralEnd().After(ecl.Peak) {
		t.Error("penumbral contacts do not bracket the peak")
	}
	if !ecl.PartialBegin().After(ecl.PenumbralBegin()) {
		t.Error("partial phase begins before the penumbral phase")
	}
}

func TestNoEclipseAtOrdinaryFullMoon(t *testing.T) {
	// The 2023 Feb 5 full moon was not an eclipse; a window holding only
	// that full moon must come back empty.
	p := ephem.NewModel()
	start, err := astrotime.FromCalendar(2023, 1, 25, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	_, found, err := SearchLunarEclipse(p, start, 20, 1)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("reported an eclipse at an ordinary full moon")
	}
}

func TestEclipseKindString(t *testing.T) {
	tests := []struct {
		kind     EclipseKind
		expected string
	}{
		{EclipseNone, "none"},
		{EclipsePenumbral, "penumbral"},
		{EclipsePartial, "partial"},
		{EclipseTotal, "total"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("String(%d) = %q, expected %q", int(tt.kind), got, tt.expected)
		}
	}
}
