package events

import (
	"math"
	"testing"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/ephem"
)

func TestSeasons2023(t *testing.T) {
	// Published 2023 marker times (UTC): Mar 20 21:24, Jun 21 14:58,
	// Sep 23 06:50, Dec 22 03:27.
	p := ephem.NewModel()
	markers, err := Seasons(p, 2023, 1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  astrotime.Instant
		mo   int
		d    int
		h    int
		mi   int
	}{
		{"March equinox", markers.MarEquinox, 3, 20, 21, 24},
		{"June solstice", markers.JunSolstice, 6, 21, 14, 58},
		{"September equinox", markers.SepEquinox, 9, 23, 6, 50},
		{"December solstice", markers.DecSolstice, 12, 22, 3, 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := astrotime.FromCalendar(2023, tt.mo, tt.d, tt.h, tt.mi, 0)
			if err != nil {
				t.Fatal(err)
			}
			if diffH := math.Abs(tt.got.Sub(want)) * 24; diffH > 4 {
				t.Errorf("%s at %v, expected within 4 h of %v", tt.name, tt.got, want)
			}
		})
	}

	// Chronological order within the year.
	if !markers.MarEquinox.Before(markers.JunSolstice) ||
		!markers.JunSolstice.Before(markers.SepEquinox) ||
		!markers.SepEquinox.Before(markers.DecSolstice) {
		t.Error("season markers out of order")
	}
}

func TestSeasonsSpacing(t *testing.T) {
	// Consecutive markers are a quarter year apart, within the few days the
	// orbital eccentricity moves them.
	p := ephem.NewModel()
	markers, err := Seasons(p, 2030, 1)
	if err != nil {
		t.Fatal(err)
	}
	gaps := []float64{
		markers.JunSolstice.Sub(markers.MarEquinox),
		markers.SepEquinox.Sub(markers.JunSolstice),
		markers.DecSolstice.Sub(markers.SepEquinox),
	}
	for i, g := range gaps {
		if g < 88 || g > 95 {
			t.Errorf("gap %d = %.2f days, expected within [88, 95]", i, g)
		}
	}
}
