package astrotime

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestCalendarRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		y    int
		mo   int
		d    int
		h    int
		mi   int
		sec  float64
	}{
		{"J2000 epoch", 2000, 1, 1, 12, 0, 0},
		{"midnight", 2023, 2, 5, 0, 0, 0},
		{"known full moon", 2023, 2, 5, 18, 29, 0},
		{"leap day", 2024, 2, 29, 6, 30, 15.5},
		{"end of year", 1999, 12, 31, 23, 59, 59.25},
		{"far past", 1850, 7, 14, 3, 45, 12},
		{"far future", 2150, 11, 2, 21, 5, 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := FromCalendar(tt.y, tt.mo, tt.d, tt.h, tt.mi, tt.sec)
			if err != nil {
				t.Fatalf("FromCalendar: %v", err)
			}
			y, mo, d, h, mi, sec := in.Calendar()
			if y != tt.y || mo != tt.mo || d != tt.d || h != tt.h || mi != tt.mi {
				t.Errorf("Calendar() = %d-%02d-%02d %02d:%02d, expected %d-%02d-%02d %02d:%02d",
					y, mo, d, h, mi, tt.y, tt.mo, tt.d, tt.h, tt.mi)
			}
			// Seconds must survive the round trip to better than a microsecond.
			if math.Abs(sec-tt.sec) > 1e-6 {
				t.Errorf("seconds = %.9f, expected %.9f", sec, tt.sec)
			}
		})
	}
}

func TestFromCalendarValidation(t *testing.T) {
	tests := []struct {
		name string
		y    int
		mo   int
		d    int
		h    int
		mi   int
		sec  float64
	}{
		{"month zero", 2023, 0, 15, 0, 0, 0},
		{"month thirteen", 2023, 13, 1, 0, 0, 0},
		{"day zero", 2023, 6, 0, 0, 0, 0},
		{"Feb 30", 2023, 2, 30, 0, 0, 0},
		{"Feb 29 non-leap", 2023, 2, 29, 0, 0, 0},
		{"hour 24", 2023, 6, 15, 24, 0, 0},
		{"negative minute", 2023, 6, 15, 0, -1, 0},
		{"seconds 60", 2023, 6, 15, 0, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromCalendar(tt.y, tt.mo, tt.d, tt.h, tt.mi, tt.sec)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !errors.Is(err, ErrInvalidCalendar) {
				t.Errorf("error %v does not wrap ErrInvalidCalendar", err)
			}
		})
	}

	// Feb 29 on a leap year is valid.
	if _, err := FromCalendar(2024, 2, 29, 0, 0, 0); err != nil {
		t.Errorf("FromCalendar(2024-02-29) = %v, expected nil", err)
	}
}

func TestJDConversion(t *testing.T) {
	// J2000.0 is JD 2451545.0 by definition.
	in, err := FromCalendar(2000, 1, 1, 12, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(in.JD()-2451545.0) > 1e-9 {
		t.Errorf("JD() = %.9f, expected 2451545.0", in.JD())
	}
	if math.Abs(in.Days()) > 1e-9 {
		t.Errorf("Days() = %.9f, expected 0", in.Days())
	}

	// FromJD and JD must invert each other exactly near the epoch.
	back := FromJD(in.JD())
	if !back.Equal(in) {
		t.Errorf("FromJD(JD()) = %v, expected %v", back, in)
	}
}

func TestArithmetic(t *testing.T) {
	base := FromDays(100.0)

	later := base.AddDays(1.5)
	if got := later.Sub(base); math.Abs(got-1.5) > 1e-12 {
		t.Errorf("Sub = %.15f, expected 1.5", got)
	}
	if !base.Before(later) {
		t.Error("base.Before(later) = false")
	}
	if !later.After(base) {
		t.Error("later.After(base) = false")
	}
	if !base.Equal(base.AddDays(0)) {
		t.Error("AddDays(0) changed the instant")
	}
}

func TestTerrestrialTime(t *testing.T) {
	// ΔT was about 69 seconds in 2020 and about 64 seconds in 2005.
	tests := []struct {
		name     string
		y        int
		expected float64
		tol      float64
	}{
		{"2020", 2020, 70, 4},
		{"2005", 2005, 64, 2},
		{"1900", 1900, -3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := FromCalendar(tt.y, 7, 1, 0, 0, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got := in.DeltaT(); math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("DeltaT() = %.2f s, expected %.0f±%.0f s", got, tt.expected, tt.tol)
			}
			// TT must lead UT by exactly ΔT.
			if got := (in.TTDays() - in.Days()) * 86400; math.Abs(got-in.DeltaT()) > 1e-6 {
				t.Errorf("TT-UT = %.6f s, expected %.6f s", got, in.DeltaT())
			}
		})
	}
}

func TestTimeConversion(t *testing.T) {
	ref := time.Date(2023, 2, 5, 18, 29, 0, 0, time.UTC)
	in := FromTime(ref)
	back := in.Time()
	if d := back.Sub(ref); d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("Time() round trip off by %v", d)
	}
}
