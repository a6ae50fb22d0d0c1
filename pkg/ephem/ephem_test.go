package ephem

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/unit"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
)

func TestSolveKepler(t *testing.T) {
	tests := []struct {
		name string
		m    float64 // mean anomaly, rad
		e    float64
	}{
		{"circular", 1.3, 0},
		{"earth-like", 2.5, 0.0167},
		{"mercury-like", 0.7, 0.2056},
		{"pluto-like", 4.0, 0.2488},
		{"near zero anomaly", 1e-6, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ec := solveKepler(tt.m, tt.e)
			// The solution must satisfy Kepler's equation.
			if resid := math.Abs(ec - tt.e*math.Sin(ec) - tt.m); resid > 1e-10 {
				t.Errorf("residual = %.3g, expected < 1e-10", resid)
			}
		})
	}
}

func TestHelioVectorSun(t *testing.T) {
	m := NewModel()
	v, err := m.HelioVector(body.Sun, astrotime.FromDays(1000))
	if err != nil {
		t.Fatal(err)
	}
	if v.Norm() != 0 {
		t.Errorf("Sun heliocentric norm = %g, expected 0", v.Norm())
	}
}

func TestPlanetDistances(t *testing.T) {
	// Heliocentric distances must stay inside each orbit's perihelion/aphelion
	// range at every sample over two decades.
	tests := []struct {
		b        body.Body
		min, max float64 // AU
	}{
		{body.Mercury, 0.30, 0.47},
		{body.Venus, 0.71, 0.73},
		{body.Earth, 0.98, 1.02},
		{body.Mars, 1.38, 1.67},
		{body.Jupiter, 4.95, 5.46},
		{body.Saturn, 9.0, 10.1},
	}

	m := NewModel()
	for _, tt := range tests {
		t.Run(tt.b.String(), func(t *testing.T) {
			for d := -3650.0; d <= 3650; d += 365 {
				v, err := m.HelioVector(tt.b, astrotime.FromDays(d))
				if err != nil {
					t.Fatal(err)
				}
				if r := v.Norm(); r < tt.min || r > tt.max {
					t.Errorf("distance at day %.0f = %.4f AU, expected [%.2f, %.2f]",
						d, r, tt.min, tt.max)
				}
			}
		})
	}
}

func TestMoonDistance(t *testing.T) {
	// Geocentric lunar distance oscillates between roughly perigee 356500 km
	// and apogee 406700 km.
	m := NewModel()
	minSeen, maxSeen := math.Inf(1), math.Inf(-1)
	for d := 8000.0; d < 8060; d += 0.5 {
		t0 := astrotime.FromDays(d)
		moon, err := m.HelioVector(body.Moon, t0)
		if err != nil {
			t.Fatal(err)
		}
		earth, err := m.HelioVector(body.Earth, t0)
		if err != nil {
			t.Fatal(err)
		}
		km := moon.Sub(earth).Norm() * 149597870.7
		if km < minSeen {
			minSeen = km
		}
		if km > maxSeen {
			maxSeen = km
		}
	}
	if minSeen < 350000 || minSeen > 375000 {
		t.Errorf("minimum distance over two months = %.0f km, expected near perigee", minSeen)
	}
	if maxSeen < 395000 || maxSeen > 410000 {
		t.Errorf("maximum distance over two months = %.0f km, expected near apogee", maxSeen)
	}
}

func TestSunLongitudeAtEquinox(t *testing.T) {
	// 2023 March equinox: Mar 20 21:24 UTC. The Sun's geocentric ecliptic
	// longitude (of date) is 0 there; in J2000 coordinates it differs by the
	// accumulated precession, about 0.32 degrees.
	at, err := astrotime.FromCalendar(2023, 3, 20, 21, 24, 0)
	if err != nil {
		t.Fatal(err)
	}
	res, err := frame.GeoVector(NewModel(), body.Sun, at, true)
	if err != nil {
		t.Fatal(err)
	}
	lon := frame.EclipticLonDeg(res.Vector)
	diff := math.Mod(lon+180, 360) - 180 // distance from 0/360 seam
	if math.Abs(diff) > 0.5 {
		t.Errorf("Sun J2000 longitude at equinox = %.4f deg, expected within 0.5 of 0", lon)
	}
}

func TestStarVector(t *testing.T) {
	defer body.ClearStar(body.Star1)

	// An undefined star slot is an error, not a zero vector.
	m := NewModel()
	if _, err := m.HelioVector(body.Star1, astrotime.FromDays(0)); err == nil {
		t.Fatal("expected error for undefined star slot")
	}

	// Sirius, roughly.
	err := body.DefineStar(body.Star1, unit.RAFromHour(6.7525), unit.AngleFromDeg(-16.7161), 543300)
	if err != nil {
		t.Fatal(err)
	}

	v, err := m.HelioVector(body.Star1, astrotime.FromDays(0))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(v.Norm()-543300) > 1 {
		t.Errorf("star distance = %.1f AU, expected 543300", v.Norm())
	}

	eq := frame.ToEquatorial(v, false)
	if math.Abs(eq.RA.Hour()-6.7525) > 1e-6 {
		t.Errorf("RA = %.6f h, expected 6.7525", eq.RA.Hour())
	}
	if math.Abs(eq.Dec.Deg()-(-16.7161)) > 1e-6 {
		t.Errorf("Dec = %.6f deg, expected -16.7161", eq.Dec.Deg())
	}
}

func TestHelioVectorUnknownBody(t *testing.T) {
	m := NewModel()
	_, err := m.HelioVector(body.Body(99), astrotime.FromDays(0))
	if err == nil {
		t.Fatal("expected error for unknown body")
	}
	if !errors.Is(err, body.ErrUnknownBody) {
		t.Errorf("error %v does not wrap ErrUnknownBody", err)
	}
}
