package events

import (
	"math"

	"github.com/chrissnell/skywatch/internal/constants"
	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
	"github.com/chrissnell/skywatch/pkg/search"
)

// EclipseKind classifies a lunar eclipse by the deepest shadow region the
// Moon enters.
type EclipseKind int

const (
	EclipseNone EclipseKind = iota
	EclipsePenumbral
	EclipsePartial
	EclipseTotal
)

func (k EclipseKind) String() string {
	switch k {
	case EclipsePenumbral:
		return "penumbral"
	case EclipsePartial:
		return "partial"
	case EclipseTotal:
		return "total"
	default:
		return "none"
	}
}

// LunarEclipse describes one lunar eclipse: the peak instant and the
// semi-durations of each phase in minutes. A semi-duration is zero when the
// Moon does not reach that shadow region.
type LunarEclipse struct {
	Kind             EclipseKind
	Peak             astrotime.Instant
	SdPenumMinutes   float64
	SdPartialMinutes float64
	SdTotalMinutes   float64
}

// PenumbralBegin returns the first contact with the penumbra (P1).
func (e LunarEclipse) PenumbralBegin() astrotime.Instant {
	return e.Peak.AddDays(-e.SdPenumMinutes / 1440)
}

// PenumbralEnd returns the last contact with the penumbra (P4).
func (e LunarEclipse) PenumbralEnd() astrotime.Instant {
	return e.Peak.AddDays(e.SdPenumMinutes / 1440)
}

// PartialBegin returns first umbral contact (U1); valid when Kind is at
// least partial.
func (e LunarEclipse) PartialBegin() astrotime.Instant {
	return e.Peak.AddDays(-e.SdPartialMinutes / 1440)
}

// PartialEnd returns last umbral contact (U4).
func (e LunarEclipse) PartialEnd() astrotime.Instant {
	return e.Peak.AddDays(e.SdPartialMinutes / 1440)
}

// TotalBegin returns the start of totality (U2); valid when Kind is total.
func (e LunarEclipse) TotalBegin() astrotime.Instant {
	return e.Peak.AddDays(-e.SdTotalMinutes / 1440)
}

// TotalEnd returns the end of totality (U3).
func (e LunarEclipse) TotalEnd() astrotime.Instant {
	return e.Peak.AddDays(e.SdTotalMinutes / 1440)
}

const (
	// contactWindowDays brackets each contact search around the peak. No
	// lunar eclipse phase lasts longer than ~2.1 hours either side of
	// peak through the penumbra.
	contactWindowDays = 0.3

	// peakWindowDays brackets the separation-minimum search around the
	// full moon instant.
	peakWindowDays = 0.8

	sunSemidiameterArcsec = 959.63 // at 1 AU
	sunParallaxArcsec     = 8.794  // at 1 AU
	moonRadiusKm          = 1737.4
)

// shadowGeometry is the Earth-shadow and Moon angular radii, in degrees, at
// one instant.
type shadowGeometry struct {
	penumbraDeg float64
	umbraDeg    float64
	moonSdDeg   float64
}

// SearchLunarEclipse finds the first lunar eclipse whose peak falls within
// limitDays after start, stepping through successive full moons. Returns
// found=false when no full moon in the window meets the shadow.
func SearchLunarEclipse(p frame.Provider, start astrotime.Instant,
	limitDays, tolSeconds float64) (LunarEclipse, bool, error) {

	var fnErr error
	sep := func(t astrotime.Instant) float64 {
		moon, err := frame.GeoVector(p, body.Moon, t, false)
		if err != nil {
			if fnErr == nil {
				fnErr = err
			}
			return 0
		}
		sun, err := frame.GeoVector(p, body.Sun, t, false)
		if err != nil {
			if fnErr == nil {
				fnErr = err
			}
			return 0
		}
		// The shadow axis points away from the Sun.
		return frame.AngleBetweenDeg(moon.Vector, sun.Vector.Scale(-1))
	}

	cursor := start
	for {
		fm, found, err := SearchMoonPhase(p, 180, cursor, constants.SynodicMonthDays+phaseBracketDays, tolSeconds)
		if err != nil {
			return LunarEclipse{}, false, err
		}
		if !found || fm.Sub(start) > limitDays {
			return LunarEclipse{}, false, nil
		}

		peak := searchSeparationMinimum(sep, fm, tolSeconds)
		if fnErr != nil {
			return LunarEclipse{}, false, fnErr
		}

		geom, err := shadowAt(p, peak)
		if err != nil {
			return LunarEclipse{}, false, err
		}
		sepPeak := sep(peak)

		if sepPeak < geom.penumbraDeg+geom.moonSdDeg {
			ecl := LunarEclipse{Kind: EclipsePenumbral, Peak: peak}
			ecl.SdPenumMinutes = contactSemiDuration(sep, peak, geom.penumbraDeg+geom.moonSdDeg, tolSeconds)
			if sepPeak < geom.umbraDeg+geom.moonSdDeg {
				ecl.Kind = EclipsePartial
				ecl.SdPartialMinutes = contactSemiDuration(sep, peak, geom.umbraDeg+geom.moonSdDeg, tolSeconds)
			}
			if sepPeak < geom.umbraDeg-geom.moonSdDeg {
				ecl.Kind = EclipseTotal
				ecl.SdTotalMinutes = contactSemiDuration(sep, peak, geom.umbraDeg-geom.moonSdDeg, tolSeconds)
			}
			if fnErr != nil {
				return LunarEclipse{}, false, fnErr
			}
			return ecl, true, nil
		}

		cursor = fm.AddDays(10)
	}
}

// searchSeparationMinimum locates the minimum of the separation function
// near a full moon by finding the zero of its numerical derivative.
func searchSeparationMinimum(sep search.Func, fm astrotime.Instant, tolSeconds float64) astrotime.Instant {
	const h = 2.0 / 1440 // two-minute derivative step
	deriv := func(t astrotime.Instant) float64 {
		return sep(t.AddDays(h)) - sep(t.AddDays(-h))
	}
	if t, found := search.Search(deriv, fm.AddDays(-peakWindowDays), fm.AddDays(peakWindowDays), tolSeconds); found {
		return t
	}
	// Derivative did not bracket: separation is monotonic through the
	// window, so the full moon instant is as good a peak as any.
	return fm
}

// contactSemiDuration finds where the separation crosses the given radius
// on both sides of the peak and returns half the span in minutes.
func contactSemiDuration(sep search.Func, peak astrotime.Instant, radiusDeg, tolSeconds float64) float64 {
	g := func(t astrotime.Instant) float64 { return sep(t) - radiusDeg }
	begin, okB := search.Search(g, peak.AddDays(-contactWindowDays), peak, tolSeconds)
	end, okE := search.Search(g, peak, peak.AddDays(contactWindowDays), tolSeconds)
	if !okB || !okE {
		return 0
	}
	return end.Sub(begin) / 2 * 1440
}

// shadowAt computes the angular radii of Earth's penumbral and umbral
// shadow cones at the Moon's distance, with the traditional 2% enlargement
// for Earth's atmosphere.
func shadowAt(p frame.Provider, t astrotime.Instant) (shadowGeometry, error) {
	moon, err := frame.GeoVector(p, body.Moon, t, false)
	if err != nil {
		return shadowGeometry{}, err
	}
	sun, err := frame.GeoVector(p, body.Sun, t, false)
	if err != nil {
		return shadowGeometry{}, err
	}

	moonDistKm := moon.Norm() * constants.AUKm
	sunDistAU := sun.Norm()

	moonParallaxDeg := math.Asin(constants.EarthEquatorialRadiusKm/moonDistKm) * 180 / math.Pi
	sunSdDeg := sunSemidiameterArcsec / 3600 / sunDistAU
	sunParallaxDeg := sunParallaxArcsec / 3600 / sunDistAU

	return shadowGeometry{
		penumbraDeg: 1.02 * (0.998340*moonParallaxDeg + sunSdDeg + sunParallaxDeg),
		umbraDeg:    1.02 * (0.998340*moonParallaxDeg - sunSdDeg + sunParallaxDeg),
		moonSdDeg:   math.Asin(moonRadiusKm/moonDistKm) * 180 / math.Pi,
	}, nil
}
