package events

import (
	"fmt"

	"github.com/chrissnell/skywatch/pkg/astrotime"
	"github.com/chrissnell/skywatch/pkg/body"
	"github.com/chrissnell/skywatch/pkg/frame"
	"github.com/chrissnell/skywatch/pkg/search"
)

// SeasonMarkers holds the equinox and solstice instants of one calendar
// year.
type SeasonMarkers struct {
	MarEquinox  astrotime.Instant
	JunSolstice astrotime.Instant
	SepEquinox  astrotime.Instant
	DecSolstice astrotime.Instant
}

// seasonBracketDays brackets each marker around its mean calendar date.
// The true instant wanders by at most ~2 days, so +/-8 always contains
// exactly one crossing of the target longitude.
const seasonBracketDays = 8

// sunApparentLonDeg is the Sun's apparent geocentric ecliptic longitude
// referred to the equinox of date, the quantity whose 90-degree multiples
// define the season markers.
func sunApparentLonDeg(p frame.Provider, t astrotime.Instant) (float64, error) {
	lon, err := eclipticLonDeg(p, body.Sun, t)
	if err != nil {
		return 0, err
	}
	return wrap360(lon + precessionLonDeg(t)), nil
}

// Seasons computes the equinoxes and solstices of a calendar year.
func Seasons(p frame.Provider, year int, tolSeconds float64) (SeasonMarkers, error) {
	markers := []struct {
		targetDeg float64
		month     int
		day       int
		out       *astrotime.Instant
	}{
		{0, 3, 20, nil},
		{90, 6, 21, nil},
		{180, 9, 22, nil},
		{270, 12, 21, nil},
	}

	var result SeasonMarkers
	markers[0].out = &result.MarEquinox
	markers[1].out = &result.JunSolstice
	markers[2].out = &result.SepEquinox
	markers[3].out = &result.DecSolstice

	for _, mk := range markers {
		approx, err := astrotime.FromCalendar(year, mk.month, mk.day, 12, 0, 0)
		if err != nil {
			return SeasonMarkers{}, err
		}

		var fnErr error
		offset := func(t astrotime.Instant) float64 {
			lon, err := sunApparentLonDeg(p, t)
			if err != nil && fnErr == nil {
				fnErr = err
			}
			return wrap180(lon - mk.targetDeg)
		}

		t, found := search.Search(offset,
			approx.AddDays(-seasonBracketDays), approx.AddDays(seasonBracketDays), tolSeconds)
		if fnErr != nil {
			return SeasonMarkers{}, fnErr
		}
		if !found {
			// The bracket above always straddles the marker; failure here
			// means the provider is inconsistent.
			return SeasonMarkers{}, fmt.Errorf("season marker %g deg not found in %d", mk.targetDeg, year)
		}
		*mk.out = t
	}
	return result, nil
}
