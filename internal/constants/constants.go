// Package constants defines process-wide physical and astronomical constants
// and version information. Values are read-only; nothing here is mutated
// after process start.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// Time scale anchors.
const (
	// J2000 is the Julian Date of the standard epoch J2000.0 (2000 Jan 1.5 TT).
	J2000 = 2451545.0

	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0

	// SecondsPerDay is the number of SI seconds in one day.
	SecondsPerDay = 86400.0
)

// Distances and light travel.
const (
	// AUKm is the astronomical unit in kilometers (IAU 2012).
	AUKm = 149597870.7

	// LightAUPerDay is the speed of light expressed in AU per day.
	LightAUPerDay = 173.1446326846693

	// EarthEquatorialRadiusKm is the IERS 2003 equatorial radius.
	EarthEquatorialRadiusKm = 6378.1366

	// EarthFlattening is the WGS84 flattening of the reference ellipsoid.
	EarthFlattening = 1.0 / 298.257223563
)

// Lunar cycle lengths.
const (
	// SynodicMonthDays is the mean length of the lunar cycle in days.
	SynodicMonthDays = 29.530588853

	// MeanQuarterDays is the mean spacing between successive lunar quarters.
	MeanQuarterDays = SynodicMonthDays / 4
)
