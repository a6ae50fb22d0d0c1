// Package astrotime provides the time scale used by all position and event
// calculations: an immutable Instant unifying calendar dates, Julian Dates,
// and the Terrestrial Time correction.
//
// Internally an Instant stores days since the J2000.0 epoch (JD 2451545.0)
// rather than a raw Julian Date, which keeps sub-millisecond precision over
// the supported range. All arithmetic returns new values; an Instant is never
// mutated.
package astrotime

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/chrissnell/skywatch/internal/constants"
)

// ErrInvalidCalendar is returned when calendar fields are out of range.
var ErrInvalidCalendar = errors.New("invalid calendar value")

// Instant is a point in time on the UT scale. The zero value is the J2000.0
// epoch (2000-01-01 12:00 UT).
type Instant struct {
	ut     float64 // days since J2000.0, UT
	deltaT float64 // TT-UT in seconds, fixed at construction
}

// FromDays returns the Instant at the given number of days since J2000.0.
func FromDays(ut float64) Instant {
	return Instant{ut: ut, deltaT: deltaTSeconds(2000.0 + ut/365.25)}
}

// FromJD returns the Instant for a UT Julian Date.
func FromJD(jd float64) Instant {
	return FromDays(jd - constants.J2000)
}

// FromTime returns the Instant for a Go time, interpreted on the UT scale.
func FromTime(t time.Time) Instant {
	return FromJD(julian.TimeToJD(t.UTC()))
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// FromCalendar constructs an Instant from proleptic Gregorian calendar
// fields, assumed UTC. Month and day are validated against the given year,
// including leap years; out-of-range fields return ErrInvalidCalendar.
func FromCalendar(year, month, day, hour, min int, sec float64) (Instant, error) {
	if month < 1 || month > 12 {
		return Instant{}, fmt.Errorf("%w: month %d", ErrInvalidCalendar, month)
	}
	days := monthDays[month]
	if month == 2 && julian.LeapYearGregorian(year) {
		days = 29
	}
	if day < 1 || day > days {
		return Instant{}, fmt.Errorf("%w: day %d of %d-%02d", ErrInvalidCalendar, day, year, month)
	}
	if hour < 0 || hour > 23 {
		return Instant{}, fmt.Errorf("%w: hour %d", ErrInvalidCalendar, hour)
	}
	if min < 0 || min > 59 {
		return Instant{}, fmt.Errorf("%w: minute %d", ErrInvalidCalendar, min)
	}
	if sec < 0 || sec >= 60 {
		return Instant{}, fmt.Errorf("%w: second %g", ErrInvalidCalendar, sec)
	}

	// Midnight JD is a half-integer, so the subtraction below is exact and
	// the time-of-day fraction carries full precision.
	jd0 := julian.CalendarGregorianToJD(year, month, float64(day))
	ut := (jd0 - constants.J2000) + (float64(hour*3600+min*60)+sec)/constants.SecondsPerDay
	return FromDays(ut), nil
}

// Days returns days since J2000.0 on the UT scale.
func (i Instant) Days() float64 { return i.ut }

// JD returns the UT Julian Date.
func (i Instant) JD() float64 { return i.ut + constants.J2000 }

// DeltaT returns the TT-UT offset in seconds used for this Instant.
func (i Instant) DeltaT() float64 { return i.deltaT }

// TT returns the Terrestrial Time Julian Date.
func (i Instant) TT() float64 {
	return i.ut + constants.J2000 + i.deltaT/constants.SecondsPerDay
}

// TTDays returns days since J2000.0 on the TT scale, the argument expected
// by the orbital models.
func (i Instant) TTDays() float64 {
	return i.ut + i.deltaT/constants.SecondsPerDay
}

// Centuries returns Julian centuries since J2000.0 on the TT scale.
func (i Instant) Centuries() float64 {
	return i.TTDays() / constants.JulianCentury
}

// AddDays returns the Instant n days later (earlier for negative n).
func (i Instant) AddDays(n float64) Instant {
	return FromDays(i.ut + n)
}

// Sub returns the difference i - o in days.
func (i Instant) Sub(o Instant) float64 { return i.ut - o.ut }

// Before reports whether i is earlier than o.
func (i Instant) Before(o Instant) bool { return i.ut < o.ut }

// After reports whether i is later than o.
func (i Instant) After(o Instant) bool { return i.ut > o.ut }

// Equal reports whether two Instants denote the same time.
func (i Instant) Equal(o Instant) bool { return i.ut == o.ut }

// Calendar returns the proleptic Gregorian calendar fields, UTC.
func (i Instant) Calendar() (year, month, day, hour, min int, sec float64) {
	n := math.Floor(i.ut + 0.5)
	secOfDay := (i.ut + 0.5 - n) * constants.SecondsPerDay
	if secOfDay >= constants.SecondsPerDay {
		secOfDay -= constants.SecondsPerDay
		n++
	}

	// 2451544.5 is midnight starting 2000-01-01; n is whole calendar days
	// past it, so the argument below is exact.
	y, m, d := julian.JDToCalendar(2451544.5 + n)
	year, month, day = y, m, int(d)

	hour = int(secOfDay / 3600)
	secOfDay -= float64(hour) * 3600
	min = int(secOfDay / 60)
	sec = secOfDay - float64(min)*60
	if hour > 23 {
		hour = 23
	}
	return year, month, day, hour, min, sec
}

// Time returns the Instant as a Go time in UTC, truncated to nanoseconds.
func (i Instant) Time() time.Time {
	return julian.JDToTime(i.JD()).UTC()
}

// String formats the Instant as an ISO 8601 UTC timestamp with millisecond
// resolution.
func (i Instant) String() string {
	y, mo, d, h, mi, s := i.Calendar()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%06.3fZ", y, mo, d, h, mi, s)
}
