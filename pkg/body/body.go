// Package body enumerates the celestial bodies the system can compute
// positions for, including eight user-definable fixed star slots.
package body

import (
	"errors"
	"fmt"
	"sync"

	"github.com/soniakeys/unit"
)

// Body identifies a celestial body.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
	Star1
	Star2
	Star3
	Star4
	Star5
	Star6
	Star7
	Star8
)

var names = [...]string{
	"Sun", "Moon", "Mercury", "Venus", "Earth", "Mars", "Jupiter",
	"Saturn", "Uranus", "Neptune", "Pluto",
	"Star1", "Star2", "Star3", "Star4", "Star5", "Star6", "Star7", "Star8",
}

// ErrUnknownBody is returned for body values outside the enumerated set, or
// for star slots that have not been defined yet.
var ErrUnknownBody = errors.New("unknown body")

// ErrNotStarSlot is returned when DefineStar is called with a non-star body.
var ErrNotStarSlot = errors.New("not a user-definable star slot")

func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return names[b]
}

// Valid reports whether b is in the enumerated set.
func (b Body) Valid() bool {
	return b >= Sun && b <= Star8
}

// IsStar reports whether b is one of the user-definable star slots.
func (b Body) IsStar() bool {
	return b >= Star1 && b <= Star8
}

// IsPlanet reports whether b is modeled by heliocentric orbital elements.
func (b Body) IsPlanet() bool {
	return b >= Mercury && b <= Pluto
}

// Parse returns the Body with the given name, case-insensitively.
func Parse(name string) (Body, error) {
	for i, n := range names {
		if n == name || lower(n) == lower(name) {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// StarDefinition holds the fixed coordinates of a user-defined star.
type StarDefinition struct {
	RA     unit.RA
	Dec    unit.Angle
	DistAU float64
}

var (
	starMu sync.RWMutex
	stars  [8]struct {
		def     StarDefinition
		defined bool
	}
)

// DefineStar registers fixed J2000 equatorial coordinates for one of the
// eight star slots. Stars are treated as having zero proper motion; distance
// only matters for the (negligible) parallax it encodes. Distances must be
// positive; a distance of at least ~1e5 AU is typical for real stars.
func DefineStar(b Body, ra unit.RA, dec unit.Angle, distAU float64) error {
	if !b.IsStar() {
		return fmt.Errorf("%w: %v", ErrNotStarSlot, b)
	}
	if distAU <= 0 {
		return fmt.Errorf("star distance must be positive, got %g AU", distAU)
	}
	starMu.Lock()
	defer starMu.Unlock()
	slot := &stars[b-Star1]
	slot.def = StarDefinition{RA: ra, Dec: dec, DistAU: distAU}
	slot.defined = true
	return nil
}

// StarCoords returns the registered coordinates for a star slot. The second
// return is false when the slot has not been defined.
func StarCoords(b Body) (StarDefinition, bool) {
	if !b.IsStar() {
		return StarDefinition{}, false
	}
	starMu.RLock()
	defer starMu.RUnlock()
	slot := stars[b-Star1]
	return slot.def, slot.defined
}

// ClearStar removes a star slot definition. Mostly useful in tests.
func ClearStar(b Body) {
	if !b.IsStar() {
		return
	}
	starMu.Lock()
	defer starMu.Unlock()
	stars[b-Star1].defined = false
}
