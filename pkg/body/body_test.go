package body

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/unit"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		expected Body
		wantErr  bool
	}{
		{"Moon", Moon, false},
		{"moon", Moon, false},
		{"MARS", Mars, false},
		{"Star3", Star3, false},
		{"Phobos", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrUnknownBody) {
					t.Errorf("error %v does not wrap ErrUnknownBody", err)
				}
				return
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, expected %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestClassification(t *testing.T) {
	if Sun.IsPlanet() || Moon.IsPlanet() {
		t.Error("Sun/Moon classified as planets")
	}
	if !Mercury.IsPlanet() || !Pluto.IsPlanet() {
		t.Error("Mercury/Pluto not classified as planets")
	}
	if !Star1.IsStar() || !Star8.IsStar() {
		t.Error("star slots not classified as stars")
	}
	if Earth.IsStar() {
		t.Error("Earth classified as a star")
	}
	if Body(-1).Valid() || Body(19).Valid() {
		t.Error("out-of-range body reported valid")
	}
}

func TestDefineStar(t *testing.T) {
	defer ClearStar(Star2)

	if _, ok := StarCoords(Star2); ok {
		t.Fatal("Star2 defined before the test started")
	}

	// Non-star slots and non-positive distances are rejected.
	if err := DefineStar(Mars, unit.RAFromHour(1), unit.AngleFromDeg(10), 1e5); !errors.Is(err, ErrNotStarSlot) {
		t.Errorf("DefineStar(Mars) error = %v, expected ErrNotStarSlot", err)
	}
	if err := DefineStar(Star2, unit.RAFromHour(1), unit.AngleFromDeg(10), 0); err == nil {
		t.Error("DefineStar with zero distance succeeded")
	}

	if err := DefineStar(Star2, unit.RAFromHour(5.5), unit.AngleFromDeg(-8.2), 2.5e5); err != nil {
		t.Fatal(err)
	}
	def, ok := StarCoords(Star2)
	if !ok {
		t.Fatal("StarCoords reports Star2 undefined after DefineStar")
	}
	if math.Abs(def.RA.Hour()-5.5) > 1e-12 || math.Abs(def.Dec.Deg()-(-8.2)) > 1e-12 || def.DistAU != 2.5e5 {
		t.Errorf("stored definition %+v does not match input", def)
	}

	// Redefinition replaces the previous coordinates.
	if err := DefineStar(Star2, unit.RAFromHour(6), unit.AngleFromDeg(1), 3e5); err != nil {
		t.Fatal(err)
	}
	def, _ = StarCoords(Star2)
	if math.Abs(def.RA.Hour()-6) > 1e-12 {
		t.Errorf("RA after redefinition = %v h, expected 6", def.RA.Hour())
	}

	ClearStar(Star2)
	if _, ok := StarCoords(Star2); ok {
		t.Error("Star2 still defined after ClearStar")
	}
}
