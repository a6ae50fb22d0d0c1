package ephem

import (
	"math"
)

// keplerElements holds mean orbital elements at J2000 plus per-century
// rates, from the JPL approximate-position tables (valid 1800-2050; Pluto
// degrades gracefully outside that span).
type keplerElements struct {
	a, aDot   float64 // semi-major axis, AU
	e, eDot   float64 // eccentricity
	i, iDot   float64 // inclination, deg
	l, lDot   float64 // mean longitude, deg
	lp, lpDot float64 // longitude of perihelion, deg
	om, omDot float64 // longitude of ascending node, deg
}

var planetElements = map[int]keplerElements{
	idxMercury: {0.38709927, 0.00000037, 0.20563593, 0.00001906, 7.00497902, -0.00594749,
		252.25032350, 149472.67411175, 77.45779628, 0.16047689, 48.33076593, -0.12534081},
	idxVenus: {0.72333566, 0.00000390, 0.00677672, -0.00004107, 3.39467605, -0.00078890,
		181.97909950, 58517.81538729, 131.60246718, 0.00268329, 76.67984255, -0.27769418},
	idxEarth: {1.00000261, 0.00000562, 0.01671123, -0.00004392, -0.00001531, -0.01294668,
		100.46457166, 35999.37244981, 102.93768193, 0.32327364, 0, 0},
	idxMars: {1.52371034, 0.00001847, 0.09339410, 0.00007882, 1.84969142, -0.00813131,
		-4.55343205, 19140.30268499, -23.94362959, 0.44441088, 49.55953891, -0.29257343},
	idxJupiter: {5.20288700, -0.00011607, 0.04838624, -0.00013253, 1.30439695, -0.00183714,
		34.39644051, 3034.74612775, 14.72847983, 0.21252668, 100.47390909, 0.20469106},
	idxSaturn: {9.53667594, -0.00125060, 0.05386179, -0.00050991, 2.48599187, 0.00193609,
		49.95424423, 1222.49362201, 92.59887831, -0.41897216, 113.66242448, -0.28867794},
	idxUranus: {19.18916464, -0.00196176, 0.04725744, -0.00004397, 0.77263783, -0.00242939,
		313.23810451, 428.48202785, 170.95427630, 0.40805281, 74.01692503, 0.04240589},
	idxNeptune: {30.06992276, 0.00026291, 0.00859048, 0.00005105, 1.77004347, 0.00035372,
		-55.12002969, 218.45945325, 44.96476227, -0.32241464, 131.78422574, -0.00508664},
	idxPluto: {39.48211675, -0.00031596, 0.24882730, 0.00005170, 17.14001206, 0.00004818,
		238.92903833, 145.20780515, 224.06891629, -0.04062942, 110.30393684, -0.01183482},
}

// Internal planet indices for the element table.
const (
	idxMercury = iota
	idxVenus
	idxEarth
	idxMars
	idxJupiter
	idxSaturn
	idxUranus
	idxNeptune
	idxPluto
)

const keplerIterations = 20

// solveKepler solves E - e*sin(E) = M for the eccentric anomaly by Newton
// iteration. M in radians. Converges in a handful of steps for planetary
// eccentricities.
func solveKepler(m, e float64) float64 {
	ec := m + e*math.Sin(m)
	for i := 0; i < keplerIterations; i++ {
		d := (m - (ec - e*math.Sin(ec))) / (1 - e*math.Cos(ec))
		ec += d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return ec
}

// helioKepler returns the heliocentric J2000 ecliptic position of a planet
// in AU for T Julian centuries since J2000 (TT).
func helioKepler(idx int, T float64) (x, y, z float64) {
	el := planetElements[idx]

	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	inc := (el.i + el.iDot*T) * deg2rad
	l := el.l + el.lDot*T
	lp := el.lp + el.lpDot*T
	om := el.om + el.omDot*T

	// Argument of perihelion and mean anomaly.
	w := (lp - om) * deg2rad
	m := wrap180(l-lp) * deg2rad

	ec := solveKepler(m, e)

	// Orbital-plane coordinates.
	xp := a * (math.Cos(ec) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ec)

	sw, cw := math.Sincos(w)
	so, co := math.Sincos(om * deg2rad)
	si, ci := math.Sincos(inc)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = sw*si*xp + cw*si*yp
	return x, y, z
}

const deg2rad = math.Pi / 180

// wrap180 normalizes an angle in degrees to (-180, 180].
func wrap180(a float64) float64 {
	a = math.Mod(a, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

// wrap360 normalizes an angle in degrees to [0, 360).
func wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
