package ephem

import (
	"math"
)

// Truncated lunar theory: the dominant periodic terms for geocentric
// ecliptic longitude, latitude, and distance. Good to a few arcminutes in
// longitude and ~0.1% in distance, which keeps phase times within minutes
// and rise/set within the accuracy of the refraction model.

// moonFundamentals returns the Moon's mean longitude, mean elongation, solar
// mean anomaly, lunar mean anomaly, and argument of latitude, all in
// degrees, for T Julian centuries TT since J2000.
func moonFundamentals(T float64) (l, d, ms, mp, f float64) {
	l = 218.3164477 + 481267.88123421*T - 0.0015786*T*T +
		T*T*T/538841 - T*T*T*T/65194000
	d = 297.8501921 + 445267.1114034*T - 0.0018819*T*T +
		T*T*T/545868 - T*T*T*T/113065000
	ms = 357.5291092 + 35999.0502909*T - 0.0001536*T*T + T*T*T/24490000
	mp = 134.9633964 + 477198.8675055*T + 0.0087414*T*T +
		T*T*T/69699 - T*T*T*T/14712000
	f = 93.2720950 + 483202.0175233*T - 0.0036539*T*T -
		T*T*T/3526000 + T*T*T*T/863310000
	return
}

// moonEclipticOfDate returns the Moon's geocentric ecliptic-of-date
// longitude and latitude in degrees and distance in km.
func moonEclipticOfDate(T float64) (lonDeg, latDeg, distKm float64) {
	l, d, ms, mp, f := moonFundamentals(T)

	dr := wrap360(d) * deg2rad
	msr := wrap360(ms) * deg2rad
	mpr := wrap360(mp) * deg2rad
	fr := wrap360(f) * deg2rad

	lonDeg = wrap360(l +
		6.288774*math.Sin(mpr) +
		1.274027*math.Sin(2*dr-mpr) +
		0.658314*math.Sin(2*dr) +
		0.213618*math.Sin(2*mpr) -
		0.185116*math.Sin(msr) -
		0.114332*math.Sin(2*fr) +
		0.058793*math.Sin(2*dr-2*mpr) +
		0.057066*math.Sin(2*dr-msr-mpr) +
		0.053322*math.Sin(2*dr+mpr) +
		0.045758*math.Sin(2*dr-msr))

	latDeg = 5.128122*math.Sin(fr) +
		0.280602*math.Sin(mpr+fr) +
		0.277693*math.Sin(mpr-fr) +
		0.173237*math.Sin(2*dr-fr) +
		0.055413*math.Sin(2*dr+fr-mpr) +
		0.046271*math.Sin(2*dr-fr-mpr)

	distKm = 385000.56 -
		20905.355*math.Cos(mpr) -
		3699.111*math.Cos(2*dr-mpr) -
		2955.968*math.Cos(2*dr) -
		569.925*math.Cos(2*mpr) +
		48.888*math.Cos(msr) -
		170.733*math.Cos(2*dr+mpr)

	return lonDeg, latDeg, distKm
}

// generalPrecessionDeg is the accumulated general precession in ecliptic
// longitude since J2000, in degrees, for T Julian centuries.
func generalPrecessionDeg(T float64) float64 {
	return (5029.0966 * T) / 3600
}

// moonEclipticJ2000 returns the Moon's geocentric position referred to the
// J2000 ecliptic, matching the frame of the Keplerian planet model.
func moonEclipticJ2000(T float64) (lonDeg, latDeg, distKm float64) {
	lonDeg, latDeg, distKm = moonEclipticOfDate(T)
	lonDeg = wrap360(lonDeg - generalPrecessionDeg(T))
	return lonDeg, latDeg, distKm
}
