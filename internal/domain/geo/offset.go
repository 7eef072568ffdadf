// Package geo provides the coordinate obfuscation applied to approximate-mode
// location sharing.
package geo

import (
	"math"
	"math/rand/v2"

	"github.com/paulmach/orb"
)

// metersPerDegreeLat is the equirectangular approximation of one degree of latitude.
const metersPerDegreeLat = 111320.0

// Offset returns pt shifted by a uniformly random bearing and a random radius
// in (0, precisionMeters]. The radius is never zero, so the returned point is
// never the exact input. Every call draws fresh randomness: repeated reads of
// the same snapshot yield different jittered points, and callers must not
// assume stability across polls.
func Offset(pt orb.Point, precisionMeters float64) orb.Point {
	if precisionMeters <= 0 {
		return pt
	}

	theta := rand.Float64() * 2 * math.Pi
	// rand.Float64 is in [0, 1); flipping it yields (0, 1] so r stays above zero.
	r := (1 - rand.Float64()) * precisionMeters

	latRad := pt.Lat() * math.Pi / 180
	dLat := r * math.Cos(theta) / metersPerDegreeLat
	dLng := r * math.Sin(theta) / (metersPerDegreeLat * math.Cos(latRad))

	return orb.Point{pt.Lon() + dLng, pt.Lat() + dLat}
}
