package geo

import (
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
)

// The equirectangular conversion introduces a small error versus the haversine
// oracle, so the upper bound gets a 1% allowance.
const distanceTolerance = 1.01

func TestOffset_WithinPrecisionAndNeverExact(t *testing.T) {
	origin := orb.Point{-123.1207, 49.2827}

	precisions := []float64{5, 50, 500, 2000}
	for _, precision := range precisions {
		for range 1000 {
			shifted := Offset(origin, precision)

			assert.NotEqual(t, origin, shifted, "offset must never return the exact input")

			d := orbgeo.Distance(origin, shifted)
			assert.Greater(t, d, 0.0)
			assert.LessOrEqual(t, d, precision*distanceTolerance,
				"offset %.2fm exceeds precision %.2fm", d, precision)
		}
	}
}

func TestOffset_IndependentlyRandomized(t *testing.T) {
	origin := orb.Point{121.5654, 25.033}

	first := Offset(origin, 100)
	second := Offset(origin, 100)

	// Two draws landing on the identical point is vanishingly unlikely; a stable
	// output would defeat the anti-triangulation requirement.
	assert.NotEqual(t, first, second)
}

func TestOffset_NonPositivePrecisionIsIdentity(t *testing.T) {
	origin := orb.Point{10, 10}

	assert.Equal(t, origin, Offset(origin, 0))
	assert.Equal(t, origin, Offset(origin, -5))
}
