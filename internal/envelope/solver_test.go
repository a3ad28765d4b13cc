package envelope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpeedLoadRoundTrip tests that SpeedFromLoad inverts
// LoadFromSpeed in the positive-load domain
func TestSpeedLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		rho         float64
		v           float64
		cl          float64
		wingLoading float64
	}{
		{
			name:        "Sea level, moderate speed",
			rho:         1.225,
			v:           60,
			cl:          2.6,
			wingLoading: 1785,
		},
		{
			name:        "Low lift coefficient",
			rho:         1.225,
			v:           120,
			cl:          0.4,
			wingLoading: 2100,
		},
		{
			name:        "Thin air",
			rho:         0.38,
			v:           200,
			cl:          1.2,
			wingLoading: 3000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := LoadFromSpeed(tt.rho, tt.v, tt.cl, tt.wingLoading)
			v := SpeedFromLoad(n, tt.rho, tt.wingLoading, tt.cl)
			assert.InDelta(t, tt.v, v, 1e-9)
		})
	}
}

// TestSpeedFromLoadAbsQuirk tests that the sign of n/cl never makes
// the result complex: the ratio is taken as an absolute value
func TestSpeedFromLoadAbsQuirk(t *testing.T) {
	posPos := SpeedFromLoad(2.0, 1.225, 1785, 2.6)
	negNeg := SpeedFromLoad(-2.0, 1.225, 1785, -2.6)
	posNeg := SpeedFromLoad(2.0, 1.225, 1785, -2.6)
	negPos := SpeedFromLoad(-2.0, 1.225, 1785, 2.6)

	assert.False(t, math.IsNaN(posNeg))
	assert.False(t, math.IsNaN(negPos))
	assert.InDelta(t, posPos, negNeg, 1e-12)
	assert.InDelta(t, posPos, posNeg, 1e-12)
	assert.InDelta(t, posPos, negPos, 1e-12)
	assert.Greater(t, posPos, 0.0)
}

// TestMaxLoadFactor tests the limit load formula, its cap, and its
// monotonic decrease with weight
func TestMaxLoadFactor(t *testing.T) {
	// min(2.1 + 24000/10000, 3.8) = min(4.5, 3.8) = 3.8
	assert.InDelta(t, 3.8, MaxLoadFactor(0), 1e-12)

	prev := MaxLoadFactor(0)
	for w := 1000.0; w <= 400000; w += 1000 {
		n := MaxLoadFactor(w)
		assert.LessOrEqual(t, n, prev, "limit load factor must not increase with weight (W=%.0f lb)", w)
		assert.LessOrEqual(t, n, 3.8)
		assert.Greater(t, n, 2.1)
		prev = n
	}

	// past the cap the formula takes over
	assert.InDelta(t, 2.1+24000/60000.0, MaxLoadFactor(50000), 1e-12)
}

// TestMinLoadFactor tests the regulation relation to the positive limit
func TestMinLoadFactor(t *testing.T) {
	for _, w := range []float64{0, 12440, 62990, 200000} {
		assert.InDelta(t, -0.4*MaxLoadFactor(w), MinLoadFactor(w), 1e-12)
	}
}

// TestEquivalentAirspeed tests the density-ratio scaling
func TestEquivalentAirspeed(t *testing.T) {
	// at sea level EAS equals TAS
	assert.InDelta(t, 100, EquivalentAirspeed(100, 1.225), 1e-12)

	// at altitude EAS is lower
	eas := EquivalentAirspeed(203, 0.38049)
	assert.InDelta(t, 203*math.Sqrt(0.38049/1.225), eas, 1e-9)
	assert.Less(t, eas, 203.0)
}

// TestGustAlleviation tests the alleviation factor formula and range
func TestGustAlleviation(t *testing.T) {
	tests := []struct {
		name     string
		mu       float64
		expected float64
	}{
		{
			name:     "Light mass ratio",
			mu:       10,
			expected: 0.88 * 10 / 15.3,
		},
		{
			name:     "Transport mass ratio",
			mu:       89.286,
			expected: 0.88 * 89.286 / 94.586,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kg := GustAlleviation(tt.mu)
			assert.InDelta(t, tt.expected, kg, 1e-9)
			assert.Greater(t, kg, 0.0)
			assert.Less(t, kg, 0.88, "K_g approaches 0.88 only asymptotically")
		})
	}
}

// TestMassRatio tests μ against a hand-computed reference value
func TestMassRatio(t *testing.T) {
	mu := MassRatio(1785, 0.38049, 1.9, 5.64)
	assert.InDelta(t, 89.29, mu, 0.05)
}

// TestGustLoad tests the linear gust-line relation and its symmetry
func TestGustLoad(t *testing.T) {
	kg, clAlpha, ue, wl := 0.83, 5.64, 15.85, 1785.0

	// both lines pass through n=1 at V=0
	assert.InDelta(t, 1.0, GustLoad(kg, clAlpha, ue, 0, wl, 1), 1e-12)
	assert.InDelta(t, 1.0, GustLoad(kg, clAlpha, ue, 0, wl, -1), 1e-12)

	// symmetric increments about n=1
	pos := GustLoad(kg, clAlpha, ue, 113, wl, 1)
	neg := GustLoad(kg, clAlpha, ue, 113, wl, -1)
	assert.InDelta(t, pos-1, 1-neg, 1e-12)

	// linear in V: doubling the speed doubles the increment
	half := GustLoad(kg, clAlpha, ue, 56.5, wl, 1)
	assert.InDelta(t, (pos-1)/2, half-1, 1e-9)
}

// TestQuadraticRoots tests the real-root solve and its failure mode
func TestQuadraticRoots(t *testing.T) {
	tests := []struct {
		name      string
		a, b, c   float64
		r1, r2    float64
		expectErr bool
	}{
		{
			name: "Two distinct roots",
			a:    1, b: -3, c: 2,
			r1: 2, r2: 1,
		},
		{
			name: "Repeated root",
			a:    1, b: -2, c: 1,
			r1: 1, r2: 1,
		},
		{
			name: "Mixed-sign roots",
			a:    1, b: 0, c: -4,
			r1: 2, r2: -2,
		},
		{
			name: "No real root",
			a:    1, b: 0, c: 1,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r1, r2, err := QuadraticRoots(tt.a, tt.b, tt.c)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoRealRoot)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.r1, r1, 1e-12)
			assert.InDelta(t, tt.r2, r2, 1e-12)
		})
	}
}

// TestQuadraticRootsDegenerate tests that a zero leading coefficient
// is rejected instead of dividing to infinities
func TestQuadraticRootsDegenerate(t *testing.T) {
	r1, r2, err := QuadraticRoots(0, 2, -4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degenerate")
	assert.False(t, math.IsInf(r1, 0))
	assert.False(t, math.IsInf(r2, 0))
}

// TestGustIntersectionSpeed tests the V_B solve against a reference
// parameter set
func TestGustIntersectionSpeed(t *testing.T) {
	vb, err := GustIntersectionSpeed(0.83069, 5.64, 15.8496, 2.6, 1.225, 1785)
	require.NoError(t, err)
	assert.InDelta(t, 47.1, vb, 0.2)

	// the returned root is the positive one
	assert.Greater(t, vb, 0.0)
}

// TestGustIntersectionSpeedNoRealRoot tests that a forced-negative
// discriminant surfaces as a domain error, never as NaN
func TestGustIntersectionSpeedNoRealRoot(t *testing.T) {
	// an inverted lift curve with a tiny gust term flips the parabola
	// and leaves the discriminant negative
	vb, err := GustIntersectionSpeed(0.8, 5.64, 1e-6, -2.6, 1.225, 1785)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRealRoot)
	assert.False(t, math.IsNaN(vb))
	assert.Zero(t, vb)
}
