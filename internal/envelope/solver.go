package envelope

import (
	"errors"
	"fmt"
	"math"

	"govn/internal/atmosphere"
)

// standard gravity, m/s²
const gravity = 9.80665

// ErrNoRealRoot reports a quadratic with a negative discriminant.
// The gust-intersection solve can hit this for pathological inputs,
// and it must surface as an explicit failure instead of NaN-propagated
// curves.
var ErrNoRealRoot = errors.New("quadratic has no real root")

// EquivalentAirspeed converts a true airspeed at the given density to
// equivalent airspeed referenced to sea level.
func EquivalentAirspeed(v, rho float64) float64 {
	return v * math.Sqrt(rho/atmosphere.SeaLevelDensity)
}

// SpeedFromLoad returns the speed at which the given load factor is
// reached with the given lift coefficient.
//
// The n/cl ratio is taken as an absolute value so the result stays
// real for any sign combination. This discards sign information on
// purpose: negative-lift branches are selected by the caller passing
// CL_min, never by the sign of the returned speed.
func SpeedFromLoad(n, rho, wingLoading, cl float64) float64 {
	return math.Sqrt(2 * wingLoading / rho * math.Abs(n/cl))
}

// LoadFromSpeed returns the load factor reached at the given speed
// and lift coefficient. Sign follows cl.
func LoadFromSpeed(rho, v, cl, wingLoading float64) float64 {
	return rho * v * v * cl / (2 * wingLoading)
}

// MaxLoadFactor returns the positive limit maneuvering load factor
// for the given gross weight in pound-force, capped at 3.8.
func MaxLoadFactor(grossWeightLb float64) float64 {
	return math.Min(2.1+24000/(grossWeightLb+10000), 3.8)
}

// MinLoadFactor returns the negative limit maneuvering load factor.
func MinLoadFactor(grossWeightLb float64) float64 {
	return -0.4 * MaxLoadFactor(grossWeightLb)
}

// MassRatio returns the airplane mass ratio μ used by the gust
// alleviation factor.
func MassRatio(wingLoading, rho, chord, clAlpha float64) float64 {
	return 2 * wingLoading / (rho * chord * clAlpha * gravity)
}

// GustAlleviation returns the gust alleviation factor K_g for the
// given mass ratio.
func GustAlleviation(mu float64) float64 {
	return 0.88 * mu / (5.3 + mu)
}

// GustLoad returns the load factor on a gust line at speed v for the
// reference gust velocity ue. sign selects the positive (+1) or
// negative (-1) gust line; both pass through n=1 at v=0.
func GustLoad(kg, clAlpha, ue, v, wingLoading, sign float64) float64 {
	return 1 + sign*kg*clAlpha*ue*v/(2*wingLoading)
}

// QuadraticRoots solves a·x² + b·x + c = 0 over the reals. Both roots
// are returned with the larger one first; a negative discriminant
// yields ErrNoRealRoot, and a == 0 is rejected as degenerate.
func QuadraticRoots(a, b, c float64) (float64, float64, error) {
	if a == 0 {
		return 0, 0, fmt.Errorf("degenerate quadratic: leading coefficient is zero")
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, fmt.Errorf("%w: discriminant %g", ErrNoRealRoot, disc)
	}
	sq := math.Sqrt(disc)
	r1 := (-b + sq) / (2 * a)
	r2 := (-b - sq) / (2 * a)
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	return r1, r2, nil
}

// GustIntersectionSpeed solves for V_B, the speed at which the
// rough-air gust line crosses the positive stall curve. The quadratic
// equates the stall load ρ·CL_max·V²/(2·W/S) with the gust load
// 1 + K_g·a·U_e·V/(2·W/S); of the two roots the positive one is the
// physically meaningful speed and is returned deterministically.
func GustIntersectionSpeed(kg, clAlpha, ue, clMax, rho, wingLoading float64) (float64, error) {
	a := rho * clMax / (2 * wingLoading)
	b := -kg * clAlpha * ue / (2 * wingLoading)
	c := -1.0

	r1, r2, err := QuadraticRoots(a, b, c)
	if err != nil {
		return 0, fmt.Errorf("gust intersection: %w", err)
	}
	if r1 <= 0 && r2 <= 0 {
		return 0, fmt.Errorf("gust intersection: no positive root (got %g and %g)", r1, r2)
	}
	if r1 > 0 {
		return r1, nil
	}
	return r2, nil
}
