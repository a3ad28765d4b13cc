// Package gust provides the altitude-dependent reference gust
// velocities used for gust-load envelope construction.
package gust

import (
	"govn/internal/atmosphere"
)

// Table break points and reference velocities. Below LowAltitudeFt the
// high-intensity values apply, above HighAltitudeFt the low-intensity
// values; in between each component interpolates linearly.
const (
	LowAltitudeFt  = 20000.0
	HighAltitudeFt = 50000.0

	metersPerFoot = 0.3048

	// reference gust velocities, ft/s
	roughAirLowAlt  = 66.0
	roughAirHighAlt = 38.0
	cruiseLowAlt    = 50.0
	cruiseHighAlt   = 25.0
	diveLowAlt      = 25.0
	diveHighAlt     = 12.5
)

// Ref holds the three reference gust velocities in m/s.
type Ref struct {
	RoughAir float64 // U_B, rough-air gust at design speed for max gust intensity
	Cruise   float64 // U_C, gust at design cruise speed
	Dive     float64 // U_D, gust at design dive speed
}

// Speeds returns the reference gust velocities at the given altitude.
// Both table break points are inclusive, so queries at exactly
// 20000 ft or 50000 ft return the tabulated boundary values.
func Speeds(altitude float64, unit atmosphere.Unit) (Ref, error) {
	state, err := atmosphere.Lookup(altitude, unit)
	if err != nil {
		return Ref{}, err
	}
	h := state.AltitudeFt

	var ub, uc, ud float64
	switch {
	case h <= LowAltitudeFt:
		ub, uc, ud = roughAirLowAlt, cruiseLowAlt, diveLowAlt
	case h >= HighAltitudeFt:
		ub, uc, ud = roughAirHighAlt, cruiseHighAlt, diveHighAlt
	default:
		frac := (h - LowAltitudeFt) / (HighAltitudeFt - LowAltitudeFt)
		ub = roughAirLowAlt + frac*(roughAirHighAlt-roughAirLowAlt)
		uc = cruiseLowAlt + frac*(cruiseHighAlt-cruiseLowAlt)
		ud = diveLowAlt + frac*(diveHighAlt-diveLowAlt)
	}

	return Ref{
		RoughAir: ub * metersPerFoot,
		Cruise:   uc * metersPerFoot,
		Dive:     ud * metersPerFoot,
	}, nil
}
