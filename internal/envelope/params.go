package envelope

import (
	"fmt"

	"govn/internal/atmosphere"
)

// newtonsPerPoundForce converts pound-force to newtons.
const newtonsPerPoundForce = 4.4482216152605

// AircraftParams is the immutable input parameter set for one
// envelope computation. SI units throughout unless noted; the
// altitude unit is carried explicitly.
type AircraftParams struct {
	SRef           float64         // wing reference area, m²
	Chord          float64         // mean aerodynamic chord, m
	CLAlpha        float64         // lift-curve slope, 1/rad
	CLMax          float64         // maximum lift coefficient
	CLMin          float64         // minimum (inverted) lift coefficient
	MaxWingLoading float64         // maximum wing loading, N/m²
	WeightFactor   float64         // fraction of max wing loading at the analysis weight
	CruiseAltitude float64         // altitude in AltitudeUnit
	AltitudeUnit   atmosphere.Unit // "m" or "ft"
	CruiseSpeedTAS float64         // true airspeed at cruise, m/s
}

// WingLoading returns the wing loading at the analysis weight, N/m².
func (p AircraftParams) WingLoading() float64 {
	return p.WeightFactor * p.MaxWingLoading
}

// GrossWeightN returns the analysis gross weight in newtons.
func (p AircraftParams) GrossWeightN() float64 {
	return p.WingLoading() * p.SRef
}

// GrossWeightLb returns the analysis gross weight in pound-force,
// the unit the limit load-factor formula is defined in.
func (p AircraftParams) GrossWeightLb() float64 {
	return p.GrossWeightN() / newtonsPerPoundForce
}

// Validate rejects parameter sets that would produce division-by-zero
// or negative-sqrt geometry downstream.
func (p AircraftParams) Validate() error {
	if p.SRef <= 0 {
		return fmt.Errorf("reference area must be positive, got %g", p.SRef)
	}
	if p.Chord <= 0 {
		return fmt.Errorf("chord must be positive, got %g", p.Chord)
	}
	if p.CLAlpha <= 0 {
		return fmt.Errorf("lift-curve slope must be positive, got %g", p.CLAlpha)
	}
	if p.CLMax <= 0 {
		return fmt.Errorf("CL_max must be positive, got %g", p.CLMax)
	}
	if p.CLMin >= 0 {
		return fmt.Errorf("CL_min must be negative, got %g", p.CLMin)
	}
	if p.MaxWingLoading <= 0 {
		return fmt.Errorf("max wing loading must be positive, got %g", p.MaxWingLoading)
	}
	if p.WeightFactor <= 0 || p.WeightFactor > 1 {
		return fmt.Errorf("weight factor must be in (0, 1], got %g", p.WeightFactor)
	}
	if p.CruiseSpeedTAS <= 0 {
		return fmt.Errorf("cruise speed must be positive, got %g", p.CruiseSpeedTAS)
	}
	if p.AltitudeUnit != atmosphere.UnitMeters && p.AltitudeUnit != atmosphere.UnitFeet {
		return fmt.Errorf("unknown altitude unit %q", p.AltitudeUnit)
	}
	return nil
}
