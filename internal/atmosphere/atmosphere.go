package atmosphere

import (
	"fmt"
	"math"
)

// Unit identifies the unit an altitude value is expressed in.
type Unit string

const (
	UnitMeters Unit = "m"
	UnitFeet   Unit = "ft"
)

// Conversion and model constants
const (
	FeetPerMeter = 3.28084

	// SeaLevelDensity is the standard sea-level air density in kg/m³.
	SeaLevelDensity = 1.225

	// slugFt3ToKgM3 converts slug/ft³ to kg/m³.
	slugFt3ToKgM3 = 515.379

	// specific gas constant for air in Imperial units, ft·lbf/(slug·°R)
	gasConstantImperial = 1718.0

	// region boundaries of the piecewise standard-atmosphere model, ft
	TropopauseFt  = 36152.0
	StratopauseFt = 82345.0
)

// State describes the standard atmosphere at a single altitude.
// All fields are derived once per lookup; the struct carries no
// mutable state.
type State struct {
	AltitudeFt   float64 // geometric altitude, ft
	TemperatureF float64 // static temperature, °F
	PressureLbF2 float64 // static pressure, lb/ft²
	Density      float64 // density, kg/m³
	Sigma        float64 // density ratio relative to sea level
}

// toFeet converts an altitude to feet according to its unit.
func toFeet(altitude float64, unit Unit) (float64, error) {
	switch unit {
	case UnitFeet:
		return altitude, nil
	case UnitMeters:
		return altitude * FeetPerMeter, nil
	default:
		return 0, fmt.Errorf("unknown altitude unit %q (want %q or %q)", unit, UnitMeters, UnitFeet)
	}
}

// Lookup computes the standard-atmosphere state at the given altitude.
// The model is the three-region closed-form approximation (troposphere,
// lower stratosphere, upper stratosphere) evaluated in Imperial units
// and converted back to SI density. Altitudes outside the model's
// validity range, including negative ones, are extrapolated rather
// than rejected.
func Lookup(altitude float64, unit Unit) (State, error) {
	h, err := toFeet(altitude, unit)
	if err != nil {
		return State{}, err
	}

	var tempF, pressure float64
	switch {
	case h <= TropopauseFt:
		tempF = 59.0 - 0.00356*h
		pressure = 2116.0 * math.Pow((tempF+459.7)/518.6, 5.256)
	case h < StratopauseFt:
		tempF = -70.0
		pressure = 473.1 * math.Exp(1.73-0.000048*h)
	default:
		tempF = -205.05 + 0.00164*h
		pressure = 51.97 * math.Pow((tempF+459.7)/389.98, -11.388)
	}

	densitySlug := pressure / (gasConstantImperial * (tempF + 459.7))
	density := densitySlug * slugFt3ToKgM3

	return State{
		AltitudeFt:   h,
		TemperatureF: tempF,
		PressureLbF2: pressure,
		Density:      density,
		Sigma:        density / SeaLevelDensity,
	}, nil
}

// Density returns the standard-atmosphere density in kg/m³ at the
// given altitude.
func Density(altitude float64, unit Unit) (float64, error) {
	state, err := Lookup(altitude, unit)
	if err != nil {
		return 0, err
	}
	return state.Density, nil
}
