package app

import "govn/internal/atmosphere"

// Default aircraft parameters: the light utility study case the tool
// ships with.
const (
	DefaultSRef           = 31.0 // m²
	DefaultChord          = 1.9  // m
	DefaultCLAlpha        = 5.64 // 1/rad
	DefaultCLMax          = 2.6
	DefaultCLMin          = -1.2
	DefaultMaxWingLoading = 2100.0 // N/m²
	DefaultWeightFactor   = 0.85
	DefaultAltitude       = 35000.0
	DefaultAltitudeUnit   = string(atmosphere.UnitFeet)
	DefaultCruiseSpeed    = 203.0 // m/s TAS
	DefaultResolution     = 60
)

// Config holds application configuration
type Config struct {
	SRef           float64
	Chord          float64
	CLAlpha        float64
	CLMax          float64
	CLMin          float64
	MaxWingLoading float64
	WeightFactor   float64
	Altitude       float64
	AltitudeUnit   string
	CruiseSpeed    float64
	Resolution     int

	OutputDir   string
	BaseName    string
	WriteCSV    bool
	WriteXLSX   bool
	WritePNG    bool
	Verbose     bool
	ShowVersion bool
}
