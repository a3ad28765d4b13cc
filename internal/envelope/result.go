package envelope

import (
	"govn/internal/atmosphere"
	"govn/internal/gust"
)

// Point is one (equivalent airspeed, load factor) sample.
type Point struct {
	V float64 // equivalent airspeed, m/s
	N float64 // load factor, dimensionless
}

// Curve is one ordered polyline segment of an envelope diagram.
// Points are ordered by increasing or decreasing speed as appropriate
// for rendering; curves are recomputed on every build.
type Curve struct {
	Name   string
	Points []Point
}

// Vertex is a labeled annotation point.
type Vertex struct {
	Label string
	V     float64
	N     float64
}

// SpeedSet holds the named design equivalent airspeeds, m/s.
// By construction V_S ≤ V_A ≤ V_C ≤ V_MO ≤ V_D for sensible inputs;
// the ordering is not independently enforced.
type SpeedSet struct {
	VS  float64 // stall speed at n=1
	VA  float64 // corner / maneuvering speed
	VC  float64 // design cruise speed
	VMO float64 // maximum operating speed
	VD  float64 // design dive speed
	VB  float64 // rough-air gust intersection speed
}

// LoadFactorSet holds the named limit load factors.
type LoadFactorSet struct {
	NStall    float64 // 1 by convention
	NMax      float64 // positive maneuvering limit
	NMin      float64 // negative maneuvering limit, -0.4·NMax
	NPosStall float64 // load factor at VS on the CL_max curve (1)
	NNegStall float64 // load factor at the inverted stall speed (-1)
}

// Result is the complete output of one envelope build: the derived
// scalars plus the ordered coordinate sequences for both diagrams.
type Result struct {
	Params     AircraftParams
	Atmosphere atmosphere.State
	GustRef    gust.Ref
	MassRatio  float64
	Kg         float64
	Speeds     SpeedSet
	Loads      LoadFactorSet
	Basic      []Curve
	Gust       []Curve
	Vertices   []Vertex
}
