package envelope

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"govn/internal/atmosphere"
	"govn/internal/gust"
)

// Design-speed margins applied to the design cruise speed.
const (
	vmoFactor = 1.06
	vdFactor  = 1.25
)

// DefaultResolution is the sample count used for curved segments.
const DefaultResolution = 60

// Curve names, shared between the builder and its consumers.
const (
	CurvePositiveStallArc  = "positive stall arc"
	CurveMaxLoadCeiling    = "max load ceiling"
	CurveDiveSpeedLimit    = "dive speed limit"
	CurveNegativeLoadRamp  = "negative load ramp"
	CurveMinLoadFloor      = "min load floor"
	CurveNegativeStallArc  = "negative stall arc"
	CurveZeroLoadSegment   = "zero load segment"
	CurveInvertedStallDrop = "inverted stall limit"

	CurveGustLinePosRough  = "positive rough-air gust line"
	CurveGustLineNegRough  = "negative rough-air gust line"
	CurveGustLinePosCruise = "positive cruise gust line"
	CurveGustLineNegCruise = "negative cruise gust line"
	CurveGustLinePosDive   = "positive dive gust line"
	CurveGustLineNegDive   = "negative dive gust line"
	CurveStallArcExtension = "stall arc extension"
	CurvePosGustBoundary   = "positive gust boundary"
	CurveDiveGustLimit     = "dive gust limit"
	CurveMinLoadApproach   = "minimum load approach"
	CurveNegGustBoundary   = "negative gust boundary"
)

// Builder assembles the ordered coordinate sequences of the basic
// maneuvering envelope and the gust-load envelope for one parameter
// set. All curves are expressed in equivalent airspeed, so stall
// relations are evaluated at sea-level density.
type Builder struct {
	params     AircraftParams
	state      atmosphere.State
	gusts      gust.Ref
	resolution int
	logger     *logrus.Logger
}

// NewBuilder validates the inputs and returns a builder. Curved
// segments are sampled with resolution points, linearly in speed.
func NewBuilder(params AircraftParams, state atmosphere.State, gusts gust.Ref, resolution int, logger *logrus.Logger) (*Builder, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid aircraft parameters: %w", err)
	}
	if state.Density <= 0 {
		return nil, fmt.Errorf("non-physical atmosphere: density %g kg/m³", state.Density)
	}
	if resolution < 2 {
		return nil, fmt.Errorf("resolution must be at least 2, got %d", resolution)
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Builder{
		params:     params,
		state:      state,
		gusts:      gusts,
		resolution: resolution,
		logger:     logger,
	}, nil
}

// Build computes the speed and load-factor sets and both envelopes.
// Any failure aborts the whole build; no partial result is returned.
func (b *Builder) Build() (*Result, error) {
	p := b.params
	wl := p.WingLoading()
	rho0 := atmosphere.SeaLevelDensity

	nMax := MaxLoadFactor(p.GrossWeightLb())
	nMin := MinLoadFactor(p.GrossWeightLb())

	speeds := SpeedSet{
		VS: SpeedFromLoad(1, rho0, wl, p.CLMax),
		VA: SpeedFromLoad(nMax, rho0, wl, p.CLMax),
		VC: EquivalentAirspeed(p.CruiseSpeedTAS, b.state.Density),
	}
	speeds.VMO = vmoFactor * speeds.VC
	speeds.VD = vdFactor * speeds.VC

	mu := MassRatio(wl, b.state.Density, p.Chord, p.CLAlpha)
	kg := GustAlleviation(mu)

	vb, err := GustIntersectionSpeed(kg, p.CLAlpha, b.gusts.RoughAir, p.CLMax, rho0, wl)
	if err != nil {
		return nil, err
	}
	speeds.VB = vb

	loads := LoadFactorSet{
		NStall:    1,
		NMax:      nMax,
		NMin:      nMin,
		NPosStall: 1,
		NNegStall: -1,
	}

	b.logger.WithFields(logrus.Fields{
		"v_s":   speeds.VS,
		"v_a":   speeds.VA,
		"v_b":   speeds.VB,
		"v_c":   speeds.VC,
		"v_mo":  speeds.VMO,
		"v_d":   speeds.VD,
		"n_max": nMax,
		"n_min": nMin,
		"k_g":   kg,
	}).Debug("Envelope scalars computed")

	res := &Result{
		Params:     p,
		Atmosphere: b.state,
		GustRef:    b.gusts,
		MassRatio:  mu,
		Kg:         kg,
		Speeds:     speeds,
		Loads:      loads,
	}
	res.Basic = b.buildBasic(speeds, loads)
	res.Gust = b.buildGust(speeds, loads, kg)
	res.Vertices = []Vertex{
		{Label: "V_S", V: speeds.VS, N: 1},
		{Label: "V_A", V: speeds.VA, N: nMax},
		{Label: "V_B", V: speeds.VB, N: LoadFromSpeed(rho0, speeds.VB, p.CLMax, wl)},
		{Label: "V_C", V: speeds.VC, N: nMin},
		{Label: "V_D", V: speeds.VD, N: nMax},
	}
	return res, nil
}

// sampleArc samples the stall relation n(V) = ρ0·V²·cl/(2·W/S)
// linearly between two speeds.
func (b *Builder) sampleArc(name string, v0, v1, cl float64) Curve {
	wl := b.params.WingLoading()
	pts := make([]Point, b.resolution)
	for i := range pts {
		v := v0 + (v1-v0)*float64(i)/float64(b.resolution-1)
		pts[i] = Point{V: v, N: LoadFromSpeed(atmosphere.SeaLevelDensity, v, cl, wl)}
	}
	return Curve{Name: name, Points: pts}
}

// buildBasic assembles the basic maneuvering envelope.
func (b *Builder) buildBasic(speeds SpeedSet, loads LoadFactorSet) []Curve {
	p := b.params
	wl := p.WingLoading()
	rho0 := atmosphere.SeaLevelDensity

	// speed at which the CL_min curve reaches the structural minimum
	vNMin := SpeedFromLoad(loads.NMin, rho0, wl, p.CLMin)

	curves := []Curve{
		b.sampleArc(CurvePositiveStallArc, 0, speeds.VA, p.CLMax),
		{Name: CurveMaxLoadCeiling, Points: []Point{
			{V: speeds.VA, N: loads.NMax},
			{V: speeds.VD, N: loads.NMax},
		}},
		{Name: CurveDiveSpeedLimit, Points: []Point{
			{V: speeds.VD, N: loads.NMax},
			{V: speeds.VD, N: 0},
		}},
		{Name: CurveNegativeLoadRamp, Points: []Point{
			{V: speeds.VD, N: 0},
			{V: speeds.VC, N: loads.NMin},
		}},
		{Name: CurveMinLoadFloor, Points: []Point{
			{V: speeds.VC, N: loads.NMin},
			{V: vNMin, N: loads.NMin},
		}},
	}

	if loads.NMin < -1 {
		// The structural minimum exceeds one g of inverted loading, so
		// the CL_min curve cannot be flown below the inverted stall
		// speed: a zero-load run-up and a vertical drop precede the arc.
		vsNeg := SpeedFromLoad(1, rho0, wl, p.CLMin)
		curves = append(curves,
			Curve{Name: CurveZeroLoadSegment, Points: []Point{
				{V: speeds.VS, N: 0},
				{V: vsNeg, N: 0},
			}},
			Curve{Name: CurveInvertedStallDrop, Points: []Point{
				{V: vsNeg, N: 0},
				{V: vsNeg, N: -1},
			}},
			b.sampleArc(CurveNegativeStallArc, vsNeg, vNMin, p.CLMin),
		)
	} else {
		curves = append(curves, b.sampleArc(CurveNegativeStallArc, speeds.VS, vNMin, p.CLMin))
	}

	return curves
}

// buildGust assembles the gust envelope: the three gust-line pairs and
// the boundary segments. Which segments exist depends on where V_B
// falls relative to V_A and to the speed at which the CL_min curve
// reaches the structural minimum; at every speed the binding
// constraint (stall lift or gust loading) wins.
func (b *Builder) buildGust(speeds SpeedSet, loads LoadFactorSet, kg float64) []Curve {
	p := b.params
	wl := p.WingLoading()
	rho0 := atmosphere.SeaLevelDensity

	gustPoint := func(ue, v, sign float64) Point {
		return Point{V: v, N: GustLoad(kg, p.CLAlpha, ue, v, wl, sign)}
	}
	gustLine := func(name string, ue, vEnd, sign float64) Curve {
		return Curve{Name: name, Points: []Point{{V: 0, N: 1}, gustPoint(ue, vEnd, sign)}}
	}

	curves := []Curve{
		gustLine(CurveGustLinePosRough, b.gusts.RoughAir, speeds.VB, 1),
		gustLine(CurveGustLineNegRough, b.gusts.RoughAir, speeds.VB, -1),
		gustLine(CurveGustLinePosCruise, b.gusts.Cruise, speeds.VC, 1),
		gustLine(CurveGustLineNegCruise, b.gusts.Cruise, speeds.VC, -1),
		gustLine(CurveGustLinePosDive, b.gusts.Dive, speeds.VD, 1),
		gustLine(CurveGustLineNegDive, b.gusts.Dive, speeds.VD, -1),
	}

	// positive boundary: stall arc up to V_B, then straight segments
	// through the cruise and dive gust points
	posAtVB := Point{V: speeds.VB, N: LoadFromSpeed(rho0, speeds.VB, p.CLMax, wl)}
	posAtVC := gustPoint(b.gusts.Cruise, speeds.VC, 1)
	posAtVD := gustPoint(b.gusts.Dive, speeds.VD, 1)
	negAtVC := gustPoint(b.gusts.Cruise, speeds.VC, -1)
	negAtVD := gustPoint(b.gusts.Dive, speeds.VD, -1)

	curves = append(curves,
		Curve{Name: CurvePosGustBoundary, Points: []Point{posAtVB, posAtVC, posAtVD}},
		Curve{Name: CurveDiveGustLimit, Points: []Point{posAtVD, negAtVD}},
	)

	// speed at which the CL_min curve reaches the structural minimum
	vbNMin := SpeedFromLoad(loads.NMin, rho0, wl, p.CLMin)

	switch {
	case speeds.VB > speeds.VA:
		// Gust load exceeds the basic envelope beyond V_A: the stall
		// arc keeps governing out to V_B, so an extra positive-load
		// segment is inserted, and the negative branch follows the
		// gust line from V_B on.
		curves = append(curves,
			b.sampleArc(CurveStallArcExtension, speeds.VA, speeds.VB, p.CLMax),
			Curve{Name: CurveNegGustBoundary, Points: []Point{
				gustPoint(b.gusts.RoughAir, speeds.VB, -1),
				negAtVC,
				negAtVD,
			}},
		)

	case speeds.VB < vbNMin:
		// The gust intersection sits before the CL_min curve reaches
		// the structural minimum: the negative branch runs directly
		// from V_B to V_C along the gust line.
		curves = append(curves, Curve{Name: CurveNegGustBoundary, Points: []Point{
			gustPoint(b.gusts.RoughAir, speeds.VB, -1),
			negAtVC,
			negAtVD,
		}})

	default:
		// Between the structural minimum and V_B either the stall lift
		// or the gust loading is binding; the lower of the two at V_B
		// decides which relation the approach segment follows, and the
		// V_B-to-V_C segment starts from that value.
		nStallAtVB := LoadFromSpeed(rho0, speeds.VB, p.CLMin, wl)
		nGustAtVB := GustLoad(kg, p.CLAlpha, b.gusts.RoughAir, speeds.VB, wl, -1)

		var approach Curve
		var startAtVB Point
		if nStallAtVB < nGustAtVB {
			approach = b.sampleArc(CurveMinLoadApproach, vbNMin, speeds.VB, p.CLMin)
			startAtVB = Point{V: speeds.VB, N: nStallAtVB}
		} else {
			// the gust line crosses the structural floor at this speed
			vFloor := 2 * wl * (1 - loads.NMin) / (kg * p.CLAlpha * b.gusts.RoughAir)
			approach = Curve{Name: CurveMinLoadApproach, Points: []Point{
				{V: vFloor, N: loads.NMin},
				{V: speeds.VB, N: nGustAtVB},
			}}
			startAtVB = Point{V: speeds.VB, N: nGustAtVB}
		}
		curves = append(curves,
			approach,
			Curve{Name: CurveNegGustBoundary, Points: []Point{startAtVB, negAtVC, negAtVD}},
		)
	}

	return curves
}
