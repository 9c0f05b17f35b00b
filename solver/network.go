package solver

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"pipenet/fluid"
	"pipenet/model"
)

// SegmentCount is fixed: the formulation lumps the whole network into three
// serial segments joined by continuity.
const SegmentCount = 3

// Fluid holds the working-fluid properties, constant for a run.
type Fluid struct {
	Density            float64 `json:"density"`             // kg/m3
	KinematicViscosity float64 `json:"kinematic_viscosity"` // m2/s
	Gravity            float64 `json:"gravity"`             // m/s2
}

// Segment is the static geometry of one pipe segment.
type Segment struct {
	Diameter  float64 `json:"diameter"`  // m
	Length    float64 `json:"length"`    // m
	Roughness float64 `json:"roughness"` // absolute, m
}

// Area returns the cross-sectional area in m2.
func (s Segment) Area() float64 {
	return math.Pi * s.Diameter * s.Diameter / 4.0
}

// Boundary holds the pressures and elevations at the network ends.
type Boundary struct {
	PressureIn   float64 `json:"pressure_in"`  // absolute, Pa
	PressureOut  float64 `json:"pressure_out"` // absolute, Pa
	ElevationIn  float64 `json:"elevation_in"` // m
	ElevationOut float64 `json:"elevation_out"`
}

// Network is the full immutable description of the three-segment serial
// piping run: fluid, geometry, aggregate minor-loss coefficients and
// boundary conditions. Minor-loss K values are referenced to the local
// velocity of their segment; segment 1 carries none in this topology.
type Network struct {
	Fluid     Fluid                 `json:"fluid"`
	Segments  [SegmentCount]Segment `json:"segments"`
	MinorLoss [SegmentCount]float64 `json:"minor_loss"`
	Boundary  Boundary              `json:"boundary"`
}

// DriveTerm is the lumped energy available to drive flow, per unit mass:
// (pIn-pOut)/rho + g(zIn-zOut). It must be strictly positive for the
// formulation to admit forward flow.
func (n *Network) DriveTerm() float64 {
	return (n.Boundary.PressureIn-n.Boundary.PressureOut)/n.Fluid.Density +
		n.Fluid.Gravity*(n.Boundary.ElevationIn-n.Boundary.ElevationOut)
}

// Validate checks the static preconditions before any iteration runs.
func (n *Network) Validate() error {
	if n.Fluid.Density <= 0 || n.Fluid.KinematicViscosity <= 0 {
		return fmt.Errorf("%w: fluid density and viscosity must be positive", ErrInvalidInput)
	}
	for i, s := range n.Segments {
		if s.Diameter <= 0 || s.Length <= 0 {
			return fmt.Errorf("%w: segment %d diameter and length must be positive", ErrInvalidInput, i+1)
		}
	}
	if dt := n.DriveTerm(); dt <= 0 {
		return fmt.Errorf("%w: drive term %.4f m2/s2, boundary conditions cannot sustain forward flow", ErrInfeasible, dt)
	}
	return nil
}

// areaRatios returns A1/Ai for each segment, the fixed continuity factors
// that map the inlet velocity to each segment's local velocity.
func (n *Network) areaRatios() [SegmentCount]float64 {
	a1 := n.Segments[0].Area()
	var r [SegmentCount]float64
	for i, s := range n.Segments {
		r[i] = a1 / s.Area()
	}
	return r
}

// NewNetworkFromEnv builds a Network from the frontend env message. A fluid
// given by name is resolved through the catalog; otherwise the raw
// properties are taken as-is. Zero gravity defaults to standard gravity.
func NewNetworkFromEnv(env model.Env) (*Network, error) {
	n := &Network{}
	if env.Fluid.Name != "" {
		p, err := fluid.ByName(env.Fluid.Name, env.Fluid.TemperatureC)
		if err != nil {
			return nil, err
		}
		n.Fluid = Fluid{Density: p.Density, KinematicViscosity: p.KinematicViscosity, Gravity: fluid.StandardGravity}
		log.Info("fluid from catalog: ", env.Fluid.Name, " at ", env.Fluid.TemperatureC, " C")
	} else {
		n.Fluid = Fluid{
			Density:            env.Fluid.Density,
			KinematicViscosity: env.Fluid.KinematicViscosity,
			Gravity:            env.Fluid.Gravity,
		}
	}
	if n.Fluid.Gravity == 0 {
		n.Fluid.Gravity = fluid.StandardGravity
	}
	for i := 0; i < SegmentCount; i++ {
		n.Segments[i] = Segment{
			Diameter:  env.Segments[i].Diameter,
			Length:    env.Segments[i].Length,
			Roughness: env.Segments[i].Roughness,
		}
		n.MinorLoss[i] = env.MinorLoss[i]
	}
	n.Boundary = Boundary{
		PressureIn:   env.Boundary.PressureIn,
		PressureOut:  env.Boundary.PressureOut,
		ElevationIn:  env.Boundary.ElevationIn,
		ElevationOut: env.Boundary.ElevationOut,
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	log.Info("network accepted, drive term: ", fmt.Sprintf("%.3f m2/s2", n.DriveTerm()))
	return n, nil
}
