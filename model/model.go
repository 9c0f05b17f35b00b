package model

// Env is the network configuration sent by the frontend before a solve.
type Env struct {
	Fluid     FluidSpec      `json:"fluid"`
	Segments  [3]SegmentSpec `json:"segments"`
	MinorLoss [3]float64     `json:"minor_loss"` // aggregate K per segment, local-velocity basis
	Boundary  BoundarySpec   `json:"boundary"`
	Solver    SolverSpec     `json:"solver"`
}

// FluidSpec selects a catalog fluid by name and temperature, or spells the
// properties out directly when Name is empty.
type FluidSpec struct {
	Name               string  `json:"name"`
	TemperatureC       float64 `json:"temperature_c"`
	Density            float64 `json:"density"`             // kg/m3
	KinematicViscosity float64 `json:"kinematic_viscosity"` // m2/s
	Gravity            float64 `json:"gravity"`             // m/s2, 0 means standard
}

type SegmentSpec struct {
	Diameter  float64 `json:"diameter"`  // m
	Length    float64 `json:"length"`    // m
	Roughness float64 `json:"roughness"` // absolute, m
}

type BoundarySpec struct {
	PressureIn   float64 `json:"pressure_in"`  // absolute, Pa
	PressureOut  float64 `json:"pressure_out"` // absolute, Pa
	ElevationIn  float64 `json:"elevation_in"` // m
	ElevationOut float64 `json:"elevation_out"`
}

// SolverSpec overrides the configured solver defaults; zero fields keep them.
type SolverSpec struct {
	InitialGuess  float64 `json:"initial_guess"` // m/s
	TolerancePct  float64 `json:"tolerance_pct"`
	MaxIterations int     `json:"max_iterations"`
	TraceDepth    int     `json:"trace_depth"`
}

// SweepReq asks for one solve per settings variant.
type SweepReq struct {
	Variants []SolverSpec `json:"variants"`
	Workers  int          `json:"workers"` // 0 means configured default
}

// Msg is the frame exchanged with the frontend.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
