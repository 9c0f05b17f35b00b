package solver

import (
	"fmt"
	"math"

	"pipenet/trace"
)

// Settings controls one solve. Zero fields fall back to the configured
// defaults (see conf/config.ini).
type Settings struct {
	InitialGuess  float64 `json:"initial_guess"`  // m/s
	TolerancePct  float64 `json:"tolerance_pct"`  // percent change between iterates
	MaxIterations int     `json:"max_iterations"` // sole guard against non-convergence
	TraceDepth    int     `json:"trace_depth"`    // iterates kept on the result
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.InitialGuess == 0 {
		s.InitialGuess = d.InitialGuess
	}
	if s.TolerancePct <= 0 {
		s.TolerancePct = d.TolerancePct
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = d.MaxIterations
	}
	if s.TraceDepth <= 0 {
		s.TraceDepth = d.TraceDepth
	}
	return s
}

// Result is the converged (or best-effort) solution of a network.
type Result struct {
	Velocities      [SegmentCount]float64 `json:"velocities"`       // m/s, per segment
	FrictionFactors [SegmentCount]float64 `json:"friction_factors"` // Darcy, per segment
	Reynolds        [SegmentCount]float64 `json:"reynolds"`
	FlowRate        float64               `json:"flow_rate"` // m3/s
	Iterations      int                   `json:"iterations"`
	FinalErrorPct   float64               `json:"final_error_pct"`
	Converged       bool                  `json:"converged"`
	Trace           []trace.Record        `json:"trace"` // most recent iterates, oldest first
}

// FlowRateLPerMin converts the flow rate for display.
func (r *Result) FlowRateLPerMin() float64 {
	return r.FlowRate * 60000.0
}

// Solve computes the steady-state inlet velocity satisfying the lumped
// energy balance across the three serial segments, by fixed-point
// (successive substitution) iteration:
//
//	v1 <- sqrt(DriveTerm / denom(v1))
//
// where denom collects the inlet-to-outlet kinetic-energy coefficient and
// the Darcy-Weisbach major and minor loss coefficients, all expressed on an
// inlet-velocity basis through the continuity area ratios. Exhausting
// MaxIterations above tolerance is not an error: the best-effort estimate is
// returned with Converged=false and the caller decides whether to trust it.
func Solve(net *Network, s Settings) (*Result, error) {
	if err := net.Validate(); err != nil {
		return nil, err
	}
	s = s.withDefaults()

	ratios := net.areaRatios()
	drive := net.DriveTerm()

	// Inlet kinetic energy and the squared outlet area ratio fold into one
	// fixed coefficient. Empirical form, kept as-is.
	headCoeff := 0.5*ratios[SegmentCount-1]*ratios[SegmentCount-1] - 0.5

	var (
		f    [SegmentCount]float64
		re   [SegmentCount]float64
		v    = s.InitialGuess
		iter = 0
	)
	errPct := math.Inf(1)
	ring := trace.NewRing(s.TraceDepth)

	for errPct > s.TolerancePct && iter < s.MaxIterations {
		denom := headCoeff
		for i := 0; i < SegmentCount; i++ {
			seg := net.Segments[i]
			vi := v * ratios[i]
			re[i] = vi * seg.Diameter / net.Fluid.KinematicViscosity
			fi, err := FrictionFactor(re[i], seg.Roughness, seg.Diameter)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i+1, err)
			}
			f[i] = fi
			denom += fi * seg.Length / seg.Diameter * 0.5 * ratios[i] * ratios[i]
			if i > 0 { // segment 1 carries no minor losses in this topology
				denom += net.MinorLoss[i] * 0.5 * ratios[i] * ratios[i]
			}
		}
		if denom <= 0 {
			return nil, fmt.Errorf("%w: energy-balance denominator %.4f at iteration %d", ErrInfeasible, denom, iter)
		}
		vNew := math.Sqrt(drive / denom)
		// percent change against the new estimate, asymmetric on purpose
		errPct = math.Abs(v-vNew) / vNew * 100.0
		v = vNew
		iter++
		ring.PushBack(trace.Record{Iteration: iter, Velocity: v, ErrorPct: errPct})
	}

	res := &Result{
		FrictionFactors: f,
		Reynolds:        re,
		Iterations:      iter,
		FinalErrorPct:   errPct,
		Converged:       errPct <= s.TolerancePct,
		Trace:           ring.Records(),
	}
	for i := 0; i < SegmentCount; i++ {
		res.Velocities[i] = v * ratios[i]
	}
	res.FlowRate = v * net.Segments[0].Area()
	return res, nil
}
