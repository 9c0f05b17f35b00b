package solver

import (
	"fmt"
	"strings"
)

// Summary renders the human-readable report for a result. The solver itself
// never prints; presentation stays out here.
func (r *Result) Summary(net *Network) string {
	var b strings.Builder
	fmt.Fprintf(&b, "pipe network solution (%d iterations, final error %.4g%%)\n",
		r.Iterations, r.FinalErrorPct)
	if !r.Converged {
		b.WriteString("WARNING: did not converge, best-effort estimate\n")
	}
	for i := 0; i < SegmentCount; i++ {
		seg := net.Segments[i]
		fmt.Fprintf(&b, "  segment %d: D=%.4f m L=%.2f m  V=%.4f m/s  Re=%.0f  f=%.4f\n",
			i+1, seg.Diameter, seg.Length, r.Velocities[i], r.Reynolds[i], r.FrictionFactors[i])
	}
	fmt.Fprintf(&b, "  flow rate: %.6g m3/s (%.3f L/min)\n", r.FlowRate, r.FlowRateLPerMin())
	return b.String()
}
