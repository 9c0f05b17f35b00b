package solver

import "errors"

// Error taxonomy for a solve. Configuration errors abort with no partial
// result; non-convergence is reported on the Result instead (see Solve).
var (
	// ErrInvalidInput indicates a physically meaningless input, such as a
	// non-positive Reynolds number reaching the friction factor evaluator
	// or a segment with zero diameter or length.
	ErrInvalidInput = errors.New("solver: invalid input")

	// ErrInfeasible indicates boundary conditions that cannot drive forward
	// flow (drive term <= 0) or a loss configuration whose energy-balance
	// denominator is non-positive. The network as configured has no valid
	// solution.
	ErrInfeasible = errors.New("solver: infeasible configuration")
)
