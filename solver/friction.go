package solver

import (
	"fmt"
	"math"
)

// FrictionFactor returns the Darcy friction factor for a circular pipe via
// Churchill's explicit correlation, which tracks the implicit Colebrook
// relation across laminar, transitional and fully turbulent regimes without
// an inner iteration.
//
//	A = (2.457 ln(1/((7/Re)^0.9 + 0.27 e/D)))^16
//	B = (37530/Re)^16
//	f = 8 ((8/Re)^12 + 1/(A+B)^1.5)^(1/12)
//
// The constants and exponents are part of the contract: published result
// tables depend on this exact correlation, not on "a" friction factor.
// roughness and diameter are absolute values in meters.
func FrictionFactor(re, roughness, diameter float64) (float64, error) {
	if re <= 0 {
		return 0, fmt.Errorf("%w: Reynolds number %g must be positive", ErrInvalidInput, re)
	}
	a := math.Pow(2.457*math.Log(1.0/(math.Pow(7.0/re, 0.9)+0.27*roughness/diameter)), 16)
	b := math.Pow(37530.0/re, 16)
	f := 8.0 * math.Pow(math.Pow(8.0/re, 12)+1.0/math.Pow(a+b, 1.5), 1.0/12.0)
	return f, nil
}
