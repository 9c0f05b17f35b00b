// Package fluid is the working-fluid catalog: named fluids resolve to the
// density and kinematic viscosity the solver needs, interpolated from
// property tables by temperature.
package fluid

import (
	"fmt"
	"strings"
)

// StandardGravity is in m/s2.
const StandardGravity = 9.81

// Properties are the transport properties of a fluid at one temperature.
type Properties struct {
	Density            float64 // kg/m3
	KinematicViscosity float64 // m2/s
}

type tableRow struct {
	tempC float64
	p     Properties
}

// Liquid water at atmospheric pressure, 0-100 C in 10 C steps.
// Density and kinematic viscosity from standard saturation tables.
var waterTable = []tableRow{
	{0, Properties{999.8, 1.787e-6}},
	{10, Properties{999.7, 1.307e-6}},
	{20, Properties{998.2, 1.004e-6}},
	{30, Properties{995.7, 0.801e-6}},
	{40, Properties{992.2, 0.658e-6}},
	{50, Properties{988.1, 0.553e-6}},
	{60, Properties{983.2, 0.475e-6}},
	{70, Properties{977.8, 0.413e-6}},
	{80, Properties{971.8, 0.365e-6}},
	{90, Properties{965.3, 0.326e-6}},
	{100, Properties{958.4, 0.294e-6}},
}

// Water returns the properties of liquid water at the given temperature,
// linearly interpolated between table rows.
func Water(tempC float64) (Properties, error) {
	return interpolate(waterTable, tempC)
}

// ByName resolves a catalog fluid. Only water is tabulated at present.
func ByName(name string, tempC float64) (Properties, error) {
	switch strings.ToLower(name) {
	case "water":
		return Water(tempC)
	default:
		return Properties{}, fmt.Errorf("fluid: unknown fluid %q", name)
	}
}

func interpolate(table []tableRow, tempC float64) (Properties, error) {
	first, last := table[0], table[len(table)-1]
	if tempC < first.tempC || tempC > last.tempC {
		return Properties{}, fmt.Errorf("fluid: temperature %.1f C outside table range %.0f-%.0f C",
			tempC, first.tempC, last.tempC)
	}
	for i := 1; i < len(table); i++ {
		hi := table[i]
		if tempC > hi.tempC {
			continue
		}
		lo := table[i-1]
		t := (tempC - lo.tempC) / (hi.tempC - lo.tempC)
		return Properties{
			Density:            lo.p.Density + t*(hi.p.Density-lo.p.Density),
			KinematicViscosity: lo.p.KinematicViscosity + t*(hi.p.KinematicViscosity-lo.p.KinematicViscosity),
		}, nil
	}
	return last.p, nil
}
