package hydro

import "fmt"

// Fluid is a working-fluid preset. Custom takes its surface tension and
// density from the request instead of the table.
type Fluid int

const (
	Water Fluid = iota
	Mercury
	Ethanol
	Oil
	Air
	Custom
)

// FluidProps holds the constants a preset resolves to, at ~20°C.
type FluidProps struct {
	SurfaceTension float64 // N/m
	Density        float64 // kg/m³
}

var fluidProps = map[Fluid]FluidProps{
	Water:   {SurfaceTension: 0.0728, Density: 998},
	Mercury: {SurfaceTension: 0.485, Density: 13600},
	Ethanol: {SurfaceTension: 0.0228, Density: 789},
	Oil:     {SurfaceTension: 0.032, Density: 870},
	Air:     {SurfaceTension: 0, Density: 1.204},
}

// Props returns the preset constants. For Custom the caller supplies its
// own values; the zero FluidProps is returned.
func (f Fluid) Props() FluidProps {
	return fluidProps[f]
}

func (f Fluid) String() string {
	switch f {
	case Water:
		return "water"
	case Mercury:
		return "mercury"
	case Ethanol:
		return "ethanol"
	case Oil:
		return "oil"
	case Air:
		return "air"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// ParseFluid decodes the wire tag. String dispatch happens here at the
// boundary only; everything downstream works with the Fluid variant.
func ParseFluid(s string) (Fluid, error) {
	switch s {
	case "water", "":
		return Water, nil
	case "mercury":
		return Mercury, nil
	case "ethanol":
		return Ethanol, nil
	case "oil":
		return Oil, nil
	case "air":
		return Air, nil
	case "custom":
		return Custom, nil
	}
	return Water, fmt.Errorf("unknown fluid %q", s)
}
